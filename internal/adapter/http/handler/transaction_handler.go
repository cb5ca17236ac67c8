package handler

import (
	"strconv"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
	"dispute-resolution-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the read-only directory surface used when
// filing a dispute.
type TransactionHandler struct {
	searchSvc ports.SearchService
	directory ports.TransactionDirectory
	pageSize  int
}

func NewTransactionHandler(searchSvc ports.SearchService, directory ports.TransactionDirectory, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &TransactionHandler{searchSvc: searchSvc, directory: directory, pageSize: pageSize}
}

// Search handles GET /api/v1/transactions. Searches run last-request-wins;
// a superseded search returns 409.
func (h *TransactionHandler) Search(c *gin.Context) {
	params, err := searchParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.searchSvc.Search(c.Request.Context(), params, queryInt(c, "page", 1), queryInt(c, "page_size", h.pageSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, page)
}

// Get handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.directory.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

func searchParams(c *gin.Context) (ports.TransactionSearchParams, error) {
	params := ports.TransactionSearchParams{
		TransactionID: c.Query("transaction_id"),
		UserID:        c.Query("user_id"),
		UserName:      c.Query("user_name"),
	}

	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}
	if t := c.Query("type"); t != "" {
		typ := domain.TransactionType(t)
		params.Type = &typ
	}
	if v := c.Query("min_amount"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, apperror.Validation("min_amount must be an integer")
		}
		params.MinAmount = &n
	}
	if v := c.Query("max_amount"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, apperror.Validation("max_amount must be an integer")
		}
		params.MaxAmount = &n
	}
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return params, apperror.Validation("date_from must be RFC3339")
		}
		params.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return params, apperror.Validation("date_to must be RFC3339")
		}
		params.DateTo = &t
	}

	return params, nil
}
