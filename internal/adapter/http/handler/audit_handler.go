package handler

import (
	"net/http"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
	"dispute-resolution-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the read side of the audit ledger.
type AuditHandler struct {
	auditSvc ports.AuditService
	pageSize int
}

func NewAuditHandler(auditSvc ports.AuditService, pageSize int) *AuditHandler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &AuditHandler{auditSvc: auditSvc, pageSize: pageSize}
}

// List handles GET /api/v1/audit. Query filters are mutually exclusive:
// action, actor_id, or a from/to range; without any, the ledger is paged.
func (h *AuditHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if action := c.Query("action"); action != "" {
		entries, err := h.auditSvc.GetAuditLogsByAction(ctx, domain.AuditAction(action))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, gin.H{"entries": entries, "total": len(entries)})
		return
	}

	if actorID := c.Query("actor_id"); actorID != "" {
		entries, err := h.auditSvc.GetAuditLogsByActor(ctx, actorID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, gin.H{"entries": entries, "total": len(entries)})
		return
	}

	if c.Query("from") != "" || c.Query("to") != "" {
		from, to, err := parseTimeRange(c.Query("from"), c.Query("to"))
		if err != nil {
			response.Error(c, err)
			return
		}
		entries, err := h.auditSvc.GetAuditLogsByDateRange(ctx, from, to)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, gin.H{"entries": entries, "total": len(entries)})
		return
	}

	page, err := h.auditSvc.GetAllAuditLogs(ctx, ports.AuditListParams{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", h.pageSize),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, page)
}

// ByDispute handles GET /api/v1/disputes/:id/audit.
func (h *AuditHandler) ByDispute(c *gin.Context) {
	entries, err := h.auditSvc.GetDisputeAuditLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"entries": entries, "total": len(entries)})
}

// Stats handles GET /api/v1/audit/stats.
func (h *AuditHandler) Stats(c *gin.Context) {
	stats, err := h.auditSvc.GetAuditStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Export handles GET /api/v1/audit/export. The body is the raw JSON array,
// served as a download rather than wrapped in the standard envelope.
func (h *AuditHandler) Export(c *gin.Context) {
	var disputeID *string
	if id := c.Query("dispute_id"); id != "" {
		disputeID = &id
	}

	payload, err := h.auditSvc.ExportAuditLog(c.Request.Context(), disputeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="audit-log.json"`)
	c.Data(http.StatusOK, "application/json", payload)
}

func parseTimeRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().UTC()

	if fromStr != "" {
		t, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return from, to, apperror.Validation("from must be RFC3339")
		}
		from = t
	}
	if toStr != "" {
		t, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return from, to, apperror.Validation("to must be RFC3339")
		}
		to = t
	}
	return from, to, nil
}
