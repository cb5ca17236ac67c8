package handler

import (
	"strconv"

	"dispute-resolution-engine/internal/adapter/http/dto"
	"dispute-resolution-engine/internal/adapter/http/middleware"
	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
	"dispute-resolution-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// defaultPageSize backstops handlers constructed with a zero page size.
const defaultPageSize = 20

// DisputeHandler handles dispute CRUD and workflow endpoints.
type DisputeHandler struct {
	disputeSvc  ports.DisputeService
	workflowSvc ports.WorkflowService
	pageSize    int
}

func NewDisputeHandler(disputeSvc ports.DisputeService, workflowSvc ports.WorkflowService, pageSize int) *DisputeHandler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &DisputeHandler{disputeSvc: disputeSvc, workflowSvc: workflowSvc, pageSize: pageSize}
}

// Create handles POST /api/v1/disputes.
func (h *DisputeHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	var req dto.CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	created, err := h.disputeSvc.CreateDispute(c.Request.Context(), ports.CreateDisputeRequest{
		Form: domain.DisputeFormData{
			TransactionID:   req.TransactionID,
			Reason:          domain.DisputeReason(req.Reason),
			ReasonCode:      req.ReasonCode,
			Category:        req.Category,
			Priority:        domain.DisputePriority(req.Priority),
			Description:     req.Description,
			RequestedAmount: req.RequestedAmount,
		},
		Actor:   actor,
		IsDraft: req.IsDraft,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToDisputeResponse(created))
}

// List handles GET /api/v1/disputes.
func (h *DisputeHandler) List(c *gin.Context) {
	params := ports.DisputeListParams{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", h.pageSize),
	}
	if s := c.Query("status"); s != "" {
		status := domain.DisputeStatus(s)
		params.Status = &status
	}
	if a := c.Query("assigned_to"); a != "" {
		params.AssignedTo = &a
	}

	page, err := h.disputeSvc.GetDisputes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToDisputeListResponse(page))
}

// Get handles GET /api/v1/disputes/:id.
func (h *DisputeHandler) Get(c *gin.Context) {
	dispute, err := h.disputeSvc.GetDisputeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToDisputeResponse(dispute))
}

// Stats handles GET /api/v1/disputes/stats.
func (h *DisputeHandler) Stats(c *gin.Context) {
	counts, err := h.disputeSvc.CountByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"by_status": counts})
}

// Update handles PATCH /api/v1/disputes/:id. A version conflict comes back
// as 409 carrying the current server state.
func (h *DisputeHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	var req dto.UpdateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	res, err := h.disputeSvc.UpdateDispute(c.Request.Context(), ports.UpdateDisputeRequest{
		ID:              c.Param("id"),
		Patch:           updatePatch(req),
		Actor:           actor,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.Conflict {
		response.Conflict(c, dto.ToDisputeResponse(res.Dispute))
		return
	}

	response.OK(c, dto.ToDisputeResponse(res.Dispute))
}

// Delete handles DELETE /api/v1/disputes/:id.
func (h *DisputeHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	if err := h.disputeSvc.DeleteDispute(c.Request.Context(), c.Param("id"), actor); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// ChangeStatus handles POST /api/v1/disputes/:id/status.
func (h *DisputeHandler) ChangeStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	res, err := h.workflowSvc.ChangeStatus(c.Request.Context(), ports.ChangeStatusRequest{
		ID:              c.Param("id"),
		NewStatus:       domain.DisputeStatus(req.Status),
		Actor:           actor,
		Notes:           req.Notes,
		ApprovedAmount:  req.ApprovedAmount,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.Conflict {
		response.Conflict(c, dto.ToDisputeResponse(res.Dispute))
		return
	}

	response.OK(c, dto.ToDisputeResponse(res.Dispute))
}

// Transitions handles GET /api/v1/disputes/:id/transitions.
func (h *DisputeHandler) Transitions(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	transitions, err := h.workflowSvc.AvailableTransitions(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	if transitions == nil {
		transitions = []domain.DisputeStatus{}
	}
	response.OK(c, gin.H{"transitions": transitions})
}

// Assign handles POST /api/v1/disputes/:id/assign.
func (h *DisputeHandler) Assign(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	var req dto.AssignDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.disputeSvc.AssignDispute(c.Request.Context(), c.Param("id"), req.AssigneeID, actor, req.ExpectedVersion)
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.Conflict {
		response.Conflict(c, dto.ToDisputeResponse(res.Dispute))
		return
	}

	response.OK(c, dto.ToDisputeResponse(res.Dispute))
}

// AddEvidence handles POST /api/v1/disputes/:id/evidence.
func (h *DisputeHandler) AddEvidence(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	var req dto.AddEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	res, err := h.disputeSvc.AddEvidence(c.Request.Context(), c.Param("id"), domain.Evidence{
		Type:     req.Type,
		FileName: req.FileName,
	}, actor, req.ExpectedVersion)
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.Conflict {
		response.Conflict(c, dto.ToDisputeResponse(res.Dispute))
		return
	}

	response.OK(c, dto.ToDisputeResponse(res.Dispute))
}

// Rebase handles POST /api/v1/disputes/:id/rebase: reapply a local edit on
// top of the current server version after a conflict.
func (h *DisputeHandler) Rebase(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	var req dto.UpdateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	res, err := h.workflowSvc.Rebase(c.Request.Context(), ports.UpdateDisputeRequest{
		ID:              c.Param("id"),
		Patch:           updatePatch(req),
		Actor:           actor,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if res.Conflict {
		response.Conflict(c, dto.ToDisputeResponse(res.Dispute))
		return
	}

	response.OK(c, dto.ToDisputeResponse(res.Dispute))
}

// CheckConflict handles POST /api/v1/disputes/:id/conflict. The body carries
// the caller's local version and, optionally, its working copy so the
// response can name the diverging fields.
func (h *DisputeHandler) CheckConflict(c *gin.Context) {
	var req dto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	info, err := h.workflowSvc.WarnConflict(c.Request.Context(), c.Param("id"), req.LocalVersion, req.LocalData)
	if err != nil {
		response.Error(c, err)
		return
	}
	if info == nil {
		response.OK(c, gin.H{"conflict": false})
		return
	}

	fields := info.ConflictedFields
	if fields == nil {
		fields = []string{}
	}
	response.OK(c, gin.H{
		"conflict":          true,
		"local_version":     info.LocalVersion,
		"server_version":    info.ServerVersion,
		"server_data":       dto.ToDisputeResponse(info.ServerData),
		"conflicted_fields": fields,
	})
}

func updatePatch(req dto.UpdateDisputeRequest) domain.DisputePatch {
	patch := domain.DisputePatch{
		Description:   req.Description,
		ReasonCode:    req.ReasonCode,
		Category:      req.Category,
		ClaimedAmount: req.ClaimedAmount,
	}
	if req.Priority != nil {
		p := domain.DisputePriority(*req.Priority)
		patch.Priority = &p
	}
	return patch
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
