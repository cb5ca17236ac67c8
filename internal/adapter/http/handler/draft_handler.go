package handler

import (
	"dispute-resolution-engine/internal/adapter/http/dto"
	"dispute-resolution-engine/internal/adapter/http/middleware"
	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
	"dispute-resolution-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the autosave draft surface.
type DraftHandler struct {
	drafts ports.DraftManager
}

func NewDraftHandler(drafts ports.DraftManager) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// Save handles POST /api/v1/drafts. The write is debounced; the response
// reports the manager state, not a persisted draft.
func (h *DraftHandler) Save(c *gin.Context) {
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.drafts.SaveDraft(c.Request.Context(), req.ToDraftFormData(), req.Step); err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{"state": h.drafts.State()})
}

// Flush handles POST /api/v1/drafts/flush.
func (h *DraftHandler) Flush(c *gin.Context) {
	draft, err := h.drafts.Flush(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if draft == nil {
		response.OK(c, gin.H{"state": h.drafts.State()})
		return
	}
	response.OK(c, draft)
}

// State handles GET /api/v1/drafts/state.
func (h *DraftHandler) State(c *gin.Context) {
	response.OK(c, gin.H{"state": h.drafts.State()})
}

// List handles GET /api/v1/drafts.
func (h *DraftHandler) List(c *gin.Context) {
	drafts, err := h.drafts.ListDrafts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if drafts == nil {
		drafts = []domain.Draft{}
	}
	response.OK(c, gin.H{"items": drafts, "total": len(drafts)})
}

// Get handles GET /api/v1/drafts/:id.
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.drafts.LoadDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, draft)
}

// Delete handles DELETE /api/v1/drafts/:id.
func (h *DraftHandler) Delete(c *gin.Context) {
	if err := h.drafts.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// Submit handles POST /api/v1/drafts/:id/submit.
func (h *DraftHandler) Submit(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	dispute, err := h.drafts.SubmitDraft(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToDisputeResponse(dispute))
}
