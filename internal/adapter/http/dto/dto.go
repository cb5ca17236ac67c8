package dto

import (
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
)

// CreateDisputeRequest is the request body for opening a dispute.
type CreateDisputeRequest struct {
	TransactionID   string `json:"transaction_id" binding:"required,safe_id"`
	Reason          string `json:"reason" binding:"required"`
	ReasonCode      string `json:"reason_code,omitempty"`
	Category        string `json:"category,omitempty"`
	Priority        string `json:"priority,omitempty"`
	Description     string `json:"description,omitempty"`
	RequestedAmount int64  `json:"requested_amount" binding:"required,gt=0"`
	IsDraft         bool   `json:"is_draft,omitempty"`
}

// UpdateDisputeRequest is the request body for a partial edit. Status is
// deliberately absent; transitions go through the status endpoint.
// expected_version is optional: omitting it resolves the write against the
// current stored version.
type UpdateDisputeRequest struct {
	Description     *string `json:"description,omitempty"`
	Priority        *string `json:"priority,omitempty"`
	Category        *string `json:"category,omitempty"`
	ReasonCode      *string `json:"reason_code,omitempty"`
	ClaimedAmount   *int64  `json:"claimed_amount,omitempty"`
	ExpectedVersion *int64  `json:"expected_version,omitempty" binding:"omitempty,gte=1"`
}

// ChangeStatusRequest is the request body for a workflow transition.
type ChangeStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	Notes           string `json:"notes,omitempty"`
	ApprovedAmount  *int64 `json:"approved_amount,omitempty"`
	ExpectedVersion *int64 `json:"expected_version,omitempty" binding:"omitempty,gte=1"`
}

// AssignDisputeRequest is the request body for assignment.
type AssignDisputeRequest struct {
	AssigneeID      string `json:"assignee_id" binding:"required,safe_id"`
	ExpectedVersion *int64 `json:"expected_version,omitempty" binding:"omitempty,gte=1"`
}

// AddEvidenceRequest is the request body for attaching evidence.
type AddEvidenceRequest struct {
	Type            string `json:"type,omitempty"`
	FileName        string `json:"file_name" binding:"required"`
	ExpectedVersion *int64 `json:"expected_version,omitempty" binding:"omitempty,gte=1"`
}

// ConflictCheckRequest is the request body for an advisory conflict check.
// local_data is the caller's working copy; when present the response names
// the fields that diverge from the server state.
type ConflictCheckRequest struct {
	LocalVersion int64           `json:"local_version" binding:"required,gte=1"`
	LocalData    *domain.Dispute `json:"local_data,omitempty"`
}

// SaveDraftRequest is the request body for a debounced draft autosave.
type SaveDraftRequest struct {
	Step            int    `json:"step" binding:"gte=0"`
	TransactionID   string `json:"transaction_id,omitempty"`
	Category        string `json:"category,omitempty"`
	ReasonCode      string `json:"reason_code,omitempty"`
	Reason          string `json:"reason,omitempty"`
	Priority        string `json:"priority,omitempty"`
	Description     string `json:"description,omitempty"`
	RequestedAmount *int64 `json:"requested_amount,omitempty"`
}

// DisputeResponse is the wire form of a dispute.
type DisputeResponse struct {
	ID              string            `json:"id"`
	TransactionID   string            `json:"transaction_id"`
	Status          string            `json:"status"`
	Reason          string            `json:"reason"`
	ReasonCode      string            `json:"reason_code,omitempty"`
	Category        string            `json:"category,omitempty"`
	Priority        string            `json:"priority"`
	Description     string            `json:"description,omitempty"`
	OriginalAmount  int64             `json:"original_amount"`
	RequestedAmount int64             `json:"requested_amount"`
	ClaimedAmount   int64             `json:"claimed_amount"`
	ApprovedAmount  *int64            `json:"approved_amount,omitempty"`
	Currency        string            `json:"currency"`
	Evidence        []domain.Evidence `json:"evidence"`
	CreatedBy       domain.Actor      `json:"created_by"`
	AssignedTo      *domain.Actor     `json:"assigned_to,omitempty"`
	ResolvedBy      *string           `json:"resolved_by,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
	ResolvedAt      *string           `json:"resolved_at,omitempty"`
	ResolutionNotes string            `json:"resolution_notes,omitempty"`
	Version         int64             `json:"version"`
}

// DisputeListResponse wraps a paginated dispute list.
type DisputeListResponse struct {
	Items      []DisputeResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// TransactionListResponse wraps a paginated directory search result.
type TransactionListResponse struct {
	Items      []domain.Transaction `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// ToDisputeResponse converts a domain dispute to its wire form.
func ToDisputeResponse(d *domain.Dispute) DisputeResponse {
	resp := DisputeResponse{
		ID:              d.ID,
		TransactionID:   d.TransactionID,
		Status:          string(d.Status),
		Reason:          string(d.Reason),
		ReasonCode:      d.ReasonCode,
		Category:        d.Category,
		Priority:        string(d.Priority),
		Description:     d.Description,
		OriginalAmount:  d.OriginalAmount,
		RequestedAmount: d.RequestedAmount,
		ClaimedAmount:   d.ClaimedAmount,
		ApprovedAmount:  d.ApprovedAmount,
		Currency:        d.Currency,
		Evidence:        d.Evidence,
		CreatedBy:       d.CreatedBy,
		AssignedTo:      d.AssignedTo,
		ResolvedBy:      d.ResolvedBy,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       d.UpdatedAt.Format(time.RFC3339),
		ResolutionNotes: d.ResolutionNotes,
		Version:         d.Version,
	}
	if d.ResolvedAt != nil {
		s := d.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &s
	}
	return resp
}

// ToDisputeListResponse converts one page of disputes.
func ToDisputeListResponse(page *ports.DisputePage) DisputeListResponse {
	items := make([]DisputeResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, ToDisputeResponse(&page.Data[i]))
	}
	return DisputeListResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

// ToDraftFormData converts an autosave payload to the domain form.
func (r *SaveDraftRequest) ToDraftFormData() domain.DraftFormData {
	return domain.DraftFormData{
		TransactionID:   r.TransactionID,
		Category:        r.Category,
		ReasonCode:      r.ReasonCode,
		Reason:          domain.DisputeReason(r.Reason),
		Priority:        domain.DisputePriority(r.Priority),
		Description:     r.Description,
		RequestedAmount: r.RequestedAmount,
	}
}
