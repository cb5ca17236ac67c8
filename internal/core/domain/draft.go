package domain

import "time"

// Draft is an unversioned, in-progress dispute form. It lives outside the
// committed dispute store and carries no conflict detection.
type Draft struct {
	ID            string        `json:"id"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Step          int           `json:"step"`
	Data          DraftFormData `json:"data"`
	SavedAt       time.Time     `json:"saved_at"`
}

// DraftFormData is the partial form payload of a draft. All fields are
// optional until submit.
type DraftFormData struct {
	TransactionID   string          `json:"transaction_id,omitempty"`
	Category        string          `json:"category,omitempty"`
	ReasonCode      string          `json:"reason_code,omitempty"`
	Reason          DisputeReason   `json:"reason,omitempty"`
	Priority        DisputePriority `json:"priority,omitempty"`
	Description     string          `json:"description,omitempty"`
	RequestedAmount *int64          `json:"requested_amount,omitempty"`
	Evidence        []Evidence      `json:"evidence,omitempty"`
}

// Merge overlays non-zero fields of other on top of the receiver, mirroring
// how successive autosaves extend a form.
func (d DraftFormData) Merge(other DraftFormData) DraftFormData {
	out := d
	if other.TransactionID != "" {
		out.TransactionID = other.TransactionID
	}
	if other.Category != "" {
		out.Category = other.Category
	}
	if other.ReasonCode != "" {
		out.ReasonCode = other.ReasonCode
	}
	if other.Reason != "" {
		out.Reason = other.Reason
	}
	if other.Priority != "" {
		out.Priority = other.Priority
	}
	if other.Description != "" {
		out.Description = other.Description
	}
	if other.RequestedAmount != nil {
		v := *other.RequestedAmount
		out.RequestedAmount = &v
	}
	if other.Evidence != nil {
		ev := make([]Evidence, len(other.Evidence))
		copy(ev, other.Evidence)
		out.Evidence = ev
	}
	return out
}

// DraftState is the autosave manager's state for one editing session.
type DraftState string

const (
	DraftStateIdle    DraftState = "idle"
	DraftStatePending DraftState = "pending"
	DraftStateSaving  DraftState = "saving"
	DraftStateSaved   DraftState = "saved"
	DraftStateError   DraftState = "error"
)
