package domain

import "time"

// DisputeStatus represents the lifecycle state of a dispute.
type DisputeStatus string

const (
	DisputeStatusDraft       DisputeStatus = "draft"
	DisputeStatusCreated     DisputeStatus = "created"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusApproved    DisputeStatus = "approved"
	DisputeStatusRejected    DisputeStatus = "rejected"
	DisputeStatusSettled     DisputeStatus = "settled"
)

// DisputePriority ranks how urgently a dispute needs attention.
type DisputePriority string

const (
	PriorityLow      DisputePriority = "low"
	PriorityMedium   DisputePriority = "medium"
	PriorityHigh     DisputePriority = "high"
	PriorityCritical DisputePriority = "critical"
)

// DisputeReason is the customer-facing reason category for a dispute.
type DisputeReason string

const (
	ReasonUnauthorizedTransaction DisputeReason = "unauthorized_transaction"
	ReasonDuplicateCharge         DisputeReason = "duplicate_charge"
	ReasonProductNotReceived      DisputeReason = "product_not_received"
	ReasonProductNotAsDescribed   DisputeReason = "product_not_as_described"
	ReasonCancelledSubscription   DisputeReason = "cancelled_subscription"
	ReasonIncorrectAmount         DisputeReason = "incorrect_amount"
	ReasonFraudulentActivity      DisputeReason = "fraudulent_activity"
	ReasonOther                   DisputeReason = "other"
)

// Evidence is a single piece of supporting material attached to a dispute.
type Evidence struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // document, screenshot, email, other
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by"`
}

// Dispute is the primary entity of the engine. Status only advances along
// the transition table; Version strictly increases by 1 on every successful
// write and is the optimistic-concurrency token.
type Dispute struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	Status          DisputeStatus   `json:"status"`
	Reason          DisputeReason   `json:"reason"`
	ReasonCode      string          `json:"reason_code"`
	Category        string          `json:"category"`
	Priority        DisputePriority `json:"priority"`
	Description     string          `json:"description"`
	OriginalAmount  int64           `json:"original_amount"` // smallest currency unit
	RequestedAmount int64           `json:"requested_amount"`
	ClaimedAmount   int64           `json:"claimed_amount"`
	ApprovedAmount  *int64          `json:"approved_amount,omitempty"`
	Currency        string          `json:"currency"`
	Evidence        []Evidence      `json:"evidence"`
	CreatedBy       Actor           `json:"created_by"`
	AssignedTo      *Actor          `json:"assigned_to,omitempty"`
	ResolvedBy      *string         `json:"resolved_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`
	Version         int64           `json:"version"`
}

// IsTerminal returns true if the dispute has no outgoing transitions.
func (d *Dispute) IsTerminal() bool {
	return d.Status == DisputeStatusSettled
}

// IsResolved returns true once a resolution decision has been recorded.
func (d *Dispute) IsResolved() bool {
	return d.Status == DisputeStatusApproved ||
		d.Status == DisputeStatusRejected ||
		d.Status == DisputeStatusSettled
}

// Clone returns a deep copy, so repository snapshots never alias stored state.
func (d *Dispute) Clone() *Dispute {
	out := *d
	if d.Evidence != nil {
		out.Evidence = make([]Evidence, len(d.Evidence))
		copy(out.Evidence, d.Evidence)
	}
	if d.ApprovedAmount != nil {
		v := *d.ApprovedAmount
		out.ApprovedAmount = &v
	}
	if d.AssignedTo != nil {
		a := *d.AssignedTo
		out.AssignedTo = &a
	}
	if d.ResolvedBy != nil {
		s := *d.ResolvedBy
		out.ResolvedBy = &s
	}
	if d.ResolvedAt != nil {
		t := *d.ResolvedAt
		out.ResolvedAt = &t
	}
	return &out
}

// DisputeFormData is the validated input for creating a dispute, whether
// submitted directly or promoted from a draft.
type DisputeFormData struct {
	TransactionID   string          `json:"transaction_id"`
	Category        string          `json:"category"`
	ReasonCode      string          `json:"reason_code"`
	Reason          DisputeReason   `json:"reason"`
	Priority        DisputePriority `json:"priority"`
	Description     string          `json:"description"`
	RequestedAmount int64           `json:"requested_amount"`
	Evidence        []Evidence      `json:"evidence,omitempty"`
}

// DisputePatch is a partial update applied by the repository's version-checked
// write. Nil fields are left untouched.
type DisputePatch struct {
	Status          *DisputeStatus
	Reason          *DisputeReason
	ReasonCode      *string
	Category        *string
	Priority        *DisputePriority
	Description     *string
	RequestedAmount *int64
	ClaimedAmount   *int64
	ApprovedAmount  *int64
	Evidence        *[]Evidence
	AssignedTo      *Actor
	ResolvedBy      *string
	ResolvedAt      *time.Time
	ResolutionNotes *string
}

// Apply copies the patch's non-nil fields onto the dispute.
func (p *DisputePatch) Apply(d *Dispute) {
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Reason != nil {
		d.Reason = *p.Reason
	}
	if p.ReasonCode != nil {
		d.ReasonCode = *p.ReasonCode
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Priority != nil {
		d.Priority = *p.Priority
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.RequestedAmount != nil {
		d.RequestedAmount = *p.RequestedAmount
	}
	if p.ClaimedAmount != nil {
		d.ClaimedAmount = *p.ClaimedAmount
	}
	if p.ApprovedAmount != nil {
		v := *p.ApprovedAmount
		d.ApprovedAmount = &v
	}
	if p.Evidence != nil {
		ev := make([]Evidence, len(*p.Evidence))
		copy(ev, *p.Evidence)
		d.Evidence = ev
	}
	if p.AssignedTo != nil {
		a := *p.AssignedTo
		d.AssignedTo = &a
	}
	if p.ResolvedBy != nil {
		s := *p.ResolvedBy
		d.ResolvedBy = &s
	}
	if p.ResolvedAt != nil {
		t := *p.ResolvedAt
		d.ResolvedAt = &t
	}
	if p.ResolutionNotes != nil {
		d.ResolutionNotes = *p.ResolutionNotes
	}
}
