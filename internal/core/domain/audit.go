package domain

import "time"

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionDisputeCreated   AuditAction = "dispute_created"
	AuditActionDisputeUpdated   AuditAction = "dispute_updated"
	AuditActionDisputeSubmitted AuditAction = "dispute_submitted"
	AuditActionDisputeAssigned  AuditAction = "dispute_assigned"
	AuditActionStatusChanged    AuditAction = "status_changed"
	AuditActionEvidenceAdded    AuditAction = "evidence_added"
	AuditActionEvidenceRemoved  AuditAction = "evidence_removed"
	AuditActionCommentAdded     AuditAction = "comment_added"
	AuditActionDisputeApproved  AuditAction = "dispute_approved"
	AuditActionDisputeRejected  AuditAction = "dispute_rejected"
	AuditActionDisputeSettled   AuditAction = "dispute_settled"
	AuditActionAmountAdjusted   AuditAction = "amount_adjusted"
	AuditActionDraftSaved       AuditAction = "draft_saved"
	AuditActionDraftResumed     AuditAction = "draft_resumed"
)

// AuditLogEntry is one immutable record in the append-only ledger. IDs are
// globally unique and strictly increasing; total order equals append order.
type AuditLogEntry struct {
	ID            string         `json:"id"`
	DisputeID     string         `json:"dispute_id"`
	Action        AuditAction    `json:"action"`
	Actor         Actor          `json:"actor"`
	Timestamp     time.Time      `json:"timestamp"`
	Details       map[string]any `json:"details"`
	PreviousValue any            `json:"previous_value,omitempty"`
	NewValue      any            `json:"new_value,omitempty"`
}

// AuditStats aggregates the ledger by action type and actor name.
type AuditStats struct {
	TotalEntries    int64            `json:"total_entries"`
	EntriesByAction map[string]int64 `json:"entries_by_action"`
	EntriesByActor  map[string]int64 `json:"entries_by_actor"`
}
