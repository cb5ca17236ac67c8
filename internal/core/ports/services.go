package ports

import (
	"context"
	"time"

	"dispute-resolution-engine/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// CreateDisputeRequest holds validated input for dispute creation.
type CreateDisputeRequest struct {
	Form    domain.DisputeFormData
	Actor   domain.Actor
	IsDraft bool
}

// UpdateDisputeRequest holds a partial edit with its optimistic-concurrency
// token. A nil ExpectedVersion opts out of the caller-side check: the write
// is resolved against the current stored version instead.
type UpdateDisputeRequest struct {
	ID              string
	Patch           domain.DisputePatch
	Actor           domain.Actor
	ExpectedVersion *int64
}

// DisputeService defines CRUD-level dispute business logic. Status changes
// go through WorkflowService instead.
type DisputeService interface {
	CreateDispute(ctx context.Context, req CreateDisputeRequest) (*domain.Dispute, error)
	GetDisputeByID(ctx context.Context, id string) (*domain.Dispute, error)
	GetDisputes(ctx context.Context, params DisputeListParams) (*DisputePage, error)
	UpdateDispute(ctx context.Context, req UpdateDisputeRequest) (WriteResult, error)
	AssignDispute(ctx context.Context, id, assigneeID string, actor domain.Actor, expectedVersion *int64) (WriteResult, error)
	AddEvidence(ctx context.Context, id string, ev domain.Evidence, actor domain.Actor, expectedVersion *int64) (WriteResult, error)
	DeleteDispute(ctx context.Context, id string, actor domain.Actor) error
	CountByStatus(ctx context.Context) (map[domain.DisputeStatus]int64, error)
}

// ChangeStatusRequest holds validated input for a workflow transition.
// ExpectedVersion follows the same optional contract as
// UpdateDisputeRequest: nil resolves against the current stored version.
type ChangeStatusRequest struct {
	ID              string
	NewStatus       domain.DisputeStatus
	Actor           domain.Actor
	Notes           string
	ApprovedAmount  *int64
	ExpectedVersion *int64
}

// WorkflowService validates and executes status transitions, orchestrating
// the repository write, the audit append and the reconciliation write.
type WorkflowService interface {
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (WriteResult, error)
	AvailableTransitions(ctx context.Context, id string, actor domain.Actor) ([]domain.DisputeStatus, error)
	// WarnConflict publishes an advisory conflict_detected event carrying
	// the current server state. When the caller supplies its local snapshot
	// the result lists the fields that diverge. It never blocks a write.
	WarnConflict(ctx context.Context, id string, localVersion int64, local *domain.Dispute) (*domain.ConflictInfo, error)
	// Rebase implements the keep_local resolution path: re-read the current
	// version and reapply the local patch against it.
	Rebase(ctx context.Context, req UpdateDisputeRequest) (WriteResult, error)
}

// LogActionRequest holds input for a direct ledger append.
type LogActionRequest struct {
	DisputeID     string
	Action        domain.AuditAction
	Actor         domain.Actor
	Details       map[string]any
	PreviousValue any
	NewValue      any
}

// AuditService wraps the ledger with read, export and aggregation paths.
type AuditService interface {
	LogAction(ctx context.Context, req LogActionRequest) (*domain.AuditLogEntry, error)
	GetDisputeAuditLog(ctx context.Context, disputeID string) ([]domain.AuditLogEntry, error)
	GetAllAuditLogs(ctx context.Context, params AuditListParams) (*AuditPage, error)
	GetAuditLogsByAction(ctx context.Context, action domain.AuditAction) ([]domain.AuditLogEntry, error)
	GetAuditLogsByActor(ctx context.Context, actorID string) ([]domain.AuditLogEntry, error)
	GetAuditLogsByDateRange(ctx context.Context, from, to time.Time) ([]domain.AuditLogEntry, error)
	// ExportAuditLog returns the ledger (optionally scoped to one dispute)
	// as a pretty-printed, ordered JSON array.
	ExportAuditLog(ctx context.Context, disputeID *string) ([]byte, error)
	GetAuditStats(ctx context.Context) (*domain.AuditStats, error)
}

// DraftManager is the debounced autosave surface for in-progress dispute
// forms. Edits within the coalescing window replace the pending payload;
// only the payload present when the window elapses is persisted.
type DraftManager interface {
	// SaveDraft registers an edit. The write happens later, on the trailing
	// edge of the debounce window.
	SaveDraft(ctx context.Context, data domain.DraftFormData, step int) error
	// Flush persists any pending payload immediately.
	Flush(ctx context.Context) (*domain.Draft, error)
	LoadDraft(ctx context.Context, id string) (*domain.Draft, error)
	ListDrafts(ctx context.Context) ([]domain.Draft, error)
	DeleteDraft(ctx context.Context, id string) error
	// SubmitDraft promotes the draft into an ordinary dispute create and
	// removes the draft from the active set.
	SubmitDraft(ctx context.Context, id string, actor domain.Actor) (*domain.Dispute, error)
	State() domain.DraftState
}

// EventCallback receives delivered realtime events.
type EventCallback func(event domain.RealtimeEvent)

// EventBus is the publish/subscribe notification channel. Publishing
// enqueues; delivery happens on a fixed-period tick. Disconnect stops
// ticking and clears all subscriptions; there is no replay.
type EventBus interface {
	Connect()
	Disconnect()
	Subscribe(disputeID string, cb EventCallback) (unsubscribe func())
	SubscribeAll(cb EventCallback) (unsubscribe func())
	Publish(eventType domain.RealtimeEventType, disputeID string, payload map[string]any, actorID string)
	Connected() bool
}

// SearchService runs directory searches with last-request-wins semantics: a
// new search supersedes any in-flight one for the same surface, and the
// superseded result is discarded.
type SearchService interface {
	Search(ctx context.Context, params TransactionSearchParams, page, pageSize int) (*TransactionPage, error)
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
	// After returns a channel that fires once d has elapsed.
	After(d time.Duration) <-chan time.Time
	// Tick returns a channel firing every d. The returned stop func
	// releases the ticker.
	Tick(d time.Duration) (<-chan time.Time, func())
}

// HealthChecker reports connectivity of one infrastructure dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// FaultInjector decides whether a simulated transient failure occurs. A nil
// or deterministic injector never fails.
type FaultInjector interface {
	// ShouldFail reports whether the next mutating operation should fail
	// with a transient network error.
	ShouldFail() bool
}
