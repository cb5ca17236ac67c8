package ports

import (
	"context"
	"time"

	"dispute-resolution-engine/internal/core/domain"
)

// WriteResult is the outcome of a version-checked write. Conflict=true is a
// normal result value, never an error: Dispute then holds the current
// unmutated server state for the caller to resolve against.
type WriteResult struct {
	Dispute  *domain.Dispute
	Conflict bool
}

// DisputeListParams holds filter + pagination for listing disputes. Filters
// combine with AND; nil means unfiltered.
type DisputeListParams struct {
	Status     *domain.DisputeStatus
	AssignedTo *string
	Page       int
	PageSize   int
}

// DisputePage is one page of disputes, newest first.
type DisputePage struct {
	Data       []domain.Dispute `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// DisputeRepository defines persistence operations for disputes. Write is
// the sole mutation primitive used by higher layers: the embedded version
// check is the entire cross-writer concurrency contract, there is no
// locking.
type DisputeRepository interface {
	Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error)
	GetByID(ctx context.Context, id string) (*domain.Dispute, error)
	// Write applies the patch iff the stored version equals expectedVersion.
	// On mismatch it returns Conflict=true with the current state and
	// performs no mutation. On success UpdatedAt is stamped and the version
	// is incremented by exactly 1.
	Write(ctx context.Context, id string, patch domain.DisputePatch, expectedVersion int64) (WriteResult, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params DisputeListParams) (*DisputePage, error)
	CountByStatus(ctx context.Context) (map[domain.DisputeStatus]int64, error)
}

// AuditListParams paginates the global ledger listing.
type AuditListParams struct {
	Page     int
	PageSize int
}

// AuditPage is one page of the global ledger, reverse-chronological.
type AuditPage struct {
	Entries []domain.AuditLogEntry `json:"entries"`
	Total   int64                  `json:"total"`
}

// AuditRepository is the append-only ledger. There is no update or delete
// operation anywhere in the contract; entries are immutable once appended.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditLogEntry) (*domain.AuditLogEntry, error)
	ByDispute(ctx context.Context, disputeID string) ([]domain.AuditLogEntry, error)
	List(ctx context.Context, params AuditListParams) (*AuditPage, error)
	ByAction(ctx context.Context, action domain.AuditAction) ([]domain.AuditLogEntry, error)
	ByActor(ctx context.Context, actorID string) ([]domain.AuditLogEntry, error)
	ByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditLogEntry, error)
	// All returns the ledger in reverse-chronological order, optionally
	// scoped to one dispute. Used by export.
	All(ctx context.Context, disputeID *string) ([]domain.AuditLogEntry, error)
}

// DraftRepository stores unversioned in-progress dispute forms. Save with an
// empty ID creates; with a known ID it updates that draft in place.
type DraftRepository interface {
	Save(ctx context.Context, draft *domain.Draft) (*domain.Draft, error)
	GetByID(ctx context.Context, id string) (*domain.Draft, error)
	ListAll(ctx context.Context) ([]domain.Draft, error)
	Delete(ctx context.Context, id string) error
}

// TransactionSearchParams filters the directory search. String matches are
// case-insensitive substring matches.
type TransactionSearchParams struct {
	TransactionID string
	UserID        string
	UserName      string
	DateFrom      *time.Time
	DateTo        *time.Time
	Status        *domain.TransactionStatus
	Type          *domain.TransactionType
	MinAmount     *int64
	MaxAmount     *int64
}

// TransactionPage is one page of directory search results.
type TransactionPage struct {
	Data       []domain.Transaction `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// TransactionDirectory is the external keyed store of transactions. The
// engine reads it and writes only the status (dispute creation and
// reconciliation).
type TransactionDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) error
	Search(ctx context.Context, params TransactionSearchParams, page, pageSize int) (*TransactionPage, error)
}
