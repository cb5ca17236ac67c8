package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
)

// AuditRepo is the in-memory append-only ledger. Entries are held in append
// order; every read path reverses into newest-first.
type AuditRepo struct {
	mu      sync.RWMutex
	entries []domain.AuditLogEntry
	seq     int64
	sim     *Simulator
	clock   ports.Clock
}

func NewAuditRepo(sim *Simulator, clock ports.Clock) *AuditRepo {
	return &AuditRepo{sim: sim, clock: clock}
}

func (r *AuditRepo) Append(ctx context.Context, entry domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
	if err := r.sim.run(ctx, "audit.append", true); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	entry.ID = fmt.Sprintf("AUD-%08d", r.seq)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.clock.Now()
	}
	r.entries = append(r.entries, entry)

	out := entry
	return &out, nil
}

func (r *AuditRepo) ByDispute(ctx context.Context, disputeID string) ([]domain.AuditLogEntry, error) {
	return r.filter(ctx, "audit.by_dispute", func(e domain.AuditLogEntry) bool {
		return e.DisputeID == disputeID
	})
}

func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) (*ports.AuditPage, error) {
	if err := r.sim.run(ctx, "audit.list", true); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := newestFirst(r.entries)
	r.mu.RUnlock()

	page, pageSize := normalizePage(params.Page, params.PageSize)
	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	return &ports.AuditPage{
		Entries: all[start:end],
		Total:   int64(len(all)),
	}, nil
}

func (r *AuditRepo) ByAction(ctx context.Context, action domain.AuditAction) ([]domain.AuditLogEntry, error) {
	return r.filter(ctx, "audit.by_action", func(e domain.AuditLogEntry) bool {
		return e.Action == action
	})
}

func (r *AuditRepo) ByActor(ctx context.Context, actorID string) ([]domain.AuditLogEntry, error) {
	return r.filter(ctx, "audit.by_actor", func(e domain.AuditLogEntry) bool {
		return e.Actor.ID == actorID
	})
}

func (r *AuditRepo) ByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditLogEntry, error) {
	return r.filter(ctx, "audit.by_time_range", func(e domain.AuditLogEntry) bool {
		return !e.Timestamp.Before(from) && !e.Timestamp.After(to)
	})
}

func (r *AuditRepo) All(ctx context.Context, disputeID *string) ([]domain.AuditLogEntry, error) {
	if disputeID != nil {
		return r.ByDispute(ctx, *disputeID)
	}
	return r.filter(ctx, "audit.all", func(domain.AuditLogEntry) bool { return true })
}

func (r *AuditRepo) filter(ctx context.Context, op string, keep func(domain.AuditLogEntry) bool) ([]domain.AuditLogEntry, error) {
	if err := r.sim.run(ctx, op, true); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.AuditLogEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if keep(r.entries[i]) {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func newestFirst(entries []domain.AuditLogEntry) []domain.AuditLogEntry {
	out := make([]domain.AuditLogEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
