package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
)

// DisputeRepo is the in-memory dispute store. The mutex guards map
// integrity only; cross-writer consistency is carried entirely by the
// version check inside Write.
type DisputeRepo struct {
	mu       sync.RWMutex
	disputes map[string]*domain.Dispute
	seq      int64
	sim      *Simulator
	clock    ports.Clock
}

func NewDisputeRepo(sim *Simulator, clock ports.Clock) *DisputeRepo {
	return &DisputeRepo{
		disputes: make(map[string]*domain.Dispute),
		sim:      sim,
		clock:    clock,
	}
}

func (r *DisputeRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("DSP-%06d", r.seq)
}

func (r *DisputeRepo) Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	if err := r.sim.run(ctx, "dispute.create", true); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := dispute.Clone()
	if stored.ID == "" {
		stored.ID = r.nextID()
	}
	now := r.clock.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Version = 1
	if stored.Evidence == nil {
		stored.Evidence = []domain.Evidence{}
	}
	r.disputes[stored.ID] = stored

	return stored.Clone(), nil
}

func (r *DisputeRepo) GetByID(ctx context.Context, id string) (*domain.Dispute, error) {
	if err := r.sim.run(ctx, "dispute.get", false); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.disputes[id]
	if !ok {
		return nil, apperror.ErrDisputeNotFound()
	}
	return d.Clone(), nil
}

// Write applies the patch iff the stored version equals expectedVersion.
// A mismatch is reported as Conflict=true carrying the current state; the
// stored dispute is not touched.
func (r *DisputeRepo) Write(ctx context.Context, id string, patch domain.DisputePatch, expectedVersion int64) (ports.WriteResult, error) {
	if err := r.sim.run(ctx, "dispute.write", true); err != nil {
		return ports.WriteResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.disputes[id]
	if !ok {
		return ports.WriteResult{}, apperror.ErrDisputeNotFound()
	}

	if d.Version != expectedVersion {
		return ports.WriteResult{Dispute: d.Clone(), Conflict: true}, nil
	}

	updated := d.Clone()
	patch.Apply(updated)
	updated.Version = d.Version + 1
	updated.UpdatedAt = r.clock.Now()
	r.disputes[id] = updated

	return ports.WriteResult{Dispute: updated.Clone()}, nil
}

func (r *DisputeRepo) Delete(ctx context.Context, id string) error {
	if err := r.sim.run(ctx, "dispute.delete", true); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.disputes[id]; !ok {
		return apperror.ErrDisputeNotFound()
	}
	delete(r.disputes, id)
	return nil
}

func (r *DisputeRepo) List(ctx context.Context, params ports.DisputeListParams) (*ports.DisputePage, error) {
	if err := r.sim.run(ctx, "dispute.list", true); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]domain.Dispute, 0, len(r.disputes))
	for _, d := range r.disputes {
		if params.Status != nil && d.Status != *params.Status {
			continue
		}
		if params.AssignedTo != nil {
			if d.AssignedTo == nil || !strings.EqualFold(d.AssignedTo.ID, *params.AssignedTo) {
				continue
			}
		}
		matched = append(matched, *d.Clone())
	}
	r.mu.RUnlock()

	// Newest first; ID breaks creation-time ties deterministically.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	page, pageSize := normalizePage(params.Page, params.PageSize)
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	return &ports.DisputePage{
		Data:       matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (r *DisputeRepo) CountByStatus(ctx context.Context) (map[domain.DisputeStatus]int64, error) {
	if err := r.sim.run(ctx, "dispute.count", false); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.DisputeStatus]int64)
	for _, d := range r.disputes {
		counts[d.Status]++
	}
	return counts, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
