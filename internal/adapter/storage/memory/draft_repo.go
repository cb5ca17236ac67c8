package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"
)

// DraftRepo is the in-memory draft store. Drafts carry no version and no
// conflict detection: the last save wins.
type DraftRepo struct {
	mu     sync.RWMutex
	drafts map[string]*domain.Draft
	seq    int64
	sim    *Simulator
	clock  ports.Clock
}

func NewDraftRepo(sim *Simulator, clock ports.Clock) *DraftRepo {
	return &DraftRepo{
		drafts: make(map[string]*domain.Draft),
		sim:    sim,
		clock:  clock,
	}
}

func (r *DraftRepo) Save(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	if err := r.sim.run(ctx, "draft.save", true); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *draft
	if stored.ID == "" {
		r.seq++
		stored.ID = fmt.Sprintf("DRAFT-%04d", r.seq)
	}
	stored.SavedAt = r.clock.Now()
	r.drafts[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *DraftRepo) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	if err := r.sim.run(ctx, "draft.get", false); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drafts[id]
	if !ok {
		return nil, apperror.ErrDraftNotFound()
	}
	out := *d
	return &out, nil
}

func (r *DraftRepo) ListAll(ctx context.Context) ([]domain.Draft, error) {
	if err := r.sim.run(ctx, "draft.list", false); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Draft, 0, len(r.drafts))
	for _, d := range r.drafts {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].SavedAt.After(out[j].SavedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *DraftRepo) Delete(ctx context.Context, id string) error {
	if err := r.sim.run(ctx, "draft.delete", true); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return apperror.ErrDraftNotFound()
	}
	delete(r.drafts, id)
	return nil
}
