package service

import (
	"context"
	"sync"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// draftManager debounces autosaves on the trailing edge: each edit restarts
// the window and replaces the pending payload, so N edits inside one
// quiescent period persist exactly once, with the latest payload. Draft
// writes carry no version and no conflict detection.
type draftManager struct {
	repo    ports.DraftRepository
	dispute ports.DisputeService
	audit   ports.AuditService
	clock   ports.Clock
	delay   time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	state   domain.DraftState
	pending *domain.Draft
	draftID string
	gen     uint64
}

func NewDraftManager(
	repo ports.DraftRepository,
	dispute ports.DisputeService,
	audit ports.AuditService,
	clock ports.Clock,
	delay time.Duration,
	log zerolog.Logger,
) ports.DraftManager {
	return &draftManager{
		repo:    repo,
		dispute: dispute,
		audit:   audit,
		clock:   clock,
		delay:   delay,
		log:     log,
		state:   domain.DraftStateIdle,
	}
}

func (m *draftManager) SaveDraft(ctx context.Context, data domain.DraftFormData, step int) error {
	m.mu.Lock()
	// Successive autosaves send only the fields the user touched; overlay
	// them on whatever is already pending.
	if m.pending != nil {
		data = m.pending.Data.Merge(data)
	}
	m.pending = &domain.Draft{
		ID:            m.draftID,
		TransactionID: data.TransactionID,
		Step:          step,
		Data:          data,
	}
	m.state = domain.DraftStatePending
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	fire := m.clock.After(m.delay)
	go func() {
		<-fire

		m.mu.Lock()
		stale := gen != m.gen
		m.mu.Unlock()
		if stale {
			// A newer edit restarted the window.
			return
		}

		if _, err := m.Flush(context.Background()); err != nil {
			m.log.Error().Err(err).Msg("draft autosave failed")
		}
	}()

	return nil
}

// Flush persists the pending payload immediately, if there is one.
func (m *draftManager) Flush(ctx context.Context) (*domain.Draft, error) {
	m.mu.Lock()
	draft := m.pending
	if draft == nil {
		m.mu.Unlock()
		return nil, nil
	}
	m.pending = nil
	m.state = domain.DraftStateSaving
	// Consume the window so a stale timer cannot double-fire.
	m.gen++
	m.mu.Unlock()

	saved, err := m.repo.Save(ctx, draft)

	m.mu.Lock()
	if err != nil {
		m.state = domain.DraftStateError
		// Keep the payload so the next window retries it.
		if m.pending == nil {
			m.pending = draft
		}
		m.mu.Unlock()
		return nil, err
	}
	m.state = domain.DraftStateSaved
	m.draftID = saved.ID
	m.mu.Unlock()

	m.log.Debug().Str("draft_id", saved.ID).Int("step", saved.Step).Msg("draft saved")

	if _, err := m.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: saved.ID,
		Action:    domain.AuditActionDraftSaved,
		Actor:     domain.Actor{ID: "system", Name: "autosave", Role: domain.RoleSupportAgent},
		Details:   map[string]any{"step": saved.Step},
	}); err != nil {
		return saved, apperror.ErrPostCommit("audit", err)
	}

	return saved, nil
}

func (m *draftManager) LoadDraft(ctx context.Context, id string) (*domain.Draft, error) {
	draft, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.draftID = draft.ID
	m.state = domain.DraftStateSaved
	m.mu.Unlock()

	if _, err := m.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: draft.ID,
		Action:    domain.AuditActionDraftResumed,
		Actor:     domain.Actor{ID: "system", Name: "autosave", Role: domain.RoleSupportAgent},
		Details:   map[string]any{"step": draft.Step},
	}); err != nil {
		return draft, apperror.ErrPostCommit("audit", err)
	}

	return draft, nil
}

func (m *draftManager) ListDrafts(ctx context.Context) ([]domain.Draft, error) {
	return m.repo.ListAll(ctx)
}

func (m *draftManager) DeleteDraft(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	if m.draftID == id {
		m.draftID = ""
		m.pending = nil
		m.state = domain.DraftStateIdle
	}
	m.mu.Unlock()

	return nil
}

// SubmitDraft promotes a draft into an ordinary dispute create, then removes
// the draft.
func (m *draftManager) SubmitDraft(ctx context.Context, id string, actor domain.Actor) (*domain.Dispute, error) {
	draft, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Data.RequestedAmount == nil {
		return nil, apperror.Validation("draft is missing requested_amount")
	}

	dispute, err := m.dispute.CreateDispute(ctx, ports.CreateDisputeRequest{
		Form: domain.DisputeFormData{
			TransactionID:   draft.Data.TransactionID,
			Category:        draft.Data.Category,
			ReasonCode:      draft.Data.ReasonCode,
			Reason:          draft.Data.Reason,
			Priority:        draft.Data.Priority,
			Description:     draft.Data.Description,
			RequestedAmount: *draft.Data.RequestedAmount,
			Evidence:        draft.Data.Evidence,
		},
		Actor: actor,
	})
	if err != nil {
		return nil, err
	}

	if err := m.DeleteDraft(ctx, id); err != nil {
		return dispute, apperror.ErrPostCommit("draft cleanup", err)
	}

	if _, err := m.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: dispute.ID,
		Action:    domain.AuditActionDisputeSubmitted,
		Actor:     actor,
		Details:   map[string]any{"draft_id": id},
	}); err != nil {
		return dispute, apperror.ErrPostCommit("audit", err)
	}

	return dispute, nil
}

func (m *draftManager) State() domain.DraftState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
