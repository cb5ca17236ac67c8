package service

import (
	"context"
	"fmt"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// disputeService implements ports.DisputeService. Every successful mutation
// runs the post-commit chain: audit append, then reconciliation against the
// transaction directory, then an event publish. The chain is not atomic: a
// failure after the repository write is reported, never rolled back.
type disputeService struct {
	repo      ports.DisputeRepository
	directory ports.TransactionDirectory
	audit     ports.AuditService
	bus       ports.EventBus
	retry     retryPolicy
	log       zerolog.Logger
}

func NewDisputeService(
	repo ports.DisputeRepository,
	directory ports.TransactionDirectory,
	audit ports.AuditService,
	bus ports.EventBus,
	retry retryPolicy,
	log zerolog.Logger,
) ports.DisputeService {
	return &disputeService{
		repo:      repo,
		directory: directory,
		audit:     audit,
		bus:       bus,
		retry:     retry,
		log:       log,
	}
}

func (s *disputeService) CreateDispute(ctx context.Context, req ports.CreateDisputeRequest) (*domain.Dispute, error) {
	if !domain.HasCapability(req.Actor.Role, domain.CapCreateDispute) {
		return nil, apperror.ErrCapabilityMissing(string(domain.CapCreateDispute))
	}
	if req.Form.TransactionID == "" {
		return nil, apperror.Validation("transaction_id is required")
	}
	if req.Form.Reason == "" {
		return nil, apperror.Validation("reason is required")
	}
	if req.Form.RequestedAmount <= 0 {
		return nil, apperror.Validation("requested_amount must be positive")
	}

	// Directory reads are the one retried path; a missing transaction is
	// permanent and aborts immediately.
	var tx *domain.Transaction
	err := s.retry.do(ctx, "directory.get", func() error {
		var e error
		tx, e = s.directory.GetByID(ctx, req.Form.TransactionID)
		return e
	})
	if err != nil {
		return nil, err
	}
	if req.Form.RequestedAmount > tx.Amount {
		return nil, apperror.Validation("requested_amount exceeds the transaction amount")
	}

	status := domain.DisputeStatusCreated
	if req.IsDraft {
		status = domain.DisputeStatusDraft
	}
	priority := req.Form.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	created, err := s.repo.Create(ctx, &domain.Dispute{
		TransactionID:   tx.ID,
		Status:          status,
		Reason:          req.Form.Reason,
		ReasonCode:      req.Form.ReasonCode,
		Category:        req.Form.Category,
		Priority:        priority,
		Description:     req.Form.Description,
		OriginalAmount:  tx.Amount,
		RequestedAmount: req.Form.RequestedAmount,
		ClaimedAmount:   req.Form.RequestedAmount,
		Currency:        tx.Currency,
		Evidence:        req.Form.Evidence,
		CreatedBy:       req.Actor,
	})
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("create dispute: %w", err))
	}

	s.log.Info().
		Str("dispute_id", created.ID).
		Str("transaction_id", tx.ID).
		Str("status", string(created.Status)).
		Msg("dispute created")

	if _, err := s.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: created.ID,
		Action:    domain.AuditActionDisputeCreated,
		Actor:     req.Actor,
		Details: map[string]any{
			"transaction_id":   tx.ID,
			"requested_amount": created.RequestedAmount,
			"is_draft":         req.IsDraft,
		},
		NewValue: created.Status,
	}); err != nil {
		return created, apperror.ErrPostCommit("audit", err)
	}

	// Dispute creation marks the transaction disputed regardless of whether
	// the dispute starts as a draft.
	if err := s.directory.UpdateStatus(ctx, tx.ID, domain.TransactionStatusDisputed); err != nil {
		return created, apperror.ErrPostCommit("reconciliation", err)
	}

	s.bus.Publish(domain.EventUpdated, created.ID, map[string]any{
		"action": "created",
		"status": string(created.Status),
	}, req.Actor.ID)

	return created, nil
}

func (s *disputeService) GetDisputeByID(ctx context.Context, id string) (*domain.Dispute, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *disputeService) GetDisputes(ctx context.Context, params ports.DisputeListParams) (*ports.DisputePage, error) {
	var page *ports.DisputePage
	err := s.retry.do(ctx, "dispute.list", func() error {
		var e error
		page, e = s.repo.List(ctx, params)
		return e
	})
	return page, err
}

func (s *disputeService) UpdateDispute(ctx context.Context, req ports.UpdateDisputeRequest) (ports.WriteResult, error) {
	if !domain.HasCapability(req.Actor.Role, domain.CapEditDispute) {
		return ports.WriteResult{}, apperror.ErrCapabilityMissing(string(domain.CapEditDispute))
	}
	if req.Patch.Status != nil {
		return ports.WriteResult{}, apperror.Validation("status changes go through the workflow, not update")
	}

	expected, err := s.resolveVersion(ctx, req.ID, req.ExpectedVersion)
	if err != nil {
		return ports.WriteResult{}, err
	}

	res, err := s.repo.Write(ctx, req.ID, req.Patch, expected)
	if err != nil {
		return ports.WriteResult{}, err
	}
	if res.Conflict {
		s.publishConflict(req.ID, expected, res.Dispute, req.Actor.ID)
		return res, nil
	}

	if _, err := s.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: req.ID,
		Action:    domain.AuditActionDisputeUpdated,
		Actor:     req.Actor,
		Details:   map[string]any{"version": res.Dispute.Version},
	}); err != nil {
		return res, apperror.ErrPostCommit("audit", err)
	}

	s.bus.Publish(domain.EventUpdated, req.ID, map[string]any{
		"version": res.Dispute.Version,
	}, req.Actor.ID)

	return res, nil
}

func (s *disputeService) AssignDispute(ctx context.Context, id, assigneeID string, actor domain.Actor, expectedVersion *int64) (ports.WriteResult, error) {
	if !domain.HasCapability(actor.Role, domain.CapAssignDispute) {
		return ports.WriteResult{}, apperror.ErrCapabilityMissing(string(domain.CapAssignDispute))
	}
	if assigneeID == "" {
		return ports.WriteResult{}, apperror.Validation("assignee id is required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ports.WriteResult{}, err
	}
	var previous *domain.Actor
	if current.AssignedTo != nil {
		a := *current.AssignedTo
		previous = &a
	}

	expected := current.Version
	if expectedVersion != nil {
		expected = *expectedVersion
	}

	assignee := domain.Actor{ID: assigneeID, Name: assigneeID}
	res, err := s.repo.Write(ctx, id, domain.DisputePatch{AssignedTo: &assignee}, expected)
	if err != nil {
		return ports.WriteResult{}, err
	}
	if res.Conflict {
		s.publishConflict(id, expected, res.Dispute, actor.ID)
		return res, nil
	}

	if _, err := s.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID:     id,
		Action:        domain.AuditActionDisputeAssigned,
		Actor:         actor,
		Details:       map[string]any{"assignee": assigneeID},
		PreviousValue: previous,
		NewValue:      assignee,
	}); err != nil {
		return res, apperror.ErrPostCommit("audit", err)
	}

	s.bus.Publish(domain.EventAssigned, id, map[string]any{
		"assignee": assigneeID,
	}, actor.ID)

	return res, nil
}

func (s *disputeService) AddEvidence(ctx context.Context, id string, ev domain.Evidence, actor domain.Actor, expectedVersion *int64) (ports.WriteResult, error) {
	if !domain.HasCapability(actor.Role, domain.CapEditDispute) {
		return ports.WriteResult{}, apperror.ErrCapabilityMissing(string(domain.CapEditDispute))
	}
	if ev.FileName == "" {
		return ports.WriteResult{}, apperror.Validation("evidence file_name is required")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ports.WriteResult{}, err
	}

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	ev.UploadedBy = actor.ID

	expected := current.Version
	if expectedVersion != nil {
		expected = *expectedVersion
	}

	evidence := append(append([]domain.Evidence{}, current.Evidence...), ev)
	res, err := s.repo.Write(ctx, id, domain.DisputePatch{Evidence: &evidence}, expected)
	if err != nil {
		return ports.WriteResult{}, err
	}
	if res.Conflict {
		s.publishConflict(id, expected, res.Dispute, actor.ID)
		return res, nil
	}

	if _, err := s.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: id,
		Action:    domain.AuditActionEvidenceAdded,
		Actor:     actor,
		Details:   map[string]any{"file_name": ev.FileName, "type": ev.Type},
	}); err != nil {
		return res, apperror.ErrPostCommit("audit", err)
	}

	s.bus.Publish(domain.EventUpdated, id, map[string]any{
		"evidence_added": ev.FileName,
	}, actor.ID)

	return res, nil
}

func (s *disputeService) DeleteDispute(ctx context.Context, id string, actor domain.Actor) error {
	if !domain.HasCapability(actor.Role, domain.CapDeleteDispute) {
		return apperror.ErrCapabilityMissing(string(domain.CapDeleteDispute))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("dispute_id", id).Str("actor", actor.ID).Msg("dispute deleted")
	return nil
}

func (s *disputeService) CountByStatus(ctx context.Context) (map[domain.DisputeStatus]int64, error) {
	return s.repo.CountByStatus(ctx)
}

// resolveVersion picks the version a write is checked against. Callers that
// omit the token get the current stored version, which makes the write a
// last-writer-wins overwrite rather than a guarded one.
func (s *disputeService) resolveVersion(ctx context.Context, id string, expected *int64) (int64, error) {
	if expected != nil {
		return *expected, nil
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return current.Version, nil
}

func (s *disputeService) publishConflict(id string, localVersion int64, server *domain.Dispute, actorID string) {
	s.bus.Publish(domain.EventConflictDetected, id, map[string]any{
		"local_version":  localVersion,
		"server_version": server.Version,
	}, actorID)
}
