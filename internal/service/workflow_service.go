package service

import (
	"context"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// workflowService validates and executes status transitions. A transition
// passes three gates in order: the edge must exist in the transition table,
// the actor's role must pass the coarse gate, and the actor must hold the
// capability bound to the target status. Only then does the version-checked
// write run.
type workflowService struct {
	repo      ports.DisputeRepository
	directory ports.TransactionDirectory
	audit     ports.AuditService
	bus       ports.EventBus
	clock     ports.Clock
	log       zerolog.Logger
}

func NewWorkflowService(
	repo ports.DisputeRepository,
	directory ports.TransactionDirectory,
	audit ports.AuditService,
	bus ports.EventBus,
	clock ports.Clock,
	log zerolog.Logger,
) ports.WorkflowService {
	return &workflowService{
		repo:      repo,
		directory: directory,
		audit:     audit,
		bus:       bus,
		clock:     clock,
		log:       log,
	}
}

// transitionAuditAction maps a reached status to its ledger action. Statuses
// without a dedicated action fall back to status_changed.
func transitionAuditAction(to domain.DisputeStatus) domain.AuditAction {
	switch to {
	case domain.DisputeStatusApproved:
		return domain.AuditActionDisputeApproved
	case domain.DisputeStatusRejected:
		return domain.AuditActionDisputeRejected
	case domain.DisputeStatusSettled:
		return domain.AuditActionDisputeSettled
	default:
		return domain.AuditActionStatusChanged
	}
}

func (s *workflowService) ChangeStatus(ctx context.Context, req ports.ChangeStatusRequest) (ports.WriteResult, error) {
	if req.Actor.ID == "" {
		return ports.WriteResult{}, apperror.ErrInvalidIdentity()
	}
	if req.NewStatus == domain.DisputeStatusRejected && req.Notes == "" {
		return ports.WriteResult{}, apperror.ErrRejectionNotesRequired()
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return ports.WriteResult{}, err
	}

	if !domain.TransitionEdgeExists(current.Status, req.NewStatus) {
		return ports.WriteResult{}, apperror.ErrTransitionDenied(string(current.Status), string(req.NewStatus))
	}
	if !domain.CanTransition(current.Status, req.NewStatus, req.Actor) {
		if c, bound := domain.TransitionCapability(req.NewStatus); bound && !domain.HasCapability(req.Actor.Role, c) {
			return ports.WriteResult{}, apperror.ErrCapabilityMissing(string(c))
		}
		return ports.WriteResult{}, apperror.ErrTransitionDenied(string(current.Status), string(req.NewStatus))
	}

	patch := domain.DisputePatch{Status: &req.NewStatus}
	if req.Notes != "" {
		patch.ResolutionNotes = &req.Notes
	}

	switch req.NewStatus {
	case domain.DisputeStatusApproved:
		amount := current.RequestedAmount
		if req.ApprovedAmount != nil {
			if *req.ApprovedAmount != current.RequestedAmount && !domain.HasCapability(req.Actor.Role, domain.CapAdjustAmount) {
				return ports.WriteResult{}, apperror.ErrCapabilityMissing(string(domain.CapAdjustAmount))
			}
			if *req.ApprovedAmount <= 0 || *req.ApprovedAmount > current.RequestedAmount {
				return ports.WriteResult{}, apperror.Validation("approved_amount must be within (0, requested_amount]")
			}
			amount = *req.ApprovedAmount
		}
		patch.ApprovedAmount = &amount
		s.stampResolution(&patch, req.Actor)
	case domain.DisputeStatusRejected:
		s.stampResolution(&patch, req.Actor)
	case domain.DisputeStatusSettled:
		s.stampResolution(&patch, req.Actor)
	}

	expected := current.Version
	if req.ExpectedVersion != nil {
		expected = *req.ExpectedVersion
	}

	res, err := s.repo.Write(ctx, req.ID, patch, expected)
	if err != nil {
		return ports.WriteResult{}, err
	}
	if res.Conflict {
		s.bus.Publish(domain.EventConflictDetected, req.ID, map[string]any{
			"local_version":  expected,
			"server_version": res.Dispute.Version,
		}, req.Actor.ID)
		return res, nil
	}

	s.log.Info().
		Str("dispute_id", req.ID).
		Str("from", string(current.Status)).
		Str("to", string(req.NewStatus)).
		Str("actor", req.Actor.ID).
		Msg("status changed")

	details := map[string]any{"from": string(current.Status), "to": string(req.NewStatus)}
	if req.Notes != "" {
		details["notes"] = req.Notes
	}
	if patch.ApprovedAmount != nil {
		details["approved_amount"] = *patch.ApprovedAmount
	}
	if _, err := s.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID:     req.ID,
		Action:        transitionAuditAction(req.NewStatus),
		Actor:         req.Actor,
		Details:       details,
		PreviousValue: current.Status,
		NewValue:      req.NewStatus,
	}); err != nil {
		return res, apperror.ErrPostCommit("audit", err)
	}

	// Reconciliation is re-applied on every transition that maps to a
	// transaction status, even when the value would not change.
	if txStatus, ok := domain.TransactionStatusFor(req.NewStatus); ok {
		if err := s.directory.UpdateStatus(ctx, res.Dispute.TransactionID, txStatus); err != nil {
			return res, apperror.ErrPostCommit("reconciliation", err)
		}
	}

	s.bus.Publish(domain.EventStatusChanged, req.ID, map[string]any{
		"from":    string(current.Status),
		"to":      string(req.NewStatus),
		"version": res.Dispute.Version,
	}, req.Actor.ID)

	return res, nil
}

func (s *workflowService) stampResolution(patch *domain.DisputePatch, actor domain.Actor) {
	resolvedBy := actor.ID
	resolvedAt := s.clock.Now()
	patch.ResolvedBy = &resolvedBy
	patch.ResolvedAt = &resolvedAt
}

func (s *workflowService) AvailableTransitions(ctx context.Context, id string, actor domain.Actor) ([]domain.DisputeStatus, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.AvailableTransitions(current.Status, actor), nil
}

// WarnConflict compares a caller's local version against the stored one and,
// on mismatch, publishes an advisory conflict_detected event. A non-nil local
// snapshot narrows the report to the fields that actually diverge. It never
// blocks anything; the authoritative check stays inside the write.
func (s *workflowService) WarnConflict(ctx context.Context, id string, localVersion int64, local *domain.Dispute) (*domain.ConflictInfo, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Version == localVersion {
		return nil, nil
	}

	info := &domain.ConflictInfo{
		DisputeID:     id,
		LocalVersion:  localVersion,
		ServerVersion: current.Version,
		ServerData:    current,
	}
	if local != nil {
		info.ConflictedFields = domain.DiffFields(local, current)
	}
	s.bus.Publish(domain.EventConflictDetected, id, map[string]any{
		"local_version":  localVersion,
		"server_version": current.Version,
	}, "")
	return info, nil
}

// Rebase resolves a conflict the keep_local way: re-read the server state
// and reapply the caller's patch against the current version. The reapplied
// write goes through the same version check and can itself conflict.
func (s *workflowService) Rebase(ctx context.Context, req ports.UpdateDisputeRequest) (ports.WriteResult, error) {
	if !domain.HasCapability(req.Actor.Role, domain.CapEditDispute) {
		return ports.WriteResult{}, apperror.ErrCapabilityMissing(string(domain.CapEditDispute))
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return ports.WriteResult{}, err
	}

	res, err := s.repo.Write(ctx, req.ID, req.Patch, current.Version)
	if err != nil {
		return ports.WriteResult{}, err
	}
	if res.Conflict {
		return res, nil
	}

	details := map[string]any{"resolution": "keep_local", "version": res.Dispute.Version}
	if req.ExpectedVersion != nil {
		details["rebased_from"] = *req.ExpectedVersion
	}
	if _, err := s.audit.LogAction(ctx, ports.LogActionRequest{
		DisputeID: req.ID,
		Action:    domain.AuditActionDisputeUpdated,
		Actor:     req.Actor,
		Details:   details,
	}); err != nil {
		return res, apperror.ErrPostCommit("audit", err)
	}

	s.bus.Publish(domain.EventUpdated, req.ID, map[string]any{
		"version": res.Dispute.Version,
	}, req.Actor.ID)

	return res, nil
}
