package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// auditService wraps the append-only ledger. Reads are retried on transient
// failure; the append itself is not, so a failed append surfaces to the
// caller as a post-commit error instead of a silent duplicate.
type auditService struct {
	repo  ports.AuditRepository
	clock ports.Clock
	retry retryPolicy
	log   zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, clock ports.Clock, retry retryPolicy, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, clock: clock, retry: retry, log: log}
}

func (s *auditService) LogAction(ctx context.Context, req ports.LogActionRequest) (*domain.AuditLogEntry, error) {
	if req.Action == "" {
		return nil, apperror.Validation("audit action is required")
	}
	if req.Actor.ID == "" {
		return nil, apperror.ErrInvalidIdentity()
	}

	entry := domain.AuditLogEntry{
		DisputeID:     req.DisputeID,
		Action:        req.Action,
		Actor:         req.Actor,
		Timestamp:     s.clock.Now(),
		Details:       req.Details,
		PreviousValue: req.PreviousValue,
		NewValue:      req.NewValue,
	}

	appended, err := s.repo.Append(ctx, entry)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("append audit entry: %w", err))
	}

	s.log.Info().
		Str("audit_id", appended.ID).
		Str("dispute_id", appended.DisputeID).
		Str("action", string(appended.Action)).
		Str("actor", appended.Actor.ID).
		Msg("audit")

	return appended, nil
}

func (s *auditService) GetDisputeAuditLog(ctx context.Context, disputeID string) ([]domain.AuditLogEntry, error) {
	var entries []domain.AuditLogEntry
	err := s.retry.do(ctx, "audit.by_dispute", func() error {
		var e error
		entries, e = s.repo.ByDispute(ctx, disputeID)
		return e
	})
	return entries, err
}

func (s *auditService) GetAllAuditLogs(ctx context.Context, params ports.AuditListParams) (*ports.AuditPage, error) {
	var page *ports.AuditPage
	err := s.retry.do(ctx, "audit.list", func() error {
		var e error
		page, e = s.repo.List(ctx, params)
		return e
	})
	return page, err
}

func (s *auditService) GetAuditLogsByAction(ctx context.Context, action domain.AuditAction) ([]domain.AuditLogEntry, error) {
	var entries []domain.AuditLogEntry
	err := s.retry.do(ctx, "audit.by_action", func() error {
		var e error
		entries, e = s.repo.ByAction(ctx, action)
		return e
	})
	return entries, err
}

func (s *auditService) GetAuditLogsByActor(ctx context.Context, actorID string) ([]domain.AuditLogEntry, error) {
	var entries []domain.AuditLogEntry
	err := s.retry.do(ctx, "audit.by_actor", func() error {
		var e error
		entries, e = s.repo.ByActor(ctx, actorID)
		return e
	})
	return entries, err
}

func (s *auditService) GetAuditLogsByDateRange(ctx context.Context, from, to time.Time) ([]domain.AuditLogEntry, error) {
	var entries []domain.AuditLogEntry
	err := s.retry.do(ctx, "audit.by_time_range", func() error {
		var e error
		entries, e = s.repo.ByTimeRange(ctx, from, to)
		return e
	})
	return entries, err
}

// ExportAuditLog renders the ledger (newest first) as an indented JSON
// array, optionally scoped to one dispute.
func (s *auditService) ExportAuditLog(ctx context.Context, disputeID *string) ([]byte, error) {
	var entries []domain.AuditLogEntry
	err := s.retry.do(ctx, "audit.export", func() error {
		var e error
		entries, e = s.repo.All(ctx, disputeID)
		return e
	})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.AuditLogEntry{}
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal audit export: %w", err))
	}
	return out, nil
}

func (s *auditService) GetAuditStats(ctx context.Context) (*domain.AuditStats, error) {
	var entries []domain.AuditLogEntry
	err := s.retry.do(ctx, "audit.stats", func() error {
		var e error
		entries, e = s.repo.All(ctx, nil)
		return e
	})
	if err != nil {
		return nil, err
	}

	stats := &domain.AuditStats{
		TotalEntries:    int64(len(entries)),
		EntriesByAction: make(map[string]int64),
		EntriesByActor:  make(map[string]int64),
	}
	for _, e := range entries {
		stats.EntriesByAction[string(e.Action)]++
		stats.EntriesByActor[e.Actor.Name]++
	}
	return stats, nil
}
