package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository on PostgreSQL. The table is
// append-only; no update or delete statement exists in this file.
type AuditRepo struct {
	pool  Pool
	clock ports.Clock
}

func NewAuditRepo(pool Pool, clock ports.Clock) *AuditRepo {
	return &AuditRepo{pool: pool, clock: clock}
}

const auditColumns = `id, dispute_id, action, actor, ts, details, previous_value, new_value`

func (r *AuditRepo) Append(ctx context.Context, entry domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('audit_id_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next audit id: %w", err)
	}

	entry.ID = fmt.Sprintf("AUD-%08d", seq)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.clock.Now()
	}

	actor, details, prev, next, err := encodeAuditJSON(&entry)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`INSERT INTO audit_log (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, auditColumns)
	_, err = r.pool.Exec(ctx, query,
		entry.ID, entry.DisputeID, entry.Action, actor, entry.Timestamp, details, prev, next,
	)
	if err != nil {
		return nil, fmt.Errorf("insert audit entry: %w", err)
	}
	return &entry, nil
}

func (r *AuditRepo) ByDispute(ctx context.Context, disputeID string) ([]domain.AuditLogEntry, error) {
	return r.query(ctx, `WHERE dispute_id = $1`, disputeID)
}

func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) (*ports.AuditPage, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count audit entries: %w", err)
	}

	page, pageSize := normalizePage(params.Page, params.PageSize)
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`SELECT %s FROM audit_log ORDER BY ts DESC, id DESC LIMIT $1 OFFSET $2`, auditColumns)
	rows, err := r.pool.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return &ports.AuditPage{Entries: entries, Total: total}, nil
}

func (r *AuditRepo) ByAction(ctx context.Context, action domain.AuditAction) ([]domain.AuditLogEntry, error) {
	return r.query(ctx, `WHERE action = $1`, action)
}

func (r *AuditRepo) ByActor(ctx context.Context, actorID string) ([]domain.AuditLogEntry, error) {
	return r.query(ctx, `WHERE actor->>'id' = $1`, actorID)
}

func (r *AuditRepo) ByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditLogEntry, error) {
	return r.query(ctx, `WHERE ts >= $1 AND ts <= $2`, from, to)
}

func (r *AuditRepo) All(ctx context.Context, disputeID *string) ([]domain.AuditLogEntry, error) {
	if disputeID != nil {
		return r.ByDispute(ctx, *disputeID)
	}
	return r.query(ctx, ``)
}

// query runs a filtered SELECT, newest first.
func (r *AuditRepo) query(ctx context.Context, where string, args ...any) ([]domain.AuditLogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM audit_log %s ORDER BY ts DESC, id DESC`, auditColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return entries, nil
}

func encodeAuditJSON(entry *domain.AuditLogEntry) (actor, details, prev, next []byte, err error) {
	actor, err = json.Marshal(entry.Actor)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal actor: %w", err)
	}
	if entry.Details != nil {
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("marshal details: %w", err)
		}
	}
	if entry.PreviousValue != nil {
		prev, err = json.Marshal(entry.PreviousValue)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("marshal previous_value: %w", err)
		}
	}
	if entry.NewValue != nil {
		next, err = json.Marshal(entry.NewValue)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("marshal new_value: %w", err)
		}
	}
	return actor, details, prev, next, nil
}

func scanAuditEntry(row pgx.Row) (*domain.AuditLogEntry, error) {
	entry := &domain.AuditLogEntry{}
	var actor, details, prev, next []byte
	err := row.Scan(
		&entry.ID, &entry.DisputeID, &entry.Action, &actor, &entry.Timestamp, &details, &prev, &next,
	)
	if err != nil {
		return nil, fmt.Errorf("scan audit entry: %w", err)
	}

	if len(actor) > 0 {
		if err := json.Unmarshal(actor, &entry.Actor); err != nil {
			return nil, fmt.Errorf("unmarshal actor: %w", err)
		}
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &entry.Details); err != nil {
			return nil, fmt.Errorf("unmarshal details: %w", err)
		}
	}
	if len(prev) > 0 {
		if err := json.Unmarshal(prev, &entry.PreviousValue); err != nil {
			return nil, fmt.Errorf("unmarshal previous_value: %w", err)
		}
	}
	if len(next) > 0 {
		if err := json.Unmarshal(next, &entry.NewValue); err != nil {
			return nil, fmt.Errorf("unmarshal new_value: %w", err)
		}
	}
	return entry, nil
}
