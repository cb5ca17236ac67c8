package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// DisputeRepo implements ports.DisputeRepository on PostgreSQL. The
// version-checked Write runs inside a database transaction: the current row
// is locked, compared against the expected version and only then updated, so
// concurrent writers serialize on the row lock and the loser observes the
// bumped version.
type DisputeRepo struct {
	pool  Pool
	clock ports.Clock
}

func NewDisputeRepo(pool Pool, clock ports.Clock) *DisputeRepo {
	return &DisputeRepo{pool: pool, clock: clock}
}

const disputeColumns = `id, transaction_id, status, reason, reason_code, category, priority, description,
		original_amount, requested_amount, claimed_amount, approved_amount, currency, evidence,
		created_by, assigned_to, resolved_by, created_at, updated_at, resolved_at, resolution_notes, version`

func (r *DisputeRepo) Create(ctx context.Context, dispute *domain.Dispute) (*domain.Dispute, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('dispute_id_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next dispute id: %w", err)
	}

	d := dispute.Clone()
	d.ID = fmt.Sprintf("DSP-%06d", seq)
	d.Version = 1
	now := r.clock.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Evidence == nil {
		d.Evidence = []domain.Evidence{}
	}

	evidence, createdBy, assignedTo, err := encodeDisputeJSON(d)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`INSERT INTO disputes (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`, disputeColumns)

	_, err = r.pool.Exec(ctx, query,
		d.ID, d.TransactionID, d.Status, d.Reason, d.ReasonCode, d.Category, d.Priority, d.Description,
		d.OriginalAmount, d.RequestedAmount, d.ClaimedAmount, d.ApprovedAmount, d.Currency, evidence,
		createdBy, assignedTo, d.ResolvedBy, d.CreatedAt, d.UpdatedAt, d.ResolvedAt, d.ResolutionNotes, d.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("insert dispute: %w", err)
	}
	return d, nil
}

func (r *DisputeRepo) GetByID(ctx context.Context, id string) (*domain.Dispute, error) {
	query := fmt.Sprintf(`SELECT %s FROM disputes WHERE id = $1`, disputeColumns)
	return scanDispute(r.pool.QueryRow(ctx, query, id))
}

// Write applies the patch if and only if the stored version matches the
// expected one. On mismatch no column changes and the caller gets the
// current row with Conflict set.
func (r *DisputeRepo) Write(ctx context.Context, id string, patch domain.DisputePatch, expectedVersion int64) (ports.WriteResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return ports.WriteResult{}, fmt.Errorf("begin write: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`SELECT %s FROM disputes WHERE id = $1 FOR UPDATE`, disputeColumns)
	current, err := scanDispute(tx.QueryRow(ctx, query, id))
	if err != nil {
		return ports.WriteResult{}, err
	}

	if current.Version != expectedVersion {
		return ports.WriteResult{Dispute: current, Conflict: true}, nil
	}

	next := current.Clone()
	patch.Apply(next)
	next.Version = current.Version + 1
	next.UpdatedAt = r.clock.Now()

	// created_by is immutable after insert and stays out of the update.
	evidence, _, assignedTo, err := encodeDisputeJSON(next)
	if err != nil {
		return ports.WriteResult{}, err
	}

	_, err = tx.Exec(ctx, `UPDATE disputes SET
			status = $2, reason = $3, reason_code = $4, category = $5, priority = $6, description = $7,
			requested_amount = $8, claimed_amount = $9, approved_amount = $10, evidence = $11,
			assigned_to = $12, resolved_by = $13, updated_at = $14, resolved_at = $15,
			resolution_notes = $16, version = $17
		WHERE id = $1`,
		next.ID, next.Status, next.Reason, next.ReasonCode, next.Category, next.Priority, next.Description,
		next.RequestedAmount, next.ClaimedAmount, next.ApprovedAmount, evidence,
		assignedTo, next.ResolvedBy, next.UpdatedAt, next.ResolvedAt,
		next.ResolutionNotes, next.Version,
	)
	if err != nil {
		return ports.WriteResult{}, fmt.Errorf("update dispute: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return ports.WriteResult{}, fmt.Errorf("commit write: %w", err)
	}
	return ports.WriteResult{Dispute: next}, nil
}

func (r *DisputeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM disputes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dispute: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrDisputeNotFound()
	}
	return nil
}

// List fetches disputes newest first with filtering and pagination.
func (r *DisputeRepo) List(ctx context.Context, params ports.DisputeListParams) (*ports.DisputePage, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.AssignedTo != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(assigned_to->>'id') = LOWER($%d)", argIdx))
		args = append(args, *params.AssignedTo)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM disputes %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count disputes: %w", err)
	}

	page, pageSize := normalizePage(params.Page, params.PageSize)
	offset := (page - 1) * pageSize

	dataQuery := fmt.Sprintf(`SELECT %s FROM disputes %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		disputeColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list disputes: %w", err)
	}
	defer rows.Close()

	disputes := []domain.Dispute{}
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, err
		}
		disputes = append(disputes, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispute rows: %w", err)
	}

	return &ports.DisputePage{
		Data:       disputes,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (r *DisputeRepo) CountByStatus(ctx context.Context) (map[domain.DisputeStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM disputes GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count disputes by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.DisputeStatus]int64)
	for rows.Next() {
		var status domain.DisputeStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}
	return counts, nil
}

func encodeDisputeJSON(d *domain.Dispute) (evidence, createdBy, assignedTo []byte, err error) {
	evidence, err = json.Marshal(d.Evidence)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal evidence: %w", err)
	}
	createdBy, err = json.Marshal(d.CreatedBy)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal created_by: %w", err)
	}
	if d.AssignedTo != nil {
		assignedTo, err = json.Marshal(d.AssignedTo)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("marshal assigned_to: %w", err)
		}
	}
	return evidence, createdBy, assignedTo, nil
}

func scanDispute(row pgx.Row) (*domain.Dispute, error) {
	d := &domain.Dispute{}
	var evidence, createdBy, assignedTo []byte
	err := row.Scan(
		&d.ID, &d.TransactionID, &d.Status, &d.Reason, &d.ReasonCode, &d.Category, &d.Priority, &d.Description,
		&d.OriginalAmount, &d.RequestedAmount, &d.ClaimedAmount, &d.ApprovedAmount, &d.Currency, &evidence,
		&createdBy, &assignedTo, &d.ResolvedBy, &d.CreatedAt, &d.UpdatedAt, &d.ResolvedAt, &d.ResolutionNotes, &d.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrDisputeNotFound()
		}
		return nil, fmt.Errorf("scan dispute: %w", err)
	}

	if len(evidence) > 0 {
		if err := json.Unmarshal(evidence, &d.Evidence); err != nil {
			return nil, fmt.Errorf("unmarshal evidence: %w", err)
		}
	}
	if d.Evidence == nil {
		d.Evidence = []domain.Evidence{}
	}
	if len(createdBy) > 0 {
		if err := json.Unmarshal(createdBy, &d.CreatedBy); err != nil {
			return nil, fmt.Errorf("unmarshal created_by: %w", err)
		}
	}
	if len(assignedTo) > 0 {
		var a domain.Actor
		if err := json.Unmarshal(assignedTo, &a); err != nil {
			return nil, fmt.Errorf("unmarshal assigned_to: %w", err)
		}
		d.AssignedTo = &a
	}
	return d, nil
}
