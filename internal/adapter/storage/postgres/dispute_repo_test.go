package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dispute-resolution-engine/internal/adapter/clock"
	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() *clock.Manual {
	return clock.NewManual(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
}

func newStoredDispute(clk *clock.Manual) *domain.Dispute {
	now := clk.Now()
	return &domain.Dispute{
		ID:              "DSP-000001",
		TransactionID:   "TXN-000000001",
		Status:          domain.DisputeStatusCreated,
		Reason:          domain.ReasonDuplicateCharge,
		Priority:        domain.PriorityMedium,
		Description:     "charged twice",
		OriginalAmount:  500000,
		RequestedAmount: 250000,
		ClaimedAmount:   250000,
		Currency:        "VND",
		Evidence:        []domain.Evidence{},
		CreatedBy:       domain.Actor{ID: "USR-2001", Name: "Mai Lan", Role: domain.RoleSupportAgent},
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}
}

func disputeColumnNames() []string {
	return []string{"id", "transaction_id", "status", "reason", "reason_code", "category", "priority", "description",
		"original_amount", "requested_amount", "claimed_amount", "approved_amount", "currency", "evidence",
		"created_by", "assigned_to", "resolved_by", "created_at", "updated_at", "resolved_at", "resolution_notes", "version"}
}

func disputeRow(t *testing.T, d *domain.Dispute) *pgxmock.Rows {
	t.Helper()
	evidence, err := json.Marshal(d.Evidence)
	require.NoError(t, err)
	createdBy, err := json.Marshal(d.CreatedBy)
	require.NoError(t, err)
	var assignedTo []byte
	if d.AssignedTo != nil {
		assignedTo, err = json.Marshal(d.AssignedTo)
		require.NoError(t, err)
	}

	return pgxmock.NewRows(disputeColumnNames()).AddRow(
		d.ID, d.TransactionID, d.Status, d.Reason, d.ReasonCode, d.Category, d.Priority, d.Description,
		d.OriginalAmount, d.RequestedAmount, d.ClaimedAmount, d.ApprovedAmount, d.Currency, evidence,
		createdBy, assignedTo, d.ResolvedBy, d.CreatedAt, d.UpdatedAt, d.ResolvedAt, d.ResolutionNotes, d.Version,
	)
}

func TestDisputeRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	clk := testClock()
	repo := NewDisputeRepo(mock, clk)

	mock.ExpectQuery("SELECT nextval").
		WillReturnRows(pgxmock.NewRows([]string{"nextval"}).AddRow(int64(1)))
	mock.ExpectExec("INSERT INTO disputes").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := repo.Create(context.Background(), &domain.Dispute{
		TransactionID:   "TXN-000000001",
		Status:          domain.DisputeStatusCreated,
		Reason:          domain.ReasonDuplicateCharge,
		Priority:        domain.PriorityMedium,
		RequestedAmount: 250000,
		ClaimedAmount:   250000,
		OriginalAmount:  500000,
		Currency:        "VND",
	})
	require.NoError(t, err)
	assert.Equal(t, "DSP-000001", created.ID)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, clk.Now(), created.CreatedAt)
	assert.NotNil(t, created.Evidence)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisputeRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDisputeRepo(mock, testClock())

	mock.ExpectQuery("SELECT (.+) FROM disputes WHERE id").
		WithArgs("DSP-999999").
		WillReturnRows(pgxmock.NewRows(disputeColumnNames()))

	_, err = repo.GetByID(context.Background(), "DSP-999999")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DSP_001", appErr.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisputeRepo_Write_MatchingVersionUpdates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	clk := testClock()
	repo := NewDisputeRepo(mock, clk)
	stored := newStoredDispute(clk)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM disputes WHERE id = (.+) FOR UPDATE").
		WithArgs("DSP-000001").
		WillReturnRows(disputeRow(t, stored))
	mock.ExpectExec("UPDATE disputes SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	status := domain.DisputeStatusUnderReview
	res, err := repo.Write(context.Background(), "DSP-000001", domain.DisputePatch{Status: &status}, 1)
	require.NoError(t, err)
	assert.False(t, res.Conflict)
	assert.Equal(t, int64(2), res.Dispute.Version)
	assert.Equal(t, domain.DisputeStatusUnderReview, res.Dispute.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisputeRepo_Write_StaleVersionConflicts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	clk := testClock()
	repo := NewDisputeRepo(mock, clk)
	stored := newStoredDispute(clk)
	stored.Version = 3

	// No UPDATE is issued; the transaction rolls back.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM disputes WHERE id = (.+) FOR UPDATE").
		WithArgs("DSP-000001").
		WillReturnRows(disputeRow(t, stored))
	mock.ExpectRollback()

	status := domain.DisputeStatusUnderReview
	res, err := repo.Write(context.Background(), "DSP-000001", domain.DisputePatch{Status: &status}, 1)
	require.NoError(t, err, "a stale version is a conflict result, not an error")
	assert.True(t, res.Conflict)
	assert.Equal(t, int64(3), res.Dispute.Version)
	assert.Equal(t, domain.DisputeStatusCreated, res.Dispute.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisputeRepo_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDisputeRepo(mock, testClock())

	mock.ExpectExec("DELETE FROM disputes").
		WithArgs("DSP-999999").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), "DSP-999999")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DSP_001", appErr.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisputeRepo_List_FiltersByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	clk := testClock()
	repo := NewDisputeRepo(mock, clk)
	stored := newStoredDispute(clk)

	mock.ExpectQuery("SELECT COUNT(.+) FROM disputes WHERE status").
		WithArgs(domain.DisputeStatusCreated).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM disputes WHERE status (.+) ORDER BY created_at DESC").
		WithArgs(domain.DisputeStatusCreated, 20, 0).
		WillReturnRows(disputeRow(t, stored))

	status := domain.DisputeStatusCreated
	page, err := repo.List(context.Background(), ports.DisputeListParams{Status: &status, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "DSP-000001", page.Data[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDisputeRepo_CountByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDisputeRepo(mock, testClock())

	mock.ExpectQuery("SELECT status, COUNT(.+) FROM disputes GROUP BY status").
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow(domain.DisputeStatusCreated, int64(2)).
			AddRow(domain.DisputeStatusSettled, int64(1)))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.DisputeStatusCreated])
	assert.Equal(t, int64(1), counts[domain.DisputeStatusSettled])

	require.NoError(t, mock.ExpectationsWereMet())
}
