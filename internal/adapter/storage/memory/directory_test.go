package memory

import (
	"context"
	"testing"
	"time"

	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBase() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestDirectory(t *testing.T, n int) *Directory {
	t.Helper()
	dir := NewDirectory(NewDeterministicSimulator())
	dir.Seed(SampleTransactions(n, seedBase()))
	return dir
}

func TestDirectory_GetByID(t *testing.T) {
	dir := newTestDirectory(t, 10)

	tx, err := dir.GetByID(context.Background(), "TXN-000000001")
	require.NoError(t, err)
	assert.Equal(t, "USR-1001", tx.UserID)

	_, err = dir.GetByID(context.Background(), "TXN-does-not-exist")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DSP_002", appErr.Code)
}

func TestDirectory_UpdateStatus(t *testing.T) {
	dir := newTestDirectory(t, 5)
	ctx := context.Background()

	require.NoError(t, dir.UpdateStatus(ctx, "TXN-000000001", domain.TransactionStatusDisputed))

	tx, err := dir.GetByID(ctx, "TXN-000000001")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusDisputed, tx.Status)

	// Re-applying the same status is a valid no-op write.
	require.NoError(t, dir.UpdateStatus(ctx, "TXN-000000001", domain.TransactionStatusDisputed))

	assert.Error(t, dir.UpdateStatus(ctx, "TXN-missing", domain.TransactionStatusRefunded))
}

func TestDirectory_Search_SubstringCaseInsensitive(t *testing.T) {
	dir := newTestDirectory(t, 10)

	page, err := dir.Search(context.Background(), ports.TransactionSearchParams{
		UserName: "nguyen van",
	}, 1, 50)
	require.NoError(t, err)
	require.NotEmpty(t, page.Data)
	for _, tx := range page.Data {
		assert.Equal(t, "Nguyen Van An", tx.UserName)
	}
}

func TestDirectory_Search_CombinedFiltersAndAmountRange(t *testing.T) {
	dir := newTestDirectory(t, 40)

	txType := domain.TransactionTypePayment
	minAmount := int64(100000)
	maxAmount := int64(500000)
	page, err := dir.Search(context.Background(), ports.TransactionSearchParams{
		Type:      &txType,
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
	}, 1, 50)
	require.NoError(t, err)
	require.NotEmpty(t, page.Data)
	for _, tx := range page.Data {
		assert.Equal(t, domain.TransactionTypePayment, tx.Type)
		assert.GreaterOrEqual(t, tx.Amount, minAmount)
		assert.LessOrEqual(t, tx.Amount, maxAmount)
	}
}

func TestDirectory_Search_DateRangeAndPagination(t *testing.T) {
	dir := newTestDirectory(t, 30)

	from := seedBase().Add(-48 * time.Hour)
	to := seedBase()
	page, err := dir.Search(context.Background(), ports.TransactionSearchParams{
		DateFrom: &from,
		DateTo:   &to,
	}, 1, 3)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Greater(t, page.Total, int64(3))
	assert.Equal(t, 3, page.PageSize)

	// Newest first.
	for i := 1; i < len(page.Data); i++ {
		assert.False(t, page.Data[i].Timestamp.After(page.Data[i-1].Timestamp))
	}
}

func TestDirectory_Search_NoMatches(t *testing.T) {
	dir := newTestDirectory(t, 10)

	page, err := dir.Search(context.Background(), ports.TransactionSearchParams{
		UserID: "USR-no-such-user",
	}, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestSimulator_FaultInjection(t *testing.T) {
	// failureRate=1 must fail every fallible op with a transient error.
	sim := NewSimulator(0, 0, 1.0, false)
	dir := NewDirectory(sim)
	dir.Seed(SampleTransactions(3, seedBase()))

	_, err := dir.GetByID(context.Background(), "TXN-000000001")
	require.Error(t, err)
	assert.True(t, apperror.IsTransient(err))

	// Deterministic simulator never fails.
	det := NewDeterministicSimulator()
	assert.False(t, det.ShouldFail())
}

func TestDirectory_UpdateStatus_FailsUnderFaultInjection(t *testing.T) {
	sim := NewSimulator(0, 0, 1.0, false)
	dir := NewDirectory(sim)
	dir.Seed(SampleTransactions(3, seedBase()))

	err := dir.UpdateStatus(context.Background(), "TXN-000000001", domain.TransactionStatusDisputed)
	require.Error(t, err)
	assert.True(t, apperror.IsTransient(err))
}
