package memory

import (
	"context"
	"testing"
	"time"

	"dispute-resolution-engine/internal/adapter/clock"
	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisputeRepo(t *testing.T) (*DisputeRepo, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	return NewDisputeRepo(NewDeterministicSimulator(), c), c
}

func sampleDispute(txID string) *domain.Dispute {
	return &domain.Dispute{
		TransactionID:   txID,
		Status:          domain.DisputeStatusCreated,
		Reason:          domain.ReasonDuplicateCharge,
		Category:        "billing",
		Priority:        domain.PriorityMedium,
		Description:     "charged twice for the same order",
		OriginalAmount:  150000,
		RequestedAmount: 150000,
		ClaimedAmount:   150000,
		Currency:        "VND",
		CreatedBy:       domain.Actor{ID: "USR-2001", Name: "Mai Lan", Role: domain.RoleSupportAgent},
	}
}

func TestDisputeRepo_Create_AssignsSequentialIDs(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleDispute("TXN-000000002"))
	require.NoError(t, err)

	assert.Equal(t, "DSP-000001", first.ID)
	assert.Equal(t, "DSP-000002", second.ID)
	assert.Equal(t, int64(1), first.Version)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestDisputeRepo_GetByID_ReturnsCopy(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	got.Description = "mutated by caller"
	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "charged twice for the same order", again.Description)
}

func TestDisputeRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)

	_, err := repo.GetByID(context.Background(), "DSP-999999")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DSP_001", appErr.Code)
}

func TestDisputeRepo_Write_MatchingVersionApplies(t *testing.T) {
	repo, c := newTestDisputeRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)

	c.Advance(time.Minute)

	desc := "updated description"
	res, err := repo.Write(ctx, created.ID, domain.DisputePatch{Description: &desc}, 1)
	require.NoError(t, err)

	assert.False(t, res.Conflict)
	assert.Equal(t, "updated description", res.Dispute.Description)
	assert.Equal(t, int64(2), res.Dispute.Version)
	assert.True(t, res.Dispute.UpdatedAt.After(created.UpdatedAt))
}

func TestDisputeRepo_Write_StaleVersionConflicts(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)

	// Writer B wins the race.
	descB := "writer B"
	resB, err := repo.Write(ctx, created.ID, domain.DisputePatch{Description: &descB}, 1)
	require.NoError(t, err)
	require.False(t, resB.Conflict)

	// Writer A still holds version 1; the write must bounce without mutating.
	descA := "writer A"
	resA, err := repo.Write(ctx, created.ID, domain.DisputePatch{Description: &descA}, 1)
	require.NoError(t, err, "conflict is a result, not an error")

	assert.True(t, resA.Conflict)
	assert.Equal(t, "writer B", resA.Dispute.Description, "conflict result carries the server state")
	assert.Equal(t, int64(2), resA.Dispute.Version)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "writer B", stored.Description, "conflicting write must not mutate")
	assert.Equal(t, int64(2), stored.Version)
}

func TestDisputeRepo_Write_VersionIncrementsByOne(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)

	for v := int64(1); v <= 5; v++ {
		desc := "round"
		res, err := repo.Write(ctx, created.ID, domain.DisputePatch{Description: &desc}, v)
		require.NoError(t, err)
		require.False(t, res.Conflict)
		assert.Equal(t, v+1, res.Dispute.Version)
	}
}

func TestDisputeRepo_Write_NotFound(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)

	_, err := repo.Write(context.Background(), "DSP-999999", domain.DisputePatch{}, 1)
	require.Error(t, err)
}

func TestDisputeRepo_Delete(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.Error(t, err)

	assert.Error(t, repo.Delete(ctx, created.ID))
}

func TestDisputeRepo_List_NewestFirstAndFiltered(t *testing.T) {
	repo, c := newTestDisputeRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)
	c.Advance(time.Hour)
	second, err := repo.Create(ctx, sampleDispute("TXN-000000002"))
	require.NoError(t, err)

	page, err := repo.List(ctx, ports.DisputeListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, second.ID, page.Data[0].ID)
	assert.Equal(t, first.ID, page.Data[1].ID)
	assert.Equal(t, int64(2), page.Total)

	// Move one dispute to under_review, then filter by status.
	status := domain.DisputeStatusUnderReview
	_, err = repo.Write(ctx, first.ID, domain.DisputePatch{Status: &status}, 1)
	require.NoError(t, err)

	filtered, err := repo.List(ctx, ports.DisputeListParams{Status: &status, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, first.ID, filtered.Data[0].ID)
}

func TestDisputeRepo_List_FilterByAssignee(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleDispute("TXN-000000002"))
	require.NoError(t, err)

	analyst := domain.Actor{ID: "USR-3001", Name: "Quang Huy", Role: domain.RoleRiskAnalyst}
	_, err = repo.Write(ctx, created.ID, domain.DisputePatch{AssignedTo: &analyst}, 1)
	require.NoError(t, err)

	assignee := "USR-3001"
	page, err := repo.List(ctx, ports.DisputeListParams{AssignedTo: &assignee, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, created.ID, page.Data[0].ID)
}

func TestDisputeRepo_CountByStatus(t *testing.T) {
	repo, _ := newTestDisputeRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, sampleDispute("TXN-000000001"))
		require.NoError(t, err)
	}
	draft := sampleDispute("TXN-000000002")
	draft.Status = domain.DisputeStatusDraft
	_, err := repo.Create(ctx, draft)
	require.NoError(t, err)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[domain.DisputeStatusCreated])
	assert.Equal(t, int64(1), counts[domain.DisputeStatusDraft])
}

// alwaysFail drives the simulator through the fault injector port.
type alwaysFail struct{}

func (alwaysFail) ShouldFail() bool { return true }

func TestDisputeRepo_MutationsFailUnderFaultInjection(t *testing.T) {
	c := clock.NewManual(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	repo := NewDisputeRepo(NewSimulatorWithInjector(0, 0, alwaysFail{}), c)
	ctx := context.Background()

	// Seed past the injector.
	healthy := NewDisputeRepo(NewDeterministicSimulator(), c)
	stored, err := healthy.Create(ctx, sampleDispute("TXN-000000001"))
	require.NoError(t, err)
	repo.disputes[stored.ID] = stored

	_, err = repo.Create(ctx, sampleDispute("TXN-000000002"))
	require.Error(t, err)
	assert.True(t, apperror.IsTransient(err))

	desc := "edited"
	_, err = repo.Write(ctx, stored.ID, domain.DisputePatch{Description: &desc}, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsTransient(err))

	err = repo.Delete(ctx, stored.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsTransient(err))

	// Point reads are not a retried path and stay exempt from injection.
	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
}
