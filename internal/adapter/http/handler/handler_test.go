package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispute-resolution-engine/internal/adapter/http/middleware"
	"dispute-resolution-engine/internal/core/domain"
	"dispute-resolution-engine/internal/core/ports"
	"dispute-resolution-engine/internal/core/ports/mocks"
	"dispute-resolution-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAnalyst() domain.Actor {
	return domain.Actor{ID: "USR-3001", Name: "Quang Huy", Role: domain.RoleRiskAnalyst}
}

func testDispute() *domain.Dispute {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Dispute{
		ID:              "DSP-000001",
		TransactionID:   "TXN-000000001",
		Status:          domain.DisputeStatusCreated,
		Reason:          domain.ReasonDuplicateCharge,
		Priority:        domain.PriorityMedium,
		OriginalAmount:  500000,
		RequestedAmount: 200000,
		ClaimedAmount:   200000,
		Currency:        "VND",
		CreatedBy:       domain.Actor{ID: "USR-2001", Name: "Mai Lan", Role: domain.RoleSupportAgent},
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}
}

// newTestContext builds a gin context with a JSON body and an
// authenticated actor already set, bypassing the token middleware.
func newTestContext(t *testing.T, method, path string, body any, actor domain.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxActor, actor)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDisputeHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	disputeSvc := mocks.NewMockDisputeService(ctrl)
	h := NewDisputeHandler(disputeSvc, mocks.NewMockWorkflowService(ctrl), 20)

	disputeSvc.EXPECT().
		CreateDispute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req ports.CreateDisputeRequest) (*domain.Dispute, error) {
			assert.Equal(t, "TXN-000000001", req.Form.TransactionID)
			assert.Equal(t, domain.ReasonDuplicateCharge, req.Form.Reason)
			assert.Equal(t, testAnalyst(), req.Actor)
			return testDispute(), nil
		})

	c, w := newTestContext(t, http.MethodPost, "/api/v1/disputes", gin.H{
		"transaction_id":   "TXN-000000001",
		"reason":           "duplicate_charge",
		"requested_amount": 200000,
	}, testAnalyst())
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "DSP-000001", data["id"])
	assert.Equal(t, "created", data["status"])
}

func TestDisputeHandler_Create_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewDisputeHandler(mocks.NewMockDisputeService(ctrl), mocks.NewMockWorkflowService(ctrl), 20)

	// Missing requested_amount.
	c, w := newTestContext(t, http.MethodPost, "/api/v1/disputes", gin.H{
		"transaction_id": "TXN-000000001",
		"reason":         "duplicate_charge",
	}, testAnalyst())
	h.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "VAL_001", resp["error_code"])
}

func TestDisputeHandler_List_ConfiguredPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	disputeSvc := mocks.NewMockDisputeService(ctrl)
	h := NewDisputeHandler(disputeSvc, mocks.NewMockWorkflowService(ctrl), 5)

	disputeSvc.EXPECT().
		GetDisputes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params ports.DisputeListParams) (*ports.DisputePage, error) {
			assert.Equal(t, 5, params.PageSize, "no query override, configured size applies")
			return &ports.DisputePage{Page: 1, PageSize: 5, TotalPages: 1}, nil
		})

	c, w := newTestContext(t, http.MethodGet, "/api/v1/disputes", nil, testAnalyst())
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestDisputeHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	disputeSvc := mocks.NewMockDisputeService(ctrl)
	h := NewDisputeHandler(disputeSvc, mocks.NewMockWorkflowService(ctrl), 20)

	disputeSvc.EXPECT().
		GetDisputeByID(gomock.Any(), "DSP-999999").
		Return(nil, apperror.ErrDisputeNotFound())

	c, w := newTestContext(t, http.MethodGet, "/api/v1/disputes/DSP-999999", nil, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DSP-999999"}}
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "DSP_001", resp["error_code"])
}

func TestDisputeHandler_Update_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	disputeSvc := mocks.NewMockDisputeService(ctrl)
	h := NewDisputeHandler(disputeSvc, mocks.NewMockWorkflowService(ctrl), 20)

	server := testDispute()
	server.Version = 4
	disputeSvc.EXPECT().
		UpdateDispute(gomock.Any(), gomock.Any()).
		Return(ports.WriteResult{Dispute: server, Conflict: true}, nil)

	c, w := newTestContext(t, http.MethodPatch, "/api/v1/disputes/DSP-000001", gin.H{
		"description":      "updated text",
		"expected_version": 2,
	}, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DSP-000001"}}
	h.Update(c)

	require.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["conflict"])
	serverData := resp["server_data"].(map[string]any)
	assert.Equal(t, float64(4), serverData["version"])
}

func TestDisputeHandler_ChangeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflowSvc := mocks.NewMockWorkflowService(ctrl)
	h := NewDisputeHandler(mocks.NewMockDisputeService(ctrl), workflowSvc, 20)

	updated := testDispute()
	updated.Status = domain.DisputeStatusUnderReview
	updated.Version = 2
	workflowSvc.EXPECT().
		ChangeStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req ports.ChangeStatusRequest) (ports.WriteResult, error) {
			assert.Equal(t, "DSP-000001", req.ID)
			assert.Equal(t, domain.DisputeStatusUnderReview, req.NewStatus)
			require.NotNil(t, req.ExpectedVersion)
			assert.Equal(t, int64(1), *req.ExpectedVersion)
			return ports.WriteResult{Dispute: updated}, nil
		})

	c, w := newTestContext(t, http.MethodPost, "/api/v1/disputes/DSP-000001/status", gin.H{
		"status":           "under_review",
		"expected_version": 1,
	}, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DSP-000001"}}
	h.ChangeStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "under_review", data["status"])
	assert.Equal(t, float64(2), data["version"])
}

func TestDisputeHandler_ChangeStatus_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflowSvc := mocks.NewMockWorkflowService(ctrl)
	h := NewDisputeHandler(mocks.NewMockDisputeService(ctrl), workflowSvc, 20)

	workflowSvc.EXPECT().
		ChangeStatus(gomock.Any(), gomock.Any()).
		Return(ports.WriteResult{}, apperror.ErrTransitionDenied("created", "settled"))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/disputes/DSP-000001/status", gin.H{
		"status":           "settled",
		"expected_version": 1,
	}, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DSP-000001"}}
	h.ChangeStatus(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "AUTHZ_001", resp["error_code"])
}

func TestDisputeHandler_CheckConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflowSvc := mocks.NewMockWorkflowService(ctrl)
	h := NewDisputeHandler(mocks.NewMockDisputeService(ctrl), workflowSvc, 20)

	server := testDispute()
	server.Version = 3
	workflowSvc.EXPECT().
		WarnConflict(gomock.Any(), "DSP-000001", int64(1), gomock.Any()).
		DoAndReturn(func(_ any, _ string, _ int64, local *domain.Dispute) (*domain.ConflictInfo, error) {
			require.NotNil(t, local, "the local snapshot rides along")
			assert.Equal(t, "my local text", local.Description)
			return &domain.ConflictInfo{
				DisputeID:        "DSP-000001",
				LocalVersion:     1,
				ServerVersion:    3,
				ServerData:       server,
				ConflictedFields: []string{"description"},
			}, nil
		})

	local := testDispute()
	local.Description = "my local text"
	c, w := newTestContext(t, http.MethodPost, "/api/v1/disputes/DSP-000001/conflict", gin.H{
		"local_version": 1,
		"local_data":    local,
	}, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DSP-000001"}}
	h.CheckConflict(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["conflict"])
	assert.Equal(t, float64(3), data["server_version"])
	fields := data["conflicted_fields"].([]any)
	assert.Contains(t, fields, "description")
}

func TestDisputeHandler_CheckConflict_NoConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflowSvc := mocks.NewMockWorkflowService(ctrl)
	h := NewDisputeHandler(mocks.NewMockDisputeService(ctrl), workflowSvc, 20)

	workflowSvc.EXPECT().
		WarnConflict(gomock.Any(), "DSP-000001", int64(1), gomock.Nil()).
		Return(nil, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/disputes/DSP-000001/conflict", gin.H{
		"local_version": 1,
	}, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DSP-000001"}}
	h.CheckConflict(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, false, data["conflict"])
}

func TestDraftHandler_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	drafts := mocks.NewMockDraftManager(ctrl)
	h := NewDraftHandler(drafts)

	drafts.EXPECT().
		SaveDraft(gomock.Any(), gomock.Any(), 2).
		DoAndReturn(func(_ any, data domain.DraftFormData, _ int) error {
			assert.Equal(t, "partial description", data.Description)
			return nil
		})
	drafts.EXPECT().State().Return(domain.DraftStatePending)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts", gin.H{
		"step":        2,
		"description": "partial description",
	}, testAnalyst())
	h.Save(c)

	require.Equal(t, http.StatusAccepted, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "pending", data["state"])
}

func TestDraftHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	drafts := mocks.NewMockDraftManager(ctrl)
	h := NewDraftHandler(drafts)

	drafts.EXPECT().
		SubmitDraft(gomock.Any(), "DRAFT-0001", testAnalyst()).
		Return(testDispute(), nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/drafts/DRAFT-0001/submit", nil, testAnalyst())
	c.Params = gin.Params{{Key: "id", Value: "DRAFT-0001"}}
	h.Submit(c)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "DSP-000001", data["id"])
}

func TestAuditHandler_List_ActionFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditSvc := mocks.NewMockAuditService(ctrl)
	h := NewAuditHandler(auditSvc, 20)

	auditSvc.EXPECT().
		GetAuditLogsByAction(gomock.Any(), domain.AuditActionStatusChanged).
		Return([]domain.AuditLogEntry{{ID: "AUD-00000001", Action: domain.AuditActionStatusChanged}}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/audit?action=status_changed", nil, testAnalyst())
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
}

func TestAuditHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditSvc := mocks.NewMockAuditService(ctrl)
	h := NewAuditHandler(auditSvc, 20)

	id := "DSP-000001"
	auditSvc.EXPECT().
		ExportAuditLog(gomock.Any(), &id).
		Return([]byte(`[]`), nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/audit/export?dispute_id=DSP-000001", nil, testAnalyst())
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[]`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "audit-log.json")
}

func TestTransactionHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	searchSvc := mocks.NewMockSearchService(ctrl)
	h := NewTransactionHandler(searchSvc, mocks.NewMockTransactionDirectory(ctrl), 20)

	searchSvc.EXPECT().
		Search(gomock.Any(), gomock.Any(), 1, 20).
		DoAndReturn(func(_ any, params ports.TransactionSearchParams, _, _ int) (*ports.TransactionPage, error) {
			assert.Equal(t, "USR-1001", params.UserID)
			require.NotNil(t, params.MinAmount)
			assert.Equal(t, int64(100000), *params.MinAmount)
			return &ports.TransactionPage{
				Data:       []domain.Transaction{{ID: "TXN-000000001"}},
				Total:      1,
				Page:       1,
				PageSize:   20,
				TotalPages: 1,
			}, nil
		})

	c, w := newTestContext(t, http.MethodGet, "/api/v1/transactions?user_id=USR-1001&min_amount=100000", nil, testAnalyst())
	h.Search(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
}

func TestTransactionHandler_Search_Superseded(t *testing.T) {
	ctrl := gomock.NewController(t)
	searchSvc := mocks.NewMockSearchService(ctrl)
	h := NewTransactionHandler(searchSvc, mocks.NewMockTransactionDirectory(ctrl), 20)

	searchSvc.EXPECT().
		Search(gomock.Any(), gomock.Any(), 1, 20).
		Return(nil, apperror.ErrSearchSuperseded())

	c, w := newTestContext(t, http.MethodGet, "/api/v1/transactions?user_id=USR-1001", nil, testAnalyst())
	h.Search(c)

	require.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "NET_002", resp["error_code"])
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"})(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "redis", err: errors.New("connection refused")})(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]any)
	redis := deps["redis"].(map[string]any)
	assert.Equal(t, "unhealthy", redis["status"])
}
