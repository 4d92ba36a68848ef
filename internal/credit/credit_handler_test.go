package credit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/credit"
	crediterrors "jample-admin/internal/credit/errors"
	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/response"
	"jample-admin/internal/shared/verdict"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	allocation credit.AllocationResponse
	err        error
	gotReq     credit.AllocationRequest
	calls      int
}

func (f *fakeService) GetSummary(context.Context, backend.Session) (credit.SummaryResponse, error) {
	return credit.SummaryResponse{TotalBalance: 2500}, f.err
}

func (f *fakeService) Preview(_ context.Context, _ backend.Session, req credit.AllocationRequest) (credit.PreviewResponse, error) {
	f.gotReq = req
	return credit.PreviewResponse{TargetCount: len(req.UserIDs)}, f.err
}

func (f *fakeService) Allocate(_ context.Context, _ backend.Session, req credit.AllocationRequest) (credit.AllocationResponse, error) {
	f.calls++
	f.gotReq = req
	return f.allocation, f.err
}

func setupCreditRouter(h *credit.Handler, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", sess.UserID)
		c.Set(middleware.SessionKey, sess)
		c.Next()
	})
	r.GET("/credits/summary", h.GetSummary)
	r.POST("/credits/allocations/preview", h.Preview)
	r.POST("/credits/allocations", append(extra, h.Allocate)...)
	return r
}

func postJSON(r *gin.Engine, path string, body any, headers ...string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, body []byte) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestCreditHandler_Allocate(t *testing.T) {
	body := map[string]any{"user_ids": []string{"u1", "u2"}, "credits_per_user": 100, "expire_date": "2025-01-05"}

	t.Run("partial is a success payload", func(t *testing.T) {
		svc := &fakeService{allocation: credit.AllocationResponse{
			Kind: credit.OutcomePartial, SuccessCount: 1, FailedCount: 1,
			Failures: []credit.Failure{{UserID: "u2", Error: "잔액 부족"}},
		}}
		r := setupCreditRouter(credit.NewHandler(svc))

		w := postJSON(r, "/credits/allocations", body)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Equal(t, "PARTIAL", env.Data.(map[string]any)["kind"])
	})

	t.Run("all failed is an error envelope with failures", func(t *testing.T) {
		svc := &fakeService{allocation: credit.AllocationResponse{
			Kind: credit.OutcomeAllFailed, FailedCount: 2, Message: "2명 모두 잼 지급에 실패했습니다.",
			Failures: []credit.Failure{{UserID: "u1"}, {UserID: "u2"}},
		}}
		r := setupCreditRouter(credit.NewHandler(svc))

		w := postJSON(r, "/credits/allocations", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errObj := decode(t, w.Body.Bytes()).Error
		require.NotNil(t, errObj)
		assert.Equal(t, crediterrors.CodeAllocationFailed, errObj.Code)
		assert.Equal(t, "2명 모두 잼 지급에 실패했습니다.", errObj.Message)
		assert.Len(t, errObj.Details.(map[string]any)["failures"], 2)
	})

	t.Run("local rejection", func(t *testing.T) {
		svc := &fakeService{err: verdict.Reject("credit.single_batch_only", map[string]any{"Required": 3000}).Err()}
		r := setupCreditRouter(credit.NewHandler(svc))

		w := postJSON(r, "/credits/allocations", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errObj := decode(t, w.Body.Bytes()).Error
		require.NotNil(t, errObj)
		assert.Equal(t, apperror.CodeValidationRejected, errObj.Code)
		assert.Contains(t, errObj.Message, "3000")
	})

	t.Run("empty target list", func(t *testing.T) {
		svc := &fakeService{}
		r := setupCreditRouter(credit.NewHandler(svc))

		w := postJSON(r, "/credits/allocations", map[string]any{"user_ids": []string{}, "credits_per_user": 100})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("amount above cap", func(t *testing.T) {
		svc := &fakeService{}
		r := setupCreditRouter(credit.NewHandler(svc))

		w := postJSON(r, "/credits/allocations", map[string]any{"user_ids": []string{"u1"}, "credits_per_user": int64(1) << 62, "expire_date": "2025-01-05"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at most")
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("blank target id", func(t *testing.T) {
		svc := &fakeService{}
		r := setupCreditRouter(credit.NewHandler(svc))

		w := postJSON(r, "/credits/allocations", map[string]any{"user_ids": []string{"u1", " "}, "credits_per_user": 100})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "is required")
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("idempotent result is stored", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		resp := credit.AllocationResponse{Kind: credit.OutcomeAllSucceeded, SuccessCount: 2, Failures: []credit.Failure{}}
		svc := &fakeService{allocation: resp}
		r := setupCreditRouter(credit.NewHandlerWithRedis(svc, rdb), middleware.Idempotency(rdb))

		cacheKey := "idemp:/credits/allocations:admin-9:k-1"
		stored, _ := json.Marshal(resp)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)
		mock.ExpectSet(cacheKey, stored, 24*time.Hour).SetVal("OK")

		w := postJSON(r, "/credits/allocations", body, "Idempotency-Key", "k-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreditHandler_Preview(t *testing.T) {
	svc := &fakeService{}
	r := setupCreditRouter(credit.NewHandler(svc))

	w := postJSON(r, "/credits/allocations/preview", map[string]any{
		"user_ids": []string{"u1"}, "credits_per_user": 50, "expire_date": "2025.02.01", "rollover_percentage": 30,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, *svc.gotReq.RolloverPercentage)
	assert.Equal(t, "2025.02.01", svc.gotReq.ExpireDate)
}

func TestCreditHandler_GetSummary(t *testing.T) {
	r := setupCreditRouter(credit.NewHandler(&fakeService{err: apperror.ErrBackendUnavailable}))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/credits/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
