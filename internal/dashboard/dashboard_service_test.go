package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/dashboard"
	dashboardMock "jample-admin/internal/dashboard/mock"
	"jample-admin/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var sess = backend.Session{CompanyID: 42, UserID: "admin-1", Token: "t"}

func setupServiceTest(t *testing.T) (dashboard.Service, *dashboardMock.MockRepository, redismock.ClientMock) {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := dashboardMock.NewMockRepository(ctrl)
	return dashboard.NewService(repo, rdb, time.Minute), repo, redisMock
}

func TestDashboardService_MemberStats(t *testing.T) {
	stats := backend.MemberStats{TotalApprovedMembers: 40, SubscribingMembers: 30, SubscriptionRate: 75}
	key := dashboard.GetMemberStatsKey(42)

	t.Run("cache hit skips backend", func(t *testing.T) {
		svc, _, redisMock := setupServiceTest(t)
		data, _ := json.Marshal(stats)
		redisMock.ExpectGet(key).SetVal(string(data))

		resp, err := svc.MemberStats(context.Background(), sess)

		assert.NoError(t, err)
		assert.Equal(t, 30, resp.SubscribingMembers)
		assert.Equal(t, 75.0, resp.SubscriptionRate)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		svc, repo, redisMock := setupServiceTest(t)
		repo.EXPECT().MemberStats(gomock.Any(), sess).Return(stats, nil)
		data, _ := json.Marshal(stats)
		redisMock.ExpectGet(key).RedisNil()
		redisMock.ExpectSet(key, data, time.Minute).SetVal("OK")

		resp, err := svc.MemberStats(context.Background(), sess)

		assert.NoError(t, err)
		assert.Equal(t, dashboard.MemberStatsResponse{TotalApprovedMembers: 40, SubscribingMembers: 30, SubscriptionRate: 75}, resp)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("backend failure is 502 and not cached", func(t *testing.T) {
		svc, repo, redisMock := setupServiceTest(t)
		repo.EXPECT().MemberStats(gomock.Any(), sess).Return(backend.MemberStats{}, errors.New("connection refused"))
		redisMock.ExpectGet(key).RedisNil()

		_, err := svc.MemberStats(context.Background(), sess)

		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestDashboardService_JamUsage(t *testing.T) {
	usage := backend.MonthlyJamUsage{
		MonthlyUsage: []backend.MonthlyUsage{
			{YearMonth: "2026-09", TotalUsage: 120000, ActiveEmployeeCount: 12, AverageUsage: 10000},
			{YearMonth: "2026-10", TotalUsage: 90000, ActiveEmployeeCount: 9, AverageUsage: 10000},
		},
		OverallAverageUsage: 10000,
		TotalUsage:          210000,
	}

	t.Run("defaults to six months", func(t *testing.T) {
		svc, repo, redisMock := setupServiceTest(t)
		key := dashboard.GetJamUsageKey(42, 6)
		repo.EXPECT().MonthlyJamUsage(gomock.Any(), sess, 6).Return(usage, nil)
		data, _ := json.Marshal(usage)
		redisMock.ExpectGet(key).RedisNil()
		redisMock.ExpectSet(key, data, time.Minute).SetVal("OK")

		resp, err := svc.JamUsage(context.Background(), sess, dashboard.UsageQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 6, resp.Months)
		assert.Len(t, resp.MonthlyUsage, 2)
		assert.Equal(t, "2026-10", resp.MonthlyUsage[1].YearMonth)
		assert.Equal(t, int64(210000), resp.TotalUsage)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache set failure still returns data", func(t *testing.T) {
		svc, repo, redisMock := setupServiceTest(t)
		key := dashboard.GetJamUsageKey(42, 3)
		repo.EXPECT().MonthlyJamUsage(gomock.Any(), sess, 3).Return(usage, nil)
		data, _ := json.Marshal(usage)
		redisMock.ExpectGet(key).RedisNil()
		redisMock.ExpectSet(key, data, time.Minute).SetErr(errors.New("redis down"))

		resp, err := svc.JamUsage(context.Background(), sess, dashboard.UsageQuery{Months: 3})

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Months)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestDashboardService_RecentReviews(t *testing.T) {
	svc, repo, redisMock := setupServiceTest(t)
	reviews := backend.RecentReviews{
		Reviews:       []backend.Review{{Review: "좋아요", Rating: 5, ProviderName: "김선생", CreatedAt: "2026-10-01T09:00:00Z"}},
		TotalCount:    1,
		AverageRating: 5,
	}
	key := dashboard.GetReviewsKey(42, 30, 5)
	repo.EXPECT().RecentReviews(gomock.Any(), sess, 30, 5).Return(reviews, nil)
	data, _ := json.Marshal(reviews)
	redisMock.ExpectGet(key).RedisNil()
	redisMock.ExpectSet(key, data, time.Minute).SetVal("OK")

	resp, err := svc.RecentReviews(context.Background(), sess, dashboard.ReviewsQuery{})

	assert.NoError(t, err)
	assert.Equal(t, 30, resp.Days)
	assert.Equal(t, "김선생", resp.Reviews[0].ProviderName)
	assert.Equal(t, 5.0, resp.AverageRating)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "dashboard:members:42", dashboard.GetMemberStatsKey(42))
	assert.Equal(t, "dashboard:usage:42:6", dashboard.GetJamUsageKey(42, 6))
	assert.Equal(t, "dashboard:reviews:42:30:5", dashboard.GetReviewsKey(42, 30, 5))
}
