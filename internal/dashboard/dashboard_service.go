package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const CacheKeyPrefix = "dashboard:"

func GetMemberStatsKey(companyID int64) string {
	return CacheKeyPrefix + "members:" + strconv.FormatInt(companyID, 10)
}

func GetJamUsageKey(companyID int64, months int) string {
	return CacheKeyPrefix + "usage:" + strconv.FormatInt(companyID, 10) + ":" + strconv.Itoa(months)
}

func GetReviewsKey(companyID int64, days, limit int) string {
	return CacheKeyPrefix + "reviews:" + strconv.FormatInt(companyID, 10) + ":" +
		strconv.Itoa(days) + ":" + strconv.Itoa(limit)
}

type Service interface {
	MemberStats(ctx context.Context, sess backend.Session) (MemberStatsResponse, error)
	JamUsage(ctx context.Context, sess backend.Session, q UsageQuery) (JamUsageResponse, error)
	RecentReviews(ctx context.Context, sess backend.Session, q ReviewsQuery) (ReviewsResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService builds the read-only dashboard service. The aggregates are
// computed by the backend; they are only cached here.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

// cached serves key from Redis, or loads it once per key across
// concurrent callers and stores the result.
func cached[T any](ctx context.Context, s *service, key string, load func() (T, error)) (T, error) {
	var zero T

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var v T
			if json.Unmarshal([]byte(raw), &v) == nil {
				return v, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		fresh, err := load()
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if s.rdb != nil {
			if data, err := json.Marshal(fresh); err == nil {
				if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
					contextutil.Logger(ctx, s.logger).Warn("cache dashboard aggregate failed",
						zap.String("key", key), zap.Error(err))
				}
			}
		}
		return fresh, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (s *service) MemberStats(ctx context.Context, sess backend.Session) (MemberStatsResponse, error) {
	stats, err := cached(ctx, s, GetMemberStatsKey(sess.CompanyID), func() (backend.MemberStats, error) {
		return s.repo.MemberStats(ctx, sess)
	})
	if err != nil {
		return MemberStatsResponse{}, err
	}
	return mapToMemberStats(stats), nil
}

func (s *service) JamUsage(ctx context.Context, sess backend.Session, q UsageQuery) (JamUsageResponse, error) {
	months := q.Months
	if months <= 0 {
		months = defaultUsageMonths
	}
	usage, err := cached(ctx, s, GetJamUsageKey(sess.CompanyID, months), func() (backend.MonthlyJamUsage, error) {
		return s.repo.MonthlyJamUsage(ctx, sess, months)
	})
	if err != nil {
		return JamUsageResponse{}, err
	}
	return mapToJamUsage(months, usage), nil
}

func (s *service) RecentReviews(ctx context.Context, sess backend.Session, q ReviewsQuery) (ReviewsResponse, error) {
	days, limit := q.Days, q.Limit
	if days <= 0 {
		days = defaultReviewDays
	}
	if limit <= 0 {
		limit = defaultReviewsLimit
	}
	reviews, err := cached(ctx, s, GetReviewsKey(sess.CompanyID, days, limit), func() (backend.RecentReviews, error) {
		return s.repo.RecentReviews(ctx, sess, days, limit)
	})
	if err != nil {
		return ReviewsResponse{}, err
	}
	return mapToReviews(days, reviews), nil
}

func mapRepositoryError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) || errors.Is(err, context.Canceled) {
		return err
	}
	return apperror.Backend(err)
}
