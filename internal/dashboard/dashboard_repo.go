package dashboard

import (
	"context"

	"jample-admin/internal/backend"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	MemberStats(ctx context.Context, sess backend.Session) (backend.MemberStats, error)
	MonthlyJamUsage(ctx context.Context, sess backend.Session, months int) (backend.MonthlyJamUsage, error)
	RecentReviews(ctx context.Context, sess backend.Session, days, limit int) (backend.RecentReviews, error)
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) MemberStats(ctx context.Context, sess backend.Session) (backend.MemberStats, error) {
	return r.client.GetMemberStats(ctx, sess)
}

func (r *repository) MonthlyJamUsage(ctx context.Context, sess backend.Session, months int) (backend.MonthlyJamUsage, error) {
	return r.client.GetMonthlyJamUsage(ctx, sess, months)
}

func (r *repository) RecentReviews(ctx context.Context, sess backend.Session, days, limit int) (backend.RecentReviews, error) {
	return r.client.GetRecentReviews(ctx, sess, days, limit)
}
