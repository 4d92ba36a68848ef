package credit

import (
	"context"

	"jample-admin/internal/backend"
)

//go:generate mockgen -source=credit_repo.go -destination=mock/credit_repo_mock.go -package=mock
type Repository interface {
	Summary(ctx context.Context, sess backend.Session) (backend.CreditSummary, error)
	Allocate(ctx context.Context, sess backend.Session, input backend.AllocateCreditsInput) (backend.AllocateCreditsResult, error)
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Summary(ctx context.Context, sess backend.Session) (backend.CreditSummary, error) {
	return r.client.GetCreditSummary(ctx, sess)
}

func (r *repository) Allocate(
	ctx context.Context,
	sess backend.Session,
	input backend.AllocateCreditsInput,
) (backend.AllocateCreditsResult, error) {
	return r.client.AllocateCredits(ctx, sess, input)
}
