package auth

import (
	"context"

	"jample-admin/internal/backend"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

// Repository verifies credentials. Admin accounts live in the backend.
type Repository interface {
	Authenticate(ctx context.Context, email, password string) (backend.LoginResult, error)
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Authenticate(ctx context.Context, email, password string) (backend.LoginResult, error) {
	return r.client.Login(ctx, email, password)
}
