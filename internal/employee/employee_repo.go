package employee

import (
	"context"

	"jample-admin/internal/backend"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, sess backend.Session) ([]Employee, error)
	UpdateStatus(ctx context.Context, sess backend.Session, input backend.UpdateEmployeeStatusInput) (backend.UpdateEmployeeStatusResult, error)
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, sess backend.Session) ([]Employee, error) {
	list, err := r.client.ListEmployees(ctx, sess)
	if err != nil {
		return nil, err
	}
	out := make([]Employee, 0, len(list.Employees))
	for _, e := range list.Employees {
		out = append(out, fromBackend(e))
	}
	return out, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	sess backend.Session,
	input backend.UpdateEmployeeStatusInput,
) (backend.UpdateEmployeeStatusResult, error) {
	return r.client.UpdateEmployeeStatus(ctx, sess, input)
}
