package group

import (
	"context"

	"jample-admin/internal/backend"
)

//go:generate mockgen -source=group_repo.go -destination=mock/group_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, sess backend.Session) ([]backend.EmployeeGroup, error)
	Create(ctx context.Context, sess backend.Session, input backend.CreateEmployeeGroupInput) (backend.EmployeeGroup, error)
	Update(ctx context.Context, sess backend.Session, input backend.UpdateEmployeeGroupInput) (backend.EmployeeGroup, error)
	Delete(ctx context.Context, sess backend.Session, groupID int64) (bool, error)
	Assign(ctx context.Context, sess backend.Session, groupID int64, employeeID string) (bool, error)
	Unassign(ctx context.Context, sess backend.Session, employeeID string) (bool, error)
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, sess backend.Session) ([]backend.EmployeeGroup, error) {
	return r.client.ListGroups(ctx, sess)
}

func (r *repository) Create(ctx context.Context, sess backend.Session, input backend.CreateEmployeeGroupInput) (backend.EmployeeGroup, error) {
	return r.client.CreateGroup(ctx, sess, input)
}

func (r *repository) Update(ctx context.Context, sess backend.Session, input backend.UpdateEmployeeGroupInput) (backend.EmployeeGroup, error) {
	return r.client.UpdateGroup(ctx, sess, input)
}

func (r *repository) Delete(ctx context.Context, sess backend.Session, groupID int64) (bool, error) {
	return r.client.DeleteGroup(ctx, sess, groupID)
}

func (r *repository) Assign(ctx context.Context, sess backend.Session, groupID int64, employeeID string) (bool, error) {
	return r.client.AssignEmployeeToGroup(ctx, sess, groupID, employeeID)
}

func (r *repository) Unassign(ctx context.Context, sess backend.Session, employeeID string) (bool, error) {
	return r.client.UnassignEmployeeFromGroup(ctx, sess, employeeID)
}
