package rbac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"jample-admin/internal/rbac/infra"
)

type fakeRepo struct {
	bindingsErr error
}

func (f *fakeRepo) Bindings(companyID string) ([]Binding, error) {
	if f.bindingsErr != nil {
		return nil, f.bindingsErr
	}
	if companyID != "42" {
		return nil, nil
	}
	return []Binding{
		{UserID: "admin-1", RoleID: "role-owner"},
		{UserID: "admin-2", RoleID: "role-viewer"},
	}, nil
}

func (f *fakeRepo) Grants(companyID string) ([]Grant, error) {
	if companyID != "42" {
		return nil, nil
	}
	return []Grant{
		{RoleID: "role-owner", Resource: ResourceCredit, Action: ActionAllocate},
		{RoleID: "role-owner", Resource: ResourceEmployee, Action: ActionUpdate},
		{RoleID: "role-viewer", Resource: ResourceEmployee, Action: ActionRead},
	}, nil
}

func (f *fakeRepo) Roles(companyID string) ([]Role, error) {
	return []Role{
		{ID: "role-owner", CompanyID: companyID, Name: "owner"},
		{ID: "role-empty", CompanyID: companyID, Name: "trainee"},
	}, nil
}

func (f *fakeRepo) Permissions() ([]Permission, error) {
	return []Permission{{ID: "p1", Resource: ResourceCredit, Action: ActionAllocate, Label: "Allocate jams"}}, nil
}

func TestRBACService_Enforce(t *testing.T) {
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)
	service := NewService(&fakeRepo{}, enforcer)

	cases := []struct {
		name    string
		req     EnforceRequest
		allowed bool
	}{
		{"owner allocates", EnforceRequest{UserID: "admin-1", CompanyID: "42", Resource: ResourceCredit, Action: ActionAllocate}, true},
		{"viewer reads", EnforceRequest{UserID: "admin-2", CompanyID: "42", Resource: ResourceEmployee, Action: ActionRead}, true},
		{"viewer cannot allocate", EnforceRequest{UserID: "admin-2", CompanyID: "42", Resource: ResourceCredit, Action: ActionAllocate}, false},
		{"other company denied", EnforceRequest{UserID: "admin-1", CompanyID: "7", Resource: ResourceCredit, Action: ActionAllocate}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := service.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestRBACService_EnforceRepoError(t *testing.T) {
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)
	service := NewService(&fakeRepo{bindingsErr: errors.New("db down")}, enforcer)

	allowed, err := service.Enforce(EnforceRequest{UserID: "admin-1", CompanyID: "42", Resource: ResourceCredit, Action: ActionAllocate})

	assert.EqualError(t, err, "db down")
	assert.False(t, allowed)
}

func TestRBACService_ListRoles(t *testing.T) {
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)
	service := NewService(&fakeRepo{}, enforcer)

	roles, err := service.ListRoles("42")

	assert.NoError(t, err)
	if assert.Len(t, roles, 2) {
		assert.Equal(t, []string{"credit:allocate", "employee:update"}, roles[0].Permissions)
		assert.Equal(t, []string{}, roles[1].Permissions)
	}
}

func TestRBACService_RolesForUser(t *testing.T) {
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)
	service := NewService(&fakeRepo{}, enforcer)

	roles, err := service.RolesForUser("admin-2", "42")
	assert.NoError(t, err)
	assert.Equal(t, []string{"role-viewer"}, roles)

	roles, err = service.RolesForUser("admin-2", "7")
	assert.NoError(t, err)
	assert.Empty(t, roles)
}
