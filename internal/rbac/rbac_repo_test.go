package rbac_test

import (
	"testing"

	"jample-admin/internal/rbac"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (rbac.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return rbac.NewRepository(gormDB), mock
}

func TestRepository_Bindings(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT admin_roles.user_id, admin_roles.role_id FROM "admin_roles" JOIN roles ON roles.id = admin_roles.role_id WHERE roles.company_id = \$1`).
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id"}).AddRow("admin-1", "role-owner"))

	out, err := repo.Bindings("42")
	require.NoError(t, err)
	assert.Equal(t, []rbac.Binding{{UserID: "admin-1", RoleID: "role-owner"}}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Grants(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT role_permissions.role_id, permissions.resource, permissions.action FROM "role_permissions" JOIN roles .* JOIN permissions .* WHERE roles.company_id = \$1 ORDER BY role_permissions.role_id`).
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"role_id", "resource", "action"}).
			AddRow("role-owner", rbac.ResourceCredit, rbac.ActionAllocate).
			AddRow("role-owner", rbac.ResourceGroup, rbac.ActionCreate))

	out, err := repo.Grants("42")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "credit:allocate", out[0].Key())
	assert.Equal(t, "group:create", out[1].Key())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Roles(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE company_id = \$1 ORDER BY name`).
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "name", "description"}).
			AddRow("role-owner", "42", "owner", "Full access"))

	out, err := repo.Roles("42")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "owner", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
