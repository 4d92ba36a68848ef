package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	Bindings(companyID string) ([]Binding, error)
	Grants(companyID string) ([]Grant, error)
	Roles(companyID string) ([]Role, error)
	Permissions() ([]Permission, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Bindings(companyID string) ([]Binding, error) {
	var out []Binding
	err := r.db.Model(&AdminRole{}).
		Select("admin_roles.user_id, admin_roles.role_id").
		Joins("JOIN roles ON roles.id = admin_roles.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&out).Error
	return out, err
}

// Grants returns every role grant of a company, ordered so callers can
// group them by role without sorting.
func (r *repository) Grants(companyID string) ([]Grant, error) {
	var out []Grant
	err := r.db.Model(&RolePermission{}).
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.company_id = ?", companyID).
		Order("role_permissions.role_id, permissions.resource, permissions.action").
		Scan(&out).Error
	return out, err
}

func (r *repository) Roles(companyID string) ([]Role, error) {
	var out []Role
	err := r.db.Where("company_id = ?", companyID).Order("name").Find(&out).Error
	return out, err
}

func (r *repository) Permissions() ([]Permission, error) {
	var out []Permission
	err := r.db.Order("category, label").Find(&out).Error
	return out, err
}
