package rbac

// Role is a company-scoped bundle of grants. Admin users come from the
// backend, so only their ids are stored here.
type Role struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CompanyID   string `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string
}

func (Role) TableName() string { return "roles" }

type Permission struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Resource string `gorm:"uniqueIndex:uq_permission;not null"`
	Action   string `gorm:"uniqueIndex:uq_permission;not null"`
	Label    string
	Category string
}

func (Permission) TableName() string { return "permissions" }

type AdminRole struct {
	UserID string `gorm:"primaryKey"`
	RoleID string `gorm:"primaryKey;type:uuid"`
}

func (AdminRole) TableName() string { return "admin_roles" }

type RolePermission struct {
	RoleID       string `gorm:"primaryKey;type:uuid"`
	PermissionID string `gorm:"primaryKey;type:uuid"`
}

func (RolePermission) TableName() string { return "role_permissions" }

// Models lists the tables owned by the rbac package, in migration order.
func Models() []any {
	return []any{&Role{}, &Permission{}, &AdminRole{}, &RolePermission{}}
}

// Binding attaches an admin to a role inside the role's company.
type Binding struct {
	UserID string
	RoleID string
}

// Grant is one resource/action pair a role holds.
type Grant struct {
	RoleID   string
	Resource string
	Action   string
}

func (g Grant) Key() string { return g.Resource + ":" + g.Action }
