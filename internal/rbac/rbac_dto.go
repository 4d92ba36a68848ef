package rbac

import "jample-admin/internal/domain"

type (
	EnforceRequest     = domain.EnforceRequest
	EnforceResponse    = domain.EnforceResponse
	RoleResponse       = domain.RoleResponse
	PermissionResponse = domain.PermissionResponse
)

// Resources and actions seeded into the permissions table.
const (
	ResourceEmployee  = "employee"
	ResourceCredit    = "credit"
	ResourceGroup     = "group"
	ResourceAudit     = "audit"
	ResourceDashboard = "dashboard"

	ActionRead     = "read"
	ActionUpdate   = "update"
	ActionAllocate = "allocate"
	ActionCreate   = "create"
	ActionDelete   = "delete"
)
