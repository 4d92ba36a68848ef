// Package domain holds the rbac types shared by the middleware and the
// rbac package without an import cycle.
package domain

import "strings"

// EnforceRequest asks whether an admin may act on a resource within one
// company, the casbin domain. CompanyID never comes from a request body.
type EnforceRequest struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"-"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// Normalize trims the caller-supplied parts of the request.
func (r EnforceRequest) Normalize() EnforceRequest {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Resource = strings.ToLower(strings.TrimSpace(r.Resource))
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
	return r
}

type EnforceResponse struct {
	UserID  string `json:"user_id"`
	Allowed bool   `json:"allowed"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}
