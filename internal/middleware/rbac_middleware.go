package middleware

import (
	"net/http"

	"jample-admin/internal/domain"
	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service without importing it here.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		companyID := c.GetString("company_id")

		if userID == "" || companyID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:    userID,
			CompanyID: companyID,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "permission check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
