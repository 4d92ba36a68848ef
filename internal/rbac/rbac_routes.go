package rbac

import (
	"jample-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	service Service,
	authMiddleware gin.HandlerFunc,
	logger *zap.Logger,
) {
	group := r.Group("/rbac")
	group.Use(authMiddleware)
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce", middleware.RateLimitByUser(5, 20), handler.Enforce)
		group.GET("/roles", middleware.RBACAuthorize(service, ResourceAudit, ActionRead), handler.ListRoles)
		group.GET("/permissions", middleware.RBACAuthorize(service, ResourceAudit, ActionRead), handler.ListPermissions)
	}
}
