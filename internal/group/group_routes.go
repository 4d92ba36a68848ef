package group

import (
	"jample-admin/internal/middleware"
	"jample-admin/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
	sessionMiddleware gin.HandlerFunc,
	logger *zap.Logger,
) {
	groups := r.Group("/groups")
	groups.Use(authMiddleware)
	groups.Use(middleware.ContextLogger(logger))
	groups.Use(sessionMiddleware)
	{
		groups.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceGroup, rbac.ActionRead),
			handler.GetAll,
		)
		groups.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceGroup, rbac.ActionCreate),
			handler.Create,
		)
		groups.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceGroup, rbac.ActionUpdate),
			handler.Update,
		)
		groups.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceGroup, rbac.ActionDelete),
			handler.Delete,
		)
		groups.PUT("/:id/members/:employeeId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceGroup, rbac.ActionUpdate),
			handler.AssignEmployee,
		)
		groups.DELETE("/:id/members/:employeeId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceGroup, rbac.ActionUpdate),
			handler.UnassignEmployee,
		)
	}
}
