package employee

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
	employees := r.Group("/employees")
	employees.Use(authMiddleware)
	employees.Use(middleware.ContextLogger(logger))
	employees.Use(sessionMiddleware)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetAll,
		)

		employees.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.Export,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetById,
		)

		employees.GET("/:id/status",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetStatusForm,
		)

		// Preview is called on every form edit, so it gets a looser limit.
		employees.POST("/:id/status/preview",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.PreviewStatus,
		)

		employees.PUT("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdate),
			handler.ChangeStatus,
		)
	}
}
