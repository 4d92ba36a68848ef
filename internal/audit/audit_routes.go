package audit

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
	audits := r.Group("/audit")
	audits.Use(authMiddleware)
	audits.Use(middleware.ContextLogger(logger))
	audits.Use(sessionMiddleware)
	{
		audits.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAudit, rbac.ActionRead),
			handler.GetAll,
		)
	}
}
