package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(authMiddleware)
	dash.Use(middleware.ContextLogger(logger))
	dash.Use(sessionMiddleware)
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead)

		dash.GET("/member-stats", middleware.RateLimitByUser(3, 10), read, handler.MemberStats)
		dash.GET("/jam-usage", middleware.RateLimitByUser(3, 10), read, handler.JamUsage)
		dash.GET("/reviews", middleware.RateLimitByUser(3, 10), read, handler.RecentReviews)
	}
}
