package credit

import (
	"jample-admin/internal/middleware"
	"jample-admin/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
	sessionMiddleware gin.HandlerFunc,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	credits := r.Group("/credits")
	credits.Use(authMiddleware)
	credits.Use(middleware.ContextLogger(logger))
	credits.Use(sessionMiddleware)
	{
		credits.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCredit, rbac.ActionRead),
			handler.GetSummary,
		)

		credits.POST("/allocations/preview",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCredit, rbac.ActionRead),
			handler.Preview,
		)

		if redisClient != nil {
			credits.POST("/allocations",
				middleware.RateLimitByUser(0.2, 1),
				middleware.RBACAuthorize(rbacService, rbac.ResourceCredit, rbac.ActionAllocate),
				middleware.Idempotency(redisClient),
				handler.Allocate,
			)
		} else {
			credits.POST("/allocations",
				middleware.RateLimitByUser(0.2, 1),
				middleware.RBACAuthorize(rbacService, rbac.ResourceCredit, rbac.ActionAllocate),
				handler.Allocate,
			)
		}
	}
}
