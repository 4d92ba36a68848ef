package middleware

import (
	"strconv"
	"time"

	"jample-admin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger copies the request id and the authenticated admin into
// the standard context, so services can log with contextutil.Logger, and
// writes one debug line per finished request.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = c.GetHeader(HeaderRequestID)
		}
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Header(HeaderRequestID, rid)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithUserID(ctx, c.GetString("user_id"))
		if cid, err := strconv.ParseInt(c.GetString("company_id"), 10, 64); err == nil {
			ctx = contextutil.WithCompanyID(ctx, cid)
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		contextutil.Logger(ctx, logger).Debug("request finished",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
