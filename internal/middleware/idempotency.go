package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour

	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"
)

// Idempotency replays the stored result for a repeated Idempotency-Key and
// blocks a concurrent duplicate with a short Redis lock. Handlers finish
// the cycle with CompleteIdempotency.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost || rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Named("middleware.idempotency").Warn("idempotency lock failed, continuing", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING",
				"The same request is still being processed, please wait.", nil)
			c.Abort()
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// CompleteIdempotency releases the lock and, when result is non-nil,
// stores it for replay. It is a no-op outside an idempotent request.
func CompleteIdempotency(c *gin.Context, rdb *redis.Client, result any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if lockKey := c.GetString(idempotencyLockKey); lockKey != "" {
		rdb.Del(ctx, lockKey)
	}

	cacheKey := c.GetString(idempotencyCacheKey)
	if cacheKey == "" || result == nil {
		return
	}
	if data, err := json.Marshal(result); err == nil {
		rdb.Set(ctx, cacheKey, data, idempotencyResultTTL)
	}
}
