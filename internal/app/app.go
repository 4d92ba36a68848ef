package app

import (
	"jample-admin/internal/config"
	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp connects the infrastructure and registers every module on
// router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	router.Use(middleware.RequestID(), middleware.Locale())

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}, nil
}
