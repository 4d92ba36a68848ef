package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jample-admin/internal/app"
	"jample-admin/internal/bootstrap"
	"jample-admin/internal/config"
	"jample-admin/internal/i18n"
	"jample-admin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	if err := i18n.Init(cfg.DefaultLocale); err != nil {
		logger.Fatal("load message catalog failed", zap.Error(err))
	}

	r := gin.Default()

	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bootstrap.Serve(ctx, r, bootstrap.ServerConfig{
		Port:            cfg.Port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    cfg.GraphQLTimeout + 5*time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}, bootstrap.NewStdoutAuditLogger("api", logger))
	if err != nil {
		logger.Error("http server stopped with error", zap.Error(err))
	}
}
