package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Serve runs handler until ctx is cancelled, then stops accepting
// connections and waits up to ShutdownTimeout for in-flight requests.
// A listener failure is returned without waiting for ctx.
func Serve(ctx context.Context, handler http.Handler, cfg ServerConfig, auditLogger AuditLogger) error {
	logger := zap.L().Named("http")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "draining http server",
		Meta:    map[string]any{"port": cfg.Port, "cause": context.Cause(ctx).Error()},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
