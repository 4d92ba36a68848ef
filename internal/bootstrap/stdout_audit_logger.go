package bootstrap

import (
	"context"
	"time"

	"jample-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct {
	logger  *zap.Logger
	service string
}

func NewStdoutAuditLogger(service string, logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit"), service: service}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("service", l.service),
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	l.logger.Info("audit event", fields...)
}
