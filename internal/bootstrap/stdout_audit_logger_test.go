package bootstrap

import (
	"context"
	"testing"

	"jample-admin/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger("api", zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	l.Log(ctx, AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"signal": "terminated"}})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "api", fields["service"])
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "rid-1", fields["request_id"])
}
