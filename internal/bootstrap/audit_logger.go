package bootstrap

import "context"

// AuditLog is an operational event of the process itself, such as a
// shutdown. Business events go through the outbox instead.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
