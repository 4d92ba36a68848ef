package contextutil

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	userIDKey
	companyIDKey
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// WithUserID records the acting admin's backend user id.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

func WithCompanyID(ctx context.Context, companyID int64) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetCompanyID returns 0 when the request carries no tenant.
func GetCompanyID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(companyIDKey).(int64)
	return id
}

// Fields renders the request identity stored in ctx as log fields.
// Unset values are left out.
func Fields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if rid := GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid := GetUserID(ctx); uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}
	if cid := GetCompanyID(ctx); cid != 0 {
		fields = append(fields, zap.String("company_id", strconv.FormatInt(cid, 10)))
	}
	return fields
}

// Logger returns base decorated with Fields(ctx). A nil base falls back
// to the global logger.
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		base = zap.L()
	}
	fields := Fields(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}
