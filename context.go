package owmstudio

import (
	"context"

	"github.com/google/uuid"
)

type contextKey int

const (
	contextKeyRequestID contextKey = iota
	contextKeyTenant
)

// NewRequestID generates a unique ID for one logical generation request
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a context carrying the given request ID
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, id)
}

// RequestIDFrom returns the request ID carried by ctx, or "" if absent
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// WithTenant returns a context carrying the tenant identity
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, contextKeyTenant, tenantID)
}

// TenantFrom returns the tenant ID carried by ctx, or "" if absent
func TenantFrom(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyTenant).(string); ok {
		return id
	}
	return ""
}
