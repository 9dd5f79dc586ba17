package observability

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for observability data.
type contextKey string

const (
	invocationIDCtxKey contextKey = "invocation_id"
	operationCtxKey    contextKey = "operation"
)

// Standard attribute keys used in logs.
const (
	InvocationIDKey = "invocation_id"
	OperationKey    = "operation"
	DurationKey     = "duration_ms"
	ErrorKey        = "error"
)

// WithInvocationID adds an invocation ID to the context.
// If id is empty, a new UUID is generated.
func WithInvocationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, invocationIDCtxKey, id)
}

// InvocationIDFromContext extracts the invocation ID from context.
func InvocationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(invocationIDCtxKey).(string); ok {
		return id
	}
	return ""
}

// WithOperation adds an operation name to the context.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationCtxKey, operation)
}

// OperationFromContext extracts the operation name from context.
func OperationFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if op, ok := ctx.Value(operationCtxKey).(string); ok {
		return op
	}
	return ""
}
