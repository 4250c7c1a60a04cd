package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is the type of request-scoped context keys.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on every response.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a new trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, NewTraceID())
}

// WithTraceID stores traceID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// NewTraceID returns a random 32-character hex trace ID.
func NewTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
