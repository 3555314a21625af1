package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

type requestScope struct {
	correlationID string
	log           *zap.Logger
}

// WithCorrelationID returns ctx carrying id and a logger tagged with it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestScope{
		correlationID: id,
		log:           Log.With(CorrelationID(id)),
	})
}

// CorrelationIDFromContext returns "" when ctx has no correlation id.
func CorrelationIDFromContext(ctx context.Context) string {
	scope, _ := ctx.Value(contextKey{}).(requestScope)
	return scope.correlationID
}

// FromContext returns the request logger stored by WithCorrelationID, or Log.
func FromContext(ctx context.Context) *zap.Logger {
	if scope, ok := ctx.Value(contextKey{}).(requestScope); ok && scope.log != nil {
		return scope.log
	}
	return Log
}
