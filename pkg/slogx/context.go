package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// NewContext returns ctx carrying logger. Handlers read it back with
// FromContext so their lines keep the req_id set by HTTPMiddleware.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// With narrows the context logger with args, e.g. the authenticated user_id.
func With(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	return NewContext(ctx, FromContext(ctx).With(args...))
}
