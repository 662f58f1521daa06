// Package logger provides structured logging for sfsession.
package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = "sfsession.logger"
	// exchangeIDKey is the context key for the login/logout exchange ID.
	exchangeIDKey contextKey = "sfsession.exchange_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithExchangeID adds an exchange ID to the context. Every login or
// logout attempt gets its own ID so retries can be told apart.
func WithExchangeID(ctx context.Context, exchangeID string) context.Context {
	return context.WithValue(ctx, exchangeIDKey, exchangeID)
}

// ExchangeIDFromContext extracts the exchange ID from context.
func ExchangeIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(exchangeIDKey).(string); ok {
		return id
	}
	return ""
}

// L is a shorthand for FromContext that also enriches the logger
// with the exchange ID from the context.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)

	if exID := ExchangeIDFromContext(ctx); exID != "" {
		l = l.With("exchange_id", exID)
	}

	return l
}
