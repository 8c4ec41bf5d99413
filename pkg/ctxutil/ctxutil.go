package ctxutil

import (
	"context"
)

type ctxKey string

const (
	telegramIDKey ctxKey = "telegram_id"
	contextIDKey  ctxKey = "context_id"
	requestIDKey  ctxKey = "request_id"
)

// WithTelegramID stores the caller's Telegram user id in the context.
func WithTelegramID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, telegramIDKey, id)
}

// TelegramIDFromCtx extracts the Telegram user id from the context.
// Returns 0 and false if the value is missing, zero, or wrong type.
func TelegramIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(telegramIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithContextID stores the resolved tenant context id in the context.
func WithContextID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextIDKey, id)
}

// ContextIDFromCtx extracts the tenant context id.
// Returns an empty string if absent.
func ContextIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextIDKey).(string)
	return id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
