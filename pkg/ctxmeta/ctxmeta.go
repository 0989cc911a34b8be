// Пакет ctxmeta — метаданные запроса в context.Context (request_id, donation_id, trace_id).
// HTTP-слой, консьюмер и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID  ctxKey = "request_id"
	KeyDonationID ctxKey = "donation_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeyRequestID)
}

// WithDonationID кладёт ID донации, по которой идёт обследование.
func WithDonationID(ctx context.Context, donationID string) context.Context {
	return withValue(ctx, KeyDonationID, donationID)
}

func DonationIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, KeyDonationID)
}

func withValue(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

// valueOf — пустое значение считаем отсутствующим.
func valueOf(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
