package ports

import "context"

// Logger — контракт логгера для слоёв сервиса.
// Реализация сама дописывает request_id, donation_id и trace_id из ctx.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
