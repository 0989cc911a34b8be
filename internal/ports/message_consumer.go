package ports

import "context"

// MessageConsumer — фоновый приём форм обследования из брокера.
// Run блокируется до отмены ctx; Close идемпотентен.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
