package ports

import (
	"context"

	"github.com/Gunvolt24/bloodbank/internal/domain"
)

// VerdictPublisher — отправка события о результате обследования.
type VerdictPublisher interface {
	Publish(ctx context.Context, rec *domain.ScreeningRecord) error
	Close() error
}
