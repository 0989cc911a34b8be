package ports

import (
	"context"

	"github.com/Gunvolt24/bloodbank/internal/domain"
)

// ScreeningService — операции, доступные транспортному слою.
type ScreeningService interface {
	Evaluate(ctx context.Context, form *domain.ScreeningForm) (*domain.ScreeningRecord, error)
	Screen(ctx context.Context, form *domain.ScreeningForm) (*domain.ScreeningRecord, error)
	GetScreening(ctx context.Context, donationID string) (*domain.ScreeningRecord, error)
	ListScreenings(ctx context.Context, limit, offset int) ([]*domain.ScreeningRecord, error)
	Stats(ctx context.Context) (domain.ScreeningStats, error)
}
