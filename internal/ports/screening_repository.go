package ports

import (
	"context"

	"github.com/Gunvolt24/bloodbank/internal/domain"
)

// ScreeningRepository — журнал обследований донаций.
type ScreeningRepository interface {
	Save(ctx context.Context, rec *domain.ScreeningRecord) error
	GetByDonationID(ctx context.Context, donationID string) (*domain.ScreeningRecord, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.ScreeningRecord, error)
	LastN(ctx context.Context, n int) ([]*domain.ScreeningRecord, error)
	Stats(ctx context.Context) (domain.ScreeningStats, error)
}
