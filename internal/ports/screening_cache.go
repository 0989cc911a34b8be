package ports

import (
	"context"

	"github.com/Gunvolt24/bloodbank/internal/domain"
)

// ScreeningCache — интерфейс кэша результатов обследований.
// Требования к реализации: потокобезопасность; возврат копий записи.
type ScreeningCache interface {
	// Get — вернуть запись по ID донации; (rec, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, donationID string) (*domain.ScreeningRecord, bool)

	// Set — сохранить/обновить запись в кэше.
	Set(ctx context.Context, rec *domain.ScreeningRecord) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, recs []*domain.ScreeningRecord) error
}
