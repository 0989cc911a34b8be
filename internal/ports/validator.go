package ports

import (
	"context"

	"github.com/Gunvolt24/bloodbank/internal/domain"
)

// ScreeningValidator — приведение формы к показателям обследования.
type ScreeningValidator interface {
	Validate(ctx context.Context, form *domain.ScreeningForm) (domain.DonorScreeningInput, error)
}
