package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/eligibility"
	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/Gunvolt24/bloodbank/pkg/ctxmeta"
	"github.com/Gunvolt24/bloodbank/pkg/metrics"
	"github.com/Gunvolt24/bloodbank/pkg/telemetry"
	"github.com/Gunvolt24/bloodbank/pkg/validate"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

var _ ports.ScreeningService = (*ScreeningService)(nil)

// sharedLoadTimeout — предел общего чтения из журнала при промахе кэша.
const sharedLoadTimeout = 5 * time.Second

// ScreeningService — прикладная логика обследования донаций (без знаний о транспорте).
type ScreeningService struct {
	repo      ports.ScreeningRepository
	cache     ports.ScreeningCache
	log       ports.Logger
	validator ports.ScreeningValidator
	publisher ports.VerdictPublisher // nil — события не отправляются
	now       func() time.Time
	loads     singleflight.Group // одно чтение из журнала на ID при конкурентных промахах
}

// NewScreeningService — DI-конструктор.
func NewScreeningService(
	repo ports.ScreeningRepository,
	cache ports.ScreeningCache,
	log ports.Logger,
	validator ports.ScreeningValidator,
	publisher ports.VerdictPublisher,
) *ScreeningService {
	return &ScreeningService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock — подмена часов (для тестов).
func (s *ScreeningService) WithClock(now func() time.Time) *ScreeningService {
	s.now = now
	return s
}

// Evaluate — проверка допуска без записи в журнал.
func (s *ScreeningService) Evaluate(ctx context.Context, form *domain.ScreeningForm) (*domain.ScreeningRecord, error) {
	ctx, span := telemetry.StartSpan(ctx, "screening.evaluate")
	defer span.End()

	input, err := s.validator.Validate(ctx, form)
	if err != nil {
		s.log.Warnf(ctx, "validation failed err=%v", err)
		return nil, err
	}

	rec := s.evaluate(strings.TrimSpace(form.DonationID), input)
	span.SetAttributes(attribute.Bool("screening.eligible", rec.Verdict.Eligible))
	return rec, nil
}

// Screen — оценка и запись результата обследования донации.
// Повторное обследование той же донации заменяет прежний результат.
func (s *ScreeningService) Screen(ctx context.Context, form *domain.ScreeningForm) (*domain.ScreeningRecord, error) {
	if form == nil || strings.TrimSpace(form.DonationID) == "" {
		return nil, fmt.Errorf("%w: donation_id обязателен", validate.ErrInvalidScreening)
	}
	donationID := strings.TrimSpace(form.DonationID)
	ctx = ctxmeta.WithDonationID(ctx, donationID)

	ctx, span := telemetry.StartSpan(ctx, "screening.screen", attribute.String("donation.id", donationID))
	defer span.End()

	input, err := s.validator.Validate(ctx, form)
	if err != nil {
		s.log.Warnf(ctx, "validation failed err=%v", err)
		return nil, err
	}

	rec := s.evaluate(donationID, input)
	span.SetAttributes(attribute.Bool("screening.eligible", rec.Verdict.Eligible))

	if err := s.repo.Save(ctx, rec); err != nil {
		s.log.Errorf(ctx, "repo.Save failed err=%v", err)
		return nil, fmt.Errorf("failed to save screening: %w", err)
	}

	if err := s.cache.Set(ctx, rec); err != nil {
		s.log.Warnf(ctx, "cache.Set failed err=%v", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, rec); err != nil {
			s.log.Warnf(ctx, "verdict publish failed err=%v", err)
		}
	}

	s.log.Infof(ctx, "screening recorded outcome=%s reasons=%v", rec.Verdict.Outcome(), rec.Verdict.Reasons)
	return rec, nil
}

// ScreenFromMessage — запись обследования, пришедшего из Kafka (raw JSON).
// Ошибки разбора оборачивают validate.ErrInvalidScreening.
func (s *ScreeningService) ScreenFromMessage(ctx context.Context, raw []byte) error {
	form, err := validate.DecodeForm(raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid message err=%v", err)
		return err
	}
	_, err = s.Screen(ctx, form)
	return err
}

// GetScreening — результат по ID донации: сначала кэш, при промахе журнал с записью в кэш.
// Возвращает (nil, nil), если донация не обследовалась.
func (s *ScreeningService) GetScreening(ctx context.Context, donationID string) (*domain.ScreeningRecord, error) {
	if rec, found := s.cache.Get(ctx, donationID); found {
		return rec, nil
	}

	// Чтение общее для всех ждущих, поэтому не зависит от отмены конкретного запроса.
	ch := s.loads.DoChan(donationID, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()
		return s.loadScreening(loadCtx, donationID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.Infof(ctx, "db fetch shared donation_id=%s", donationID)
		}
		return res.Val.(*domain.ScreeningRecord), nil
	}
}

func (s *ScreeningService) loadScreening(ctx context.Context, donationID string) (*domain.ScreeningRecord, error) {
	start := time.Now()
	rec, err := s.repo.GetByDonationID(ctx, donationID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByDonationID failed donation_id=%s err=%v", donationID, err)
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	if setErr := s.cache.Set(ctx, rec); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed donation_id=%s err=%v", donationID, setErr)
	}
	s.log.Infof(ctx, "db fetch donation_id=%s took=%s", donationID, time.Since(start))
	return rec, nil
}

// ListScreenings — последние результаты (пагинация уже проверена на верхнем уровне).
func (s *ScreeningService) ListScreenings(ctx context.Context, limit, offset int) ([]*domain.ScreeningRecord, error) {
	return s.repo.ListRecent(ctx, limit, offset)
}

// Stats — агрегаты журнала.
func (s *ScreeningService) Stats(ctx context.Context) (domain.ScreeningStats, error) {
	return s.repo.Stats(ctx)
}

// WarmUpCache — прогрев кэша последними N результатами.
// n <= 0 — прогрев пропускается.
func (s *ScreeningService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if err := s.cache.WarmUp(ctx, list); err != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", err)
	}
	s.log.Infof(ctx, "cache warmed with %d screenings in %s", len(list), time.Since(start))
	return nil
}

func (s *ScreeningService) evaluate(donationID string, input domain.DonorScreeningInput) *domain.ScreeningRecord {
	verdict := eligibility.Evaluate(input)

	metrics.ScreeningsEvaluated.WithLabelValues(string(verdict.Outcome())).Inc()
	for _, r := range verdict.Reasons {
		metrics.ScreeningRejections.WithLabelValues(string(r)).Inc()
	}

	return &domain.ScreeningRecord{
		DonationID:  donationID,
		Input:       input,
		Verdict:     verdict,
		EvaluatedAt: s.now(),
	}
}
