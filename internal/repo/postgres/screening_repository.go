package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.ScreeningRepository = (*ScreeningRepository)(nil)

// ScreeningRepository — журнал обследований донаций на Postgres (pgxpool).
type ScreeningRepository struct {
	pool *pgxpool.Pool
}

func NewScreeningRepository(pool *pgxpool.Pool) *ScreeningRepository {
	return &ScreeningRepository{pool: pool}
}

const selectColumns = `
	donation_id, sex, haemoglobin_g_dl, systolic_mmhg, diastolic_mmhg,
	eligible, reasons, evaluated_at`

// Save — upsert по donation_id: повторное обследование заменяет результат.
func (r *ScreeningRepository) Save(ctx context.Context, rec *domain.ScreeningRecord) error {
	if rec == nil || rec.DonationID == "" {
		return errors.New("screening is empty or donation_id is required")
	}

	reasons := make([]string, len(rec.Verdict.Reasons))
	for i, reason := range rec.Verdict.Reasons {
		reasons[i] = string(reason)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO screenings (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (donation_id) DO UPDATE SET
			sex = EXCLUDED.sex,
			haemoglobin_g_dl = EXCLUDED.haemoglobin_g_dl,
			systolic_mmhg = EXCLUDED.systolic_mmhg,
			diastolic_mmhg = EXCLUDED.diastolic_mmhg,
			eligible = EXCLUDED.eligible,
			reasons = EXCLUDED.reasons,
			evaluated_at = EXCLUDED.evaluated_at
	`,
		rec.DonationID, string(rec.Input.Sex), rec.Input.HaemoglobinGramsPerDeciliter,
		rec.Input.SystolicMmHg, rec.Input.DiastolicMmHg,
		rec.Verdict.Eligible, reasons, rec.EvaluatedAt,
	); err != nil {
		return fmt.Errorf("upsert screening: %w", err)
	}
	return nil
}

// GetByDonationID — (nil, nil), если донация не обследовалась.
func (r *ScreeningRepository) GetByDonationID(ctx context.Context, donationID string) (*domain.ScreeningRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM screenings WHERE donation_id = $1`, donationID)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select screening: %w", err)
	}
	return rec, nil
}

// ListRecent — последние результаты, новые первыми.
func (r *ScreeningRepository) ListRecent(ctx context.Context, limit, offset int) ([]*domain.ScreeningRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.query(ctx, `
		SELECT `+selectColumns+` FROM screenings
		ORDER BY evaluated_at DESC, donation_id
		LIMIT $1 OFFSET $2
	`, limit, offset)
}

// LastN — последние n результатов (для прогрева кэша).
func (r *ScreeningRepository) LastN(ctx context.Context, n int) ([]*domain.ScreeningRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.query(ctx, `
		SELECT `+selectColumns+` FROM screenings
		ORDER BY evaluated_at DESC, donation_id
		LIMIT $1
	`, n)
}

// Stats — доля допущенных донаций и распределение причин отказа.
func (r *ScreeningRepository) Stats(ctx context.Context) (domain.ScreeningStats, error) {
	stats := domain.ScreeningStats{ByReason: make(map[domain.Reason]int)}

	if err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE eligible),
		       count(*) FILTER (WHERE NOT eligible)
		FROM screenings
	`).Scan(&stats.Total, &stats.Eligible, &stats.Ineligible); err != nil {
		return domain.ScreeningStats{}, fmt.Errorf("select totals: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT reason, count(*)
		FROM screenings, unnest(reasons) AS reason
		GROUP BY reason
	`)
	if err != nil {
		return domain.ScreeningStats{}, fmt.Errorf("select reasons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reason string
			n      int
		)
		if err := rows.Scan(&reason, &n); err != nil {
			return domain.ScreeningStats{}, fmt.Errorf("scan reason: %w", err)
		}
		stats.ByReason[domain.Reason(reason)] = n
	}
	if err := rows.Err(); err != nil {
		return domain.ScreeningStats{}, fmt.Errorf("reasons rows: %w", err)
	}
	return stats, nil
}

func (r *ScreeningRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.ScreeningRecord, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select screenings: %w", err)
	}
	defer rows.Close()

	var out []*domain.ScreeningRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan screening: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("screenings rows: %w", err)
	}
	return out, nil
}

func scanRecord(row pgx.Row) (*domain.ScreeningRecord, error) {
	var (
		rec     domain.ScreeningRecord
		sex     string
		reasons []string
	)
	if err := row.Scan(
		&rec.DonationID, &sex, &rec.Input.HaemoglobinGramsPerDeciliter,
		&rec.Input.SystolicMmHg, &rec.Input.DiastolicMmHg,
		&rec.Verdict.Eligible, &reasons, &rec.EvaluatedAt,
	); err != nil {
		return nil, err
	}

	rec.Input.Sex = domain.Sex(sex)
	rec.Verdict.Reasons = make([]domain.Reason, len(reasons))
	for i, reason := range reasons {
		rec.Verdict.Reasons[i] = domain.Reason(reason)
	}
	rec.EvaluatedAt = rec.EvaluatedAt.UTC()
	return &rec, nil
}
