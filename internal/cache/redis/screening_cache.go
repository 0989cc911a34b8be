package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/Gunvolt24/bloodbank/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "screening:"

var _ ports.ScreeningCache = (*ScreeningCache)(nil)

// ScreeningCache — общий для реплик кэш результатов обследований.
// Значения хранятся в JSON под ключом screening:<donation_id>; ttl <= 0 — без истечения.
type ScreeningCache struct {
	client goredis.Cmdable
	ttl    time.Duration
	log    ports.Logger
}

func NewScreeningCache(client goredis.Cmdable, ttl time.Duration, log ports.Logger) *ScreeningCache {
	return &ScreeningCache{client: client, ttl: ttl, log: log}
}

func key(donationID string) string { return keyPrefix + donationID }

// Get — ошибки Redis считаются промахом: журнал остаётся источником истины.
func (c *ScreeningCache) Get(ctx context.Context, donationID string) (*domain.ScreeningRecord, bool) {
	raw, err := c.client.Get(ctx, key(donationID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		c.log.Warnf(ctx, "redis get failed donation_id=%s err=%v", donationID, err)
		return nil, false
	}

	var rec domain.ScreeningRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		c.log.Warnf(ctx, "redis value corrupted donation_id=%s err=%v", donationID, err)
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return &rec, true
}

func (c *ScreeningCache) Set(ctx context.Context, rec *domain.ScreeningRecord) error {
	if rec == nil || rec.DonationID == "" {
		return nil
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key(rec.DonationID), raw, c.expiration()).Err(); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return err
	}
	return nil
}

// WarmUp — одна пачка SET через pipeline.
func (c *ScreeningCache) WarmUp(ctx context.Context, recs []*domain.ScreeningRecord) error {
	if len(recs) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, rec := range recs {
			if rec == nil || rec.DonationID == "" {
				continue
			}
			raw, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			pipe.Set(ctx, key(rec.DonationID), raw, c.expiration())
		}
		return nil
	})
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
	}
	return err
}

func (c *ScreeningCache) expiration() time.Duration {
	if c.ttl <= 0 {
		return 0 // без истечения
	}
	return c.ttl
}
