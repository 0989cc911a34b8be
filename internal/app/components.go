package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/bloodbank/config"
	cachemem "github.com/Gunvolt24/bloodbank/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/bloodbank/internal/cache/redis"
	"github.com/Gunvolt24/bloodbank/internal/kafka"
	"github.com/Gunvolt24/bloodbank/internal/ports"
)

// Поддерживаемые бэкенды кэша.
const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
)

// newScreeningCache — кэш результатов по SCREENING_CACHE_BACKEND.
func newScreeningCache(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.ScreeningCache, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", cacheBackendMemory:
		return cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL), func() {}, nil
	case cacheBackendRedis:
		client, err := cacheredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, func() {}, err
		}
		log.Infof(ctx, "redis cache enabled ttl=%s", cfg.Cache.TTL)
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warnf(ctx, "redis client close error: %v", err)
			}
		}
		return cacheredis.NewScreeningCache(client, cfg.Cache.TTL, log), closeFn, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// newVerdictPublisher — без топика результатов события не отправляются.
func newVerdictPublisher(ctx context.Context, cfg config.Kafka, log ports.Logger) ports.VerdictPublisher {
	topic := strings.TrimSpace(cfg.ResultsTopic)
	if topic == "" {
		return kafka.NopPublisher{}
	}
	log.Infof(ctx, "verdict events enabled topic=%s", topic)
	return kafka.NewPublisher(cfg.Brokers, topic)
}
