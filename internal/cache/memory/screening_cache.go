package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/Gunvolt24/bloodbank/pkg/metrics"
)

var _ ports.ScreeningCache = (*LRUCacheTTL)(nil)

type entry struct {
	donationID string
	rec        *domain.ScreeningRecord
	expiresAt  time.Time
}

// LRUCacheTTL — локальный кэш результатов обследований: LRU по ёмкости + скользящий TTL.
// ttl <= 0 — записи не истекают.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element, capacity),
	}
}

// Get — копия записи; обращение продлевает TTL.
func (c *LRUCacheTTL) Get(_ context.Context, donationID string) (*domain.ScreeningRecord, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[donationID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.reportSize()
		return nil, false
	}

	c.ll.MoveToFront(elem)
	ent.expiresAt = c.expiryFrom(now)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneRecord(ent.rec), true
}

// Set — записи без ID донации не кэшируются.
func (c *LRUCacheTTL) Set(_ context.Context, rec *domain.ScreeningRecord) error {
	if rec == nil || rec.DonationID == "" {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[rec.DonationID]; ok {
		ent := elem.Value.(*entry)
		ent.rec = cloneRecord(rec)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	c.index[rec.DonationID] = c.ll.PushFront(&entry{
		donationID: rec.DonationID,
		rec:        cloneRecord(rec),
		expiresAt:  c.expiryFrom(now),
	})
	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	c.reportSize()
	return nil
}

// WarmUp — загрузка пачки записей; прерывается при отмене контекста.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, recs []*domain.ScreeningRecord) error {
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Len — число записей (включая ещё не вычищенные истёкшие).
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
