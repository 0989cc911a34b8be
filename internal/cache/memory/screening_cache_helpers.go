package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/pkg/metrics"
)

// evictLRU — удаляет наименее используемую запись.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	delete(c.index, elem.Value.(*entry).donationID)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL) reportSize() {
	metrics.CacheSize.Set(float64(c.ll.Len()))
}

func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — вычищает истёкшие записи с хвоста до первой актуальной.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil; back = c.ll.Back() {
		if !now.After(back.Value.(*entry).expiresAt) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}

// cloneRecord — копия записи; срез причин не разделяется с кэшем.
func cloneRecord(rec *domain.ScreeningRecord) *domain.ScreeningRecord {
	if rec == nil {
		return nil
	}
	cp := *rec
	if rec.Verdict.Reasons != nil {
		cp.Verdict.Reasons = append(make([]domain.Reason, 0, len(rec.Verdict.Reasons)), rec.Verdict.Reasons...)
	}
	return &cp
}
