// Package activity tracks the live activity level of office zones. The
// level is the recent occupancy density of a zone on a 0-100 scale and
// feeds the scoring engine's zone-activity term. Counters live in Redis
// with a TTL so activity decays when a zone goes quiet; without a Redis
// client the tracker degrades to in-memory counters.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "zone_activity:"
	counterTTL = 4 * time.Hour
	opTimeout  = 500 * time.Millisecond
)

// Tracker maintains per-zone occupancy counters. sizes maps a zone
// label to its seat count and normalizes the counter to a percentage.
type Tracker struct {
	rdb   *redis.Client // nil -> in-memory fallback
	sizes func(zone string) int

	mu    sync.RWMutex
	local map[string]int
}

// NewTracker builds a tracker. rdb may be nil; sizes must report the
// number of seats in a zone (zero-size zones read as mid-range).
func NewTracker(rdb *redis.Client, sizes func(zone string) int) *Tracker {
	return &Tracker{rdb: rdb, sizes: sizes, local: make(map[string]int)}
}

// Seed initializes a zone's counter, typically from the catalog's
// occupied-seat count at startup.
func (t *Tracker) Seed(zone string, occupied int) {
	if t.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := t.rdb.Set(ctx, keyPrefix+zone, occupied, counterTTL).Err(); err == nil {
			return
		}
	}
	t.mu.Lock()
	t.local[zone] = occupied
	t.mu.Unlock()
}

// Record shifts a zone's counter by delta: +1 on reserve, -1 on
// release. Redis failures fall through to the local counter.
func (t *Tracker) Record(zone string, delta int) {
	if t.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if n, err := t.rdb.IncrBy(ctx, keyPrefix+zone, int64(delta)).Result(); err == nil {
			if n < 0 {
				t.rdb.Set(ctx, keyPrefix+zone, 0, counterTTL)
			} else {
				t.rdb.Expire(ctx, keyPrefix+zone, counterTTL)
			}
			return
		}
	}
	t.mu.Lock()
	if t.local[zone] += delta; t.local[zone] < 0 {
		t.local[zone] = 0
	}
	t.mu.Unlock()
}

// ZoneLevel returns the zone's activity on a 0-100 scale. Unknown or
// empty zones read as 50 so scoring stays neutral for them.
func (t *Tracker) ZoneLevel(zone string) int {
	size := 0
	if t.sizes != nil {
		size = t.sizes(zone)
	}
	if size <= 0 {
		return 50
	}
	count, ok := t.counter(zone)
	if !ok {
		return 50
	}
	level := count * 100 / size
	if level > 100 {
		level = 100
	}
	if level < 0 {
		level = 0
	}
	return level
}

func (t *Tracker) counter(zone string) (int, bool) {
	if t.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if n, err := t.rdb.Get(ctx, keyPrefix+zone).Int(); err == nil {
			return n, true
		} else if err == redis.Nil {
			return 0, true
		}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.local[zone]
	return n, ok || t.rdb == nil
}
