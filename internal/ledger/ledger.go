// Package ledger implements the booking history ledger: an append-only
// ordered log of reservation intervals with an index by (seat,
// occupant) so a release can remove its record in O(1). Records feed
// the scoring engine's popularity and team-affinity facts.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// Popularity aggregates the historical booking facts for one seat.
type Popularity struct {
	Count int
	Teams map[string]struct{}
}

// HasTeam reports whether the seat's historical occupants include the
// given team. Comparison is case-insensitive.
func (p Popularity) HasTeam(team string) bool {
	_, ok := p.Teams[strings.ToLower(team)]
	return ok
}

type entry struct {
	rec     model.BookingRecord
	removed bool
}

// Ledger is the in-memory booking log. Removal tombstones the entry and
// drops it from the index; the log itself stays ordered by append time.
type Ledger struct {
	mu      sync.RWMutex
	entries []*entry
	index   map[string]*entry // keyed by seatID + "\x00" + occupantID
	live    int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{index: make(map[string]*entry)}
}

// Replay loads previously persisted records in their original order.
// Used once at startup before the ledger is shared.
func Replay(records []model.BookingRecord) *Ledger {
	l := New()
	for _, r := range records {
		l.Append(r)
	}
	return l
}

func key(seatID, occupantID string) string {
	return seatID + "\x00" + occupantID
}

// Append adds a record to the end of the log. A record for the same
// (seat, occupant) pair replaces the old index entry; the old record is
// tombstoned so the log never holds two live records for one pair.
func (l *Ledger) Append(rec model.BookingRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(rec.SeatID, rec.OccupantID)
	if old, ok := l.index[k]; ok {
		old.removed = true
		l.live--
	}
	e := &entry{rec: rec}
	l.entries = append(l.entries, e)
	l.index[k] = e
	l.live++
}

// Remove deletes the record matching exactly (seatID, occupantID).
// It reports whether a record was removed. Removal never matches by
// date range.
func (l *Ledger) Remove(seatID, occupantID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(seatID, occupantID)
	e, ok := l.index[k]
	if !ok {
		return false
	}
	e.removed = true
	delete(l.index, k)
	l.live--
	return true
}

// Len returns the number of live records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.live
}

// BySeat returns the live records for a seat in append order.
func (l *Ledger) BySeat(seatID string) []model.BookingRecord {
	return l.filter(func(r model.BookingRecord) bool { return r.SeatID == seatID })
}

// ByOccupant returns the live records for a derived occupant id.
func (l *Ledger) ByOccupant(occupantID string) []model.BookingRecord {
	return l.filter(func(r model.BookingRecord) bool { return r.OccupantID == occupantID })
}

// ByTeam returns the live records for a team, case-insensitively.
func (l *Ledger) ByTeam(team string) []model.BookingRecord {
	return l.filter(func(r model.BookingRecord) bool { return strings.EqualFold(r.Team, team) })
}

// ActiveOn returns the live records whose date interval contains the
// given day (inclusive on both ends).
func (l *Ledger) ActiveOn(day time.Time) []model.BookingRecord {
	return l.filter(func(r model.BookingRecord) bool { return r.CoversDate(day) })
}

// Export returns a snapshot of all live records in append order. The
// snapshot is independent of the ledger; exporting never mutates it.
func (l *Ledger) Export() []model.BookingRecord {
	return l.filter(func(model.BookingRecord) bool { return true })
}

// Popularity aggregates, per seat id, how many live records exist and
// which distinct teams they belong to. Teams are stored lower-cased.
func (l *Ledger) Popularity() map[string]Popularity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]Popularity)
	for _, e := range l.entries {
		if e.removed {
			continue
		}
		p, ok := out[e.rec.SeatID]
		if !ok {
			p = Popularity{Teams: make(map[string]struct{})}
		}
		p.Count++
		p.Teams[strings.ToLower(e.rec.Team)] = struct{}{}
		out[e.rec.SeatID] = p
	}
	return out
}

func (l *Ledger) filter(keep func(model.BookingRecord) bool) []model.BookingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.BookingRecord, 0, l.live)
	for _, e := range l.entries {
		if !e.removed && keep(e.rec) {
			out = append(out, e.rec)
		}
	}
	return out
}
