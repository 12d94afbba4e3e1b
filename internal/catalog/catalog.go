// Package catalog holds the live in-memory seat state. The catalog is
// loaded once from the persistence boundary at startup and mutated only
// by the reservation manager; everything else reads snapshots. Seats
// keep their load order so ranking ties break reproducibly.
package catalog

import (
	"errors"
	"sync"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// ErrSeatNotFound is returned when a seat id matches no catalog entry.
// Seat identity is exact: no fuzzy matching, no case folding.
var ErrSeatNotFound = errors.New("seat not found")

// Stats summarizes the catalog occupancy at a point in time.
type Stats struct {
	Total            int     `json:"total"`
	Available        int     `json:"available"`
	Occupied         int     `json:"occupied"`
	Blocked          int     `json:"blocked"`
	Maintenance      int     `json:"maintenance"`
	AvailablePercent float64 `json:"available_percent"`
	OccupiedPercent  float64 `json:"occupied_percent"`
	BlockedPercent   float64 `json:"blocked_percent"`
}

// Catalog is the seat map keyed by id plus the original catalog order.
// A single RWMutex guards it: the HTTP layer is concurrent even though
// there is only one logical writer (the reservation manager).
type Catalog struct {
	mu    sync.RWMutex
	seats map[string]*model.Seat
	order []string
}

// New builds a catalog from loaded seat records. Seats belonging to the
// blocked team are normalized to RESERVED_PERMANENT with no occupant so
// the protected-team invariant holds from the first read.
func New(seats []model.Seat) *Catalog {
	c := &Catalog{seats: make(map[string]*model.Seat, len(seats))}
	for _, s := range seats {
		if _, dup := c.seats[s.ID]; dup {
			continue
		}
		if s.Team == model.BlockedTeam {
			s.Status = model.StatusReservedPermanent
			s.Occupant = ""
		}
		seat := s
		c.seats[s.ID] = &seat
		c.order = append(c.order, s.ID)
	}
	return c
}

// Get returns a copy of the seat with the given id.
func (c *Catalog) Get(id string) (model.Seat, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.seats[id]
	if !ok {
		return model.Seat{}, false
	}
	return cloneSeat(s), true
}

// All returns copies of every seat in catalog order.
func (c *Catalog) All() []model.Seat {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Seat, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneSeat(c.seats[id]))
	}
	return out
}

// Available returns copies of seats that are bookable right now:
// status AVAILABLE and not owned by the blocked team.
func (c *Catalog) Available() []model.Seat {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []model.Seat
	for _, id := range c.order {
		s := c.seats[id]
		if s.Status == model.StatusAvailable && s.Team != model.BlockedTeam {
			out = append(out, cloneSeat(s))
		}
	}
	return out
}

// SetState updates the live status and occupant of a seat. It is the
// only mutation path into the catalog.
func (c *Catalog) SetState(id, status, occupant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.seats[id]
	if !ok {
		return ErrSeatNotFound
	}
	s.Status = status
	s.Occupant = occupant
	return nil
}

// ZoneSize returns how many seats share the given zone label.
func (c *Catalog) ZoneSize(zone string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, s := range c.seats {
		if s.Zone == zone {
			n++
		}
	}
	return n
}

// Stats computes aggregate occupancy counts and percentages.
func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := Stats{Total: len(c.seats)}
	for _, s := range c.seats {
		switch s.Status {
		case model.StatusAvailable:
			st.Available++
		case model.StatusOccupied:
			st.Occupied++
		case model.StatusReservedPermanent:
			st.Blocked++
		case model.StatusMaintenance:
			st.Maintenance++
		}
	}
	if st.Total > 0 {
		st.AvailablePercent = pct(st.Available, st.Total)
		st.OccupiedPercent = pct(st.Occupied, st.Total)
		st.BlockedPercent = pct(st.Blocked, st.Total)
	}
	return st
}

func pct(n, total int) float64 {
	return float64(n) * 100 / float64(total)
}

func cloneSeat(s *model.Seat) model.Seat {
	out := *s
	out.Equipment = append([]string(nil), s.Equipment...)
	return out
}
