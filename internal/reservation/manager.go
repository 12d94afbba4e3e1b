package reservation

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/ledger"
	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// DefaultBookingDays is the length of a reservation when the caller
// supplies no interval: [today, today+7 days], inclusive.
const DefaultBookingDays = 7

// Persister mirrors reservation effects to the durable store. Mirror
// failures are logged and swallowed: the in-memory catalog and ledger
// stay authoritative for the running session.
type Persister interface {
	SaveSeatState(ctx context.Context, seat model.Seat) error
	AppendHistory(ctx context.Context, rec model.BookingRecord) error
	RemoveHistory(ctx context.Context, seatID, occupantID string) error
}

// Manager is the reservation state machine. Per seat the bookable path
// is AVAILABLE <-> OCCUPIED; RESERVED_PERMANENT is an absorbing state
// for blocked-team seats that is never entered or left at runtime.
type Manager struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
	Store   Persister // optional; nil runs memory-only

	// Now supplies the reference clock; tests pin it.
	Now func() time.Time
}

// NewManager wires a manager over the catalog and ledger. store may be
// nil when no durable mirror is configured.
func NewManager(cat *catalog.Catalog, led *ledger.Ledger, store Persister) *Manager {
	return &Manager{Catalog: cat, Ledger: led, Store: store, Now: time.Now}
}

// Reserve books a seat for the occupant. The zero interval defaults to
// [today, today+DefaultBookingDays]. On success the seat becomes
// OCCUPIED with the occupant recorded and a history record is appended.
func (m *Manager) Reserve(ctx context.Context, seatID, occupantName, occupantTeam string, start, end time.Time) (model.BookingRecord, error) {
	seat, ok := m.Catalog.Get(seatID)
	if !ok {
		return model.BookingRecord{}, ErrNotFound
	}
	if seat.Status != model.StatusAvailable {
		return model.BookingRecord{}, ErrConflict
	}

	now := m.Now()
	if start.IsZero() {
		start = now
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, DefaultBookingDays)
	}
	rec := model.BookingRecord{
		OccupantID:   model.DeriveOccupantID(occupantName),
		OccupantName: occupantName,
		Team:         occupantTeam,
		SeatID:       seatID,
		StartDate:    start,
		EndDate:      end,
		CreatedAt:    now,
	}

	if err := m.Catalog.SetState(seatID, model.StatusOccupied, occupantName); err != nil {
		return model.BookingRecord{}, ErrNotFound
	}
	m.Ledger.Append(rec)

	if m.Store != nil {
		updated, _ := m.Catalog.Get(seatID)
		if err := m.Store.SaveSeatState(ctx, updated); err != nil {
			log.Printf("reserve %s: seat state not persisted: %v", seatID, err)
		}
		if err := m.Store.AppendHistory(ctx, rec); err != nil {
			log.Printf("reserve %s: history not persisted: %v", seatID, err)
		}
	}
	return rec, nil
}

// Release frees an occupied seat and removes the matching history
// record by exact (seat, derived occupant) identity. Blocked-team seats
// are never releasable.
func (m *Manager) Release(ctx context.Context, seatID string) error {
	seat, ok := m.Catalog.Get(seatID)
	if !ok {
		return ErrNotFound
	}
	if seat.Team == model.BlockedTeam {
		return ErrForbidden
	}

	occupantID := model.DeriveOccupantID(seat.Occupant)
	if err := m.Catalog.SetState(seatID, model.StatusAvailable, ""); err != nil {
		return ErrNotFound
	}
	if occupantID != "" {
		m.Ledger.Remove(seatID, occupantID)
	}

	if m.Store != nil {
		updated, _ := m.Catalog.Get(seatID)
		if err := m.Store.SaveSeatState(ctx, updated); err != nil {
			log.Printf("release %s: seat state not persisted: %v", seatID, err)
		}
		if occupantID != "" {
			if err := m.Store.RemoveHistory(ctx, seatID, occupantID); err != nil {
				log.Printf("release %s: history removal not persisted: %v", seatID, err)
			}
		}
	}
	return nil
}

// ResetToInitialState forces every seat back to its starting point:
// blocked-team seats to RESERVED_PERMANENT with no occupant, everything
// else to AVAILABLE with no occupant. The operation is idempotent.
func (m *Manager) ResetToInitialState(ctx context.Context) {
	for _, seat := range m.Catalog.All() {
		status := model.StatusAvailable
		if seat.Team == model.BlockedTeam {
			status = model.StatusReservedPermanent
		}
		if seat.Status == status && seat.Occupant == "" {
			continue
		}
		if err := m.Catalog.SetState(seat.ID, status, ""); err != nil {
			continue
		}
		if m.Store != nil {
			updated, _ := m.Catalog.Get(seat.ID)
			if err := m.Store.SaveSeatState(ctx, updated); err != nil {
				log.Printf("reset %s: seat state not persisted: %v", seat.ID, err)
			}
		}
	}
}

// ReserveSeat is the boolean public contract: true on success, false on
// any failure after logging the cause. Zero start/end select the
// default interval.
func (m *Manager) ReserveSeat(ctx context.Context, seatID, occupantName, occupantTeam string, start, end time.Time) bool {
	if _, err := m.Reserve(ctx, seatID, occupantName, occupantTeam, start, end); err != nil {
		log.Printf("reserve %s for %q: %v", seatID, occupantName, err)
		return false
	}
	return true
}

// ReleaseSeat is the boolean public contract for Release.
func (m *Manager) ReleaseSeat(ctx context.Context, seatID string) bool {
	if err := m.Release(ctx, seatID); err != nil {
		log.Printf("release %s: %v", seatID, err)
		return false
	}
	return true
}
