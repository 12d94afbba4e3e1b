package store

import (
	"context"
	"database/sql"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// Mirror bundles the seat and history stores behind the reservation
// manager's Persister interface.
type Mirror struct {
	Seats   *SeatStore
	History *HistoryStore
}

// NewMirror builds a Mirror over one DB handle.
func NewMirror(db *sql.DB) *Mirror {
	return &Mirror{Seats: NewSeatStore(db), History: NewHistoryStore(db)}
}

// SaveSeatState mirrors a seat's live status and occupant.
func (m *Mirror) SaveSeatState(ctx context.Context, seat model.Seat) error {
	return m.Seats.SaveState(ctx, seat.ID, seat.Status, seat.Occupant)
}

// AppendHistory mirrors a new ledger record.
func (m *Mirror) AppendHistory(ctx context.Context, rec model.BookingRecord) error {
	return m.History.Insert(ctx, rec)
}

// RemoveHistory mirrors a ledger removal.
func (m *Mirror) RemoveHistory(ctx context.Context, seatID, occupantID string) error {
	return m.History.Delete(ctx, seatID, occupantID)
}
