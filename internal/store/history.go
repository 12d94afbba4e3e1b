package store

import (
	"context"
	"database/sql"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// HistoryStore mirrors the booking ledger in the `booking_history`
// table. Rows are inserted by reserve and deleted only by an explicit
// release; they are never updated in place.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore constructs a HistoryStore with the given DB handle.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// LoadAll replays the persisted ledger in append order.
func (h *HistoryStore) LoadAll(ctx context.Context) ([]model.BookingRecord, error) {
	const q = `SELECT occupant_id, occupant_name, team, seat_id, start_date, end_date, created_at
	           FROM booking_history ORDER BY created_at, id`
	rows, err := h.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BookingRecord
	for rows.Next() {
		var r model.BookingRecord
		if err := rows.Scan(&r.OccupantID, &r.OccupantName, &r.Team, &r.SeatID,
			&r.StartDate, &r.EndDate, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Insert appends one booking record.
func (h *HistoryStore) Insert(ctx context.Context, r model.BookingRecord) error {
	const q = `INSERT INTO booking_history
	           (occupant_id, occupant_name, team, seat_id, start_date, end_date, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := h.db.ExecContext(ctx, q,
		r.OccupantID, r.OccupantName, r.Team, r.SeatID, r.StartDate, r.EndDate, r.CreatedAt)
	return err
}

// Delete removes records matching exactly (seatID, occupantID).
func (h *HistoryStore) Delete(ctx context.Context, seatID, occupantID string) error {
	const q = `DELETE FROM booking_history WHERE seat_id = ? AND occupant_id = ?`
	_, err := h.db.ExecContext(ctx, q, seatID, occupantID)
	return err
}
