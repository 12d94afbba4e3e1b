package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// SeatStore reads and mirrors the `seats` table.
//
//	CREATE TABLE seats (
//	  id                 VARCHAR(32) PRIMARY KEY,
//	  team               VARCHAR(64)  NOT NULL,
//	  zone               VARCHAR(64)  NOT NULL,
//	  zone_type          VARCHAR(32)  NOT NULL,
//	  x                  DOUBLE       NOT NULL DEFAULT 0,
//	  y                  DOUBLE       NOT NULL DEFAULT 0,
//	  equipment          VARCHAR(255) NOT NULL DEFAULT '',
//	  status             VARCHAR(32)  NOT NULL DEFAULT 'AVAILABLE',
//	  occupant           VARCHAR(128) NOT NULL DEFAULT '',
//	  near_window        TINYINT(1)   NOT NULL DEFAULT 0,
//	  cold_area          TINYINT(1)   NOT NULL DEFAULT 0,
//	  aisle_adjacent     TINYINT(1)   NOT NULL DEFAULT 0,
//	  near_meeting_rooms TINYINT(1)   NOT NULL DEFAULT 0
//	)
type SeatStore struct {
	db *sql.DB
}

// NewSeatStore constructs a SeatStore with the given DB handle.
func NewSeatStore(db *sql.DB) *SeatStore {
	return &SeatStore{db: db}
}

// LoadAll reads the full seat catalog in primary-key order. Equipment
// is stored as a comma-separated list.
func (s *SeatStore) LoadAll(ctx context.Context) ([]model.Seat, error) {
	const q = `SELECT id, team, zone, zone_type, x, y, equipment, status, occupant,
	                  near_window, cold_area, aisle_adjacent, near_meeting_rooms
	           FROM seats ORDER BY id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var st model.Seat
		var equipment string
		if err := rows.Scan(
			&st.ID, &st.Team, &st.Zone, &st.ZoneType, &st.X, &st.Y, &equipment,
			&st.Status, &st.Occupant, &st.NearWindow, &st.ColdArea,
			&st.AisleAdjacent, &st.NearMeetingRooms,
		); err != nil {
			return nil, err
		}
		if equipment != "" {
			st.Equipment = strings.Split(equipment, ",")
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveState mirrors the live status and occupant of one seat.
func (s *SeatStore) SaveState(ctx context.Context, seatID, status, occupant string) error {
	// No RowsAffected check: MySQL reports zero affected rows for a
	// no-op update, which is not a failure here.
	const q = `UPDATE seats SET status = ?, occupant = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, status, occupant, seatID)
	return err
}
