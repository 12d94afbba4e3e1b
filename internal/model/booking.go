package model

import (
	"strings"
	"time"
)

// BookingRecord is one entry in the booking history ledger. Records are
// append-only: they are created by reserve, removed by an explicit
// release, and never mutated in place.
//
// Fields:
//  OccupantID   – identity derived from the display name (see DeriveOccupantID).
//  OccupantName – display name as supplied by the requester.
//  Team         – occupant's team at booking time.
//  SeatID       – seat the booking is for.
//  StartDate    – first day of the booking (inclusive).
//  EndDate      – last day of the booking (inclusive).
//  CreatedAt    – when the record was appended to the ledger.
type BookingRecord struct {
	OccupantID   string    `json:"occupant_id"`
	OccupantName string    `json:"employee_name"`
	Team         string    `json:"team"`
	SeatID       string    `json:"seat_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeriveOccupantID turns a display name into the stable identity used
// by the ledger index: lower case, interior spaces collapsed to dots.
// "Alice van Dam" -> "alice.van.dam".
func DeriveOccupantID(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, ".")
}

// CoversDate reports whether the booking interval contains the given
// day. Comparison is inclusive on both ends and ignores time of day.
func (r BookingRecord) CoversDate(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(r.StartDate)) && !d.After(truncateDay(r.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
