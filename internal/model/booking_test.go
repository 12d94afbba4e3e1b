package model

import (
	"testing"
	"time"
)

func TestDeriveOccupantID(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"Alice", "alice"},
		{"Alice Smith", "alice.smith"},
		{"  Alice   van Dam ", "alice.van.dam"},
		{"", ""},
	} {
		if got := DeriveOccupantID(tc.in); got != tc.want {
			t.Errorf("DeriveOccupantID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCoversDateIgnoresTimeOfDay(t *testing.T) {
	rec := BookingRecord{
		StartDate: time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 9, 17, 0, 0, 0, time.UTC),
	}
	if !rec.CoversDate(time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC)) {
		t.Error("start day not covered")
	}
	if !rec.CoversDate(time.Date(2026, time.March, 9, 0, 1, 0, 0, time.UTC)) {
		t.Error("end day not covered")
	}
	if rec.CoversDate(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("day after end covered")
	}
}

func TestSeatEquipmentMatchingFoldsCase(t *testing.T) {
	seat := Seat{Equipment: []string{"Dual Monitor", "standing desk"}}
	if !seat.HasEquipment("monitor") {
		t.Error("substring feature should match")
	}
	if !seat.HasEquipment("STANDING DESK") {
		t.Error("case should fold")
	}
	if seat.HasEquipment("window") {
		t.Error("absent feature matched")
	}
}
