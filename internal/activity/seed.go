package activity

import "github.com/iliyamo/office-seat-advisor/internal/model"

// SeedFromSeats derives every zone counter from the current seat
// states. Called at startup and after a catalog-wide reset.
func SeedFromSeats(t *Tracker, seats []model.Seat) {
	occupied := make(map[string]int)
	for _, seat := range seats {
		if _, ok := occupied[seat.Zone]; !ok {
			occupied[seat.Zone] = 0
		}
		if seat.Status == model.StatusOccupied || seat.Status == model.StatusReservedPermanent {
			occupied[seat.Zone]++
		}
	}
	for zone, n := range occupied {
		t.Seed(zone, n)
	}
}
