package activity

import (
	"testing"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

func sizes(zone string) int {
	switch zone {
	case "Open A":
		return 10
	case "Quiet A":
		return 4
	}
	return 0
}

func TestZoneLevelNormalizesBySize(t *testing.T) {
	// nil Redis client: the tracker runs on its in-memory counters.
	tr := NewTracker(nil, sizes)
	tr.Seed("Open A", 5)

	if got := tr.ZoneLevel("Open A"); got != 50 {
		t.Errorf("ZoneLevel = %d, want 50", got)
	}
	tr.Record("Open A", 1)
	if got := tr.ZoneLevel("Open A"); got != 60 {
		t.Errorf("ZoneLevel after record = %d, want 60", got)
	}
}

func TestZoneLevelClampsAndFloors(t *testing.T) {
	tr := NewTracker(nil, sizes)
	tr.Seed("Quiet A", 9) // more than the zone holds
	if got := tr.ZoneLevel("Quiet A"); got != 100 {
		t.Errorf("ZoneLevel = %d, want clamped 100", got)
	}

	tr.Seed("Quiet A", 0)
	tr.Record("Quiet A", -3)
	if got := tr.ZoneLevel("Quiet A"); got != 0 {
		t.Errorf("ZoneLevel = %d, want floored 0", got)
	}
}

func TestUnknownZoneReadsNeutral(t *testing.T) {
	tr := NewTracker(nil, sizes)
	if got := tr.ZoneLevel("nowhere"); got != 50 {
		t.Errorf("ZoneLevel for unsized zone = %d, want neutral 50", got)
	}
}

func TestSeedFromSeatsCountsOccupancy(t *testing.T) {
	tr := NewTracker(nil, sizes)
	SeedFromSeats(tr, []model.Seat{
		{ID: "ENG-S-01", Zone: "Open A", Status: model.StatusOccupied, Occupant: "Maya"},
		{ID: "ENG-S-02", Zone: "Open A", Status: model.StatusAvailable},
		{ID: "ENG-S-03", Zone: "Open A", Status: model.StatusReservedPermanent},
	})
	if got := tr.ZoneLevel("Open A"); got != 20 {
		t.Errorf("ZoneLevel = %d, want 20 (2 of 10 seats occupied)", got)
	}
}
