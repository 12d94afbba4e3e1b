package catalog

import (
	"testing"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

func sampleSeats() []model.Seat {
	return []model.Seat{
		{ID: "ENG-S-01", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable},
		{ID: "ENG-S-02", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusOccupied, Occupant: "Maya"},
		{ID: "DES-S-01", Team: "Design", Zone: "Quiet A", ZoneType: model.ZoneQuiet, Status: model.StatusAvailable},
		{ID: "RES-S-64", Team: model.BlockedTeam, Zone: "Exec", ZoneType: model.ZoneFocus, Status: model.StatusAvailable},
	}
}

func TestNewNormalizesBlockedTeamSeats(t *testing.T) {
	c := New(sampleSeats())
	seat, ok := c.Get("RES-S-64")
	if !ok {
		t.Fatal("blocked seat missing")
	}
	if seat.Status != model.StatusReservedPermanent {
		t.Errorf("blocked seat status = %s, want %s", seat.Status, model.StatusReservedPermanent)
	}
	if seat.Occupant != "" {
		t.Errorf("blocked seat occupant = %q, want empty", seat.Occupant)
	}
}

func TestAllKeepsLoadOrder(t *testing.T) {
	c := New(sampleSeats())
	all := c.All()
	want := []string{"ENG-S-01", "ENG-S-02", "DES-S-01", "RES-S-64"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestAvailableExcludesBlockedAndOccupied(t *testing.T) {
	c := New(sampleSeats())
	avail := c.Available()
	if len(avail) != 2 {
		t.Fatalf("got %d available seats, want 2", len(avail))
	}
	for _, s := range avail {
		if s.ID == "ENG-S-02" || s.ID == "RES-S-64" {
			t.Errorf("seat %s should not be available", s.ID)
		}
	}
}

func TestGetReturnsACopy(t *testing.T) {
	c := New(sampleSeats())
	seat, _ := c.Get("ENG-S-01")
	seat.Status = model.StatusMaintenance
	seat.Equipment = append(seat.Equipment, "tampered")

	again, _ := c.Get("ENG-S-01")
	if again.Status != model.StatusAvailable || len(again.Equipment) != 0 {
		t.Error("mutating a returned seat leaked into the catalog")
	}
}

func TestStatsCountsAndPercentages(t *testing.T) {
	c := New(sampleSeats())
	st := c.Stats()
	if st.Total != 4 || st.Available != 2 || st.Occupied != 1 || st.Blocked != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.AvailablePercent != 50 || st.OccupiedPercent != 25 || st.BlockedPercent != 25 {
		t.Errorf("percentages = %+v", st)
	}
}

func TestSetStateUnknownSeat(t *testing.T) {
	c := New(sampleSeats())
	if err := c.SetState("NOPE-1", model.StatusOccupied, "X"); err == nil {
		t.Error("expected error for unknown seat id")
	}
}

func TestZoneSize(t *testing.T) {
	c := New(sampleSeats())
	if n := c.ZoneSize("Open A"); n != 2 {
		t.Errorf("ZoneSize(Open A) = %d, want 2", n)
	}
	if n := c.ZoneSize("nowhere"); n != 0 {
		t.Errorf("ZoneSize(nowhere) = %d, want 0", n)
	}
}
