package engine

import (
	"reflect"
	"testing"

	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/ledger"
	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// steadyActivity returns the same level for every zone.
type steadyActivity int

func (s steadyActivity) ZoneLevel(string) int { return int(s) }

func testSeats() []model.Seat {
	return []model.Seat{
		{ID: "ENG-S-01", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable, Equipment: []string{"window"}},
		{ID: "ENG-S-02", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable},
		{ID: "ENG-S-03", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable},
		{ID: "DES-S-01", Team: "Design", Zone: "Quiet A", ZoneType: model.ZoneQuiet, Status: model.StatusOccupied, Occupant: "Maya"},
		{ID: "RES-S-64", Team: model.BlockedTeam, Zone: "Exec", ZoneType: model.ZoneFocus, Status: model.StatusReservedPermanent},
	}
}

func newTestEngine(seats []model.Seat) *Engine {
	return &Engine{
		Catalog:  catalog.New(seats),
		Ledger:   ledger.New(),
		Activity: steadyActivity(50),
	}
}

func TestRecommendFiltersUnbookableSeats(t *testing.T) {
	eng := newTestEngine(testSeats())
	profile := model.PreferenceProfile{Team: "Engineering"}

	recs := eng.Recommend(profile, nil, fixedNow)
	for _, rec := range recs {
		if rec.SeatID == "DES-S-01" || rec.SeatID == "RES-S-64" {
			t.Errorf("unbookable seat %s in recommendations", rec.SeatID)
		}
	}
	if len(recs) != 3 {
		t.Errorf("got %d recommendations, want 3 bookable seats", len(recs))
	}
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	eng := newTestEngine(testSeats())
	profile := model.PreferenceProfile{Team: "Engineering"}

	recs := eng.Recommend(profile, nil, fixedNow)
	// ENG-S-02 and ENG-S-03 are identical and must stay in load order.
	pos := map[string]int{}
	for i, rec := range recs {
		pos[rec.SeatID] = i
	}
	if pos["ENG-S-02"] > pos["ENG-S-03"] {
		t.Errorf("tied seats reordered: %v", recs)
	}
}

func TestRecommendIsDeterministicAtFixedInstant(t *testing.T) {
	eng := newTestEngine(testSeats())
	profile := model.PreferenceProfile{Team: "Engineering", Features: []string{"window"}}

	first := eng.Recommend(profile, nil, fixedNow)
	second := eng.Recommend(profile, nil, fixedNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two calls at the same instant diverged:\n%v\n%v", first, second)
	}
}

func TestRecommendCapsAtInternalTopN(t *testing.T) {
	seats := []model.Seat{}
	for _, id := range []string{"ENG-S-01", "ENG-S-02", "ENG-S-03", "ENG-S-04", "ENG-S-05", "ENG-S-06", "ENG-S-07"} {
		seats = append(seats, model.Seat{ID: id, Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable})
	}
	eng := newTestEngine(seats)

	recs := eng.Recommend(model.PreferenceProfile{Team: "Engineering"}, nil, fixedNow)
	if len(recs) != internalTopN {
		t.Errorf("got %d recommendations, want %d", len(recs), internalTopN)
	}
}

func TestRecommendEmptyCatalogIsNotAnError(t *testing.T) {
	eng := newTestEngine(nil)
	recs := eng.Recommend(model.PreferenceProfile{Team: "Engineering"}, nil, fixedNow)
	if len(recs) != 0 {
		t.Errorf("got %d recommendations from an empty catalog", len(recs))
	}
}
