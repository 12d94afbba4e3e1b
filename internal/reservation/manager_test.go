package reservation

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/ledger"
	"github.com/iliyamo/office-seat-advisor/internal/model"
)

var testNow = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

func newTestManager() *Manager {
	cat := catalog.New([]model.Seat{
		{ID: "ENG-S-01", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable},
		{ID: "ENG-S-02", Team: "Engineering", Zone: "Open A", ZoneType: model.ZoneOpen, Status: model.StatusAvailable},
		{ID: "RES-S-64", Team: model.BlockedTeam, Zone: "Exec", ZoneType: model.ZoneFocus, Status: model.StatusReservedPermanent},
	})
	m := NewManager(cat, ledger.New(), nil)
	m.Now = func() time.Time { return testNow }
	return m
}

func TestReserveHappyPathThenConflict(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if !m.ReserveSeat(ctx, "ENG-S-01", "Alice", "Engineering", time.Time{}, time.Time{}) {
		t.Fatal("reserve on an available seat returned false")
	}
	seat, _ := m.Catalog.Get("ENG-S-01")
	if seat.Status != model.StatusOccupied || seat.Occupant != "Alice" {
		t.Errorf("seat after reserve = %s/%q, want OCCUPIED/Alice", seat.Status, seat.Occupant)
	}
	recs := m.Ledger.BySeat("ENG-S-01")
	if len(recs) != 1 || recs[0].OccupantName != "Alice" {
		t.Fatalf("ledger after reserve = %v", recs)
	}
	if recs[0].StartDate != testNow || recs[0].EndDate != testNow.AddDate(0, 0, DefaultBookingDays) {
		t.Errorf("default interval = [%s, %s]", recs[0].StartDate, recs[0].EndDate)
	}

	// An immediate second attempt must fail with a conflict.
	if m.ReserveSeat(ctx, "ENG-S-01", "Bob", "Design", time.Time{}, time.Time{}) {
		t.Error("second reserve on the same seat returned true")
	}
	if _, err := m.Reserve(ctx, "ENG-S-01", "Bob", "Design", time.Time{}, time.Time{}); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestReserveUnknownSeat(t *testing.T) {
	m := newTestManager()
	if _, err := m.Reserve(context.Background(), "ENG-S-99", "Alice", "Engineering", time.Time{}, time.Time{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReserveBlockedSeatIsConflict(t *testing.T) {
	m := newTestManager()
	if _, err := m.Reserve(context.Background(), "RES-S-64", "Alice", "Engineering", time.Time{}, time.Time{}); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestReleaseClearsSeatAndLedger(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()
	m.ReserveSeat(ctx, "ENG-S-01", "Alice", "Engineering", time.Time{}, time.Time{})

	if !m.ReleaseSeat(ctx, "ENG-S-01") {
		t.Fatal("release returned false")
	}
	seat, _ := m.Catalog.Get("ENG-S-01")
	if seat.Status != model.StatusAvailable || seat.Occupant != "" {
		t.Errorf("seat after release = %s/%q", seat.Status, seat.Occupant)
	}
	if got := m.Ledger.BySeat("ENG-S-01"); len(got) != 0 {
		t.Errorf("ledger still holds %v", got)
	}
}

func TestReleaseBlockedSeatIsForbidden(t *testing.T) {
	m := newTestManager()
	before, _ := m.Catalog.Get("RES-S-64")

	if m.ReleaseSeat(context.Background(), "RES-S-64") {
		t.Error("release on a blocked seat returned true")
	}
	if err := m.Release(context.Background(), "RES-S-64"); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	after, _ := m.Catalog.Get("RES-S-64")
	if after.Status != before.Status || after.Occupant != before.Occupant {
		t.Errorf("blocked seat changed: %+v -> %+v", before, after)
	}
}

func TestReleaseUnknownSeat(t *testing.T) {
	m := newTestManager()
	if err := m.Release(context.Background(), "ENG-S-99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResetToInitialStateIsIdempotent(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()
	m.ReserveSeat(ctx, "ENG-S-01", "Alice", "Engineering", time.Time{}, time.Time{})
	m.ReserveSeat(ctx, "ENG-S-02", "Bob", "Design", time.Time{}, time.Time{})

	m.ResetToInitialState(ctx)
	first := m.Catalog.All()
	m.ResetToInitialState(ctx)
	second := m.Catalog.All()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reset not idempotent:\n%v\n%v", first, second)
	}
	for _, seat := range first {
		want := model.StatusAvailable
		if seat.Team == model.BlockedTeam {
			want = model.StatusReservedPermanent
		}
		if seat.Status != want || seat.Occupant != "" {
			t.Errorf("seat %s after reset = %s/%q, want %s with no occupant", seat.ID, seat.Status, seat.Occupant, want)
		}
	}
}

func TestSingleOccupancyInvariant(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()
	m.ReserveSeat(ctx, "ENG-S-01", "Alice", "Engineering", time.Time{}, time.Time{})
	m.ReserveSeat(ctx, "ENG-S-01", "Bob", "Design", time.Time{}, time.Time{})
	m.ReleaseSeat(ctx, "ENG-S-02")

	for _, seat := range m.Catalog.All() {
		occupied := seat.Status == model.StatusOccupied
		if occupied != (seat.Occupant != "") {
			t.Errorf("seat %s: status %s with occupant %q violates the invariant", seat.ID, seat.Status, seat.Occupant)
		}
	}
}
