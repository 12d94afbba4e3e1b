package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/office-seat-advisor/internal/activity"
	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/queue"
	"github.com/iliyamo/office-seat-advisor/internal/reservation"
)

const dateLayout = "2006-01-02"

// ReservationHandler exposes the reservation state machine over HTTP.
// Per the public contract the reserve/release responses always carry a
// boolean plus a plain-language reason; failures are never raw errors.
type ReservationHandler struct {
	Manager  *reservation.Manager
	Catalog  *catalog.Catalog
	Activity *activity.Tracker
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(m *reservation.Manager, cat *catalog.Catalog, tracker *activity.Tracker) *ReservationHandler {
	if m == nil || cat == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Manager: m, Catalog: cat, Activity: tracker}
}

// Reserve handles POST /v1/seats/:id/reserve. Occupant name and team
// default to the authenticated employee; dates default to a seven-day
// interval starting today.
func (h *ReservationHandler) Reserve(c echo.Context) error {
	name, team, err := employeeIdentity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	seatID := c.Param("id")
	var body struct {
		OccupantName string `json:"occupant_name"`
		OccupantTeam string `json:"occupant_team"`
		StartDate    string `json:"start_date"`
		EndDate      string `json:"end_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.OccupantName == "" {
		body.OccupantName = name
	}
	if body.OccupantTeam == "" {
		body.OccupantTeam = team
	}
	start, end, err := parseInterval(body.StartDate, body.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dates must be YYYY-MM-DD"})
	}

	ctx := c.Request().Context()
	rec, err := h.Manager.Reserve(ctx, seatID, body.OccupantName, body.OccupantTeam, start, end)
	if err != nil {
		status := http.StatusInternalServerError
		reason := "reservation failed"
		switch {
		case errors.Is(err, reservation.ErrNotFound):
			status, reason = http.StatusNotFound, "that seat does not exist"
		case errors.Is(err, reservation.ErrConflict):
			status, reason = http.StatusConflict, "that seat is not available"
		}
		return c.JSON(status, echo.Map{"reserved": false, "reason": reason})
	}

	if seat, ok := h.Catalog.Get(seatID); ok {
		if h.Activity != nil {
			h.Activity.Record(seat.Zone, 1)
		}
		// Broker failures are logged inside the publisher and ignored here.
		_ = queue.PublishSeatReserved(ctx, queue.SeatReservedEvent{
			SeatID:       seat.ID,
			Zone:         seat.Zone,
			Team:         rec.Team,
			OccupantName: rec.OccupantName,
			StartDate:    rec.StartDate.Format(dateLayout),
			EndDate:      rec.EndDate.Format(dateLayout),
			ReservedAt:   rec.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reserved":   true,
		"seat_id":    seatID,
		"start_date": rec.StartDate.Format(dateLayout),
		"end_date":   rec.EndDate.Format(dateLayout),
	})
}

// Release handles POST /v1/seats/:id/release.
func (h *ReservationHandler) Release(c echo.Context) error {
	if _, _, err := employeeIdentity(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	seatID := c.Param("id")
	ctx := c.Request().Context()
	if err := h.Manager.Release(ctx, seatID); err != nil {
		status := http.StatusInternalServerError
		reason := "release failed"
		switch {
		case errors.Is(err, reservation.ErrNotFound):
			status, reason = http.StatusNotFound, "that seat does not exist"
		case errors.Is(err, reservation.ErrForbidden):
			status, reason = http.StatusForbidden, "that seat is permanently reserved"
		}
		return c.JSON(status, echo.Map{"released": false, "reason": reason})
	}

	if seat, ok := h.Catalog.Get(seatID); ok {
		if h.Activity != nil {
			h.Activity.Record(seat.Zone, -1)
		}
		_ = queue.PublishSeatReleased(ctx, queue.SeatReleasedEvent{
			SeatID:     seat.ID,
			Zone:       seat.Zone,
			ReleasedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"released": true, "seat_id": seatID})
}

// Reset handles POST /v1/seats/reset: every seat back to its initial
// state. The operation is idempotent and reseeds the activity tracker.
func (h *ReservationHandler) Reset(c echo.Context) error {
	if _, _, err := employeeIdentity(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Manager.ResetToInitialState(c.Request().Context())
	if h.Activity != nil {
		activity.SeedFromSeats(h.Activity, h.Catalog.All())
	}
	return c.JSON(http.StatusOK, echo.Map{"reset": true, "stats": h.Catalog.Stats()})
}

func parseInterval(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if startStr != "" {
		if start, err = time.Parse(dateLayout, startStr); err != nil {
			return start, end, err
		}
	}
	if endStr != "" {
		if end, err = time.Parse(dateLayout, endStr); err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}
