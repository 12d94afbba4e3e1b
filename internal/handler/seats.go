package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/ledger"
)

// SeatHandler serves read-only views of the catalog and the ledger:
// seat listings, occupancy statistics and the history export.
type SeatHandler struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
}

// NewSeatHandler constructs a SeatHandler.
func NewSeatHandler(cat *catalog.Catalog, led *ledger.Ledger) *SeatHandler {
	if cat == nil || led == nil {
		panic("nil dependency passed to NewSeatHandler")
	}
	return &SeatHandler{Catalog: cat, Ledger: led}
}

// List handles GET /v1/seats and returns the catalog snapshot with
// live status. The optional ?available=true query filters to bookable
// seats.
func (h *SeatHandler) List(c echo.Context) error {
	if c.QueryParam("available") == "true" {
		return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Available()})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.All()})
}

// Stats handles GET /v1/stats: aggregate counts and percentages,
// read-only with no side effects.
func (h *SeatHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Stats())
}

// ExportHistory handles GET /v1/history/export. It snapshots the full
// ledger at call time and offers it as a downloadable JSON document
// without mutating anything.
func (h *SeatHandler) ExportHistory(c echo.Context) error {
	records := h.Ledger.Export()
	filename := fmt.Sprintf("booking-history-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(http.StatusOK, records)
}
