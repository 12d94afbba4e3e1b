package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/engine"
	"github.com/iliyamo/office-seat-advisor/internal/model"
	"github.com/iliyamo/office-seat-advisor/internal/suggest"
)

// RecommendHandler runs the full recommendation path: preference
// extraction, internal ranking, the external suggestion round trip and
// the reconciliation of both lists.
type RecommendHandler struct {
	Engine  *engine.Engine
	Suggest *suggest.Client
	Catalog *catalog.Catalog

	// Now supplies the scoring instant; tests pin it.
	Now func() time.Time
}

// NewRecommendHandler constructs a RecommendHandler.
func NewRecommendHandler(eng *engine.Engine, client *suggest.Client, cat *catalog.Catalog) *RecommendHandler {
	if eng == nil || client == nil || cat == nil {
		panic("nil dependency passed to NewRecommendHandler")
	}
	return &RecommendHandler{Engine: eng, Suggest: client, Catalog: cat, Now: time.Now}
}

// Recommendations handles POST /v1/recommendations. The body carries
// the free-text request, an optional base profile and the requester's
// schedule. An empty result is a normal outcome and returns an empty
// items array, never an error.
//
// The suggestion round trip is the only suspension point in the flow: a
// seat can be reserved while the provider call is in flight, so the
// reconciler re-validates availability and silently drops stale
// mentions.
func (h *RecommendHandler) Recommendations(c echo.Context) error {
	name, team, err := employeeIdentity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Request  string                  `json:"request"`
		Profile  model.PreferenceProfile `json:"profile"`
		Schedule []model.ScheduleEvent   `json:"schedule"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Profile.Team == "" {
		body.Profile.Team = team
	}

	now := h.Now()
	profile := engine.ExtractPreferences(body.Request, body.Profile)
	internal := h.Engine.Recommend(profile, body.Schedule, now)

	text := h.Suggest.Suggest(c.Request().Context(), body.Request, h.Catalog.Available(), profile, body.Schedule, internal)
	final := engine.Reconcile(text, internal, h.Catalog, now)

	return c.JSON(http.StatusOK, echo.Map{
		"requested_by": name,
		"items":        final,
	})
}
