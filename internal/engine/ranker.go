package engine

import (
	"sort"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/ledger"
	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// Internal and external list sizes. The ranker keeps five candidates so
// the reconciler has backfill material; callers expose at most three.
const (
	internalTopN = 5
	ExternalTopN = 3
)

// ActivitySource reports the live activity level (0-100) of a zone.
// The Redis-backed tracker implements it in production; tests plug in a
// fixed stub.
type ActivitySource interface {
	ZoneLevel(zone string) int
}

// Engine wires the scoring model to the live catalog, the booking
// ledger and the zone activity source.
type Engine struct {
	Catalog  *catalog.Catalog
	Ledger   *ledger.Ledger
	Activity ActivitySource
}

// Recommend ranks every bookable seat for the profile and schedule and
// returns the top candidates. Seats that are not AVAILABLE or belong to
// the blocked team are filtered before scoring. The sort is stable and
// descending by score, so ties keep catalog order and two calls with
// the same inputs and instant produce identical output. An empty result
// is a normal outcome, not an error.
func (e *Engine) Recommend(p model.PreferenceProfile, schedule []model.ScheduleEvent, now time.Time) []model.Recommendation {
	pop := e.Ledger.Popularity()
	var recs []model.Recommendation
	for _, seat := range e.Catalog.All() {
		if seat.Status != model.StatusAvailable || seat.Team == model.BlockedTeam {
			continue
		}
		activity := 50
		if e.Activity != nil {
			activity = e.Activity.ZoneLevel(seat.Zone)
		}
		recs = append(recs, ScoreSeat(seat, p, schedule, pop[seat.ID], activity, now))
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > internalTopN {
		recs = recs[:internalTopN]
	}
	return recs
}
