package engine

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// SeatSource resolves seat ids against the live catalog. The reconciler
// re-checks availability here because a reservation can complete while
// a suggestion request is still in flight; a seat that vanished is a
// normal, silently dropped case.
type SeatSource interface {
	Get(id string) (model.Seat, bool)
}

// suggestionPattern matches "<seat code> (<1-3 digit>% ..." mentions in
// the external response text, e.g. `ENG-S-01 (95% match)`.
var suggestionPattern = regexp.MustCompile(`\b([A-Za-z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)+)\s*\((\d{1,3})%`)

const backfillCeiling = 80

// mention is one extracted (seat id, confidence) pair.
type mention struct {
	seatID     string
	confidence int
}

// extractMentions pulls up to ExternalTopN distinct seat mentions from
// the external text, in order of appearance.
func extractMentions(text string) []mention {
	seen := make(map[string]struct{})
	var out []mention
	for _, m := range suggestionPattern.FindAllStringSubmatch(text, -1) {
		if len(out) == ExternalTopN {
			break
		}
		id := m[1]
		if _, dup := seen[id]; dup {
			continue
		}
		conf, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, mention{seatID: id, confidence: clamp(conf, 0, 100)})
	}
	return out
}

// Reconcile merges the external suggestion text with the internally
// ranked list. Externally named seats come first in mention order:
// seats already ranked take the external confidence as their score,
// seats known and still available are synthesized, anything else is
// dropped. Remaining slots are backfilled from the internal list with a
// capped, discounted score. The result holds at most ExternalTopN
// entries.
func Reconcile(external string, internal []model.Recommendation, seats SeatSource, now time.Time) []model.Recommendation {
	byID := make(map[string]model.Recommendation, len(internal))
	for _, rec := range internal {
		byID[rec.SeatID] = rec
	}

	final := make([]model.Recommendation, 0, ExternalTopN)
	used := make(map[string]struct{})
	dropped := 0
	for _, m := range extractMentions(external) {
		if rec, ok := byID[m.seatID]; ok {
			rec.Score = m.confidence
			reasons := []string{fmt.Sprintf("Suggested match (%d%%)", m.confidence)}
			rec.Reasons = append(reasons, carryOver(rec.Reasons, 2)...)
			final = append(final, rec)
			used[m.seatID] = struct{}{}
			continue
		}
		if seat, ok := seats.Get(m.seatID); ok && seat.Status == model.StatusAvailable && seat.Team != model.BlockedTeam {
			final = append(final, model.Recommendation{
				SeatID:  m.seatID,
				Score:   m.confidence,
				Reasons: []string{"Suggested by your workspace assistant", "Available now"},
				Windows: []model.TimeWindow{fullDayWindow(now)},
			})
			used[m.seatID] = struct{}{}
			continue
		}
		// Unknown or no longer available: drop without surfacing an error.
		dropped++
	}
	if dropped > 0 {
		log.Printf("reconcile: dropped %d external suggestion(s) for unknown or unavailable seats", dropped)
	}

	for _, rec := range internal {
		if len(final) >= ExternalTopN {
			break
		}
		if _, taken := used[rec.SeatID]; taken {
			continue
		}
		rec.Score = clamp(min(rec.Score-10, backfillCeiling), 0, 100)
		rec.Reasons = append([]string{"Alternative option"}, carryOver(rec.Reasons, 2)...)
		final = append(final, rec)
		used[rec.SeatID] = struct{}{}
	}
	return final
}

// carryOver keeps up to n of the original reasons, skipping the
// trailing availability filler so merged lists read naturally.
func carryOver(reasons []string, n int) []string {
	out := make([]string, 0, n)
	for _, r := range reasons {
		if len(out) == n {
			break
		}
		if r == "Available now" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func fullDayWindow(now time.Time) model.TimeWindow {
	end := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	if !end.After(now) {
		end = now.Add(8 * time.Hour)
	}
	return model.TimeWindow{Start: now, End: end}
}
