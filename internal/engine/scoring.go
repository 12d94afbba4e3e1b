package engine

import (
	"fmt"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/ledger"
	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// Scoring weights. Every term is additive on top of the base and capped
// individually; the final value is clamped to [0,100]. The window
// override is the only term that can push the score below the base.
const (
	scoreBase = 50

	weightHistoryTeam    = 15 // seat's past occupants include the requester's team
	capHistory           = 20 // team bonus + popularity together
	capPopularity        = 5  // +1 per historical booking, capped
	weightTeamArea       = 15 // seat id prefix maps to the requester's team
	weightPreferredZone  = 20 // zone type in the preferred set
	weightCompatibleZone = 10 // zone compatible with the work style
	weightZoneFloor      = 5  // any other zone
	capStyleAffinity     = 15 // (work style, zone type) lookup
	capFeatureOverlap    = 10 // proportional wishlist match
	weightWindow         = 25 // binary override, +/- when a window was requested
	capTimeOfDay         = 10
	capCollaborationFit  = 10
	weightMeetingSoon    = 5 // upcoming meeting within meetingHorizon
	capActivityFit       = 5
	capAmenityFit        = 5

	maxReasons     = 4
	meetingHorizon = 4 * time.Hour
)

// seatPrefixTeams maps the seat id prefix (the part before the first
// dash) to the owning team for the co-location bonus.
var seatPrefixTeams = map[string]string{
	"ENG": "Engineering",
	"DES": "Design",
	"MKT": "Marketing",
	"SAL": "Sales",
	"FIN": "Finance",
	"HR":  "HR",
	"RES": model.BlockedTeam,
}

// styleZonePoints is the work-style affinity table keyed by work style
// then zone type.
var styleZonePoints = map[string]map[string]int{
	model.WorkStyleQuiet: {
		model.ZoneQuiet: 15, model.ZoneFocus: 12, model.ZoneOpen: 5,
		model.ZoneMeeting: 3, model.ZoneCollaborative: 2, model.ZoneSocial: 0,
	},
	model.WorkStyleSocial: {
		model.ZoneSocial: 15, model.ZoneCollaborative: 13, model.ZoneMeeting: 10,
		model.ZoneOpen: 8, model.ZoneFocus: 3, model.ZoneQuiet: 0,
	},
	model.WorkStyleMixed: {
		model.ZoneOpen: 10, model.ZoneFocus: 8, model.ZoneSocial: 8,
		model.ZoneCollaborative: 8, model.ZoneQuiet: 6, model.ZoneMeeting: 5,
	},
}

// compatibleZones lists, per work style, the zone types that still earn
// the smaller compatibility score when not explicitly preferred.
var compatibleZones = map[string][]string{
	model.WorkStyleQuiet:  {model.ZoneQuiet, model.ZoneFocus},
	model.WorkStyleSocial: {model.ZoneSocial, model.ZoneCollaborative, model.ZoneMeeting, model.ZoneOpen},
	model.WorkStyleMixed:  {model.ZoneOpen, model.ZoneFocus, model.ZoneSocial},
}

// idealActivity is the zone activity band (0-100) each work style is
// most comfortable with.
var idealActivity = map[string]int{
	model.WorkStyleQuiet:  20,
	model.WorkStyleMixed:  50,
	model.WorkStyleSocial: 80,
}

// normalizeProfile substitutes safe defaults for missing or unknown
// profile fields so a malformed request degrades a single score, never
// the whole ranking.
func normalizeProfile(p model.PreferenceProfile) model.PreferenceProfile {
	switch p.WorkStyle {
	case model.WorkStyleQuiet, model.WorkStyleSocial, model.WorkStyleMixed:
	default:
		p.WorkStyle = model.WorkStyleMixed
	}
	switch p.Collaboration {
	case model.CollabLow, model.CollabMedium, model.CollabHigh:
	default:
		p.Collaboration = model.CollabMedium
	}
	return p
}

// ScoreSeat computes the bounded match score for one seat against the
// augmented profile, the requester's schedule, the seat's historical
// popularity and the current activity level of its zone. The reference
// instant is an explicit parameter so rankings are reproducible under
// test; callers pass the wall clock in production.
func ScoreSeat(seat model.Seat, p model.PreferenceProfile, schedule []model.ScheduleEvent, pop ledger.Popularity, zoneActivity int, now time.Time) model.Recommendation {
	p = normalizeProfile(p)

	score := scoreBase
	var reasons, matched []string

	// History bonus: team affinity plus general popularity.
	history := 0
	if pop.HasTeam(p.Team) {
		history += weightHistoryTeam
		reasons = append(reasons, "Popular with your team")
		matched = append(matched, "team history")
	}
	if pop.Count > 0 {
		history += min(pop.Count, capPopularity)
	}
	score += min(history, capHistory)

	// Team-zone co-location via the seat id prefix.
	if prefix, ok := splitPrefix(seat.ID); ok && seatPrefixTeams[prefix] == p.Team && p.Team != "" {
		score += weightTeamArea
		reasons = append(reasons, fmt.Sprintf("In your team's area (%s)", p.Team))
		matched = append(matched, "team area")
	}

	// Zone preference, with a compatibility fallback.
	switch {
	case p.PrefersZone(seat.ZoneType):
		score += weightPreferredZone
		reasons = append(reasons, fmt.Sprintf("Matches your preferred %s zone", seat.ZoneType))
		matched = append(matched, "preferred zone")
	case zoneCompatible(p.WorkStyle, seat.ZoneType):
		score += weightCompatibleZone
	default:
		score += weightZoneFloor
	}

	// Work-style affinity lookup.
	if pts := styleZonePoints[p.WorkStyle][seat.ZoneType]; pts > 0 {
		score += min(pts, capStyleAffinity)
		if pts >= 12 {
			reasons = append(reasons, fmt.Sprintf("Suits your %s work style", p.WorkStyle))
		}
	}

	// Feature overlap, proportional to the wishlist fraction matched.
	if len(p.Features) > 0 {
		hits := 0
		for _, f := range p.Features {
			if seat.HasEquipment(f) {
				hits++
				matched = append(matched, f)
			}
		}
		if hits > 0 {
			score += capFeatureOverlap * hits / len(p.Features)
			reasons = append(reasons, fmt.Sprintf("Has %d of your requested features", hits))
		}
	}

	// Explicit window override: the only term that can undercut the base.
	if p.Flag(model.FlagWindowRequested) {
		if seat.WindowAdjacent() {
			score += weightWindow
			reasons = append(reasons, "Window seat as requested")
			matched = append(matched, "window")
		} else {
			score -= weightWindow
		}
	}

	// Time-of-day fit derived from the work style.
	if pts := timeOfDayFit(p.WorkStyle, seat.ZoneType, now); pts > 0 {
		score += pts
		if pts >= capTimeOfDay {
			reasons = append(reasons, "Good fit for this time of day")
		}
	}

	// Collaboration-need fit, inverted for low need.
	score += collaborationFit(p.Collaboration, seat.ZoneType)

	// Meeting proximity: an upcoming meeting favors collaborative space.
	if meetingWithin(schedule, now, meetingHorizon) && collaborativeZone(seat.ZoneType) {
		score += weightMeetingSoon
		reasons = append(reasons, "Near collaboration space for your upcoming meeting")
	}

	// Zone-activity fit against the style's ideal band.
	score += activityFit(p.WorkStyle, zoneActivity)

	// Amenity preference fit (can be negative).
	amenity := 0
	if p.AvoidColdArea && seat.ColdArea {
		amenity -= capAmenityFit
	}
	if p.PreferAisle && seat.AisleAdjacent {
		amenity += capAmenityFit
		reasons = append(reasons, "Aisle seat as preferred")
		matched = append(matched, "aisle")
	}
	if p.NearMeetingRooms && seat.NearMeetingRooms {
		amenity += 2
	}
	score += clamp(amenity, -capAmenityFit, capAmenityFit)

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	if len(reasons) < maxReasons {
		reasons = append(reasons, "Available now")
	}

	return model.Recommendation{
		SeatID:             seat.ID,
		Score:              clamp(score, 0, 100),
		Reasons:            reasons,
		MatchedPreferences: matched,
		Windows:            availabilityWindows(schedule, now),
	}
}

// timeOfDayFit rewards style/zone pairings at their best hours: quiet
// and focus styles score mornings in quiet space, social styles score
// afternoons in collaborative space, mixed styles get a small bonus
// during core office hours.
func timeOfDayFit(style, zoneType string, now time.Time) int {
	hour := now.Hour()
	switch style {
	case model.WorkStyleQuiet:
		if hour < 12 && (zoneType == model.ZoneQuiet || zoneType == model.ZoneFocus) {
			return capTimeOfDay
		}
	case model.WorkStyleSocial:
		if hour >= 12 && (zoneType == model.ZoneSocial || zoneType == model.ZoneCollaborative) {
			return capTimeOfDay
		}
	case model.WorkStyleMixed:
		if hour >= 9 && hour < 17 {
			return capTimeOfDay / 2
		}
	}
	return 0
}

func collaborationFit(need, zoneType string) int {
	collaborative := collaborativeZone(zoneType) || zoneType == model.ZoneSocial
	switch need {
	case model.CollabHigh:
		if collaborative {
			return capCollaborationFit
		}
		return 0
	case model.CollabLow:
		if zoneType == model.ZoneQuiet || zoneType == model.ZoneFocus {
			return capCollaborationFit
		}
		if collaborative {
			return 0
		}
		return capCollaborationFit / 2
	default:
		return capCollaborationFit / 2
	}
}

// activityFit decays with the distance between the zone's current
// activity and the style's ideal band.
func activityFit(style string, activity int) int {
	ideal, ok := idealActivity[style]
	if !ok {
		ideal = idealActivity[model.WorkStyleMixed]
	}
	diff := activity - ideal
	if diff < 0 {
		diff = -diff
	}
	fit := capActivityFit - diff/10
	if fit < 0 {
		return 0
	}
	return fit
}

func meetingWithin(schedule []model.ScheduleEvent, now time.Time, horizon time.Duration) bool {
	for _, ev := range schedule {
		if ev.Type != model.EventMeeting {
			continue
		}
		if !ev.Start.Before(now) && ev.Start.Sub(now) <= horizon {
			return true
		}
	}
	return false
}

func collaborativeZone(zoneType string) bool {
	return zoneType == model.ZoneCollaborative || zoneType == model.ZoneMeeting
}

func zoneCompatible(style, zoneType string) bool {
	for _, z := range compatibleZones[style] {
		if z == zoneType {
			return true
		}
	}
	return false
}

// availabilityWindows returns the free gaps between now and the end of
// the working day (18:00), skipping scheduled events. With no schedule
// the whole remainder of the day is one window.
func availabilityWindows(schedule []model.ScheduleEvent, now time.Time) []model.TimeWindow {
	dayEnd := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	if !dayEnd.After(now) {
		return []model.TimeWindow{{Start: now, End: now.Add(8 * time.Hour)}}
	}
	cursor := now
	var windows []model.TimeWindow
	for _, ev := range sortedByStart(schedule) {
		if !ev.End.After(cursor) || !ev.Start.Before(dayEnd) {
			continue
		}
		if ev.Start.After(cursor) {
			windows = append(windows, model.TimeWindow{Start: cursor, End: ev.Start})
		}
		if ev.End.After(cursor) {
			cursor = ev.End
		}
	}
	if cursor.Before(dayEnd) {
		windows = append(windows, model.TimeWindow{Start: cursor, End: dayEnd})
	}
	return windows
}

func sortedByStart(schedule []model.ScheduleEvent) []model.ScheduleEvent {
	out := append([]model.ScheduleEvent(nil), schedule...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Start.Before(out[j-1].Start); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func splitPrefix(seatID string) (string, bool) {
	for i := 0; i < len(seatID); i++ {
		if seatID[i] == '-' {
			return seatID[:i], i > 0
		}
	}
	return "", false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
