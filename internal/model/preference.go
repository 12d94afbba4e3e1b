package model

import "strings"

// Work style values for a preference profile.
const (
	WorkStyleQuiet  = "quiet"
	WorkStyleSocial = "social"
	WorkStyleMixed  = "mixed"
)

// Collaboration need values for a preference profile.
const (
	CollabLow    = "low"
	CollabMedium = "medium"
	CollabHigh   = "high"
)

// Ad-hoc flag keys injected by the preference extractor.
const (
	FlagWindowRequested = "window_requested"
)

// PreferenceProfile is the structured description of a requester's
// workspace preferences. A base profile comes from the requester's
// settings; the extractor copies it and layers inferred signals from
// the free-text request on top.
//
// Fields:
//  Team             – team affiliation used for co-location bonuses.
//  WorkStyle        – one of the WorkStyle* constants.
//  Collaboration    – one of the Collab* constants.
//  PreferredZones   – zone types the requester explicitly likes.
//  Features         – equipment wishlist (free-form strings).
//  AvoidColdArea    – requester dislikes seats under the AC.
//  PreferAisle      – requester wants an aisle-adjacent seat.
//  NearMeetingRooms – requester wants short reach to meeting rooms.
//  Flags            – ad-hoc boolean signals set by the extractor.
type PreferenceProfile struct {
	Team             string          `json:"team"`
	WorkStyle        string          `json:"work_style"`
	Collaboration    string          `json:"collaboration"`
	PreferredZones   []string        `json:"preferred_zones,omitempty"`
	Features         []string        `json:"features,omitempty"`
	AvoidColdArea    bool            `json:"avoid_cold_area,omitempty"`
	PreferAisle      bool            `json:"prefer_aisle,omitempty"`
	NearMeetingRooms bool            `json:"near_meeting_rooms,omitempty"`
	Flags            map[string]bool `json:"flags,omitempty"`
}

// Clone returns a deep copy of the profile. The extractor works on a
// clone so the caller's base profile is never mutated.
func (p PreferenceProfile) Clone() PreferenceProfile {
	out := p
	out.PreferredZones = append([]string(nil), p.PreferredZones...)
	out.Features = append([]string(nil), p.Features...)
	if p.Flags != nil {
		out.Flags = make(map[string]bool, len(p.Flags))
		for k, v := range p.Flags {
			out.Flags[k] = v
		}
	}
	return out
}

// Flag reports whether the named ad-hoc flag is set.
func (p PreferenceProfile) Flag(name string) bool {
	return p.Flags != nil && p.Flags[name]
}

// PrefersZone reports whether the zone type is in the preferred set.
func (p PreferenceProfile) PrefersZone(zoneType string) bool {
	for _, z := range p.PreferredZones {
		if strings.EqualFold(z, zoneType) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
