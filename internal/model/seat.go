package model

// Seat status values. A seat is either free for booking, taken by an
// occupant, permanently held back for the blocked team, or under
// maintenance. RESERVED_PERMANENT is an absorbing state: seats owned by
// the blocked team never leave it at runtime.
const (
	StatusAvailable         = "AVAILABLE"
	StatusOccupied          = "OCCUPIED"
	StatusReservedPermanent = "RESERVED_PERMANENT"
	StatusMaintenance       = "MAINTENANCE"
)

// BlockedTeam is the sentinel team whose seats are excluded from the
// normal reserve/release flow. Seats owned by this team are never
// assignable to a real occupant.
const BlockedTeam = "Reserved"

// Zone type labels shared by seats and preference profiles.
const (
	ZoneQuiet         = "quiet"
	ZoneFocus         = "focus"
	ZoneOpen          = "open"
	ZoneSocial        = "social"
	ZoneCollaborative = "collaborative"
	ZoneMeeting       = "meeting"
)

// Seat describes a single bookable workspace unit in the office
// catalog. Seats are identified by a human-readable code such as
// ENG-S-01 whose prefix maps to the owning team.
//
// Fields:
//  ID               – catalog identifier (e.g. ENG-S-01).
//  Team             – owning team name; BlockedTeam marks protected seats.
//  Zone             – label of the zone the seat sits in (e.g. "Quiet Zone A").
//  ZoneType         – functional character of the zone (quiet, social, ...).
//  X, Y             – floor-plan coordinate, metres from the plan origin.
//  Equipment        – installed features (standing desk, dual monitor, window, ...).
//  Status           – one of the Status* constants above.
//  Occupant         – display name of the current occupant; empty when free.
//  NearWindow       – seat is window-adjacent.
//  ColdArea         – seat sits under the AC outlets.
//  AisleAdjacent    – seat borders a walkway.
//  NearMeetingRooms – seat is within short reach of the meeting rooms.
type Seat struct {
	ID               string   `json:"id"`
	Team             string   `json:"team"`
	Zone             string   `json:"zone"`
	ZoneType         string   `json:"zone_type"`
	X                float64  `json:"x"`
	Y                float64  `json:"y"`
	Equipment        []string `json:"equipment,omitempty"`
	Status           string   `json:"status"`
	Occupant         string   `json:"occupant,omitempty"`
	NearWindow       bool     `json:"near_window,omitempty"`
	ColdArea         bool     `json:"cold_area,omitempty"`
	AisleAdjacent    bool     `json:"aisle_adjacent,omitempty"`
	NearMeetingRooms bool     `json:"near_meeting_rooms,omitempty"`
}

// HasEquipment reports whether the seat carries the named feature.
// Matching is case-insensitive substring containment so that a wishlist
// entry like "monitor" matches "dual monitor".
func (s Seat) HasEquipment(feature string) bool {
	for _, eq := range s.Equipment {
		if containsFold(eq, feature) || containsFold(feature, eq) {
			return true
		}
	}
	return false
}

// WindowAdjacent reports whether the seat satisfies a window request,
// either through the explicit flag or a window feature in its equipment.
func (s Seat) WindowAdjacent() bool {
	return s.NearWindow || s.HasEquipment("window")
}
