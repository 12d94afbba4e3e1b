package model

// Recommendation is one ranked seat suggestion. Recommendations are
// ephemeral: they are recomputed per request and never persisted.
//
// Fields:
//  SeatID             – catalog identifier of the suggested seat.
//  Score              – bounded match value in [0,100].
//  Reasons            – human-readable explanations, strongest first.
//  MatchedPreferences – which profile preferences the seat satisfied.
//  Windows            – time windows during which the seat is usable today.
type Recommendation struct {
	SeatID             string       `json:"seat_id"`
	Score              int          `json:"score"`
	Reasons            []string     `json:"reasons"`
	MatchedPreferences []string     `json:"matched_preferences,omitempty"`
	Windows            []TimeWindow `json:"windows,omitempty"`
}
