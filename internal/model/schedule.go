package model

import "time"

// Schedule event types.
const (
	EventMeeting       = "meeting"
	EventFocusWork     = "focus-work"
	EventCollaboration = "collaboration"
	EventBreak         = "break"
)

// ScheduleEvent is a single entry in the requester's day plan. The
// scoring engine uses meeting events to weigh collaboration-friendly
// seats and all events to compute free seat-time windows.
type ScheduleEvent struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"`
}

// TimeWindow is a half-open interval during which a recommended seat is
// free for the requester.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
