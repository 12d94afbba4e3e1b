// Package queue defines the reservation events published to the
// message broker and their publisher. Downstream consumers (occupancy
// analytics, notifications) get enough context to act without querying
// the primary store.
package queue

// SeatReservedEvent is published after a reservation commits.
type SeatReservedEvent struct {
	SeatID       string `json:"seat_id"`
	Zone         string `json:"zone"`
	Team         string `json:"team"`
	OccupantName string `json:"occupant_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	ReservedAt   string `json:"reserved_at"`
}

// SeatReleasedEvent is published after a seat is released back to the
// available pool.
type SeatReleasedEvent struct {
	SeatID     string `json:"seat_id"`
	Zone       string `json:"zone"`
	ReleasedAt string `json:"released_at"`
}
