// Package reservation commits and releases seat bookings against the
// live catalog, mirrors them to the persistence boundary and appends to
// the booking history ledger. These sentinel values let handlers map
// failures to HTTP responses; the boolean contract wrappers translate
// every one of them into false plus a logged cause.
package reservation

import "errors"

// ErrNotFound is returned when the seat id matches no catalog entry.
var ErrNotFound = errors.New("seat not found")

// ErrConflict is returned when reserve targets a seat that is not
// available, covering both already-occupied and permanently blocked
// seats.
var ErrConflict = errors.New("seat not available")

// ErrForbidden is returned when release targets a seat owned by the
// permanently blocked team.
var ErrForbidden = errors.New("seat is permanently reserved")
