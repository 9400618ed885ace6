package domain

import "encoding/json"

// RawCalendarPayload is the wire shape of persisted calendar data
// before any shape repair. Fields stay raw so a payload written by an
// older version, or mangled by a failed write, can still be loaded and
// handed to the integrity sweeper instead of erroring out wholesale.
//
// BookedDates is the legacy name for Events; when Events is absent the
// sweeper falls back to it.
type RawCalendarPayload struct {
	BlockedDates json.RawMessage `json:"blockedDates,omitempty"`
	Events       json.RawMessage `json:"events,omitempty"`
	BookedDates  json.RawMessage `json:"bookedDates,omitempty"`
}

// Empty reports whether the payload carries no data at all.
func (p *RawCalendarPayload) Empty() bool {
	return p == nil || (len(p.BlockedDates) == 0 && len(p.Events) == 0 && len(p.BookedDates) == 0)
}
