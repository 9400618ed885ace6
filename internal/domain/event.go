package domain

import "github.com/google/uuid"

type EventType string

const (
	EventTypeRegular EventType = "regular"
	EventTypeBooked  EventType = "booked"
	EventTypeBlocked EventType = "blocked"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeRegular, EventTypeBooked, EventTypeBlocked:
		return true
	}
	return false
}

// Default titles applied when an event is created or repaired without one.
const (
	DefaultTitle        = "Untitled Event"
	DefaultBlockedTitle = "Unavailable"
)

// Event is the schedulable unit. Date must always equal the key the
// event is stored under in Availability.Events; the integrity sweeper
// enforces that invariant on load.
type Event struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Type        EventType   `json:"type"`
	FullDay     bool        `json:"fullDay"`
	StartTime   string      `json:"startTime,omitempty"`
	EndTime     string      `json:"endTime,omitempty"`
	Client      *ClientData `json:"clientData,omitempty"`
}

// ClientData is present only on booked events. BookingSetID links every
// event of one engagement, including derived travel days.
type ClientData struct {
	ClientName       string `json:"clientName"`
	ProjectName      string `json:"projectName,omitempty"`
	ProjectLocation  string `json:"projectLocation,omitempty"`
	ProjectStartDate string `json:"projectStartDate,omitempty"`
	ProjectEndDate   string `json:"projectEndDate,omitempty"`
	DepositPaid      bool   `json:"depositPaid"`
	BookingSetID     string `json:"bookingSetId,omitempty"`
	TravelDays       int    `json:"travelDays,omitempty"`
	IsTravel         bool   `json:"isTravel,omitempty"`
}

// NewRegularEvent builds a plain calendar entry. Timed entries keep
// their HH:MM strings as given; validation happens at the service
// boundary so repair paths can construct events freely.
func NewRegularEvent(dateKey, title string, fullDay bool, startTime, endTime string) Event {
	if title == "" {
		title = DefaultTitle
	}
	e := Event{
		ID:      uuid.New().String(),
		Date:    dateKey,
		Title:   title,
		Type:    EventTypeRegular,
		FullDay: fullDay,
	}
	if !fullDay {
		e.StartTime = startTime
		e.EndTime = endTime
	}
	return e
}

// NewBookedEvent builds one full-day booked entry of an engagement.
// The ClientData value is copied so per-day mutation (travel markers)
// cannot leak between days.
func NewBookedEvent(dateKey, title string, client ClientData) Event {
	if title == "" {
		title = client.ClientName
	}
	c := client
	return Event{
		ID:      uuid.New().String(),
		Date:    dateKey,
		Title:   title,
		Type:    EventTypeBooked,
		FullDay: true,
		Client:  &c,
	}
}

// NewBlockedEvent builds the full-day event mirrored by a BlockedDates
// entry for the same key.
func NewBlockedEvent(dateKey, reason string) Event {
	if reason == "" {
		reason = DefaultBlockedTitle
	}
	return Event{
		ID:      uuid.New().String(),
		Date:    dateKey,
		Title:   reason,
		Type:    EventTypeBlocked,
		FullDay: true,
	}
}

// Booked reports whether the event belongs to a client engagement.
func (e Event) Booked() bool {
	return e.Type == EventTypeBooked && e.Client != nil
}

// InBookingSet reports whether the event belongs to the given set.
func (e Event) InBookingSet(setID string) bool {
	return setID != "" && e.Client != nil && e.Client.BookingSetID == setID
}
