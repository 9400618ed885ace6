package domain

// Availability is the single source of truth for blocked dates and
// scheduled events. Both maps are keyed by YYYY-MM-DD date keys; every
// value under Events is a non-empty slice (empty entries are deleted,
// never persisted).
type Availability struct {
	BlockedDates map[string]string  `json:"blockedDates"`
	Events       map[string][]Event `json:"events"`
}

func NewAvailability() *Availability {
	return &Availability{
		BlockedDates: make(map[string]string),
		Events:       make(map[string][]Event),
	}
}

// Clone returns a deep copy safe to hand to subscribers and renderers.
func (a *Availability) Clone() *Availability {
	out := &Availability{
		BlockedDates: make(map[string]string, len(a.BlockedDates)),
		Events:       make(map[string][]Event, len(a.Events)),
	}
	for k, v := range a.BlockedDates {
		out.BlockedDates[k] = v
	}
	for k, evs := range a.Events {
		cp := make([]Event, len(evs))
		for i, e := range evs {
			if e.Client != nil {
				c := *e.Client
				e.Client = &c
			}
			cp[i] = e
		}
		out.Events[k] = cp
	}
	return out
}

// AddEvent appends ev under its own date key.
func (a *Availability) AddEvent(ev Event) {
	a.Events[ev.Date] = append(a.Events[ev.Date], ev)
}

// RemoveEvent deletes the event with the given id wherever it lives and
// returns it. Date entries left empty are removed from the map.
func (a *Availability) RemoveEvent(eventID string) (Event, bool) {
	for key, evs := range a.Events {
		for i, ev := range evs {
			if ev.ID != eventID {
				continue
			}
			if len(evs) == 1 {
				delete(a.Events, key)
			} else {
				a.Events[key] = append(evs[:i:i], evs[i+1:]...)
			}
			return ev, true
		}
	}
	return Event{}, false
}

// FindEvent locates an event by id across all dates.
func (a *Availability) FindEvent(eventID string) (Event, bool) {
	for _, evs := range a.Events {
		for _, ev := range evs {
			if ev.ID == eventID {
				return ev, true
			}
		}
	}
	return Event{}, false
}

// EventsOn returns a copy of the events stored under the given key.
func (a *Availability) EventsOn(dateKey string) []Event {
	evs := a.Events[dateKey]
	if len(evs) == 0 {
		return nil
	}
	out := make([]Event, len(evs))
	copy(out, evs)
	return out
}

// Blocked reports whether the date key has a blocked-dates entry.
func (a *Availability) Blocked(dateKey string) bool {
	_, ok := a.BlockedDates[dateKey]
	return ok
}
