package domain

import "sort"

// BookingSet groups every event of one client engagement: the primary
// date range plus any derived travel days. It is not stored; it is
// reconstructed from the store by set id.
type BookingSet struct {
	ID     string  `json:"id"`
	Events []Event `json:"events"`
}

// BookingSetByID collects all events carrying the given set id, ordered
// by date. ok is false when no event matches.
func (a *Availability) BookingSetByID(setID string) (BookingSet, bool) {
	set := BookingSet{ID: setID}
	for _, evs := range a.Events {
		for _, ev := range evs {
			if ev.InBookingSet(setID) {
				set.Events = append(set.Events, ev)
			}
		}
	}
	if len(set.Events) == 0 {
		return BookingSet{}, false
	}
	sort.Slice(set.Events, func(i, j int) bool {
		return set.Events[i].Date < set.Events[j].Date
	})
	return set, true
}

// Client returns the engagement's client data, taken from the first
// primary (non-travel) event, falling back to the first event.
func (s BookingSet) Client() *ClientData {
	for _, ev := range s.Events {
		if ev.Client != nil && !ev.Client.IsTravel {
			return ev.Client
		}
	}
	if len(s.Events) > 0 {
		return s.Events[0].Client
	}
	return nil
}

// StartDate and EndDate bound the whole set, travel days included.
func (s BookingSet) StartDate() string {
	if len(s.Events) == 0 {
		return ""
	}
	return s.Events[0].Date
}

func (s BookingSet) EndDate() string {
	if len(s.Events) == 0 {
		return ""
	}
	return s.Events[len(s.Events)-1].Date
}
