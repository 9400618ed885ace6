package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

// sweep turns a raw persisted payload into a well-formed availability
// store, repairing whatever a previous version or a failed write left
// behind. It is safe to run on already-clean data; repaired is true
// only when something actually changed, which is the caller's cue to
// persist the fixed store immediately.
func sweep(raw *domain.RawCalendarPayload) (*domain.Availability, bool) {
	avail := domain.NewAvailability()
	if raw.Empty() {
		return avail, false
	}

	repaired := false

	if !sweepBlockedDates(raw.BlockedDates, avail) {
		repaired = true
	}

	eventsRaw := raw.Events
	if len(eventsRaw) == 0 && len(raw.BookedDates) > 0 {
		// Legacy bookedDates shape; rewriting under the current name
		// counts as a repair so the next save migrates it.
		eventsRaw = raw.BookedDates
		repaired = true
	}
	if !sweepEvents(eventsRaw, avail) {
		repaired = true
	}

	return avail, repaired
}

func sweepBlockedDates(raw json.RawMessage, avail *domain.Availability) (clean bool) {
	if len(raw) == 0 {
		return true
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Container is not an object at all; start over empty.
		return false
	}

	clean = true
	for key, val := range entries {
		if !domain.ValidDateKey(key) {
			clean = false
			continue
		}
		var reason string
		if err := json.Unmarshal(val, &reason); err != nil {
			reason = domain.DefaultBlockedTitle
			clean = false
		}
		avail.BlockedDates[key] = reason
	}
	return clean
}

func sweepEvents(raw json.RawMessage, avail *domain.Availability) (clean bool) {
	if len(raw) == 0 {
		return true
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return false
	}

	clean = true
	for key, val := range entries {
		if !domain.ValidDateKey(key) {
			clean = false
			continue
		}

		events, ok := decodeEventList(val)
		if !ok {
			clean = false
		}
		if len(events) == 0 {
			if ok {
				// A stored empty array should not exist; dropping it is
				// a repair too.
				clean = false
			}
			continue
		}

		for i := range events {
			if !repairEvent(&events[i], key) {
				clean = false
			}
		}
		avail.Events[key] = events
	}
	return clean
}

// decodeEventList accepts a proper array, or a JSON string containing a
// serialized array (seen after double-encoding bugs). ok is false when
// any recovery was needed, including a reset to nothing.
func decodeEventList(val json.RawMessage) ([]domain.Event, bool) {
	var events []domain.Event
	if err := json.Unmarshal(val, &events); err == nil {
		return events, true
	}

	var encoded string
	if err := json.Unmarshal(val, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &events); err == nil {
			return events, false
		}
	}
	return nil, false
}

func repairEvent(ev *domain.Event, key string) (clean bool) {
	clean = true

	if ev.ID == "" {
		ev.ID = uuid.New().String()
		clean = false
	}
	if ev.Title == "" {
		ev.Title = domain.DefaultTitle
		clean = false
	}
	if !ev.Type.Valid() {
		ev.Type = domain.EventTypeRegular
		clean = false
	}
	if ev.Date != key {
		// The storage key wins; the event field is derived.
		ev.Date = key
		clean = false
	}

	if !ev.FullDay {
		if !domain.ValidClock(ev.StartTime) {
			ev.StartTime = "09:00"
			clean = false
		}
		if !domain.ValidClock(ev.EndTime) {
			ev.EndTime = "10:00"
			clean = false
		}
		start := domain.TimeToMinutes(ev.StartTime)
		end := domain.TimeToMinutes(ev.EndTime)
		if end <= start {
			shifted := start + 60
			if shifted > 23*60+59 {
				shifted = 23*60 + 59
			}
			ev.EndTime = domain.MinutesToTime(shifted)
			clean = false
		}
	}

	return clean
}
