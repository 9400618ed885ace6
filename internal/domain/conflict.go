package domain

import "time"

// HasDateRangeConflict walks every day in [start, end] inclusive and
// reports whether the day is blocked or already holds a full-day event
// other than excludeEventID. Timed events do not block at range level;
// they are only considered by HasTimeConflict.
func (a *Availability) HasDateRangeConflict(start, end time.Time, excludeEventID string) bool {
	for _, key := range DateKeysInRange(start, end) {
		if a.Blocked(key) {
			return true
		}
		for _, ev := range a.Events[key] {
			if ev.ID == excludeEventID {
				continue
			}
			if ev.FullDay {
				return true
			}
		}
	}
	return false
}

// HasTimeConflict reports whether a timed [startTime, endTime) window
// on the given date overlaps any other event. A full-day event on the
// date always conflicts. Timed events compare as half-open intervals,
// so back-to-back events (one ending exactly when the next starts) do
// not conflict.
func (a *Availability) HasTimeConflict(dateKey, startTime, endTime, excludeEventID string) bool {
	start := TimeToMinutes(startTime)
	end := TimeToMinutes(endTime)

	for _, ev := range a.Events[dateKey] {
		if ev.ID == excludeEventID {
			continue
		}
		if ev.FullDay {
			return true
		}
		evStart := TimeToMinutes(ev.StartTime)
		evEnd := TimeToMinutes(ev.EndTime)
		if start < evEnd && end > evStart {
			return true
		}
	}
	return false
}
