package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

// SaveEvent creates a new event or updates an existing one by id. The
// event may have moved to another date since it was created, so updates
// locate the old copy by id across all dates and remove it before the
// new copy is stored.
//
// Timed events are rejected, not coerced, when their times are missing,
// unordered, or overlap another event on the target date. Blocked
// full-day events keep the BlockedDates entry for their date in sync.
func (s *CalendarService) SaveEvent(ctx context.Context, ev domain.Event) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.ValidDateKey(ev.Date) {
		today := domain.FormatDateKey(time.Now())
		s.logger.Warn("invalid event date, falling back to today",
			logger.String("date", ev.Date),
			logger.String("fallback", today),
		)
		ev.Date = today
	}

	if ev.Type == "" {
		ev.Type = domain.EventTypeRegular
	}
	if !ev.Type.Valid() {
		return domain.Event{}, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, ev.Type)
	}
	if ev.Title == "" {
		if ev.Type == domain.EventTypeBlocked {
			ev.Title = domain.DefaultBlockedTitle
		} else {
			ev.Title = domain.DefaultTitle
		}
	}

	if !ev.FullDay {
		if !domain.ValidClock(ev.StartTime) || !domain.ValidClock(ev.EndTime) {
			return domain.Event{}, fmt.Errorf("%w: timed events need start and end times", domain.ErrValidation)
		}
		if domain.TimeToMinutes(ev.StartTime) >= domain.TimeToMinutes(ev.EndTime) {
			return domain.Event{}, fmt.Errorf("%w: start time must be before end time", domain.ErrValidation)
		}
		if s.avail.HasTimeConflict(ev.Date, ev.StartTime, ev.EndTime, ev.ID) {
			return domain.Event{}, fmt.Errorf("%w: %s %s-%s", domain.ErrTimeConflict, ev.Date, ev.StartTime, ev.EndTime)
		}
	} else {
		ev.StartTime, ev.EndTime = "", ""
		for _, other := range s.avail.Events[ev.Date] {
			if other.ID != ev.ID && other.FullDay {
				return domain.Event{}, fmt.Errorf("%w: %s", domain.ErrDateConflict, ev.Date)
			}
		}
	}

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	} else if old, found := s.avail.RemoveEvent(ev.ID); found {
		if old.Type == domain.EventTypeBlocked && old.FullDay {
			delete(s.avail.BlockedDates, old.Date)
		}
	}

	if ev.Type == domain.EventTypeBlocked && ev.FullDay {
		s.avail.BlockedDates[ev.Date] = ev.Title
	} else if s.avail.Blocked(ev.Date) {
		// Creating a real entry on a manually blocked date lifts the
		// block; the event now owns that day.
		delete(s.avail.BlockedDates, ev.Date)
		s.logger.Info("date unblocked by new event",
			logger.String("date", ev.Date),
		)
	}

	s.avail.AddEvent(ev)

	if err := s.saveLocked(ctx); err != nil {
		return domain.Event{}, err
	}
	s.publishLocked()

	return ev, nil
}

// DeleteEvent removes an event by id. Deleting a blocked full-day event
// also unblocks its date. Confirmation is the UI's concern; this is the
// pure delete.
func (s *CalendarService) DeleteEvent(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, found := s.avail.RemoveEvent(eventID)
	if !found {
		return domain.ErrEventNotFound
	}

	if removed.Type == domain.EventTypeBlocked && removed.FullDay {
		delete(s.avail.BlockedDates, removed.Date)
	}

	if err := s.saveLocked(ctx); err != nil {
		return err
	}
	s.publishLocked()

	return nil
}

// EventsOn lists the events stored under one date key.
func (s *CalendarService) EventsOn(dateKey string) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avail.EventsOn(dateKey)
}

// BlockDateRange marks every day in [startKey, endKey] unavailable with
// the given reason. Blocked entries live independently of events, so
// days that already hold events are blocked all the same.
func (s *CalendarService) BlockDateRange(ctx context.Context, startKey, endKey, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, ok := domain.ParseLocalDate(startKey)
	if !ok {
		return fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, startKey)
	}
	end, ok := domain.ParseLocalDate(endKey)
	if !ok {
		return fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, endKey)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: start date is after end date", domain.ErrValidation)
	}
	if reason == "" {
		reason = domain.DefaultBlockedTitle
	}

	for _, key := range domain.DateKeysInRange(start, end) {
		s.avail.BlockedDates[key] = reason
	}

	if err := s.saveLocked(ctx); err != nil {
		return err
	}
	s.publishLocked()

	s.logger.Info("dates blocked",
		logger.String("start", startKey),
		logger.String("end", endKey),
		logger.String("reason", reason),
	)

	return nil
}

// BlockDate marks a single day unavailable.
func (s *CalendarService) BlockDate(ctx context.Context, dateKey, reason string) error {
	return s.BlockDateRange(ctx, dateKey, dateKey, reason)
}

// UnblockDate removes the blocked entry for a date along with any
// blocked-type full-day event mirroring it.
func (s *CalendarService) UnblockDate(ctx context.Context, dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.avail.Blocked(dateKey) {
		return domain.ErrEventNotFound
	}
	delete(s.avail.BlockedDates, dateKey)

	for _, ev := range s.avail.EventsOn(dateKey) {
		if ev.Type == domain.EventTypeBlocked && ev.FullDay {
			s.avail.RemoveEvent(ev.ID)
		}
	}

	if err := s.saveLocked(ctx); err != nil {
		return err
	}
	s.publishLocked()

	return nil
}
