package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// BookDateRangeInput describes one client engagement to book. The
// client name is required; TravelDays asks for that many derived travel
// bookings on each side of the primary range.
type BookDateRangeInput struct {
	StartDate string
	EndDate   string
	Title     string
	Client    domain.ClientData
}

const travelDayTitle = "Travel Day"

// BookDateRange books every day in [StartDate, EndDate] as one booking
// set, then derives travel days around it.
//
// The primary range is all-or-nothing: the whole range is conflict
// checked before any event is materialized, and a single blocked or
// booked day rejects the booking with no mutation. Travel days are the
// deliberate exception: each one is checked individually and a
// conflicting travel day is skipped with a log line instead of
// aborting the engagement.
func (s *CalendarService) BookDateRange(ctx context.Context, input BookDateRangeInput) (domain.BookingSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Client.ClientName == "" {
		return domain.BookingSet{}, fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}

	start, ok := domain.ParseLocalDate(input.StartDate)
	if !ok {
		return domain.BookingSet{}, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, input.StartDate)
	}
	end, ok := domain.ParseLocalDate(input.EndDate)
	if !ok {
		return domain.BookingSet{}, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, input.EndDate)
	}
	if end.Before(start) {
		return domain.BookingSet{}, fmt.Errorf("%w: start date is after end date", domain.ErrValidation)
	}
	if input.Client.TravelDays < 0 {
		return domain.BookingSet{}, fmt.Errorf("%w: travel days must not be negative", domain.ErrValidation)
	}

	for _, key := range domain.DateKeysInRange(start, end) {
		if s.dayUnavailableLocked(key) {
			return domain.BookingSet{}, fmt.Errorf("%w: %s", domain.ErrDateConflict, key)
		}
	}

	setID := xid.New().String()
	client := input.Client
	client.BookingSetID = setID
	client.ProjectStartDate = domain.FormatDateKey(start)
	client.ProjectEndDate = domain.FormatDateKey(end)
	client.IsTravel = false

	for _, key := range domain.DateKeysInRange(start, end) {
		s.avail.AddEvent(domain.NewBookedEvent(key, input.Title, client))
	}

	for i := 1; i <= client.TravelDays; i++ {
		s.addTravelDayLocked(start.AddDate(0, 0, -i), client)
		s.addTravelDayLocked(end.AddDate(0, 0, i), client)
	}

	set, _ := s.avail.BookingSetByID(setID)

	if err := s.saveLocked(ctx); err != nil {
		return domain.BookingSet{}, err
	}
	s.publishLocked()

	s.logger.Info("booking created",
		logger.String("booking_set_id", setID),
		logger.String("client", client.ClientName),
		logger.String("start", client.ProjectStartDate),
		logger.String("end", client.ProjectEndDate),
		logger.Int("events", len(set.Events)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), set)

	return set, nil
}

// addTravelDayLocked books one derived travel day, skipping silently
// (with a log line) when the day is unavailable.
func (s *CalendarService) addTravelDayLocked(day time.Time, client domain.ClientData) {
	key := domain.FormatDateKey(day)
	if s.dayUnavailableLocked(key) {
		s.logger.Warn("travel day conflicts, skipping",
			logger.String("date", key),
			logger.String("booking_set_id", client.BookingSetID),
		)
		return
	}

	client.IsTravel = true
	s.avail.AddEvent(domain.NewBookedEvent(key, travelDayTitle, client))
}

// dayUnavailableLocked reports whether the date is blocked or already
// holds a full-day event.
func (s *CalendarService) dayUnavailableLocked(key string) bool {
	if s.avail.Blocked(key) {
		return true
	}
	for _, ev := range s.avail.Events[key] {
		if ev.FullDay {
			return true
		}
	}
	return false
}

// GetBookingSet reconstructs one engagement from the store.
func (s *CalendarService) GetBookingSet(bookingSetID string) (domain.BookingSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.avail.BookingSetByID(bookingSetID)
	if !ok {
		return domain.BookingSet{}, domain.ErrBookingSetNotFound
	}
	return set, nil
}

// CancelBookingSet removes every event of the engagement, travel days
// included. Dates left without events disappear from the map entirely;
// empty arrays are never persisted.
func (s *CalendarService) CancelBookingSet(ctx context.Context, bookingSetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.avail.BookingSetByID(bookingSetID)
	if !ok {
		return domain.ErrBookingSetNotFound
	}

	for _, ev := range set.Events {
		s.avail.RemoveEvent(ev.ID)
	}

	if err := s.saveLocked(ctx); err != nil {
		return err
	}
	s.publishLocked()

	s.logger.Info("booking cancelled",
		logger.String("booking_set_id", bookingSetID),
		logger.Int("events", len(set.Events)),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), set)

	return nil
}

// SetBookingSetPaid flips the deposit flag on every event of the set.
// ErrBookingSetNotFound distinguishes "nothing to update" from a
// successful update.
func (s *CalendarService) SetBookingSetPaid(ctx context.Context, bookingSetID string, paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, evs := range s.avail.Events {
		for i := range evs {
			if evs[i].InBookingSet(bookingSetID) {
				evs[i].Client.DepositPaid = paid
				updated++
			}
		}
	}
	if updated == 0 {
		return domain.ErrBookingSetNotFound
	}

	if err := s.saveLocked(ctx); err != nil {
		return err
	}
	s.publishLocked()

	s.logger.Info("booking payment updated",
		logger.String("booking_set_id", bookingSetID),
		logger.Any("deposit_paid", paid),
		logger.Int("events", updated),
	)

	return nil
}
