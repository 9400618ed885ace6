package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/wb-go/wbf/logger"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
	"github.com/LuminaryOps/Production-Rates-sub000/internal/service/ports"
)

// CalendarService owns the in-memory availability store and every
// mutation against it. All operations are serialized through one mutex,
// so a conflict check and the mutation it guards can never interleave
// with another caller's write, even across the provider I/O that each
// mutation awaits.
type CalendarService struct {
	provider ports.CalendarProvider
	fallback ports.CalendarProvider
	notifier ports.BookingNotifier
	logger   logger.Logger

	mu          sync.Mutex
	avail       *domain.Availability
	subscribers []func(domain.Availability)
}

// NewCalendarService wires the store against its persistence provider.
// fallback is the always-available local store written when the primary
// provider fails; pass nil when the primary already is the local store.
func NewCalendarService(
	provider ports.CalendarProvider,
	fallback ports.CalendarProvider,
	notifier ports.BookingNotifier,
	log logger.Logger,
) *CalendarService {
	return &CalendarService{
		provider: provider,
		fallback: fallback,
		notifier: notifier,
		logger:   log,
		avail:    domain.NewAvailability(),
	}
}

// Subscribe registers a callback invoked with a snapshot after every
// change to the store. Callbacks run synchronously and must not call
// back into the service.
func (s *CalendarService) Subscribe(fn func(domain.Availability)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Load fetches the store from the provider, repairs its shape, and
// persists the repaired form when anything changed. Any load failure
// leaves an empty, usable store rather than an error.
func (s *CalendarService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.provider.LoadCalendarData(ctx)
	if err != nil {
		s.logger.Warn("calendar load failed, trying local fallback",
			logger.String("error", err.Error()),
		)
		if s.fallback != nil {
			raw, err = s.fallback.LoadCalendarData(ctx)
		}
		if err != nil {
			s.logger.Error("calendar load failed, starting empty",
				logger.String("error", err.Error()),
			)
			raw = nil
		}
	}
	if raw == nil {
		raw = &domain.RawCalendarPayload{}
	}

	avail, repaired := sweep(raw)
	s.avail = avail

	if repaired {
		s.logger.Warn("calendar data repaired on load",
			logger.Int("dates_with_events", len(avail.Events)),
			logger.Int("blocked_dates", len(avail.BlockedDates)),
		)
		if err := s.saveLocked(ctx); err != nil {
			s.logger.Error("persisting repaired calendar failed",
				logger.String("error", err.Error()),
			)
		}
	}

	s.publishLocked()
	return nil
}

// Save flushes the current in-memory store through the provider.
func (s *CalendarService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// saveLocked writes through the provider, falling back to the local
// store so a save attempt never silently vanishes data. In-memory state
// is already correct either way; only a double failure is an error.
func (s *CalendarService) saveLocked(ctx context.Context) error {
	err := s.provider.SaveCalendarData(ctx, s.avail)
	if err == nil {
		return nil
	}

	s.logger.Error("provider save failed",
		logger.String("error", err.Error()),
	)
	if s.fallback == nil {
		return fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, err)
	}

	if ferr := s.fallback.SaveCalendarData(ctx, s.avail); ferr != nil {
		s.logger.Error("fallback save failed",
			logger.String("error", ferr.Error()),
		)
		return fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, err)
	}

	s.logger.Warn("calendar saved to local fallback only")
	return nil
}

// Snapshot returns a deep copy of the current store for rendering.
func (s *CalendarService) Snapshot() domain.Availability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.avail.Clone()
}

// ApplyExternalUpdate replaces the in-memory store wholesale with data
// pulled in from another session and notifies subscribers.
func (s *CalendarService) ApplyExternalUpdate(avail *domain.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.avail = avail.Clone()
	s.publishLocked()
}

// SyncFromProvider pulls the provider's current data and applies it
// when it differs from the in-memory store. Divergence resolves as
// last-write-wins; local unsaved edits are overwritten.
func (s *CalendarService) SyncFromProvider(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.provider.LoadCalendarData(ctx)
	if err != nil {
		return false, fmt.Errorf("sync load: %w", err)
	}
	if raw == nil {
		return false, nil
	}

	incoming, _ := sweep(raw)
	if sameAvailability(s.avail, incoming) {
		return false, nil
	}

	s.avail = incoming
	s.publishLocked()
	return true, nil
}

// publishLocked hands a snapshot to every subscriber. Must be called
// with the mutex held.
func (s *CalendarService) publishLocked() {
	if len(s.subscribers) == 0 {
		return
	}
	snap := s.avail.Clone()
	for _, fn := range s.subscribers {
		fn(*snap)
	}
}

func sameAvailability(a, b *domain.Availability) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(aj) == string(bj)
}
