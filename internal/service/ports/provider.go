package ports

import (
	"context"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

// CalendarProvider is one of the interchangeable persistence backends
// (local file store, document database, hosted git repository).
//
// LoadCalendarData returns the stored payload in raw form so shape
// repair stays the caller's job; absence of data yields (nil, nil),
// never an error. SaveCalendarData persists the whole store; a nil
// error is the success flag.
type CalendarProvider interface {
	LoadCalendarData(ctx context.Context) (*domain.RawCalendarPayload, error)
	SaveCalendarData(ctx context.Context, availability *domain.Availability) error
}
