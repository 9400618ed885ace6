package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingSetNotFound = errors.New("booking set not found")
)

// Conflicts are surfaced distinctly from validation so callers can show
// "unavailable" rather than "invalid input".
var (
	ErrDateConflict = errors.New("date range is unavailable")
	ErrTimeConflict = errors.New("time slot is unavailable")
)

var (
	ErrValidation          = errors.New("validation error")
	ErrProviderUnavailable = errors.New("persistence provider unavailable")
)
