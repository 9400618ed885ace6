package ports

import (
	"context"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, set domain.BookingSet)
	NotifyBookingCancelled(ctx context.Context, set domain.BookingSet)
}
