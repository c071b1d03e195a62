package ports

import (
	"context"

	"github.com/unifyevents/cartgate/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingPlaced(ctx context.Context, booking *domain.Booking)
}
