package booking

import (
	"context"
	"time"
)

type Repository interface {
	GetOverlapping(ctx context.Context, from, to time.Time) ([]DateRange, error)
	CreateBooking(ctx context.Context, b *Booking) error
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
}
