package ports

import (
	"context"
	"time"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// TourBookingCount is one row of the bookings-per-tour aggregation.
type TourBookingCount struct {
	TourID int64
	Count  int64
}

// MonthBookingCount is one row of the bookings-per-month aggregation.
// Month is the English month name ("January" … "December").
type MonthBookingCount struct {
	Month string
	Count int64
}

// BookingRepository defines persistence for bookings.
// Not-found lookups return domain.ErrBookingNotFound.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error)
	FindByTourID(ctx context.Context, tourID int64) ([]*domain.Booking, error)
	FindByTourIDs(ctx context.Context, tourIDs []int64) ([]*domain.Booking, error)
	// FindExisting locates a booking with the same tour, client and date,
	// used to reject duplicate reservations.
	FindExisting(ctx context.Context, tourID, clientID int64, date time.Time) (*domain.Booking, error)
	CountsByTour(ctx context.Context) ([]TourBookingCount, error)
	CountsByMonth(ctx context.Context) ([]MonthBookingCount, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
