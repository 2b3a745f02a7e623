package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// BookingService implements reservations. Creation always books on behalf
// of the bound principal's own client profile.
type BookingService struct {
	bookings ports.BookingRepository
	clients  ports.ClientRepository
	tours    ports.TourRepository
	access   *AccessChecker
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, clients ports.ClientRepository, tours ports.TourRepository, access *AccessChecker, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, clients: clients, tours: tours, access: access, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, input ports.BookingInput) (*domain.Booking, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return nil, domain.ErrAccessDenied
	}

	client, err := s.clients.FindByUserID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.tours.FindByID(ctx, input.TourID); err != nil {
		return nil, err
	}

	date := input.BookingDate
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	if _, err := s.bookings.FindExisting(ctx, input.TourID, client.ID, date); err == nil {
		return nil, domain.ErrBookingExists
	}

	booking := &domain.Booking{
		TourID:      input.TourID,
		ClientID:    client.ID,
		BookingDate: date,
	}

	saved, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("booking_id", saved.ID).Int64("tour_id", saved.TourID).Int64("client_id", saved.ClientID).Msg("booking created")
	return saved, nil
}

func (s *BookingService) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error) {
	if !s.access.IsClientOwner(ctx, clientID) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return bookings, nil
}

func (s *BookingService) GetByTourID(ctx context.Context, tourID int64) ([]*domain.Booking, error) {
	if _, err := s.tours.FindByID(ctx, tourID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.FindByTourID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return bookings, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) (*domain.Booking, error) {
	if !s.access.IsBookingOwner(ctx, id) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	existing, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("booking_id", id).Msg("booking deleted")
	return existing, nil
}

// StatisticsByMonth returns booking counts keyed by English month name.
func (s *BookingService) StatisticsByMonth(ctx context.Context) (map[string]int64, error) {
	if n, err := s.bookings.Count(ctx); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrBookingNotFound
	}

	rows, err := s.bookings.CountsByMonth(ctx)
	if err != nil {
		return nil, err
	}
	stats := make(map[string]int64, len(rows))
	for _, row := range rows {
		stats[row.Month] = row.Count
	}
	return stats, nil
}
