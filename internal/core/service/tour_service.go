package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// TourService implements tour management. Update and Delete are guarded by
// the owner-or-admin predicate before any write happens.
type TourService struct {
	tours     ports.TourRepository
	bookings  ports.BookingRepository
	guides    ports.GuideRepository
	countries ports.CountryRepository
	access    *AccessChecker
	logger    zerolog.Logger
}

func NewTourService(tours ports.TourRepository, bookings ports.BookingRepository, guides ports.GuideRepository, countries ports.CountryRepository, access *AccessChecker, logger zerolog.Logger) *TourService {
	return &TourService{tours: tours, bookings: bookings, guides: guides, countries: countries, access: access, logger: logger}
}

func (s *TourService) Create(ctx context.Context, input ports.TourInput) (*domain.Tour, error) {
	if _, err := s.tours.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrTourExists
	}
	if _, err := s.countries.FindByID(ctx, input.CountryID); err != nil {
		return nil, err
	}
	if _, err := s.guides.FindByID(ctx, input.GuideID); err != nil {
		return nil, err
	}

	tour := &domain.Tour{
		Name:      input.Name,
		CountryID: input.CountryID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Price:     input.Price,
		GuideID:   input.GuideID,
	}

	saved, err := s.tours.Create(ctx, tour)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("tour_id", saved.ID).Str("name", saved.Name).Msg("tour created")
	return saved, nil
}

func (s *TourService) GetAll(ctx context.Context) ([]*domain.Tour, error) {
	n, err := s.tours.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrTourNotFound
	}
	return s.tours.FindAll(ctx)
}

func (s *TourService) Update(ctx context.Context, id int64, input ports.TourInput) (*domain.Tour, error) {
	if !s.access.IsTourOwner(ctx, id) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	existing, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if other, err := s.tours.FindByName(ctx, input.Name); err == nil && other.ID != id {
		return nil, domain.ErrTourExists
	}
	if _, err := s.countries.FindByID(ctx, input.CountryID); err != nil {
		return nil, err
	}
	if _, err := s.guides.FindByID(ctx, input.GuideID); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.CountryID = input.CountryID
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.Price = input.Price
	existing.GuideID = input.GuideID

	return s.tours.Update(ctx, existing)
}

func (s *TourService) Delete(ctx context.Context, id int64) (*domain.Tour, error) {
	if !s.access.IsTourOwner(ctx, id) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	existing, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tours.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("tour_id", id).Msg("tour deleted")
	return existing, nil
}

func (s *TourService) GetByCountryID(ctx context.Context, countryID int64) ([]*domain.Tour, error) {
	if _, err := s.countries.FindByID(ctx, countryID); err != nil {
		return nil, err
	}
	tours, err := s.tours.FindByCountryID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if len(tours) == 0 {
		return nil, domain.ErrTourNotFound
	}
	return tours, nil
}

func (s *TourService) GetByGuideID(ctx context.Context, guideID int64) ([]*domain.Tour, error) {
	if _, err := s.guides.FindByID(ctx, guideID); err != nil {
		return nil, err
	}
	tours, err := s.tours.FindByGuideID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if len(tours) == 0 {
		return nil, domain.ErrTourNotFound
	}
	return tours, nil
}

// MostPopular orders booked tours by booking count, most booked first.
// Tours without bookings are not listed.
func (s *TourService) MostPopular(ctx context.Context) ([]*domain.Tour, error) {
	if n, err := s.tours.Count(ctx); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrTourNotFound
	}
	if n, err := s.bookings.Count(ctx); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrBookingNotFound
	}

	counts, err := s.bookings.CountsByTour(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	tours := make([]*domain.Tour, 0, len(counts))
	for _, c := range counts {
		tour, err := s.tours.FindByID(ctx, c.TourID)
		if err != nil {
			// Booking for a since-deleted tour; skip it.
			continue
		}
		tours = append(tours, tour)
	}
	return tours, nil
}

// Profit is the tour price multiplied by the number of bookings.
func (s *TourService) Profit(ctx context.Context, id int64) (float64, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	bookings, err := s.bookings.FindByTourID(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(bookings) == 0 {
		return 0, domain.ErrBookingNotFound
	}
	return tour.Price * float64(len(bookings)), nil
}
