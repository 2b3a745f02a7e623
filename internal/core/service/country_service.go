package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// CountryService implements destination management.
type CountryService struct {
	countries ports.CountryRepository
	logger    zerolog.Logger
}

func NewCountryService(countries ports.CountryRepository, logger zerolog.Logger) *CountryService {
	return &CountryService{countries: countries, logger: logger}
}

func (s *CountryService) Create(ctx context.Context, name, region string) (*domain.Country, error) {
	if _, err := s.countries.FindByNameAndRegion(ctx, name, region); err == nil {
		return nil, domain.ErrCountryExists
	}

	saved, err := s.countries.Create(ctx, &domain.Country{Name: name, Region: region})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("country_id", saved.ID).Str("name", saved.Name).Msg("country created")
	return saved, nil
}

func (s *CountryService) GetAll(ctx context.Context) ([]*domain.Country, error) {
	n, err := s.countries.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrCountryNotFound
	}
	return s.countries.FindAll(ctx)
}

func (s *CountryService) Delete(ctx context.Context, id int64) (*domain.Country, error) {
	existing, err := s.countries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.countries.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("country_id", id).Msg("country deleted")
	return existing, nil
}
