package ports

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// CountryRepository defines persistence for countries.
// Not-found lookups return domain.ErrCountryNotFound.
type CountryRepository interface {
	Create(ctx context.Context, country *domain.Country) (*domain.Country, error)
	FindByID(ctx context.Context, id int64) (*domain.Country, error)
	FindByNameAndRegion(ctx context.Context, name, region string) (*domain.Country, error)
	FindAll(ctx context.Context) ([]*domain.Country, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
