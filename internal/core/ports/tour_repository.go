package ports

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// TourRepository defines persistence for tours.
// Not-found lookups return domain.ErrTourNotFound.
type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
	FindByID(ctx context.Context, id int64) (*domain.Tour, error)
	FindByName(ctx context.Context, name string) (*domain.Tour, error)
	FindByCountryID(ctx context.Context, countryID int64) ([]*domain.Tour, error)
	FindByGuideID(ctx context.Context, guideID int64) ([]*domain.Tour, error)
	FindAll(ctx context.Context) ([]*domain.Tour, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
	Delete(ctx context.Context, id int64) error
}
