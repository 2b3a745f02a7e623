package ports

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// GuideRepository defines persistence for guide profiles.
// Not-found lookups return domain.ErrGuideNotFound.
type GuideRepository interface {
	Create(ctx context.Context, guide *domain.Guide) (*domain.Guide, error)
	FindByID(ctx context.Context, id int64) (*domain.Guide, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Guide, error)
	FindByName(ctx context.Context, name string) (*domain.Guide, error)
	FindAll(ctx context.Context) ([]*domain.Guide, error)
	Update(ctx context.Context, guide *domain.Guide) (*domain.Guide, error)
	Delete(ctx context.Context, id int64) error
}
