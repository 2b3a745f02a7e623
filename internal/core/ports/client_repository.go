package ports

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// ClientRepository defines persistence for client profiles.
// Not-found lookups return domain.ErrClientNotFound.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Client, error)
	FindByPassportNumber(ctx context.Context, passport string) (*domain.Client, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Client, error)
	FindByName(ctx context.Context, name string) (*domain.Client, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Client, error)
	FindAll(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
