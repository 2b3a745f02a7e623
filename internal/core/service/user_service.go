package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// UserService implements account administration.
type UserService struct {
	users  ports.UserRepository
	access *AccessChecker
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, access *AccessChecker, logger zerolog.Logger) *UserService {
	return &UserService{users: users, access: access, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Delete removes an account. Admin only; admins cannot delete their own
// account.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	if !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}
	if p, ok := domain.PrincipalFromContext(ctx); ok && p.ID == id {
		return nil, domain.ErrAccessDenied
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return user, nil
}
