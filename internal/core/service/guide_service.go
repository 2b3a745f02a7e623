package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// GuideService implements guide profile management.
type GuideService struct {
	guides ports.GuideRepository
	users  ports.UserRepository
	access *AccessChecker
	logger zerolog.Logger
}

func NewGuideService(guides ports.GuideRepository, users ports.UserRepository, access *AccessChecker, logger zerolog.Logger) *GuideService {
	return &GuideService{guides: guides, users: users, access: access, logger: logger}
}

// Create links a new guide profile to the account registered under
// input.Email. Guide names are unique.
func (s *GuideService) Create(ctx context.Context, input ports.GuideInput) (*domain.Guide, error) {
	if _, err := s.guides.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrGuideExists
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	guide := &domain.Guide{
		Name:     input.Name,
		Language: input.Language,
		UserID:   user.ID,
	}

	saved, err := s.guides.Create(ctx, guide)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("guide_id", saved.ID).Int64("user_id", saved.UserID).Msg("guide created")
	return saved, nil
}

func (s *GuideService) GetAll(ctx context.Context) ([]*domain.Guide, error) {
	guides, err := s.guides.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(guides) == 0 {
		return nil, domain.ErrGuideNotFound
	}
	return guides, nil
}

func (s *GuideService) Update(ctx context.Context, id int64, input ports.GuideInput) (*domain.Guide, error) {
	guide, err := s.guides.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.access.IsGuideOwner(ctx, guide.UserID) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	if other, err := s.guides.FindByName(ctx, input.Name); err == nil && other.ID != id {
		return nil, domain.ErrGuideExists
	}

	guide.Name = input.Name
	guide.Language = input.Language
	return s.guides.Update(ctx, guide)
}

// Delete removes the guide profile and its linked user account.
func (s *GuideService) Delete(ctx context.Context, id int64) (*domain.Guide, error) {
	guide, err := s.guides.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.access.IsGuideOwner(ctx, guide.UserID) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	if err := s.guides.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, guide.UserID); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("guide_id", id).Msg("guide deleted")
	return guide, nil
}

// Current returns the guide profile of the bound principal.
func (s *GuideService) Current(ctx context.Context) (*domain.Guide, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return nil, domain.ErrAnonymous
	}
	return s.guides.FindByUserID(ctx, p.ID)
}
