package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// AuthService implements registration, login and current-user resolution.
type AuthService struct {
	users   ports.UserRepository
	codec   *TokenCodec
	clients ports.ClientService
	guides  ports.GuideService
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *TokenCodec, clients ports.ClientService, guides ports.GuideService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, clients: clients, guides: guides, logger: logger}
}

// Register creates the account and its linked client or guide profile.
// The profile is created with the same email just persisted; a profile
// failure after the account write is not rolled back.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	switch input.Role {
	case domain.RoleClient:
		_, err = s.clients.Create(ctx, ports.ClientInput{
			Name:           input.Name,
			PassportNumber: input.PassportNumber,
			Phone:          input.Phone,
			Email:          input.Email,
		})
	case domain.RoleGuide:
		_, err = s.guides.Create(ctx, ports.GuideInput{
			Name:     input.Name,
			Language: input.Language,
			Email:    input.Email,
		})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", saved.ID).Str("role", saved.Role).Msg("user registered")
	return saved, nil
}

// Login authenticates by email and password. An unknown email fails with
// domain.ErrUserNotFound; a wrong password for a known account yields no
// result and no error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("email", email).Msg("login rejected: password mismatch")
		return nil, nil
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{User: user, Token: token}, nil
}

// CurrentUser reloads the account of the bound principal.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return nil, domain.ErrAnonymous
	}
	return s.users.FindByID(ctx, p.ID)
}

// Logout returns the current user. Issued tokens stay valid until expiry.
func (s *AuthService) Logout(ctx context.Context) (*domain.User, error) {
	return s.CurrentUser(ctx)
}
