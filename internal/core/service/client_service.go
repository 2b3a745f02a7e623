package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// ClientService implements client profile management.
type ClientService struct {
	clients   ports.ClientRepository
	bookings  ports.BookingRepository
	countries ports.CountryRepository
	tours     ports.TourRepository
	users     ports.UserRepository
	access    *AccessChecker
	logger    zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, bookings ports.BookingRepository, countries ports.CountryRepository, tours ports.TourRepository, users ports.UserRepository, access *AccessChecker, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, bookings: bookings, countries: countries, tours: tours, users: users, access: access, logger: logger}
}

// Create links a new client profile to the account registered under
// input.Email. Passport number, phone and name must all be unique.
func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	if _, err := s.clients.FindByPassportNumber(ctx, input.PassportNumber); err == nil {
		return nil, domain.ErrClientExists
	}
	if _, err := s.clients.FindByPhone(ctx, input.Phone); err == nil {
		return nil, domain.ErrClientExists
	}
	if _, err := s.clients.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrClientExists
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		Name:           input.Name,
		PassportNumber: input.PassportNumber,
		Phone:          input.Phone,
		UserID:         user.ID,
	}

	saved, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("client_id", saved.ID).Int64("user_id", saved.UserID).Msg("client created")
	return saved, nil
}

func (s *ClientService) GetAll(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, domain.ErrClientNotFound
	}
	return clients, nil
}

// Update modifies the profile linked to userID. Empty fields stay
// unchanged; phone and passport stay unique across other profiles.
func (s *ClientService) Update(ctx context.Context, userID int64, input ports.ClientInput) (*domain.Client, error) {
	client, err := s.clients.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !s.access.IsClientOwner(ctx, client.ID) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	if input.Phone != "" {
		if other, err := s.clients.FindByPhone(ctx, input.Phone); err == nil && other.ID != client.ID {
			return nil, domain.ErrClientExists
		}
		client.Phone = input.Phone
	}
	if input.PassportNumber != "" {
		if other, err := s.clients.FindByPassportNumber(ctx, input.PassportNumber); err == nil && other.ID != client.ID {
			return nil, domain.ErrClientExists
		}
		client.PassportNumber = input.PassportNumber
	}
	if input.Name != "" {
		client.Name = input.Name
	}

	return s.clients.Update(ctx, client)
}

// Delete removes the client profile and its linked user account.
func (s *ClientService) Delete(ctx context.Context, id int64) (*domain.Client, error) {
	if !s.access.IsClientOwner(ctx, id) && !s.access.HasRole(ctx, domain.RoleAdmin) {
		return nil, domain.ErrAccessDenied
	}

	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, client.UserID); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return client, nil
}

// GetByCountryID lists clients that booked a tour visiting the country.
func (s *ClientService) GetByCountryID(ctx context.Context, countryID int64) ([]*domain.Client, error) {
	if _, err := s.countries.FindByID(ctx, countryID); err != nil {
		return nil, err
	}

	tours, err := s.tours.FindByCountryID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	tourIDs := make([]int64, 0, len(tours))
	for _, t := range tours {
		tourIDs = append(tourIDs, t.ID)
	}

	bookings, err := s.bookings.FindByTourIDs(ctx, tourIDs)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, domain.ErrClientNotFound
	}

	seen := make(map[int64]struct{}, len(bookings))
	clientIDs := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if _, dup := seen[b.ClientID]; dup {
			continue
		}
		seen[b.ClientID] = struct{}{}
		clientIDs = append(clientIDs, b.ClientID)
	}

	return s.clients.FindByIDs(ctx, clientIDs)
}

// Current returns the client profile of the bound principal.
func (s *ClientService) Current(ctx context.Context) (*domain.Client, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return nil, domain.ErrAnonymous
	}
	return s.clients.FindByUserID(ctx, p.ID)
}
