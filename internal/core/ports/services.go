package ports

import (
	"context"
	"time"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// TourInput carries tour fields for create and update.
type TourInput struct {
	Name      string
	CountryID int64
	StartDate time.Time
	EndDate   time.Time
	Price     float64
	GuideID   int64
}

type TourService interface {
	Create(ctx context.Context, input TourInput) (*domain.Tour, error)
	GetAll(ctx context.Context) ([]*domain.Tour, error)
	Update(ctx context.Context, id int64, input TourInput) (*domain.Tour, error)
	Delete(ctx context.Context, id int64) (*domain.Tour, error)
	GetByCountryID(ctx context.Context, countryID int64) ([]*domain.Tour, error)
	GetByGuideID(ctx context.Context, guideID int64) ([]*domain.Tour, error)
	// MostPopular returns all booked tours ordered by booking count, most
	// booked first.
	MostPopular(ctx context.Context) ([]*domain.Tour, error)
	// Profit is the tour price multiplied by its booking count.
	Profit(ctx context.Context, id int64) (float64, error)
}

// BookingInput carries booking fields for create.
type BookingInput struct {
	TourID int64
	// BookingDate defaults to today when zero.
	BookingDate time.Time
}

type BookingService interface {
	Create(ctx context.Context, input BookingInput) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error)
	GetByTourID(ctx context.Context, tourID int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) (*domain.Booking, error)
	StatisticsByMonth(ctx context.Context) (map[string]int64, error)
}

// ClientInput carries client profile fields. On update, empty fields are
// left unchanged.
type ClientInput struct {
	Name           string
	PassportNumber string
	Phone          string
	Email          string
}

type ClientService interface {
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, userID int64, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id int64) (*domain.Client, error)
	GetByCountryID(ctx context.Context, countryID int64) ([]*domain.Client, error)
	Current(ctx context.Context) (*domain.Client, error)
}

// GuideInput carries guide profile fields.
type GuideInput struct {
	Name     string
	Language string
	Email    string
}

type GuideService interface {
	Create(ctx context.Context, input GuideInput) (*domain.Guide, error)
	GetAll(ctx context.Context) ([]*domain.Guide, error)
	Update(ctx context.Context, id int64, input GuideInput) (*domain.Guide, error)
	Delete(ctx context.Context, id int64) (*domain.Guide, error)
	Current(ctx context.Context) (*domain.Guide, error)
}

type CountryService interface {
	Create(ctx context.Context, name, region string) (*domain.Country, error)
	GetAll(ctx context.Context) ([]*domain.Country, error)
	Delete(ctx context.Context, id int64) (*domain.Country, error)
}

type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
