package service

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// AccessChecker evaluates ownership and role predicates against the
// principal bound to the request context. Every predicate returns a plain
// bool: no bound principal, a missing resource or a lookup failure all
// evaluate to false. Services consult these before mutating anything.
type AccessChecker struct {
	clients  ports.ClientRepository
	guides   ports.GuideRepository
	bookings ports.BookingRepository
	tours    ports.TourRepository
}

func NewAccessChecker(clients ports.ClientRepository, guides ports.GuideRepository, bookings ports.BookingRepository, tours ports.TourRepository) *AccessChecker {
	return &AccessChecker{clients: clients, guides: guides, bookings: bookings, tours: tours}
}

// IsClientOwner reports whether the bound principal's user id matches the
// user linked to the client profile.
func (a *AccessChecker) IsClientOwner(ctx context.Context, clientID int64) bool {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return false
	}
	client, err := a.clients.FindByID(ctx, clientID)
	if err != nil {
		return false
	}
	return client.UserID == p.ID
}

// IsGuideOwner reports whether the bound principal's user id equals userID
// and a guide profile exists for it.
func (a *AccessChecker) IsGuideOwner(ctx context.Context, userID int64) bool {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok || p.ID != userID {
		return false
	}
	_, err := a.guides.FindByUserID(ctx, userID)
	return err == nil
}

// IsBookingOwner reports whether the booking's client is linked to the
// bound principal's user account.
func (a *AccessChecker) IsBookingOwner(ctx context.Context, bookingID int64) bool {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return false
	}
	booking, err := a.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return false
	}
	client, err := a.clients.FindByID(ctx, booking.ClientID)
	if err != nil {
		return false
	}
	return client.UserID == p.ID
}

// IsTourOwner reports whether the tour's guide is linked to the bound
// principal's user account.
func (a *AccessChecker) IsTourOwner(ctx context.Context, tourID int64) bool {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return false
	}
	tour, err := a.tours.FindByID(ctx, tourID)
	if err != nil {
		return false
	}
	guide, err := a.guides.FindByID(ctx, tour.GuideID)
	if err != nil {
		return false
	}
	return guide.UserID == p.ID
}

// HasRole reports whether the bound principal carries exactly this role.
func (a *AccessChecker) HasRole(ctx context.Context, role string) bool {
	p, ok := domain.PrincipalFromContext(ctx)
	return ok && p.Role == role
}

// HasAnyRole reports whether the bound principal carries one of the roles.
func (a *AccessChecker) HasAnyRole(ctx context.Context, roles ...string) bool {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
