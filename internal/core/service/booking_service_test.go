package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

type bookingFixture struct {
	bookings *stubBookingRepo
	clients  *stubClientRepo
	tours    *stubTourRepo
	svc      *BookingService
}

func newBookingFixture() *bookingFixture {
	bookings := newStubBookingRepo()
	clients := newStubClientRepo()
	tours := newStubTourRepo()
	guides := newStubGuideRepo()

	access := NewAccessChecker(clients, guides, bookings, tours)
	return &bookingFixture{
		bookings: bookings,
		clients:  clients,
		tours:    tours,
		svc:      NewBookingService(bookings, clients, tours, access, zerolog.Nop()),
	}
}

func (f *bookingFixture) seed() (*domain.Client, *domain.Tour) {
	ctx := context.Background()
	client, _ := f.clients.Create(ctx, &domain.Client{Name: "Alice", UserID: 7})
	tour, _ := f.tours.Create(ctx, &domain.Tour{Name: "Carpathians", Price: 100, GuideID: 1})
	return client, tour
}

func TestBookingService_Create(t *testing.T) {
	f := newBookingFixture()
	client, tour := f.seed()

	ctx := principalCtx(7, "alice@example.com", domain.RoleClient)
	date := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	booking, err := f.svc.Create(ctx, ports.BookingInput{TourID: tour.ID, BookingDate: date})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if booking.ClientID != client.ID || booking.TourID != tour.ID {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if !booking.BookingDate.Equal(date) {
		t.Fatalf("unexpected booking date: %v", booking.BookingDate)
	}
}

func TestBookingService_Create_DefaultsDate(t *testing.T) {
	f := newBookingFixture()
	_, tour := f.seed()

	ctx := principalCtx(7, "alice@example.com", domain.RoleClient)
	booking, err := f.svc.Create(ctx, ports.BookingInput{TourID: tour.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !booking.BookingDate.Equal(today) {
		t.Fatalf("expected today %v, got %v", today, booking.BookingDate)
	}
}

func TestBookingService_Create_Duplicate(t *testing.T) {
	f := newBookingFixture()
	_, tour := f.seed()

	ctx := principalCtx(7, "alice@example.com", domain.RoleClient)
	input := ports.BookingInput{TourID: tour.ID, BookingDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)}

	if _, err := f.svc.Create(ctx, input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := f.svc.Create(ctx, input); !errors.Is(err, domain.ErrBookingExists) {
		t.Fatalf("expected ErrBookingExists, got %v", err)
	}
}

func TestBookingService_Create_RequiresClientProfile(t *testing.T) {
	f := newBookingFixture()
	_, tour := f.seed()

	// Principal has no linked client profile.
	ctx := principalCtx(9, "guide@example.com", domain.RoleGuide)
	if _, err := f.svc.Create(ctx, ports.BookingInput{TourID: tour.ID}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	if _, err := f.svc.Create(context.Background(), ports.BookingInput{TourID: tour.ID}); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied without principal, got %v", err)
	}
}

func TestBookingService_Create_UnknownTour(t *testing.T) {
	f := newBookingFixture()
	f.seed()

	ctx := principalCtx(7, "alice@example.com", domain.RoleClient)
	if _, err := f.svc.Create(ctx, ports.BookingInput{TourID: 42}); !errors.Is(err, domain.ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
}

func TestBookingService_GetByClientID_Guard(t *testing.T) {
	f := newBookingFixture()
	client, tour := f.seed()

	owner := principalCtx(7, "alice@example.com", domain.RoleClient)
	if _, err := f.svc.Create(owner, ports.BookingInput{TourID: tour.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bookings, err := f.svc.GetByClientID(owner, client.ID)
	if err != nil {
		t.Fatalf("GetByClientID as owner: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}

	stranger := principalCtx(9, "mallory@example.com", domain.RoleClient)
	if _, err := f.svc.GetByClientID(stranger, client.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for stranger, got %v", err)
	}

	admin := principalCtx(1, "admin@example.com", domain.RoleAdmin)
	if _, err := f.svc.GetByClientID(admin, client.ID); err != nil {
		t.Fatalf("GetByClientID as admin: %v", err)
	}
}

func TestBookingService_Delete_Guard(t *testing.T) {
	f := newBookingFixture()
	_, tour := f.seed()

	owner := principalCtx(7, "alice@example.com", domain.RoleClient)
	booking, err := f.svc.Create(owner, ports.BookingInput{TourID: tour.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stranger := principalCtx(9, "mallory@example.com", domain.RoleClient)
	if _, err := f.svc.Delete(stranger, booking.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for stranger, got %v", err)
	}

	deleted, err := f.svc.Delete(owner, booking.ID)
	if err != nil {
		t.Fatalf("Delete as owner: %v", err)
	}
	if deleted.ID != booking.ID {
		t.Fatalf("expected booking %d, got %d", booking.ID, deleted.ID)
	}
}

func TestBookingService_StatisticsByMonth(t *testing.T) {
	f := newBookingFixture()
	client, tour := f.seed()

	ctx := context.Background()
	july := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: tour.ID, ClientID: client.ID, BookingDate: july})
	_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: tour.ID, ClientID: client.ID, BookingDate: july.AddDate(0, 0, 3)})
	_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: tour.ID, ClientID: client.ID, BookingDate: august})

	stats, err := f.svc.StatisticsByMonth(ctx)
	if err != nil {
		t.Fatalf("StatisticsByMonth: %v", err)
	}
	if stats["July"] != 2 || stats["August"] != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func TestBookingService_StatisticsByMonth_Empty(t *testing.T) {
	f := newBookingFixture()
	if _, err := f.svc.StatisticsByMonth(context.Background()); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
