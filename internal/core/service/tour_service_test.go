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

type tourFixture struct {
	tours    *stubTourRepo
	bookings *stubBookingRepo
	guides   *stubGuideRepo
	clients  *stubClientRepo
	svc      *TourService
}

func newTourFixture() *tourFixture {
	tours := newStubTourRepo()
	bookings := newStubBookingRepo()
	guides := newStubGuideRepo()
	clients := newStubClientRepo()
	countries := newStubCountryRepo()

	_, _ = countries.Create(context.Background(), &domain.Country{Name: "Ukraine", Region: "Europe"})

	access := NewAccessChecker(clients, guides, bookings, tours)
	return &tourFixture{
		tours:    tours,
		bookings: bookings,
		guides:   guides,
		clients:  clients,
		svc:      NewTourService(tours, bookings, guides, countries, access, zerolog.Nop()),
	}
}

func (f *tourFixture) addGuide(userID int64) *domain.Guide {
	g, _ := f.guides.Create(context.Background(), &domain.Guide{Name: "Guide", UserID: userID})
	return g
}

func tourInput(name string, guideID int64, price float64) ports.TourInput {
	return ports.TourInput{
		Name:      name,
		CountryID: 1,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Price:     price,
		GuideID:   guideID,
	}
}

func TestTourService_Create(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)

	tour, err := f.svc.Create(context.Background(), tourInput("Carpathians", guide.ID, 100))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tour.ID == 0 || tour.Price != 100 {
		t.Fatalf("unexpected tour: %+v", tour)
	}

	if _, err := f.svc.Create(context.Background(), tourInput("Carpathians", guide.ID, 200)); !errors.Is(err, domain.ErrTourExists) {
		t.Fatalf("expected ErrTourExists for duplicate name, got %v", err)
	}
}

func TestTourService_Create_UnknownReferences(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)

	missingCountry := tourInput("Alps", guide.ID, 100)
	missingCountry.CountryID = 42
	if _, err := f.svc.Create(context.Background(), missingCountry); !errors.Is(err, domain.ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}

	if _, err := f.svc.Create(context.Background(), tourInput("Alps", 42, 100)); !errors.Is(err, domain.ErrGuideNotFound) {
		t.Fatalf("expected ErrGuideNotFound, got %v", err)
	}
}

func TestTourService_GetAll_Empty(t *testing.T) {
	f := newTourFixture()
	if _, err := f.svc.GetAll(context.Background()); !errors.Is(err, domain.ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound for empty catalogue, got %v", err)
	}
}

func TestTourService_Update_Guard(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)
	tour, _ := f.svc.Create(context.Background(), tourInput("Carpathians", guide.ID, 100))

	// A guide who does not own the tour is denied before any lookup.
	otherGuide := principalCtx(9, "other@example.com", domain.RoleGuide)
	if _, err := f.svc.Update(otherGuide, tour.ID, tourInput("Renamed", guide.ID, 150)); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for non-owner, got %v", err)
	}

	owner := principalCtx(7, "guide@example.com", domain.RoleGuide)
	updated, err := f.svc.Update(owner, tour.ID, tourInput("Renamed", guide.ID, 150))
	if err != nil {
		t.Fatalf("Update as owner: %v", err)
	}
	if updated.Name != "Renamed" || updated.Price != 150 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	// Admin may update any tour.
	admin := principalCtx(1, "admin@example.com", domain.RoleAdmin)
	if _, err := f.svc.Update(admin, tour.ID, tourInput("Admin rename", guide.ID, 175)); err != nil {
		t.Fatalf("Update as admin: %v", err)
	}
}

func TestTourService_Delete_Guard(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)
	tour, _ := f.svc.Create(context.Background(), tourInput("Carpathians", guide.ID, 100))

	if _, err := f.svc.Delete(principalCtx(9, "other@example.com", domain.RoleGuide), tour.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied for non-owner, got %v", err)
	}

	deleted, err := f.svc.Delete(principalCtx(7, "guide@example.com", domain.RoleGuide), tour.ID)
	if err != nil {
		t.Fatalf("Delete as owner: %v", err)
	}
	if deleted.ID != tour.ID {
		t.Fatalf("expected deleted tour %d, got %d", tour.ID, deleted.ID)
	}
	if _, err := f.tours.FindByID(context.Background(), tour.ID); !errors.Is(err, domain.ErrTourNotFound) {
		t.Fatalf("expected tour to be gone, got %v", err)
	}
}

func TestTourService_MostPopular(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)

	ctx := context.Background()
	first, _ := f.svc.Create(ctx, tourInput("Carpathians", guide.ID, 100))
	second, _ := f.svc.Create(ctx, tourInput("Crimea coast", guide.ID, 200))
	third, _ := f.svc.Create(ctx, tourInput("Kyiv weekend", guide.ID, 50))

	client, _ := f.clients.Create(ctx, &domain.Client{Name: "Alice", UserID: 2})
	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: second.ID, ClientID: client.ID, BookingDate: day.AddDate(0, 0, i)})
	}
	_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: first.ID, ClientID: client.ID, BookingDate: day})

	popular, err := f.svc.MostPopular(ctx)
	if err != nil {
		t.Fatalf("MostPopular: %v", err)
	}
	if len(popular) != 2 {
		t.Fatalf("expected 2 booked tours, got %d", len(popular))
	}
	if popular[0].ID != second.ID || popular[1].ID != first.ID {
		t.Fatalf("unexpected order: %d, %d", popular[0].ID, popular[1].ID)
	}
	for _, tour := range popular {
		if tour.ID == third.ID {
			t.Fatalf("tour without bookings must not be listed")
		}
	}
}

func TestTourService_MostPopular_NoBookings(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)
	_, _ = f.svc.Create(context.Background(), tourInput("Carpathians", guide.ID, 100))

	if _, err := f.svc.MostPopular(context.Background()); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestTourService_Profit(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)

	ctx := context.Background()
	tour, _ := f.svc.Create(ctx, tourInput("Carpathians", guide.ID, 150))
	client, _ := f.clients.Create(ctx, &domain.Client{Name: "Alice", UserID: 2})

	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: tour.ID, ClientID: client.ID, BookingDate: day})
	_, _ = f.bookings.Create(ctx, &domain.Booking{TourID: tour.ID, ClientID: client.ID, BookingDate: day.AddDate(0, 0, 1)})

	profit, err := f.svc.Profit(ctx, tour.ID)
	if err != nil {
		t.Fatalf("Profit: %v", err)
	}
	if profit != 300 {
		t.Fatalf("expected profit 300, got %v", profit)
	}
}

func TestTourService_Profit_NoBookings(t *testing.T) {
	f := newTourFixture()
	guide := f.addGuide(7)
	tour, _ := f.svc.Create(context.Background(), tourInput("Carpathians", guide.ID, 150))

	if _, err := f.svc.Profit(context.Background(), tour.ID); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
