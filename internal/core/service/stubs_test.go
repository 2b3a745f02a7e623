package service

import (
	"context"
	"time"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

// In-memory repositories shared by the service tests.

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.nextID++
	clone := *client
	clone.ID = r.nextID
	r.clients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) FindByUserID(_ context.Context, userID int64) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByPassportNumber(_ context.Context, passport string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.PassportNumber == passport {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByPhone(_ context.Context, phone string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Phone == phone {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByName(_ context.Context, name string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByIDs(_ context.Context, ids []int64) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.clients[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubClientRepo) FindAll(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if _, ok := r.clients[client.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *client
	r.clients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type stubGuideRepo struct {
	guides map[int64]*domain.Guide
	nextID int64
}

func newStubGuideRepo() *stubGuideRepo {
	return &stubGuideRepo{guides: make(map[int64]*domain.Guide)}
}

func (r *stubGuideRepo) Create(_ context.Context, guide *domain.Guide) (*domain.Guide, error) {
	r.nextID++
	clone := *guide
	clone.ID = r.nextID
	r.guides[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGuideRepo) FindByID(_ context.Context, id int64) (*domain.Guide, error) {
	g, ok := r.guides[id]
	if !ok {
		return nil, domain.ErrGuideNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGuideRepo) FindByUserID(_ context.Context, userID int64) (*domain.Guide, error) {
	for _, g := range r.guides {
		if g.UserID == userID {
			clone := *g
			return &clone, nil
		}
	}
	return nil, domain.ErrGuideNotFound
}

func (r *stubGuideRepo) FindByName(_ context.Context, name string) (*domain.Guide, error) {
	for _, g := range r.guides {
		if g.Name == name {
			clone := *g
			return &clone, nil
		}
	}
	return nil, domain.ErrGuideNotFound
}

func (r *stubGuideRepo) FindAll(_ context.Context) ([]*domain.Guide, error) {
	out := make([]*domain.Guide, 0, len(r.guides))
	for _, g := range r.guides {
		clone := *g
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubGuideRepo) Update(_ context.Context, guide *domain.Guide) (*domain.Guide, error) {
	if _, ok := r.guides[guide.ID]; !ok {
		return nil, domain.ErrGuideNotFound
	}
	clone := *guide
	r.guides[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubGuideRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.guides[id]; !ok {
		return domain.ErrGuideNotFound
	}
	delete(r.guides, id)
	return nil
}

type stubCountryRepo struct {
	countries map[int64]*domain.Country
	nextID    int64
}

func newStubCountryRepo() *stubCountryRepo {
	return &stubCountryRepo{countries: make(map[int64]*domain.Country)}
}

func (r *stubCountryRepo) Create(_ context.Context, country *domain.Country) (*domain.Country, error) {
	r.nextID++
	clone := *country
	clone.ID = r.nextID
	r.countries[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCountryRepo) FindByID(_ context.Context, id int64) (*domain.Country, error) {
	c, ok := r.countries[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCountryRepo) FindByNameAndRegion(_ context.Context, name, region string) (*domain.Country, error) {
	for _, c := range r.countries {
		if c.Name == name && c.Region == region {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCountryNotFound
}

func (r *stubCountryRepo) FindAll(_ context.Context) ([]*domain.Country, error) {
	out := make([]*domain.Country, 0, len(r.countries))
	for _, c := range r.countries {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCountryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.countries)), nil
}

func (r *stubCountryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.countries[id]; !ok {
		return domain.ErrCountryNotFound
	}
	delete(r.countries, id)
	return nil
}

type stubTourRepo struct {
	tours  map[int64]*domain.Tour
	nextID int64
}

func newStubTourRepo() *stubTourRepo {
	return &stubTourRepo{tours: make(map[int64]*domain.Tour)}
}

func (r *stubTourRepo) Create(_ context.Context, tour *domain.Tour) (*domain.Tour, error) {
	r.nextID++
	clone := *tour
	clone.ID = r.nextID
	r.tours[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTourRepo) FindByID(_ context.Context, id int64) (*domain.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, domain.ErrTourNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTourRepo) FindByName(_ context.Context, name string) (*domain.Tour, error) {
	for _, t := range r.tours {
		if t.Name == name {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTourNotFound
}

func (r *stubTourRepo) FindByCountryID(_ context.Context, countryID int64) ([]*domain.Tour, error) {
	var out []*domain.Tour
	for _, t := range r.tours {
		if t.CountryID == countryID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTourRepo) FindByGuideID(_ context.Context, guideID int64) ([]*domain.Tour, error) {
	var out []*domain.Tour
	for _, t := range r.tours {
		if t.GuideID == guideID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTourRepo) FindAll(_ context.Context) ([]*domain.Tour, error) {
	out := make([]*domain.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTourRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.tours)), nil
}

func (r *stubTourRepo) Update(_ context.Context, tour *domain.Tour) (*domain.Tour, error) {
	if _, ok := r.tours[tour.ID]; !ok {
		return nil, domain.ErrTourNotFound
	}
	clone := *tour
	r.tours[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTourRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tours[id]; !ok {
		return domain.ErrTourNotFound
	}
	delete(r.tours, id)
	return nil
}

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	clone := *booking
	clone.ID = r.nextID
	r.bookings[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) FindByClientID(_ context.Context, clientID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindByTourID(_ context.Context, tourID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.TourID == tourID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindByTourIDs(_ context.Context, tourIDs []int64) ([]*domain.Booking, error) {
	ids := make(map[int64]struct{}, len(tourIDs))
	for _, id := range tourIDs {
		ids[id] = struct{}{}
	}
	var out []*domain.Booking
	for _, b := range r.bookings {
		if _, ok := ids[b.TourID]; ok {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindExisting(_ context.Context, tourID, clientID int64, date time.Time) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.TourID == tourID && b.ClientID == clientID && b.BookingDate.Equal(date) {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) CountsByTour(_ context.Context) ([]ports.TourBookingCount, error) {
	counts := make(map[int64]int64)
	for _, b := range r.bookings {
		counts[b.TourID]++
	}
	out := make([]ports.TourBookingCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, ports.TourBookingCount{TourID: id, Count: n})
	}
	return out, nil
}

func (r *stubBookingRepo) CountsByMonth(_ context.Context) ([]ports.MonthBookingCount, error) {
	counts := make(map[string]int64)
	for _, b := range r.bookings {
		counts[b.BookingDate.Month().String()]++
	}
	out := make([]ports.MonthBookingCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, ports.MonthBookingCount{Month: month, Count: n})
	}
	return out, nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func principalCtx(id int64, email, role string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.Principal{ID: id, Email: email, Role: role})
}
