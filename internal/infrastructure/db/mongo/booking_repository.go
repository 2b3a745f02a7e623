package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/ports"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{db: db, coll: db.Collection(bookingsCollection)}
}

type bookingDoc struct {
	ID          int64     `bson:"_id"`
	TourID      int64     `bson:"tour_id"`
	ClientID    int64     `bson:"client_id"`
	BookingDate time.Time `bson:"booking_date"`
}

func (d bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          d.ID,
		TourID:      d.TourID,
		ClientID:    d.ClientID,
		BookingDate: d.BookingDate.UTC(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	id, err := nextID(ctx, r.db, bookingsCollection)
	if err != nil {
		return nil, err
	}

	doc := bookingDoc{
		ID:          id,
		TourID:      booking.TourID,
		ClientID:    booking.ClientID,
		BookingDate: booking.BookingDate,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBookingExists
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *booking
	created.ID = id
	return &created, nil
}

func (r *BookingRepository) findOne(ctx context.Context, filter bson.M) (*domain.Booking, error) {
	var doc bookingDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *BookingRepository) FindExisting(ctx context.Context, tourID, clientID int64, date time.Time) (*domain.Booking, error) {
	return r.findOne(ctx, bson.M{"tour_id": tourID, "client_id": clientID, "booking_date": date})
}

func (r *BookingRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, cur.Err()
}

func (r *BookingRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error) {
	return r.findMany(ctx, bson.M{"client_id": clientID})
}

func (r *BookingRepository) FindByTourID(ctx context.Context, tourID int64) ([]*domain.Booking, error) {
	return r.findMany(ctx, bson.M{"tour_id": tourID})
}

func (r *BookingRepository) FindByTourIDs(ctx context.Context, tourIDs []int64) ([]*domain.Booking, error) {
	if len(tourIDs) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, bson.M{"tour_id": bson.M{"$in": tourIDs}})
}

// CountsByTour groups bookings by tour and counts them.
func (r *BookingRepository) CountsByTour(ctx context.Context) ([]ports.TourBookingCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$tour_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookings by tour: %w", err)
	}
	defer cur.Close(ctx)

	var counts []ports.TourBookingCount
	for cur.Next(ctx) {
		var row struct {
			TourID int64 `bson:"_id"`
			Count  int64 `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode tour count: %w", err)
		}
		counts = append(counts, ports.TourBookingCount{TourID: row.TourID, Count: row.Count})
	}
	return counts, cur.Err()
}

// CountsByMonth groups bookings by booking-date month and counts them.
func (r *BookingRepository) CountsByMonth(ctx context.Context) ([]ports.MonthBookingCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$month": "$booking_date"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookings by month: %w", err)
	}
	defer cur.Close(ctx)

	var counts []ports.MonthBookingCount
	for cur.Next(ctx) {
		var row struct {
			Month int32 `bson:"_id"`
			Count int64 `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode month count: %w", err)
		}
		counts = append(counts, ports.MonthBookingCount{
			Month: time.Month(row.Month).String(),
			Count: row.Count,
		})
	}
	return counts, cur.Err()
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
