package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

const toursCollection = "tours"

type TourRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTourRepository(db *mongo.Database) *TourRepository {
	return &TourRepository{db: db, coll: db.Collection(toursCollection)}
}

type tourDoc struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	CountryID int64     `bson:"country_id"`
	StartDate time.Time `bson:"start_date"`
	EndDate   time.Time `bson:"end_date"`
	Price     float64   `bson:"price"`
	GuideID   int64     `bson:"guide_id"`
}

func (d tourDoc) toDomain() *domain.Tour {
	return &domain.Tour{
		ID:        d.ID,
		Name:      d.Name,
		CountryID: d.CountryID,
		StartDate: d.StartDate.UTC(),
		EndDate:   d.EndDate.UTC(),
		Price:     d.Price,
		GuideID:   d.GuideID,
	}
}

func fromTour(t *domain.Tour) tourDoc {
	return tourDoc{
		ID:        t.ID,
		Name:      t.Name,
		CountryID: t.CountryID,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Price:     t.Price,
		GuideID:   t.GuideID,
	}
}

func (r *TourRepository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	id, err := nextID(ctx, r.db, toursCollection)
	if err != nil {
		return nil, err
	}

	doc := fromTour(tour)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTourExists
		}
		return nil, fmt.Errorf("insert tour: %w", err)
	}

	created := *tour
	created.ID = id
	return &created, nil
}

func (r *TourRepository) findOne(ctx context.Context, filter bson.M) (*domain.Tour, error) {
	var doc tourDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TourRepository) FindByID(ctx context.Context, id int64) (*domain.Tour, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *TourRepository) FindByName(ctx context.Context, name string) (*domain.Tour, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *TourRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Tour, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer cur.Close(ctx)

	var tours []*domain.Tour
	for cur.Next(ctx) {
		var doc tourDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode tour: %w", err)
		}
		tours = append(tours, doc.toDomain())
	}
	return tours, cur.Err()
}

func (r *TourRepository) FindByCountryID(ctx context.Context, countryID int64) ([]*domain.Tour, error) {
	return r.findMany(ctx, bson.M{"country_id": countryID})
}

func (r *TourRepository) FindByGuideID(ctx context.Context, guideID int64) ([]*domain.Tour, error) {
	return r.findMany(ctx, bson.M{"guide_id": guideID})
}

func (r *TourRepository) FindAll(ctx context.Context) ([]*domain.Tour, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *TourRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return n, nil
}

func (r *TourRepository) Update(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	update := bson.M{"$set": bson.M{
		"name":       tour.Name,
		"country_id": tour.CountryID,
		"start_date": tour.StartDate,
		"end_date":   tour.EndDate,
		"price":      tour.Price,
		"guide_id":   tour.GuideID,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": tour.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTourNotFound
	}
	return tour, nil
}

func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}
