package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

const countriesCollection = "countries"

type CountryRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{db: db, coll: db.Collection(countriesCollection)}
}

type countryDoc struct {
	ID     int64  `bson:"_id"`
	Name   string `bson:"name"`
	Region string `bson:"region"`
}

func (d countryDoc) toDomain() *domain.Country {
	return &domain.Country{ID: d.ID, Name: d.Name, Region: d.Region}
}

func (r *CountryRepository) Create(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	id, err := nextID(ctx, r.db, countriesCollection)
	if err != nil {
		return nil, err
	}

	doc := countryDoc{ID: id, Name: country.Name, Region: country.Region}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCountryExists
		}
		return nil, fmt.Errorf("insert country: %w", err)
	}

	created := *country
	created.ID = id
	return &created, nil
}

func (r *CountryRepository) FindByID(ctx context.Context, id int64) (*domain.Country, error) {
	var doc countryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CountryRepository) FindByNameAndRegion(ctx context.Context, name, region string) (*domain.Country, error) {
	var doc countryDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name, "region": region}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("find country: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CountryRepository) FindAll(ctx context.Context) ([]*domain.Country, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer cur.Close(ctx)

	var countries []*domain.Country
	for cur.Next(ctx) {
		var doc countryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode country: %w", err)
		}
		countries = append(countries, doc.toDomain())
	}
	return countries, cur.Err()
}

func (r *CountryRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count countries: %w", err)
	}
	return n, nil
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}
