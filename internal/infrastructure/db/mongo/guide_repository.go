package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

const guidesCollection = "guides"

type GuideRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewGuideRepository(db *mongo.Database) *GuideRepository {
	return &GuideRepository{db: db, coll: db.Collection(guidesCollection)}
}

type guideDoc struct {
	ID       int64  `bson:"_id"`
	Name     string `bson:"name"`
	Language string `bson:"language"`
	UserID   int64  `bson:"user_id"`
}

func (d guideDoc) toDomain() *domain.Guide {
	return &domain.Guide{ID: d.ID, Name: d.Name, Language: d.Language, UserID: d.UserID}
}

func (r *GuideRepository) Create(ctx context.Context, guide *domain.Guide) (*domain.Guide, error) {
	id, err := nextID(ctx, r.db, guidesCollection)
	if err != nil {
		return nil, err
	}

	doc := guideDoc{ID: id, Name: guide.Name, Language: guide.Language, UserID: guide.UserID}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrGuideExists
		}
		return nil, fmt.Errorf("insert guide: %w", err)
	}

	created := *guide
	created.ID = id
	return &created, nil
}

func (r *GuideRepository) findOne(ctx context.Context, filter bson.M) (*domain.Guide, error) {
	var doc guideDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGuideNotFound
		}
		return nil, fmt.Errorf("find guide: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GuideRepository) FindByID(ctx context.Context, id int64) (*domain.Guide, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *GuideRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Guide, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *GuideRepository) FindByName(ctx context.Context, name string) (*domain.Guide, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *GuideRepository) FindAll(ctx context.Context) ([]*domain.Guide, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	defer cur.Close(ctx)

	var guides []*domain.Guide
	for cur.Next(ctx) {
		var doc guideDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode guide: %w", err)
		}
		guides = append(guides, doc.toDomain())
	}
	return guides, cur.Err()
}

func (r *GuideRepository) Update(ctx context.Context, guide *domain.Guide) (*domain.Guide, error) {
	update := bson.M{"$set": bson.M{
		"name":     guide.Name,
		"language": guide.Language,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": guide.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update guide: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGuideNotFound
	}
	return guide, nil
}

func (r *GuideRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete guide: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGuideNotFound
	}
	return nil
}
