package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

const clientsCollection = "clients"

type ClientRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{db: db, coll: db.Collection(clientsCollection)}
}

type clientDoc struct {
	ID             int64  `bson:"_id"`
	Name           string `bson:"name"`
	PassportNumber string `bson:"passport_number"`
	Phone          string `bson:"phone"`
	UserID         int64  `bson:"user_id"`
}

func (d clientDoc) toDomain() *domain.Client {
	return &domain.Client{
		ID:             d.ID,
		Name:           d.Name,
		PassportNumber: d.PassportNumber,
		Phone:          d.Phone,
		UserID:         d.UserID,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	id, err := nextID(ctx, r.db, clientsCollection)
	if err != nil {
		return nil, err
	}

	doc := clientDoc{
		ID:             id,
		Name:           client.Name,
		PassportNumber: client.PassportNumber,
		Phone:          client.Phone,
		UserID:         client.UserID,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrClientExists
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	created.ID = id
	return &created, nil
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	var doc clientDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ClientRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *ClientRepository) FindByPassportNumber(ctx context.Context, passport string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"passport_number": passport})
}

func (r *ClientRepository) FindByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *ClientRepository) FindByName(ctx context.Context, name string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *ClientRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Client, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []*domain.Client
	for cur.Next(ctx) {
		var doc clientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, doc.toDomain())
	}
	return clients, cur.Err()
}

func (r *ClientRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	update := bson.M{"$set": bson.M{
		"name":            client.Name,
		"passport_number": client.PassportNumber,
		"phone":           client.Phone,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": client.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
