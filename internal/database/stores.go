package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"orderapi/internal/model"
)

// Stores bundles the collection handles for the three entity kinds. They are
// built once at startup and injected into the services that need them.
type Stores struct {
	Orders   *OrderStore
	Clients  *ClientStore
	Products *ProductStore
}

func NewStores(client *mongo.Client, dbName string) *Stores {
	db := client.Database(dbName)
	return &Stores{
		Orders:   &OrderStore{col: db.Collection("order")},
		Clients:  &ClientStore{col: db.Collection("client")},
		Products: &ProductStore{col: db.Collection("product")},
	}
}

type OrderStore struct {
	col *mongo.Collection
}

func (s *OrderStore) FindAll(ctx context.Context) ([]model.Order, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	var orders []model.Order
	if err = cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}

// FindByID returns nil, nil when no order matches the id.
func (s *OrderStore) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order %q: %w", id, err)
	}
	return &o, nil
}

func (s *OrderStore) InsertOne(ctx context.Context, o model.Order) error {
	if _, err := s.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ReplaceByID overwrites the document whose _id matches id. A replace that
// matches nothing is not an error.
func (s *OrderStore) ReplaceByID(ctx context.Context, id string, o model.Order) error {
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": id}, o); err != nil {
		return fmt.Errorf("replace order %q: %w", id, err)
	}
	return nil
}

func (s *OrderStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete order %q: %w", id, err)
	}
	return res.DeletedCount, nil
}

type ClientStore struct {
	col *mongo.Collection
}

// FindByID returns nil, nil when no client matches the id.
func (s *ClientStore) FindByID(ctx context.Context, id string) (*model.Client, error) {
	var c model.Client
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client %q: %w", id, err)
	}
	return &c, nil
}

type ProductStore struct {
	col *mongo.Collection
}

// FindByIDs returns every product whose id is a member of ids, in whatever
// order the store yields them. Ids with no matching product are skipped.
func (s *ProductStore) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	var products []model.Product
	if err = cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}
