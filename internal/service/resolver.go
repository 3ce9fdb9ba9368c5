package service

import (
	"context"
	"fmt"

	"orderapi/internal/model"
)

type ClientStore interface {
	FindByID(ctx context.Context, id string) (*model.Client, error)
}

type ProductStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

// Resolver attaches the referenced client and product documents to orders at
// read time. The attachments live only on the in-memory order; a dangling
// reference resolves to nothing rather than an error.
type Resolver struct {
	clients  ClientStore
	products ProductStore
}

func NewResolver(clients ClientStore, products ProductStore) *Resolver {
	return &Resolver{clients: clients, products: products}
}

func (r *Resolver) Resolve(ctx context.Context, orders []model.Order) error {
	for i := range orders {
		if err := r.ResolveOne(ctx, &orders[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) ResolveOne(ctx context.Context, order *model.Order) error {
	if order.ClientID != "" {
		client, err := r.clients.FindByID(ctx, order.ClientID)
		if err != nil {
			return fmt.Errorf("resolve client for order %q: %w", order.ID, err)
		}
		order.Client = client
	}

	if len(order.ProductIDs) > 0 {
		products, err := r.products.FindByIDs(ctx, order.ProductIDs)
		if err != nil {
			return fmt.Errorf("resolve products for order %q: %w", order.ID, err)
		}
		order.Products = products
	}

	return nil
}
