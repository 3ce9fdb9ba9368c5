package service

import (
	"context"
	"errors"
	"fmt"

	"orderapi/internal/model"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrClientNotFound = errors.New("client not found")
)

type OrderStore interface {
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	InsertOne(ctx context.Context, o model.Order) error
	ReplaceByID(ctx context.Context, id string, o model.Order) error
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type OrderService struct {
	orders   OrderStore
	clients  ClientStore
	resolver *Resolver
}

func NewOrderService(orders OrderStore, clients ClientStore, products ProductStore) *OrderService {
	return &OrderService{
		orders:   orders,
		clients:  clients,
		resolver: NewResolver(clients, products),
	}
}

// List returns every order with its client and products resolved. An empty
// collection yields an empty, non-nil slice.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	if err = s.resolver.Resolve(ctx, orders); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []model.Order{}
	}

	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err = s.resolver.ResolveOne(ctx, order); err != nil {
		return nil, err
	}

	if order.AdditionalAttributes == nil {
		order.AdditionalAttributes = map[string]string{}
	}

	return order, nil
}

// Create inserts the order only after its client reference resolves; an
// unresolvable reference (including an empty one) refuses the insert. The
// resolved client is attached to the returned order, products are not.
func (s *OrderService) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	client, err := s.clients.FindByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	order.Client = client

	if err = s.orders.InsertOne(ctx, order); err != nil {
		return nil, err
	}

	return &order, nil
}

// Replace overwrites the stored document for id with the given order. There
// is no existence check: replacing an id with no match is a silent no-op.
func (s *OrderService) Replace(ctx context.Context, id string, order model.Order) error {
	return s.orders.ReplaceByID(ctx, id, order)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	deleted, err := s.orders.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrOrderNotFound
	}
	return nil
}
