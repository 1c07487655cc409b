package repository

import (
	"context"

	"festiva/internal/model"
	"festiva/internal/store"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	GetAll(ctx context.Context) []model.Order
	FindByID(ctx context.Context, id string) (model.Order, bool)
	ListByClient(ctx context.Context, clientID string) []model.Order
	Upsert(ctx context.Context, order model.Order) error
	DeleteByID(ctx context.Context, id string) error
}

type orderRepository struct {
	col *store.Collection[model.Order]
}

// NewOrderRepository creates an order repository over the orders collection.
func NewOrderRepository(kv store.KV) OrderRepository {
	return &orderRepository{
		col: store.NewCollection(kv, store.KeyOrders, func(o model.Order) string { return o.ID }),
	}
}

func (r *orderRepository) GetAll(ctx context.Context) []model.Order {
	return r.col.GetAll(ctx)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (model.Order, bool) {
	return r.col.FindByID(ctx, id)
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID string) []model.Order {
	orders := []model.Order{}
	for _, o := range r.col.GetAll(ctx) {
		if o.ClientID == clientID {
			orders = append(orders, o)
		}
	}
	return orders
}

func (r *orderRepository) Upsert(ctx context.Context, order model.Order) error {
	return r.col.Upsert(ctx, order)
}

func (r *orderRepository) DeleteByID(ctx context.Context, id string) error {
	return r.col.DeleteByID(ctx, id)
}
