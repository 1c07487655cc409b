package service

import (
	"context"
	"fmt"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
)

// OrderService manages the order lifecycle. Two distinct cancel paths
// coexist on purpose: admins set a Cancelled status, clients delete the
// order outright.
type OrderService interface {
	ListByClient(ctx context.Context, clientID string) []model.Order
	ListAll(ctx context.Context, status model.OrderStatus) []model.Order
	Get(ctx context.Context, id string) (model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error)
	Cancel(ctx context.Context, id, clientID string) error
}

type orderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// ListByClient returns the client's own orders.
func (s *orderService) ListByClient(ctx context.Context, clientID string) []model.Order {
	return s.orders.ListByClient(ctx, clientID)
}

// ListAll returns every order, optionally filtered by status. An empty
// status means no filter.
func (s *orderService) ListAll(ctx context.Context, status model.OrderStatus) []model.Order {
	all := s.orders.GetAll(ctx)
	if status == "" {
		return all
	}
	filtered := []model.Order{}
	for _, o := range all {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func (s *orderService) Get(ctx context.Context, id string) (model.Order, error) {
	order, found := s.orders.FindByID(ctx, id)
	if !found {
		return model.Order{}, apperrors.ErrNotFound
	}
	return order, nil
}

// UpdateStatus moves an order to the given status. Any status may move to
// any other, including out of terminal states; staff keep a manual
// override, so no transition table is enforced.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	order, found := s.orders.FindByID(ctx, id)
	if !found {
		return model.Order{}, apperrors.ErrNotFound
	}
	order.Status = status
	if err := s.orders.Upsert(ctx, order); err != nil {
		return model.Order{}, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}

// Cancel is the client cancel path: the order is removed entirely, not
// marked Cancelled. Only the owning client may cancel.
func (s *orderService) Cancel(ctx context.Context, id, clientID string) error {
	order, found := s.orders.FindByID(ctx, id)
	if !found {
		return apperrors.ErrNotFound
	}
	if order.ClientID != clientID {
		return apperrors.ErrForbidden
	}
	return s.orders.DeleteByID(ctx, id)
}
