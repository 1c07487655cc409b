package service

import (
	"context"

	"github.com/shopspring/decimal"

	"festiva/internal/booking"
	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
)

// BookingService is the server-side confirm path of the booking wizard. It
// runs a submitted draft through the same validation and pricing the
// interactive wizard applies, then persists it.
type BookingService interface {
	Confirm(ctx context.Context, draft model.Order) (model.Order, error)
	Quote(ctx context.Context, eventType, venueID string) decimal.Decimal
}

type bookingService struct {
	orders   repository.OrderRepository
	venues   repository.VenueRepository
	services repository.ServiceRepository
	users    repository.UserRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(
	orders repository.OrderRepository,
	venues repository.VenueRepository,
	services repository.ServiceRepository,
	users repository.UserRepository,
) BookingService {
	return &bookingService{orders: orders, venues: venues, services: services, users: users}
}

// Confirm validates and persists a booking draft. Drafts carrying an id of
// an existing order are edits and replace it; others create a new Pending
// order. The total is recomputed from the current catalog at confirmation
// time, unresolved references contributing zero.
func (s *bookingService) Confirm(ctx context.Context, draft model.Order) (model.Order, error) {
	if _, found := s.users.FindByID(ctx, draft.ClientID); !found {
		return model.Order{}, apperrors.ErrNotFound
	}
	if draft.ID != "" {
		if existing, found := s.orders.FindByID(ctx, draft.ID); found {
			// keep lifecycle fields owned by the admin and the system
			draft.Status = existing.Status
			draft.CreatedAt = existing.CreatedAt
		}
	}
	wizard := booking.NewFromOrder(draft, s.venues.GetAll(ctx), s.services.GetAll(ctx))
	return wizard.Confirm(ctx, s.orders)
}

// Quote derives the price for a service and venue selection without
// persisting anything.
func (s *bookingService) Quote(ctx context.Context, eventType, venueID string) decimal.Decimal {
	return booking.Total(s.services.GetAll(ctx), s.venues.GetAll(ctx), eventType, venueID)
}
