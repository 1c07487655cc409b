package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
)

// CatalogService manages the venue and service catalogs. Mutations are
// admin-only at the transport layer; deletion is immediate and unguarded,
// so orders may end up referencing catalog entries that no longer exist.
// Resolve lookups return a zero value and false for those instead of
// failing.
type CatalogService interface {
	ListVenues(ctx context.Context) []model.Venue
	SaveVenue(ctx context.Context, venue model.Venue) (model.Venue, error)
	DeleteVenue(ctx context.Context, id string) error
	ResolveVenue(ctx context.Context, id string) (model.Venue, bool)

	ListServices(ctx context.Context) []model.Service
	SaveService(ctx context.Context, service model.Service) (model.Service, error)
	DeleteService(ctx context.Context, id string) error
	ResolveService(ctx context.Context, name string) (model.Service, bool)
}

type catalogService struct {
	venues   repository.VenueRepository
	services repository.ServiceRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(venues repository.VenueRepository, services repository.ServiceRepository) CatalogService {
	return &catalogService{venues: venues, services: services}
}

func (s *catalogService) ListVenues(ctx context.Context) []model.Venue {
	return s.venues.GetAll(ctx)
}

// SaveVenue creates or updates a venue. A venue without an id is new and
// gets one assigned.
func (s *catalogService) SaveVenue(ctx context.Context, venue model.Venue) (model.Venue, error) {
	if venue.ID == "" {
		venue.ID = uuid.NewString()
	}
	if err := s.venues.Upsert(ctx, venue); err != nil {
		return model.Venue{}, fmt.Errorf("save venue: %w", err)
	}
	return venue, nil
}

func (s *catalogService) DeleteVenue(ctx context.Context, id string) error {
	if _, found := s.venues.FindByID(ctx, id); !found {
		return apperrors.ErrNotFound
	}
	return s.venues.DeleteByID(ctx, id)
}

func (s *catalogService) ResolveVenue(ctx context.Context, id string) (model.Venue, bool) {
	return s.venues.FindByID(ctx, id)
}

func (s *catalogService) ListServices(ctx context.Context) []model.Service {
	return s.services.GetAll(ctx)
}

// SaveService creates or updates an event service. A service without an id
// is new and gets one assigned.
func (s *catalogService) SaveService(ctx context.Context, service model.Service) (model.Service, error) {
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	if err := s.services.Upsert(ctx, service); err != nil {
		return model.Service{}, fmt.Errorf("save service: %w", err)
	}
	return service, nil
}

func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if _, found := s.services.FindByID(ctx, id); !found {
		return apperrors.ErrNotFound
	}
	return s.services.DeleteByID(ctx, id)
}

func (s *catalogService) ResolveService(ctx context.Context, name string) (model.Service, bool) {
	return s.services.FindByName(ctx, name)
}
