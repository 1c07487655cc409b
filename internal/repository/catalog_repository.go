package repository

import (
	"context"

	"festiva/internal/model"
	"festiva/internal/store"
)

// VenueRepository defines venue persistence operations.
type VenueRepository interface {
	GetAll(ctx context.Context) []model.Venue
	FindByID(ctx context.Context, id string) (model.Venue, bool)
	Upsert(ctx context.Context, venue model.Venue) error
	DeleteByID(ctx context.Context, id string) error
}

type venueRepository struct {
	col *store.Collection[model.Venue]
}

// NewVenueRepository creates a venue repository over the venues collection.
func NewVenueRepository(kv store.KV) VenueRepository {
	return &venueRepository{
		col: store.NewCollection(kv, store.KeyVenues, func(v model.Venue) string { return v.ID }),
	}
}

func (r *venueRepository) GetAll(ctx context.Context) []model.Venue {
	return r.col.GetAll(ctx)
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (model.Venue, bool) {
	return r.col.FindByID(ctx, id)
}

func (r *venueRepository) Upsert(ctx context.Context, venue model.Venue) error {
	return r.col.Upsert(ctx, venue)
}

func (r *venueRepository) DeleteByID(ctx context.Context, id string) error {
	return r.col.DeleteByID(ctx, id)
}

// ServiceRepository defines event-service persistence operations.
type ServiceRepository interface {
	GetAll(ctx context.Context) []model.Service
	FindByID(ctx context.Context, id string) (model.Service, bool)
	FindByName(ctx context.Context, name string) (model.Service, bool)
	Upsert(ctx context.Context, service model.Service) error
	DeleteByID(ctx context.Context, id string) error
}

type serviceRepository struct {
	col *store.Collection[model.Service]
}

// NewServiceRepository creates a service repository over the services collection.
func NewServiceRepository(kv store.KV) ServiceRepository {
	return &serviceRepository{
		col: store.NewCollection(kv, store.KeyServices, func(s model.Service) string { return s.ID }),
	}
}

func (r *serviceRepository) GetAll(ctx context.Context) []model.Service {
	return r.col.GetAll(ctx)
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (model.Service, bool) {
	return r.col.FindByID(ctx, id)
}

// FindByName resolves a service by display name. Orders reference services
// by name, so this is the lookup used when pricing a booking.
func (r *serviceRepository) FindByName(ctx context.Context, name string) (model.Service, bool) {
	for _, s := range r.col.GetAll(ctx) {
		if s.Name == name {
			return s, true
		}
	}
	return model.Service{}, false
}

func (r *serviceRepository) Upsert(ctx context.Context, service model.Service) error {
	return r.col.Upsert(ctx, service)
}

func (r *serviceRepository) DeleteByID(ctx context.Context, id string) error {
	return r.col.DeleteByID(ctx, id)
}
