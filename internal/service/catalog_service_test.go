package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
	"festiva/internal/store"
)

func newCatalogFixture(t *testing.T) CatalogService {
	t.Helper()
	kv := store.NewMemory()
	require.NoError(t, store.EnsureSeedData(context.Background(), kv))
	return NewCatalogService(repository.NewVenueRepository(kv), repository.NewServiceRepository(kv))
}

func TestCatalogService_VenueCRUD(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	created, err := svc.SaveVenue(ctx, model.Venue{Name: "Rooftop Terrace", Location: "Karachi", Capacity: 200, Price: decimal.NewFromInt(90000)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "new venues get an id assigned")
	assert.Len(t, svc.ListVenues(ctx), 4)

	created.Price = decimal.NewFromInt(95000)
	updated, err := svc.SaveVenue(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Len(t, svc.ListVenues(ctx), 4, "updates replace in place")

	resolved, ok := svc.ResolveVenue(ctx, created.ID)
	require.True(t, ok)
	assert.True(t, resolved.Price.Equal(decimal.NewFromInt(95000)))

	require.NoError(t, svc.DeleteVenue(ctx, created.ID))
	assert.Len(t, svc.ListVenues(ctx), 3)

	// orders still referencing the deleted venue resolve to unresolved,
	// not to an error
	_, ok = svc.ResolveVenue(ctx, created.ID)
	assert.False(t, ok)

	err = svc.DeleteVenue(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_ServiceCRUD(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	created, err := svc.SaveService(ctx, model.Service{
		Name:      "Corporate Gala",
		BasePrice: decimal.NewFromInt(80000),
		Themes:    []string{"Black Tie", "Neon Nights"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, svc.ListServices(ctx), 3)

	// orders reference services by name
	resolved, ok := svc.ResolveService(ctx, "Corporate Gala")
	require.True(t, ok)
	assert.Equal(t, created.ID, resolved.ID)

	require.NoError(t, svc.DeleteService(ctx, created.ID))
	_, ok = svc.ResolveService(ctx, "Corporate Gala")
	assert.False(t, ok)

	err = svc.DeleteService(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
