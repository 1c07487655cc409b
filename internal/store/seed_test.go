package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festiva/internal/model"
)

func TestEnsureSeedData_FreshStore(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	require.NoError(t, EnsureSeedData(ctx, kv))

	users := NewCollection(kv, KeyUsers, func(u model.User) string { return u.ID })
	all := users.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, model.RoleAdmin, all[0].Role)
	assert.Equal(t, AdminEmail, all[0].Email)
	assert.Equal(t, AdminPassword, all[0].Password)

	venues := NewCollection(kv, KeyVenues, func(v model.Venue) string { return v.ID })
	assert.Len(t, venues.GetAll(ctx), 3)

	services := NewCollection(kv, KeyServices, func(s model.Service) string { return s.ID })
	assert.Len(t, services.GetAll(ctx), 2)
}

func TestEnsureSeedData_Idempotent(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	require.NoError(t, EnsureSeedData(ctx, kv))
	require.NoError(t, EnsureSeedData(ctx, kv))

	users := NewCollection(kv, KeyUsers, func(u model.User) string { return u.ID })
	assert.Len(t, users.GetAll(ctx), 1)

	venues := NewCollection(kv, KeyVenues, func(v model.Venue) string { return v.ID })
	assert.Len(t, venues.GetAll(ctx), 3)
}

func TestEnsureSeedData_AdminAddedAlongsideExistingUsers(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	users := NewCollection(kv, KeyUsers, func(u model.User) string { return u.ID })
	require.NoError(t, users.Upsert(ctx, model.User{ID: "u1", Email: "client@example.com", Role: model.RoleClient}))

	require.NoError(t, EnsureSeedData(ctx, kv))

	all := users.GetAll(ctx)
	require.Len(t, all, 2)
	admins := 0
	for _, u := range all {
		if u.Role == model.RoleAdmin {
			admins++
		}
	}
	assert.Equal(t, 1, admins)
}

func TestEnsureSeedData_NeverOverwritesWrittenCatalog(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	venues := NewCollection(kv, KeyVenues, func(v model.Venue) string { return v.ID })
	custom := model.Venue{ID: "custom", Name: "Private Hall", Price: decimal.NewFromInt(1)}
	require.NoError(t, venues.Upsert(ctx, custom))

	require.NoError(t, EnsureSeedData(ctx, kv))

	all := venues.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "custom", all[0].ID)
}

func TestEnsureSeedData_EmptyButWrittenCatalogStaysEmpty(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	// an admin once deleted every venue; the collection was written as empty
	require.NoError(t, kv.Set(ctx, KeyVenues, []byte("[]")))

	require.NoError(t, EnsureSeedData(ctx, kv))

	venues := NewCollection(kv, KeyVenues, func(v model.Venue) string { return v.ID })
	assert.Empty(t, venues.GetAll(ctx))
}
