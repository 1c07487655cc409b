package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festiva/internal/model"
	"festiva/internal/repository"
	"festiva/internal/store"
)

func TestStatsService_Stats(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.EnsureSeedData(ctx, kv))

	users := repository.NewUserRepository(kv)
	orders := repository.NewOrderRepository(kv)
	feedback := repository.NewFeedbackRepository(kv)
	venues := repository.NewVenueRepository(kv)

	require.NoError(t, users.Upsert(ctx, model.User{ID: "c1", Role: model.RoleClient}))
	require.NoError(t, users.Upsert(ctx, model.User{ID: "c2", Role: model.RoleClient}))

	amounts := []struct {
		id     string
		status model.OrderStatus
		amount int64
	}{
		{"o1", model.StatusPending, 100000},
		{"o2", model.StatusConfirmed, 200000},
		{"o3", model.StatusCompleted, 300000},
		{"o4", model.StatusCancelled, 400000},
	}
	for _, a := range amounts {
		require.NoError(t, orders.Upsert(ctx, model.Order{
			ID: a.id, ClientID: "c1", Status: a.status,
			TotalAmount: decimal.NewFromInt(a.amount), CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, feedback.Upsert(ctx, model.Feedback{ID: "f1", ClientID: "c1", Rating: 5, Comment: "great"}))
	require.NoError(t, feedback.Upsert(ctx, model.Feedback{ID: "f2", ClientID: "c2", Rating: 4, Comment: "good"}))

	svc := NewStatsService(orders, feedback, venues, users)
	stats := svc.Stats(ctx)

	// only Confirmed and Completed orders earn
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(500000)), "revenue = %s", stats.TotalRevenue)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.0001)
	assert.Equal(t, 2, stats.FeedbackCount)
	assert.Equal(t, 3, stats.VenueCount)
	assert.Equal(t, 2, stats.ClientCount, "the seeded admin is not a client")
}

func TestStatsService_EmptyStore(t *testing.T) {
	kv := store.NewMemory()
	svc := NewStatsService(
		repository.NewOrderRepository(kv),
		repository.NewFeedbackRepository(kv),
		repository.NewVenueRepository(kv),
		repository.NewUserRepository(kv),
	)

	stats := svc.Stats(context.Background())
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.AverageRating)
}
