package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func noteCollection(t *testing.T) (*Collection[note], KV) {
	t.Helper()
	kv := NewMemory()
	return NewCollection(kv, "test:notes", func(n note) string { return n.ID }), kv
}

func TestCollection_GetAllUninitialized(t *testing.T) {
	col, _ := noteCollection(t)
	assert.Empty(t, col.GetAll(context.Background()))
}

func TestCollection_UpsertAppendsAndReplaces(t *testing.T) {
	col, _ := noteCollection(t)
	ctx := context.Background()

	require.NoError(t, col.Upsert(ctx, note{ID: "n1", Body: "first"}))
	require.NoError(t, col.Upsert(ctx, note{ID: "n2", Body: "second"}))

	items := col.GetAll(ctx)
	require.Len(t, items, 2)

	// same id replaces in place, repeated identical upserts are idempotent
	require.NoError(t, col.Upsert(ctx, note{ID: "n1", Body: "rewritten"}))
	require.NoError(t, col.Upsert(ctx, note{ID: "n1", Body: "rewritten"}))

	items = col.GetAll(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, note{ID: "n1", Body: "rewritten"}, items[0])
	assert.Equal(t, note{ID: "n2", Body: "second"}, items[1])

	found, ok := col.FindByID(ctx, "n1")
	require.True(t, ok)
	assert.Equal(t, "rewritten", found.Body)
}

func TestCollection_DeleteByID(t *testing.T) {
	col, _ := noteCollection(t)
	ctx := context.Background()

	require.NoError(t, col.Upsert(ctx, note{ID: "n1"}))
	require.NoError(t, col.Upsert(ctx, note{ID: "n2"}))

	require.NoError(t, col.DeleteByID(ctx, "n1"))
	items := col.GetAll(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "n2", items[0].ID)

	// deleting an absent id is a no-op
	require.NoError(t, col.DeleteByID(ctx, "missing"))
	assert.Len(t, col.GetAll(ctx), 1)
}

func TestCollection_CorruptDataReadsAsEmpty(t *testing.T) {
	col, kv := noteCollection(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "test:notes", []byte("{definitely not json")))
	assert.Empty(t, col.GetAll(ctx))

	_, ok := col.FindByID(ctx, "n1")
	assert.False(t, ok)

	// the collection recovers on the next write
	require.NoError(t, col.Upsert(ctx, note{ID: "n1"}))
	assert.Len(t, col.GetAll(ctx), 1)
}
