package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festiva/internal/model"
	"festiva/internal/store"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	kv := store.NewMemory()
	sessions := NewSessionStore(kv)
	ctx := context.Background()

	_, ok := sessions.Current(ctx)
	assert.False(t, ok, "fresh store has no session")

	user := model.User{ID: "u1", Name: "Ayesha", Email: "ayesha@example.com", Role: model.RoleClient}
	require.NoError(t, sessions.Set(ctx, user))

	current, ok := sessions.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, user, current)

	require.NoError(t, sessions.Clear(ctx))
	_, ok = sessions.Current(ctx)
	assert.False(t, ok)

	// clearing twice is fine
	require.NoError(t, sessions.Clear(ctx))
}

func TestSessionStore_CorruptSessionReadsAsAbsent(t *testing.T) {
	kv := store.NewMemory()
	sessions := NewSessionStore(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, store.KeySession, []byte("not a user")))
	_, ok := sessions.Current(ctx)
	assert.False(t, ok)
}
