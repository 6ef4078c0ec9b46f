package metadata

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/palace/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(setupDB(t))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	u := &models.User{ID: "u1", Email: "a@x.com", FirstName: "Ama", SubscribedRegions: []string{"volta"}}
	require.NoError(t, s.Save(ctx, "tok-1", u))

	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	cached, err := s.CachedUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, cached)

	require.NoError(t, s.Clear(ctx))

	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	cached, err = s.CachedUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestSessionStore_SaveWithoutUserDropsStaleCache(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(setupDB(t))

	require.NoError(t, s.Save(ctx, "tok-1", &models.User{ID: "u1"}))
	require.NoError(t, s.Save(ctx, "tok-2", nil))

	cached, err := s.CachedUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestSessionStore_CorruptCachedUser(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	require.NoError(t, NewSQLiteRepository(db).Set(ctx, KeyUser, []byte("{")))

	_, err := NewSessionStore(db).CachedUser(ctx)
	assert.Error(t, err)
}

func TestSessionStore_ClosedDB(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSessionStore(db)
	require.NoError(t, db.Close())

	_, err := s.Load(ctx)
	assert.Error(t, err)
	assert.Error(t, s.Save(ctx, "t", nil))
	assert.Error(t, s.Clear(ctx))
}
