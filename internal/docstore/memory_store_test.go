package docstore

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testProfile struct {
	Username  string    `bson:"username"`
	Status    bool      `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
}

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var p testProfile
	assert.ErrorIs(t, s.Get(ctx, CollectionUsers, "u1", &p), ErrNotFound)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Set(ctx, CollectionUsers, "u1", testProfile{Username: "neo", CreatedAt: created}))
	require.NoError(t, s.Get(ctx, CollectionUsers, "u1", &p))
	assert.Equal(t, "neo", p.Username)
	assert.True(t, created.Equal(p.CreatedAt))

	require.NoError(t, s.Set(ctx, CollectionUsers, "u1", testProfile{Username: "trinity"}))
	require.NoError(t, s.Get(ctx, CollectionUsers, "u1", &p))
	assert.Equal(t, "trinity", p.Username)
}

func TestMemoryStoreMerge(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.ErrorIs(t, s.Merge(ctx, CollectionUsers, "u1", map[string]interface{}{"status": true}), ErrNotFound)

	require.NoError(t, s.Set(ctx, CollectionUsers, "u1", testProfile{Username: "neo"}))
	require.NoError(t, s.Merge(ctx, CollectionUsers, "u1", map[string]interface{}{"status": true}))

	var p testProfile
	require.NoError(t, s.Get(ctx, CollectionUsers, "u1", &p))
	assert.Equal(t, "neo", p.Username)
	assert.True(t, p.Status)
}

func TestMemoryStoreFindIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, CollectionUsers, "u1", testProfile{Username: "neo"}))
	require.NoError(t, s.Set(ctx, CollectionUsers, "u2", testProfile{Username: "neo"}))
	require.NoError(t, s.Set(ctx, CollectionUsers, "u3", testProfile{Username: "morpheus"}))

	ids, err := s.FindIDs(ctx, CollectionUsers, "username", "neo")
	require.NoError(t, err)
	sort.Strings(ids)
	assert.Equal(t, []string{"u1", "u2"}, ids)

	ids, err = s.FindIDs(ctx, CollectionUsers, "username", "smith")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
