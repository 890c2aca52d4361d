package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawnote/internal/ports/kv"
)

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "data", "pawnote.db"))
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(ctx, "pets")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "pets", `[{"id":"pet_1"}]`))
	require.NoError(t, s.Set(ctx, "pets", `[{"id":"pet_2"}]`))

	v, ok, err := s.Get(ctx, "pets")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"pet_2"}]`, v)

	require.NoError(t, s.Remove(ctx, "pets"))
	_, ok, err = s.Get(ctx, "pets")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pawnote.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "currentPetId", "pet_9"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "currentPetId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pet_9", v)
}

func TestKVStore_UnavailableAfterClose(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "pawnote.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err = s.Get(ctx, "pets")
	assert.ErrorIs(t, err, kv.ErrUnavailable)
	assert.ErrorIs(t, s.Set(ctx, "pets", "[]"), kv.ErrUnavailable)
	assert.ErrorIs(t, s.Remove(ctx, "pets"), kv.ErrUnavailable)
}
