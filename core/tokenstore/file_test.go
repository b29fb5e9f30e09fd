package tokenstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/tokenstore"
)

func newFileStore(t *testing.T) *tokenstore.FileStore {
	t.Helper()
	store, err := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "session_token"))
	require.NoError(t, err)
	return store
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("load on empty store returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		_, err := store.Load(context.Background())
		assert.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("round-trips token byte-for-byte", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		ctx := context.Background()

		// Deliberately awkward token: padding, whitespace, non-ASCII.
		token := "  abc123==\n\t密"
		require.NoError(t, store.Save(ctx, token))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, token, got)
	})

	t.Run("survives reopening the same path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session_token")
		ctx := context.Background()

		first, err := tokenstore.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, first.Save(ctx, "abc123"))

		second, err := tokenstore.NewFileStore(path)
		require.NoError(t, err)
		got, err := second.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc123", got)
	})

	t.Run("save replaces previous token", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "first"))
		require.NoError(t, store.Save(ctx, "second"))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("clear forgets the token and is idempotent", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "abc123"))
		require.NoError(t, store.Clear(ctx))

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, tokenstore.ErrNotFound)

		// Clearing an already empty store is not an error.
		require.NoError(t, store.Clear(ctx))
	})

	t.Run("rejects empty token", func(t *testing.T) {
		t.Parallel()

		store := newFileStore(t)
		assert.ErrorIs(t, store.Save(context.Background(), ""), tokenstore.ErrEmptyToken)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "session_token")
		store, err := tokenstore.NewFileStore(path)
		require.NoError(t, err)

		require.NoError(t, store.Save(context.Background(), "abc123"))
		got, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abc123", got)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)

	require.NoError(t, store.Save(ctx, "abc123"))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)

	assert.ErrorIs(t, store.Save(ctx, ""), tokenstore.ErrEmptyToken)
}
