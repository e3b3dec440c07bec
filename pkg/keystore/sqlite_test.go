package keystore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, KeyToken, "access-1"))
	require.NoError(t, store.Set(ctx, KeyToken, "access-2"))

	value, err := store.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "access-2", value)

	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, err = reopened.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "access-2", value)
}

func TestSQLiteStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, KeyToken, "access-1"))
	require.NoError(t, store.Set(ctx, KeyRefreshToken, "refresh-1"))
	require.NoError(t, store.Delete(ctx, KeyToken, KeyRefreshToken))

	_, err = store.Get(ctx, KeyToken)
	require.True(t, errors.Is(err, ErrNotFound))

	// Deleting missing keys is not an error.
	require.NoError(t, store.Delete(ctx, KeyToken))
}
