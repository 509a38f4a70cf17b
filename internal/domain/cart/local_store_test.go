// internal/domain/cart/local_store_test.go
package cart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	c := NewCart("sess-1")
	c.Items = append(c.Items, Item{
		ProductID:    "p1",
		ProductName:  "Collier Doré",
		ProductPrice: 15000,
		Quantity:     2,
	})
	c.Recalculate()

	require.NoError(t, store.Save(ctx, c))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, c.Items[0], got.Items[0])
	assert.Equal(t, int64(30000), got.Total)
}

func TestLocalStoreMissingCart(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Equal(t, "never-saved", got.SessionID)
	assert.True(t, got.IsEmpty())
}

func TestLocalStoreCorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, localKeyPrefix+"sess-1.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestLocalStoreDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	c := NewCart("sess-1")
	c.Items = append(c.Items, Item{ProductID: "p1", ProductPrice: 100, Quantity: 1})
	require.NoError(t, store.Save(ctx, c))

	require.NoError(t, store.Delete(ctx, "sess-1"))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	// Deleting a cart that was never saved is fine
	assert.NoError(t, store.Delete(ctx, "sess-2"))
}
