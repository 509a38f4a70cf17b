// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/darling-boutique/internal/domain/catalog"
)

func newTestService(t *testing.T) (*Service, []catalog.Product) {
	t.Helper()

	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	products := catalog.SeedProducts()
	repo := catalog.NewMemoryRepository(products)

	return NewService(store, repo, NewNotifier()), products
}

func TestAddCreatesSnapshotItem(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	prod := products[0]

	c, err := svc.Add(ctx, "sess-1", prod.ID, 2)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	item := c.Items[0]
	assert.Equal(t, prod.ID, item.ProductID)
	assert.Equal(t, prod.Name, item.ProductName)
	assert.Equal(t, prod.Price, item.ProductPrice)
	assert.Equal(t, prod.Image, item.ProductImage)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 2*prod.Price, item.Subtotal)
	assert.Equal(t, 2*prod.Price, c.Total)
}

func TestAddAccumulatesQuantity(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	prod := products[0]

	_, err := svc.Add(ctx, "sess-1", prod.ID, 1)
	require.NoError(t, err)

	c, err := svc.Add(ctx, "sess-1", prod.ID, 2)
	require.NoError(t, err)

	// One line item with quantity 3, not two line items
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 3*prod.Price, c.Total)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", products[0].ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Add(ctx, "sess-1", products[0].ID, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), "sess-1", "no-such-product", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestUpdateSetsExactQuantity(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	prod := products[1]

	_, err := svc.Add(ctx, "sess-1", prod.ID, 5)
	require.NoError(t, err)

	c, err := svc.Update(ctx, "sess-1", prod.ID, 2)
	require.NoError(t, err)

	// Exact set, not additive
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2*prod.Price, c.Total)
}

func TestUpdateZeroEqualsRemove(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	prod := products[1]

	_, err := svc.Add(ctx, "sess-a", prod.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "sess-b", prod.ID, 2)
	require.NoError(t, err)

	viaUpdate, err := svc.Update(ctx, "sess-a", prod.ID, 0)
	require.NoError(t, err)
	viaRemove, err := svc.Remove(ctx, "sess-b", prod.ID)
	require.NoError(t, err)

	assert.Equal(t, viaUpdate.Items, viaRemove.Items)
	assert.Equal(t, viaUpdate.Total, viaRemove.Total)
	assert.True(t, viaUpdate.IsEmpty())

	// Negative quantities behave the same way
	_, err = svc.Add(ctx, "sess-a", prod.ID, 2)
	require.NoError(t, err)
	c, err := svc.Update(ctx, "sess-a", prod.ID, -1)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestUpdateMissingItem(t *testing.T) {
	svc, products := newTestService(t)

	_, err := svc.Update(context.Background(), "sess-1", products[0].ID, 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", products[0].ID, 1)
	require.NoError(t, err)

	c, err := svc.Remove(ctx, "sess-1", "never-added")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestClearEmptiesCart(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", products[0].ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "sess-1", products[1].ID, 4)
	require.NoError(t, err)

	c, err := svc.Clear(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total)

	// Clear persists
	c, err = svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCartLifecycleScenario(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	prod := products[3]

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, c.IsEmpty())

	c, err = svc.Add(ctx, "sess-1", prod.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, prod.Price, c.Total)

	c, err = svc.Add(ctx, "sess-1", prod.ID, 2)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 3*prod.Price, c.Total)

	c, err = svc.Remove(ctx, "sess-1", prod.ID)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total)
}

func TestCartsAreScopedBySession(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-a", products[0].ID, 1)
	require.NoError(t, err)

	c, err := svc.Get(ctx, "sess-b")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestMutationsPublishEvents(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()

	events, cancel := svc.Notifier().Subscribe()
	defer cancel()

	_, err := svc.Add(ctx, "sess-1", products[0].ID, 2)
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, "sess-1", ev.SessionID)
	assert.Equal(t, 1, ev.ItemCount)
	assert.Equal(t, 2, ev.TotalQuantity)
	assert.Equal(t, 2*products[0].Price, ev.Total)

	_, err = svc.Clear(ctx, "sess-1")
	require.NoError(t, err)

	ev = <-events
	assert.Zero(t, ev.ItemCount)
	assert.Zero(t, ev.Total)
}

func TestConcurrentMutationsAreSerialized(t *testing.T) {
	svc, products := newTestService(t)
	ctx := context.Background()
	prod := products[0]

	const workers = 10
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Add(ctx, "sess-1", prod.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// No add is lost to a stale read
	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, workers, c.Items[0].Quantity)
}
