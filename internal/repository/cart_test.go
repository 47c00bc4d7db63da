package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicart/minicart-api/internal/model"
)

func seedProduct(t *testing.T, store *Store) model.Product {
	t.Helper()
	p, err := NewProductRepository(store).Create(context.Background(), model.Product{Name: "Laptop", Stock: 10})
	require.NoError(t, err)
	return p
}

func TestCartRepository_AddAppendsOneItem(t *testing.T) {
	store := NewStore()
	product := seedProduct(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: want}))
		items, err := repo.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, items, want)
	}
}

func TestCartRepository_AddUnknownProduct(t *testing.T) {
	repo := NewCartRepository(NewStore())
	err := repo.AddItem(context.Background(), "alice", model.CartItem{ProductID: 42, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Quantity is stored as given; there is no positivity check.
func TestCartRepository_QuantityUnchecked(t *testing.T) {
	store := NewStore()
	product := seedProduct(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: 0}))
	require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: -3}))

	items, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Quantity)
	assert.Equal(t, -3, items[1].Quantity)
}

func TestCartRepository_UpdateInPlace(t *testing.T) {
	store := NewStore()
	product := seedProduct(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: 2}))

	require.NoError(t, repo.UpdateItem(ctx, "alice", 1, 9))

	items, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2, "update must not change cart length")
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 9, items[1].Quantity)
}

func TestCartRepository_RemoveShiftsIndices(t *testing.T) {
	store := NewStore()
	product := seedProduct(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	for q := 1; q <= 3; q++ {
		require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: q}))
	}

	require.NoError(t, repo.RemoveItem(ctx, "alice", 1))

	items, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity, "later items shift down to fill the gap")

	// removing the last valid index leaves no gap either
	require.NoError(t, repo.RemoveItem(ctx, "alice", 1))
	items, err = repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartRepository_IndexOutOfBounds(t *testing.T) {
	store := NewStore()
	product := seedProduct(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	// no cart at all
	assert.ErrorIs(t, repo.UpdateItem(ctx, "alice", 0, 1), ErrNotFound)
	assert.ErrorIs(t, repo.RemoveItem(ctx, "alice", 0), ErrNotFound)

	require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: 1}))
	assert.ErrorIs(t, repo.UpdateItem(ctx, "alice", 1, 1), ErrNotFound)
	assert.ErrorIs(t, repo.RemoveItem(ctx, "alice", -1), ErrNotFound)
}

func TestCartRepository_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	product := seedProduct(t, store)
	repo := NewCartRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "alice", model.CartItem{ProductID: product.ID, Quantity: 1}))

	items, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	items[0].Quantity = 99

	again, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Quantity, "mutating a returned view must not touch the store")
}
