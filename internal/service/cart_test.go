package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicart/minicart-api/internal/dto"
	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/repository"
)

func newCartFixture(t *testing.T) (*CartService, model.Product) {
	t.Helper()
	store := repository.NewStore()
	p, err := repository.NewProductRepository(store).Create(context.Background(), model.Product{
		Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 10,
	})
	require.NoError(t, err)
	return NewCartService(repository.NewCartRepository(store)), p
}

func TestCartService_AddItem(t *testing.T) {
	svc, p := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "alice", dto.AddCartItemRequest{ProductID: p.ID, Quantity: 2}))

	cart, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, dto.CartItemResponse{ProductID: p.ID, Quantity: 2}, cart.Items[0])
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	svc, _ := newCartFixture(t)
	err := svc.AddItem(context.Background(), "alice", dto.AddCartItemRequest{ProductID: 42, Quantity: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCartService_EmptyCartReadsAsEmpty(t *testing.T) {
	svc, _ := newCartFixture(t)
	cart, err := svc.GetCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	svc, p := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "alice", dto.AddCartItemRequest{ProductID: p.ID, Quantity: 1}))
	require.NoError(t, svc.AddItem(ctx, "alice", dto.AddCartItemRequest{ProductID: p.ID, Quantity: 2}))

	require.NoError(t, svc.UpdateItem(ctx, "alice", 0, 5))
	require.NoError(t, svc.RemoveItem(ctx, "alice", 1))

	cart, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	assert.ErrorIs(t, svc.UpdateItem(ctx, "alice", 3, 1), repository.ErrNotFound)
	assert.ErrorIs(t, svc.RemoveItem(ctx, "bob", 0), repository.ErrNotFound)
}
