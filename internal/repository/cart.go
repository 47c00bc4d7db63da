package repository

import (
	"context"
	"fmt"

	"github.com/minicart/minicart-api/internal/model"
)

// CartRepository addresses items by their position in the user's cart.
// Removal shifts later indices down, so positions are not stable across
// mutations.
type CartRepository interface {
	Get(ctx context.Context, username string) ([]model.CartItem, error)
	AddItem(ctx context.Context, username string, item model.CartItem) error
	UpdateItem(ctx context.Context, username string, index, quantity int) error
	RemoveItem(ctx context.Context, username string, index int) error
}

type memCartRepo struct{ store *Store }

func NewCartRepository(store *Store) CartRepository {
	return &memCartRepo{store: store}
}

// Get returns a copy of the cart; an absent cart reads as empty.
func (r *memCartRepo) Get(_ context.Context, username string) ([]model.CartItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneItems(s.carts[username]), nil
}

// AddItem appends to the user's cart, creating it if absent. The product
// must exist at insertion time; the existence check and the append happen
// under the same lock so a concurrent product delete cannot slip between.
func (r *memCartRepo) AddItem(_ context.Context, username string, item model.CartItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[item.ProductID]; !ok {
		return fmt.Errorf("product %d: %w", item.ProductID, ErrNotFound)
	}
	s.carts[username] = append(s.carts[username], item)
	return nil
}

func (r *memCartRepo) UpdateItem(_ context.Context, username string, index, quantity int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[username]
	if !ok || index < 0 || index >= len(items) {
		return fmt.Errorf("cart item %d: %w", index, ErrNotFound)
	}
	items[index].Quantity = quantity
	return nil
}

func (r *memCartRepo) RemoveItem(_ context.Context, username string, index int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[username]
	if !ok || index < 0 || index >= len(items) {
		return fmt.Errorf("cart item %d: %w", index, ErrNotFound)
	}
	s.carts[username] = append(items[:index], items[index+1:]...)
	return nil
}
