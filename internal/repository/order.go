package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minicart/minicart-api/internal/model"
)

type OrderRepository interface {
	// Checkout converts the user's cart into an order in one atomic step.
	Checkout(ctx context.Context, username string) (model.Order, error)
	Get(ctx context.Context, id int) (model.Order, error)
	ListByUser(ctx context.Context, username string) ([]model.Order, error)
}

type memOrderRepo struct{ store *Store }

func NewOrderRepository(store *Store) OrderRepository {
	return &memOrderRepo{store: store}
}

// Checkout snapshots the cart, totals it against current product prices,
// inserts the order, and clears the cart, all under the store's write
// lock. A failed step leaves every collection untouched: nothing is
// written until the whole cart has been priced.
func (r *memOrderRepo) Checkout(_ context.Context, username string) (model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[username]
	if len(items) == 0 {
		return model.Order{}, fmt.Errorf("cart for %q: %w", username, ErrEmptyCart)
	}
	snapshot := cloneItems(items)

	total := decimal.Zero
	for _, item := range snapshot {
		product, ok := s.products[item.ProductID]
		if !ok {
			return model.Order{}, fmt.Errorf("product %d: %w", item.ProductID, ErrProductGone)
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := model.Order{
		ID:        s.nextOrderID,
		Username:  username,
		Items:     snapshot,
		Total:     total,
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	s.orderIDs = append(s.orderIDs, order.ID)
	s.carts[username] = nil

	return cloneOrder(order), nil
}

func (r *memOrderRepo) Get(_ context.Context, id int) (model.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return model.Order{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return cloneOrder(order), nil
}

func (r *memOrderRepo) ListByUser(_ context.Context, username string) ([]model.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.Order, 0)
	for _, id := range s.orderIDs {
		if order := s.orders[id]; order.Username == username {
			orders = append(orders, cloneOrder(order))
		}
	}
	return orders, nil
}
