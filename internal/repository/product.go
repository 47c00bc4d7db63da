package repository

import (
	"context"
	"fmt"

	"github.com/minicart/minicart-api/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (model.Product, error)
	Get(ctx context.Context, id int) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id int, product model.Product) (model.Product, error)
	Delete(ctx context.Context, id int) error
}

type memProductRepo struct{ store *Store }

func NewProductRepository(store *Store) ProductRepository {
	return &memProductRepo{store: store}
}

// Create assigns the next id from a monotonic counter. Ids are never
// reused, even after a delete.
func (r *memProductRepo) Create(_ context.Context, product model.Product) (model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextProductID
	s.nextProductID++
	s.products[product.ID] = product
	s.productIDs = append(s.productIDs, product.ID)
	return product, nil
}

func (r *memProductRepo) Get(_ context.Context, id int) (model.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, nil
}

func (r *memProductRepo) List(_ context.Context) ([]model.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		products = append(products, s.products[id])
	}
	return products, nil
}

// Update is a full replacement of the mutable fields; the id is fixed.
func (r *memProductRepo) Update(_ context.Context, id int, product model.Product) (model.Product, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return model.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	product.ID = id
	s.products[id] = product
	return product, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	delete(s.products, id)
	for i, pid := range s.productIDs {
		if pid == id {
			s.productIDs = append(s.productIDs[:i], s.productIDs[i+1:]...)
			break
		}
	}
	return nil
}
