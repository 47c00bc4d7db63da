package repository

import (
	"errors"
	"sync"

	"github.com/minicart/minicart-api/internal/model"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUserExists  = errors.New("username already registered")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrProductGone = errors.New("product no longer exists")
)

// Store owns every mutable collection in the system. All reads and writes
// go through its methods under a single RWMutex, so read-modify-write
// sequences (cart appends, id assignment, checkout) are linearizable.
// Methods hand out copies, never aliases into the internal maps.
type Store struct {
	mu sync.RWMutex

	users map[string]model.User

	products      map[int]model.Product
	productIDs    []int // insertion order
	nextProductID int

	carts map[string][]model.CartItem

	orders      map[int]model.Order
	orderIDs    []int
	nextOrderID int
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]model.User),
		products:      make(map[int]model.Product),
		nextProductID: 1,
		carts:         make(map[string][]model.CartItem),
		orders:        make(map[int]model.Order),
		nextOrderID:   1,
	}
}

func cloneItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}

func cloneOrder(o model.Order) model.Order {
	o.Items = cloneItems(o.Items)
	return o
}
