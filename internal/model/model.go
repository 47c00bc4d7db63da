package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	Username string
	Email    string
	Password string // bcrypt hash
	IsAdmin  bool
}

type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// CartItem references a product by id; the product must exist when the
// item is added, but is resolved again at checkout time.
type CartItem struct {
	ProductID int
	Quantity  int
}

type OrderStatus string

const OrderStatusPending OrderStatus = "pending"

type Order struct {
	ID        int
	Username  string
	Items     []CartItem
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}
