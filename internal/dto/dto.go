package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minicart/minicart-api/internal/model"
)

// --- Auth ---

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// --- Product ---

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock" binding:"min=0"`
}

// UpdateProductRequest replaces every mutable field of the product.
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock" binding:"min=0"`
}

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}

// --- Cart ---

// Quantity carries no minimum on purpose: the store accepts whatever the
// client sends, matching the catalog's permissive cart semantics.
type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}

// --- Order ---

type OrderResponse struct {
	ID        int                `json:"id"`
	Username  string             `json:"user_id"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Status    model.OrderStatus  `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Payment ---

type InitiatePaymentRequest struct {
	OrderID int `json:"order_id" binding:"required"`
}

type InitiatePaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

type ConfirmPaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

type ConfirmPaymentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
