package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/minicart/minicart-api/internal/dto"
	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/repository"
)

var ErrOrderAccessDenied = errors.New("not authorized to view this order")

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Checkout converts the user's cart into a pending order. The store
// performs the whole step atomically, so a concurrent cart mutation
// lands either before the snapshot or after the cart is cleared.
func (s *OrderService) Checkout(ctx context.Context, user model.User) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.Checkout(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// GetByID enforces the owner-or-admin rule before returning the order.
func (s *OrderService) GetByID(ctx context.Context, id int, requester model.User) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Username != requester.Username && !requester.IsAdmin {
		return nil, ErrOrderAccessDenied
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) ListByUser(ctx context.Context, username string) (*dto.OrderListResponse, error) {
	orders, err := s.orderRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	return &dto.OrderListResponse{Orders: items, Total: len(items)}, nil
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID,
		Username:  order.Username,
		Items:     toCartItemResponses(order.Items),
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}
