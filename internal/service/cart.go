package service

import (
	"context"
	"fmt"

	"github.com/minicart/minicart-api/internal/dto"
	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/repository"
)

type CartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

func (s *CartService) GetCart(ctx context.Context, username string) (*dto.CartResponse, error) {
	items, err := s.cartRepo.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &dto.CartResponse{Items: toCartItemResponses(items)}, nil
}

func (s *CartService) AddItem(ctx context.Context, username string, req dto.AddCartItemRequest) error {
	return s.cartRepo.AddItem(ctx, username, model.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}

func (s *CartService) UpdateItem(ctx context.Context, username string, index, quantity int) error {
	return s.cartRepo.UpdateItem(ctx, username, index, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, username string, index int) error {
	return s.cartRepo.RemoveItem(ctx, username, index)
}

func toCartItemResponses(items []model.CartItem) []dto.CartItemResponse {
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return out
}
