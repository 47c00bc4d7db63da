package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/minicart/minicart-api/internal/dto"
	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/repository"
)

// PaymentService is a mock. Initiate validates that the order exists and
// belongs to the caller, then hands back a generated payment id; nothing
// is recorded and Confirm always succeeds.
type PaymentService struct {
	orderRepo repository.OrderRepository
}

func NewPaymentService(orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{orderRepo: orderRepo}
}

func (s *PaymentService) Initiate(ctx context.Context, orderID int, requester model.User) (*dto.InitiatePaymentResponse, error) {
	order, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Username != requester.Username {
		return nil, ErrOrderAccessDenied
	}
	return &dto.InitiatePaymentResponse{
		PaymentID: "mock_payment_" + uuid.NewString(),
		Status:    "initiated",
	}, nil
}

func (s *PaymentService) Confirm(_ context.Context, _ string) *dto.ConfirmPaymentResponse {
	return &dto.ConfirmPaymentResponse{Status: "success", Message: "Payment confirmed"}
}
