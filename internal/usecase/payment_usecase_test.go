package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"atelier_backend/internal/domain/entities"
	mock_interfaces "atelier_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreatePayment(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Order{}, nil)

		_, err := uc.CreatePayment(context.Background(), 1, nil)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("already paid order is not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Order{ID: 1, PaymentStatus: entities.PaymentStatusPaid}, nil)

		_, err := uc.CreatePayment(context.Background(), 1, nil)
		if !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Order{ID: 1, PaymentStatus: entities.PaymentStatusPending}, nil)

		_, err := uc.CreatePayment(context.Background(), 1, json.RawMessage("{broken"))
		if !errors.Is(err, ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("amount is forced to the stored total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, gateway, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Order{ID: 1, Total: 49.99, PaymentStatus: entities.PaymentStatusPending}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if req["transaction_amount"] != 49.99 {
					t.Fatalf("caller-supplied amount must be overridden, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "commande-1" {
					t.Fatalf("unexpected external_reference: %v", req["external_reference"])
				}
				return "mp-77", "in_process", nil, nil
			},
		)

		res, err := uc.CreatePayment(context.Background(), 1, json.RawMessage(`{"transaction_amount": 0.01}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderPaymentID != "mp-77" || res.ProviderStatus != "in_process" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPaymentUseCase_ValidatePayment(t *testing.T) {
	t.Run("approved marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusPending}, nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(2), entities.PaymentStatusPaid).Return(
			entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusPaid}, nil)

		res, err := uc.ValidatePayment(context.Background(), 2, "approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %v", res.PaymentStatus)
		}
	})

	t.Run("anything else marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusPending}, nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(2), entities.PaymentStatusFailed).Return(
			entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusFailed}, nil)

		res, err := uc.ValidatePayment(context.Background(), 2, "rejected")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %v", res.PaymentStatus)
		}
	})

	t.Run("a paid order cannot be flipped by a late callback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusPaid}, nil)

		_, err := uc.ValidatePayment(context.Background(), 2, "rejected")
		if !errors.Is(err, ErrOrderNotPayable) {
			t.Fatalf("expected ErrOrderNotPayable, got %v", err)
		}
	})

	t.Run("a declined payment may be retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentUseCase(orders, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusFailed}, nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(2), entities.PaymentStatusPaid).Return(
			entities.Order{ID: 2, PaymentStatus: entities.PaymentStatusPaid}, nil)

		res, err := uc.ValidatePayment(context.Background(), 2, "approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %v", res.PaymentStatus)
		}
	})
}
