package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotPayable = errors.New("order is not payable")
	ErrInvalidPayment  = errors.New("invalid payment payload")
)

// PaymentResult is what the HTTP layer returns from the payment endpoints.
type PaymentResult struct {
	OrderID           int64                  `json:"order_id"`
	ProviderPaymentID string                 `json:"provider_payment_id"`
	ProviderStatus    string                 `json:"provider_status"`
	PaymentStatus     entities.PaymentStatus `json:"payment_status"`
}

// IPaymentUseCase drives the two-step payment workflow: create a payment
// intent against a pending order, then validate the provider outcome. The
// order's payment status transitions only through here (and the
// create-and-pay shortcut).
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, orderID int64, payload json.RawMessage) (PaymentResult, error)
	ValidatePayment(ctx context.Context, orderID int64, providerStatus string) (PaymentResult, error)
}

type PaymentUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	log     *logrus.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, log *logrus.Logger) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, gateway: gateway, log: log}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, orderID int64, payload json.RawMessage) (PaymentResult, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return PaymentResult{}, err
	}
	if order.ID == 0 {
		return PaymentResult{}, ErrOrderNotFound
	}
	if order.PaymentStatus != entities.PaymentStatusPending {
		return PaymentResult{}, ErrOrderNotPayable
	}

	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return PaymentResult{}, ErrInvalidPayment
	}

	// The charged amount is always the stored order total, never a
	// caller-supplied figure.
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return PaymentResult{}, ErrInvalidPayment
	}
	req["transaction_amount"] = order.Total
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = fmt.Sprintf("commande-%d", order.ID)
	}
	enriched, err := json.Marshal(req)
	if err != nil {
		return PaymentResult{}, err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("payment gateway: %w", err)
	}

	u.log.WithFields(logrus.Fields{"order_id": order.ID, "provider_payment_id": providerID, "provider_status": providerStatus}).Info("payment created")
	return PaymentResult{
		OrderID:           order.ID,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		PaymentStatus:     order.PaymentStatus,
	}, nil
}

func (u *PaymentUseCase) ValidatePayment(ctx context.Context, orderID int64, providerStatus string) (PaymentResult, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return PaymentResult{}, err
	}
	if order.ID == 0 {
		return PaymentResult{}, ErrOrderNotFound
	}
	// A settled order is final: a late or replayed provider callback must
	// not flip paid back to failed. A declined attempt may be retried.
	if order.PaymentStatus != entities.PaymentStatusPending && order.PaymentStatus != entities.PaymentStatusFailed {
		return PaymentResult{}, ErrOrderNotPayable
	}

	status := entities.PaymentStatusFailed
	if providerStatus == "approved" {
		status = entities.PaymentStatusPaid
	}

	updated, err := u.orders.UpdatePaymentStatus(ctx, orderID, status)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("recording payment status: %w", err)
	}

	u.log.WithFields(logrus.Fields{"order_id": orderID, "payment_status": status}).Info("payment validated")
	return PaymentResult{
		OrderID:        updated.ID,
		ProviderStatus: providerStatus,
		PaymentStatus:  updated.PaymentStatus,
	}, nil
}
