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
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order has no line items")
	ErrInvalidLineItem   = errors.New("invalid line item")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// LineItem is the caller-facing shape of one order line. Exactly one of
// ProductID/DeviceID must be set.
//
// The unit price is trusted as supplied ("price at cart time"); the server
// only checks positivity and that the referenced item exists.
type LineItem struct {
	ProductID *int64
	DeviceID  *int64
	Quantity  int
	UnitPrice float64
}

// IOrderUseCase exposes the order lifecycle.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, userID int64, items []LineItem, notifyEmail string) (entities.Order, error)
	CreateAndPay(ctx context.Context, userID int64, items []LineItem, notifyEmail string, paymentPayload json.RawMessage) (entities.Order, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	AddDetail(ctx context.Context, orderID int64, item LineItem) (entities.OrderDetail, error)
}

type OrderUseCase struct {
	uow     interfaces.IUnitOfWork
	orders  interfaces.IOrderRepository
	mailer  interfaces.IMailer
	gateway interfaces.IPaymentGateway
	log     *logrus.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	uow interfaces.IUnitOfWork,
	orders interfaces.IOrderRepository,
	mailer interfaces.IMailer,
	gateway interfaces.IPaymentGateway,
	log *logrus.Logger,
) *OrderUseCase {
	return &OrderUseCase{uow: uow, orders: orders, mailer: mailer, gateway: gateway, log: log}
}

// CreateOrder creates the order, its line items and the matching stock
// decrements atomically, then sends a best-effort confirmation mail. A
// failure anywhere inside the bracket leaves no order row, no detail row
// and no stock change.
func (u *OrderUseCase) CreateOrder(ctx context.Context, userID int64, items []LineItem, notifyEmail string) (entities.Order, error) {
	if err := validateLineItems(items); err != nil {
		return entities.Order{}, err
	}

	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}

	var created entities.Order
	err := u.uow.Do(ctx, func(p interfaces.RepositoryProvider) error {
		var err error
		created, err = p.Orders().Create(ctx, entities.Order{
			UserID:        userID,
			Total:         total,
			PaymentStatus: entities.PaymentStatusPending,
		})
		if err != nil {
			return err
		}

		for _, it := range items {
			detail, err := p.Orders().AddDetail(ctx, entities.OrderDetail{
				OrderID:   created.ID,
				ProductID: it.ProductID,
				DeviceID:  it.DeviceID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
			if err != nil {
				return err
			}
			created.Details = append(created.Details, detail)

			if err := u.decrementStock(ctx, p, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("creating order: %w", err)
	}

	// Outside the transaction: a mail failure never undoes the order.
	if notifyEmail != "" {
		body := fmt.Sprintf("Votre commande n°%d a bien été enregistrée. Total : %.2f €.", created.ID, created.Total)
		if err := u.mailer.Send(ctx, notifyEmail, "Confirmation de commande", body); err != nil {
			u.log.WithError(err).WithField("order_id", created.ID).Warn("order confirmation mail failed")
		}
	}

	u.log.WithFields(logrus.Fields{"order_id": created.ID, "user_id": userID, "total": created.Total}).Info("order created")
	return created, nil
}

func (u *OrderUseCase) decrementStock(ctx context.Context, p interfaces.RepositoryProvider, it LineItem) error {
	if it.ProductID != nil {
		err := p.Products().AdjustStock(ctx, *it.ProductID, -it.Quantity)
		if errors.Is(err, interfaces.ErrStockConflict) {
			product, getErr := p.Products().GetByID(ctx, *it.ProductID)
			if getErr != nil {
				return getErr
			}
			if product.ID == 0 {
				return fmt.Errorf("product %d: %w", *it.ProductID, ErrProductNotFound)
			}
			return fmt.Errorf("product %d: %w", *it.ProductID, ErrInsufficientStock)
		}
		return err
	}

	err := p.Devices().AdjustStock(ctx, *it.DeviceID, -it.Quantity)
	if errors.Is(err, interfaces.ErrStockConflict) {
		device, getErr := p.Devices().GetByID(ctx, *it.DeviceID)
		if getErr != nil {
			return getErr
		}
		if device.ID == 0 {
			return fmt.Errorf("device %d: %w", *it.DeviceID, ErrProductNotFound)
		}
		return fmt.Errorf("device %d: %w", *it.DeviceID, ErrInsufficientStock)
	}
	return err
}

// CreateAndPay creates the order then immediately charges the computed
// total through the payment gateway. The charge is not part of the order
// transaction: a declined payment leaves the order in place, marked failed.
func (u *OrderUseCase) CreateAndPay(ctx context.Context, userID int64, items []LineItem, notifyEmail string, paymentPayload json.RawMessage) (entities.Order, error) {
	created, err := u.CreateOrder(ctx, userID, items, notifyEmail)
	if err != nil {
		return entities.Order{}, err
	}

	payload := paymentPayload
	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err == nil {
		// The source of truth for the amount is the computed order total.
		req["transaction_amount"] = created.Total
		if _, ok := req["external_reference"]; !ok {
			req["external_reference"] = fmt.Sprintf("commande-%d", created.ID)
		}
		if b, err := json.Marshal(req); err == nil {
			payload = b
		}
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	status := entities.PaymentStatusFailed
	if err == nil && providerStatus == "approved" {
		status = entities.PaymentStatusPaid
	}
	if err != nil {
		u.log.WithError(err).WithField("order_id", created.ID).Warn("payment gateway call failed")
	} else {
		u.log.WithFields(logrus.Fields{"order_id": created.ID, "provider_payment_id": providerID, "provider_status": providerStatus}).Info("payment processed")
	}

	updated, updErr := u.orders.UpdatePaymentStatus(ctx, created.ID, status)
	if updErr != nil {
		return entities.Order{}, fmt.Errorf("recording payment status: %w", updErr)
	}
	updated.Details = created.Details
	return updated, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// AddDetail appends a line item to an existing order and applies its stock
// decrement atomically; the order total is recomputed by the caller-facing
// read path, not here.
func (u *OrderUseCase) AddDetail(ctx context.Context, orderID int64, item LineItem) (entities.OrderDetail, error) {
	if err := validateLineItems([]LineItem{item}); err != nil {
		return entities.OrderDetail{}, err
	}

	existing, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderDetail{}, err
	}

	var detail entities.OrderDetail
	err = u.uow.Do(ctx, func(p interfaces.RepositoryProvider) error {
		var err error
		detail, err = p.Orders().AddDetail(ctx, entities.OrderDetail{
			OrderID:   existing.ID,
			ProductID: item.ProductID,
			DeviceID:  item.DeviceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		if err != nil {
			return err
		}
		return u.decrementStock(ctx, p, item)
	})
	if err != nil {
		return entities.OrderDetail{}, fmt.Errorf("adding order detail: %w", err)
	}
	return detail, nil
}

func validateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for i, it := range items {
		if (it.ProductID == nil) == (it.DeviceID == nil) {
			return fmt.Errorf("line %d must reference exactly one of product or device: %w", i, ErrInvalidLineItem)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("line %d quantity must be positive: %w", i, ErrInvalidLineItem)
		}
		if it.UnitPrice <= 0 {
			return fmt.Errorf("line %d unit price must be positive: %w", i, ErrInvalidLineItem)
		}
	}
	return nil
}
