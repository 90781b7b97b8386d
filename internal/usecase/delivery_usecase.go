package usecase

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
)

var ErrDeliveryNotFound = errors.New("delivery not found")

type IDeliveryUseCase interface {
	Choose(ctx context.Context, orderID, optionID int64) (entities.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error)
	ListOptions(ctx context.Context) ([]entities.DeliveryOption, error)
}

type DeliveryUseCase struct {
	deliveries interfaces.IDeliveryRepository
	orders     interfaces.IOrderRepository
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(deliveries interfaces.IDeliveryRepository, orders interfaces.IOrderRepository) *DeliveryUseCase {
	return &DeliveryUseCase{deliveries: deliveries, orders: orders}
}

func (u *DeliveryUseCase) Choose(ctx context.Context, orderID, optionID int64) (entities.Delivery, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Delivery{}, err
	}
	if order.ID == 0 {
		return entities.Delivery{}, ErrOrderNotFound
	}

	return u.deliveries.Create(ctx, entities.Delivery{
		OrderID:  orderID,
		OptionID: optionID,
		Status:   entities.DeliveryStatusPending,
	})
}

func (u *DeliveryUseCase) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error) {
	switch status {
	case entities.DeliveryStatusPending, entities.DeliveryStatusInProgress, entities.DeliveryStatusDelivered:
	default:
		return entities.Delivery{}, ErrInvalidStatus
	}

	d, err := u.deliveries.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Delivery{}, err
	}
	if d.ID == 0 {
		return entities.Delivery{}, ErrDeliveryNotFound
	}
	return d, nil
}

func (u *DeliveryUseCase) ListOptions(ctx context.Context) ([]entities.DeliveryOption, error) {
	return u.deliveries.ListOptions(ctx)
}
