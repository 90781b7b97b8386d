package interfaces

import (
	"context"

	"atelier_backend/internal/domain/entities"
)

// IOrderRepository abstracts PostgreSQL persistence for orders and their
// line items.
//
// Create returns the order with its generated id; details are inserted one
// by one so the unit of work can interleave stock updates with them.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	AddDetail(ctx context.Context, d entities.OrderDetail) (entities.OrderDetail, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatus) (entities.Order, error)
}
