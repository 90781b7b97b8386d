package interfaces

import (
	"context"

	"atelier_backend/internal/domain/entities"
)

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id int64) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	UpdateConsent(ctx context.Context, id int64, consent bool) (entities.User, error)
}

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]entities.Review, error)
}

type IDeliveryRepository interface {
	Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error)
	ListOptions(ctx context.Context) ([]entities.DeliveryOption, error)
}

// IAuditRepository groups the insert-only tables (sessions, consent
// history, admin log). Nothing here is ever updated.
type IAuditRepository interface {
	CreateSession(ctx context.Context, s entities.Session) (entities.Session, error)
	AppendConsent(ctx context.Context, e entities.ConsentEntry) (entities.ConsentEntry, error)
	AppendAdminLog(ctx context.Context, e entities.AdminLogEntry) (entities.AdminLogEntry, error)
}
