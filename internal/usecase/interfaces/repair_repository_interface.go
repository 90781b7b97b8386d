package interfaces

import (
	"context"
	"time"

	"atelier_backend/internal/domain/entities"
)

// IAppointmentRepository abstracts persistence for repair appointments and
// their append-only tracking log.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id int64) (entities.Appointment, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Appointment, error)
	// ListOn returns every appointment whose slot intersects the given
	// calendar day.
	ListOn(ctx context.Context, day time.Time) ([]entities.Appointment, error)
	AppendTracking(ctx context.Context, e entities.TrackingEntry) (entities.TrackingEntry, error)
	ListTracking(ctx context.Context, appointmentID int64) ([]entities.TrackingEntry, error)
}

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id int64) (entities.Quote, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error)
}

// IScheduleRepository serves the slot calculator: opening hours per weekday
// and admin blackout windows intersecting a day.
type IScheduleRepository interface {
	HoursFor(ctx context.Context, weekday time.Weekday) (entities.StoreHours, error)
	ListBlackoutsOn(ctx context.Context, day time.Time) ([]entities.Blackout, error)
}
