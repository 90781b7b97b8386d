package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidDateTime     = errors.New("invalid appointment date")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidQuote        = errors.New("invalid quote")
)

const unspecifiedProblem = "unspecified"

// IRepairUseCase covers the repair workflow: appointments, their
// append-only status tracking, and quotes.
type IRepairUseCase interface {
	CreateAppointment(ctx context.Context, userID int64, deviceID *int64, problem string, scheduledAt time.Time) (entities.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status entities.AppointmentStatus, note string) (entities.TrackingEntry, error)
	GetAppointment(ctx context.Context, id int64) (entities.Appointment, error)
	ListTracking(ctx context.Context, appointmentID int64) ([]entities.TrackingEntry, error)
	CreateQuote(ctx context.Context, userID int64, modelID *int64, description string, estimatedPrice float64) (entities.Quote, error)
	AcceptQuote(ctx context.Context, id int64) (entities.Quote, error)
	RefuseQuote(ctx context.Context, id int64) (entities.Quote, error)
}

type RepairUseCase struct {
	uow          interfaces.IUnitOfWork
	appointments interfaces.IAppointmentRepository
	quotes       interfaces.IQuoteRepository
	users        interfaces.IUserRepository
	mailer       interfaces.IMailer
	log          *logrus.Logger
}

var _ IRepairUseCase = (*RepairUseCase)(nil)

func NewRepairUseCase(
	uow interfaces.IUnitOfWork,
	appointments interfaces.IAppointmentRepository,
	quotes interfaces.IQuoteRepository,
	users interfaces.IUserRepository,
	mailer interfaces.IMailer,
	log *logrus.Logger,
) *RepairUseCase {
	return &RepairUseCase{uow: uow, appointments: appointments, quotes: quotes, users: users, mailer: mailer, log: log}
}

// CreateAppointment books a repair slot. The appointment row and its
// initial tracking entry are written in one transaction; the confirmation
// mail is sent inside the bracket, so a mail transport failure cancels the
// booking rather than leaving a silent, unconfirmed one.
func (u *RepairUseCase) CreateAppointment(ctx context.Context, userID int64, deviceID *int64, problem string, scheduledAt time.Time) (entities.Appointment, error) {
	if scheduledAt.IsZero() {
		return entities.Appointment{}, ErrInvalidDateTime
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if user.ID == 0 {
		return entities.Appointment{}, ErrUserNotFound
	}

	if problem == "" {
		problem = unspecifiedProblem
	}

	var created entities.Appointment
	err = u.uow.Do(ctx, func(p interfaces.RepositoryProvider) error {
		var err error
		created, err = p.Appointments().Create(ctx, entities.Appointment{
			UserID:      userID,
			DeviceID:    deviceID,
			Problem:     problem,
			ScheduledAt: scheduledAt,
			Status:      entities.AppointmentStatusPending,
		})
		if err != nil {
			return err
		}

		if _, err := p.Appointments().AppendTracking(ctx, entities.TrackingEntry{
			AppointmentID: created.ID,
			Status:        entities.AppointmentStatusPending,
		}); err != nil {
			return err
		}

		body := fmt.Sprintf("Bonjour %s,\n\nVotre rendez-vous du %s est confirmé.\nProblème signalé : %s.",
			user.Name, scheduledAt.Format("02/01/2006 15:04"), problem)
		return u.mailer.Send(ctx, user.Email, "Confirmation de rendez-vous", body)
	})
	if err != nil {
		return entities.Appointment{}, fmt.Errorf("creating appointment: %w", err)
	}

	u.log.WithFields(logrus.Fields{"appointment_id": created.ID, "user_id": userID}).Info("appointment created")
	return created, nil
}

// UpdateStatus appends an immutable tracking entry; the appointment row is
// never mutated. The status-change mail goes out after commit and is
// best-effort.
func (u *RepairUseCase) UpdateStatus(ctx context.Context, appointmentID int64, status entities.AppointmentStatus, note string) (entities.TrackingEntry, error) {
	switch status {
	case entities.AppointmentStatusPending, entities.AppointmentStatusInProgress, entities.AppointmentStatusDone:
	default:
		return entities.TrackingEntry{}, ErrInvalidStatus
	}

	appointment, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.TrackingEntry{}, err
	}
	if appointment.ID == 0 {
		return entities.TrackingEntry{}, ErrAppointmentNotFound
	}

	var entry entities.TrackingEntry
	err = u.uow.Do(ctx, func(p interfaces.RepositoryProvider) error {
		var err error
		entry, err = p.Appointments().AppendTracking(ctx, entities.TrackingEntry{
			AppointmentID: appointmentID,
			Status:        status,
			Note:          note,
		})
		return err
	})
	if err != nil {
		return entities.TrackingEntry{}, fmt.Errorf("updating appointment status: %w", err)
	}

	if user, err := u.users.GetByID(ctx, appointment.UserID); err == nil && user.ID != 0 {
		body := fmt.Sprintf("Bonjour %s,\n\nLe statut de votre réparation est passé à « %s ».", user.Name, status)
		if err := u.mailer.Send(ctx, user.Email, "Suivi de réparation", body); err != nil {
			u.log.WithError(err).WithField("appointment_id", appointmentID).Warn("status notification mail failed")
		}
	}
	return entry, nil
}

func (u *RepairUseCase) GetAppointment(ctx context.Context, id int64) (entities.Appointment, error) {
	a, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == 0 {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *RepairUseCase) ListTracking(ctx context.Context, appointmentID int64) ([]entities.TrackingEntry, error) {
	if _, err := u.GetAppointment(ctx, appointmentID); err != nil {
		return nil, err
	}
	return u.appointments.ListTracking(ctx, appointmentID)
}

func (u *RepairUseCase) CreateQuote(ctx context.Context, userID int64, modelID *int64, description string, estimatedPrice float64) (entities.Quote, error) {
	if estimatedPrice <= 0 {
		return entities.Quote{}, ErrInvalidQuote
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.Quote{}, err
	}
	if user.ID == 0 {
		return entities.Quote{}, ErrUserNotFound
	}

	return u.quotes.Create(ctx, entities.Quote{
		UserID:         userID,
		ModelID:        modelID,
		Description:    description,
		EstimatedPrice: estimatedPrice,
		Status:         entities.QuoteStatusPending,
	})
}

func (u *RepairUseCase) AcceptQuote(ctx context.Context, id int64) (entities.Quote, error) {
	return u.updateQuoteStatus(ctx, id, entities.QuoteStatusAccepted)
}

func (u *RepairUseCase) RefuseQuote(ctx context.Context, id int64) (entities.Quote, error) {
	return u.updateQuoteStatus(ctx, id, entities.QuoteStatusRefused)
}

func (u *RepairUseCase) updateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.quotes.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
