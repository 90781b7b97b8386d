package usecase

import (
	"context"
	"time"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
)

// SlotDuration is the fixed length of a bookable appointment slot.
const SlotDuration = 20 * time.Minute

// Every appointment is assumed to occupy one slot.
const appointmentDuration = SlotDuration

type IScheduleUseCase interface {
	AvailableSlots(ctx context.Context, day time.Time) ([]time.Time, error)
}

type ScheduleUseCase struct {
	schedule     interfaces.IScheduleRepository
	appointments interfaces.IAppointmentRepository
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(schedule interfaces.IScheduleRepository, appointments interfaces.IAppointmentRepository) *ScheduleUseCase {
	return &ScheduleUseCase{schedule: schedule, appointments: appointments}
}

// AvailableSlots lists the bookable start times on a calendar day: fixed
// slots stepped from opening time, skipping any slot overlapping an
// existing appointment or an admin blackout, stopping when a slot would
// run past closing time. Closed day means no slots.
func (u *ScheduleUseCase) AvailableSlots(ctx context.Context, day time.Time) ([]time.Time, error) {
	hours, err := u.schedule.HoursFor(ctx, day.Weekday())
	if err != nil {
		return nil, err
	}
	if hours.Closed {
		return nil, nil
	}

	booked, err := u.appointments.ListOn(ctx, day)
	if err != nil {
		return nil, err
	}
	blackouts, err := u.schedule.ListBlackoutsOn(ctx, day)
	if err != nil {
		return nil, err
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	opening := midnight.Add(time.Duration(hours.Open) * time.Minute)
	closing := midnight.Add(time.Duration(hours.Close) * time.Minute)

	var slots []time.Time
	for start := opening; !start.Add(SlotDuration).After(closing); start = start.Add(SlotDuration) {
		end := start.Add(SlotDuration)
		if slotFree(start, end, booked, blackouts) {
			slots = append(slots, start)
		}
	}
	return slots, nil
}

// Half-open overlap test: two intervals collide when
// start < otherEnd && end > otherStart.
func slotFree(start, end time.Time, booked []entities.Appointment, blackouts []entities.Blackout) bool {
	for _, a := range booked {
		if start.Before(a.ScheduledAt.Add(appointmentDuration)) && end.After(a.ScheduledAt) {
			return false
		}
	}
	for _, b := range blackouts {
		if start.Before(b.To) && end.After(b.From) {
			return false
		}
	}
	return true
}
