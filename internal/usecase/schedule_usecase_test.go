package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier_backend/internal/domain/entities"
	mock_interfaces "atelier_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestScheduleUseCase_AvailableSlots(t *testing.T) {
	day := time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC) // a Friday
	at := func(hour, min int) time.Time {
		return time.Date(2025, 4, 18, hour, min, 0, 0, time.UTC)
	}

	t.Run("closed day yields no slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		schedule := mock_interfaces.NewMockIScheduleRepository(ctrl)
		uc := NewScheduleUseCase(schedule, nil)

		schedule.EXPECT().HoursFor(gomock.Any(), time.Friday).Return(entities.StoreHours{Closed: true}, nil)

		slots, err := uc.AvailableSlots(context.Background(), day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slots != nil {
			t.Fatalf("expected no slots, got %v", slots)
		}
	})

	t.Run("full open day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		schedule := mock_interfaces.NewMockIScheduleRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewScheduleUseCase(schedule, appointments)

		// 09:00-12:00, no bookings, no blackouts.
		schedule.EXPECT().HoursFor(gomock.Any(), time.Friday).Return(entities.StoreHours{Open: 9 * 60, Close: 12 * 60}, nil)
		appointments.EXPECT().ListOn(gomock.Any(), day).Return(nil, nil)
		schedule.EXPECT().ListBlackoutsOn(gomock.Any(), day).Return(nil, nil)

		slots, err := uc.AvailableSlots(context.Background(), day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 9 {
			t.Fatalf("expected 9 slots for 3 hours, got %d: %v", len(slots), slots)
		}
		if !slots[0].Equal(at(9, 0)) || !slots[8].Equal(at(11, 40)) {
			t.Fatalf("unexpected slot bounds: first %v last %v", slots[0], slots[8])
		}
	})

	t.Run("booked slot is skipped, neighbors stay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		schedule := mock_interfaces.NewMockIScheduleRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewScheduleUseCase(schedule, appointments)

		schedule.EXPECT().HoursFor(gomock.Any(), time.Friday).Return(entities.StoreHours{Open: 9 * 60, Close: 12 * 60}, nil)
		appointments.EXPECT().ListOn(gomock.Any(), day).Return([]entities.Appointment{{ID: 1, ScheduledAt: at(10, 0)}}, nil)
		schedule.EXPECT().ListBlackoutsOn(gomock.Any(), day).Return(nil, nil)

		slots, err := uc.AvailableSlots(context.Background(), day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range slots {
			if s.Equal(at(10, 0)) {
				t.Fatal("10:00 should be booked")
			}
		}
		has := func(want time.Time) bool {
			for _, s := range slots {
				if s.Equal(want) {
					return true
				}
			}
			return false
		}
		if !has(at(9, 40)) || !has(at(10, 20)) {
			t.Fatalf("adjacent slots should remain free: %v", slots)
		}
		if len(slots) != 8 {
			t.Fatalf("expected 8 slots, got %d", len(slots))
		}
	})

	t.Run("blackout window removes overlapping slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		schedule := mock_interfaces.NewMockIScheduleRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewScheduleUseCase(schedule, appointments)

		schedule.EXPECT().HoursFor(gomock.Any(), time.Friday).Return(entities.StoreHours{Open: 9 * 60, Close: 11 * 60}, nil)
		appointments.EXPECT().ListOn(gomock.Any(), day).Return(nil, nil)
		// Blackout 09:30-10:10 kills the 09:20, 09:40 and 10:00 slots.
		schedule.EXPECT().ListBlackoutsOn(gomock.Any(), day).Return([]entities.Blackout{{From: at(9, 30), To: at(10, 10)}}, nil)

		slots, err := uc.AvailableSlots(context.Background(), day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Time{at(9, 0), at(10, 20), at(10, 40)}
		if len(slots) != len(want) {
			t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
		}
		for i := range want {
			if !slots[i].Equal(want[i]) {
				t.Fatalf("slot %d: expected %v, got %v", i, want[i], slots[i])
			}
		}
	})

	t.Run("last slot must end by closing time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		schedule := mock_interfaces.NewMockIScheduleRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewScheduleUseCase(schedule, appointments)

		// 09:00-09:50: only 09:00 and 09:20 fit entirely.
		schedule.EXPECT().HoursFor(gomock.Any(), time.Friday).Return(entities.StoreHours{Open: 9 * 60, Close: 9*60 + 50}, nil)
		appointments.EXPECT().ListOn(gomock.Any(), day).Return(nil, nil)
		schedule.EXPECT().ListBlackoutsOn(gomock.Any(), day).Return(nil, nil)

		slots, err := uc.AvailableSlots(context.Background(), day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 2 {
			t.Fatalf("expected 2 slots, got %d: %v", len(slots), slots)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		schedule := mock_interfaces.NewMockIScheduleRepository(ctrl)
		uc := NewScheduleUseCase(schedule, nil)

		schedule.EXPECT().HoursFor(gomock.Any(), time.Friday).Return(entities.StoreHours{}, errors.New("db"))

		_, err := uc.AvailableSlots(context.Background(), day)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
