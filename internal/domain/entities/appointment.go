package entities

import "time"

// AppointmentStatus is the repair lifecycle of an appointment (rendez-vous).
//
// The appointment row itself is never rewritten on a status change: each
// change appends a TrackingEntry, and the current status is the latest
// entry. The entries form the repair's audit trail.

type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusDone       AppointmentStatus = "done"
)

// Appointment is a repair booking (rendez_vous).
type Appointment struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	DeviceID    *int64            `json:"device_id,omitempty"`
	Problem     string            `json:"problem"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// TrackingEntry (suivi_reparation) is an immutable status snapshot.
// Entries are appended, never updated or deleted.
type TrackingEntry struct {
	ID            int64             `json:"id"`
	AppointmentID int64             `json:"appointment_id"`
	Status        AppointmentStatus `json:"status"`
	Note          string            `json:"note,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
