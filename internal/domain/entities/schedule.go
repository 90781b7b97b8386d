package entities

import "time"

// StoreHours (horaires_magasin) is the opening window for one weekday.
// Open/Close are minutes from midnight so the row carries no date.
type StoreHours struct {
	Weekday time.Weekday `json:"weekday"`
	Open    int          `json:"open"`
	Close   int          `json:"close"`
	Closed  bool         `json:"closed"`
}

// Blackout (indisponibilite) is an admin-defined interval during which no
// appointment slots are offered, independent of existing bookings.
type Blackout struct {
	ID     int64     `json:"id"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Reason string    `json:"reason,omitempty"`
}
