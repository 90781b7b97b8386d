package entities

import "time"

// Append-only records tied to a user. None of these are ever updated or
// deleted after creation.

// Session is a login record (sessions table).
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ConsentEntry is one snapshot in the RGPD consent history
// (historique_consentement).
type ConsentEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminLogEntry records a privileged action (logs_admin).
type AdminLogEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
