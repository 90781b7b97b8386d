package entities

import "time"

type Role string

const (
	RoleClient   Role = "client"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is an account (utilisateur). PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Consent      bool      `json:"consent"`
	ConsentAt    time.Time `json:"consent_at"`
	CreatedAt    time.Time `json:"created_at"`
}
