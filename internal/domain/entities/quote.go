package entities

import "time"

// QuoteStatus is the lifecycle of a repair quote (devis). The status is the
// only mutable field after creation.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRefused  QuoteStatus = "refused"
)

type Quote struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"user_id"`
	ModelID        *int64      `json:"model_id,omitempty"`
	Description    string      `json:"description"`
	EstimatedPrice float64     `json:"estimated_price"`
	Status         QuoteStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Brand and Model describe the device catalog quotes refer to (marques /
// modeles).
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Model struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Name    string `json:"name"`
}
