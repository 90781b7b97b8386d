package entities

import "time"

// Product is a sellable catalog item (produit_a_vendre). Stock is mutated
// only through the signed-delta stock update, never assigned directly.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RefurbishedDevice (appareil_reconditionne) is sold alongside products but
// lives in its own table and is referenced by its own line-item column.
type RefurbishedDevice struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
