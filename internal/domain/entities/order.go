package entities

import "time"

// PaymentStatus tracks the payment lifecycle of an order.
//
// Transitions only happen through the payment workflow: orders are created
// pending, move to paid/failed after gateway confirmation, and refunded is
// reserved for back-office corrections.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is a customer order (commande). Total is always derived from the
// line items, never supplied by the caller.
type Order struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`

	Details []OrderDetail `json:"details,omitempty"`
}

// OrderDetail is one line item. Exactly one of ProductID/DeviceID is set:
// a line references either a sellable product or a refurbished device.
type OrderDetail struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	ProductID *int64  `json:"product_id,omitempty"`
	DeviceID  *int64  `json:"device_id,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LineTotal is quantity times unit price for this line.
func (d OrderDetail) LineTotal() float64 {
	return float64(d.Quantity) * d.UnitPrice
}
