package entities

type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusInProgress DeliveryStatus = "in_progress"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
)

// Delivery (livraison) ties an order to a chosen delivery option.
type Delivery struct {
	ID       int64          `json:"id"`
	OrderID  int64          `json:"order_id"`
	OptionID int64          `json:"option_id"`
	Status   DeliveryStatus `json:"status"`
}

// DeliveryOption is an admin-managed shipping method (option_livraison).
type DeliveryOption struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
