package request

import (
	"encoding/json"

	"atelier_backend/internal/usecase"
)

// OrderLineRequest is one line of an incoming order. Field names follow
// the public API contract consumed by the storefront.
type OrderLineRequest struct {
	ProduitAVendreID        *int64  `json:"produitAVendreId"`
	AppareilReconditionneID *int64  `json:"appareilReconditionneId"`
	Quantite                int     `json:"quantite"`
	PrixUnitaire            float64 `json:"prixUnitaire"`
}

type CreateOrderRequest struct {
	UtilisateurID int64              `json:"utilisateurId" binding:"required"`
	Details       []OrderLineRequest `json:"details" binding:"required"`
	Email         string             `json:"email"`
}

// CreateAndPayRequest extends order creation with the raw payment payload
// forwarded to the gateway.
type CreateAndPayRequest struct {
	CreateOrderRequest
	Paiement json.RawMessage `json:"paiement"`
}

type AddDetailRequest struct {
	OrderLineRequest
}

func (r CreateOrderRequest) ToLineItems() []usecase.LineItem {
	items := make([]usecase.LineItem, 0, len(r.Details))
	for _, d := range r.Details {
		items = append(items, usecase.LineItem{
			ProductID: d.ProduitAVendreID,
			DeviceID:  d.AppareilReconditionneID,
			Quantity:  d.Quantite,
			UnitPrice: d.PrixUnitaire,
		})
	}
	return items
}

func (r OrderLineRequest) ToLineItem() usecase.LineItem {
	return usecase.LineItem{
		ProductID: r.ProduitAVendreID,
		DeviceID:  r.AppareilReconditionneID,
		Quantity:  r.Quantite,
		UnitPrice: r.PrixUnitaire,
	}
}
