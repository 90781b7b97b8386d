package response

import (
	"time"

	"atelier_backend/internal/domain/entities"
)

type OrderLineResponse struct {
	ID                      int64   `json:"id"`
	ProduitAVendreID        *int64  `json:"produitAVendreId,omitempty"`
	AppareilReconditionneID *int64  `json:"appareilReconditionneId,omitempty"`
	Quantite                int     `json:"quantite"`
	PrixUnitaire            float64 `json:"prixUnitaire"`
}

type OrderResponse struct {
	ID             int64               `json:"id"`
	UtilisateurID  int64               `json:"utilisateurId"`
	Total          float64             `json:"total"`
	StatutPaiement string              `json:"statutPaiement"`
	CreeLe         time.Time           `json:"creeLe"`
	Details        []OrderLineResponse `json:"details,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID,
		UtilisateurID:  o.UserID,
		Total:          o.Total,
		StatutPaiement: string(o.PaymentStatus),
		CreeLe:         o.CreatedAt,
	}
	for _, d := range o.Details {
		resp.Details = append(resp.Details, OrderLineResponse{
			ID:                      d.ID,
			ProduitAVendreID:        d.ProductID,
			AppareilReconditionneID: d.DeviceID,
			Quantite:                d.Quantity,
			PrixUnitaire:            d.UnitPrice,
		})
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
