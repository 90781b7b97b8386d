package request

import "encoding/json"

type CreateReviewRequest struct {
	UtilisateurID int64  `json:"utilisateurId" binding:"required"`
	ProduitID     int64  `json:"produitId" binding:"required"`
	Note          int    `json:"note" binding:"required"`
	Commentaire   string `json:"commentaire"`
}

// CreatePaymentRequest carries the raw provider payload; it is stored and
// forwarded as-is to support varying gateway schemas.
type CreatePaymentRequest struct {
	CommandeID int64           `json:"commandeId" binding:"required"`
	Paiement   json.RawMessage `json:"paiement"`
}

type ValidatePaymentRequest struct {
	CommandeID     int64  `json:"commandeId" binding:"required"`
	ProviderStatus string `json:"providerStatus" binding:"required"`
}

type ChooseDeliveryRequest struct {
	CommandeID int64 `json:"commandeId" binding:"required"`
	OptionID   int64 `json:"optionId" binding:"required"`
}

type UpdateDeliveryStatusRequest struct {
	LivraisonID int64  `json:"livraisonId" binding:"required"`
	Statut      string `json:"statut" binding:"required"`
}
