package response

import (
	"time"

	"atelier_backend/internal/domain/entities"
)

type UserResponse struct {
	ID           int64  `json:"id"`
	Nom          string `json:"nom"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Consentement bool   `json:"consentement"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Nom:          u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		Consentement: u.Consent,
	}
}

type LoginResponse struct {
	Token       string       `json:"token"`
	Utilisateur UserResponse `json:"utilisateur"`
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Nom         string  `json:"nom"`
	Description string  `json:"description"`
	Prix        float64 `json:"prix"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Nom: p.Name, Description: p.Description, Prix: p.Price, Stock: p.Stock, Image: p.ImagePath}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromDevice(d entities.RefurbishedDevice) ProductResponse {
	return ProductResponse{ID: d.ID, Nom: d.Name, Description: d.Description, Prix: d.Price, Stock: d.Stock, Image: d.ImagePath}
}

func FromDevices(devices []entities.RefurbishedDevice) []ProductResponse {
	out := make([]ProductResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, FromDevice(d))
	}
	return out
}

type ReviewResponse struct {
	ID            int64     `json:"id"`
	UtilisateurID int64     `json:"utilisateurId"`
	ProduitID     int64     `json:"produitId"`
	Note          int       `json:"note"`
	Commentaire   string    `json:"commentaire,omitempty"`
	CreeLe        time.Time `json:"creeLe"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:            r.ID,
		UtilisateurID: r.UserID,
		ProduitID:     r.ProductID,
		Note:          r.Rating,
		Commentaire:   r.Comment,
		CreeLe:        r.CreatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}

type DeliveryResponse struct {
	ID         int64  `json:"id"`
	CommandeID int64  `json:"commandeId"`
	OptionID   int64  `json:"optionId"`
	Statut     string `json:"statut"`
}

func FromDelivery(d entities.Delivery) DeliveryResponse {
	return DeliveryResponse{ID: d.ID, CommandeID: d.OrderID, OptionID: d.OptionID, Statut: string(d.Status)}
}

type DeliveryOptionResponse struct {
	ID   int64   `json:"id"`
	Nom  string  `json:"nom"`
	Prix float64 `json:"prix"`
}

func FromDeliveryOptions(opts []entities.DeliveryOption) []DeliveryOptionResponse {
	out := make([]DeliveryOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, DeliveryOptionResponse{ID: o.ID, Nom: o.Name, Prix: o.Price})
	}
	return out
}
