package request

type RegisterRequest struct {
	Nom          string `json:"nom" binding:"required"`
	Email        string `json:"email" binding:"required"`
	MotDePasse   string `json:"motDePasse" binding:"required"`
	Consentement bool   `json:"consentement"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	MotDePasse string `json:"motDePasse" binding:"required"`
}

type ConsentRequest struct {
	Consentement bool `json:"consentement"`
}
