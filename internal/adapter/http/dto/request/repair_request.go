package request

import (
	"errors"
	"strings"
	"time"
)

var ErrUnparseableDate = errors.New("unparseable date")

// Accepted layouts for appointment dates, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type CreateRdvRequest struct {
	UtilisateurID int64  `json:"utilisateurId" binding:"required"`
	AppareilID    *int64 `json:"appareilId"`
	Probleme      string `json:"probleme"`
	DateHeure     string `json:"dateHeure" binding:"required"`
}

func (r CreateRdvRequest) ResolveDateTime() (time.Time, error) {
	raw := strings.TrimSpace(r.DateHeure)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}

type UpdateStatutRequest struct {
	RdvID  int64  `json:"rdvId" binding:"required"`
	Statut string `json:"statut" binding:"required"`
	Note   string `json:"note"`
}

type CreateDevisRequest struct {
	UtilisateurID int64   `json:"utilisateurId" binding:"required"`
	ModeleID      *int64  `json:"modeleId"`
	Description   string  `json:"description"`
	PrixEstime    float64 `json:"prixEstime" binding:"required"`
}

type UpdateDevisStatutRequest struct {
	DevisID int64  `json:"devisId" binding:"required"`
	Statut  string `json:"statut" binding:"required"`
}
