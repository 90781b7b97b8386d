package response

import (
	"time"

	"atelier_backend/internal/domain/entities"
)

type RdvResponse struct {
	ID            int64     `json:"id"`
	UtilisateurID int64     `json:"utilisateurId"`
	AppareilID    *int64    `json:"appareilId,omitempty"`
	Probleme      string    `json:"probleme"`
	DateHeure     time.Time `json:"dateHeure"`
	Statut        string    `json:"statut"`
}

func FromAppointment(a entities.Appointment) RdvResponse {
	return RdvResponse{
		ID:            a.ID,
		UtilisateurID: a.UserID,
		AppareilID:    a.DeviceID,
		Probleme:      a.Problem,
		DateHeure:     a.ScheduledAt,
		Statut:        string(a.Status),
	}
}

type SuiviResponse struct {
	ID     int64     `json:"id"`
	RdvID  int64     `json:"rdvId"`
	Statut string    `json:"statut"`
	Note   string    `json:"note,omitempty"`
	CreeLe time.Time `json:"creeLe"`
}

func FromTracking(e entities.TrackingEntry) SuiviResponse {
	return SuiviResponse{
		ID:     e.ID,
		RdvID:  e.AppointmentID,
		Statut: string(e.Status),
		Note:   e.Note,
		CreeLe: e.CreatedAt,
	}
}

func FromTrackingList(entries []entities.TrackingEntry) []SuiviResponse {
	out := make([]SuiviResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromTracking(e))
	}
	return out
}

type DevisResponse struct {
	ID            int64   `json:"id"`
	UtilisateurID int64   `json:"utilisateurId"`
	ModeleID      *int64  `json:"modeleId,omitempty"`
	Description   string  `json:"description"`
	PrixEstime    float64 `json:"prixEstime"`
	Statut        string  `json:"statut"`
}

func FromQuote(q entities.Quote) DevisResponse {
	return DevisResponse{
		ID:            q.ID,
		UtilisateurID: q.UserID,
		ModeleID:      q.ModelID,
		Description:   q.Description,
		PrixEstime:    q.EstimatedPrice,
		Statut:        string(q.Status),
	}
}

// SlotsResponse lists bookable start times formatted HH:MM.
type SlotsResponse struct {
	Date     string   `json:"date"`
	Creneaux []string `json:"creneaux"`
}

func FromSlots(date time.Time, slots []time.Time) SlotsResponse {
	resp := SlotsResponse{Date: date.Format("2006-01-02"), Creneaux: []string{}}
	for _, s := range slots {
		resp.Creneaux = append(resp.Creneaux, s.Format("15:04"))
	}
	return resp
}
