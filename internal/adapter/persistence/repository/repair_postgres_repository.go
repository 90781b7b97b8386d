package repository

import (
	"context"
	"errors"
	"time"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// AppointmentPostgresRepository persists repair bookings (rendez_vous) and
// their append-only tracking log (suivis_reparation).

type AppointmentPostgresRepository struct {
	db  DBTX
	log *logrus.Logger
}

var _ interfaces.IAppointmentRepository = (*AppointmentPostgresRepository)(nil)

func NewAppointmentPostgresRepository(db DBTX, log *logrus.Logger) *AppointmentPostgresRepository {
	return &AppointmentPostgresRepository{db: db, log: log}
}

func (r *AppointmentPostgresRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO rendez_vous (utilisateur_id, appareil_id, probleme, date_heure, statut)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, cree_le`,
		a.UserID, a.DeviceID, a.Problem, a.ScheduledAt, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return entities.Appointment{}, err
	}
	r.log.WithField("appointment_id", a.ID).Debug("appointment row inserted")
	return a, nil
}

func (r *AppointmentPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Appointment, error) {
	var a entities.Appointment
	err := r.db.QueryRow(ctx,
		`SELECT id, utilisateur_id, appareil_id, probleme, date_heure, statut, cree_le
		 FROM rendez_vous WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.DeviceID, &a.Problem, &a.ScheduledAt, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Appointment{}, nil
	}
	if err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentPostgresRepository) ListByUser(ctx context.Context, userID int64) ([]entities.Appointment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, utilisateur_id, appareil_id, probleme, date_heure, statut, cree_le
		 FROM rendez_vous WHERE utilisateur_id = $1 ORDER BY date_heure`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (r *AppointmentPostgresRepository) ListOn(ctx context.Context, day time.Time) ([]entities.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.db.Query(ctx,
		`SELECT id, utilisateur_id, appareil_id, probleme, date_heure, statut, cree_le
		 FROM rendez_vous WHERE date_heure >= $1 AND date_heure < $2 ORDER BY date_heure`,
		start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]entities.Appointment, error) {
	var out []entities.Appointment
	for rows.Next() {
		var a entities.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.DeviceID, &a.Problem, &a.ScheduledAt, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentPostgresRepository) AppendTracking(ctx context.Context, e entities.TrackingEntry) (entities.TrackingEntry, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO suivis_reparation (rendez_vous_id, statut, note)
		 VALUES ($1, $2, $3)
		 RETURNING id, cree_le`,
		e.AppointmentID, e.Status, e.Note,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return entities.TrackingEntry{}, err
	}
	return e, nil
}

func (r *AppointmentPostgresRepository) ListTracking(ctx context.Context, appointmentID int64) ([]entities.TrackingEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, rendez_vous_id, statut, note, cree_le
		 FROM suivis_reparation WHERE rendez_vous_id = $1 ORDER BY cree_le`,
		appointmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entities.TrackingEntry
	for rows.Next() {
		var e entities.TrackingEntry
		if err := rows.Scan(&e.ID, &e.AppointmentID, &e.Status, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type QuotePostgresRepository struct {
	db DBTX
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(db DBTX) *QuotePostgresRepository {
	return &QuotePostgresRepository{db: db}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO devis (utilisateur_id, modele_id, description, prix_estime, statut)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, cree_le, modifie_le`,
		q.UserID, q.ModelID, q.Description, q.EstimatedPrice, q.Status,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) GetByID(ctx context.Context, id int64) (entities.Quote, error) {
	var q entities.Quote
	err := r.db.QueryRow(ctx,
		`SELECT id, utilisateur_id, modele_id, description, prix_estime, statut, cree_le, modifie_le
		 FROM devis WHERE id = $1`,
		id,
	).Scan(&q.ID, &q.UserID, &q.ModelID, &q.Description, &q.EstimatedPrice, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) ListByUser(ctx context.Context, userID int64) ([]entities.Quote, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, utilisateur_id, modele_id, description, prix_estime, statut, cree_le, modifie_le
		 FROM devis WHERE utilisateur_id = $1 ORDER BY cree_le DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []entities.Quote
	for rows.Next() {
		var q entities.Quote
		if err := rows.Scan(&q.ID, &q.UserID, &q.ModelID, &q.Description, &q.EstimatedPrice, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *QuotePostgresRepository) UpdateStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error) {
	var q entities.Quote
	err := r.db.QueryRow(ctx,
		`UPDATE devis SET statut = $1, modifie_le = now() WHERE id = $2
		 RETURNING id, utilisateur_id, modele_id, description, prix_estime, statut, cree_le, modifie_le`,
		status, id,
	).Scan(&q.ID, &q.UserID, &q.ModelID, &q.Description, &q.EstimatedPrice, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// SchedulePostgresRepository reads the shop calendar: one opening-hours row
// per weekday (horaires_magasin) and blackout windows (indisponibilites).
type SchedulePostgresRepository struct {
	db DBTX
}

var _ interfaces.IScheduleRepository = (*SchedulePostgresRepository)(nil)

func NewSchedulePostgresRepository(db DBTX) *SchedulePostgresRepository {
	return &SchedulePostgresRepository{db: db}
}

func (r *SchedulePostgresRepository) HoursFor(ctx context.Context, weekday time.Weekday) (entities.StoreHours, error) {
	var h entities.StoreHours
	var jour int
	err := r.db.QueryRow(ctx,
		`SELECT jour, ouverture, fermeture, ferme FROM horaires_magasin WHERE jour = $1`,
		int(weekday),
	).Scan(&jour, &h.Open, &h.Close, &h.Closed)
	if errors.Is(err, pgx.ErrNoRows) {
		// No row means the shop is closed that day.
		return entities.StoreHours{Weekday: weekday, Closed: true}, nil
	}
	if err != nil {
		return entities.StoreHours{}, err
	}
	h.Weekday = time.Weekday(jour)
	return h, nil
}

func (r *SchedulePostgresRepository) ListBlackoutsOn(ctx context.Context, day time.Time) ([]entities.Blackout, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.db.Query(ctx,
		`SELECT id, debut, fin, raison FROM indisponibilites
		 WHERE debut < $2 AND fin > $1 ORDER BY debut`,
		start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blackouts []entities.Blackout
	for rows.Next() {
		var b entities.Blackout
		if err := rows.Scan(&b.ID, &b.From, &b.To, &b.Reason); err != nil {
			return nil, err
		}
		blackouts = append(blackouts, b)
	}
	return blackouts, rows.Err()
}
