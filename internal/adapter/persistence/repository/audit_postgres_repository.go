package repository

import (
	"context"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
)

// AuditPostgresRepository covers the insert-only tables. There are no
// update or delete methods on purpose.
type AuditPostgresRepository struct {
	db DBTX
}

var _ interfaces.IAuditRepository = (*AuditPostgresRepository)(nil)

func NewAuditPostgresRepository(db DBTX) *AuditPostgresRepository {
	return &AuditPostgresRepository{db: db}
}

func (r *AuditPostgresRepository) CreateSession(ctx context.Context, s entities.Session) (entities.Session, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sessions (utilisateur_id, jeton, expire_le)
		 VALUES ($1, $2, $3)
		 RETURNING id, cree_le`,
		s.UserID, s.Token, s.ExpiresAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *AuditPostgresRepository) AppendConsent(ctx context.Context, e entities.ConsentEntry) (entities.ConsentEntry, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO historique_consentement (utilisateur_id, consentement)
		 VALUES ($1, $2)
		 RETURNING id, cree_le`,
		e.UserID, e.Consent,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return entities.ConsentEntry{}, err
	}
	return e, nil
}

func (r *AuditPostgresRepository) AppendAdminLog(ctx context.Context, e entities.AdminLogEntry) (entities.AdminLogEntry, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO logs_admin (utilisateur_id, action, detail)
		 VALUES ($1, $2, $3)
		 RETURNING id, cree_le`,
		e.UserID, e.Action, e.Detail,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return entities.AdminLogEntry{}, err
	}
	return e, nil
}
