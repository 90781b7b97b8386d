package repository

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

type UserPostgresRepository struct {
	db DBTX
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(db DBTX) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO utilisateurs (nom, email, mot_de_passe, role, consentement, consentement_le)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, cree_le`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Consent, u.ConsentAt,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserPostgresRepository) GetByID(ctx context.Context, id int64) (entities.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UserPostgresRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *UserPostgresRepository) get(ctx context.Context, where string, arg any) (entities.User, error) {
	var u entities.User
	err := r.db.QueryRow(ctx,
		`SELECT id, nom, email, mot_de_passe, role, consentement, consentement_le, cree_le
		 FROM utilisateurs `+where,
		arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Consent, &u.ConsentAt, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserPostgresRepository) UpdateConsent(ctx context.Context, id int64, consent bool) (entities.User, error) {
	var u entities.User
	err := r.db.QueryRow(ctx,
		`UPDATE utilisateurs SET consentement = $1, consentement_le = now() WHERE id = $2
		 RETURNING id, nom, email, mot_de_passe, role, consentement, consentement_le, cree_le`,
		consent, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Consent, &u.ConsentAt, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
