package repository

import (
	"context"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
)

type ReviewPostgresRepository struct {
	db DBTX
}

var _ interfaces.IReviewRepository = (*ReviewPostgresRepository)(nil)

func NewReviewPostgresRepository(db DBTX) *ReviewPostgresRepository {
	return &ReviewPostgresRepository{db: db}
}

func (r *ReviewPostgresRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO avis (utilisateur_id, produit_id, note, commentaire)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, cree_le`,
		rv.UserID, rv.ProductID, rv.Rating, rv.Comment,
	).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewPostgresRepository) ListByProduct(ctx context.Context, productID int64) ([]entities.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, utilisateur_id, produit_id, note, commentaire, cree_le
		 FROM avis WHERE produit_id = $1 ORDER BY cree_le DESC`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []entities.Review
	for rows.Next() {
		var rv entities.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
