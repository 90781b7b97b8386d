package repository

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

type DeliveryPostgresRepository struct {
	db DBTX
}

var _ interfaces.IDeliveryRepository = (*DeliveryPostgresRepository)(nil)

func NewDeliveryPostgresRepository(db DBTX) *DeliveryPostgresRepository {
	return &DeliveryPostgresRepository{db: db}
}

func (r *DeliveryPostgresRepository) Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO livraisons (commande_id, option_id, statut)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		d.OrderID, d.OptionID, d.Status,
	).Scan(&d.ID)
	if err != nil {
		return entities.Delivery{}, err
	}
	return d, nil
}

func (r *DeliveryPostgresRepository) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatus) (entities.Delivery, error) {
	var d entities.Delivery
	err := r.db.QueryRow(ctx,
		`UPDATE livraisons SET statut = $1 WHERE id = $2
		 RETURNING id, commande_id, option_id, statut`,
		status, id,
	).Scan(&d.ID, &d.OrderID, &d.OptionID, &d.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Delivery{}, nil
	}
	if err != nil {
		return entities.Delivery{}, err
	}
	return d, nil
}

func (r *DeliveryPostgresRepository) ListOptions(ctx context.Context) ([]entities.DeliveryOption, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nom, prix FROM options_livraison ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []entities.DeliveryOption
	for rows.Next() {
		var o entities.DeliveryOption
		if err := rows.Scan(&o.ID, &o.Name, &o.Price); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
