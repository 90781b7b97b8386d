package repository

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// OrderPostgresRepository persists orders (commandes) and their line items
// (details_commande).
//
// A missing row comes back as a zero-value entity with a nil error; the
// use case translates that into its not-found sentinel.

type OrderPostgresRepository struct {
	db  DBTX
	log *logrus.Logger
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(db DBTX, log *logrus.Logger) *OrderPostgresRepository {
	return &OrderPostgresRepository{db: db, log: log}
}

func (r *OrderPostgresRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO commandes (utilisateur_id, total, statut_paiement)
		 VALUES ($1, $2, $3)
		 RETURNING id, cree_le`,
		o.UserID, o.Total, o.PaymentStatus,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return entities.Order{}, err
	}
	r.log.WithFields(logrus.Fields{"order_id": o.ID, "user_id": o.UserID}).Debug("order row inserted")
	return o, nil
}

func (r *OrderPostgresRepository) AddDetail(ctx context.Context, d entities.OrderDetail) (entities.OrderDetail, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO details_commande (commande_id, produit_a_vendre_id, appareil_reconditionne_id, quantite, prix_unitaire)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		d.OrderID, d.ProductID, d.DeviceID, d.Quantity, d.UnitPrice,
	).Scan(&d.ID)
	if err != nil {
		return entities.OrderDetail{}, err
	}
	return d, nil
}

func (r *OrderPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	var o entities.Order
	err := r.db.QueryRow(ctx,
		`SELECT id, utilisateur_id, total, statut_paiement, cree_le
		 FROM commandes WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.UserID, &o.Total, &o.PaymentStatus, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}

	details, err := r.listDetails(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	o.Details = details
	return o, nil
}

func (r *OrderPostgresRepository) listDetails(ctx context.Context, orderID int64) ([]entities.OrderDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, commande_id, produit_a_vendre_id, appareil_reconditionne_id, quantite, prix_unitaire
		 FROM details_commande WHERE commande_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []entities.OrderDetail
	for rows.Next() {
		var d entities.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.DeviceID, &d.Quantity, &d.UnitPrice); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *OrderPostgresRepository) ListByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, utilisateur_id, total, statut_paiement, cree_le
		 FROM commandes WHERE utilisateur_id = $1 ORDER BY cree_le DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var o entities.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.PaymentStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderPostgresRepository) UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatus) (entities.Order, error) {
	var o entities.Order
	err := r.db.QueryRow(ctx,
		`UPDATE commandes SET statut_paiement = $1 WHERE id = $2
		 RETURNING id, utilisateur_id, total, statut_paiement, cree_le`,
		status, id,
	).Scan(&o.ID, &o.UserID, &o.Total, &o.PaymentStatus, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}
