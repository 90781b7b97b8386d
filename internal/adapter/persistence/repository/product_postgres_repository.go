package repository

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

type ProductPostgresRepository struct {
	db  DBTX
	log *logrus.Logger
}

var _ interfaces.IProductRepository = (*ProductPostgresRepository)(nil)

func NewProductPostgresRepository(db DBTX, log *logrus.Logger) *ProductPostgresRepository {
	return &ProductPostgresRepository{db: db, log: log}
}

func (r *ProductPostgresRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO produits_a_vendre (nom, description, prix, stock, image)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, cree_le`,
		p.Name, p.Description, p.Price, p.Stock, p.ImagePath,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Product, error) {
	var p entities.Product
	err := r.db.QueryRow(ctx,
		`SELECT id, nom, description, prix, stock, image, cree_le
		 FROM produits_a_vendre WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImagePath, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Product{}, nil
	}
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductPostgresRepository) List(ctx context.Context) ([]entities.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nom, description, prix, stock, image, cree_le
		 FROM produits_a_vendre ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entities.Product
	for rows.Next() {
		var p entities.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImagePath, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductPostgresRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	var out entities.Product
	err := r.db.QueryRow(ctx,
		`UPDATE produits_a_vendre SET nom = $1, description = $2, prix = $3, image = $4
		 WHERE id = $5
		 RETURNING id, nom, description, prix, stock, image, cree_le`,
		p.Name, p.Description, p.Price, p.ImagePath, p.ID,
	).Scan(&out.ID, &out.Name, &out.Description, &out.Price, &out.Stock, &out.ImagePath, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Product{}, nil
	}
	if err != nil {
		return entities.Product{}, err
	}
	return out, nil
}

func (r *ProductPostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM produits_a_vendre WHERE id = $1`, id)
	return err
}

// AdjustStock applies a signed delta in a single guarded UPDATE. Zero rows
// affected means the product is missing or the delta would underflow;
// either way the enclosing transaction must roll back.
func (r *ProductPostgresRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE produits_a_vendre SET stock = stock + $1
		 WHERE id = $2 AND stock + $1 >= 0`,
		delta, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		r.log.WithFields(logrus.Fields{"product_id": id, "delta": delta}).Warn("stock update rejected")
		return interfaces.ErrStockConflict
	}
	return nil
}

// DevicePostgresRepository is the refurbished-device twin of the product
// repository (appareils_reconditionnes).
type DevicePostgresRepository struct {
	db  DBTX
	log *logrus.Logger
}

var _ interfaces.IDeviceRepository = (*DevicePostgresRepository)(nil)

func NewDevicePostgresRepository(db DBTX, log *logrus.Logger) *DevicePostgresRepository {
	return &DevicePostgresRepository{db: db, log: log}
}

func (r *DevicePostgresRepository) Create(ctx context.Context, d entities.RefurbishedDevice) (entities.RefurbishedDevice, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO appareils_reconditionnes (nom, description, prix, stock, image)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, cree_le`,
		d.Name, d.Description, d.Price, d.Stock, d.ImagePath,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return entities.RefurbishedDevice{}, err
	}
	return d, nil
}

func (r *DevicePostgresRepository) GetByID(ctx context.Context, id int64) (entities.RefurbishedDevice, error) {
	var d entities.RefurbishedDevice
	err := r.db.QueryRow(ctx,
		`SELECT id, nom, description, prix, stock, image, cree_le
		 FROM appareils_reconditionnes WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Stock, &d.ImagePath, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.RefurbishedDevice{}, nil
	}
	if err != nil {
		return entities.RefurbishedDevice{}, err
	}
	return d, nil
}

func (r *DevicePostgresRepository) List(ctx context.Context) ([]entities.RefurbishedDevice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nom, description, prix, stock, image, cree_le
		 FROM appareils_reconditionnes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []entities.RefurbishedDevice
	for rows.Next() {
		var d entities.RefurbishedDevice
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Stock, &d.ImagePath, &d.CreatedAt); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (r *DevicePostgresRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE appareils_reconditionnes SET stock = stock + $1
		 WHERE id = $2 AND stock + $1 >= 0`,
		delta, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		r.log.WithFields(logrus.Fields{"device_id": id, "delta": delta}).Warn("stock update rejected")
		return interfaces.ErrStockConflict
	}
	return nil
}
