package interfaces

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
)

// ErrStockConflict is returned by AdjustStock when the signed delta would
// drive stock negative or the target row does not exist. Callers that need
// to tell the two apart follow up with a lookup inside the same
// transaction.
var ErrStockConflict = errors.New("stock update rejected")

// IProductRepository abstracts persistence for sellable products.
//
// AdjustStock applies a signed delta and fails when the resulting stock
// would go negative or the product does not exist.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id int64) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int) error
}

// IDeviceRepository is the refurbished-device twin of IProductRepository.
type IDeviceRepository interface {
	Create(ctx context.Context, d entities.RefurbishedDevice) (entities.RefurbishedDevice, error)
	GetByID(ctx context.Context, id int64) (entities.RefurbishedDevice, error)
	List(ctx context.Context) ([]entities.RefurbishedDevice, error)
	AdjustStock(ctx context.Context, id int64, delta int) error
}
