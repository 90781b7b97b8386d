package usecase

import (
	"context"
	"errors"
	"strings"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
)

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id int64) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int) (entities.Product, error)
	ListDevices(ctx context.Context) ([]entities.RefurbishedDevice, error)
	CreateDevice(ctx context.Context, d entities.RefurbishedDevice) (entities.RefurbishedDevice, error)
}

type ProductUseCase struct {
	products interfaces.IProductRepository
	devices  interfaces.IDeviceRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(products interfaces.IProductRepository, devices interfaces.IDeviceRepository) *ProductUseCase {
	return &ProductUseCase{products: products, devices: devices}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Price <= 0 || p.Stock < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	return u.products.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id int64) (entities.Product, error) {
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == 0 {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.products.List(ctx)
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == 0 || p.Name == "" || p.Price <= 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	updated, err := u.products.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == 0 {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}

// AdjustStock applies a signed delta (restock or correction) outside any
// order flow.
func (u *ProductUseCase) AdjustStock(ctx context.Context, id int64, delta int) (entities.Product, error) {
	err := u.products.AdjustStock(ctx, id, delta)
	if errors.Is(err, interfaces.ErrStockConflict) {
		p, getErr := u.products.GetByID(ctx, id)
		if getErr != nil {
			return entities.Product{}, getErr
		}
		if p.ID == 0 {
			return entities.Product{}, ErrProductNotFound
		}
		return entities.Product{}, ErrInsufficientStock
	}
	if err != nil {
		return entities.Product{}, err
	}
	return u.products.GetByID(ctx, id)
}

func (u *ProductUseCase) ListDevices(ctx context.Context) ([]entities.RefurbishedDevice, error) {
	return u.devices.List(ctx)
}

func (u *ProductUseCase) CreateDevice(ctx context.Context, d entities.RefurbishedDevice) (entities.RefurbishedDevice, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" || d.Price <= 0 || d.Stock < 0 {
		return entities.RefurbishedDevice{}, ErrInvalidProduct
	}
	return u.devices.Create(ctx, d)
}
