package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
	mock_interfaces "atelier_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_Create(t *testing.T) {
	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "   ", Price: 10})
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "Coque", Price: 0})
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("trims name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(products, nil)

		products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.Name != "Coque iPhone" {
					t.Fatalf("expected trimmed name, got %q", p.Name)
				}
				p.ID = 1
				return p, nil
			},
		)

		p, err := uc.Create(context.Background(), entities.Product{Name: "  Coque iPhone  ", Price: 15, Stock: 3})
		if err != nil || p.ID != 1 {
			t.Fatalf("unexpected result: %+v, %v", p, err)
		}
	})
}

func TestProductUseCase_AdjustStock(t *testing.T) {
	t.Run("conflict on existing product means insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(products, nil)

		products.EXPECT().AdjustStock(gomock.Any(), int64(1), -10).Return(interfaces.ErrStockConflict)
		products.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Product{ID: 1, Stock: 2}, nil)

		_, err := uc.AdjustStock(context.Background(), 1, -10)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("conflict on missing product means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(products, nil)

		products.EXPECT().AdjustStock(gomock.Any(), int64(9), -1).Return(interfaces.ErrStockConflict)
		products.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Product{}, nil)

		_, err := uc.AdjustStock(context.Background(), 9, -1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("restock returns fresh product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(products, nil)

		products.EXPECT().AdjustStock(gomock.Any(), int64(1), 5).Return(nil)
		products.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Product{ID: 1, Stock: 8}, nil)

		p, err := uc.AdjustStock(context.Background(), 1, 5)
		if err != nil || p.Stock != 8 {
			t.Fatalf("unexpected result: %+v, %v", p, err)
		}
	})
}

func TestReviewUseCase_Create(t *testing.T) {
	t.Run("rating bounds", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		for _, rating := range []int{0, 6, -1} {
			if _, err := uc.Create(context.Background(), entities.Review{ProductID: 1, Rating: rating}); !errors.Is(err, ErrInvalidReview) {
				t.Fatalf("rating %d: expected ErrInvalidReview, got %v", rating, err)
			}
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewReviewUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Product{}, nil)

		_, err := uc.Create(context.Background(), entities.Review{ProductID: 5, Rating: 4})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("valid review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_interfaces.NewMockIProductRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(reviews, products)

		products.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Product{ID: 5}, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				r.ID = 3
				return r, nil
			},
		)

		r, err := uc.Create(context.Background(), entities.Review{UserID: 1, ProductID: 5, Rating: 5, Comment: "parfait"})
		if err != nil || r.ID != 3 {
			t.Fatalf("unexpected result: %+v, %v", r, err)
		}
	})
}
