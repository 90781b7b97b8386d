package usecase

import (
	"context"
	"errors"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
)

var ErrInvalidReview = errors.New("invalid review")

type IReviewUseCase interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]entities.Review, error)
}

type ReviewUseCase struct {
	reviews  interfaces.IReviewRepository
	products interfaces.IProductRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(reviews interfaces.IReviewRepository, products interfaces.IProductRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, products: products}
}

func (u *ReviewUseCase) Create(ctx context.Context, r entities.Review) (entities.Review, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return entities.Review{}, ErrInvalidReview
	}

	product, err := u.products.GetByID(ctx, r.ProductID)
	if err != nil {
		return entities.Review{}, err
	}
	if product.ID == 0 {
		return entities.Review{}, ErrProductNotFound
	}

	return u.reviews.Create(ctx, r)
}

func (u *ReviewUseCase) ListByProduct(ctx context.Context, productID int64) ([]entities.Review, error) {
	return u.reviews.ListByProduct(ctx, productID)
}
