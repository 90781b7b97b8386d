package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"atelier_backend/internal/adapter/http/dto/request"
	"atelier_backend/internal/adapter/http/dto/response"
	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase"
	"atelier_backend/pkg"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// CreateReview handles POST /api/reviews/.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var payload request.CreateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	review, err := h.usecase.Create(c.Request.Context(), entities.Review{
		UserID:    payload.UtilisateurID,
		ProductID: payload.ProduitID,
		Rating:    payload.Note,
		Comment:   payload.Commentaire,
	})
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(review))
}

// ListByProduct handles GET /api/reviews/produit/:id.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reviews, err := h.usecase.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReview):
		return pkg.NewDomainErrorSimple("INVALID_REVIEW", "Rating must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
