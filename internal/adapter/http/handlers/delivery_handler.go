package handlers

import (
	"errors"
	"net/http"

	"atelier_backend/internal/adapter/http/dto/request"
	"atelier_backend/internal/adapter/http/dto/response"
	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase"
	"atelier_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDeliveryPayload = pkg.NewDomainErrorSimple("INVALID_DELIVERY_INPUT", "Invalid delivery payload", http.StatusBadRequest)

type DeliveryHandler struct {
	usecase usecase.IDeliveryUseCase
}

func NewDeliveryHandler(uc usecase.IDeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc}
}

// ChooseDelivery handles POST /api/livraisons/.
func (h *DeliveryHandler) ChooseDelivery(c *gin.Context) {
	var payload request.ChooseDeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliveryPayload.HTTPStatus, errInvalidDeliveryPayload.ToHTTPError())
		return
	}

	delivery, err := h.usecase.Choose(c.Request.Context(), payload.CommandeID, payload.OptionID)
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDelivery(delivery))
}

// UpdateStatus handles POST /api/livraisons/statut.
func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeliveryPayload.HTTPStatus, errInvalidDeliveryPayload.ToHTTPError())
		return
	}

	delivery, err := h.usecase.UpdateStatus(c.Request.Context(), payload.LivraisonID, entities.DeliveryStatus(payload.Statut))
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDelivery(delivery))
}

// ListOptions handles GET /api/livraisons/options.
func (h *DeliveryHandler) ListOptions(c *gin.Context) {
	options, err := h.usecase.ListOptions(c.Request.Context())
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryOptions(options))
}

func mapDeliveryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERY_STATUS", "Invalid delivery status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeliveryNotFound):
		return pkg.NewDomainErrorSimple("DELIVERY_NOT_FOUND", "Delivery not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
