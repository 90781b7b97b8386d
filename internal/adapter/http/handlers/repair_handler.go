package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"atelier_backend/internal/adapter/http/dto/request"
	"atelier_backend/internal/adapter/http/dto/response"
	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase"
	"atelier_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRepairPayload = pkg.NewDomainErrorSimple("INVALID_REPAIR_INPUT", "Invalid repair payload", http.StatusBadRequest)

type RepairHandler struct {
	usecase  usecase.IRepairUseCase
	schedule usecase.IScheduleUseCase
}

func NewRepairHandler(uc usecase.IRepairUseCase, sched usecase.IScheduleUseCase) *RepairHandler {
	return &RepairHandler{usecase: uc, schedule: sched}
}

// CreateAppointment handles POST /api/reparations/rdv.
//
// @Summary  Book a repair appointment
// @Tags     reparations
// @Accept   json
// @Produce  json
// @Param    rdv body request.CreateRdvRequest true "appointment payload"
// @Success  201 {object} response.RdvResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /api/reparations/rdv [post]
func (h *RepairHandler) CreateAppointment(c *gin.Context) {
	var payload request.CreateRdvRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	scheduledAt, err := payload.ResolveDateTime()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATETIME", "Unparseable appointment date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rdv, err := h.usecase.CreateAppointment(c.Request.Context(), payload.UtilisateurID, payload.AppareilID, payload.Probleme, scheduledAt)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(rdv))
}

// GetAppointment handles GET /api/reparations/rdv/:id.
func (h *RepairHandler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RDV_ID", "Invalid appointment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rdv, err := h.usecase.GetAppointment(c.Request.Context(), id)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(rdv))
}

// UpdateStatus handles POST /api/reparations/suivi. Appends a tracking
// entry; existing entries are never rewritten.
func (h *RepairHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.UpdateStatus(c.Request.Context(), payload.RdvID, entities.AppointmentStatus(payload.Statut), payload.Note)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTracking(entry))
}

// ListTracking handles GET /api/reparations/rdv/:id/suivi.
func (h *RepairHandler) ListTracking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RDV_ID", "Invalid appointment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListTracking(c.Request.Context(), id)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackingList(entries))
}

// AvailableSlots handles GET /api/reparations/creneaux?date=2025-04-18.
func (h *RepairHandler) AvailableSlots(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	slots, err := h.schedule.AvailableSlots(c.Request.Context(), day)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSlots(day, slots))
}

// CreateQuote handles POST /api/reparations/devis.
func (h *RepairHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateDevisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.UtilisateurID, payload.ModeleID, payload.Description, payload.PrixEstime)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// AcceptQuote handles POST /api/reparations/devis/:id/accepter.
func (h *RepairHandler) AcceptQuote(c *gin.Context) {
	h.resolveQuote(c, h.usecase.AcceptQuote)
}

// RefuseQuote handles POST /api/reparations/devis/:id/refuser.
func (h *RepairHandler) RefuseQuote(c *gin.Context) {
	h.resolveQuote(c, h.usecase.RefuseQuote)
}

func (h *RepairHandler) resolveQuote(c *gin.Context, resolve func(ctx context.Context, id int64) (entities.Quote, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DEVIS_ID", "Invalid quote id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := resolve(c.Request.Context(), id)
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapRepairError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateTime), errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidQuote):
		return pkg.NewDomainErrorSimple("INVALID_REPAIR_INPUT", "Invalid repair input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("RDV_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("DEVIS_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
