package routes

import (
	"atelier_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRepairs = "/reparations"

func addRepairRoutes(rg *gin.RouterGroup, repairHandler *handlers.RepairHandler, auth, staffOnly, adminAudit gin.HandlerFunc) {
	repairs := rg.Group(PathRepairs)
	{
		// Slot lookup stays public so the booking page can render
		// before login.
		repairs.GET("/creneaux", repairHandler.AvailableSlots)

		repairs.POST("/rdv", auth, repairHandler.CreateAppointment)
		repairs.GET("/rdv/:id", auth, repairHandler.GetAppointment)
		repairs.GET("/rdv/:id/suivi", auth, repairHandler.ListTracking)
		repairs.POST("/suivi", auth, staffOnly, adminAudit, repairHandler.UpdateStatus)

		repairs.POST("/devis", auth, repairHandler.CreateQuote)
		repairs.POST("/devis/:id/accepter", auth, repairHandler.AcceptQuote)
		repairs.POST("/devis/:id/refuser", auth, repairHandler.RefuseQuote)
	}
}
