package routes

import (
	"atelier_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUsers = "/utilisateurs"

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, auth gin.HandlerFunc) {
	users := rg.Group(PathUsers)
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/:id", auth, userHandler.GetProfile)
		users.POST("/:id/consentement", auth, userHandler.UpdateConsent)
	}
}
