package routes

import (
	"atelier_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/produits"
	PathReviews  = "/reviews"
)

func addShopRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, reviewHandler *handlers.ReviewHandler, auth, staffOnly, adminAudit gin.HandlerFunc) {
	products := rg.Group(PathProducts)
	{
		// Catalog reads are public.
		products.GET("", productHandler.ListProducts)
		products.GET("/reconditionnes", productHandler.ListDevices)
		products.GET("/:id", productHandler.GetProduct)

		staff := products.Group("", auth, staffOnly, adminAudit)
		{
			staff.POST("", productHandler.CreateProduct)
			staff.POST("/reconditionnes", productHandler.CreateDevice)
			staff.PUT("/:id", productHandler.UpdateProduct)
			staff.DELETE("/:id", productHandler.DeleteProduct)
			staff.POST("/:id/stock", productHandler.AdjustStock)
		}
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("/produit/:id", reviewHandler.ListByProduct)
		reviews.POST("", auth, reviewHandler.CreateReview)
	}
}
