package routes

import (
	"atelier_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders     = "/commandes"
	PathPayments   = "/paiement"
	PathDeliveries = "/livraisons"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler, deliveryHandler *handlers.DeliveryHandler, auth, staffOnly, adminAudit gin.HandlerFunc) {
	orders := rg.Group(PathOrders, auth)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.POST("/create-and-pay", orderHandler.CreateAndPay)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/utilisateur/:id", orderHandler.ListByUser)
		orders.POST("/:id/details", orderHandler.AddDetail)
	}

	payments := rg.Group(PathPayments, auth)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/valider", paymentHandler.ValidatePayment)
	}

	deliveries := rg.Group(PathDeliveries)
	{
		deliveries.GET("/options", deliveryHandler.ListOptions)
		deliveries.POST("", auth, deliveryHandler.ChooseDelivery)
		deliveries.POST("/statut", auth, staffOnly, adminAudit, deliveryHandler.UpdateStatus)
	}
}
