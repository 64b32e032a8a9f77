package routes

import (
	"github.com/gin-gonic/gin"

	"mltransport/handlers"
)

// RegisterPaymentRoutes registers the payment pipeline endpoints.
func RegisterPaymentRoutes(r *gin.Engine, h *handlers.PaymentHandler) {
	api := r.Group("/api")
	{
		api.POST("/create-payment-link", h.CreatePaymentLink)
		api.POST("/confirm-booking", h.ConfirmBooking)
	}

	r.GET("/healthz", handlers.HealthHandler)
}
