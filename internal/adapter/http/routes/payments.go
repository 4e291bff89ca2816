package routes

import (
	"moturial_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/card", paymentHandler.ProcessCardPayment)
		payments.POST("/pix", paymentHandler.ProcessPixPayment)
		payments.POST("/boleto", paymentHandler.ProcessBoletoPayment)

		payments.GET("/:external_id/status", paymentHandler.GetPaymentStatus)
		payments.POST("/:external_id/cancel", paymentHandler.CancelPayment)

		payments.GET("/user/:user_id", paymentHandler.GetUserPayments)
		payments.GET("/id/:id", paymentHandler.GetPaymentByID)
		payments.GET("/external/:external_id", paymentHandler.GetPaymentByExternalID)
	}
}
