package routes

import (
	"paydesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathEvidence = "/evidence"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, ingestionHandler *handlers.IngestionHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/import", ingestionHandler.ImportPayments)
		payments.PATCH("/:payment_id", paymentHandler.UpdatePayment)
		payments.DELETE("/:payment_id", paymentHandler.DeletePayment)
		payments.POST("/:payment_id/evidence", paymentHandler.UploadEvidence)
	}

	evidence := rg.Group(PathEvidence)
	{
		evidence.GET("/:file_id", paymentHandler.DownloadEvidence)
	}
}
