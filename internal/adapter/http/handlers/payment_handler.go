package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "paydesk/internal/adapter/http/dto/request"
	response "paydesk/internal/adapter/http/dto/response"
	"paydesk/internal/usecase"
	"paydesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment records and their evidence
// attachments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ListPayments returns one page of payments with read-time derivations
// applied. Records whose due date cannot be parsed are flagged in the errors
// array instead of failing the page.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var q request.ListPaymentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.List(c.Request.Context(), q.Status, q.Page, q.Size)
	if err != nil {
		log.Printf("[payment][handler] list failed status=%q page=%d size=%d err=%v", q.Status, q.Page, q.Size, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListResult(res))
}

// CreatePayment persists an arbitrary field map as-is and returns the new id.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	id, err := h.usecase.Create(c.Request.Context(), fields)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatePaymentResponse{PaymentID: id})
}

// UpdatePayment merges a partial field map into the stored record.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), paymentID, patch); err != nil {
		log.Printf("[payment][handler] update failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Payment updated successfully"})
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	if err := h.usecase.Delete(c.Request.Context(), paymentID); err != nil {
		log.Printf("[payment][handler] delete failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Payment deleted successfully"})
}

// UploadEvidence accepts a multipart "file" part and links the stored blob to
// the payment. Only payments stored as "completed" may carry evidence.
func (h *PaymentHandler) UploadEvidence(c *gin.Context) {
	paymentID := c.Param("payment_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	blobID, err := h.usecase.UploadEvidence(c.Request.Context(), paymentID, data)
	if err != nil {
		log.Printf("[payment][handler] evidence upload failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UploadEvidenceResponse{FileID: blobID})
}

// DownloadEvidence streams the blob back as an attachment.
func (h *PaymentHandler) DownloadEvidence(c *gin.Context) {
	fileID := c.Param("file_id")

	data, err := h.usecase.DownloadEvidence(c.Request.Context(), fileID)
	if err != nil {
		log.Printf("[payment][handler] evidence download failed file_id=%s err=%v", fileID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="evidence"`)
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPage),
		errors.Is(err, usecase.ErrEmptyPatch),
		errors.Is(err, usecase.ErrEmptyEvidence):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvidenceNotFound):
		return pkg.NewDomainErrorSimple("EVIDENCE_NOT_FOUND", "Evidence file not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Payment must be marked as completed", http.StatusPreconditionFailed)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
