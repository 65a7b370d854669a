package handlers

import (
	"errors"
	"log"
	"net/http"

	response "paydesk/internal/adapter/http/dto/response"
	"paydesk/internal/adapter/ingest"
	"paydesk/internal/usecase"
	"paydesk/pkg"

	"github.com/gin-gonic/gin"
)

// IngestionHandler handles on-demand batch imports of tabular payment files.

type IngestionHandler struct {
	usecase usecase.IIngestionUseCase
}

func NewIngestionHandler(uc usecase.IIngestionUseCase) *IngestionHandler {
	return &IngestionHandler{usecase: uc}
}

// ImportPayments accepts a multipart CSV under "file", runs the full
// normalize/validate/derive pipeline and reports what was repaired. A fatal
// currency or email violation rejects the whole batch with nothing persisted.
func (h *IngestionHandler) ImportPayments(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing csv file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unreadable csv file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	raws, err := ingest.ParseCSV(file)
	if err != nil {
		log.Printf("[ingestion][handler] csv parse failed file=%s err=%v", fileHeader.Filename, err)
		appErr := pkg.NewDomainError("INVALID_CSV", "Could not parse csv file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.ImportBatch(c.Request.Context(), raws)
	if err != nil {
		log.Printf("[ingestion][handler] import failed file=%s rows=%d err=%v", fileHeader.Filename, report.RowsRead, err)
		appErr := mapIngestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ingestion][handler] import success file=%s rows_inserted=%d", fileHeader.Filename, report.RowsInserted)

	c.JSON(http.StatusOK, response.FromLoadReport(report))
}

func mapIngestionError(err error) *pkg.AppError {
	var fatal *usecase.FatalViolationError
	switch {
	case errors.As(err, &fatal):
		return pkg.NewDomainError("INVALID_BATCH", "Batch rejected: invalid "+fatal.Field, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIngestionPersistence):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Could not persist batch", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
