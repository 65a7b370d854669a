package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"paydesk/internal/adapter/http/handlers/mocks"
	"paydesk/internal/domain/entities"
	"paydesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments", h.ListPayments)
	r.POST("/v1/payments", h.CreatePayment)
	r.PATCH("/v1/payments/:payment_id", h.UpdatePayment)
	r.DELETE("/v1/payments/:payment_id", h.DeletePayment)
	r.POST("/v1/payments/:payment_id/evidence", h.UploadEvidence)
	r.GET("/v1/evidence/:file_id", h.DownloadEvidence)
	return r, uc
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("success with record errors", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		res := usecase.ListResult{
			Payments: []usecase.DerivedPayment{
				{
					Payment:         entities.Payment{ID: "p-1", Status: entities.PaymentStatusPending, DueAmount: 100, TotalDue: 100, PayeeDueDate: "2026-01-01"},
					EffectiveStatus: entities.PaymentStatusOverdue,
				},
			},
			Errors: []usecase.RecordError{{PaymentID: "p-2", Field: entities.FieldDueDate, Reason: "malformed payee_due_date"}},
		}
		uc.EXPECT().List(gomock.Any(), "pending", 2, 5).Return(res, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments?status=pending&page=2&size=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Payments []map[string]any `json:"payments"`
			Errors   []map[string]any `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body.Payments) != 1 || body.Payments[0]["payee_payment_status"] != "overdue" {
			t.Fatalf("unexpected payments: %+v", body.Payments)
		}
		if body.Payments[0]["stored_status"] != "pending" {
			t.Fatalf("stored status missing: %+v", body.Payments[0])
		}
		if len(body.Errors) != 1 || body.Errors[0]["payment_id"] != "p-2" {
			t.Fatalf("unexpected errors: %+v", body.Errors)
		}
	})

	t.Run("defaults page and size", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().List(gomock.Any(), "", 1, 10).Return(usecase.ListResult{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid page value", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().List(gomock.Any(), "", 0, 10).Return(usecase.ListResult{}, usecase.ErrInvalidPage)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments?page=0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("new-id", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"due_amount":100,"currency":"EUR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["payment_id"] != "new-id" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestPaymentHandler_UpdatePayment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().Update(gomock.Any(), "p-404", gomock.Any()).Return(usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/p-404", bytes.NewBufferString(`{"payee_city":"Porto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().Update(gomock.Any(), "p-1", map[string]any{"discount_percent": 50.0}).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/p-1", bytes.NewBufferString(`{"discount_percent":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().Delete(gomock.Any(), "p-404").Return(usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/p-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("failed to write multipart body: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart body: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestPaymentHandler_Evidence(t *testing.T) {
	t.Run("upload missing file part", func(t *testing.T) {
		r, _ := newPaymentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/p-1/evidence", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upload on non-completed payment", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().UploadEvidence(gomock.Any(), "p-1", []byte("proof")).Return("", usecase.ErrPaymentNotCompleted)

		body, contentType := multipartBody(t, "file", "receipt.pdf", []byte("proof"))
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/p-1/evidence", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})

	t.Run("upload success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().UploadEvidence(gomock.Any(), "p-1", []byte("proof")).Return("blob-1", nil)

		body, contentType := multipartBody(t, "file", "receipt.pdf", []byte("proof"))
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/p-1/evidence", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["file_id"] != "blob-1" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("download not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().DownloadEvidence(gomock.Any(), "blob-404").Return(nil, usecase.ErrEvidenceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/evidence/blob-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("download streams bytes", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().DownloadEvidence(gomock.Any(), "blob-1").Return([]byte("proof"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/evidence/blob-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/octet-stream" {
			t.Fatalf("unexpected content type: %s", w.Header().Get("Content-Type"))
		}
		if !bytes.Equal(w.Body.Bytes(), []byte("proof")) {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		r, uc := newPaymentRouter(t)

		uc.EXPECT().DownloadEvidence(gomock.Any(), "blob-1").Return(nil, errors.New("s3 down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/evidence/blob-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
