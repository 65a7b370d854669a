package response

import (
	"paydesk/internal/usecase"
)

// PaymentResponse is one listed payment. payee_payment_status carries the
// read-time effective status; stored_status keeps the persisted value so
// clients can tell a projection from a stored fact.
type PaymentResponse struct {
	PaymentID         string         `json:"payment_id"`
	PayeeAddressLine1 string         `json:"payee_address_line_1"`
	PayeeCity         string         `json:"payee_city"`
	PayeeCountry      string         `json:"payee_country"`
	PayeePostalCode   string         `json:"payee_postal_code"`
	PayeePhoneNumber  string         `json:"payee_phone_number"`
	PayeeEmail        string         `json:"payee_email"`
	Currency          string         `json:"currency"`
	DueAmount         float64        `json:"due_amount"`
	DiscountPercent   float64        `json:"discount_percent"`
	TaxPercent        float64        `json:"tax_percent"`
	PayeeDueDate      string         `json:"payee_due_date"`
	Status            string         `json:"payee_payment_status"`
	StoredStatus      string         `json:"stored_status"`
	TotalDue          float64        `json:"total_due"`
	EvidenceFileID    string         `json:"evidence_file_id,omitempty"`
	Extra             map[string]any `json:"extra,omitempty"`
}

func FromDerivedPayment(dp usecase.DerivedPayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         dp.ID,
		PayeeAddressLine1: dp.PayeeAddressLine1,
		PayeeCity:         dp.PayeeCity,
		PayeeCountry:      dp.PayeeCountry,
		PayeePostalCode:   dp.PayeePostalCode,
		PayeePhoneNumber:  dp.PayeePhoneNumber,
		PayeeEmail:        dp.PayeeEmail,
		Currency:          dp.Currency,
		DueAmount:         dp.DueAmount,
		DiscountPercent:   dp.DiscountPercent,
		TaxPercent:        dp.TaxPercent,
		PayeeDueDate:      dp.PayeeDueDate,
		Status:            string(dp.EffectiveStatus),
		StoredStatus:      string(dp.Payment.Status),
		TotalDue:          dp.TotalDue,
		EvidenceFileID:    dp.EvidenceFileID,
		Extra:             dp.Extra,
	}
}

// RecordErrorResponse marks a record the listing could not fully derive.
type RecordErrorResponse struct {
	PaymentID string `json:"payment_id"`
	Field     string `json:"field"`
	Reason    string `json:"reason"`
}

type ListPaymentsResponse struct {
	Payments []PaymentResponse     `json:"payments"`
	Errors   []RecordErrorResponse `json:"errors,omitempty"`
}

func FromListResult(res usecase.ListResult) ListPaymentsResponse {
	out := ListPaymentsResponse{Payments: make([]PaymentResponse, 0, len(res.Payments))}
	for _, dp := range res.Payments {
		out.Payments = append(out.Payments, FromDerivedPayment(dp))
	}
	for _, re := range res.Errors {
		out.Errors = append(out.Errors, RecordErrorResponse{
			PaymentID: re.PaymentID,
			Field:     re.Field,
			Reason:    re.Reason,
		})
	}
	return out
}

type CreatePaymentResponse struct {
	PaymentID string `json:"payment_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadEvidenceResponse struct {
	FileID string `json:"file_id"`
}

// LoadReportResponse is the outcome of one batch import.
type LoadReportResponse struct {
	RowsRead     int            `json:"rows_read"`
	RowsInserted int            `json:"rows_inserted"`
	Defaulted    map[string]int `json:"defaulted_fields"`
	Repaired     map[string]int `json:"repaired_fields"`
}

func FromLoadReport(r usecase.LoadReport) LoadReportResponse {
	return LoadReportResponse{
		RowsRead:     r.RowsRead,
		RowsInserted: r.RowsInserted,
		Defaulted:    r.Defaulted,
		Repaired:     r.Repaired,
	}
}
