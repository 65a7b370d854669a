package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"paydesk/internal/domain/entities"
	"paydesk/internal/usecase/interfaces"
)

var ErrIngestionPersistence = errors.New("ingestion persistence failure")

// LoadReport summarizes one ingestion batch: how many rows were read and
// inserted and, per field, how many records needed a default or a sentinel
// repair.
type LoadReport struct {
	RowsRead     int            `json:"rows_read"`
	RowsInserted int            `json:"rows_inserted"`
	Defaulted    map[string]int `json:"defaulted_fields"`
	Repaired     map[string]int `json:"repaired_fields"`
}

// IIngestionUseCase runs the normalize -> validate -> derive pipeline over a
// raw batch and persists the canonical records. Invokable on demand, not only
// at boot.

type IIngestionUseCase interface {
	ImportBatch(ctx context.Context, raws []entities.RawPayment) (LoadReport, error)
}

type IngestionUseCase struct {
	repo interfaces.IPaymentRepository
}

var _ IIngestionUseCase = (*IngestionUseCase)(nil)

func NewIngestionUseCase(repo interfaces.IPaymentRepository) *IngestionUseCase {
	return &IngestionUseCase{repo: repo}
}

// ImportBatch is all-or-nothing at the pipeline level: the whole batch is
// normalized and validated before anything is written, and a fatal currency or
// email violation rejects every row. Effective status is never computed here;
// only total_due is derived at ingestion time.
func (u *IngestionUseCase) ImportBatch(ctx context.Context, raws []entities.RawPayment) (LoadReport, error) {
	report := LoadReport{
		RowsRead:  len(raws),
		Defaulted: FieldCounts{},
		Repaired:  FieldCounts{},
	}
	log.Printf("[ingestion][usecase] import start rows=%d", len(raws))

	filled := make([]entities.RawPayment, len(raws))
	copy(filled, raws)
	for i := range filled {
		NormalizeRecord(&filled[i], report.Defaulted)
		RepairRecord(&filled[i], report.Repaired)
	}
	for field, n := range report.Defaulted {
		log.Printf("[ingestion][usecase] defaulted field=%s count=%d", field, n)
	}
	for field, n := range report.Repaired {
		log.Printf("[ingestion][usecase] repaired field=%s count=%d", field, n)
	}

	if err := CheckFatal(filled); err != nil {
		log.Printf("[ingestion][usecase] fatal validation err=%v", err)
		return report, err
	}

	canonical := make([]entities.Payment, 0, len(filled))
	for _, r := range filled {
		canonical = append(canonical, toCanonical(r))
	}

	ids, err := u.repo.InsertMany(ctx, canonical)
	if err != nil {
		// Persistence failures are reported, never re-raised as a crash.
		log.Printf("[ingestion][usecase] bulk insert failed rows=%d err=%v", len(canonical), err)
		return report, fmt.Errorf("%w: %v", ErrIngestionPersistence, err)
	}

	report.RowsInserted = len(ids)
	log.Printf("[ingestion][usecase] import success rows_inserted=%d", report.RowsInserted)
	return report, nil
}

func toCanonical(r entities.RawPayment) entities.Payment {
	p := entities.Payment{
		PayeeAddressLine1: deref(r.PayeeAddressLine1),
		PayeeCity:         deref(r.PayeeCity),
		PayeeCountry:      deref(r.PayeeCountry),
		PayeePostalCode:   deref(r.PayeePostalCode),
		PayeePhoneNumber:  deref(r.PayeePhoneNumber),
		PayeeEmail:        deref(r.PayeeEmail),
		Currency:          deref(r.Currency),
		DueAmount:         derefFloat(r.DueAmount),
		DiscountPercent:   derefFloat(r.DiscountPercent),
		TaxPercent:        derefFloat(r.TaxPercent),
		PayeeDueDate:      deref(r.PayeeDueDate),
		Status:            entities.PaymentStatus(deref(r.Status)),
	}
	p.TotalDue = TotalDue(p.DueAmount, p.DiscountPercent, p.TaxPercent)
	if len(r.Extra) > 0 {
		p.Extra = make(map[string]any, len(r.Extra))
		for k, v := range r.Extra {
			p.Extra[k] = v
		}
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
