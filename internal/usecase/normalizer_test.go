package usecase

import (
	"testing"

	"paydesk/internal/domain/entities"
)

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }

func canonicalRaw() entities.RawPayment {
	return entities.RawPayment{
		PayeeAddressLine1: strp("12 Main St"),
		PayeeCity:         strp("Lisbon"),
		PayeeCountry:      strp("PT"),
		PayeePostalCode:   strp("1000-001"),
		PayeePhoneNumber:  strp("+351912345678"),
		PayeeEmail:        strp("payee@example.com"),
		Currency:          strp("EUR"),
		DueAmount:         floatp(100),
		DiscountPercent:   floatp(10),
		TaxPercent:        floatp(5),
		PayeeDueDate:      strp("2026-01-15"),
		Status:            strp("pending"),
	}
}

func TestNormalizeRecord_FillsDefaults(t *testing.T) {
	cases := []struct {
		field  string
		clear  func(*entities.RawPayment)
		expect func(entities.RawPayment) bool
	}{
		{entities.FieldAddressLine1, func(r *entities.RawPayment) { r.PayeeAddressLine1 = nil },
			func(r entities.RawPayment) bool { return *r.PayeeAddressLine1 == DefaultAddressLine1 }},
		{entities.FieldCity, func(r *entities.RawPayment) { r.PayeeCity = nil },
			func(r entities.RawPayment) bool { return *r.PayeeCity == DefaultCity }},
		{entities.FieldCountry, func(r *entities.RawPayment) { r.PayeeCountry = nil },
			func(r entities.RawPayment) bool { return *r.PayeeCountry == DefaultCountry }},
		{entities.FieldPostalCode, func(r *entities.RawPayment) { r.PayeePostalCode = nil },
			func(r entities.RawPayment) bool { return *r.PayeePostalCode == DefaultPostalCode }},
		{entities.FieldPhoneNumber, func(r *entities.RawPayment) { r.PayeePhoneNumber = nil },
			func(r entities.RawPayment) bool { return *r.PayeePhoneNumber == DefaultPhoneNumber }},
		{entities.FieldEmail, func(r *entities.RawPayment) { r.PayeeEmail = nil },
			func(r entities.RawPayment) bool { return *r.PayeeEmail == DefaultEmail }},
		{entities.FieldCurrency, func(r *entities.RawPayment) { r.Currency = nil },
			func(r entities.RawPayment) bool { return *r.Currency == DefaultCurrency }},
		{entities.FieldDueAmount, func(r *entities.RawPayment) { r.DueAmount = nil },
			func(r entities.RawPayment) bool { return *r.DueAmount == DefaultDueAmount }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			raw := canonicalRaw()
			tc.clear(&raw)
			counts := FieldCounts{}

			NormalizeRecord(&raw, counts)

			if !tc.expect(raw) {
				t.Fatalf("default not applied for %s: %+v", tc.field, raw)
			}
			if counts[tc.field] != 1 {
				t.Fatalf("expected count 1 for %s, got %d", tc.field, counts[tc.field])
			}
			if len(counts) != 1 {
				t.Fatalf("expected only %s counted, got %+v", tc.field, counts)
			}
		})
	}
}

func TestNormalizeRecord_CanonicalIsNoop(t *testing.T) {
	raw := canonicalRaw()
	counts := FieldCounts{}

	NormalizeRecord(&raw, counts)

	if len(counts) != 0 {
		t.Fatalf("expected no counts on canonical record, got %+v", counts)
	}
	if *raw.PayeeCountry != "PT" || *raw.DueAmount != 100 {
		t.Fatalf("canonical record was modified: %+v", raw)
	}
}

func TestNormalizeRecord_CountsAccumulateAcrossBatch(t *testing.T) {
	counts := FieldCounts{}
	for i := 0; i < 3; i++ {
		raw := canonicalRaw()
		raw.PayeeCity = nil
		NormalizeRecord(&raw, counts)
	}

	if counts[entities.FieldCity] != 3 {
		t.Fatalf("expected 3 defaulted cities, got %d", counts[entities.FieldCity])
	}
}
