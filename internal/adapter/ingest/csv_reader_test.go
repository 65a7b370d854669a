package ingest

import (
	"strings"
	"testing"
)

const sampleHeader = "payee_address_line_1,payee_city,payee_country,payee_postal_code,payee_phone_number,payee_email,currency,due_amount,discount_percent,tax_percent,payee_due_date,payee_payment_status"

func TestParseCSV(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		csv := sampleHeader + "\n" +
			"12 Main St,Lisbon,PT,1000-001,+351912345678,payee@example.com,EUR,100.5,10,5,2026-06-01,pending\n"

		raws, err := ParseCSV(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(raws) != 1 {
			t.Fatalf("expected 1 record, got %d", len(raws))
		}

		r := raws[0]
		if r.PayeeCity == nil || *r.PayeeCity != "Lisbon" {
			t.Fatalf("unexpected city: %+v", r.PayeeCity)
		}
		if r.DueAmount == nil || *r.DueAmount != 100.5 {
			t.Fatalf("unexpected due amount: %+v", r.DueAmount)
		}
		if r.DiscountPercent == nil || *r.DiscountPercent != 10 {
			t.Fatalf("unexpected discount: %+v", r.DiscountPercent)
		}
		if r.Status == nil || *r.Status != "pending" {
			t.Fatalf("unexpected status: %+v", r.Status)
		}
	})

	t.Run("empty cells read as absent", func(t *testing.T) {
		csv := sampleHeader + "\n" +
			",Lisbon,,1000-001,,payee@example.com,,,,,2026-06-01,pending\n"

		raws, err := ParseCSV(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := raws[0]
		if r.PayeeAddressLine1 != nil || r.PayeeCountry != nil || r.Currency != nil || r.DueAmount != nil {
			t.Fatalf("expected absent fields to be nil: %+v", r)
		}
		if r.PayeeCity == nil || *r.PayeeCity != "Lisbon" {
			t.Fatalf("present field lost: %+v", r.PayeeCity)
		}
	})

	t.Run("unknown columns preserved in extra", func(t *testing.T) {
		csv := "payee_city,internal_ref\nLisbon,REF-77\n"

		raws, err := ParseCSV(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raws[0].Extra["internal_ref"] != "REF-77" {
			t.Fatalf("unexpected extra: %+v", raws[0].Extra)
		}
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		csv := "due_amount\nlots\n"

		if _, err := ParseCSV(strings.NewReader(csv)); err == nil {
			t.Fatalf("expected error for non-numeric due_amount")
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if _, err := ParseCSV(strings.NewReader("")); err == nil {
			t.Fatalf("expected error for empty input")
		}
	})

	t.Run("header only", func(t *testing.T) {
		raws, err := ParseCSV(strings.NewReader(sampleHeader + "\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(raws) != 0 {
			t.Fatalf("expected empty batch, got %d", len(raws))
		}
	})
}
