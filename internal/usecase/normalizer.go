package usecase

import "paydesk/internal/domain/entities"

// Defaults substituted for absent mandatory fields.
const (
	DefaultAddressLine1 = "N/A"
	DefaultCity         = "Unknown"
	DefaultCountry      = "Unknown"
	DefaultPostalCode   = "Unknown"
	DefaultPhoneNumber  = "N/A"
	DefaultEmail        = "N/A"
	DefaultCurrency     = "USD"
	DefaultDueAmount    = 0.0
)

// FieldCounts accumulates per-field occurrence counts across a batch
// (defaulted fields for the normalizer, repaired fields for the validator).
type FieldCounts map[string]int

// NormalizeRecord fills every absent mandatory field of r with its documented
// default and increments counts once per filled field. Absence is always a
// repairable condition; this never fails.
func NormalizeRecord(r *entities.RawPayment, counts FieldCounts) {
	fillString(&r.PayeeAddressLine1, DefaultAddressLine1, entities.FieldAddressLine1, counts)
	fillString(&r.PayeeCity, DefaultCity, entities.FieldCity, counts)
	fillString(&r.PayeeCountry, DefaultCountry, entities.FieldCountry, counts)
	fillString(&r.PayeePostalCode, DefaultPostalCode, entities.FieldPostalCode, counts)
	fillString(&r.PayeePhoneNumber, DefaultPhoneNumber, entities.FieldPhoneNumber, counts)
	fillString(&r.PayeeEmail, DefaultEmail, entities.FieldEmail, counts)
	fillString(&r.Currency, DefaultCurrency, entities.FieldCurrency, counts)
	if r.DueAmount == nil {
		v := DefaultDueAmount
		r.DueAmount = &v
		counts[entities.FieldDueAmount]++
	}
}

func fillString(field **string, def, name string, counts FieldCounts) {
	if *field == nil {
		v := def
		*field = &v
		counts[name]++
	}
}
