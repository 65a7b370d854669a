package usecase

import (
	"fmt"
	"regexp"

	"paydesk/internal/domain/entities"
)

// Sentinels substituted for repairable format violations.
const (
	RepairedCountry     = "Unknown"
	RepairedPhoneNumber = "N/A"
)

var (
	countryRe  = regexp.MustCompile(`^[A-Z]{2}$`)
	phoneRe    = regexp.MustCompile(`^\+\d{1,15}$`)
	currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)
	emailRe    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
)

// FatalViolationError aborts a whole ingestion batch. Country and phone are
// cosmetic identity fields and safe to coerce to a sentinel; currency decides
// monetary meaning and email is an outbound contact point, so neither may pass
// through corrupted.
type FatalViolationError struct {
	Field string
	Count int
}

func (e *FatalViolationError) Error() string {
	return fmt.Sprintf("invalid %s format on %d record(s)", e.Field, e.Count)
}

// RepairRecord replaces malformed country and phone values in place with their
// sentinels, incrementing counts per replaced field. Runs on the filled record,
// so a defaulted sentinel that fails its own pattern is counted too.
func RepairRecord(r *entities.RawPayment, counts FieldCounts) {
	if r.PayeeCountry != nil && !countryRe.MatchString(*r.PayeeCountry) {
		v := RepairedCountry
		r.PayeeCountry = &v
		counts[entities.FieldCountry]++
	}
	if r.PayeePhoneNumber != nil && !phoneRe.MatchString(*r.PayeePhoneNumber) {
		v := RepairedPhoneNumber
		r.PayeePhoneNumber = &v
		counts[entities.FieldPhoneNumber]++
	}
}

// CheckFatal validates currency and email across the filled batch. Any miss
// fails the whole batch with a FatalViolationError naming the first offending
// field and how many records violated it.
func CheckFatal(records []entities.RawPayment) error {
	if n := countInvalid(records, currencyRe, func(r entities.RawPayment) *string { return r.Currency }); n > 0 {
		return &FatalViolationError{Field: entities.FieldCurrency, Count: n}
	}
	if n := countInvalid(records, emailRe, func(r entities.RawPayment) *string { return r.PayeeEmail }); n > 0 {
		return &FatalViolationError{Field: entities.FieldEmail, Count: n}
	}
	return nil
}

func countInvalid(records []entities.RawPayment, re *regexp.Regexp, get func(entities.RawPayment) *string) int {
	n := 0
	for _, r := range records {
		v := get(r)
		if v == nil || !re.MatchString(*v) {
			n++
		}
	}
	return n
}
