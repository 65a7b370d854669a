package usecase

import (
	"errors"
	"time"

	"paydesk/internal/domain/entities"
)

// ErrMalformedDate marks a payee_due_date that does not parse as YYYY-MM-DD.
// It is a per-record condition: one bad record must not abort a whole listing.
var ErrMalformedDate = errors.New("malformed payee_due_date")

const dueDateLayout = "2006-01-02"

// TotalDue derives the payable total from the three monetary inputs.
// No rounding; consumers format for display.
func TotalDue(dueAmount, discountPercent, taxPercent float64) float64 {
	return dueAmount - dueAmount*discountPercent/100 + dueAmount*taxPercent/100
}

// EffectiveStatus computes the read-time status projection from the stored
// status and the current date. "completed" is sticky and never overridden;
// a past due date yields "overdue", today's date "due_now", a future date
// leaves the stored status unchanged. The result is never persisted.
func EffectiveStatus(stored entities.PaymentStatus, dueDateISO string, today time.Time) (entities.PaymentStatus, error) {
	dueDate, err := time.Parse(dueDateLayout, dueDateISO)
	if err != nil {
		return stored, ErrMalformedDate
	}
	if stored == entities.PaymentStatusCompleted {
		return stored, nil
	}

	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch {
	case dueDate.Before(day):
		return entities.PaymentStatusOverdue, nil
	case dueDate.Equal(day):
		return entities.PaymentStatusDueNow, nil
	}
	return stored, nil
}
