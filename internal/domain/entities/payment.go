package entities

// PaymentStatus is the stored payee_payment_status value.
//
// "overdue" and "due_now" are also produced transiently at read time by the
// derivation engine; the read path never writes them back.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusDueNow    PaymentStatus = "due_now"
)

// Payment is the canonical payment record persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalDue is derived from DueAmount/DiscountPercent/TaxPercent and is
//     recomputed whenever any of the three inputs changes. It is never an
//     independent source of truth.
//
// Extra holds fields the schema does not anticipate; they survive
// create/update round-trips untouched.

type Payment struct {
	ID                string         `json:"id"`
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
	Status            PaymentStatus  `json:"payee_payment_status"`
	TotalDue          float64        `json:"total_due"`
	EvidenceFileID    string         `json:"evidence_file_id,omitempty"`
	Extra             map[string]any `json:"extra,omitempty"`
}

// RawPayment is one untrusted row from a batch source, before normalization.
// Pointer fields distinguish "absent" from "present but empty"; the normalizer
// relies on that to count defaulted fields.

type RawPayment struct {
	PayeeAddressLine1 *string
	PayeeCity         *string
	PayeeCountry      *string
	PayeePostalCode   *string
	PayeePhoneNumber  *string
	PayeeEmail        *string
	Currency          *string
	DueAmount         *float64
	DiscountPercent   *float64
	TaxPercent        *float64
	PayeeDueDate      *string
	Status            *string
	Extra             map[string]string
}

// Canonical field names as they appear in the batch source and in stored
// documents.
const (
	FieldAddressLine1    = "payee_address_line_1"
	FieldCity            = "payee_city"
	FieldCountry         = "payee_country"
	FieldPostalCode      = "payee_postal_code"
	FieldPhoneNumber     = "payee_phone_number"
	FieldEmail           = "payee_email"
	FieldCurrency        = "currency"
	FieldDueAmount       = "due_amount"
	FieldDiscountPercent = "discount_percent"
	FieldTaxPercent      = "tax_percent"
	FieldDueDate         = "payee_due_date"
	FieldStatus          = "payee_payment_status"
	FieldTotalDue        = "total_due"
	FieldEvidenceFileID  = "evidence_file_id"
)

// Fields flattens the payment into a field map keyed by the canonical column
// names. Extra entries are merged in without overriding schema fields.
func (p Payment) Fields() map[string]any {
	m := map[string]any{
		FieldAddressLine1:    p.PayeeAddressLine1,
		FieldCity:            p.PayeeCity,
		FieldCountry:         p.PayeeCountry,
		FieldPostalCode:      p.PayeePostalCode,
		FieldPhoneNumber:     p.PayeePhoneNumber,
		FieldEmail:           p.PayeeEmail,
		FieldCurrency:        p.Currency,
		FieldDueAmount:       p.DueAmount,
		FieldDiscountPercent: p.DiscountPercent,
		FieldTaxPercent:      p.TaxPercent,
		FieldDueDate:         p.PayeeDueDate,
		FieldStatus:          string(p.Status),
		FieldTotalDue:        p.TotalDue,
	}
	if p.EvidenceFileID != "" {
		m[FieldEvidenceFileID] = p.EvidenceFileID
	}
	for k, v := range p.Extra {
		if _, known := m[k]; !known {
			m[k] = v
		}
	}
	return m
}

// PaymentFromFields builds a Payment from an arbitrary field map. Known fields
// land on the typed struct; everything else is kept in Extra. Numeric values
// accept float64 and JSON-decoded variants.
func PaymentFromFields(fields map[string]any) Payment {
	p := Payment{}
	for k, v := range fields {
		switch k {
		case "id":
			p.ID = asString(v)
		case FieldAddressLine1:
			p.PayeeAddressLine1 = asString(v)
		case FieldCity:
			p.PayeeCity = asString(v)
		case FieldCountry:
			p.PayeeCountry = asString(v)
		case FieldPostalCode:
			p.PayeePostalCode = asString(v)
		case FieldPhoneNumber:
			p.PayeePhoneNumber = asString(v)
		case FieldEmail:
			p.PayeeEmail = asString(v)
		case FieldCurrency:
			p.Currency = asString(v)
		case FieldDueAmount:
			p.DueAmount = asFloat(v)
		case FieldDiscountPercent:
			p.DiscountPercent = asFloat(v)
		case FieldTaxPercent:
			p.TaxPercent = asFloat(v)
		case FieldDueDate:
			p.PayeeDueDate = asString(v)
		case FieldStatus:
			p.Status = PaymentStatus(asString(v))
		case FieldTotalDue:
			p.TotalDue = asFloat(v)
		case FieldEvidenceFileID:
			p.EvidenceFileID = asString(v)
		default:
			if p.Extra == nil {
				p.Extra = map[string]any{}
			}
			p.Extra[k] = v
		}
	}
	return p
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
