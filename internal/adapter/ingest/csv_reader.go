package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"paydesk/internal/domain/entities"
)

// ParseCSV reads one tabular payment source, one row per payment, header row
// first. Columns are matched by name against the canonical field set; unknown
// columns are preserved in Extra. Empty cells read as absent so the normalizer
// can count them. due_amount, discount_percent and tax_percent are numeric;
// everything else is text.
func ParseCSV(r io.Reader) ([]entities.RawPayment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("payments csv: failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var raws []entities.RawPayment
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("payments csv: failed to read row %d: %w", row+1, err)
		}
		row++

		raw, err := rowToRaw(header, record, row)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func rowToRaw(header, record []string, row int) (entities.RawPayment, error) {
	var raw entities.RawPayment
	for i, col := range header {
		if i >= len(record) {
			break
		}
		cell := strings.TrimSpace(record[i])
		if cell == "" {
			continue
		}

		switch col {
		case entities.FieldAddressLine1:
			raw.PayeeAddressLine1 = strptr(cell)
		case entities.FieldCity:
			raw.PayeeCity = strptr(cell)
		case entities.FieldCountry:
			raw.PayeeCountry = strptr(cell)
		case entities.FieldPostalCode:
			raw.PayeePostalCode = strptr(cell)
		case entities.FieldPhoneNumber:
			raw.PayeePhoneNumber = strptr(cell)
		case entities.FieldEmail:
			raw.PayeeEmail = strptr(cell)
		case entities.FieldCurrency:
			raw.Currency = strptr(cell)
		case entities.FieldDueDate:
			raw.PayeeDueDate = strptr(cell)
		case entities.FieldStatus:
			raw.Status = strptr(cell)
		case entities.FieldDueAmount, entities.FieldDiscountPercent, entities.FieldTaxPercent:
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return entities.RawPayment{}, fmt.Errorf("payments csv: row %d: column %s is not numeric: %q", row, col, cell)
			}
			switch col {
			case entities.FieldDueAmount:
				raw.DueAmount = &v
			case entities.FieldDiscountPercent:
				raw.DiscountPercent = &v
			case entities.FieldTaxPercent:
				raw.TaxPercent = &v
			}
		default:
			if raw.Extra == nil {
				raw.Extra = map[string]string{}
			}
			raw.Extra[col] = cell
		}
	}
	return raw, nil
}

func strptr(s string) *string { return &s }
