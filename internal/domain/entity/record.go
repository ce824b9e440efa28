// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for record keys.
const DateLayout = "2006-01-02"

// Record represents one dated snapshot of the company's financial figures.
// Records are keyed by their date; at most one record exists per date.
type Record struct {
	Date     string // YYYY-MM-DD
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
	CashFlow decimal.Decimal
}

// RecordPatch carries the fields supplied by a caller when updating an
// existing record. Nil fields are left unchanged.
type RecordPatch struct {
	Revenue  *decimal.Decimal
	Expenses *decimal.Decimal
	Profit   *decimal.Decimal
	CashFlow *decimal.Decimal
}

// Apply merges the patch into the record.
func (p RecordPatch) Apply(record *Record) {
	if p.Revenue != nil {
		record.Revenue = *p.Revenue
	}
	if p.Expenses != nil {
		record.Expenses = *p.Expenses
	}
	if p.Profit != nil {
		record.Profit = *p.Profit
	}
	if p.CashFlow != nil {
		record.CashFlow = *p.CashFlow
	}
}

// Today returns the current date in the record key format.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
