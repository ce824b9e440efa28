// Package importer contains file import use cases for business data.
package importer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tabular sources label their columns either with human-readable headers
// ("Company Name", "Cash Flow") or machine-style keys ("companyName",
// "cashFlow"). Lookups walk the accepted spellings in precedence order and
// take the first non-empty cell.

// headerIndex maps a header label to its column position. The first
// occurrence of a label wins.
func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		if _, exists := index[header]; !exists {
			index[header] = i
		}
	}
	return index
}

// cellValue returns the first non-empty cell among the given header
// spellings, or "" when none is present.
func cellValue(index map[string]int, row []string, names ...string) string {
	for _, name := range names {
		i, ok := index[name]
		if !ok || i >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[i]); value != "" {
			return value
		}
	}
	return ""
}

// parseAmount parses a currency cell, defaulting to zero when the cell is
// absent or unparseable.
func parseAmount(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseNumber parses a plain numeric cell, defaulting to zero.
func parseNumber(value string) float64 {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return number
}

// parseCount parses an integer cell, defaulting to zero. Spreadsheet cells
// often render integers as floats, so both forms are accepted.
func parseCount(value string) int {
	trimmed := strings.TrimSpace(value)
	if count, err := strconv.Atoi(trimmed); err == nil {
		return count
	}
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int(number)
	}
	return 0
}
