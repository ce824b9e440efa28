// Package importer contains file import use cases for business data.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/bizpulse/backend/internal/application/store"
	"github.com/bizpulse/backend/internal/domain/entity"
)

// ImportCSVInput represents the input for a CSV import.
type ImportCSVInput struct {
	Content string
}

// ImportResult represents the outcome of an import. Parse failures are
// reported here rather than as errors; rows applied before a failure stay
// applied.
type ImportResult struct {
	Success  bool
	Message  string
	Imported int
}

// ImportCSVUseCase parses CSV text into financial records and applies them
// to the business data store.
//
// The parser splits on literal commas only; commas inside quoted fields are
// not supported. Rows shorter than the header are silently skipped.
type ImportCSVUseCase struct {
	dataStore *store.Store
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(dataStore *store.Store) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		dataStore: dataStore,
	}
}

// Execute performs the CSV import.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) *ImportResult {
	lines := splitLines(input.Content)
	if len(lines) < 2 {
		return &ImportResult{
			Success: false,
			Message: "Import failed: the file must contain a header row and at least one data row",
		}
	}

	headers := splitFields(lines[0])
	index := headerIndex(headers)

	imported := 0
	for _, line := range lines[1:] {
		fields := splitFields(line)
		if len(fields) < len(headers) {
			continue
		}

		date := cellValue(index, fields, "date", "Date")
		if date == "" {
			continue
		}

		uc.dataStore.AddRecord(ctx, entity.Record{
			Date:     date,
			Revenue:  parseAmount(cellValue(index, fields, "revenue", "Revenue")),
			Expenses: parseAmount(cellValue(index, fields, "expenses", "Expenses")),
			Profit:   parseAmount(cellValue(index, fields, "profit", "Profit")),
			CashFlow: parseAmount(cellValue(index, fields, "cashFlow", "Cash Flow")),
		})
		imported++
	}

	return &ImportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully imported %d financial records", imported),
		Imported: imported,
	}
}

// splitLines splits CSV text into lines, discarding blank ones.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitFields splits a CSV line on literal commas, trimming whitespace and
// stripping double-quote characters from each field.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.ReplaceAll(strings.TrimSpace(field), `"`, "")
	}
	return fields
}
