// Package importer contains file import use cases for business data.
package importer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bizpulse/backend/internal/application/store"
	"github.com/bizpulse/backend/internal/domain/entity"
)

// Accepted sheet name aliases. Missing sheets are skipped, not an error.
var (
	profileSheetNames   = []string{"Business Data", "Company"}
	recordSheetNames    = []string{"Financial Records", "Financials"}
	indicatorSheetNames = []string{"KPIs", "Metrics"}
)

// ImportWorkbookInput represents the input for a spreadsheet import.
type ImportWorkbookInput struct {
	Content []byte
}

// ImportWorkbookUseCase parses an xlsx/xls workbook into business data and
// applies it to the store sheet by sheet.
type ImportWorkbookUseCase struct {
	dataStore *store.Store
}

// NewImportWorkbookUseCase creates a new ImportWorkbookUseCase instance.
func NewImportWorkbookUseCase(dataStore *store.Store) *ImportWorkbookUseCase {
	return &ImportWorkbookUseCase{
		dataStore: dataStore,
	}
}

// Execute performs the workbook import. Rows applied before a parse failure
// stay applied; there is no rollback.
func (uc *ImportWorkbookUseCase) Execute(ctx context.Context, input ImportWorkbookInput) *ImportResult {
	workbook, err := excelize.OpenReader(bytes.NewReader(input.Content))
	if err != nil {
		return &ImportResult{
			Success: false,
			Message: fmt.Sprintf("Import failed: %v", err),
		}
	}
	defer workbook.Close()

	imported := 0

	if rows, ok := sheetRows(workbook, profileSheetNames); ok {
		if uc.importProfile(ctx, rows) {
			imported++
		}
	}
	if rows, ok := sheetRows(workbook, recordSheetNames); ok {
		imported += uc.importRecords(ctx, rows)
	}
	if rows, ok := sheetRows(workbook, indicatorSheetNames); ok {
		imported += uc.importIndicators(ctx, rows)
	}

	return &ImportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully imported %d items", imported),
		Imported: imported,
	}
}

// importProfile reads only the first data row of the profile sheet.
func (uc *ImportWorkbookUseCase) importProfile(ctx context.Context, rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}
	index := headerIndex(rows[0])
	row := rows[1]

	companyName := cellValue(index, row, "Company Name", "companyName")
	industry := cellValue(index, row, "Industry", "industry")
	employees := parseCount(cellValue(index, row, "Employees", "employees"))
	revenue := parseAmount(cellValue(index, row, "Revenue", "revenue"))
	costs := parseAmount(cellValue(index, row, "Costs", "costs"))
	assets := parseAmount(cellValue(index, row, "Assets", "assets"))
	liabilities := parseAmount(cellValue(index, row, "Liabilities", "liabilities"))
	cashFlow := parseAmount(cellValue(index, row, "Cash Flow", "cashFlow"))

	uc.dataStore.SetProfile(ctx, entity.ProfilePatch{
		CompanyName: &companyName,
		Industry:    &industry,
		Employees:   &employees,
		Revenue:     &revenue,
		Costs:       &costs,
		Assets:      &assets,
		Liabilities: &liabilities,
		CashFlow:    &cashFlow,
	})
	return true
}

// importRecords reads every data row; rows lacking a date under both header
// spellings are skipped.
func (uc *ImportWorkbookUseCase) importRecords(ctx context.Context, rows [][]string) int {
	if len(rows) < 2 {
		return 0
	}
	index := headerIndex(rows[0])

	imported := 0
	for _, row := range rows[1:] {
		date := cellValue(index, row, "Date", "date")
		if date == "" {
			continue
		}
		uc.dataStore.AddRecord(ctx, entity.Record{
			Date:     date,
			Revenue:  parseAmount(cellValue(index, row, "Revenue", "revenue")),
			Expenses: parseAmount(cellValue(index, row, "Expenses", "expenses")),
			Profit:   parseAmount(cellValue(index, row, "Profit", "profit")),
			CashFlow: parseAmount(cellValue(index, row, "Cash Flow", "cashFlow")),
		})
		imported++
	}
	return imported
}

// importIndicators reads every data row; rows with an empty metric name
// under both header spellings are dropped.
func (uc *ImportWorkbookUseCase) importIndicators(ctx context.Context, rows [][]string) int {
	if len(rows) < 2 {
		return 0
	}
	index := headerIndex(rows[0])

	imported := 0
	for _, row := range rows[1:] {
		metric := cellValue(index, row, "Metric", "metric")
		if metric == "" {
			continue
		}
		category := entity.IndicatorCategory(cellValue(index, row, "Category", "category"))
		if category == "" {
			category = entity.DefaultIndicatorCategory
		}
		uc.dataStore.AddIndicator(ctx, entity.Indicator{
			Metric:   metric,
			Value:    parseNumber(cellValue(index, row, "Value", "value")),
			Target:   parseNumber(cellValue(index, row, "Target", "target")),
			Unit:     cellValue(index, row, "Unit", "unit"),
			Category: category,
		})
		imported++
	}
	return imported
}

// sheetRows resolves the first existing sheet among the accepted aliases
// and returns its rows.
func sheetRows(workbook *excelize.File, names []string) ([][]string, bool) {
	for _, name := range names {
		index, err := workbook.GetSheetIndex(name)
		if err != nil || index < 0 {
			continue
		}
		rows, err := workbook.GetRows(name)
		if err != nil {
			continue
		}
		return rows, true
	}
	return nil, false
}
