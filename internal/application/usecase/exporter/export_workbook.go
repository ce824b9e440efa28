// Package exporter contains file export use cases for business data.
package exporter

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bizpulse/backend/internal/application/store"
	"github.com/bizpulse/backend/internal/domain/entity"
)

// Exported sheet names. Import accepts these plus their aliases.
const (
	profileSheetName   = "Business Data"
	recordSheetName    = "Financial Records"
	indicatorSheetName = "KPIs"
)

// ExportWorkbookOutput represents an exported workbook file.
type ExportWorkbookOutput struct {
	Filename string
	Content  []byte
}

// ExportWorkbookUseCase serializes the current business data to an xlsx
// workbook. Each sheet is included only when its entity kind is present,
// with the human-readable column headers accepted on import.
type ExportWorkbookUseCase struct {
	dataStore *store.Store
}

// NewExportWorkbookUseCase creates a new ExportWorkbookUseCase instance.
func NewExportWorkbookUseCase(dataStore *store.Store) *ExportWorkbookUseCase {
	return &ExportWorkbookUseCase{
		dataStore: dataStore,
	}
}

// Execute performs the workbook export.
func (uc *ExportWorkbookUseCase) Execute(_ context.Context) (*ExportWorkbookOutput, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	profile := uc.dataStore.Profile()
	if profile != nil {
		if err := writeProfileSheet(workbook, profile); err != nil {
			return nil, fmt.Errorf("failed to build profile sheet: %w", err)
		}
	}
	if records := uc.dataStore.Records(); len(records) > 0 {
		if err := writeRecordSheet(workbook, records); err != nil {
			return nil, fmt.Errorf("failed to build records sheet: %w", err)
		}
	}
	if indicators := uc.dataStore.Indicators(); len(indicators) > 0 {
		if err := writeIndicatorSheet(workbook, indicators); err != nil {
			return nil, fmt.Errorf("failed to build indicators sheet: %w", err)
		}
	}

	// Drop the implicit default sheet unless nothing else was written.
	if sheets := workbook.GetSheetList(); len(sheets) > 1 {
		if err := workbook.DeleteSheet(sheets[0]); err != nil {
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return &ExportWorkbookOutput{
		Filename: fmt.Sprintf("%s_Data_%s.xlsx", companyLabel(profile), entity.Today()),
		Content:  buffer.Bytes(),
	}, nil
}

func writeProfileSheet(workbook *excelize.File, profile *entity.Profile) error {
	if _, err := workbook.NewSheet(profileSheetName); err != nil {
		return err
	}
	headers := []any{"Company Name", "Industry", "Employees", "Revenue", "Costs", "Assets", "Liabilities", "Cash Flow"}
	if err := writeRow(workbook, profileSheetName, 1, headers); err != nil {
		return err
	}
	return writeRow(workbook, profileSheetName, 2, []any{
		profile.CompanyName,
		profile.Industry,
		profile.Employees,
		profile.Revenue.InexactFloat64(),
		profile.Costs.InexactFloat64(),
		profile.Assets.InexactFloat64(),
		profile.Liabilities.InexactFloat64(),
		profile.CashFlow.InexactFloat64(),
	})
}

func writeRecordSheet(workbook *excelize.File, records []entity.Record) error {
	if _, err := workbook.NewSheet(recordSheetName); err != nil {
		return err
	}
	headers := []any{"Date", "Revenue", "Expenses", "Profit", "Cash Flow"}
	if err := writeRow(workbook, recordSheetName, 1, headers); err != nil {
		return err
	}
	for i, record := range records {
		err := writeRow(workbook, recordSheetName, i+2, []any{
			record.Date,
			record.Revenue.InexactFloat64(),
			record.Expenses.InexactFloat64(),
			record.Profit.InexactFloat64(),
			record.CashFlow.InexactFloat64(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeIndicatorSheet(workbook *excelize.File, indicators []entity.Indicator) error {
	if _, err := workbook.NewSheet(indicatorSheetName); err != nil {
		return err
	}
	headers := []any{"Metric", "Value", "Target", "Unit", "Category"}
	if err := writeRow(workbook, indicatorSheetName, 1, headers); err != nil {
		return err
	}
	for i, indicator := range indicators {
		err := writeRow(workbook, indicatorSheetName, i+2, []any{
			indicator.Metric,
			indicator.Value,
			indicator.Target,
			indicator.Unit,
			string(indicator.Category),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeRow writes one row of values starting at column A.
func writeRow(workbook *excelize.File, sheet string, row int, values []any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := workbook.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
