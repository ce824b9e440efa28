package importer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook serializes the given sheets into xlsx bytes. Each sheet is
// a name plus rows of cell values.
func buildWorkbook(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	for name, rows := range sheets {
		if _, err := workbook.NewSheet(name); err != nil {
			t.Fatalf("failed to create sheet %s: %v", name, err)
		}
		for r, row := range rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("failed to resolve cell: %v", err)
				}
				if err := workbook.SetCellValue(name, cell, value); err != nil {
					t.Fatalf("failed to set cell value: %v", err)
				}
			}
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return buffer.Bytes()
}

func TestImportWorkbookUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("imports profile, records and indicators", func(t *testing.T) {
		dataStore := newTestStore(t)
		uc := NewImportWorkbookUseCase(dataStore)

		content := buildWorkbook(t, map[string][][]any{
			"Business Data": {
				{"Company Name", "Industry", "Employees", "Revenue", "Costs", "Assets", "Liabilities", "Cash Flow"},
				{"Acme Corp", "Manufacturing", 42, 1000, 600, 5000, 2000, 150},
			},
			"Financial Records": {
				{"Date", "Revenue", "Expenses", "Profit", "Cash Flow"},
				{"2024-01-01", 100, 60, 40, 10},
				{"2024-01-02", 110, 50, 60, 20},
			},
			"KPIs": {
				{"Metric", "Value", "Target", "Unit", "Category"},
				{"Churn Rate", 2.5, 2.0, "%", "customer"},
			},
		})

		result := uc.Execute(ctx, ImportWorkbookInput{Content: content})

		if !result.Success {
			t.Fatalf("expected success, got message %q", result.Message)
		}
		if result.Imported != 4 {
			t.Fatalf("expected 4 imported items, got %d", result.Imported)
		}
		if result.Message != "Successfully imported 4 items" {
			t.Errorf("unexpected message %q", result.Message)
		}

		profile := dataStore.Profile()
		if profile == nil {
			t.Fatal("expected a profile to be set")
		}
		if profile.CompanyName != "Acme Corp" || profile.Industry != "Manufacturing" {
			t.Errorf("unexpected profile identity %q / %q", profile.CompanyName, profile.Industry)
		}
		if profile.Employees != 42 {
			t.Errorf("expected 42 employees, got %d", profile.Employees)
		}
		if !profile.Revenue.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected revenue 1000, got %s", profile.Revenue)
		}

		records := dataStore.Records()
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Date != "2024-01-01" || records[1].Date != "2024-01-02" {
			t.Errorf("expected records sorted by date, got %+v", records)
		}

		indicators := dataStore.Indicators()
		if len(indicators) != 1 {
			t.Fatalf("expected 1 indicator, got %d", len(indicators))
		}
		if indicators[0].Metric != "Churn Rate" || indicators[0].Value != 2.5 {
			t.Errorf("unexpected indicator %+v", indicators[0])
		}
		if indicators[0].Category != "customer" {
			t.Errorf("expected category customer, got %s", indicators[0].Category)
		}
	})

	t.Run("accepts alias sheet names", func(t *testing.T) {
		dataStore := newTestStore(t)
		uc := NewImportWorkbookUseCase(dataStore)

		content := buildWorkbook(t, map[string][][]any{
			"Company": {
				{"Company Name"},
				{"Alias Inc"},
			},
			"Financials": {
				{"Date", "Revenue"},
				{"2024-02-01", 10},
			},
			"Metrics": {
				{"Metric", "Value"},
				{"NPS", 60},
			},
		})

		result := uc.Execute(ctx, ImportWorkbookInput{Content: content})

		if result.Imported != 3 {
			t.Fatalf("expected 3 imported items, got %d", result.Imported)
		}
		if got := dataStore.Profile().CompanyName; got != "Alias Inc" {
			t.Errorf("expected company Alias Inc, got %q", got)
		}
		if len(dataStore.Records()) != 1 {
			t.Error("expected one record from the Financials sheet")
		}
		if len(dataStore.Indicators()) != 1 {
			t.Error("expected one indicator from the Metrics sheet")
		}
	})

	t.Run("skips dateless record rows and metricless indicator rows", func(t *testing.T) {
		dataStore := newTestStore(t)
		uc := NewImportWorkbookUseCase(dataStore)

		content := buildWorkbook(t, map[string][][]any{
			"Financial Records": {
				{"Date", "Revenue"},
				{"", 50},
				{"2024-03-01", 75},
			},
			"KPIs": {
				{"Metric", "Value"},
				{"", 1},
				{"Margin", 12},
			},
		})

		result := uc.Execute(ctx, ImportWorkbookInput{Content: content})

		if result.Imported != 2 {
			t.Fatalf("expected 2 imported items, got %d", result.Imported)
		}
		if len(dataStore.Records()) != 1 {
			t.Error("expected the dateless row to be skipped")
		}
		if len(dataStore.Indicators()) != 1 {
			t.Error("expected the metricless row to be skipped")
		}
	})

	t.Run("defaults indicator category when absent", func(t *testing.T) {
		dataStore := newTestStore(t)
		uc := NewImportWorkbookUseCase(dataStore)

		content := buildWorkbook(t, map[string][][]any{
			"KPIs": {
				{"Metric", "Value", "Target"},
				{"Utilization", 80, 90},
			},
		})

		uc.Execute(ctx, ImportWorkbookInput{Content: content})

		indicators := dataStore.Indicators()
		if len(indicators) != 1 {
			t.Fatalf("expected 1 indicator, got %d", len(indicators))
		}
		if indicators[0].Category != "operational" {
			t.Errorf("expected default category operational, got %s", indicators[0].Category)
		}
	})

	t.Run("missing sheets are not an error", func(t *testing.T) {
		dataStore := newTestStore(t)
		uc := NewImportWorkbookUseCase(dataStore)

		content := buildWorkbook(t, map[string][][]any{
			"Unrelated": {{"whatever"}},
		})

		result := uc.Execute(ctx, ImportWorkbookInput{Content: content})

		if !result.Success {
			t.Fatalf("expected success, got message %q", result.Message)
		}
		if result.Imported != 0 {
			t.Errorf("expected 0 imported, got %d", result.Imported)
		}
	})

	t.Run("fails on unreadable content", func(t *testing.T) {
		dataStore := newTestStore(t)
		uc := NewImportWorkbookUseCase(dataStore)

		result := uc.Execute(ctx, ImportWorkbookInput{Content: []byte("not a workbook")})

		if result.Success {
			t.Fatal("expected failure for invalid workbook bytes")
		}
		if result.Message == "" {
			t.Error("expected a failure message")
		}
	})
}
