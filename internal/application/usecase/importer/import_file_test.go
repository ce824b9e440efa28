package importer

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/bizpulse/backend/internal/domain/error"
)

func TestImportFileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(t *testing.T) *ImportFileUseCase {
		t.Helper()
		dataStore := newTestStore(t)
		return NewImportFileUseCase(
			NewImportCSVUseCase(dataStore),
			NewImportWorkbookUseCase(dataStore),
		)
	}

	t.Run("dispatches csv files to the csv parser", func(t *testing.T) {
		uc := newUseCase(t)

		result, err := uc.Execute(ctx, ImportFileInput{
			Filename: "report.csv",
			Content:  []byte("Date,Revenue,Expenses,Profit,Cash Flow\n2024-01-01,1,2,3,4\n"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 {
			t.Errorf("expected 1 imported record, got %d", result.Imported)
		}
	})

	t.Run("dispatches xlsx files to the workbook parser", func(t *testing.T) {
		uc := newUseCase(t)

		content := buildWorkbook(t, map[string][][]any{
			"Financial Records": {
				{"Date", "Revenue"},
				{"2024-01-01", 5},
			},
		})

		result, err := uc.Execute(ctx, ImportFileInput{Filename: "data.xlsx", Content: content})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 {
			t.Errorf("expected 1 imported item, got %d", result.Imported)
		}
	})

	t.Run("accepts the legacy xls extension", func(t *testing.T) {
		uc := newUseCase(t)

		content := buildWorkbook(t, map[string][][]any{
			"KPIs": {
				{"Metric", "Value"},
				{"NPS", 70},
			},
		})

		result, err := uc.Execute(ctx, ImportFileInput{Filename: "data.xls", Content: content})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 {
			t.Errorf("expected 1 imported item, got %d", result.Imported)
		}
	})

	t.Run("rejects unknown extensions", func(t *testing.T) {
		uc := newUseCase(t)

		_, err := uc.Execute(ctx, ImportFileInput{Filename: "report.txt", Content: []byte("x")})
		if err == nil {
			t.Fatal("expected an error for an unsupported extension")
		}

		var transferErr *domainerror.TransferError
		if !errors.As(err, &transferErr) {
			t.Fatalf("expected a TransferError, got %T", err)
		}
		if transferErr.Code != domainerror.ErrCodeUnsupportedFileType {
			t.Errorf("unexpected error code %s", transferErr.Code)
		}
	})

	t.Run("extension matching is case sensitive", func(t *testing.T) {
		uc := newUseCase(t)

		_, err := uc.Execute(ctx, ImportFileInput{Filename: "REPORT.CSV", Content: []byte("x")})
		if err == nil {
			t.Fatal("expected uppercase extensions to be rejected")
		}
		if !errors.Is(err, domainerror.ErrUnsupportedFileType) {
			t.Errorf("expected ErrUnsupportedFileType, got %v", err)
		}
	})
}
