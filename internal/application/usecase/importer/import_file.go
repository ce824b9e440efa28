// Package importer contains file import use cases for business data.
package importer

import (
	"context"
	"strings"

	domainerror "github.com/bizpulse/backend/internal/domain/error"
)

// ImportFileInput represents an uploaded file.
type ImportFileInput struct {
	Filename string
	Content  []byte
}

// ImportFileUseCase dispatches an uploaded file to the matching import
// adapter based on its extension. The suffix check is case-sensitive; an
// unrecognized extension is rejected without invoking either parser.
type ImportFileUseCase struct {
	csvImport      *ImportCSVUseCase
	workbookImport *ImportWorkbookUseCase
}

// NewImportFileUseCase creates a new ImportFileUseCase instance.
func NewImportFileUseCase(csvImport *ImportCSVUseCase, workbookImport *ImportWorkbookUseCase) *ImportFileUseCase {
	return &ImportFileUseCase{
		csvImport:      csvImport,
		workbookImport: workbookImport,
	}
}

// Execute performs the dispatch and import.
func (uc *ImportFileUseCase) Execute(ctx context.Context, input ImportFileInput) (*ImportResult, error) {
	switch {
	case strings.HasSuffix(input.Filename, ".csv"):
		return uc.csvImport.Execute(ctx, ImportCSVInput{Content: string(input.Content)}), nil
	case strings.HasSuffix(input.Filename, ".xlsx"), strings.HasSuffix(input.Filename, ".xls"):
		return uc.workbookImport.Execute(ctx, ImportWorkbookInput{Content: input.Content}), nil
	default:
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeUnsupportedFileType,
			"unsupported file type: expected .csv, .xlsx or .xls",
			domainerror.ErrUnsupportedFileType,
		)
	}
}
