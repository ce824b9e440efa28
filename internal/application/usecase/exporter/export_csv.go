// Package exporter contains file export use cases for business data.
package exporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/bizpulse/backend/internal/application/store"
	"github.com/bizpulse/backend/internal/domain/entity"
	domainerror "github.com/bizpulse/backend/internal/domain/error"
)

// csvHeader is the exact header line of exported CSV files.
const csvHeader = "Date,Revenue,Expenses,Profit,Cash Flow"

// ExportCSVOutput represents an exported CSV file.
type ExportCSVOutput struct {
	Filename string
	Content  []byte
}

// ExportCSVUseCase serializes the financial records to CSV. Fields are
// comma-joined without quoting, one line per record in ascending date order.
type ExportCSVUseCase struct {
	dataStore *store.Store
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(dataStore *store.Store) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		dataStore: dataStore,
	}
}

// Execute performs the CSV export. It fails without producing a file when
// the store holds no records.
func (uc *ExportCSVUseCase) Execute(_ context.Context) (*ExportCSVOutput, error) {
	records := uc.dataStore.Records()
	if len(records) == 0 {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeNoRecordsToExport,
			"add at least one financial record before exporting",
			domainerror.ErrNoRecordsToExport,
		)
	}

	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteByte('\n')
	for _, record := range records {
		sb.WriteString(strings.Join([]string{
			record.Date,
			record.Revenue.String(),
			record.Expenses.String(),
			record.Profit.String(),
			record.CashFlow.String(),
		}, ","))
		sb.WriteByte('\n')
	}

	return &ExportCSVOutput{
		Filename: fmt.Sprintf("%s_Financial_%s.csv", companyLabel(uc.dataStore.Profile()), entity.Today()),
		Content:  []byte(sb.String()),
	}, nil
}

// companyLabel returns the company name for export file names, falling
// back to "Business" when no profile or name exists.
func companyLabel(profile *entity.Profile) string {
	if profile == nil || profile.CompanyName == "" {
		return "Business"
	}
	return profile.CompanyName
}
