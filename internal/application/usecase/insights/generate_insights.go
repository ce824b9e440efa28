// Package insights contains AI insight-related use cases.
package insights

import (
	"context"
	"fmt"

	"github.com/bizpulse/backend/internal/application/adapter"
	"github.com/bizpulse/backend/internal/application/store"
	domainerror "github.com/bizpulse/backend/internal/domain/error"
)

// GenerateInsightsInput represents the input for insight generation.
type GenerateInsightsInput struct {
	Focus string // Optional analysis focus, e.g. "market" or "operations".
}

// GenerateInsightsOutput represents the output of insight generation.
type GenerateInsightsOutput struct {
	Report *adapter.InsightReport
}

// GenerateInsightsUseCase hands the current business data to the external
// AI collaborator and returns its narrative report. The report's content
// is owned by the collaborator; this use case only guarantees the data it
// was given.
type GenerateInsightsUseCase struct {
	dataStore      *store.Store
	insightService adapter.InsightService
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(dataStore *store.Store, insightService adapter.InsightService) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		dataStore:      dataStore,
		insightService: insightService,
	}
}

// Execute performs the insight generation.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	if !uc.insightService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightServiceUnavailable,
			"insight service is not configured",
			domainerror.ErrInsightServiceUnavailable,
		)
	}

	profile := uc.dataStore.Profile()
	if profile == nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeProfileRequired,
			"enter business data before requesting insights",
			domainerror.ErrProfileRequired,
		)
	}

	report, err := uc.insightService.Generate(ctx, &adapter.InsightRequest{
		Profile:    profile,
		Metrics:    uc.dataStore.DerivedMetrics(),
		Records:    uc.dataStore.Records(),
		Indicators: uc.dataStore.Indicators(),
		Focus:      input.Focus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	return &GenerateInsightsOutput{
		Report: report,
	}, nil
}
