// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bizpulse/backend/internal/domain/entity"
)

// InsightRequest represents the business data handed to the AI collaborator.
type InsightRequest struct {
	Profile    *entity.Profile
	Metrics    *entity.DerivedMetrics
	Records    []entity.Record
	Indicators []entity.Indicator
	Focus      string // Optional analysis focus supplied by the caller.
}

// InsightReport represents the AI collaborator's narrative analysis. Its
// content is free-form; this core guarantees nothing about its correctness.
type InsightReport struct {
	Summary         string
	Strengths       []string
	Risks           []string
	Recommendations []string
}

// InsightService defines the interface for the external generative-AI
// collaborator that turns business data into narrative analysis.
type InsightService interface {
	// Generate produces a narrative report for the given business data.
	Generate(ctx context.Context, request *InsightRequest) (*InsightReport, error)

	// IsAvailable checks if the AI service is properly configured.
	IsAvailable() bool
}
