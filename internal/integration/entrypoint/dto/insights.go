package dto

import "github.com/bizpulse/backend/internal/application/adapter"

// GenerateInsightsRequest represents the request body for AI insights.
type GenerateInsightsRequest struct {
	Focus string `json:"focus,omitempty" binding:"omitempty,max=500"`
}

// InsightsResponse represents the AI collaborator's narrative analysis.
type InsightsResponse struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// ToInsightsResponse converts an insight report to its response DTO.
func ToInsightsResponse(report *adapter.InsightReport) InsightsResponse {
	return InsightsResponse{
		Summary:         report.Summary,
		Strengths:       report.Strengths,
		Risks:           report.Risks,
		Recommendations: report.Recommendations,
	}
}
