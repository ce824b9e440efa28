package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/backend/internal/application/usecase/insights"
	domainerror "github.com/bizpulse/backend/internal/domain/error"
	"github.com/bizpulse/backend/internal/integration/entrypoint/dto"
)

// InsightsController handles AI insight endpoints.
type InsightsController struct {
	generateUseCase *insights.GenerateInsightsUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(generateUseCase *insights.GenerateInsightsUseCase) *InsightsController {
	return &InsightsController{
		generateUseCase: generateUseCase,
	}
}

// Generate handles POST /insights requests.
func (c *InsightsController) Generate(ctx *gin.Context) {
	var req dto.GenerateInsightsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insights.GenerateInsightsInput{
		Focus: req.Focus,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output.Report))
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightsController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := c.getStatusCodeForInsightError(insightErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to generate insights",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func (c *InsightsController) getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsightServiceUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeProfileRequired:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
