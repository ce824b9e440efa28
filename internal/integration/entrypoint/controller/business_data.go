package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizpulse/backend/internal/application/store"
	"github.com/bizpulse/backend/internal/integration/entrypoint/dto"
)

// BusinessDataController handles profile, record and indicator endpoints.
type BusinessDataController struct {
	dataStore *store.Store
}

// NewBusinessDataController creates a new business data controller instance.
func NewBusinessDataController(dataStore *store.Store) *BusinessDataController {
	return &BusinessDataController{
		dataStore: dataStore,
	}
}

// GetProfile handles GET /business/profile requests.
func (c *BusinessDataController) GetProfile(ctx *gin.Context) {
	profile := c.dataStore.Profile()
	if profile == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Business profile not set",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// SetProfile handles PUT /business/profile requests.
// The supplied fields replace the profile entirely; omitted fields reset
// to their defaults.
func (c *BusinessDataController) SetProfile(ctx *gin.Context) {
	var req dto.SetProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	profile := c.dataStore.SetProfile(ctx.Request.Context(), req.ToProfilePatch())
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// GetMetrics handles GET /business/metrics requests.
func (c *BusinessDataController) GetMetrics(ctx *gin.Context) {
	metrics := c.dataStore.DerivedMetrics()
	if metrics == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Business profile not set",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricsResponse(metrics))
}

// ListRecords handles GET /business/records requests.
// Records are returned in ascending date order.
func (c *BusinessDataController) ListRecords(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(c.dataStore.Records()))
}

// AddRecord handles POST /business/records requests.
// A record with the same date replaces the existing one; a missing date
// defaults to today.
func (c *BusinessDataController) AddRecord(ctx *gin.Context) {
	var req dto.AddRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	record := c.dataStore.AddRecord(ctx.Request.Context(), req.ToRecord())
	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// UpdateRecord handles PATCH /business/records/:date requests.
// Updating a date with no record is a no-op.
func (c *BusinessDataController) UpdateRecord(ctx *gin.Context) {
	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	c.dataStore.UpdateRecord(ctx.Request.Context(), ctx.Param("date"), req.ToRecordPatch())
	ctx.Status(http.StatusNoContent)
}

// DeleteRecord handles DELETE /business/records/:date requests.
func (c *BusinessDataController) DeleteRecord(ctx *gin.Context) {
	c.dataStore.DeleteRecord(ctx.Request.Context(), ctx.Param("date"))
	ctx.Status(http.StatusNoContent)
}

// ListIndicators handles GET /business/indicators requests.
// Indicators are returned in ascending metric-name order.
func (c *BusinessDataController) ListIndicators(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToIndicatorListResponse(c.dataStore.Indicators()))
}

// SetIndicators handles PUT /business/indicators requests.
// The supplied collection replaces the stored one entirely.
func (c *BusinessDataController) SetIndicators(ctx *gin.Context) {
	var req dto.SetIndicatorsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	c.dataStore.SetIndicators(ctx.Request.Context(), req.ToIndicators())
	ctx.JSON(http.StatusOK, dto.ToIndicatorListResponse(c.dataStore.Indicators()))
}

// AddIndicator handles POST /business/indicators requests.
// An indicator with the same metric name replaces the existing one.
func (c *BusinessDataController) AddIndicator(ctx *gin.Context) {
	var req dto.IndicatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	indicator := req.ToIndicator()
	c.dataStore.AddIndicator(ctx.Request.Context(), indicator)
	ctx.JSON(http.StatusCreated, dto.ToIndicatorResponse(indicator))
}

// UpdateIndicator handles PATCH /business/indicators/:metric requests.
// Updating a metric with no indicator is a no-op.
func (c *BusinessDataController) UpdateIndicator(ctx *gin.Context) {
	var req dto.UpdateIndicatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	c.dataStore.UpdateIndicator(ctx.Request.Context(), ctx.Param("metric"), req.ToIndicatorPatch())
	ctx.Status(http.StatusNoContent)
}

// DeleteIndicator handles DELETE /business/indicators/:metric requests.
func (c *BusinessDataController) DeleteIndicator(ctx *gin.Context) {
	c.dataStore.DeleteIndicator(ctx.Request.Context(), ctx.Param("metric"))
	ctx.Status(http.StatusNoContent)
}

// ClearAll handles DELETE /business requests.
// It removes the profile, all records and all indicators.
func (c *BusinessDataController) ClearAll(ctx *gin.Context) {
	c.dataStore.ClearAll(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}
