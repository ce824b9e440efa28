package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizpulse/backend/internal/domain/entity"
)

// SetProfileRequest represents the request body for replacing the business
// profile. Omitted fields reset to their defaults.
type SetProfileRequest struct {
	ID          *string  `json:"id,omitempty"`
	CompanyName *string  `json:"company_name,omitempty"`
	Industry    *string  `json:"industry,omitempty"`
	Employees   *int     `json:"employees,omitempty" binding:"omitempty,min=0"`
	Revenue     *float64 `json:"revenue,omitempty"`
	Costs       *float64 `json:"costs,omitempty"`
	Assets      *float64 `json:"assets,omitempty"`
	Liabilities *float64 `json:"liabilities,omitempty"`
	CashFlow    *float64 `json:"cash_flow,omitempty"`
	CreatedAt   *string  `json:"created_at,omitempty"`
}

// ToProfilePatch converts the request into a domain profile patch.
func (r SetProfileRequest) ToProfilePatch() entity.ProfilePatch {
	patch := entity.ProfilePatch{
		CompanyName: r.CompanyName,
		Industry:    r.Industry,
		Employees:   r.Employees,
		Revenue:     toDecimal(r.Revenue),
		Costs:       toDecimal(r.Costs),
		Assets:      toDecimal(r.Assets),
		Liabilities: toDecimal(r.Liabilities),
		CashFlow:    toDecimal(r.CashFlow),
	}
	if r.ID != nil {
		if id, err := uuid.Parse(*r.ID); err == nil {
			patch.ID = &id
		}
	}
	if r.CreatedAt != nil {
		if createdAt, err := time.Parse(time.RFC3339, *r.CreatedAt); err == nil {
			patch.CreatedAt = &createdAt
		}
	}
	return patch
}

// ProfileResponse represents the business profile in API responses.
type ProfileResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	Employees   int       `json:"employees"`
	Revenue     string    `json:"revenue"`
	Costs       string    `json:"costs"`
	Assets      string    `json:"assets"`
	Liabilities string    `json:"liabilities"`
	CashFlow    string    `json:"cash_flow"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProfileResponse converts a domain Profile entity to a ProfileResponse DTO.
func ToProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID.String(),
		CompanyName: profile.CompanyName,
		Industry:    profile.Industry,
		Employees:   profile.Employees,
		Revenue:     profile.Revenue.String(),
		Costs:       profile.Costs.String(),
		Assets:      profile.Assets.String(),
		Liabilities: profile.Liabilities.String(),
		CashFlow:    profile.CashFlow.String(),
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// MetricsResponse represents the derived metrics in API responses.
type MetricsResponse struct {
	GrossProfit string `json:"gross_profit"`
	NetProfit   string `json:"net_profit"`
	Equity      string `json:"equity"`
}

// ToMetricsResponse converts domain DerivedMetrics to a MetricsResponse DTO.
func ToMetricsResponse(metrics *entity.DerivedMetrics) MetricsResponse {
	return MetricsResponse{
		GrossProfit: metrics.GrossProfit.String(),
		NetProfit:   metrics.NetProfit.String(),
		Equity:      metrics.Equity.String(),
	}
}

// AddRecordRequest represents the request body for adding a financial record.
type AddRecordRequest struct {
	Date     string   `json:"date,omitempty"`
	Revenue  *float64 `json:"revenue,omitempty"`
	Expenses *float64 `json:"expenses,omitempty"`
	Profit   *float64 `json:"profit,omitempty"`
	CashFlow *float64 `json:"cash_flow,omitempty"`
}

// ToRecord converts the request into a domain record. Missing amounts
// default to zero.
func (r AddRecordRequest) ToRecord() entity.Record {
	return entity.Record{
		Date:     r.Date,
		Revenue:  valueOrZero(r.Revenue),
		Expenses: valueOrZero(r.Expenses),
		Profit:   valueOrZero(r.Profit),
		CashFlow: valueOrZero(r.CashFlow),
	}
}

// UpdateRecordRequest represents the request body for updating a record.
// Omitted fields are left unchanged.
type UpdateRecordRequest struct {
	Revenue  *float64 `json:"revenue,omitempty"`
	Expenses *float64 `json:"expenses,omitempty"`
	Profit   *float64 `json:"profit,omitempty"`
	CashFlow *float64 `json:"cash_flow,omitempty"`
}

// ToRecordPatch converts the request into a domain record patch.
func (r UpdateRecordRequest) ToRecordPatch() entity.RecordPatch {
	return entity.RecordPatch{
		Revenue:  toDecimal(r.Revenue),
		Expenses: toDecimal(r.Expenses),
		Profit:   toDecimal(r.Profit),
		CashFlow: toDecimal(r.CashFlow),
	}
}

// RecordResponse represents a financial record in API responses.
type RecordResponse struct {
	Date     string `json:"date"`
	Revenue  string `json:"revenue"`
	Expenses string `json:"expenses"`
	Profit   string `json:"profit"`
	CashFlow string `json:"cash_flow"`
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(record entity.Record) RecordResponse {
	return RecordResponse{
		Date:     record.Date,
		Revenue:  record.Revenue.String(),
		Expenses: record.Expenses.String(),
		Profit:   record.Profit.String(),
		CashFlow: record.CashFlow.String(),
	}
}

// ToRecordListResponse converts a slice of records to response DTOs.
func ToRecordListResponse(records []entity.Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToRecordResponse(record))
	}
	return responses
}

// IndicatorRequest represents one performance indicator in a request body.
type IndicatorRequest struct {
	Metric   string  `json:"metric" binding:"required"`
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
}

// ToIndicator converts the request into a domain indicator.
func (r IndicatorRequest) ToIndicator() entity.Indicator {
	category := entity.DefaultIndicatorCategory
	if r.Category != "" {
		category = entity.IndicatorCategory(r.Category)
	}
	return entity.Indicator{
		Metric:   r.Metric,
		Value:    r.Value,
		Target:   r.Target,
		Unit:     r.Unit,
		Category: category,
	}
}

// SetIndicatorsRequest represents the request body for replacing the full
// indicator collection.
type SetIndicatorsRequest struct {
	Indicators []IndicatorRequest `json:"indicators" binding:"required"`
}

// ToIndicators converts the request into domain indicators.
func (r SetIndicatorsRequest) ToIndicators() []entity.Indicator {
	indicators := make([]entity.Indicator, 0, len(r.Indicators))
	for _, indicator := range r.Indicators {
		indicators = append(indicators, indicator.ToIndicator())
	}
	return indicators
}

// UpdateIndicatorRequest represents the request body for updating an
// indicator. Omitted fields are left unchanged.
type UpdateIndicatorRequest struct {
	Value    *float64 `json:"value,omitempty"`
	Target   *float64 `json:"target,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// ToIndicatorPatch converts the request into a domain indicator patch.
func (r UpdateIndicatorRequest) ToIndicatorPatch() entity.IndicatorPatch {
	patch := entity.IndicatorPatch{
		Value:  r.Value,
		Target: r.Target,
		Unit:   r.Unit,
	}
	if r.Category != nil {
		category := entity.IndicatorCategory(*r.Category)
		patch.Category = &category
	}
	return patch
}

// IndicatorResponse represents a performance indicator in API responses.
type IndicatorResponse struct {
	Metric   string  `json:"metric"`
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// ToIndicatorResponse converts a domain Indicator to an IndicatorResponse DTO.
func ToIndicatorResponse(indicator entity.Indicator) IndicatorResponse {
	return IndicatorResponse{
		Metric:   indicator.Metric,
		Value:    indicator.Value,
		Target:   indicator.Target,
		Unit:     indicator.Unit,
		Category: string(indicator.Category),
	}
}

// ToIndicatorListResponse converts a slice of indicators to response DTOs.
func ToIndicatorListResponse(indicators []entity.Indicator) []IndicatorResponse {
	responses := make([]IndicatorResponse, 0, len(indicators))
	for _, indicator := range indicators {
		responses = append(responses, ToIndicatorResponse(indicator))
	}
	return responses
}

func toDecimal(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}

func valueOrZero(value *float64) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*value)
}
