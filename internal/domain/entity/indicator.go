// Package entity defines the core business entities for the domain layer.
package entity

// IndicatorCategory classifies a performance indicator.
type IndicatorCategory string

const (
	IndicatorCategoryFinancial   IndicatorCategory = "financial"
	IndicatorCategoryOperational IndicatorCategory = "operational"
	IndicatorCategoryCustomer    IndicatorCategory = "customer"
	IndicatorCategoryGrowth      IndicatorCategory = "growth"
)

// DefaultIndicatorCategory is applied when an imported indicator carries
// no category.
const DefaultIndicatorCategory = IndicatorCategoryOperational

// Indicator represents a named performance metric with its current value,
// target, unit and category. Indicators are keyed by metric name; at most
// one indicator exists per name.
type Indicator struct {
	Metric   string
	Value    float64
	Target   float64
	Unit     string // e.g. "%", "$"
	Category IndicatorCategory
}

// IndicatorPatch carries the fields supplied by a caller when updating an
// existing indicator. Nil fields are left unchanged.
type IndicatorPatch struct {
	Value    *float64
	Target   *float64
	Unit     *string
	Category *IndicatorCategory
}

// Apply merges the patch into the indicator.
func (p IndicatorPatch) Apply(indicator *Indicator) {
	if p.Value != nil {
		indicator.Value = *p.Value
	}
	if p.Target != nil {
		indicator.Target = *p.Target
	}
	if p.Unit != nil {
		indicator.Unit = *p.Unit
	}
	if p.Category != nil {
		indicator.Category = *p.Category
	}
}
