// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// DerivedMetrics holds the financial figures computed from the Profile
// rather than stored directly. Downstream consumers (ratio calculations,
// AI analysis) own any division-by-zero concerns.
type DerivedMetrics struct {
	GrossProfit decimal.Decimal
	NetProfit   decimal.Decimal
	Equity      decimal.Decimal
}

// ComputeDerivedMetrics derives the metrics from a profile. It returns nil
// when no profile exists.
func ComputeDerivedMetrics(profile *Profile) *DerivedMetrics {
	if profile == nil {
		return nil
	}

	grossProfit := profile.Revenue.Sub(profile.Costs)
	return &DerivedMetrics{
		GrossProfit: grossProfit,
		// No further expense subtraction is modeled below gross profit.
		NetProfit: grossProfit,
		Equity:    profile.Assets.Sub(profile.Liabilities),
	}
}
