package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizpulse/backend/internal/domain/entity"
)

// Snapshot shapes mirror the JSON written to the persistence medium. The
// domain entities stay tag-free; this file owns the wire form.

type profileSnapshot struct {
	ID          uuid.UUID       `json:"id"`
	CompanyName string          `json:"companyName"`
	Industry    string          `json:"industry"`
	Employees   int             `json:"employees"`
	Revenue     decimal.Decimal `json:"revenue"`
	Costs       decimal.Decimal `json:"costs"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	CashFlow    decimal.Decimal `json:"cashFlow"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type recordSnapshot struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
	CashFlow decimal.Decimal `json:"cashFlow"`
}

type indicatorSnapshot struct {
	Metric   string  `json:"metric"`
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

func encodeProfile(profile *entity.Profile) ([]byte, error) {
	if profile == nil {
		// An absent profile is stored as an explicit null.
		return json.Marshal(nil)
	}
	return json.Marshal(profileSnapshot{
		ID:          profile.ID,
		CompanyName: profile.CompanyName,
		Industry:    profile.Industry,
		Employees:   profile.Employees,
		Revenue:     profile.Revenue,
		Costs:       profile.Costs,
		Assets:      profile.Assets,
		Liabilities: profile.Liabilities,
		CashFlow:    profile.CashFlow,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	})
}

func decodeProfile(data []byte) (*entity.Profile, error) {
	var snapshot *profileSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}
	return &entity.Profile{
		ID:          snapshot.ID,
		CompanyName: snapshot.CompanyName,
		Industry:    snapshot.Industry,
		Employees:   snapshot.Employees,
		Revenue:     snapshot.Revenue,
		Costs:       snapshot.Costs,
		Assets:      snapshot.Assets,
		Liabilities: snapshot.Liabilities,
		CashFlow:    snapshot.CashFlow,
		CreatedAt:   snapshot.CreatedAt,
		UpdatedAt:   snapshot.UpdatedAt,
	}, nil
}

func encodeRecords(records []entity.Record) ([]byte, error) {
	snapshots := make([]recordSnapshot, len(records))
	for i, record := range records {
		snapshots[i] = recordSnapshot{
			Date:     record.Date,
			Revenue:  record.Revenue,
			Expenses: record.Expenses,
			Profit:   record.Profit,
			CashFlow: record.CashFlow,
		}
	}
	return json.Marshal(snapshots)
}

func decodeRecords(data []byte) ([]entity.Record, error) {
	var snapshots []recordSnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}
	records := make([]entity.Record, len(snapshots))
	for i, snapshot := range snapshots {
		records[i] = entity.Record{
			Date:     snapshot.Date,
			Revenue:  snapshot.Revenue,
			Expenses: snapshot.Expenses,
			Profit:   snapshot.Profit,
			CashFlow: snapshot.CashFlow,
		}
	}
	return records, nil
}

func encodeIndicators(indicators []entity.Indicator) ([]byte, error) {
	snapshots := make([]indicatorSnapshot, len(indicators))
	for i, indicator := range indicators {
		snapshots[i] = indicatorSnapshot{
			Metric:   indicator.Metric,
			Value:    indicator.Value,
			Target:   indicator.Target,
			Unit:     indicator.Unit,
			Category: string(indicator.Category),
		}
	}
	return json.Marshal(snapshots)
}

func decodeIndicators(data []byte) ([]entity.Indicator, error) {
	var snapshots []indicatorSnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, err
	}
	indicators := make([]entity.Indicator, len(snapshots))
	for i, snapshot := range snapshots {
		indicators[i] = entity.Indicator{
			Metric:   snapshot.Metric,
			Value:    snapshot.Value,
			Target:   snapshot.Target,
			Unit:     snapshot.Unit,
			Category: entity.IndicatorCategory(snapshot.Category),
		}
	}
	return indicators, nil
}
