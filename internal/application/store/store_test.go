package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bizpulse/backend/internal/domain/entity"
	"github.com/bizpulse/backend/internal/integration/persistence"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(context.Background(), persistence.NewMemorySnapshotStore())
}

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func dec(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func TestStore_SetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted fields fall back to defaults", func(t *testing.T) {
		s := newTestStore(t)

		s.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme")})

		profile := s.Profile()
		if profile == nil {
			t.Fatal("expected profile after SetProfile")
		}
		if profile.CompanyName != "Acme" {
			t.Errorf("expected company name Acme, got %q", profile.CompanyName)
		}
		if profile.Industry != "" {
			t.Errorf("expected empty industry, got %q", profile.Industry)
		}
		if profile.Employees != 0 {
			t.Errorf("expected 0 employees, got %d", profile.Employees)
		}
		for name, value := range map[string]decimal.Decimal{
			"revenue":     profile.Revenue,
			"costs":       profile.Costs,
			"assets":      profile.Assets,
			"liabilities": profile.Liabilities,
			"cashFlow":    profile.CashFlow,
		} {
			if !value.IsZero() {
				t.Errorf("expected %s to default to 0, got %s", name, value)
			}
		}
	})

	t.Run("replacing preserves id and createdAt, refreshes updatedAt", func(t *testing.T) {
		s := newTestStore(t)

		first := s.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme")})
		second := s.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme Corp")})

		if second.ID != first.ID {
			t.Errorf("expected id to be preserved, got %s and %s", first.ID, second.ID)
		}
		if !second.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("expected createdAt to be preserved, got %v and %v", first.CreatedAt, second.CreatedAt)
		}
		if second.UpdatedAt.Before(first.UpdatedAt) {
			t.Error("expected updatedAt to be refreshed")
		}
		if second.CompanyName != "Acme Corp" {
			t.Errorf("expected company name Acme Corp, got %q", second.CompanyName)
		}
	})

	t.Run("replacing resets fields the patch omits", func(t *testing.T) {
		s := newTestStore(t)

		s.SetProfile(ctx, entity.ProfilePatch{
			CompanyName: strPtr("Acme"),
			Revenue:     decPtr(dec(1000)),
		})
		s.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme")})

		profile := s.Profile()
		if !profile.Revenue.IsZero() {
			t.Errorf("expected omitted revenue to reset to 0, got %s", profile.Revenue)
		}
	})
}

func TestStore_Records(t *testing.T) {
	ctx := context.Background()

	t.Run("insert with existing date replaces in place", func(t *testing.T) {
		s := newTestStore(t)

		s.AddRecord(ctx, entity.Record{Date: "2024-01-01", Revenue: dec(100)})
		s.AddRecord(ctx, entity.Record{Date: "2024-02-01", Revenue: dec(200)})
		s.AddRecord(ctx, entity.Record{Date: "2024-01-01", Revenue: dec(150)})

		records := s.Records()
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if !records[0].Revenue.Equal(dec(150)) {
			t.Errorf("expected replaced revenue 150, got %s", records[0].Revenue)
		}
	})

	t.Run("records stay sorted ascending by date", func(t *testing.T) {
		s := newTestStore(t)

		s.AddRecord(ctx, entity.Record{Date: "2024-03-01"})
		s.AddRecord(ctx, entity.Record{Date: "2024-01-01"})
		s.AddRecord(ctx, entity.Record{Date: "2024-02-01"})

		records := s.Records()
		for i := 1; i < len(records); i++ {
			if records[i-1].Date >= records[i].Date {
				t.Fatalf("records not sorted: %s before %s", records[i-1].Date, records[i].Date)
			}
		}
	})

	t.Run("omitted date defaults to today", func(t *testing.T) {
		s := newTestStore(t)

		record := s.AddRecord(ctx, entity.Record{Revenue: dec(10)})

		if record.Date != entity.Today() {
			t.Errorf("expected date %s, got %s", entity.Today(), record.Date)
		}
	})

	t.Run("update merges supplied fields only", func(t *testing.T) {
		s := newTestStore(t)

		s.AddRecord(ctx, entity.Record{Date: "2024-01-01", Revenue: dec(100), Expenses: dec(60)})
		s.UpdateRecord(ctx, "2024-01-01", entity.RecordPatch{Revenue: decPtr(dec(120))})

		records := s.Records()
		if !records[0].Revenue.Equal(dec(120)) {
			t.Errorf("expected revenue 120, got %s", records[0].Revenue)
		}
		if !records[0].Expenses.Equal(dec(60)) {
			t.Errorf("expected expenses unchanged at 60, got %s", records[0].Expenses)
		}
	})

	t.Run("update for unknown date is a no-op", func(t *testing.T) {
		s := newTestStore(t)

		s.AddRecord(ctx, entity.Record{Date: "2024-01-01", Revenue: dec(100)})
		s.UpdateRecord(ctx, "2030-01-01", entity.RecordPatch{Revenue: decPtr(dec(999))})

		records := s.Records()
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if !records[0].Revenue.Equal(dec(100)) {
			t.Errorf("expected revenue unchanged at 100, got %s", records[0].Revenue)
		}
	})

	t.Run("delete for unknown date is a no-op", func(t *testing.T) {
		s := newTestStore(t)

		s.AddRecord(ctx, entity.Record{Date: "2024-01-01"})
		s.DeleteRecord(ctx, "2030-01-01")

		if got := len(s.Records()); got != 1 {
			t.Errorf("expected 1 record, got %d", got)
		}
	})

	t.Run("delete removes matching record", func(t *testing.T) {
		s := newTestStore(t)

		s.AddRecord(ctx, entity.Record{Date: "2024-01-01"})
		s.DeleteRecord(ctx, "2024-01-01")

		if got := len(s.Records()); got != 0 {
			t.Errorf("expected 0 records, got %d", got)
		}
	})
}

func TestStore_Indicators(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated metric name keeps latest values", func(t *testing.T) {
		s := newTestStore(t)

		s.AddIndicator(ctx, entity.Indicator{Metric: "Churn", Value: 5, Unit: "%"})
		s.AddIndicator(ctx, entity.Indicator{Metric: "Churn", Value: 3, Unit: "%"})

		indicators := s.Indicators()
		if len(indicators) != 1 {
			t.Fatalf("expected 1 indicator, got %d", len(indicators))
		}
		if indicators[0].Value != 3 {
			t.Errorf("expected latest value 3, got %v", indicators[0].Value)
		}
	})

	t.Run("set replaces the whole collection", func(t *testing.T) {
		s := newTestStore(t)

		s.AddIndicator(ctx, entity.Indicator{Metric: "Churn"})
		s.SetIndicators(ctx, []entity.Indicator{
			{Metric: "NPS", Value: 40, Category: entity.IndicatorCategoryCustomer},
		})

		indicators := s.Indicators()
		if len(indicators) != 1 {
			t.Fatalf("expected 1 indicator, got %d", len(indicators))
		}
		if indicators[0].Metric != "NPS" {
			t.Errorf("expected metric NPS, got %q", indicators[0].Metric)
		}
	})

	t.Run("update for unknown metric is a no-op", func(t *testing.T) {
		s := newTestStore(t)

		value := 10.0
		s.UpdateIndicator(ctx, "Missing", entity.IndicatorPatch{Value: &value})

		if got := len(s.Indicators()); got != 0 {
			t.Errorf("expected 0 indicators, got %d", got)
		}
	})

	t.Run("delete removes by metric name", func(t *testing.T) {
		s := newTestStore(t)

		s.AddIndicator(ctx, entity.Indicator{Metric: "Churn"})
		s.DeleteIndicator(ctx, "Churn")

		if got := len(s.Indicators()); got != 0 {
			t.Errorf("expected 0 indicators, got %d", got)
		}
	})
}

func TestStore_ClearAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme")})
	s.AddRecord(ctx, entity.Record{Date: "2024-01-01"})
	s.AddIndicator(ctx, entity.Indicator{Metric: "Churn"})

	s.ClearAll(ctx)

	if s.Profile() != nil {
		t.Error("expected profile to be absent after ClearAll")
	}
	if got := len(s.Records()); got != 0 {
		t.Errorf("expected 0 records after ClearAll, got %d", got)
	}
	if got := len(s.Indicators()); got != 0 {
		t.Errorf("expected 0 indicators after ClearAll, got %d", got)
	}
}

func TestStore_DerivedMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("absent without a profile", func(t *testing.T) {
		s := newTestStore(t)

		if s.DerivedMetrics() != nil {
			t.Error("expected nil derived metrics without a profile")
		}
	})

	t.Run("computed from the profile figures", func(t *testing.T) {
		s := newTestStore(t)

		s.SetProfile(ctx, entity.ProfilePatch{
			CompanyName: strPtr("Acme"),
			Revenue:     decPtr(dec(1000)),
			Costs:       decPtr(dec(600)),
			Assets:      decPtr(dec(5000)),
			Liabilities: decPtr(dec(2000)),
		})

		metrics := s.DerivedMetrics()
		if metrics == nil {
			t.Fatal("expected derived metrics")
		}
		if !metrics.GrossProfit.Equal(dec(400)) {
			t.Errorf("expected gross profit 400, got %s", metrics.GrossProfit)
		}
		if !metrics.NetProfit.Equal(dec(400)) {
			t.Errorf("expected net profit 400, got %s", metrics.NetProfit)
		}
		if !metrics.Equity.Equal(dec(3000)) {
			t.Errorf("expected equity 3000, got %s", metrics.Equity)
		}
	})
}

// failingSnapshotStore rejects every operation to exercise the store's
// persistence fault tolerance.
type failingSnapshotStore struct{}

func (failingSnapshotStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage offline")
}

func (failingSnapshotStore) Save(context.Context, string, []byte) error {
	return errors.New("storage offline")
}

func TestStore_PersistenceFaults(t *testing.T) {
	ctx := context.Background()

	t.Run("save failures never reach the caller", func(t *testing.T) {
		s := New(ctx, failingSnapshotStore{})

		s.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme")})
		s.AddRecord(ctx, entity.Record{Date: "2024-01-01", Revenue: dec(100)})

		// In-memory state stays authoritative even though nothing was persisted.
		if s.Profile() == nil {
			t.Error("expected profile despite persistence failure")
		}
		if got := len(s.Records()); got != 1 {
			t.Errorf("expected 1 record despite persistence failure, got %d", got)
		}
	})

	t.Run("a corrupt snapshot only disables its own entity kind", func(t *testing.T) {
		snapshots := persistence.NewMemorySnapshotStore()
		seed := New(ctx, snapshots)
		seed.SetProfile(ctx, entity.ProfilePatch{CompanyName: strPtr("Acme")})
		seed.AddIndicator(ctx, entity.Indicator{Metric: "Churn", Value: 5})

		if err := snapshots.Save(ctx, RecordsKey, []byte("{not json")); err != nil {
			t.Fatalf("failed to corrupt records snapshot: %v", err)
		}

		s := New(ctx, snapshots)
		if s.Profile() == nil {
			t.Error("expected profile to survive a corrupt records snapshot")
		}
		if got := len(s.Records()); got != 0 {
			t.Errorf("expected empty records after corrupt snapshot, got %d", got)
		}
		if got := len(s.Indicators()); got != 1 {
			t.Errorf("expected indicators to survive, got %d", got)
		}
	})

	t.Run("state round-trips through the snapshot store", func(t *testing.T) {
		snapshots := persistence.NewMemorySnapshotStore()
		seed := New(ctx, snapshots)
		seed.SetProfile(ctx, entity.ProfilePatch{
			CompanyName: strPtr("Acme"),
			Revenue:     decPtr(dec(1000)),
		})
		seed.AddRecord(ctx, entity.Record{Date: "2024-01-01", Revenue: dec(100)})
		seed.AddIndicator(ctx, entity.Indicator{Metric: "NPS", Value: 40, Category: entity.IndicatorCategoryCustomer})

		s := New(ctx, snapshots)
		profile := s.Profile()
		if profile == nil || profile.CompanyName != "Acme" || !profile.Revenue.Equal(dec(1000)) {
			t.Errorf("unexpected reloaded profile: %+v", profile)
		}
		records := s.Records()
		if len(records) != 1 || records[0].Date != "2024-01-01" {
			t.Errorf("unexpected reloaded records: %+v", records)
		}
		indicators := s.Indicators()
		if len(indicators) != 1 || indicators[0].Category != entity.IndicatorCategoryCustomer {
			t.Errorf("unexpected reloaded indicators: %+v", indicators)
		}
	})
}
