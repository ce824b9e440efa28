// Package store implements the in-memory business data store with
// write-through snapshot persistence.
package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/bizpulse/backend/internal/application/adapter"
	"github.com/bizpulse/backend/internal/domain/entity"
)

// Snapshot keys, one per entity kind.
const (
	ProfileKey    = "business:profile"
	RecordsKey    = "business:records"
	IndicatorsKey = "business:indicators"
)

// Store owns the three business data collections: the singleton Profile,
// the financial Records keyed by date, and the Indicators keyed by metric
// name. Every mutation runs to completion under the store lock and writes
// the full state of the touched entity kind through to the snapshot store
// before returning. Persistence failures are logged, never surfaced; the
// in-memory state stays authoritative.
type Store struct {
	mu         sync.RWMutex
	snapshots  adapter.SnapshotStore
	profile    *entity.Profile
	records    map[string]entity.Record
	indicators map[string]entity.Indicator
}

// New creates a store backed by the given snapshot store and loads the
// persisted state. A corrupt or unreadable snapshot leaves its entity kind
// at the empty default without affecting the other two.
func New(ctx context.Context, snapshots adapter.SnapshotStore) *Store {
	s := &Store{
		snapshots:  snapshots,
		records:    make(map[string]entity.Record),
		indicators: make(map[string]entity.Indicator),
	}
	s.load(ctx)
	return s
}

// SetProfile replaces the profile with one built from the patch: omitted
// fields fall back to zero defaults, while ID and CreatedAt are preserved
// from the existing profile unless the caller supplies them. UpdatedAt is
// always refreshed. The operation cannot fail.
func (s *Store) SetProfile(ctx context.Context, patch entity.ProfilePatch) *entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = entity.NewProfile(patch, s.profile)
	s.persistProfile(ctx)

	profile := *s.profile
	return &profile
}

// Profile returns a copy of the current profile, or nil when absent.
func (s *Store) Profile() *entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil
	}
	profile := *s.profile
	return &profile
}

// AddRecord inserts a financial record, replacing any existing record with
// the same date. An empty date defaults to the current date.
func (s *Store) AddRecord(ctx context.Context, record entity.Record) entity.Record {
	if record.Date == "" {
		record.Date = entity.Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.Date] = record
	s.persistRecords(ctx)
	return record
}

// Records returns all financial records in ascending date order.
func (s *Store) Records() []entity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedRecords()
}

// UpdateRecord merges the patch into the record for the given date. It is
// a silent no-op when no record matches.
func (s *Store) UpdateRecord(ctx context.Context, date string, patch entity.RecordPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[date]
	if !ok {
		return
	}
	patch.Apply(&record)
	s.records[date] = record
	s.persistRecords(ctx)
}

// DeleteRecord removes the record for the given date, if any.
func (s *Store) DeleteRecord(ctx context.Context, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, date)
	s.persistRecords(ctx)
}

// SetIndicators replaces the whole indicator collection.
func (s *Store) SetIndicators(ctx context.Context, indicators []entity.Indicator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.indicators = make(map[string]entity.Indicator, len(indicators))
	for _, indicator := range indicators {
		s.indicators[indicator.Metric] = indicator
	}
	s.persistIndicators(ctx)
}

// AddIndicator inserts an indicator, replacing any existing indicator with
// the same metric name.
func (s *Store) AddIndicator(ctx context.Context, indicator entity.Indicator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.indicators[indicator.Metric] = indicator
	s.persistIndicators(ctx)
}

// Indicators returns all indicators, sorted by metric name for stable
// listings.
func (s *Store) Indicators() []entity.Indicator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedIndicators()
}

// UpdateIndicator merges the patch into the indicator for the given metric
// name. It is a silent no-op when no indicator matches.
func (s *Store) UpdateIndicator(ctx context.Context, metric string, patch entity.IndicatorPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	indicator, ok := s.indicators[metric]
	if !ok {
		return
	}
	patch.Apply(&indicator)
	s.indicators[metric] = indicator
	s.persistIndicators(ctx)
}

// DeleteIndicator removes the indicator for the given metric name, if any.
func (s *Store) DeleteIndicator(ctx context.Context, metric string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.indicators, metric)
	s.persistIndicators(ctx)
}

// ClearAll empties the profile and both collections and persists the empty
// state.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.records = make(map[string]entity.Record)
	s.indicators = make(map[string]entity.Indicator)
	s.persistProfile(ctx)
	s.persistRecords(ctx)
	s.persistIndicators(ctx)
}

// DerivedMetrics computes the derived financial metrics from the current
// profile, or returns nil when no profile exists.
func (s *Store) DerivedMetrics() *entity.DerivedMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.ComputeDerivedMetrics(s.profile)
}

// sortedRecords projects the record map to an ascending-date slice.
// Callers must hold at least the read lock.
func (s *Store) sortedRecords() []entity.Record {
	records := make([]entity.Record, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	return records
}

// sortedIndicators projects the indicator map to a metric-name-sorted
// slice. Callers must hold at least the read lock.
func (s *Store) sortedIndicators() []entity.Indicator {
	indicators := make([]entity.Indicator, 0, len(s.indicators))
	for _, indicator := range s.indicators {
		indicators = append(indicators, indicator)
	}
	sort.Slice(indicators, func(i, j int) bool {
		return indicators[i].Metric < indicators[j].Metric
	})
	return indicators
}

// persist writes one snapshot through to the persistence medium. Failures
// are logged and swallowed; the write is single-attempt.
func (s *Store) persist(ctx context.Context, key string, data []byte, err error) {
	if err != nil {
		slog.Error("Failed to serialize snapshot", "key", key, "error", err)
		return
	}
	if err := s.snapshots.Save(ctx, key, data); err != nil {
		slog.Error("Failed to persist snapshot", "key", key, "error", err)
	}
}

func (s *Store) persistProfile(ctx context.Context) {
	data, err := encodeProfile(s.profile)
	s.persist(ctx, ProfileKey, data, err)
}

func (s *Store) persistRecords(ctx context.Context) {
	data, err := encodeRecords(s.sortedRecords())
	s.persist(ctx, RecordsKey, data, err)
}

func (s *Store) persistIndicators(ctx context.Context) {
	data, err := encodeIndicators(s.sortedIndicators())
	s.persist(ctx, IndicatorsKey, data, err)
}

// load reads the three snapshot keys. Each key is loaded independently so
// one bad snapshot cannot take down the others.
func (s *Store) load(ctx context.Context) {
	if data, err := s.snapshots.Load(ctx, ProfileKey); err != nil {
		slog.Warn("Failed to load profile snapshot", "key", ProfileKey, "error", err)
	} else if len(data) > 0 {
		profile, err := decodeProfile(data)
		if err != nil {
			slog.Warn("Failed to decode profile snapshot", "key", ProfileKey, "error", err)
		} else {
			s.profile = profile
		}
	}

	if data, err := s.snapshots.Load(ctx, RecordsKey); err != nil {
		slog.Warn("Failed to load records snapshot", "key", RecordsKey, "error", err)
	} else if len(data) > 0 {
		records, err := decodeRecords(data)
		if err != nil {
			slog.Warn("Failed to decode records snapshot", "key", RecordsKey, "error", err)
		} else {
			for _, record := range records {
				s.records[record.Date] = record
			}
		}
	}

	if data, err := s.snapshots.Load(ctx, IndicatorsKey); err != nil {
		slog.Warn("Failed to load indicators snapshot", "key", IndicatorsKey, "error", err)
	} else if len(data) > 0 {
		indicators, err := decodeIndicators(data)
		if err != nil {
			slog.Warn("Failed to decode indicators snapshot", "key", IndicatorsKey, "error", err)
		} else {
			for _, indicator := range indicators {
				s.indicators[indicator.Metric] = indicator
			}
		}
	}
}
