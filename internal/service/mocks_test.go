package service

import (
	"context"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/sensor"
	"github.com/google/uuid"
)

// MockSensorReader is a mock implementation of sensor.Reader
type MockSensorReader struct {
	granted        bool
	authErr        error
	cumulative     map[sensor.MetricKind][]domain.RawSample
	cumulativeErr  map[sensor.MetricKind]error
	sleepIntervals []domain.SleepStageInterval
	sleepErr       error
}

func NewMockSensorReader() *MockSensorReader {
	return &MockSensorReader{
		granted:       true,
		cumulative:    make(map[sensor.MetricKind][]domain.RawSample),
		cumulativeErr: make(map[sensor.MetricKind]error),
	}
}

func (m *MockSensorReader) AuthorizationStatus(ctx context.Context) (bool, error) {
	return m.granted, m.authErr
}

func (m *MockSensorReader) FetchCumulative(ctx context.Context, metric sensor.MetricKind, r domain.DateRange) ([]domain.RawSample, error) {
	if err := m.cumulativeErr[metric]; err != nil {
		return nil, err
	}
	return m.cumulative[metric], nil
}

func (m *MockSensorReader) FetchSleepIntervals(ctx context.Context, r domain.DateRange) ([]domain.SleepStageInterval, error) {
	if m.sleepErr != nil {
		return nil, m.sleepErr
	}
	return m.sleepIntervals, nil
}

// MockUsageReader is a mock implementation of monitor.UsageReader
type MockUsageReader struct {
	resolved   domain.ResolvedUsage
	resolveErr error
	saved      map[string]float64
	saveErr    error
}

func NewMockUsageReader() *MockUsageReader {
	return &MockUsageReader{
		resolved: domain.ResolvedUsage{Source: domain.UsageSourceNone},
		saved:    make(map[string]float64),
	}
}

func (m *MockUsageReader) Resolve(ctx context.Context, now time.Time) (domain.ResolvedUsage, error) {
	if m.resolveErr != nil {
		return domain.ResolvedUsage{Source: domain.UsageSourceNone}, m.resolveErr
	}
	return m.resolved, nil
}

func (m *MockUsageReader) SaveManual(ctx context.Context, now time.Time, hours float64) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	day := domain.DayKey(now)
	if _, ok := m.saved[day]; ok {
		return domain.ErrConflict
	}
	m.saved[day] = hours
	hoursCopy := hours
	m.resolved = domain.ResolvedUsage{Hours: &hoursCopy, Source: domain.UsageSourceManual}
	return nil
}

// MockNutritionRepository is a mock implementation of repository.NutritionRepository
type MockNutritionRepository struct {
	entries         map[uuid.UUID]*domain.NutritionLogEntry
	clientRequestID map[string]*domain.NutritionLogEntry
	listResult      []domain.NutritionLogEntry
	err             error
}

func NewMockNutritionRepository() *MockNutritionRepository {
	return &MockNutritionRepository{
		entries:         make(map[uuid.UUID]*domain.NutritionLogEntry),
		clientRequestID: make(map[string]*domain.NutritionLogEntry),
	}
}

func (m *MockNutritionRepository) Create(ctx context.Context, entry *domain.NutritionLogEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.ID] = entry
	if entry.ClientRequestID != nil {
		m.clientRequestID[*entry.ClientRequestID] = entry
	}
	return nil
}

func (m *MockNutritionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.NutritionLogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockNutritionRepository) List(ctx context.Context, filter domain.NutritionEntryFilter) ([]domain.NutritionLogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.NutritionLogEntry, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.NutritionLogEntry
	for _, entry := range m.entries {
		if filter.Day != nil && entry.Day != *filter.Day {
			continue
		}
		result = append(result, *entry)
	}
	return result, nil
}

// SumByDay mirrors the SQL aggregation: strict day equality only.
func (m *MockNutritionRepository) SumByDay(ctx context.Context, day string) (*domain.NutritionDailyTotals, error) {
	if m.err != nil {
		return nil, m.err
	}
	totals := &domain.NutritionDailyTotals{Day: day}
	for _, entry := range m.entries {
		if entry.Day != day {
			continue
		}
		totals.Calories += entry.Calories
		totals.Protein += entry.Protein
		totals.Carbs += entry.Carbs
		totals.Fat += entry.Fat
		totals.Fiber += entry.Fiber
		totals.EntryCount++
	}
	return totals, nil
}

func (m *MockNutritionRepository) GetByClientRequestID(ctx context.Context, clientRequestID string) (*domain.NutritionLogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.clientRequestID[clientRequestID], nil
}

// MockInsightsLLM is a mock implementation of llm.WellnessInsightsLLM
type MockInsightsLLM struct {
	output *domain.WellnessInsightsOutput
	err    error
	gotCtx *domain.WellnessInsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.WellnessInsightsContext) (*domain.WellnessInsightsOutput, error) {
	m.gotCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
