package handler

import (
	"context"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/google/uuid"
)

// MockWellnessService is a mock implementation of WellnessService
type MockWellnessService struct {
	recomputeFunc      func(ctx context.Context) (*domain.WellnessResponse, error)
	setManualUsageFunc func(ctx context.Context, hours float64) (*domain.WellnessResponse, error)
	resolveUsageFunc   func(ctx context.Context) (*domain.UsageResponse, error)
}

func (m *MockWellnessService) Recompute(ctx context.Context) (*domain.WellnessResponse, error) {
	if m.recomputeFunc != nil {
		return m.recomputeFunc(ctx)
	}
	return neutralWellnessResponse(), nil
}

func (m *MockWellnessService) SetManualUsage(ctx context.Context, hours float64) (*domain.WellnessResponse, error) {
	if m.setManualUsageFunc != nil {
		return m.setManualUsageFunc(ctx, hours)
	}
	return neutralWellnessResponse(), nil
}

func (m *MockWellnessService) ResolveUsage(ctx context.Context) (*domain.UsageResponse, error) {
	if m.resolveUsageFunc != nil {
		return m.resolveUsageFunc(ctx)
	}
	return &domain.UsageResponse{Day: "2024-01-16", Source: domain.UsageSourceNone}, nil
}

func neutralWellnessResponse() *domain.WellnessResponse {
	neutral := func(title string) *domain.FactorScore {
		return &domain.FactorScore{Title: title, Score: 12.5, Max: 25, Status: "No data"}
	}
	return &domain.WellnessResponse{
		Exercise:   neutral("Exercise"),
		Sleep:      neutral("Sleep"),
		Diet:       neutral("Diet"),
		Usage:      neutral("Device Usage"),
		Total:      50.0,
		Level:      domain.StressLevelModerate,
		ComputedAt: time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC),
	}
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context) (*domain.WellnessInsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context) (*domain.WellnessInsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.WellnessInsightsResponse{
		Total: 50.0,
		Level: domain.StressLevelModerate,
		Insights: domain.WellnessInsightsOutput{
			Summary: "A neutral day with no recorded signals.",
		},
	}, nil
}

// MockNutritionService is a mock implementation of NutritionService
type MockNutritionService struct {
	createFunc    func(ctx context.Context, req *domain.CreateNutritionEntryRequest) (*domain.NutritionLogEntry, bool, error)
	listFunc      func(ctx context.Context, filter domain.NutritionEntryFilter) (*domain.NutritionEntryListResponse, error)
	dayTotalsFunc func(ctx context.Context, day string) (*domain.NutritionDailyTotals, error)
}

func (m *MockNutritionService) Create(ctx context.Context, req *domain.CreateNutritionEntryRequest) (*domain.NutritionLogEntry, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.NutritionLogEntry{
		ID:       uuid.New(),
		Day:      req.Day,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		LoggedAt: time.Now(),
	}, false, nil
}

func (m *MockNutritionService) List(ctx context.Context, filter domain.NutritionEntryFilter) (*domain.NutritionEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.NutritionEntryListResponse{
		Data:       []domain.NutritionEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockNutritionService) DayTotals(ctx context.Context, day string) (*domain.NutritionDailyTotals, error) {
	if m.dayTotalsFunc != nil {
		return m.dayTotalsFunc(ctx, day)
	}
	return &domain.NutritionDailyTotals{Day: day}, nil
}
