package service

import (
	"context"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/repository"
	"github.com/Hariom009/WellPlate-sub000/pkg/pagination"
)

type NutritionService interface {
	Create(ctx context.Context, req *domain.CreateNutritionEntryRequest) (*domain.NutritionLogEntry, bool, error)
	List(ctx context.Context, filter domain.NutritionEntryFilter) (*domain.NutritionEntryListResponse, error)
	DayTotals(ctx context.Context, day string) (*domain.NutritionDailyTotals, error)
}

type nutritionService struct {
	repo repository.NutritionRepository
	now  func() time.Time
}

func NewNutritionService(repo repository.NutritionRepository) NutritionService {
	return &nutritionService{
		repo: repo,
		now:  time.Now,
	}
}

// Create creates a new nutrition log entry
// Returns (entry, isExisting, error) - isExisting is true if returning an existing entry due to idempotency
func (s *nutritionService) Create(ctx context.Context, req *domain.CreateNutritionEntryRequest) (*domain.NutritionLogEntry, bool, error) {
	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing entry
		}
	}

	loggedAt := s.now().UTC()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}

	entry := &domain.NutritionLogEntry{
		Day:             req.Day,
		Name:            req.Name,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Carbs:           req.Carbs,
		Fat:             req.Fat,
		Fiber:           req.Fiber,
		ClientRequestID: req.ClientRequestID,
		LoggedAt:        loggedAt,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, false, err
	}

	return entry, false, nil
}

func (s *nutritionService) List(ctx context.Context, filter domain.NutritionEntryFilter) (*domain.NutritionEntryListResponse, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	// Trim to actual limit
	if hasMore {
		entries = entries[:limit]
	}

	// Build response
	response := &domain.NutritionEntryListResponse{
		Data: make([]domain.NutritionEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:       last.ID,
			LoggedAt: last.LoggedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *nutritionService) DayTotals(ctx context.Context, day string) (*domain.NutritionDailyTotals, error) {
	return s.repo.SumByDay(ctx, day)
}
