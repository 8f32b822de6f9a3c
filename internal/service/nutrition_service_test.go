package service

import (
	"context"
	"testing"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/google/uuid"
)

func TestNutritionService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       *domain.CreateNutritionEntryRequest
		setup     func(*MockNutritionRepository)
		wantExist bool
	}{
		{
			name: "valid entry",
			req: &domain.CreateNutritionEntryRequest{
				Day:      "2024-01-16",
				Name:     "Lentil soup",
				Calories: 320,
				Protein:  18,
				Carbs:    40,
				Fat:      8,
				Fiber:    12,
			},
		},
		{
			name: "idempotent request returns existing",
			req: &domain.CreateNutritionEntryRequest{
				Day:             "2024-01-16",
				Name:            "Lentil soup",
				ClientRequestID: strPtr("req-777"),
			},
			setup: func(repo *MockNutritionRepository) {
				existing := &domain.NutritionLogEntry{
					ID:              uuid.New(),
					Day:             "2024-01-16",
					Name:            "Lentil soup",
					ClientRequestID: strPtr("req-777"),
				}
				repo.entries[existing.ID] = existing
				repo.clientRequestID["req-777"] = existing
			},
			wantExist: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockNutritionRepository()
			if tt.setup != nil {
				tt.setup(repo)
			}
			svc := NewNutritionService(repo)

			entry, isExisting, err := svc.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if isExisting != tt.wantExist {
				t.Errorf("Create() isExisting = %v, want %v", isExisting, tt.wantExist)
			}
			if entry.Day != tt.req.Day {
				t.Errorf("Create() day = %s, want %s", entry.Day, tt.req.Day)
			}
		})
	}
}

func TestNutritionService_Create_DefaultsLoggedAt(t *testing.T) {
	repo := NewMockNutritionRepository()
	svc := NewNutritionService(repo)

	entry, _, err := svc.Create(context.Background(), &domain.CreateNutritionEntryRequest{
		Day:  "2024-01-16",
		Name: "Oatmeal",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if entry.LoggedAt.IsZero() {
		t.Errorf("Create() logged_at not defaulted")
	}

	explicit := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)
	entry, _, err = svc.Create(context.Background(), &domain.CreateNutritionEntryRequest{
		Day:      "2024-01-16",
		Name:     "Oatmeal again",
		LoggedAt: &explicit,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !entry.LoggedAt.Equal(explicit) {
		t.Errorf("Create() logged_at = %v, want %v", entry.LoggedAt, explicit)
	}
}

func TestNutritionService_List_Pagination(t *testing.T) {
	repo := NewMockNutritionRepository()
	// Repos return limit+1 rows to signal another page.
	base := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		repo.listResult = append(repo.listResult, domain.NutritionLogEntry{
			ID:       uuid.New(),
			Day:      "2024-01-16",
			Name:     "Snack",
			LoggedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	svc := NewNutritionService(repo)

	got, err := svc.List(context.Background(), domain.NutritionEntryFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got.Data) != 2 {
		t.Errorf("List() returned %d entries, want 2", len(got.Data))
	}
	if !got.Pagination.HasMore {
		t.Errorf("List() has_more = false, want true")
	}
	if got.Pagination.NextCursor == "" {
		t.Errorf("List() next_cursor empty, want encoded cursor")
	}
}

func TestNutritionService_List_LastPage(t *testing.T) {
	repo := NewMockNutritionRepository()
	repo.listResult = []domain.NutritionLogEntry{
		{ID: uuid.New(), Day: "2024-01-16", Name: "Dinner", LoggedAt: time.Now()},
	}
	svc := NewNutritionService(repo)

	got, err := svc.List(context.Background(), domain.NutritionEntryFilter{Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got.Data) != 1 {
		t.Errorf("List() returned %d entries, want 1", len(got.Data))
	}
	if got.Pagination.HasMore {
		t.Errorf("List() has_more = true, want false")
	}
	if got.Pagination.NextCursor != "" {
		t.Errorf("List() next_cursor = %q, want empty", got.Pagination.NextCursor)
	}
}

func TestNutritionService_DayTotals(t *testing.T) {
	repo := NewMockNutritionRepository()
	for _, e := range []*domain.NutritionLogEntry{
		{Day: "2024-01-16", Name: "Breakfast", Calories: 400, Protein: 20, Fiber: 6},
		{Day: "2024-01-16", Name: "Lunch", Calories: 600, Protein: 35, Fiber: 10},
		{Day: "2024-01-17", Name: "Tomorrow", Calories: 999, Protein: 99, Fiber: 99},
	} {
		if err := repo.Create(context.Background(), e); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	svc := NewNutritionService(repo)

	got, err := svc.DayTotals(context.Background(), "2024-01-16")
	if err != nil {
		t.Fatalf("DayTotals() error = %v", err)
	}
	if got.EntryCount != 2 {
		t.Errorf("DayTotals() entry_count = %d, want 2", got.EntryCount)
	}
	if !almostEqual(got.Protein, 55) || !almostEqual(got.Fiber, 16) {
		t.Errorf("DayTotals() protein/fiber = %v/%v, want 55/16", got.Protein, got.Fiber)
	}
}
