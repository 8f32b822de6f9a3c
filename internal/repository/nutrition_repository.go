package repository

import (
	"context"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NutritionRepository interface {
	Create(ctx context.Context, entry *domain.NutritionLogEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.NutritionLogEntry, error)
	List(ctx context.Context, filter domain.NutritionEntryFilter) ([]domain.NutritionLogEntry, error)
	SumByDay(ctx context.Context, day string) (*domain.NutritionDailyTotals, error)
	GetByClientRequestID(ctx context.Context, clientRequestID string) (*domain.NutritionLogEntry, error)
}

type nutritionRepository struct {
	db *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) Create(ctx context.Context, entry *domain.NutritionLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *nutritionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.NutritionLogEntry, error) {
	var entry domain.NutritionLogEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *nutritionRepository) List(ctx context.Context, filter domain.NutritionEntryFilter) ([]domain.NutritionLogEntry, error) {
	query := r.db.WithContext(ctx).Order("logged_at DESC")

	if filter.Day != nil {
		query = query.Where("day = ?", *filter.Day)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with logged_at < cursor.LoggedAt
			// or same logged_at but id < cursor.ID
			query = query.Where(
				"(logged_at < ?) OR (logged_at = ? AND id < ?)",
				cursor.LoggedAt, cursor.LoggedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.NutritionLogEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// SumByDay totals the macros for entries whose stored day equals day exactly;
// entries dated in the future never leak into today's aggregate. An empty day
// yields zero totals with EntryCount 0, which is valid no-data, not an error.
func (r *nutritionRepository) SumByDay(ctx context.Context, day string) (*domain.NutritionDailyTotals, error) {
	totals := domain.NutritionDailyTotals{Day: day}

	row := r.db.WithContext(ctx).
		Model(&domain.NutritionLogEntry{}).
		Select("COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0), COALESCE(SUM(carbs), 0), COALESCE(SUM(fat), 0), COALESCE(SUM(fiber), 0), COUNT(*)").
		Where("day = ?", day).
		Row()

	if err := row.Scan(&totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fat, &totals.Fiber, &totals.EntryCount); err != nil {
		return nil, err
	}

	return &totals, nil
}

func (r *nutritionRepository) GetByClientRequestID(ctx context.Context, clientRequestID string) (*domain.NutritionLogEntry, error) {
	var entry domain.NutritionLogEntry
	err := r.db.WithContext(ctx).
		Where("client_request_id = ?", clientRequestID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &entry, nil
}
