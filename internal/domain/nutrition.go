package domain

import (
	"time"

	"github.com/google/uuid"
)

type NutritionLogEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Day             string    `gorm:"type:varchar(10);not null;index:idx_nutrition_entries_day" json:"day"`
	Name            string    `gorm:"type:varchar(120);not null" json:"name"`
	Calories        float64   `gorm:"not null" json:"calories"`
	Protein         float64   `gorm:"not null" json:"protein"`
	Carbs           float64   `gorm:"not null" json:"carbs"`
	Fat             float64   `gorm:"not null" json:"fat"`
	Fiber           float64   `gorm:"not null" json:"fiber"`
	ClientRequestID *string   `gorm:"type:varchar(255);uniqueIndex:idx_nutrition_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	LoggedAt        time.Time `gorm:"not null;index" json:"logged_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NutritionLogEntry) TableName() string {
	return "nutrition_entries"
}

// CreateNutritionEntryRequest is the request body for logging a food entry.
// @Description Request payload for recording a nutrition log entry.
type CreateNutritionEntryRequest struct {
	// Calendar day the entry belongs to, fixed YYYY-MM-DD format
	Day string `json:"day" validate:"required,daykey" example:"2024-01-16"`
	// Short food or meal name
	Name string `json:"name" validate:"required,max=120" example:"Greek yogurt with berries"`
	// Energy in kcal (display aggregate only, not a scoring input)
	Calories float64 `json:"calories" validate:"gte=0,lte=10000" example:"220"`
	// Protein in grams
	Protein float64 `json:"protein" validate:"gte=0,lte=1000" example:"17"`
	// Carbohydrates in grams
	Carbs float64 `json:"carbs" validate:"gte=0,lte=1000" example:"24"`
	// Fat in grams
	Fat float64 `json:"fat" validate:"gte=0,lte=1000" example:"6"`
	// Fiber in grams
	Fiber float64 `json:"fiber" validate:"gte=0,lte=500" example:"3"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
	// Optional timestamp the food was eaten (defaults to now)
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2024-01-16T12:30:00Z"`
}

// NutritionEntryResponse is the response body for nutrition entry endpoints.
type NutritionEntryResponse struct {
	ID              uuid.UUID `json:"id"`
	Day             string    `json:"day" example:"2024-01-16"`
	Name            string    `json:"name"`
	Calories        float64   `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	Fiber           float64   `json:"fiber"`
	ClientRequestID *string   `json:"client_request_id,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
	CreatedAt       time.Time `json:"created_at"`
}

func (e *NutritionLogEntry) ToResponse() NutritionEntryResponse {
	return NutritionEntryResponse{
		ID:              e.ID,
		Day:             e.Day,
		Name:            e.Name,
		Calories:        e.Calories,
		Protein:         e.Protein,
		Carbs:           e.Carbs,
		Fat:             e.Fat,
		Fiber:           e.Fiber,
		ClientRequestID: e.ClientRequestID,
		LoggedAt:        e.LoggedAt,
		CreatedAt:       e.CreatedAt,
	}
}

// NutritionEntryListResponse is the response body for listing entries.
// @Description Paginated list of nutrition log entries.
type NutritionEntryListResponse struct {
	Data       []NutritionEntryResponse `json:"data"`
	Pagination PaginationResponse       `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// NutritionEntryFilter contains filter parameters for listing entries.
type NutritionEntryFilter struct {
	Day    *string
	Limit  int
	Cursor string
}

// NutritionDailyTotals sums the macros logged for one calendar day. Derived
// from entries whose stored day equals the target day exactly; entries dated
// in the future never contribute. An EntryCount of zero is a legitimate
// no-data state, not an error.
type NutritionDailyTotals struct {
	Day        string  `json:"day" example:"2024-01-16"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	EntryCount int     `json:"entry_count" example:"3"`
}
