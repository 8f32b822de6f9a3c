package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/api/validation"
	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/service"
	"github.com/Hariom009/WellPlate-sub000/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type NutritionHandler struct {
	service service.NutritionService
}

func NewNutritionHandler(service service.NutritionService) *NutritionHandler {
	return &NutritionHandler{service: service}
}

// Create handles POST /v1/nutrition/entries
// @Summary Log a food entry
// @Description Record a nutrition log entry for a calendar day. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body domain.CreateNutritionEntryRequest true "Food entry data"
// @Success 201 {object} domain.NutritionEntryResponse "New entry created"
// @Success 200 {object} domain.NutritionEntryResponse "Existing entry returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /nutrition/entries [post]
func (h *NutritionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNutritionEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, isExisting, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create nutrition entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK) // Return 200 for idempotent duplicate
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/nutrition/entries
// @Summary List food entries
// @Description Fetch paginated nutrition history. Filter by calendar day. Results sorted by logged_at descending (newest first).
// @Tags nutrition
// @Produce json
// @Param day query string false "Calendar day filter (YYYY-MM-DD)" example(2024-01-16)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.NutritionEntryListResponse "Nutrition entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /nutrition/entries [get]
func (h *NutritionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseEntryFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list nutrition entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetDayTotals handles GET /v1/nutrition/days/{day}
// @Summary Get a day's macro totals
// @Description Sum the macros logged for one calendar day. Only entries whose day matches exactly contribute; an empty day returns zero totals with entry_count 0.
// @Tags nutrition
// @Produce json
// @Param day path string true "Calendar day (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.NutritionDailyTotals "Macro totals for the day"
// @Failure 400 {object} problem.Problem "Invalid day format"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /nutrition/days/{day} [get]
func (h *NutritionHandler) GetDayTotals(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	if _, err := domain.ParseDayKey(day); err != nil {
		problem.BadRequest("Invalid day format, expected YYYY-MM-DD").Write(w)
		return
	}

	totals, err := h.service.DayTotals(r.Context(), day)
	if err != nil {
		problem.InternalError("Failed to compute day totals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(totals)
}

func parseEntryFilter(r *http.Request) (domain.NutritionEntryFilter, []problem.FieldError) {
	var filter domain.NutritionEntryFilter
	var fieldErrors []problem.FieldError

	if dayStr := r.URL.Query().Get("day"); dayStr != "" {
		if _, err := time.Parse(domain.DayKeyLayout, dayStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "day",
				Message: "must be a calendar day in YYYY-MM-DD format",
			})
		} else {
			filter.Day = &dayStr
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
