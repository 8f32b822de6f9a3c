package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hariom009/WellPlate-sub000/internal/api/validation"
	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/llm"
	"github.com/Hariom009/WellPlate-sub000/internal/service"
	"github.com/Hariom009/WellPlate-sub000/pkg/problem"
)

// WellnessHandler handles wellness score endpoints.
type WellnessHandler struct {
	wellnessService service.WellnessService
	insightsService service.InsightsService
}

// NewWellnessHandler creates a new WellnessHandler.
func NewWellnessHandler(wellnessService service.WellnessService, insightsService service.InsightsService) *WellnessHandler {
	return &WellnessHandler{
		wellnessService: wellnessService,
		insightsService: insightsService,
	}
}

// GetScore handles GET /v1/wellness/score
// @Summary Get today's wellness score
// @Description Recompute the composite 0-100 stress score from today's exercise, sleep, diet and device-usage signals. Missing signals fall back to a neutral factor score; a missing sensor grant yields a needs_permission response instead of scores.
// @Tags wellness
// @Produce json
// @Success 200 {object} domain.WellnessResponse "Computed score, or needs_permission state"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /wellness/score [get]
func (h *WellnessHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	response, err := h.wellnessService.Recompute(r.Context())
	if err != nil {
		problem.InternalError("Failed to compute wellness score").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// SetManualUsage handles PUT /v1/wellness/usage/manual
// @Summary Record today's device usage manually
// @Description Save a manual device-usage value for today and return the recomputed score. Each day accepts exactly one manual entry; a second write returns 409. An automatic monitor reading for today always wins over the manual value.
// @Tags wellness
// @Accept json
// @Produce json
// @Param request body domain.SetManualUsageRequest true "Hours of device usage today"
// @Success 200 {object} domain.WellnessResponse "Recomputed score including the manual entry"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 409 {object} problem.Problem "A manual entry already exists for today"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /wellness/usage/manual [put]
func (h *WellnessHandler) SetManualUsage(w http.ResponseWriter, r *http.Request) {
	var req domain.SetManualUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.wellnessService.SetManualUsage(r.Context(), *req.Hours)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			problem.Conflict("A manual usage entry already exists for today").Write(w)
			return
		}
		problem.InternalError("Failed to save manual usage").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetUsage handles GET /v1/wellness/usage
// @Summary Get today's resolved device usage
// @Description Return the usage value scoring would use right now, with its source: the monitor's fresh automatic record, today's manual entry, or none.
// @Tags wellness
// @Produce json
// @Success 200 {object} domain.UsageResponse "Resolved usage for today"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /wellness/usage [get]
func (h *WellnessHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	response, err := h.wellnessService.ResolveUsage(r.Context())
	if err != nil {
		problem.InternalError("Failed to resolve device usage").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetInsights handles GET /v1/wellness/insights
// @Summary Get LLM-generated wellness insights
// @Description Recompute the score and generate a short narrative reading of it: a summary, observations about the top stressors, and practical guidance.
// @Tags wellness
// @Produce json
// @Success 200 {object} domain.WellnessInsightsResponse "Narrative insights"
// @Failure 403 {object} problem.Problem "Sensor permission not granted"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "Insights service not configured or unavailable"
// @Router /wellness/insights [get]
func (h *WellnessHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	response, err := h.insightsService.Generate(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrPermissionRequired) {
			problem.PermissionRequired("Sensor permission is required for insights").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) || errors.Is(err, llm.ErrOpenAIRequest) {
			problem.ServiceUnavailable("Insights are temporarily unavailable").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
