package domain

import "time"

// StressLevel classifies a total wellness/stress score into one of five
// contiguous bands.
// @Description Stress band: excellent, good, moderate, high, or very_high.
type StressLevel string

const (
	StressLevelExcellent StressLevel = "excellent"
	StressLevelGood      StressLevel = "good"
	StressLevelModerate  StressLevel = "moderate"
	StressLevelHigh      StressLevel = "high"
	StressLevelVeryHigh  StressLevel = "very_high"
)

// FactorScore is the scored view of one life-signal domain. Score is in
// [0, Max] with higher values contributing more stress. Recomputed every
// engine pass, never persisted.
type FactorScore struct {
	// Factor display title
	Title string `json:"title" example:"Sleep"`
	// Stress contribution in [0, max]
	Score float64 `json:"score" example:"12.5"`
	// Maximum possible contribution (always 25)
	Max float64 `json:"max" example:"25"`
	// Short status label
	Status string `json:"status" example:"No data"`
	// One-line explanation of the score
	Detail string `json:"detail" example:"No sleep recorded for today; using the neutral default."`
}

// WellnessScore is the composed result: the sum of the four factor scores
// and its severity band.
type WellnessScore struct {
	Total float64     `json:"total" example:"37.5"`
	Level StressLevel `json:"level" example:"good"`
}

// WellnessResponse is the response for the score recompute endpoint. When
// NeedsPermission is true the sensor grant is missing and no scores are
// computed; all other fields are zero-valued.
// @Description Composite wellness score with per-factor breakdown.
type WellnessResponse struct {
	// True when the sensor-read permission has not been granted
	NeedsPermission bool `json:"needs_permission" example:"false"`
	// Per-factor breakdown (absent when needs_permission is true)
	Exercise *FactorScore `json:"exercise,omitempty"`
	Sleep    *FactorScore `json:"sleep,omitempty"`
	Diet     *FactorScore `json:"diet,omitempty"`
	Usage    *FactorScore `json:"usage,omitempty"`
	// Total stress score in [0,100]
	Total float64 `json:"total" example:"37.5"`
	// Severity band for the total
	Level StressLevel `json:"level,omitempty" example:"good"`
	// The two factors contributing the most stress, highest first
	TopStressors []FactorScore `json:"top_stressors,omitempty"`
	// When this pass was computed
	ComputedAt time.Time `json:"computed_at"`
}

// WellnessInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated wellness insights.
type WellnessInsightsOutput struct {
	// Summary of today's wellness picture (2-3 sentences)
	Summary string `json:"summary" example:"Your overall stress level is moderate today..."`
	// Observations about the factor breakdown (3-6 items)
	Observations []string `json:"observations" example:"[\"Device usage is your largest stress contributor\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Aim for a short walk to close the activity gap\"]"`
}

// WellnessInsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type WellnessInsightsContext struct {
	Total        float64       `json:"total"`
	Level        StressLevel   `json:"level"`
	Factors      []FactorScore `json:"factors"`
	TopStressors []FactorScore `json:"top_stressors"`
}

// WellnessInsightsResponse is the response for the insights endpoint.
type WellnessInsightsResponse struct {
	Total        float64                `json:"total" example:"37.5"`
	Level        StressLevel            `json:"level" example:"good"`
	TopStressors []FactorScore          `json:"top_stressors"`
	Insights     WellnessInsightsOutput `json:"insights"`
}
