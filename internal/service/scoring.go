package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

const (
	// FactorMaxScore is the ceiling of every factor's stress contribution.
	FactorMaxScore = 25.0

	// NeutralFactorScore is assigned when a factor's inputs are entirely
	// absent. It is the exact midpoint so missing data neither rewards nor
	// penalizes the user; a present zero value never takes this path.
	NeutralFactorScore = 12.5

	// Exercise targets: hitting either fully offsets that signal's stress.
	StepsTarget        = 10000.0
	ActiveEnergyTarget = 600.0

	// Diet reference amounts (grams per day).
	ProteinTargetGrams = 60.0
	FiberTargetGrams   = 25.0
	FatLimitGrams      = 65.0
	CarbLimitGrams     = 225.0

	// DeepSleepTargetRatio is the deep-sleep share at which the deep-sleep
	// penalty reaches zero.
	DeepSleepTargetRatio = 0.18

	// TopStressorCount is how many factors the insight text calls out.
	TopStressorCount = 2
)

// curvePoint is one (breakpoint, value) pair of a piecewise-linear curve.
type curvePoint struct {
	x, y float64
}

// piecewiseCurve evaluates a piecewise-linear function defined by ordered
// breakpoints. Inputs below the first breakpoint take its value; inputs at or
// above the last breakpoint take the terminal value (which may break the
// linear trend, e.g. the oversleep plateau); in between, segments interpolate
// linearly. One shared evaluator keeps the factor curves from drifting apart.
type piecewiseCurve struct {
	points   []curvePoint
	terminal float64
}

func (c piecewiseCurve) eval(x float64) float64 {
	if x < c.points[0].x {
		return c.points[0].y
	}
	if x >= c.points[len(c.points)-1].x {
		return c.terminal
	}
	for i := 0; i < len(c.points)-1; i++ {
		p0, p1 := c.points[i], c.points[i+1]
		if x < p1.x {
			t := clamp((x-p0.x)/(p1.x-p0.x), 0, 1)
			return lerp(p0.y, p1.y, t)
		}
	}
	return c.terminal
}

// sleepBaseCurve maps total sleep hours to a 0-20 base stress score, with the
// 7-9h sweet spot scoring lowest and both extremes penalized.
var sleepBaseCurve = piecewiseCurve{
	points:   []curvePoint{{4, 20}, {5, 18}, {6, 12}, {7, 5}, {9, 0}, {10, 4}},
	terminal: 6,
}

// usageCurve maps device usage hours to a 0-25 stress score; stress climbs
// with screen time and saturates at eight hours.
var usageCurve = piecewiseCurve{
	points:   []curvePoint{{1, 2}, {2, 6}, {4, 14}, {6, 20}, {8, 24}},
	terminal: 25,
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp(t, 0, 1)
}

// scoreExercise scores today's physical activity from the step count and the
// active-energy value, each independently optional. A present zero is a real,
// known fact (no activity) and scores through the formula, yielding the
// maximum stress contribution rather than the neutral fallback.
func scoreExercise(steps, energy *float64) domain.FactorScore {
	factor := domain.FactorScore{Title: "Exercise", Max: FactorMaxScore}

	if steps == nil && energy == nil {
		factor.Score = NeutralFactorScore
		factor.Status = "No data"
		factor.Detail = "No activity samples available today; using the neutral default."
		return factor
	}

	var parts []float64
	if steps != nil {
		parts = append(parts, FactorMaxScore*(1-clamp(*steps/StepsTarget, 0, 1)))
	}
	if energy != nil {
		parts = append(parts, FactorMaxScore*(1-clamp(*energy/ActiveEnergyTarget, 0, 1)))
	}

	sum := 0.0
	for _, p := range parts {
		sum += p
	}
	factor.Score = sum / float64(len(parts))

	switch {
	case factor.Score <= 5:
		factor.Status = "Very active"
	case factor.Score <= 12.5:
		factor.Status = "Active"
	case factor.Score <= 19:
		factor.Status = "Light activity"
	default:
		factor.Status = "Sedentary"
	}
	factor.Detail = exerciseDetail(steps, energy)
	return factor
}

func exerciseDetail(steps, energy *float64) string {
	switch {
	case steps != nil && energy != nil:
		return fmt.Sprintf("%.0f steps and %.0f kcal active energy today.", *steps, *energy)
	case steps != nil:
		return fmt.Sprintf("%.0f steps today; no active energy sample.", *steps)
	default:
		return fmt.Sprintf("%.0f kcal active energy today; no step sample.", *energy)
	}
}

// scoreSleep scores last night's sleep from the wake-up day's summary. The
// base curve judges total duration; a deep-sleep penalty of up to 5 points is
// added when deep sleep falls short of 18% of the total.
func scoreSleep(summary *domain.DailySleepSummary) domain.FactorScore {
	factor := domain.FactorScore{Title: "Sleep", Max: FactorMaxScore}

	if summary == nil {
		factor.Score = NeutralFactorScore
		factor.Status = "No data"
		factor.Detail = "No sleep recorded for today; using the neutral default."
		return factor
	}

	base := sleepBaseCurve.eval(summary.TotalHours)

	penalty := 2.5 // neutral when there is a summary but zero recorded hours
	if summary.TotalHours > 0 {
		deepRatio := summary.DeepHours / summary.TotalHours
		penalty = clamp((DeepSleepTargetRatio-deepRatio)/DeepSleepTargetRatio, 0, 1) * 5
	}

	factor.Score = math.Min(FactorMaxScore, base+penalty)

	switch {
	case summary.TotalHours >= 7 && summary.TotalHours < 9:
		factor.Status = "Well rested"
	case summary.TotalHours < 6:
		factor.Status = "Short sleep"
	case summary.TotalHours >= 9:
		factor.Status = "Long sleep"
	default:
		factor.Status = "Slightly short"
	}
	factor.Detail = fmt.Sprintf("%.1fh total, %.1fh deep sleep on %s.", summary.TotalHours, summary.DeepHours, summary.Day)
	return factor
}

// scoreDiet scores today's macro balance. Protein and fiber progress reduce
// stress; fat and carb excess raise it. No logged entries means no data, not
// a bad diet.
func scoreDiet(totals *domain.NutritionDailyTotals) domain.FactorScore {
	factor := domain.FactorScore{Title: "Diet", Max: FactorMaxScore}

	if totals == nil || totals.EntryCount == 0 {
		factor.Score = NeutralFactorScore
		factor.Status = "No data"
		factor.Detail = "No food logged today; using the neutral default."
		return factor
	}

	proteinRatio := clamp(totals.Protein/ProteinTargetGrams, 0, 1)
	fiberRatio := clamp(totals.Fiber/FiberTargetGrams, 0, 1)
	balanced := 0.55*proteinRatio + 0.45*fiberRatio

	fatRatio := clamp(totals.Fat/FatLimitGrams, 0, 1)
	carbRatio := clamp(totals.Carbs/CarbLimitGrams, 0, 1)
	excess := 0.45*fatRatio + 0.55*carbRatio

	netBalance := clamp(balanced-0.6*excess+0.5, 0, 1)
	factor.Score = FactorMaxScore * (1 - netBalance)

	switch {
	case factor.Score <= 8:
		factor.Status = "Well balanced"
	case factor.Score <= 16:
		factor.Status = "Fairly balanced"
	default:
		factor.Status = "Unbalanced"
	}
	factor.Detail = fmt.Sprintf("%d entries: %.0fg protein, %.0fg fiber, %.0fg fat, %.0fg carbs.",
		totals.EntryCount, totals.Protein, totals.Fiber, totals.Fat, totals.Carbs)
	return factor
}

// scoreUsage scores the resolved device-usage value. A saved zero is present
// and scores through the curve (minimal usage, 2 points), never the neutral
// fallback.
func scoreUsage(usage domain.ResolvedUsage) domain.FactorScore {
	factor := domain.FactorScore{Title: "Device Usage", Max: FactorMaxScore}

	if !usage.Present() {
		factor.Score = NeutralFactorScore
		factor.Status = "No data"
		factor.Detail = "No usage detected or entered today; using the neutral default."
		return factor
	}

	hours := *usage.Hours
	factor.Score = usageCurve.eval(hours)

	switch {
	case hours < 2:
		factor.Status = "Light usage"
	case hours < 4:
		factor.Status = "Moderate usage"
	case hours < 6:
		factor.Status = "Heavy usage"
	default:
		factor.Status = "Very heavy usage"
	}
	factor.Detail = fmt.Sprintf("%.1fh of device usage today (%s).", hours, usage.Source)
	return factor
}

// composeScore sums the four factor scores into the total, which is naturally
// bounded to [0,100] since each addend is bounded to [0,25].
func composeScore(exercise, sleep, diet, usage domain.FactorScore) domain.WellnessScore {
	total := exercise.Score + sleep.Score + diet.Score + usage.Score
	return domain.WellnessScore{
		Total: total,
		Level: classifyLevel(total),
	}
}

// classifyLevel maps the total to one of five contiguous severity bands.
func classifyLevel(total float64) domain.StressLevel {
	switch {
	case total <= 20:
		return domain.StressLevelExcellent
	case total <= 40:
		return domain.StressLevelGood
	case total <= 60:
		return domain.StressLevelModerate
	case total <= 80:
		return domain.StressLevelHigh
	default:
		return domain.StressLevelVeryHigh
	}
}

// topStressors returns the factors sorted by descending stress contribution,
// truncated to the top two. Used only for downstream insight text.
func topStressors(factors []domain.FactorScore) []domain.FactorScore {
	sorted := make([]domain.FactorScore, len(factors))
	copy(sorted, factors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > TopStressorCount {
		sorted = sorted[:TopStressorCount]
	}
	return sorted
}
