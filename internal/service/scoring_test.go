package service

import (
	"math"
	"testing"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

const scoreTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < scoreTolerance
}

func TestScoreExercise(t *testing.T) {
	tests := []struct {
		name      string
		steps     *float64
		energy    *float64
		wantScore float64
	}{
		{
			name:      "both absent falls back to neutral",
			wantScore: NeutralFactorScore,
		},
		{
			name:      "both targets met scores zero",
			steps:     floatPtr(10000),
			energy:    floatPtr(600),
			wantScore: 0,
		},
		{
			name:      "present zeros score max stress not neutral",
			steps:     floatPtr(0),
			energy:    floatPtr(0),
			wantScore: FactorMaxScore,
		},
		{
			name:      "half of both targets",
			steps:     floatPtr(5000),
			energy:    floatPtr(300),
			wantScore: 12.5,
		},
		{
			name:      "steps only at target",
			steps:     floatPtr(10000),
			wantScore: 0,
		},
		{
			name:      "energy only at half target",
			energy:    floatPtr(300),
			wantScore: 12.5,
		},
		{
			name:      "over target clamps to zero",
			steps:     floatPtr(25000),
			energy:    floatPtr(1200),
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreExercise(tt.steps, tt.energy)
			if !almostEqual(got.Score, tt.wantScore) {
				t.Errorf("scoreExercise() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Score < 0 || got.Score > FactorMaxScore {
				t.Errorf("scoreExercise() score %v out of [0,%v]", got.Score, FactorMaxScore)
			}
		})
	}
}

func TestScoreSleep(t *testing.T) {
	tests := []struct {
		name      string
		summary   *domain.DailySleepSummary
		wantScore float64
	}{
		{
			name:      "absent summary falls back to neutral",
			wantScore: NeutralFactorScore,
		},
		{
			name: "eight hours with exactly 18 percent deep",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 8,
				DeepHours:  1.44,
			},
			wantScore: 2.5,
		},
		{
			name: "boundary at seven hours",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 7,
				DeepHours:  7 * DeepSleepTargetRatio,
			},
			wantScore: 5,
		},
		{
			name: "boundary at nine hours",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 9,
				DeepHours:  9 * DeepSleepTargetRatio,
			},
			wantScore: 0,
		},
		{
			name: "oversleep plateau at eleven hours",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 11,
				DeepHours:  11 * DeepSleepTargetRatio,
			},
			wantScore: 6,
		},
		{
			name: "severe short sleep below first breakpoint",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 3,
				DeepHours:  3 * DeepSleepTargetRatio,
			},
			wantScore: 20,
		},
		{
			name: "no deep sleep adds full penalty",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 8,
				DeepHours:  0,
			},
			wantScore: 7.5,
		},
		{
			name: "half the deep target halves the penalty",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 8,
				DeepHours:  0.72,
			},
			wantScore: 5,
		},
		{
			name: "penalty never pushes past the factor ceiling",
			summary: &domain.DailySleepSummary{
				Day:        "2026-08-26",
				TotalHours: 4,
				DeepHours:  0,
			},
			wantScore: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreSleep(tt.summary)
			if !almostEqual(got.Score, tt.wantScore) {
				t.Errorf("scoreSleep() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Score < 0 || got.Score > FactorMaxScore {
				t.Errorf("scoreSleep() score %v out of [0,%v]", got.Score, FactorMaxScore)
			}
		})
	}
}

func TestScoreDiet(t *testing.T) {
	tests := []struct {
		name      string
		totals    *domain.NutritionDailyTotals
		wantScore float64
		exact     bool
	}{
		{
			name:      "nil totals falls back to neutral",
			wantScore: NeutralFactorScore,
			exact:     true,
		},
		{
			name:      "zero entries falls back to neutral",
			totals:    &domain.NutritionDailyTotals{Day: "2026-08-26"},
			wantScore: NeutralFactorScore,
			exact:     true,
		},
		{
			name: "targets met with no excess scores zero",
			totals: &domain.NutritionDailyTotals{
				Day:        "2026-08-26",
				Protein:    60,
				Fiber:      25,
				EntryCount: 3,
			},
			wantScore: 0,
			exact:     true,
		},
		{
			name: "no protein or fiber and full excess",
			totals: &domain.NutritionDailyTotals{
				Day:        "2026-08-26",
				Fat:        120,
				Carbs:      400,
				EntryCount: 4,
			},
			wantScore: 25,
			exact:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreDiet(tt.totals)
			if tt.exact && !almostEqual(got.Score, tt.wantScore) {
				t.Errorf("scoreDiet() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Score < 0 || got.Score > FactorMaxScore {
				t.Errorf("scoreDiet() score %v out of [0,%v]", got.Score, FactorMaxScore)
			}
		})
	}
}

func TestScoreDiet_LoggedEntriesNeverNeutralByAccident(t *testing.T) {
	// One entry whose macros happen to compute close to the neutral value
	// must still come from the formula, identified by a non-neutral status.
	totals := &domain.NutritionDailyTotals{
		Day:        "2026-08-26",
		Protein:    10,
		Fiber:      5,
		Fat:        30,
		Carbs:      100,
		EntryCount: 1,
	}
	got := scoreDiet(totals)
	if got.Status == "No data" {
		t.Errorf("scoreDiet() status = %q for logged entries, want computed status", got.Status)
	}
}

func TestScoreUsage(t *testing.T) {
	tests := []struct {
		name      string
		usage     domain.ResolvedUsage
		wantScore float64
	}{
		{
			name:      "absent usage falls back to neutral",
			usage:     domain.ResolvedUsage{Source: domain.UsageSourceNone},
			wantScore: NeutralFactorScore,
		},
		{
			name:      "saved zero scores two not neutral",
			usage:     domain.ResolvedUsage{Hours: floatPtr(0), Source: domain.UsageSourceManual},
			wantScore: 2,
		},
		{
			name:      "one hour",
			usage:     domain.ResolvedUsage{Hours: floatPtr(1), Source: domain.UsageSourceAuto},
			wantScore: 2,
		},
		{
			name:      "three hours interpolates",
			usage:     domain.ResolvedUsage{Hours: floatPtr(3), Source: domain.UsageSourceAuto},
			wantScore: 10,
		},
		{
			name:      "eight hours saturates",
			usage:     domain.ResolvedUsage{Hours: floatPtr(8), Source: domain.UsageSourceAuto},
			wantScore: 25,
		},
		{
			name:      "twelve hours stays at the ceiling",
			usage:     domain.ResolvedUsage{Hours: floatPtr(12), Source: domain.UsageSourceAuto},
			wantScore: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreUsage(tt.usage)
			if !almostEqual(got.Score, tt.wantScore) {
				t.Errorf("scoreUsage() score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Score < 0 || got.Score > FactorMaxScore {
				t.Errorf("scoreUsage() score %v out of [0,%v]", got.Score, FactorMaxScore)
			}
		})
	}
}

func TestComposeScore(t *testing.T) {
	t.Run("activity only day lands in the good band", func(t *testing.T) {
		exercise := scoreExercise(floatPtr(10000), floatPtr(600))
		sleep := scoreSleep(nil)
		diet := scoreDiet(nil)
		usage := scoreUsage(domain.ResolvedUsage{Source: domain.UsageSourceNone})

		got := composeScore(exercise, sleep, diet, usage)
		if !almostEqual(got.Total, 37.5) {
			t.Errorf("composeScore() total = %v, want 37.5", got.Total)
		}
		if got.Level != domain.StressLevelGood {
			t.Errorf("composeScore() level = %v, want %v", got.Level, domain.StressLevelGood)
		}
	})

	t.Run("all signals absent yields the all-neutral moderate score", func(t *testing.T) {
		exercise := scoreExercise(nil, nil)
		sleep := scoreSleep(nil)
		diet := scoreDiet(nil)
		usage := scoreUsage(domain.ResolvedUsage{Source: domain.UsageSourceNone})

		got := composeScore(exercise, sleep, diet, usage)
		if !almostEqual(got.Total, 50.0) {
			t.Errorf("composeScore() total = %v, want 50.0", got.Total)
		}
		if got.Level != domain.StressLevelModerate {
			t.Errorf("composeScore() level = %v, want %v", got.Level, domain.StressLevelModerate)
		}
	})
}

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		total float64
		want  domain.StressLevel
	}{
		{0, domain.StressLevelExcellent},
		{20, domain.StressLevelExcellent},
		{20.5, domain.StressLevelGood},
		{40, domain.StressLevelGood},
		{41, domain.StressLevelModerate},
		{60, domain.StressLevelModerate},
		{61, domain.StressLevelHigh},
		{80, domain.StressLevelHigh},
		{81, domain.StressLevelVeryHigh},
		{100, domain.StressLevelVeryHigh},
	}

	for _, tt := range tests {
		if got := classifyLevel(tt.total); got != tt.want {
			t.Errorf("classifyLevel(%v) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestTopStressors(t *testing.T) {
	factors := []domain.FactorScore{
		{Title: "Exercise", Score: 5},
		{Title: "Sleep", Score: 20},
		{Title: "Diet", Score: 12.5},
		{Title: "Device Usage", Score: 14},
	}

	got := topStressors(factors)
	if len(got) != TopStressorCount {
		t.Fatalf("topStressors() returned %d factors, want %d", len(got), TopStressorCount)
	}
	if got[0].Title != "Sleep" || got[1].Title != "Device Usage" {
		t.Errorf("topStressors() = [%s, %s], want [Sleep, Device Usage]", got[0].Title, got[1].Title)
	}
	// The input slice stays untouched.
	if factors[0].Title != "Exercise" {
		t.Errorf("topStressors() mutated its input")
	}
}

func TestTopStressors_TiesKeepFactorOrder(t *testing.T) {
	factors := []domain.FactorScore{
		{Title: "Exercise", Score: 12.5},
		{Title: "Sleep", Score: 12.5},
		{Title: "Diet", Score: 12.5},
		{Title: "Device Usage", Score: 12.5},
	}

	got := topStressors(factors)
	if got[0].Title != "Exercise" || got[1].Title != "Sleep" {
		t.Errorf("topStressors() = [%s, %s], want stable [Exercise, Sleep]", got[0].Title, got[1].Title)
	}
}
