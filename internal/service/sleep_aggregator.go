package service

import (
	"sort"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

// stageHours accumulates per-stage totals for one wake-up day.
type stageHours struct {
	core, rem, deep, unspecified float64
}

// aggregateSleepDays groups raw sleep-stage intervals into one summary per
// wake-up calendar day: every interval is attributed to the day containing
// its end instant, so an overnight session starting at 23:00 and ending at
// 07:00 belongs entirely to the morning's day. Sleep quality is judged
// against the day the person woke up into, not the day they fell asleep.
// Unspecified-stage time counts toward the total only. Output is sorted
// ascending by day.
func aggregateSleepDays(intervals []domain.SleepStageInterval) []domain.DailySleepSummary {
	buckets := make(map[string]*stageHours)

	for _, iv := range intervals {
		day := domain.DayKey(iv.End)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &stageHours{}
			buckets[day] = bucket
		}

		hours := iv.Hours()
		switch iv.Stage {
		case domain.SleepStageCore:
			bucket.core += hours
		case domain.SleepStageREM:
			bucket.rem += hours
		case domain.SleepStageDeep:
			bucket.deep += hours
		default:
			bucket.unspecified += hours
		}
	}

	summaries := make([]domain.DailySleepSummary, 0, len(buckets))
	for day, bucket := range buckets {
		summaries = append(summaries, domain.DailySleepSummary{
			Day:        day,
			TotalHours: bucket.core + bucket.rem + bucket.deep + bucket.unspecified,
			CoreHours:  bucket.core,
			RemHours:   bucket.rem,
			DeepHours:  bucket.deep,
		})
	}

	// Day keys are fixed YYYY-MM-DD, so lexical order is chronological.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Day < summaries[j].Day
	})

	return summaries
}

// summaryForDay picks the summary for one day key, or nil if that day has no
// intervals ending in it.
func summaryForDay(summaries []domain.DailySleepSummary, day string) *domain.DailySleepSummary {
	for i := range summaries {
		if summaries[i].Day == day {
			return &summaries[i]
		}
	}
	return nil
}
