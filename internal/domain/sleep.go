package domain

import "time"

// SleepStage classifies a sleep-stage interval reported by the sensor feed.
// @Description Sleep stage: CORE, REM, DEEP, or UNSPECIFIED.
type SleepStage string

const (
	SleepStageCore        SleepStage = "CORE"
	SleepStageREM         SleepStage = "REM"
	SleepStageDeep        SleepStage = "DEEP"
	SleepStageUnspecified SleepStage = "UNSPECIFIED"
)

// SleepStageInterval is a single sleep-stage interval from the sensor feed.
// Intervals are disjoint and non-overlapping by construction upstream.
type SleepStageInterval struct {
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Stage SleepStage `json:"stage"`
}

// Hours returns the interval duration in fractional hours.
func (i SleepStageInterval) Hours() float64 {
	return i.End.Sub(i.Start).Hours()
}

// DailySleepSummary aggregates the sleep-stage intervals attributed to one
// calendar day. Day is the wake-up day: the calendar day containing each
// interval's end instant, not the day sleep began. TotalHours includes
// unspecified-stage time, so it can exceed Core+REM+Deep.
type DailySleepSummary struct {
	Day        string  `json:"day" example:"2024-01-16"`
	TotalHours float64 `json:"total_hours" example:"7.5"`
	CoreHours  float64 `json:"core_hours" example:"4.1"`
	RemHours   float64 `json:"rem_hours" example:"1.9"`
	DeepHours  float64 `json:"deep_hours" example:"1.5"`
}

// RawSample is one dated value from a cumulative sensor query, one per
// calendar day. Ephemeral; never persisted by this service.
type RawSample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}
