// Package monitor holds both sides of the usage-monitoring contract: the
// Recorder, which the isolated usage-monitor process uses to maintain the
// shared threshold record, and the Bridge, through which the scoring engine
// reads it back. The two run in separate processes and meet only at the
// shared keyed store.
package monitor

import (
	"context"
	"math"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

// MaxThresholdHours is the highest hourly usage boundary the monitor reports.
const MaxThresholdHours = 12

// UsageStore is the slice of the shared keyed store the monitor packages use.
// *sharedstore.Store satisfies it; tests supply fakes.
type UsageStore interface {
	ThresholdRecord(ctx context.Context) (*domain.UsageThresholdRecord, error)
	ResetThreshold(ctx context.Context, day string) error
	RatchetThreshold(ctx context.Context, day string, hours float64) error
	ManualUsage(ctx context.Context, day string) (float64, bool, error)
	SetManualUsage(ctx context.Context, day string, hours float64) error
}

// Recorder applies usage observations to the shared threshold record on
// behalf of the monitor process. It owns the record: it resets it at day
// rollover and ratchets it upward within a day.
type Recorder struct {
	store UsageStore
}

// NewRecorder creates a Recorder over the shared store.
func NewRecorder(store UsageStore) *Recorder {
	return &Recorder{store: store}
}

// Observe converts a continuous usage reading (hours used so far in the day
// keyed by day) into the discrete hourly threshold crossed, then records it.
// Readings below the first boundary only trigger the rollover handling.
func (r *Recorder) Observe(ctx context.Context, day string, hoursUsed float64) error {
	crossed := math.Floor(hoursUsed)
	if crossed > MaxThresholdHours {
		crossed = MaxThresholdHours
	}
	if crossed < 1 {
		return r.rolloverIfNeeded(ctx, day)
	}
	return r.RecordCrossing(ctx, day, crossed)
}

// RecordCrossing handles one hourly threshold event for the given day. Out of
// order or repeated events are harmless: the stored value only ever ratchets
// upward within a day.
func (r *Recorder) RecordCrossing(ctx context.Context, day string, thresholdHours float64) error {
	if err := r.rolloverIfNeeded(ctx, day); err != nil {
		return err
	}
	return r.store.RatchetThreshold(ctx, day, thresholdHours)
}

// rolloverIfNeeded resets the record to {day, 0} when the stored record is
// missing or belongs to a previous day.
func (r *Recorder) rolloverIfNeeded(ctx context.Context, day string) error {
	rec, err := r.store.ThresholdRecord(ctx)
	if err != nil {
		return err
	}
	if rec != nil && rec.Day == day {
		return nil
	}
	return r.store.ResetThreshold(ctx, day)
}
