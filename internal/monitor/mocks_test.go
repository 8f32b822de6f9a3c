package monitor

import (
	"context"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

// fakeUsageStore is an in-memory UsageStore with the same ratchet and
// write-once semantics as the SQLite-backed store.
type fakeUsageStore struct {
	record *domain.UsageThresholdRecord
	manual map[string]float64
	err    error
}

func newFakeUsageStore() *fakeUsageStore {
	return &fakeUsageStore{manual: make(map[string]float64)}
}

func (f *fakeUsageStore) ThresholdRecord(ctx context.Context) (*domain.UsageThresholdRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.record == nil {
		return nil, nil
	}
	rec := *f.record
	return &rec, nil
}

func (f *fakeUsageStore) ResetThreshold(ctx context.Context, day string) error {
	if f.err != nil {
		return f.err
	}
	f.record = &domain.UsageThresholdRecord{Day: day, UpdatedAt: time.Now()}
	return nil
}

func (f *fakeUsageStore) RatchetThreshold(ctx context.Context, day string, hours float64) error {
	if f.err != nil {
		return f.err
	}
	if f.record == nil || f.record.Day != day || f.record.MaxHoursCrossedToday >= hours {
		return nil
	}
	f.record.MaxHoursCrossedToday = hours
	f.record.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUsageStore) ManualUsage(ctx context.Context, day string) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	hours, ok := f.manual[day]
	return hours, ok, nil
}

func (f *fakeUsageStore) SetManualUsage(ctx context.Context, day string, hours float64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.manual[day]; ok {
		return domain.ErrConflict
	}
	f.manual[day] = hours
	return nil
}
