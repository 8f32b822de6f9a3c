package monitor

import (
	"context"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

// UsageReader resolves the device-usage input for scoring.
type UsageReader interface {
	// Resolve returns the usage value for the calendar day containing now.
	Resolve(ctx context.Context, now time.Time) (domain.ResolvedUsage, error)
	// SaveManual persists the once-per-day manual entry for now's day.
	SaveManual(ctx context.Context, now time.Time, hours float64) error
}

// Bridge is the engine's read path into the monitor's shared record. The
// engine never writes the threshold record and is never pushed updates; it
// polls the store and validates freshness itself before trusting the value.
type Bridge struct {
	store UsageStore
}

// NewBridge creates a Bridge over the shared store.
func NewBridge(store UsageStore) *Bridge {
	return &Bridge{store: store}
}

// Resolve applies the resolution priority: a fresh auto-detected value wins,
// then today's manual entry, then absent. Freshness means the record's day
// key equals today's key; a stale record reads the same as a missing one,
// since the monitor may never have been authorized or fired today.
func (b *Bridge) Resolve(ctx context.Context, now time.Time) (domain.ResolvedUsage, error) {
	today := domain.DayKey(now)

	rec, err := b.store.ThresholdRecord(ctx)
	if err != nil {
		return domain.ResolvedUsage{Source: domain.UsageSourceNone}, err
	}
	if rec != nil && rec.Day == today {
		hours := rec.MaxHoursCrossedToday
		return domain.ResolvedUsage{Hours: &hours, Source: domain.UsageSourceAuto}, nil
	}

	hours, present, err := b.store.ManualUsage(ctx, today)
	if err != nil {
		return domain.ResolvedUsage{Source: domain.UsageSourceNone}, err
	}
	if present {
		return domain.ResolvedUsage{Hours: &hours, Source: domain.UsageSourceManual}, nil
	}

	return domain.ResolvedUsage{Source: domain.UsageSourceNone}, nil
}

// SaveManual persists the manual entry under today's key. The store enforces
// the write-once rule and returns domain.ErrConflict on a repeat save.
func (b *Bridge) SaveManual(ctx context.Context, now time.Time, hours float64) error {
	return b.store.SetManualUsage(ctx, domain.DayKey(now), hours)
}
