package monitor

import (
	"context"
	"testing"
)

func TestRecorder_RecordCrossing_Ratchet(t *testing.T) {
	ctx := context.Background()
	store := newFakeUsageStore()
	rec := NewRecorder(store)

	events := []struct {
		hours float64
		want  float64
	}{
		{1, 1},
		{2, 2},
		{1, 2}, // late, smaller event must not regress the record
		{4, 4},
		{3, 4},
	}
	for _, ev := range events {
		if err := rec.RecordCrossing(ctx, "2024-01-16", ev.hours); err != nil {
			t.Fatalf("RecordCrossing(%v) error = %v", ev.hours, err)
		}
		if store.record.MaxHoursCrossedToday != ev.want {
			t.Fatalf("after event %v: record = %v, want %v", ev.hours, store.record.MaxHoursCrossedToday, ev.want)
		}
	}
}

func TestRecorder_RecordCrossing_DayRollover(t *testing.T) {
	ctx := context.Background()
	store := newFakeUsageStore()
	rec := NewRecorder(store)

	if err := rec.RecordCrossing(ctx, "2024-01-16", 7); err != nil {
		t.Fatalf("RecordCrossing() error = %v", err)
	}
	// First event of a new day resets before ratcheting.
	if err := rec.RecordCrossing(ctx, "2024-01-17", 1); err != nil {
		t.Fatalf("RecordCrossing() error = %v", err)
	}

	if store.record.Day != "2024-01-17" || store.record.MaxHoursCrossedToday != 1 {
		t.Fatalf("rollover not applied: %+v", store.record)
	}
}

func TestRecorder_Observe(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		hoursUsed float64
		want      float64
	}{
		{"below first boundary", 0.9, 0},
		{"just past one hour", 1.2, 1},
		{"mid range", 5.7, 5},
		{"capped at twelve", 15, MaxThresholdHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeUsageStore()
			rec := NewRecorder(store)

			if err := rec.Observe(ctx, "2024-01-16", tt.hoursUsed); err != nil {
				t.Fatalf("Observe() error = %v", err)
			}
			if store.record == nil {
				t.Fatalf("record not initialized")
			}
			if store.record.MaxHoursCrossedToday != tt.want {
				t.Fatalf("Observe(%v) recorded %v, want %v", tt.hoursUsed, store.record.MaxHoursCrossedToday, tt.want)
			}
		})
	}
}
