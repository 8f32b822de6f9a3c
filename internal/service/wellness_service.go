package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/monitor"
	"github.com/Hariom009/WellPlate-sub000/internal/repository"
	"github.com/Hariom009/WellPlate-sub000/internal/sensor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WellnessService recomputes the composite wellness score on demand.
type WellnessService interface {
	// Recompute performs one full scoring pass for today.
	Recompute(ctx context.Context) (*domain.WellnessResponse, error)
	// SetManualUsage saves today's manual usage entry and recomputes.
	SetManualUsage(ctx context.Context, hours float64) (*domain.WellnessResponse, error)
	// ResolveUsage returns the usage input that scoring would use right now.
	ResolveUsage(ctx context.Context) (*domain.UsageResponse, error)
}

type wellnessService struct {
	sensors       sensor.Reader
	nutritionRepo repository.NutritionRepository
	usage         monitor.UsageReader
	now           func() time.Time
}

// NewWellnessService creates a new WellnessService.
func NewWellnessService(sensors sensor.Reader, nutritionRepo repository.NutritionRepository, usage monitor.UsageReader) WellnessService {
	return &wellnessService{
		sensors:       sensors,
		nutritionRepo: nutritionRepo,
		usage:         usage,
		now:           time.Now,
	}
}

func (s *wellnessService) Recompute(ctx context.Context) (*domain.WellnessResponse, error) {
	tracer := otel.Tracer("wellness-api/score")
	ctx, span := tracer.Start(ctx, "WellnessService.Recompute",
		trace.WithAttributes(
			attribute.String("score.day", domain.DayKey(s.now())),
		),
	)
	defer span.End()

	now := s.now()
	today := domain.DayKey(now)

	// Engine-level permission gate: without the sensor grant, scoring is
	// suppressed entirely rather than degraded to all-neutral.
	granted, err := s.sensors.AuthorizationStatus(ctx)
	if err != nil {
		log.Printf("authorization status check failed: %v", err)
	}
	if err != nil || !granted {
		span.SetAttributes(attribute.Bool("score.needs_permission", true))
		return &domain.WellnessResponse{NeedsPermission: true, ComputedAt: now}, nil
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	activityRange := domain.DateRange{Start: dayStart, End: now}
	// Overnight sleep starts the previous evening, so the interval fetch
	// reaches back a day; wake-up day attribution narrows it to today.
	sleepRange := domain.DateRange{Start: dayStart.AddDate(0, 0, -1), End: now}

	// The two sensor fetches are independent: each writes its own local and
	// swallows its own failure, so one failed fetch never blocks or cancels
	// its sibling.
	var (
		steps, energy *float64
		sleepSummary  *domain.DailySleepSummary
	)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		steps = s.fetchTodayCumulative(ctx, sensor.MetricSteps, activityRange, today)
		energy = s.fetchTodayCumulative(ctx, sensor.MetricActiveEnergy, activityRange, today)
	}()

	go func() {
		defer wg.Done()
		intervals, err := s.sensors.FetchSleepIntervals(ctx, sleepRange)
		if err != nil {
			log.Printf("sleep interval fetch unavailable: %v", err)
			return
		}
		sleepSummary = summaryForDay(aggregateSleepDays(intervals), today)
	}()

	wg.Wait()

	// The usage and nutrition reads are local and synchronous.
	resolvedUsage, err := s.usage.Resolve(ctx, now)
	if err != nil {
		log.Printf("usage resolution failed, treating as absent: %v", err)
		resolvedUsage = domain.ResolvedUsage{Source: domain.UsageSourceNone}
	}

	totals, err := s.nutritionRepo.SumByDay(ctx, today)
	if err != nil {
		log.Printf("nutrition totals unavailable, treating as absent: %v", err)
		totals = nil
	}

	exercise := scoreExercise(steps, energy)
	sleep := scoreSleep(sleepSummary)
	diet := scoreDiet(totals)
	usage := scoreUsage(resolvedUsage)
	score := composeScore(exercise, sleep, diet, usage)

	response := &domain.WellnessResponse{
		Exercise:     &exercise,
		Sleep:        &sleep,
		Diet:         &diet,
		Usage:        &usage,
		Total:        score.Total,
		Level:        score.Level,
		TopStressors: topStressors([]domain.FactorScore{exercise, sleep, diet, usage}),
		ComputedAt:   now,
	}

	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("score.output", string(outputJSON)))
	}

	return response, nil
}

// fetchTodayCumulative returns today's value for metric, or nil when the
// signal is unavailable or has no sample for today. Both conditions read the
// same downstream: absent.
func (s *wellnessService) fetchTodayCumulative(ctx context.Context, metric sensor.MetricKind, r domain.DateRange, today string) *float64 {
	samples, err := s.sensors.FetchCumulative(ctx, metric, r)
	if err != nil {
		log.Printf("%s fetch unavailable: %v", metric, err)
		return nil
	}
	for i := range samples {
		if domain.DayKey(samples[i].Timestamp) == today {
			return &samples[i].Value
		}
	}
	return nil
}

func (s *wellnessService) SetManualUsage(ctx context.Context, hours float64) (*domain.WellnessResponse, error) {
	if err := s.usage.SaveManual(ctx, s.now(), hours); err != nil {
		return nil, err
	}
	// The manual entry feeds the same resolution path as the monitor's
	// record, so a plain recompute picks it up synchronously.
	return s.Recompute(ctx)
}

func (s *wellnessService) ResolveUsage(ctx context.Context) (*domain.UsageResponse, error) {
	now := s.now()
	resolved, err := s.usage.Resolve(ctx, now)
	if err != nil {
		return nil, err
	}
	return &domain.UsageResponse{
		Day:    domain.DayKey(now),
		Hours:  resolved.Hours,
		Source: resolved.Source,
	}, nil
}
