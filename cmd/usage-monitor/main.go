// usage-monitor is the isolated device-usage observer. It runs on its own
// schedule, polls a usage source for the hours used so far today, and
// maintains the shared threshold record that the API process reads. It never
// talks to the API directly; the shared store file is the only contact point.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/config"
	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/monitor"
	"github.com/Hariom009/WellPlate-sub000/internal/sharedstore"
)

func main() {
	cfg := config.Load()

	if cfg.UsageSourceURL == "" {
		log.Fatal("USAGE_SOURCE_URL is required for the usage monitor")
	}

	store, err := sharedstore.Open(cfg.SharedStorePath)
	if err != nil {
		log.Fatalf("Failed to open shared usage store: %v", err)
	}
	defer store.Close()

	recorder := monitor.NewRecorder(store)
	source := &usageSource{
		baseURL: cfg.UsageSourceURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	log.Printf("Usage monitor polling %s every %s", cfg.UsageSourceURL, cfg.UsagePollInterval)

	ticker := time.NewTicker(cfg.UsagePollInterval)
	defer ticker.Stop()

	poll(recorder, source)
	for range ticker.C {
		poll(recorder, source)
	}
}

// poll performs one observation cycle. Failures are logged and dropped; the
// next tick starts fresh and the API side degrades to its own fallbacks.
func poll(recorder *monitor.Recorder, source *usageSource) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	hoursUsed, err := source.hoursUsedToday(ctx)
	if err != nil {
		log.Printf("Usage source unavailable: %v", err)
		return
	}

	if err := recorder.Observe(ctx, domain.DayKey(now), hoursUsed); err != nil {
		log.Printf("Failed to record usage observation: %v", err)
	}
}

// usageSource reads the running total of today's device usage from an HTTP
// endpoint exposed by the device-usage exporter.
type usageSource struct {
	baseURL    string
	httpClient *http.Client
}

func (s *usageSource) hoursUsedToday(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/usage/today", nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("usage source returned status %d", resp.StatusCode)
	}

	var body struct {
		HoursUsed float64 `json:"hours_used"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.HoursUsed, nil
}
