// Package sensor provides the read-side client for the external sensor
// gateway, which exposes the device's health samples (cumulative daily
// metrics and sleep-stage intervals) over HTTP. Authorization-denied and
// transport failures are deliberately collapsed into one unavailable
// condition: callers must never score them differently.
package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
)

// MetricKind identifies a cumulative metric exposed by the sensor gateway.
type MetricKind string

const (
	// MetricSteps is the daily step count (summed per day).
	MetricSteps MetricKind = "steps"
	// MetricActiveEnergy is the daily active energy burned in kcal (summed per day).
	MetricActiveEnergy MetricKind = "active_energy"
)

// Reader is the sensor-read capability consumed by the scoring engine.
type Reader interface {
	// AuthorizationStatus reports whether the sensor-read grant is in place.
	AuthorizationStatus(ctx context.Context) (bool, error)
	// FetchCumulative returns one sample per calendar day in the range.
	FetchCumulative(ctx context.Context, metric MetricKind, r domain.DateRange) ([]domain.RawSample, error)
	// FetchSleepIntervals returns the sleep-stage intervals overlapping the range.
	FetchSleepIntervals(ctx context.Context, r domain.DateRange) ([]domain.SleepStageInterval, error)
}

// Client implements Reader against the sensor gateway's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a sensor gateway client.
// Returns nil if baseURL is empty (gateway not configured).
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		return nil
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type authStatusResponse struct {
	Granted bool `json:"granted"`
}

// AuthorizationStatus queries the gateway's grant state. A nil client means
// the gateway was never configured, which reads as not granted.
func (c *Client) AuthorizationStatus(ctx context.Context) (bool, error) {
	if c == nil {
		return false, nil
	}

	var status authStatusResponse
	if err := c.get(ctx, "/v1/authorization/status", nil, &status); err != nil {
		return false, err
	}
	return status.Granted, nil
}

type cumulativeSample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// FetchCumulative returns the per-day samples for metric within r.
func (c *Client) FetchCumulative(ctx context.Context, metric MetricKind, r domain.DateRange) ([]domain.RawSample, error) {
	if c == nil {
		return nil, domain.ErrSignalUnavailable
	}

	query := url.Values{}
	query.Set("metric", string(metric))
	query.Set("start", r.Start.Format(time.RFC3339))
	query.Set("end", r.End.Format(time.RFC3339))

	var wire []cumulativeSample
	if err := c.get(ctx, "/v1/samples/cumulative", query, &wire); err != nil {
		return nil, err
	}

	samples := make([]domain.RawSample, len(wire))
	for i, s := range wire {
		samples[i] = domain.RawSample{Timestamp: s.Timestamp, Value: s.Value}
	}
	return samples, nil
}

type sleepIntervalSample struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Stage string    `json:"stage"`
}

// FetchSleepIntervals returns the sleep-stage intervals within r.
func (c *Client) FetchSleepIntervals(ctx context.Context, r domain.DateRange) ([]domain.SleepStageInterval, error) {
	if c == nil {
		return nil, domain.ErrSignalUnavailable
	}

	query := url.Values{}
	query.Set("start", r.Start.Format(time.RFC3339))
	query.Set("end", r.End.Format(time.RFC3339))

	var wire []sleepIntervalSample
	if err := c.get(ctx, "/v1/samples/sleep-intervals", query, &wire); err != nil {
		return nil, err
	}

	intervals := make([]domain.SleepStageInterval, len(wire))
	for i, s := range wire {
		intervals[i] = domain.SleepStageInterval{
			Start: s.Start,
			End:   s.End,
			Stage: parseStage(s.Stage),
		}
	}
	return intervals, nil
}

func parseStage(s string) domain.SleepStage {
	switch domain.SleepStage(s) {
	case domain.SleepStageCore, domain.SleepStageREM, domain.SleepStageDeep:
		return domain.SleepStage(s)
	default:
		return domain.SleepStageUnspecified
	}
}

// get performs a GET against the gateway and decodes the JSON body into out.
// Any non-2xx status, including 401/403, is reported as ErrSignalUnavailable.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSignalUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSignalUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: gateway returned %d", domain.ErrSignalUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSignalUnavailable, err)
	}
	return nil
}
