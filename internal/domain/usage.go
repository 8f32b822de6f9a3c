package domain

import "time"

// UsageSource identifies where a resolved device-usage value came from.
// @Description Origin of the usage value: auto (monitor), manual, or none.
type UsageSource string

const (
	UsageSourceAuto   UsageSource = "auto"
	UsageSourceManual UsageSource = "manual"
	UsageSourceNone   UsageSource = "none"
)

// UsageThresholdRecord is the shared record owned and mutated exclusively by
// the usage-monitor process. Within one calendar day MaxHoursCrossedToday is
// monotonically non-decreasing; the monitor resets it to {today, 0} at local
// midnight. This service only ever reads it.
type UsageThresholdRecord struct {
	Day                  string    `json:"day" example:"2024-01-16"`
	MaxHoursCrossedToday float64   `json:"max_hours_crossed_today" example:"4"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ResolvedUsage is the usage input for scoring after applying the resolution
// priority: fresh auto-detected value > manual entry for today > absent.
// Hours is nil only when no value of either source exists for today; a saved
// manual 0.0 is present and scorable.
type ResolvedUsage struct {
	Hours  *float64    `json:"hours,omitempty" example:"3.5"`
	Source UsageSource `json:"source" example:"auto"`
}

// Present reports whether a usage value of any source exists for today.
func (u ResolvedUsage) Present() bool {
	return u.Hours != nil
}

// SetManualUsageRequest is the request body for saving today's manual usage.
// Hours is a pointer so an explicit 0 is distinguishable from a missing field.
// @Description Request payload for the once-per-day manual usage entry.
type SetManualUsageRequest struct {
	// Device usage in hours for today (0 is a valid, scorable answer)
	Hours *float64 `json:"hours" validate:"required,gte=0,lte=24" example:"3.5"`
}

// UsageResponse is the response body for the resolved-usage endpoint.
type UsageResponse struct {
	Day    string      `json:"day" example:"2024-01-16"`
	Hours  *float64    `json:"hours,omitempty" example:"3.5"`
	Source UsageSource `json:"source" example:"manual"`
}
