package domain

import "time"

// DayKeyLayout is the fixed calendar-day format used for every per-day key in
// the system: nutrition entry days, the usage threshold record, and manual
// usage entries. Go reference layouts always render ASCII digits in the
// Gregorian calendar, so a change of system locale or calendar preference can
// never produce a mismatched key.
const DayKeyLayout = "2006-01-02"

// DayKey renders t's calendar day (in t's own location) as a day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a day key back into a midnight timestamp (UTC).
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(DayKeyLayout, key)
}

// DateRange is a closed time range with Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}
