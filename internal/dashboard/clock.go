package dashboard

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// DayKeyLayout formats day keys as calendar dates.
const DayKeyLayout = "2006-01-02"

// Clock supplies the current time. clockwork.Clock satisfies it, which lets
// tests drive time with a fake clock.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return clockwork.NewRealClock()
}

// DayKey returns the calendar date of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}

// LoadLocation resolves a timezone name, defaulting to UTC when empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("dashboard: load timezone %q: %w", name, err)
	}
	return loc, nil
}
