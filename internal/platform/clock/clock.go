package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Today truncates the clock's current instant to a calendar date. All API
// date parameters are day-granular, so views never carry time of day.
func Today(c Clock) time.Time {
	return Midnight(c.Now())
}

// Midnight drops the time-of-day component, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
