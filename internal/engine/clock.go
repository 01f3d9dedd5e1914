package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It supplies "today" for the host's default value and for the fallback
// grid shown when a DateValue cannot be parsed.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today formats the clock's current date as a DateValue.
func Today(c Clock) string {
	y, m, d := c.Now().Date()
	return Format(int(m), d, y)
}
