package ledger

import (
	"fmt"
	"strings"
	"time"
)

// ClockLayout is the 24-hour, zero-padded layout used for login and logout values.
const ClockLayout = "15:04"

// Clock is a time of day with minute precision, stored as minutes since midnight.
type Clock int

// ClockAt drops the date, seconds and below from t.
func ClockAt(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// ParseClock reads an HH:MM string.
func ParseClock(value string) (Clock, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	return ClockAt(parsed), nil
}

// Hour returns the hour component (0-23).
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component (0-59).
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On anchors the clock to the calendar day of date.
func (c Clock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}
