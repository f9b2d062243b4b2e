package ledger

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Duration is an elapsed span in whole hours and minutes.
// Values produced by this package always keep Minutes within [0, 60).
type Duration struct {
	Hours   int
	Minutes int
}

// DurationOf converts minutes into a normalized Duration.
func DurationOf(minutes int) Duration {
	return Duration{Hours: minutes / 60, Minutes: minutes % 60}
}

// TotalMinutes flattens d into minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// Add returns the normalized sum of d and other.
func (d Duration) Add(other Duration) Duration {
	return DurationOf(d.TotalMinutes() + other.TotalMinutes())
}

// IsZero reports whether no time has elapsed.
func (d Duration) IsZero() bool {
	return d.TotalMinutes() == 0
}

func (d Duration) String() string {
	return fmt.Sprintf("%d hours and %d minutes", d.Hours, d.Minutes)
}

var (
	durationPattern = regexp.MustCompile(`^(\d+) hours? and (\d+) minutes?$`)
	hoursPattern    = regexp.MustCompile(`^(\d+) hours?$`)
	plainPattern    = regexp.MustCompile(`^(\d+)$`)
)

// maxHours keeps Hours*60 within an int.
const maxHours = math.MaxInt / 60

// ParseDuration reads the "<H> hours and <M> minutes" form produced by
// Duration.String. A bare "<H> hours" or an integer hour count is also
// accepted since older sheets only recorded whole hours.
func ParseDuration(value string) (Duration, error) {
	value = strings.Join(strings.Fields(value), " ")

	var hoursText, minutesText string
	if m := durationPattern.FindStringSubmatch(value); m != nil {
		hoursText, minutesText = m[1], m[2]
	} else if m := hoursPattern.FindStringSubmatch(value); m != nil {
		hoursText = m[1]
	} else if m := plainPattern.FindStringSubmatch(value); m != nil {
		hoursText = m[1]
	} else {
		return Duration{}, fmt.Errorf("%w: %q", ErrMalformedDuration, value)
	}

	hours, err := strconv.Atoi(hoursText)
	if err != nil || hours > maxHours {
		return Duration{}, fmt.Errorf("%w: %q", ErrMalformedDuration, value)
	}
	minutes := 0
	if minutesText != "" {
		minutes, err = strconv.Atoi(minutesText)
		if err != nil || minutes > math.MaxInt-hours*60 {
			return Duration{}, fmt.Errorf("%w: %q", ErrMalformedDuration, value)
		}
	}
	return DurationOf(hours*60 + minutes), nil
}

// DurationBetween returns the elapsed time from login to logout on the same day.
// A logout earlier than login yields a zero Duration; callers that care use
// RecordLogoutAndRecompute, which rejects that case.
func DurationBetween(login, logout Clock) Duration {
	if logout < login {
		return Duration{}
	}
	return DurationOf(int(logout - login))
}
