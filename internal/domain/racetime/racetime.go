// Package racetime converts "M:SS" finishing times to and from a time-of-day
// value on a fixed reference date.
//
// The normalized value only carries minutes and seconds; hours are always zero.
// It orders like the duration it stands for and formats back to the input text.
package racetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISOLayout matches the millisecond ISO-8601 form browsers emit for dates.
const ISOLayout = "2006-01-02T15:04:05.000Z"

const (
	separator     = ":"
	maxMinutes    = 59
	maxSeconds    = 59
	expectedParts = 2
)

// Epoch is the reference date every normalized time sits on.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Parse converts "M:SS" or "MM:SS" into a time on Epoch.
func Parse(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), separator)
	if len(parts) != expectedParts {
		return time.Time{}, fmt.Errorf("%w: %q has %d parts", ErrMalformed, text, len(parts))
	}

	minutes, err := parseComponent(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: minutes in %q: %w", ErrMalformed, text, err)
	}
	seconds, err := parseComponent(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: seconds in %q: %w", ErrMalformed, text, err)
	}
	if minutes > maxMinutes || seconds > maxSeconds {
		return time.Time{}, fmt.Errorf("%w: %q", ErrOutOfRange, text)
	}

	return FromComponents(minutes, seconds), nil
}

func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyComponent
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegative
	}
	return n, nil
}

// FromComponents builds the normalized time for minutes and seconds.
func FromComponents(minutes, seconds int) time.Time {
	return Epoch.Add(time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second)
}

// Format renders t as minute:second with seconds padded to two digits.
func Format(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Minute(), t.Second())
}

// ISO renders t the way the chart's data-yvalue attribute exposes it.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Elapsed returns the duration t stands for.
func Elapsed(t time.Time) time.Duration {
	return t.Sub(Epoch)
}
