package scale

import (
	"time"
)

// tickIntervals is the ladder time ticks are chosen from.
var tickIntervals = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
}

// Time maps a time domain onto a pixel range by interpolating elapsed time.
type Time struct {
	Domain [2]time.Time
	Range  [2]float64
}

// NewTime builds a time scale.
func NewTime(d0, d1 time.Time, r0, r1 float64) Time {
	return Time{Domain: [2]time.Time{d0, d1}, Range: [2]float64{r0, r1}}
}

func (s Time) linear() Linear {
	return NewLinear(
		float64(s.Domain[0].UnixMilli()),
		float64(s.Domain[1].UnixMilli()),
		s.Range[0], s.Range[1],
	)
}

// Map returns the pixel position of t. A zero-width domain maps to the range midpoint.
func (s Time) Map(t time.Time) float64 {
	return s.linear().Map(float64(t.UnixMilli()))
}

// Invert returns the time at pixel p, truncated to the millisecond.
func (s Time) Invert(p float64) time.Time {
	return time.UnixMilli(int64(s.linear().Invert(p))).UTC()
}

// Ticks returns times aligned to the ladder interval closest to span/count.
func (s Time) Ticks(count int) []time.Time {
	if count <= 0 {
		return nil
	}
	start, stop := s.Domain[0], s.Domain[1]
	if start.Equal(stop) {
		return []time.Time{start}
	}
	reverse := stop.Before(start)
	if reverse {
		start, stop = stop, start
	}

	step := TickInterval(stop.Sub(start), count)
	first := start.Truncate(step)
	if first.Before(start) {
		first = first.Add(step)
	}

	var ticks []time.Time
	for t := first; !t.After(stop); t = t.Add(step) {
		ticks = append(ticks, t)
	}
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// TickInterval picks the ladder step nearest, by ratio, to span/count.
// Spans finer than the ladder use one second, the label resolution.
func TickInterval(span time.Duration, count int) time.Duration {
	if count <= 0 {
		count = DefaultTickCount
	}
	target := float64(span) / float64(count)

	i := 0
	for i < len(tickIntervals) && float64(tickIntervals[i]) <= target {
		i++
	}
	switch {
	case i == 0:
		return tickIntervals[0]
	case i == len(tickIntervals):
		return tickIntervals[len(tickIntervals)-1]
	}

	lower, upper := float64(tickIntervals[i-1]), float64(tickIntervals[i])
	if target/lower < upper/target {
		return tickIntervals[i-1]
	}
	return tickIntervals[i]
}
