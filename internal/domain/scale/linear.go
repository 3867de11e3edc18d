// Package scale maps data domains onto pixel ranges for the chart axes.
//
// Scales are plain values: building one twice from the same data yields an
// identical mapping, and mapping never mutates the scale.
package scale

import (
	"math"
)

// Tick step thresholds between the 1, 2, 5 and 10 multipliers.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// DefaultTickCount is the approximate number of ticks per axis.
const DefaultTickCount = 10

// Linear maps a numeric domain onto a pixel range by straight interpolation.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear builds a linear scale.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map returns the pixel position of v. A zero-width domain maps to the range midpoint.
func (s Linear) Map(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	t := 0.5
	if span != 0 {
		t = (v - s.Domain[0]) / span
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Invert returns the domain value at pixel p.
func (s Linear) Invert(p float64) float64 {
	span := s.Range[1] - s.Range[0]
	t := 0.5
	if span != 0 {
		t = (p - s.Range[0]) / span
	}
	return s.Domain[0] + t*(s.Domain[1]-s.Domain[0])
}

// Ticks returns roughly count evenly spaced, human friendly values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	return linearTicks(s.Domain[0], s.Domain[1], count)
}

func linearTicks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := tickStep(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}

	lo := math.Ceil(start / step)
	hi := math.Floor(stop / step)
	var ticks []float64
	for i := lo; i <= hi; i++ {
		ticks = append(ticks, roundTo(i*step, step))
	}
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tickStep picks a 1, 2 or 5 times a power of ten step close to span/count.
func tickStep(start, stop float64, count int) float64 {
	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	base := math.Pow(10, power)
	ratio := raw / base

	factor := 1.0
	switch {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	}
	return factor * base
}

func roundTo(v, step float64) float64 {
	if step >= 1 {
		return math.Round(v)
	}
	digits := math.Ceil(-math.Log10(step))
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
