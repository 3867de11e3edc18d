package scale

import (
	"fmt"
	"time"

	"github.com/okian/racechart/internal/domain/model"
)

// yearPadding keeps the outermost marks off the axis edges.
const yearPadding = 1

// Scales holds the two axis mappings of the chart.
type Scales struct {
	X Linear // race year -> horizontal pixel
	Y Time   // normalized time -> vertical pixel
}

// Build derives both scales from the records' observed extents.
//
// X covers [min(year)-1, max(year)+1] over [0, width]. Y covers
// [min(time), max(time)] over [0, height] without padding, so the
// fastest time sits at the top of the plot.
func Build(records []model.Record, width, height float64) (Scales, error) {
	if len(records) == 0 {
		return Scales{}, model.ErrEmptyDataset
	}
	if width <= 0 || height <= 0 {
		return Scales{}, fmt.Errorf("%w: %gx%g", ErrInvalidRange, width, height)
	}

	minYear, maxYear := records[0].Year, records[0].Year
	minTime, maxTime := records[0].Time, records[0].Time
	for _, r := range records[1:] {
		minYear = min(minYear, r.Year)
		maxYear = max(maxYear, r.Year)
		if r.Time.Before(minTime) {
			minTime = r.Time
		}
		if r.Time.After(maxTime) {
			maxTime = r.Time
		}
	}

	return Scales{
		X: NewLinear(float64(minYear-yearPadding), float64(maxYear+yearPadding), 0, width),
		Y: NewTime(minTime, maxTime, 0, height),
	}, nil
}

// Extent returns the fastest and slowest times on the Y axis.
func (s Scales) Extent() (time.Time, time.Time) {
	return s.Y.Domain[0], s.Y.Domain[1]
}
