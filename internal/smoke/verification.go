package smoke

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/okian/racechart/internal/domain/racetime"
)

// VerifyChart checks a rendered graph surface against the data it was built from.
// It returns the number of marks found.
func VerifyChart(svg []byte, data DataResponse) (int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(svg))
	if err != nil {
		return 0, fmt.Errorf("failed to parse chart: %w", err)
	}

	if id := doc.Find("svg").First().AttrOr("data-render-id", ""); id != data.RenderID {
		return 0, fmt.Errorf("%w: render id %q, data has %q", ErrMismatch, id, data.RenderID)
	}

	dots := doc.Find("circle.dot")
	if dots.Length() != len(data.Records) || data.Count != len(data.Records) {
		return dots.Length(), fmt.Errorf("%w: %d marks for %d records (count %d)",
			ErrMismatch, dots.Length(), len(data.Records), data.Count)
	}

	fills := map[bool]string{}
	var mismatch error
	dots.EachWithBreak(func(i int, s *goquery.Selection) bool {
		rec := data.Records[i]
		switch {
		case s.AttrOr("data-xvalue", "") != strconv.Itoa(rec.Year):
			mismatch = fmt.Errorf("%w: mark %d year %q, record has %d", ErrMismatch, i, s.AttrOr("data-xvalue", ""), rec.Year)
		case s.AttrOr("data-yvalue", "") != rec.Time:
			mismatch = fmt.Errorf("%w: mark %d time %q, record has %q", ErrMismatch, i, s.AttrOr("data-yvalue", ""), rec.Time)
		}
		if mismatch != nil {
			return false
		}

		doping := rec.Doping != ""
		fill := s.AttrOr("fill", "")
		if want, ok := fills[doping]; ok && want != fill {
			mismatch = fmt.Errorf("%w: mark %d fill %q, expected %q", ErrMismatch, i, fill, want)
			return false
		}
		fills[doping] = fill
		return true
	})
	if mismatch != nil {
		return dots.Length(), mismatch
	}
	if len(fills) == 2 && fills[true] == fills[false] {
		return dots.Length(), fmt.Errorf("%w: both categories share fill %q", ErrMismatch, fills[true])
	}

	if err := verifyAxes(doc); err != nil {
		return dots.Length(), err
	}
	return dots.Length(), nil
}

// verifyAxes checks year labels are integers and time labels are ascending M:SS.
func verifyAxes(doc *goquery.Document) error {
	var err error
	doc.Find("#x-axis .tick text").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if _, convErr := strconv.Atoi(s.Text()); convErr != nil {
			err = fmt.Errorf("%w: year tick %q", ErrMismatch, s.Text())
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	prev := -1
	doc.Find("#y-axis .tick text").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t, parseErr := racetime.Parse(s.Text())
		if parseErr != nil {
			err = fmt.Errorf("%w: time tick %q: %w", ErrMismatch, s.Text(), parseErr)
			return false
		}
		secs := int(racetime.Elapsed(t).Seconds())
		if secs <= prev {
			err = fmt.Errorf("%w: time ticks not ascending at %q", ErrMismatch, s.Text())
			return false
		}
		prev = secs
		return true
	})
	return err
}
