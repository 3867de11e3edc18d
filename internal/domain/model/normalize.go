package model

import (
	"errors"
	"strconv"
	"strings"

	"github.com/okian/racechart/internal/domain/racetime"
)

var errMissing = errors.New("missing value")

// Normalize validates raw entries and converts their times.
// The first malformed entry aborts the whole dataset.
func Normalize(raw []RawRecord) ([]Record, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}

	out := make([]Record, 0, len(raw))
	for i, r := range raw {
		rec, err := NormalizeOne(i, r)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// NormalizeOne converts a single entry; i is only used for error reporting.
func NormalizeOne(i int, r RawRecord) (Record, error) {
	if r.Year <= 0 {
		return Record{}, &RecordError{Index: i, Field: "Year", Value: strconv.Itoa(r.Year), Err: errMissing}
	}
	if strings.TrimSpace(r.Name) == "" {
		return Record{}, &RecordError{Index: i, Field: "Name", Value: r.Name, Err: errMissing}
	}

	t, err := racetime.Parse(r.Time)
	if err != nil {
		return Record{}, &RecordError{Index: i, Field: "Time", Value: r.Time, Err: err}
	}

	return Record{
		Year:        r.Year,
		Time:        t,
		Name:        r.Name,
		Nationality: r.Nationality,
		Doping:      strings.TrimSpace(r.Doping),
		Place:       r.Place,
		Seconds:     r.Seconds,
		URL:         r.URL,
	}, nil
}
