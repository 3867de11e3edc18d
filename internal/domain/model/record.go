// Package model contains the cyclist records passed between layers.
package model

import (
	"time"
)

// RawRecord is one entry of the published dataset, as decoded from JSON.
type RawRecord struct {
	Time        string `json:"Time"`
	Place       int    `json:"Place"`
	Seconds     int    `json:"Seconds"`
	Name        string `json:"Name"`
	Year        int    `json:"Year"`
	Nationality string `json:"Nationality"`
	Doping      string `json:"Doping"`
	URL         string `json:"URL"`
}

// Record is a validated rider entry with its finishing time normalized.
type Record struct {
	Year        int       `json:"year"`
	Time        time.Time `json:"time"` // minutes and seconds on racetime.Epoch
	Name        string    `json:"name"`
	Nationality string    `json:"nationality"`
	Doping      string    `json:"doping,omitempty"`
	Place       int       `json:"place,omitempty"`
	Seconds     int       `json:"seconds,omitempty"`
	URL         string    `json:"url,omitempty"`
}

// HasAllegation reports whether the rider carries a doping allegation.
func (r Record) HasAllegation() bool {
	return r.Doping != ""
}
