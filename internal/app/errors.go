package service

import "errors"

var (
	// ErrNoLoader is returned when the service has no dataset source.
	ErrNoLoader = errors.New("no dataset loader configured")
	// ErrBuild wraps any failure in the load-to-draw pipeline.
	ErrBuild = errors.New("chart build failed")
	// ErrNotBuilt is returned when the chart is requested before Start.
	ErrNotBuilt = errors.New("chart not built")
)
