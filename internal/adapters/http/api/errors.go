package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrRateLimited = errors.New("too many requests")
	ErrUnavailable = errors.New("chart is not ready")
)
