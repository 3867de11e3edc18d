package smoke

import "errors"

// Sentinel kinds for smoke failures.
var (
	ErrUnhealthy = errors.New("service is not healthy")
	ErrStatus    = errors.New("unexpected status")
	ErrMismatch  = errors.New("chart does not match data")
)
