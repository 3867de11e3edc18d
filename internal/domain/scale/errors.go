package scale

import "errors"

// ErrInvalidRange is returned when the pixel range has no extent.
var ErrInvalidRange = errors.New("invalid scale range")
