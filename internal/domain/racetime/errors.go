package racetime

import "errors"

// Sentinel kinds for time parsing errors.
var (
	ErrMalformed      = errors.New("malformed race time")
	ErrOutOfRange     = errors.New("race time component out of range")
	ErrEmptyComponent = errors.New("empty time component")
	ErrNegative       = errors.New("negative time component")
)
