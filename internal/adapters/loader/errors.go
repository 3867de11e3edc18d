package loader

import "errors"

// Sentinel kinds for loader errors.
var (
	ErrSource = errors.New("invalid dataset source")
	ErrFetch  = errors.New("dataset fetch failed")
	ErrStatus = errors.New("dataset fetch returned non-2xx status")
	ErrDecode = errors.New("dataset is not a JSON array of records")
)
