package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrDraw  = errors.New("draw failed")
	ErrAsset = errors.New("missing chart asset")
)
