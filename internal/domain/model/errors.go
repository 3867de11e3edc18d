package model

import (
	"errors"
	"fmt"
)

// Sentinel kinds for normalization errors.
var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrEmptyDataset  = errors.New("dataset is empty")
)

// RecordError identifies the dataset entry that failed normalization.
type RecordError struct {
	Index int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: field %s=%q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ErrInvalidRecord, e.Err}
}
