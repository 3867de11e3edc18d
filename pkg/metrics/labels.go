package metrics

// Outcome labels for dataset fetches.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Category labels for rendered marks.
const (
	CategoryAllegation = "allegation"
	CategoryClean      = "clean"
)
