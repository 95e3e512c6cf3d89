package models

// Outcome is the result of processing one entry of the URL list
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailed          // Fetcher was called and reported failure
	OutcomeSkipped         // Entry was not an http URL; counted as failed without a fetch
	OutcomeCanceled        // Batch was canceled before the entry was reached; counted as failed
)

// String returns the label used in logs and metrics
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "error"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the outcome counts towards successful downloads
func (o Outcome) Succeeded() bool {
	return o == OutcomeSuccess
}
