package contracts

import "errors"

// Error taxonomy for per-symbol fetches. InsufficientHistory is deliberately
// not an error: short series come back as a typed HistoryResult so the caller
// decides. InvalidConfiguration lives in strategyconfig and fails the run
// before any fetching starts.
var (
	// ErrNotFound means the provider does not know the symbol.
	ErrNotFound = errors.New("symbol not found")

	// ErrTransient means the call failed after retries (network, 429, 5xx).
	// Critical data kinds reject the symbol; auxiliary kinds degrade to the
	// neutral sub-score.
	ErrTransient = errors.New("transient provider failure")

	// ErrMalformedPayload means the provider returned something unparseable.
	// Scoring treats it the same as ErrTransient for that call.
	ErrMalformedPayload = errors.New("malformed provider payload")
)

// IsTransient reports whether err should degrade rather than hard-fail.
// Malformed payloads count: a garbled response this run may parse next run.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient) || errors.Is(err, ErrMalformedPayload)
}
