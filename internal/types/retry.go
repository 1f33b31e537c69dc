package types

import "time"

// RetryPolicy bounds automatic retries of a failed request. Total wall-clock
// attempts for one logical request = Retries + 1. The delay is applied
// verbatim before every retried attempt; there is no backoff growth.
type RetryPolicy struct {
	// Retries is the number of additional attempts after the first.
	// Negative values behave like zero.
	Retries int

	// RetryDelay is the fixed wait before each retried attempt.
	RetryDelay time.Duration

	// RetryOn is the allowlist of HTTP status codes eligible for retry.
	// Transport failures (no HTTP response) are always eligible and do not
	// need an entry here.
	RetryOn []int
}

// Retryable reports whether a response with the given status code is in the
// configured allowlist.
func (p RetryPolicy) Retryable(statusCode int) bool {
	for _, s := range p.RetryOn {
		if s == statusCode {
			return true
		}
	}
	return false
}

// MaxRetries returns the retry budget, clamping negatives to zero.
func (p RetryPolicy) MaxRetries() int {
	if p.Retries < 0 {
		return 0
	}
	return p.Retries
}
