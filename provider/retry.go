package provider

import "time"

// RetryPolicy bounds retries against flaky upstreams: at most MaxAttempts
// tries with exponential backoff between them. Sleep is injectable so tests
// can run with a fake clock.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       func(time.Duration)
}

// DefaultRetryPolicy matches the reference behavior of three attempts, with
// backoff added as a safe enhancement.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond, Sleep: time.Sleep}
}

// Backoff returns the delay before the given zero-based retry attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	delay := p.BaseDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

// Do runs fn until it succeeds or the attempt budget is exhausted. fn
// reports whether its failure is retryable; a non-retryable failure stops
// immediately. The last error is returned when attempts run out.
func (p RetryPolicy) Do(fn func() (retryable bool, err error)) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			sleep(p.Backoff(attempt - 1))
		}
		retryable, err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return lastErr
}
