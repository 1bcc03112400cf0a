package cache

import "time"

// IsStale reports whether cached feeds need a refresh. A zero lastUpdated
// means no ingestion pass has run yet.
func IsStale(lastUpdated, now time.Time, ttl time.Duration) bool {
	if lastUpdated.IsZero() {
		return true
	}
	return now.Sub(lastUpdated) > ttl
}
