// Package util provides small helpers shared across Macro Manager.
package util

import (
	"github.com/google/uuid"
)

// NewSessionID returns a time-ordered UUIDv7 used to correlate the log lines
// of a single run. It falls back to a random UUIDv4 if the clock-based
// generator fails.
func NewSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ShortID returns the first block of a UUID for compact display.
func ShortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
