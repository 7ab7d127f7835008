package countdown

import "time"

const (
	tickIntervalMS = 500

	// DefaultTickInterval drives redraws and expiry checks.
	DefaultTickInterval = time.Duration(tickIntervalMS) * time.Millisecond

	// ExpiredCode is returned when the countdown runs out; it matches the built-in continue key.
	ExpiredCode = 0
	// AbortCode is returned on fatal errors and interrupts; it matches the built-in abort key.
	AbortCode = 1
)
