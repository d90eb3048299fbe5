package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze the calendar
// defaults via SetClock. Production code uses the real clock; tests inject a
// fake for deterministic month/day defaulting.
var clock = clockwork.NewRealClock()

// Now returns the current time from the injected clock.
func Now() time.Time {
	return clock.Now()
}

// SetClock swaps the time source used for calendar defaults. Pass nil to
// reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
