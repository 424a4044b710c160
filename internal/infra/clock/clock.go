// Package clock provides the wall clock and a manually advanced fake for tests.
package clock

import (
	"time"

	"tracker/internal/domain/service"
)

type realClock struct{}

// New returns the process wall clock.
func New() service.Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) service.Timer {
	return time.AfterFunc(d, f)
}
