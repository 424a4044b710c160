// Package service defines the interfaces of infrastructure services used by the use cases.
package service

import "time"

// Clock abstracts wall time and timers so timer-driven components can be tested deterministically.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine after d elapses.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc call.
type Timer interface {
	// Stop prevents the call from firing. It returns false if the call already fired or was stopped.
	Stop() bool
}
