// Package port defines the interfaces the application layer depends on.
package port

import "time"

// Timer is a pending deferred task.
type Timer interface {
	// Stop cancels the task. It returns false if the task already ran or was stopped.
	Stop() bool
}

// Scheduler runs deferred tasks. Callbacks may run on any goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
