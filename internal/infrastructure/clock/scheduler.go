// Package clock provides port.Scheduler implementations.
package clock

import (
	"time"

	"github.com/bnema/multiview/internal/application/port"
)

// RealScheduler runs tasks on wall-clock timers.
type RealScheduler struct{}

var _ port.Scheduler = RealScheduler{}

// NewRealScheduler returns a scheduler backed by time.AfterFunc.
func NewRealScheduler() RealScheduler {
	return RealScheduler{}
}

// AfterFunc runs fn on its own goroutine once d has elapsed.
func (RealScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	return time.AfterFunc(d, fn)
}
