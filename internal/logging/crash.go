package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack and runtime details, then re-panics.
// Use it deferred at the top of main and of long-lived goroutines.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	LogPanic(ctx, r, debug.Stack())
	panic(r)
}

// LogPanic records a recovered panic value.
func LogPanic(ctx context.Context, r any, stack []byte) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Uint64("alloc_kb", mem.Alloc/1024).
		Uint32("num_gc", mem.NumGC).
		Bytes("stack", stack).
		Msg("panic")
}
