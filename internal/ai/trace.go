package ai

import "sync/atomic"

// tickTrace turns on the per-tick debug lines of the tick manager and the
// controllers. Those lines fire for every controller on every tick, so they
// sit behind a flag instead of relying on the handler level alone.
var tickTrace atomic.Bool

// SetTickTrace turns per-tick tracing on or off. main sets it once the log
// level is known; tests may toggle it at any time.
func SetTickTrace(enabled bool) {
	tickTrace.Store(enabled)
}

// TickTraceEnabled reports whether per-tick tracing is on.
func TickTraceEnabled() bool {
	return tickTrace.Load()
}
