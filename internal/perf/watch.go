package perf

import (
	"time"
)

// StopWatch accumulates the duration of timed calls.
type StopWatch struct {
	Count int
	Total time.Duration
}

// TimeIt calls fn and adds its duration to the total.
func (t *StopWatch) TimeIt(fn func()) (duration time.Duration) {
	start := time.Now()
	t.Count++
	defer func() {
		duration = time.Since(start)
		t.Total += duration
	}()

	fn()
	return
}
