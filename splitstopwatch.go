// Package splitstopwatch measures elapsed time across split intervals
// while keeping a running total, and optionally writes human-readable
// progress lines to a caller-owned sink.
//
// The stopwatch is not safe for concurrent use; callers that share one
// across goroutines must synchronize externally.
package splitstopwatch

import (
	"io"
	"os"
	"time"
)

// SplitStopwatch accumulates time in intervals. An interval spans
// stop/resume cycles until it is closed by a split, which folds it into
// the running total and starts a new one.
type SplitStopwatch struct {
	// startTime is the clock reading when the current run segment began.
	startTime time.Time

	// accumulated is the time the current interval has been running,
	// carried across stop/resume cycles until the next split.
	accumulated time.Duration

	// total is the frozen sum of all closed intervals since the last
	// reset. The in-flight interval is not included.
	total time.Duration

	// running is true while the underlying counter is advancing.
	running bool

	// active gates every operation; when false all methods are no-ops
	// returning zero values and nothing is written to the sink.
	active bool

	sink             io.Writer
	flushImmediately bool
	displayPrefix    bool
	prefixFormat     string
	indentUnit       string

	// getNow allows stubbing out [time.Now] in tests.
	getNow func() time.Time
}

// New creates a stopped SplitStopwatch writing to os.Stdout.
func New(opts ...Option) *SplitStopwatch {
	s := &SplitStopwatch{
		active:        true,
		sink:          os.Stdout,
		displayPrefix: true,
		prefixFormat:  PrefixTotalFirst,
		indentUnit:    "  ",
		getNow:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resumes counting without touching the total or the current
// interval. Calling it while already running does nothing.
func (s *SplitStopwatch) Start() {
	if !s.active {
		return
	}
	s.resume()
}

// StartMsg reports the time since the last split, then resumes counting.
// The reported value is measured before the counter resumes, so the
// write itself is not part of the measurement.
func (s *SplitStopwatch) StartMsg(text string, indent int) {
	if !s.active {
		return
	}
	s.writeText(text, indent, s.sinceSplit())
	s.resume()
}

// StartNew discards all prior history and begins counting from zero.
func (s *SplitStopwatch) StartNew() {
	if !s.active {
		return
	}
	s.total = 0
	s.accumulated = 0
	s.running = false
	s.resume()
}

// StartNewMsg reports the time since the last split as it was before the
// reset, then discards all history and begins counting from zero.
func (s *SplitStopwatch) StartNewMsg(text string, indent int) {
	if !s.active {
		return
	}
	s.writeText(text, indent, s.sinceSplit())
	s.total = 0
	s.accumulated = 0
	s.running = false
	s.resume()
}

// Stop pauses the counter. The current interval keeps its elapsed time
// and is folded into the total only by a later split or reset.
// Calling it while already stopped does nothing.
func (s *SplitStopwatch) Stop() {
	if !s.active {
		return
	}
	s.pause()
}

// StopMsg pauses the counter, then reports the time since the last
// split as measured after stopping.
func (s *SplitStopwatch) StopMsg(text string, indent int) {
	if !s.active {
		return
	}
	s.pause()
	s.writeText(text, indent, s.sinceSplit())
}

// Split closes the current interval: its elapsed time is folded into
// the total, the interval restarts at zero and counting continues.
// It returns the closed interval's duration.
func (s *SplitStopwatch) Split() time.Duration {
	if !s.active {
		return 0
	}
	d := s.fold()
	s.resume()
	return d
}

// SplitMsg is Split with a report line. The line is written while the
// counter is paused, so the write does not leak into the next interval.
func (s *SplitStopwatch) SplitMsg(text string, indent int) time.Duration {
	if !s.active {
		return 0
	}
	d := s.fold()
	s.writeText(text, indent, d)
	s.resume()
	return d
}

// SplitAndStop closes the current interval like Split but leaves the
// stopwatch paused. It returns the closed interval's duration.
func (s *SplitStopwatch) SplitAndStop() time.Duration {
	if !s.active {
		return 0
	}
	return s.fold()
}

// SplitAndStopMsg is SplitAndStop with a report line.
func (s *SplitStopwatch) SplitAndStopMsg(text string, indent int) time.Duration {
	if !s.active {
		return 0
	}
	d := s.fold()
	s.writeText(text, indent, d)
	return d
}

// Reset stops the stopwatch and zeroes both the total and the current
// interval.
func (s *SplitStopwatch) Reset() {
	if !s.active {
		return
	}
	s.fold()
	s.total = 0
}

// ResetMsg folds the current interval, reports the time since the last
// split with the pre-reset total, then zeroes everything. The stopwatch
// is left stopped.
func (s *SplitStopwatch) ResetMsg(text string, indent int) {
	if !s.active {
		return
	}
	d := s.fold()
	s.writeText(text, indent, d)
	s.total = 0
}

// SetActive toggles the master enable flag. While inactive, every
// method is a no-op returning zero values.
func (s *SplitStopwatch) SetActive(active bool) {
	s.active = active
}

// Active reports whether the stopwatch is enabled.
func (s *SplitStopwatch) Active() bool {
	return s.active
}

// Running reports whether the underlying counter is advancing.
func (s *SplitStopwatch) Running() bool {
	return s.active && s.running
}

// ElapsedSinceSplit returns the time accumulated by the current
// interval since the last split, start or reset.
func (s *SplitStopwatch) ElapsedSinceSplit() time.Duration {
	if !s.active {
		return 0
	}
	return s.sinceSplit()
}

// ElapsedSinceSplitMilliseconds is ElapsedSinceSplit truncated to
// whole milliseconds.
func (s *SplitStopwatch) ElapsedSinceSplitMilliseconds() int64 {
	return s.ElapsedSinceSplit().Milliseconds()
}

// ElapsedSinceSplitTicks is ElapsedSinceSplit in the raw counter unit,
// nanoseconds.
func (s *SplitStopwatch) ElapsedSinceSplitTicks() int64 {
	return s.ElapsedSinceSplit().Nanoseconds()
}

// ElapsedTotal returns the sum of all closed intervals plus the
// in-flight one.
func (s *SplitStopwatch) ElapsedTotal() time.Duration {
	if !s.active {
		return 0
	}
	return s.total + s.sinceSplit()
}

// ElapsedTotalMilliseconds is ElapsedTotal truncated to whole
// milliseconds.
func (s *SplitStopwatch) ElapsedTotalMilliseconds() int64 {
	return s.ElapsedTotal().Milliseconds()
}

// ElapsedTotalTicks is ElapsedTotal in the raw counter unit,
// nanoseconds.
func (s *SplitStopwatch) ElapsedTotalTicks() int64 {
	return s.ElapsedTotal().Nanoseconds()
}

// resume starts the counter if it is not already running.
func (s *SplitStopwatch) resume() {
	if !s.running {
		s.startTime = s.getNow()
		s.running = true
	}
}

// pause folds the running segment into the current interval and stops
// the counter.
func (s *SplitStopwatch) pause() {
	if s.running {
		s.accumulated += s.getNow().Sub(s.startTime)
		s.running = false
	}
}

// fold closes the current interval into the total and leaves the
// stopwatch paused. It returns the closed interval's duration.
func (s *SplitStopwatch) fold() time.Duration {
	s.pause()
	d := s.accumulated
	s.total += d
	s.accumulated = 0
	return d
}

// sinceSplit reads the current interval without mutating anything.
func (s *SplitStopwatch) sinceSplit() time.Duration {
	if s.running {
		return s.accumulated + s.getNow().Sub(s.startTime)
	}
	return s.accumulated
}
