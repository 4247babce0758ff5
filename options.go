package splitstopwatch

import (
	"io"
	"time"
)

// Option configures a SplitStopwatch at construction time.
type Option func(*SplitStopwatch)

// WithSink redirects report lines to w. The stopwatch only writes to
// the sink and never closes it; w stays owned by the caller.
func WithSink(w io.Writer) Option {
	return func(s *SplitStopwatch) {
		s.sink = w
	}
}

// WithFlushImmediately controls whether the sink is flushed after each
// report line, if it has a Flush method. Off by default.
func WithFlushImmediately(flush bool) Option {
	return func(s *SplitStopwatch) {
		s.flushImmediately = flush
	}
}

// WithActive sets the master enable flag. An inactive stopwatch turns
// every method into a no-op, so instrumentation can stay in call sites
// permanently.
func WithActive(active bool) Option {
	return func(s *SplitStopwatch) {
		s.active = active
	}
}

// WithDisplayPrefix controls whether report lines carry the formatted
// timing prefix or just the raw message. On by default.
func WithDisplayPrefix(display bool) Option {
	return func(s *SplitStopwatch) {
		s.displayPrefix = display
	}
}

// WithPrefixFormat sets the prefix template. See PrefixTotalFirst for
// the positional values it receives.
func WithPrefixFormat(format string) Option {
	return func(s *SplitStopwatch) {
		s.prefixFormat = format
	}
}

// WithIndentUnit sets the string repeated once per indent level in
// front of report lines. Defaults to two spaces.
func WithIndentUnit(unit string) Option {
	return func(s *SplitStopwatch) {
		s.indentUnit = unit
	}
}

// WithNowFunc replaces the clock, usually with a fake in tests.
func WithNowFunc(now func() time.Time) Option {
	return func(s *SplitStopwatch) {
		s.getNow = now
	}
}
