package splitstopwatch

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// flusher is the optional sink capability used by flush-immediately
// mode. bufio.Writer satisfies it.
type flusher interface {
	Flush() error
}

// writeText writes one report line to the sink: the indent unit
// repeated indent times, then either the formatted prefix line or the
// raw message, then exactly one newline. Callers pass the duration
// relevant to "time since the last split"; which measurement that is
// differs per operation.
func (s *SplitStopwatch) writeText(text string, indent int, sinceSplit time.Duration) {
	if !s.active || s.sink == nil {
		return
	}

	if indent > 0 {
		io.WriteString(s.sink, strings.Repeat(s.indentUnit, indent))
	}

	if s.displayPrefix {
		fmt.Fprintf(s.sink, s.prefixFormat,
			s.ElapsedTotalMilliseconds(),
			sinceSplit.Milliseconds(),
			text)
	} else {
		io.WriteString(s.sink, text)
	}
	io.WriteString(s.sink, "\n")

	if s.flushImmediately {
		if f, ok := s.sink.(flusher); ok {
			f.Flush()
		}
	}
}
