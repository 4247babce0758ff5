package splitstopwatch_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/UnterrainerInformatik/splitstopwatch"
)

// countingSink records how often it was flushed.
type countingSink struct {
	bytes.Buffer
	flushes int
}

func (cs *countingSink) Flush() error {
	cs.flushes++
	return nil
}

func TestMessageOnlyOutput(t *testing.T) {
	sw, clock, buf := newTestWatch(splitstopwatch.WithDisplayPrefix(false))

	sw.Start()
	clock.Advance(time.Millisecond)
	sw.StopMsg("done", 0)

	assert.Equal(t, "done\n", buf.String())
}

func TestSplitFirstPreset(t *testing.T) {
	sw, clock, buf := newTestWatch(
		splitstopwatch.WithPrefixFormat(splitstopwatch.PrefixSplitFirst))

	sw.Start()
	clock.Advance(10 * time.Millisecond)
	sw.Split()
	clock.Advance(5 * time.Millisecond)
	sw.StopMsg("done.", 0)

	assert.Equal(t, "split: 5ms | total: 15ms | done.\n", buf.String())
}

func TestIndentation(t *testing.T) {
	sw, _, buf := newTestWatch(
		splitstopwatch.WithDisplayPrefix(false),
		splitstopwatch.WithIndentUnit("\t"))

	sw.StopMsg("nested", 2)

	assert.Equal(t, "\t\tnested\n", buf.String())
}

func TestNegativeIndentWritesNoPrefix(t *testing.T) {
	sw, _, buf := newTestWatch(splitstopwatch.WithDisplayPrefix(false))

	sw.StopMsg("flat", -3)

	assert.Equal(t, "flat\n", buf.String())
}

func TestFlushImmediately(t *testing.T) {
	sink := &countingSink{}
	sw := splitstopwatch.New(
		splitstopwatch.WithSink(sink),
		splitstopwatch.WithFlushImmediately(true))

	sw.StartMsg("one", 0)
	sw.StopMsg("two", 0)

	assert.Equal(t, 2, sink.flushes)
}

func TestNoFlushByDefault(t *testing.T) {
	sink := &countingSink{}
	sw := splitstopwatch.New(splitstopwatch.WithSink(sink))

	sw.StartMsg("one", 0)

	assert.Zero(t, sink.flushes)
}
