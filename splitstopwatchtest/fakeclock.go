// Package splitstopwatchtest provides test doubles for stopwatch
// consumers.
package splitstopwatchtest

import (
	"sync/atomic"
	"time"
)

// FakeClock is a clock that tests advance manually.
//
// Pass its Now method to a stopwatch via splitstopwatch.WithNowFunc.
type FakeClock struct {
	nowMicros *atomic.Int64
}

func NewFakeClock() *FakeClock {
	return &FakeClock{&atomic.Int64{}}
}

// Now returns the fake current time.
func (fc *FakeClock) Now() time.Time {
	return time.UnixMicro(fc.nowMicros.Load())
}

// Advance moves the fake time forward by d.
func (fc *FakeClock) Advance(d time.Duration) {
	fc.nowMicros.Add(d.Microseconds())
}
