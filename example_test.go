package splitstopwatch_test

import (
	"fmt"
	"time"

	"github.com/UnterrainerInformatik/splitstopwatch"
	"github.com/UnterrainerInformatik/splitstopwatch/splitstopwatchtest"
)

func Example() {
	// A fake clock keeps the output deterministic; drop WithNowFunc to
	// measure real time.
	clock := splitstopwatchtest.NewFakeClock()
	sw := splitstopwatch.New(splitstopwatch.WithNowFunc(clock.Now))

	sw.StartMsg("loading index.", 0)
	clock.Advance(120 * time.Millisecond)
	sw.SplitMsg("index loaded.", 1)
	clock.Advance(80 * time.Millisecond)
	sw.StopMsg("done.", 0)

	// Output:
	// total: 0ms | split: 0ms | loading index.
	//   total: 120ms | split: 120ms | index loaded.
	// total: 200ms | split: 80ms | done.
}

func ExampleSplitStopwatch_Split() {
	clock := splitstopwatchtest.NewFakeClock()
	sw := splitstopwatch.New(splitstopwatch.WithNowFunc(clock.Now))

	sw.Start()
	clock.Advance(42 * time.Millisecond)
	d := sw.Split()

	fmt.Println(d.Milliseconds())
	// Output:
	// 42
}
