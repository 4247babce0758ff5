package splitstopwatch

// Prefix templates receive three positional values: the total elapsed
// milliseconds, the milliseconds since the last split, and the caller's
// message.
const (
	// PrefixTotalFirst renders the running total before the last-split
	// delta. This is the default.
	PrefixTotalFirst = "total: %[1]dms | split: %[2]dms | %[3]s"

	// PrefixSplitFirst renders the last-split delta before the running
	// total.
	PrefixSplitFirst = "split: %[2]dms | total: %[1]dms | %[3]s"
)
