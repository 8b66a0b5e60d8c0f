package bases

// Reporter receives each non-base character an engine encounters while
// walking a sequence. It replaces a side-effecting global hook with an
// explicit, injectable sink: pass nil to an engine to discard reports.
//
// Implementations must tolerate repeated reports of the same character;
// the memoized engine reports in recursion-visit order and may see a
// character once per subproblem row, while the row-walking engines
// report each occurrence exactly once.
type Reporter interface {
	ReportNonBase(c byte)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(c byte)

// ReportNonBase calls f(c).
func (f ReporterFunc) ReportNonBase(c byte) { f(c) }

// NopReporter discards all reports. Engines substitute it for a nil
// Reporter so the hot loops never nil-check.
type NopReporter struct{}

// ReportNonBase does nothing.
func (NopReporter) ReportNonBase(byte) {}

// CountReporter tallies reports per character. Not safe for concurrent
// use; each engine call owns its working state, so share one only across
// sequential calls.
type CountReporter struct {
	counts [256]int
	total  int
}

// ReportNonBase records one occurrence of c.
func (r *CountReporter) ReportNonBase(c byte) {
	r.counts[c]++
	r.total++
}

// Count returns how many times c was reported.
func (r *CountReporter) Count(c byte) int { return r.counts[c] }

// Total returns the number of reports received.
func (r *CountReporter) Total() int { return r.total }

// Seen returns every reported character in byte order.
func (r *CountReporter) Seen() []byte {
	var seen []byte
	for c := 0; c < 256; c++ {
		if r.counts[c] > 0 {
			seen = append(seen, byte(c))
		}
	}

	return seen
}
