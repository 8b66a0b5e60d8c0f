package nw

import "github.com/katalvlaran/nwalign/bases"

// DistanceCacheOblivious computes the global edit distance between a and
// b with the same boundary-array scheme as DistanceCacheAware, but
// replaces fixed-width blocking with recursive bisection of the column
// range: a range wider than threshold splits at its midpoint, and the
// left half fully completes (updating the boundary) before the right
// half starts. Leaves evaluate with the shared row recurrence. The
// working set shrinks geometrically without any cache-capacity
// parameter, which is what distinguishes this engine from CacheAware.
//
// The threshold affects memory locality and recursion depth only — the
// returned value is identical for every threshold ≥ 1.
//
// Contract:
//   - threshold must be positive, else ErrBadThreshold.
//   - a and b are never mutated; empty sequences are legal.
//   - rep receives each non-base occurrence exactly once; nil discards.
//
// Complexity: O(M·N) time, O(M + threshold) memory beyond the
// O(log(N/threshold)) bisection stack.
func DistanceCacheOblivious(a, b []byte, threshold int, rep bases.Reporter) (int64, error) {
	bases.Init()
	if threshold <= 0 {
		return 0, ErrBadThreshold
	}
	x, y := orient(a, b)
	m, n := len(x), len(y)
	reportNonBases(reporterOrNop(rep), x, y)

	// Boundary: cumulative insertion cost of draining X, as in CacheAware.
	col := make([]int64, m+1)
	for i := 1; i <= m; i++ {
		col[i] = col[i-1] + insCost(x[m-i])
	}
	if n > 0 {
		bisect(x, y, col, threshold, 0, n)
	}

	return col[m], nil
}

// bisect evaluates the mirrored columns [lo, hi) of the recurrence,
// splitting until the range fits the leaf threshold. Leaf evaluation is
// the blocked row update of DistanceCacheAware restricted to the range,
// seeding each row from col and writing the range's last column back.
func bisect(x, y []byte, col []int64, threshold, lo, hi int) {
	size := hi - lo
	if size > threshold {
		mid := lo + size/2
		bisect(x, y, col, threshold, lo, mid)
		bisect(x, y, col, threshold, mid, hi)

		return
	}

	m, n := len(x), len(y)
	tab := make([]int64, size+1)
	tab[0] = col[0]
	for j := 1; j <= size; j++ {
		tab[j] = tab[j-1] + insCost(y[n-j-lo])
	}
	col[0] = tab[size]

	var prev int64
	for i := 1; i <= m; i++ {
		xc := x[m-i]
		prev = tab[0]
		tab[0] = col[i]
		for j := 1; j <= size; j++ {
			yc := y[n-j-lo]
			switch {
			case !bases.IsBase(yc):
				prev = tab[j]
				tab[j] = tab[j-1]
			case !bases.IsBase(xc):
				prev = tab[j]
			default:
				best := min64(tab[j], tab[j-1]) + InsertionCost
				if diag := prev + subCost(xc, yc); diag < best {
					best = diag
				}
				prev = tab[j]
				tab[j] = best
			}
		}
		col[i] = tab[size]
	}
}
