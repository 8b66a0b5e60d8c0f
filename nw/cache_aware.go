package nw

import "github.com/katalvlaran/nwalign/bases"

// Sizing of the blocked working set: a block keeps roughly five arrays
// of int64 live in cache (the scratch row, its read-ahead, the boundary
// slice in flight, and the two sequence windows).
const (
	liveArrays = 5
	elemSize   = 8
)

// blockWidth derives how many columns of the scratch row fit in a byte
// budget, clamped so even a budget below one column still advances.
func blockWidth(cacheSize int) int {
	w := cacheSize / (liveArrays * elemSize)
	if w < 1 {
		w = 1
	}

	return w
}

// DistanceCacheAware computes the global edit distance between a and b
// with the same row recurrence as DistanceIterative, but processes Y in
// fixed-width blocks sized from cacheSize so the scratch row stays
// cache-resident. An (M+1)-slot boundary array carries, per row, the
// value at the last column of the previous block; each row of a block
// seeds from it and writes its own last column back.
//
// The block width affects memory locality only — the returned value is
// identical for every positive cacheSize.
//
// Contract:
//   - cacheSize must be positive, else ErrBadCacheSize.
//   - a and b are never mutated; empty sequences are legal.
//   - rep receives each non-base occurrence exactly once; nil discards.
//
// Complexity: O(M·N) time, O(M + blockWidth) memory.
func DistanceCacheAware(a, b []byte, cacheSize int, rep bases.Reporter) (int64, error) {
	bases.Init()
	if cacheSize <= 0 {
		return 0, ErrBadCacheSize
	}
	x, y := orient(a, b)
	m, n := len(x), len(y)
	reportNonBases(reporterOrNop(rep), x, y)

	// Boundary: cumulative insertion cost of draining X, scanned from its
	// end — the transposed mirror of the iterative engine's row 0.
	col := make([]int64, m+1)
	for i := 1; i <= m; i++ {
		col[i] = col[i-1] + insCost(x[m-i])
	}

	width := blockWidth(cacheSize)
	tab := make([]int64, width+1)
	for rem := n; rem > 0; rem -= width {
		w := width
		if rem < w {
			w = rem // last block may be narrower
		}

		// Seed the block's row 0 from the boundary, then extend it with
		// insertion costs over this block's slice of Y.
		tab[0] = col[0]
		for j := 1; j <= w; j++ {
			tab[j] = tab[j-1] + insCost(y[rem-j])
		}
		col[0] = tab[w]

		var prev int64
		for i := 1; i <= m; i++ {
			xc := x[m-i]
			prev = tab[0]
			tab[0] = col[i]
			for j := 1; j <= w; j++ {
				yc := y[rem-j]
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
			col[i] = tab[w]
		}
	}

	return col[m], nil
}
