package nw

import "github.com/katalvlaran/nwalign/bases"

// DistanceIterative computes the global edit distance between a and b
// bottom-up, using a single (N+1)-slot row in place of the full memo
// table. The row is indexed mirror-fashion: slot j holds the cost for
// the last j characters of Y, and each of the M outer steps folds in one
// character of X from its end toward its start.
//
// The diagonal predecessor of slot j is the value slot j held before the
// current step touched it, so a one-slot carry captures it ahead of
// every overwrite.
//
// Contract:
//   - a and b are never mutated; empty sequences are legal.
//   - rep receives each non-base occurrence exactly once; nil discards.
//   - The error is always nil; it exists so all four engines share one
//     signature shape.
//
// Complexity: O(M·N) time, O(min(M,N)) memory.
func DistanceIterative(a, b []byte, rep bases.Reporter) (int64, error) {
	bases.Init()
	x, y := orient(a, b)
	m, n := len(x), len(y)
	reportNonBases(reporterOrNop(rep), x, y)

	// Row 0: cumulative insertion cost of draining Y, scanned from its end.
	tab := make([]int64, n+1)
	for j := 1; j <= n; j++ {
		tab[j] = tab[j-1] + insCost(y[n-j])
	}

	var prev int64 // pre-update tab[j], the diagonal predecessor
	for i := 1; i <= m; i++ {
		xc := x[m-i]
		prev = tab[0]
		tab[0] += insCost(xc)
		for j := 1; j <= n; j++ {
			yc := y[n-j]
			switch {
			case !bases.IsBase(yc): // column is a free skip: copy left neighbor
				prev = tab[j]
				tab[j] = tab[j-1]
			case !bases.IsBase(xc): // row is a free skip: keep previous row
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
	}

	return tab[n], nil
}
