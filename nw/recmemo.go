package nw

import "github.com/katalvlaran/nwalign/bases"

// notYetComputed marks unevaluated memo cells. Every legal distance is
// non-negative, so -1 cannot collide with a real value.
const notYetComputed int64 = -1

// memoCtx carries the orientation and the memo table through the
// recursion. The table is flat row-major, (m+1)×(n+1) cells, owned by a
// single DistanceRecMemo call and discarded on return.
type memoCtx struct {
	x, y []byte
	m, n int
	memo []int64
	rep  bases.Reporter
}

// DistanceRecMemo computes the global edit distance between a and b by
// top-down recursion with memoization.
//
// Contract:
//   - a and b are never mutated; empty sequences are legal.
//   - rep receives one report per skipped non-base character each time a
//     skip cell is first computed, in recursion-visit order; nil discards.
//   - The error is always nil; it exists so all four engines share one
//     signature shape.
//
// Complexity: O(M·N) time and memory. Recursion depth is O(M+N); for
// sequences long enough to threaten the stack, prefer DistanceIterative.
func DistanceRecMemo(a, b []byte, rep bases.Reporter) (int64, error) {
	bases.Init()
	x, y := orient(a, b)
	c := &memoCtx{
		x:    x,
		y:    y,
		m:    len(x),
		n:    len(y),
		memo: make([]int64, (len(x)+1)*(len(y)+1)),
		rep:  reporterOrNop(rep),
	}
	for i := range c.memo {
		c.memo[i] = notYetComputed
	}

	return c.phi(0, 0), nil
}

// phi computes and memoizes the cost of aligning x[i..m) against y[j..n).
func (c *memoCtx) phi(i, j int) int64 {
	idx := i*(c.n+1) + j
	if c.memo[idx] != notYetComputed {
		return c.memo[idx]
	}

	var res int64
	switch {
	case i == c.m && j == c.n:
		res = 0
	case i == c.m: // X exhausted: drain the rest of Y
		res = insCost(c.y[j]) + c.phi(i, j+1)
	case j == c.n: // Y exhausted: drain the rest of X
		res = insCost(c.x[i]) + c.phi(i+1, j)
	case !bases.IsBase(c.x[i]): // free skip over X[i]
		c.rep.ReportNonBase(c.x[i])
		res = c.phi(i+1, j)
	case !bases.IsBase(c.y[j]): // free skip over Y[j]
		c.rep.ReportNonBase(c.y[j])
		res = c.phi(i, j+1)
	default:
		res = subCost(c.x[i], c.y[j]) + c.phi(i+1, j+1)
		if v := InsertionCost + c.phi(i+1, j); v < res {
			res = v
		}
		if v := InsertionCost + c.phi(i, j+1); v < res {
			res = v
		}
	}
	c.memo[idx] = res

	return res
}
