package nw

import "github.com/katalvlaran/nwalign/bases"

// orient designates the longer input as X and the shorter as Y, so every
// engine's auxiliary memory is bounded by min(M,N) rather than max(M,N).
// On equal lengths a stays X, which keeps argument order irrelevant to
// the result while keeping the choice deterministic.
func orient(a, b []byte) (x, y []byte) {
	if len(a) >= len(b) {
		return a, b
	}

	return b, a
}

// insCost returns the boundary cost of draining character c: inserting a
// base costs InsertionCost, skipping a non-base character is free.
func insCost(c byte) int64 {
	if bases.IsBase(c) {
		return InsertionCost
	}

	return 0
}

// subCost returns the diagonal cost of aligning xc against yc. Both are
// known to be bases when this is called.
func subCost(xc, yc byte) int64 {
	if bases.IsUnknownBase(xc) {
		return SubstitutionUnknownCost
	}
	if bases.IsSameBase(xc, yc) {
		return 0
	}

	return SubstitutionCost
}

// min64 returns the smaller of two int64 values.
func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

// reporterOrNop substitutes a no-op sink for a nil Reporter so the
// engines never nil-check in their loops.
func reporterOrNop(rep bases.Reporter) bases.Reporter {
	if rep == nil {
		return bases.NopReporter{}
	}

	return rep
}

// reportNonBases delivers each non-base occurrence in x and y to rep
// exactly once. The row-walking engines revisit every character of Y
// once per row, so they report through this single up-front scan instead
// of from their inner loops.
func reportNonBases(rep bases.Reporter, x, y []byte) {
	if _, nop := rep.(bases.NopReporter); nop {
		return
	}
	for _, c := range x {
		if !bases.IsBase(c) {
			rep.ReportNonBase(c)
		}
	}
	for _, c := range y {
		if !bases.IsBase(c) {
			rep.ReportNonBase(c)
		}
	}
}
