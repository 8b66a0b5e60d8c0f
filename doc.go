// Package nwalign computes the Needleman-Wunsch global edit distance
// between nucleotide sequences — one recurrence, four interchangeable
// evaluation engines that trade memory footprint against access pattern.
//
// 🚀 What is nwalign?
//
//	A small, focused library for global alignment distance over genetic
//	sequences (A/C/G/T, the unknown base N, free skipping of anything
//	else), built around a fixed integer cost model:
//	  • substitution of two distinct known bases — cost 1
//	  • substitution involving the unknown base N — cost 1
//	  • insertion/deletion of a known base       — cost 2
//	  • non-base characters (gaps, digits, …)    — cost 0, reported
//
// ✨ Four engines, one answer:
//   - RecMemo        — top-down memoized recursion, O(M·N) memory
//   - Iterative      — bottom-up single row, O(min(M,N)) memory
//   - CacheAware     — blocked evaluation sized to a cache budget
//   - CacheOblivious — recursive column bisection, no tuning beyond a leaf threshold
//
// All four return bit-for-bit identical distances; they differ only in
// how they walk memory.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nwalign/nw"
//
//	dist, err := nw.DistanceIterative([]byte("GATTACA"), []byte("GCATGCU"), nil)
//
// Subpackages:
//
//	bases/ — nucleotide classification and anomaly reporting
//	nw/    — the distance engines and dispatcher
//	fasta/ — minimal FASTA loading for the CLI
//
// See cmd/nwalign for the command-line front end.
package nwalign
