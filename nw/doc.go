// Package nw computes the Needleman-Wunsch global edit distance between
// two nucleotide sequences under a fixed integer cost model, with four
// evaluation engines over the same recurrence.
//
// 🚀 The recurrence
//
//	Let X be the longer sequence (length M) and Y the shorter (length N).
//	phi(i,j) is the minimal cost to align the suffix X[i..M) against
//	Y[j..N):
//	  phi(M,N) = 0
//	  phi(M,j) = ins(Y[j]) + phi(M,j+1)          (drain Y)
//	  phi(i,N) = ins(X[i]) + phi(i+1,N)          (drain X)
//	  phi(i,j) = phi(i+1,j)                      (X[i] not a base: free skip)
//	  phi(i,j) = phi(i,j+1)                      (Y[j] not a base: free skip)
//	  phi(i,j) = min( sub(X[i],Y[j]) + phi(i+1,j+1),
//	                  InsertionCost  + phi(i+1,j),
//	                  InsertionCost  + phi(i,j+1) )
//
//	where ins(c) is InsertionCost for a base and 0 otherwise, and
//	sub charges 0 for identical known bases, SubstitutionUnknownCost
//	when the unknown base N is involved, SubstitutionCost otherwise.
//	The answer is phi(0,0).
//
// ✨ Four engines, one value:
//   - DistanceRecMemo        — top-down recursion over a dense
//     (M+1)×(N+1) memo table. Time O(M·N), memory O(M·N).
//   - DistanceIterative      — bottom-up over a single (N+1)-slot row
//     with a one-slot diagonal carry. Memory O(min(M,N)).
//   - DistanceCacheAware     — processes Y in fixed-width blocks derived
//     from a byte budget, carrying state between blocks in an (M+1)-slot
//     boundary array. Memory O(min(M,N) block + max(M,N) boundary).
//   - DistanceCacheOblivious — recursively bisects the column range down
//     to a leaf threshold; same boundary array, no capacity parameter.
//
// The engines differ only in memory-access pattern; every pair of inputs
// yields bit-for-bit identical distances across all four, for any valid
// cache budget or threshold. Distance dispatches over an Engine value
// when the choice is data-driven.
//
// ⚙️ Usage:
//
//	dist, err := nw.DistanceIterative([]byte("GATTACA"), []byte("GACTATA"), nil)
//
//	opts := nw.DefaultOptions()
//	opts.Engine = nw.CacheAware
//	opts.CacheSize = 64 * 1024
//	dist, err = nw.Distance(seqA, seqB, opts)
//
// Inputs are never mutated; each call owns all of its working memory, so
// the package is safe for concurrent use. There is no traceback: only the
// distance value is produced.
package nw
