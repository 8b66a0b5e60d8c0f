// Package bases classifies raw sequence characters for the distance
// engines and carries the anomaly-reporting hook for characters that
// are not bases at all.
//
// Character classes:
//   - canonical base  — A, C, G, T (case-insensitive)
//   - unknown base    — N (case-insensitive), an unresolved nucleotide;
//     it substitutes against anything (itself included) at the
//     unknown-substitution cost
//   - non-base        — everything else; free to skip, reported through
//     the Reporter hook for observability
//
// The classification tables are built once per process by Init, which is
// idempotent and called by every engine entry point, so callers never
// need to invoke it themselves.
//
// ⚙️ Usage:
//
//	bases.Init()
//	bases.IsBase('G')          // true
//	bases.IsUnknownBase('n')   // true
//	bases.IsSameBase('a', 'A') // true
//	bases.IsSameBase('N', 'N') // false — unknown never matches
package bases
