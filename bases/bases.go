package bases

import "sync"

// kind is the classification of a single input character.
type kind uint8

const (
	kindNonBase kind = iota // neither canonical nor unknown; skipped for free
	kindCanonical
	kindUnknown
)

// Unknown is the wildcard symbol for an unresolved nucleotide.
const Unknown byte = 'N'

var (
	initOnce sync.Once

	// kinds classifies every possible input byte.
	kinds [256]kind

	// canon folds case so 'a' and 'A' compare equal in IsSameBase.
	canon [256]byte
)

// Init builds the classification and canonicalization tables.
// It is idempotent and safe for concurrent use; every engine entry point
// calls it before touching a sequence, so explicit calls are optional.
func Init() {
	initOnce.Do(func() {
		var c int
		for c = 0; c < 256; c++ {
			canon[c] = byte(c)
		}
		for _, pair := range [][2]byte{{'a', 'A'}, {'c', 'C'}, {'g', 'G'}, {'t', 'T'}, {'n', 'N'}} {
			canon[pair[0]] = pair[1]
		}
		for _, b := range []byte{'A', 'a', 'C', 'c', 'G', 'g', 'T', 't'} {
			kinds[b] = kindCanonical
		}
		kinds['N'] = kindUnknown
		kinds['n'] = kindUnknown
	})
}

// IsBase reports whether c denotes a base at all — canonical or unknown.
// Non-base characters advance the alignment without cost.
func IsBase(c byte) bool {
	return kinds[c] != kindNonBase
}

// IsUnknownBase reports whether c is the unknown-base wildcard.
func IsUnknownBase(c byte) bool {
	return kinds[c] == kindUnknown
}

// IsSameBase reports whether a and b are the same canonical base,
// folding case. The unknown base is never "the same" as anything —
// not even another unknown — so a substitution against it is always
// charged, which keeps the top-down and bottom-up recurrences in
// agreement.
func IsSameBase(a, b byte) bool {
	return kinds[a] == kindCanonical && kinds[b] == kindCanonical && canon[a] == canon[b]
}
