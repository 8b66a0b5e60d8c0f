package nw

import (
	"errors"

	"github.com/katalvlaran/nwalign/bases"
)

// Costs of the elementary alignment operations. Substituting the unknown
// base N costs the same whether its counterpart is known or unknown.
const (
	// SubstitutionCost is the cost of substituting one known base by a
	// different known base.
	SubstitutionCost int64 = 1

	// SubstitutionUnknownCost is the cost of any substitution involving
	// the unknown base N.
	SubstitutionUnknownCost int64 = 1

	// InsertionCost is the cost of inserting (or, symmetrically,
	// deleting) one known base.
	InsertionCost int64 = 2
)

// Sentinel errors returned by the distance engines.
var (
	// ErrBadCacheSize indicates a non-positive cache budget was passed to
	// the cache-aware engine.
	ErrBadCacheSize = errors.New("nw: cache size must be positive")

	// ErrBadThreshold indicates a non-positive leaf threshold was passed
	// to the cache-oblivious engine.
	ErrBadThreshold = errors.New("nw: threshold must be positive")

	// ErrUnknownEngine indicates Options.Engine is not one of the four
	// defined engines.
	ErrUnknownEngine = errors.New("nw: unknown engine")
)

// Engine selects which evaluation strategy Distance dispatches to.
// All engines return identical values; they differ in memory footprint
// and access pattern.
type Engine int

const (
	// RecMemo is the top-down memoized recursion, O(M·N) memory.
	RecMemo Engine = iota

	// Iterative is the bottom-up single-row evaluation, O(min(M,N)) memory.
	Iterative

	// CacheAware blocks the shorter sequence to fit a byte budget.
	CacheAware

	// CacheOblivious bisects the column range down to a leaf threshold.
	CacheOblivious
)

// String returns the engine name as used by the CLI.
func (e Engine) String() string {
	switch e {
	case RecMemo:
		return "recmemo"
	case Iterative:
		return "iterative"
	case CacheAware:
		return "aware"
	case CacheOblivious:
		return "oblivious"
	default:
		return "unknown"
	}
}

// Default tuning values used by DefaultOptions and the CLI.
const (
	// DefaultCacheSize is a conservative L1-sized budget for CacheAware.
	DefaultCacheSize = 32 * 1024

	// DefaultThreshold is the leaf width for CacheOblivious.
	DefaultThreshold = 64
)

// Options configures the Distance dispatcher.
//
// Engine    – which evaluation strategy to run.
// CacheSize – byte budget for CacheAware (must be > 0 for that engine).
// Threshold – leaf column width for CacheOblivious (must be > 0 for that engine).
// Reporter  – anomaly sink for non-base characters; nil discards reports.
type Options struct {
	Engine    Engine
	CacheSize int
	Threshold int
	Reporter  bases.Reporter
}

// DefaultOptions returns Options with sensible defaults: the Iterative
// engine, DefaultCacheSize, DefaultThreshold, and no reporting.
func DefaultOptions() Options {
	return Options{
		Engine:    Iterative,
		CacheSize: DefaultCacheSize,
		Threshold: DefaultThreshold,
		Reporter:  nil,
	}
}
