package nw_test

import (
	"testing"

	"github.com/katalvlaran/nwalign/bases"
	"github.com/katalvlaran/nwalign/nw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engines enumerates the four entry points under one closure signature so
// table tests can sweep them. CacheAware and CacheOblivious run with
// their defaults here; tuning invariance has its own tests.
var engines = []struct {
	name string
	fn   func(a, b []byte, rep bases.Reporter) (int64, error)
}{
	{"recmemo", nw.DistanceRecMemo},
	{"iterative", nw.DistanceIterative},
	{"aware", func(a, b []byte, rep bases.Reporter) (int64, error) {
		return nw.DistanceCacheAware(a, b, nw.DefaultCacheSize, rep)
	}},
	{"oblivious", func(a, b []byte, rep bases.Reporter) (int64, error) {
		return nw.DistanceCacheOblivious(a, b, nw.DefaultThreshold, rep)
	}},
}

// TestDistance_ConcreteScenarios pins the canonical distances every
// engine must produce for the reference inputs.
func TestDistance_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		a, b string
		want int64
	}{
		{"", "", 0},
		{"AC", "AC", 0},
		{"AC", "AG", 1},  // one substitution
		{"A", "", 2},     // one insertion
		{"AN", "AC", 1},  // unknown-base substitution costs like a mismatch
		{"A-C", "AC", 0}, // '-' is not a base: skipped for free
	}
	for _, e := range engines {
		for _, tc := range cases {
			got, err := e.fn([]byte(tc.a), []byte(tc.b), nil)
			require.NoError(t, err, "%s(%q,%q)", e.name, tc.a, tc.b)
			assert.Equal(t, tc.want, got, "%s(%q,%q)", e.name, tc.a, tc.b)
		}
	}
}

// TestDistance_SwapArguments verifies argument order never matters:
// the engines reorder internally so the longer sequence is always X.
func TestDistance_SwapArguments(t *testing.T) {
	pairs := [][2]string{
		{"GATTACA", "GCAT"},
		{"ACGT", "TGCA"},
		{"AAN-C", "ACGTACGT"},
		{"", "ACG"},
	}
	for _, e := range engines {
		for _, p := range pairs {
			ab, err := e.fn([]byte(p[0]), []byte(p[1]), nil)
			require.NoError(t, err)
			ba, err := e.fn([]byte(p[1]), []byte(p[0]), nil)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s must be order-independent for %q/%q", e.name, p[0], p[1])
		}
	}
}

// TestDistanceCacheAware_BadCacheSize ensures non-positive budgets error
// instead of silently computing with a nonsense block width.
func TestDistanceCacheAware_BadCacheSize(t *testing.T) {
	for _, z := range []int{0, -1, -4096} {
		_, err := nw.DistanceCacheAware([]byte("AC"), []byte("AG"), z, nil)
		assert.ErrorIs(t, err, nw.ErrBadCacheSize, "cacheSize=%d", z)
	}
}

// TestDistanceCacheOblivious_BadThreshold ensures non-positive leaf
// thresholds error: a zero threshold would bisect forever.
func TestDistanceCacheOblivious_BadThreshold(t *testing.T) {
	for _, th := range []int{0, -1} {
		_, err := nw.DistanceCacheOblivious([]byte("AC"), []byte("AG"), th, nil)
		assert.ErrorIs(t, err, nw.ErrBadThreshold, "threshold=%d", th)
	}
}

// TestDistance_Dispatcher verifies Distance routes to the selected engine
// and propagates its tuning parameters.
func TestDistance_Dispatcher(t *testing.T) {
	a, b := []byte("GATTACA"), []byte("GCATGC")

	want, err := nw.DistanceIterative(a, b, nil)
	require.NoError(t, err)

	for _, engine := range []nw.Engine{nw.RecMemo, nw.Iterative, nw.CacheAware, nw.CacheOblivious} {
		opts := nw.DefaultOptions()
		opts.Engine = engine
		got, err := nw.Distance(a, b, opts)
		require.NoError(t, err, "engine %s", engine)
		assert.Equal(t, want, got, "engine %s", engine)
	}
}

// TestDistance_UnknownEngine verifies the dispatcher rejects engine
// values outside the enum.
func TestDistance_UnknownEngine(t *testing.T) {
	opts := nw.DefaultOptions()
	opts.Engine = nw.Engine(42)
	_, err := nw.Distance([]byte("A"), []byte("C"), opts)
	assert.ErrorIs(t, err, nw.ErrUnknownEngine)
}

// TestDistance_DispatcherBadTuning verifies tuning validation still fires
// through the dispatcher.
func TestDistance_DispatcherBadTuning(t *testing.T) {
	opts := nw.DefaultOptions()
	opts.Engine = nw.CacheAware
	opts.CacheSize = 0
	_, err := nw.Distance([]byte("A"), []byte("C"), opts)
	assert.ErrorIs(t, err, nw.ErrBadCacheSize)

	opts = nw.DefaultOptions()
	opts.Engine = nw.CacheOblivious
	opts.Threshold = -3
	_, err = nw.Distance([]byte("A"), []byte("C"), opts)
	assert.ErrorIs(t, err, nw.ErrBadThreshold)
}

// TestEngine_String pins the CLI spellings of the engine names.
func TestEngine_String(t *testing.T) {
	assert.Equal(t, "recmemo", nw.RecMemo.String())
	assert.Equal(t, "iterative", nw.Iterative.String())
	assert.Equal(t, "aware", nw.CacheAware.String())
	assert.Equal(t, "oblivious", nw.CacheOblivious.String())
	assert.Equal(t, "unknown", nw.Engine(-1).String())
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := nw.DefaultOptions()
	assert.Equal(t, nw.Iterative, opts.Engine)
	assert.Equal(t, nw.DefaultCacheSize, opts.CacheSize)
	assert.Equal(t, nw.DefaultThreshold, opts.Threshold)
	assert.Nil(t, opts.Reporter)
}

// TestReporter_RowEngines verifies the row-walking engines deliver each
// non-base occurrence exactly once, even though their inner loops revisit
// every column per row.
func TestReporter_RowEngines(t *testing.T) {
	a, b := []byte("A--C*G"), []byte("AC G")

	rowEngines := []struct {
		name string
		fn   func(a, b []byte, rep bases.Reporter) (int64, error)
	}{
		{"iterative", nw.DistanceIterative},
		{"aware", func(a, b []byte, rep bases.Reporter) (int64, error) {
			return nw.DistanceCacheAware(a, b, 1, rep) // width 1: maximal revisiting
		}},
		{"oblivious", func(a, b []byte, rep bases.Reporter) (int64, error) {
			return nw.DistanceCacheOblivious(a, b, 1, rep)
		}},
	}
	for _, e := range rowEngines {
		var rep bases.CountReporter
		_, err := e.fn(a, b, &rep)
		require.NoError(t, err, e.name)
		assert.Equal(t, 2, rep.Count('-'), "%s: '-' occurs twice", e.name)
		assert.Equal(t, 1, rep.Count('*'), "%s: '*' occurs once", e.name)
		assert.Equal(t, 1, rep.Count(' '), "%s: ' ' occurs once", e.name)
		assert.Equal(t, 4, rep.Total(), e.name)
	}
}

// TestReporter_RecMemo verifies the memoized engine reports skipped
// characters as subproblems are visited: at least once per character,
// and never a character that is a base.
func TestReporter_RecMemo(t *testing.T) {
	var rep bases.CountReporter
	_, err := nw.DistanceRecMemo([]byte("A-C"), []byte("AC"), &rep)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rep.Count('-'), 1, "the skip must be observed")
	assert.Equal(t, []byte{'-'}, rep.Seen(), "only the non-base character is reported")
}

// TestDistance_NilReporter verifies every engine tolerates a nil sink.
func TestDistance_NilReporter(t *testing.T) {
	for _, e := range engines {
		got, err := e.fn([]byte("A-N"), []byte("?AC"), nil)
		require.NoError(t, err, e.name)
		assert.GreaterOrEqual(t, got, int64(0), e.name)
	}
}
