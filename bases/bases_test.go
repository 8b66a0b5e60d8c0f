package bases_test

import (
	"testing"

	"github.com/katalvlaran/nwalign/bases"
	"github.com/stretchr/testify/assert"
)

// TestInit_Idempotent verifies Init can be called repeatedly without
// disturbing the classification tables.
func TestInit_Idempotent(t *testing.T) {
	bases.Init()
	bases.Init()
	assert.True(t, bases.IsBase('A'), "tables must survive repeated Init")
}

// TestIsBase covers the three character classes on both cases.
func TestIsBase(t *testing.T) {
	bases.Init()

	for _, c := range []byte("ACGTacgtNn") {
		assert.True(t, bases.IsBase(c), "%q must be a base", c)
	}
	for _, c := range []byte("-U u5.\n>*") {
		assert.False(t, bases.IsBase(c), "%q must not be a base", c)
	}
}

// TestIsUnknownBase verifies only N/n are the wildcard.
func TestIsUnknownBase(t *testing.T) {
	bases.Init()

	assert.True(t, bases.IsUnknownBase('N'))
	assert.True(t, bases.IsUnknownBase('n'))
	assert.False(t, bases.IsUnknownBase('A'))
	assert.False(t, bases.IsUnknownBase('-'))
}

// TestIsSameBase verifies case folding and the unknown-never-matches rule.
func TestIsSameBase(t *testing.T) {
	bases.Init()

	assert.True(t, bases.IsSameBase('A', 'A'))
	assert.True(t, bases.IsSameBase('a', 'A'), "case must fold")
	assert.True(t, bases.IsSameBase('t', 'T'))
	assert.False(t, bases.IsSameBase('A', 'C'))
	assert.False(t, bases.IsSameBase('N', 'N'), "unknown never matches itself")
	assert.False(t, bases.IsSameBase('N', 'A'))
	assert.False(t, bases.IsSameBase('-', '-'), "non-base never matches")
}

// TestCountReporter verifies tallies, totals and the Seen ordering.
func TestCountReporter(t *testing.T) {
	var rep bases.CountReporter
	rep.ReportNonBase('-')
	rep.ReportNonBase('-')
	rep.ReportNonBase('x')

	assert.Equal(t, 2, rep.Count('-'))
	assert.Equal(t, 1, rep.Count('x'))
	assert.Equal(t, 0, rep.Count('y'))
	assert.Equal(t, 3, rep.Total())
	assert.Equal(t, []byte{'-', 'x'}, rep.Seen())
}

// TestReporterFunc verifies the function adapter forwards characters.
func TestReporterFunc(t *testing.T) {
	var got []byte
	rep := bases.ReporterFunc(func(c byte) { got = append(got, c) })
	rep.ReportNonBase('!')
	rep.ReportNonBase('?')
	assert.Equal(t, []byte("!?"), got)
}
