package tmplfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntemplatedIsLiteralEverywhere(t *testing.T) {
	f := NewUntemplated("select 1 from dual")
	assert.False(t, f.IsTemplated())
	assert.Equal(t, f.SourceStr, f.Str())
	assert.True(t, f.IsSourceSliceLiteral(Range{Start: 0, End: len(f.SourceStr)}))
}

func TestGetLinePosOfCharPos(t *testing.T) {
	f := NewUntemplated("select 1\nfrom dual")
	line, col := f.GetLinePosOfCharPos(0, true)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	// first char of "from" is at offset 9
	line, col = f.GetLinePosOfCharPos(9, true)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestTemplatedToSourceRangeLiteral(t *testing.T) {
	source := "select {{ col }} from t"
	templated := "select my_col from t"
	slices := []RawFileSlice{
		{Raw: "select ", Kind: Literal, SourceIdx: 0, TemplatedIdx: 0},
		{Raw: "{{ col }}", Kind: Templated, SourceIdx: 7, TemplatedIdx: 7},
		{Raw: " from t", Kind: Literal, SourceIdx: 16, TemplatedIdx: 13},
	}
	f := New(source, templated, slices)
	require.True(t, f.IsTemplated())

	// "select " maps cleanly back to source.
	got, ok := f.TemplatedToSourceRange(Range{Start: 0, End: 7})
	require.True(t, ok)
	assert.Equal(t, Range{Start: 0, End: 7}, got)

	// the templated "my_col" falls inside a Templated slice: no stable
	// source counterpart.
	_, ok = f.TemplatedToSourceRange(Range{Start: 7, End: 13})
	assert.False(t, ok)

	assert.False(t, f.IsSourceSliceLiteral(Range{Start: 7, End: 16}))
	assert.True(t, f.IsSourceSliceLiteral(Range{Start: 0, End: 7}))
}

func TestMarkerUnion(t *testing.T) {
	f := NewUntemplated("a b c")
	m1 := Marker{SourceRange: Range{0, 1}, TemplatedRange: Range{0, 1}, File: f, WorkingLine: 1, WorkingCol: 1}
	m2 := Marker{SourceRange: Range{4, 5}, TemplatedRange: Range{4, 5}, File: f, WorkingLine: 1, WorkingCol: 5}
	u := Union(m1, m2)
	assert.Equal(t, Range{0, 5}, u.SourceRange)
}

func TestInferNextPosition(t *testing.T) {
	line, col := InferNextPosition("abc\ndef", 1, 1)
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, col)
}
