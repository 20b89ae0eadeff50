package segment

import (
	"testing"

	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markerFor(f *tmplfile.TemplatedFile, start, end int) *tmplfile.Marker {
	return &tmplfile.Marker{
		SourceRange:    tmplfile.Range{Start: start, End: end},
		TemplatedRange: tmplfile.Range{Start: start, End: end},
		File:           f,
		WorkingLine:    1,
		WorkingCol:     start + 1,
	}
}

func TestNodeRawIsConcatOfChildren(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("select 1")
	selectKw := NewToken(tables, syntax.Keyword, "select", markerFor(f, 0, 6))
	ws := NewToken(tables, syntax.Whitespace, " ", markerFor(f, 6, 7))
	one := NewToken(tables, syntax.NumericLiteral, "1", markerFor(f, 7, 8))
	node := NewNode(tables, syntax.SelectClauseElement, []*Segment{selectKw, ws, one}, "ansi", nil)

	assert.Equal(t, "select 1", node.Raw())
	require.NotNil(t, node.Position())
	assert.Equal(t, tmplfile.Range{Start: 0, End: 8}, node.Position().SourceRange)
}

func TestClassTypesPropagate(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("t")
	tok := NewToken(tables, syntax.NakedIdentifier, "t", markerFor(f, 0, 1))
	ref := NewNode(tables, syntax.TableReference, []*Segment{tok}, "ansi", nil)
	assert.True(t, ref.IsType(syntax.ObjectReference))
}

func TestIsCodeSkipsMetaAndWhitespace(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated(" ")
	ws := NewToken(tables, syntax.Whitespace, " ", markerFor(f, 0, 1))
	assert.False(t, ws.IsCode())
	eof := NewToken(tables, syntax.EndOfFile, "", markerFor(f, 1, 1))
	assert.True(t, eof.IsMeta())
	assert.False(t, eof.IsCode())
}

func TestEqualByIDThenStructural(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("a")
	a1 := NewToken(tables, syntax.NakedIdentifier, "a", markerFor(f, 0, 1))
	assert.True(t, a1.Equal(a1))

	tables2 := NewTables()
	tables2.NextID()
	a2 := NewToken(tables2, syntax.NakedIdentifier, "a", markerFor(f, 0, 1))
	// Different arena, advanced by one => different ids (1 vs 2), but same
	// (kind, position, raw).
	assert.NotEqual(t, a1.ID(), a2.ID())
	assert.True(t, a1.Equal(a2))
}

func TestRecursiveCrawlFindsColumnReference(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("a")
	tok := NewToken(tables, syntax.NakedIdentifier, "a", markerFor(f, 0, 1))
	col := NewNode(tables, syntax.ColumnReference, []*Segment{tok}, "ansi", nil)
	wrapper := NewNode(tables, syntax.SelectClauseElement, []*Segment{col}, "ansi", nil)

	found := wrapper.RecursiveCrawl(syntax.Single(syntax.ColumnReference), true, syntax.Empty, true)
	require.Len(t, found, 1)
	assert.Equal(t, syntax.ColumnReference, found[0].Kind())
}

func TestEditPreservesKindAndPosition(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("a")
	pos := markerFor(f, 0, 1)
	tok := NewToken(tables, syntax.NakedIdentifier, "a", pos)
	newRaw := "b"
	edited := tok.Edit(tables, &newRaw, nil)

	assert.Equal(t, tok.Kind(), edited.Kind())
	assert.Equal(t, "b", edited.Raw())
	assert.NotEqual(t, tok.ID(), edited.ID())
	assert.Equal(t, tok.Position(), edited.Position())
}

func TestToSerialisedCodeOnly(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("a ")
	tok := NewToken(tables, syntax.NakedIdentifier, "a", markerFor(f, 0, 1))
	ws := NewToken(tables, syntax.Whitespace, " ", markerFor(f, 1, 2))
	node := NewNode(tables, syntax.ColumnReference, []*Segment{tok, ws}, "ansi", nil)

	ser := node.ToSerialised(true, true)
	require.Len(t, ser.Children, 1)
	assert.Equal(t, "a", ser.Children[0].Raw)
}
