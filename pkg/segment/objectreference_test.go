package segment

import (
	"testing"

	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectReferencePartsUnqualified(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("c")
	tok := NewToken(tables, syntax.NakedIdentifier, "c", markerFor(f, 0, 1))
	ref := NewNode(tables, syntax.ColumnReference, []*Segment{tok}, "ansi", nil)

	parts := ref.ObjectReferenceParts()
	require.Len(t, parts, 1)
	assert.Equal(t, "c", parts[0].Part)
	assert.False(t, ref.IsQualified())
}

func TestObjectReferencePartsQualifiedSplitsOnDot(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("t.c")
	tTok := NewToken(tables, syntax.NakedIdentifier, "t", markerFor(f, 0, 1))
	dot := NewToken(tables, syntax.Dot, ".", markerFor(f, 1, 2))
	cTok := NewToken(tables, syntax.NakedIdentifier, "c", markerFor(f, 2, 3))
	ref := NewNode(tables, syntax.ColumnReference, []*Segment{tTok, dot, cTok}, "ansi", nil)

	parts := ref.ObjectReferenceParts()
	require.Len(t, parts, 2)
	assert.Equal(t, "t", parts[0].Part)
	assert.Equal(t, "c", parts[1].Part)
	assert.True(t, ref.IsQualified())
}

func TestObjectReferencePartsUnquotes(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated(`"My Col"`)
	tok := NewToken(tables, syntax.QuotedIdentifier, `"My Col"`, markerFor(f, 0, 8))
	ref := NewNode(tables, syntax.ColumnReference, []*Segment{tok}, "ansi", nil)

	parts := ref.ObjectReferenceParts()
	require.Len(t, parts, 1)
	assert.Equal(t, "My Col", parts[0].Part)
}

// TestObjectReferencePartsNormalisesCombiningForm exercises the NFC
// normalisation referenced in the domain-stack table: a precomposed
// codepoint (U+00E9, Latin small letter e with acute) and the decomposed
// equivalent (U+0065 "e" followed by U+0301 combining acute accent) must
// split into the same part text.
func TestObjectReferencePartsNormalisesCombiningForm(t *testing.T) {
	precomposed := "caf" + "\u00e9"
	decomposed := "caf" + "e" + "\u0301"
	require.NotEqual(t, precomposed, decomposed, "fixture must exercise two distinct byte forms")

	tables := NewTables()
	f := tmplfile.NewUntemplated(decomposed)
	tok := NewToken(tables, syntax.NakedIdentifier, decomposed, markerFor(f, 0, len(decomposed)))
	ref := NewNode(tables, syntax.ColumnReference, []*Segment{tok}, "ansi", nil)

	parts := ref.ObjectReferenceParts()
	require.Len(t, parts, 1)
	assert.Equal(t, precomposed, parts[0].Part)
}

// TestClassTypeMonotonicityViaObjectReferenceParts extends the component-A
// monotonicity check (pkg/syntax/set_test.go) with an actual consumer of
// the qualified-name split: every ObjectReference-class segment must both
// carry ObjectReference in its class-type set and be splittable into parts.
func TestClassTypeMonotonicityViaObjectReferenceParts(t *testing.T) {
	tables := NewTables()
	f := tmplfile.NewUntemplated("a.b")
	aTok := NewToken(tables, syntax.NakedIdentifier, "a", markerFor(f, 0, 1))
	dot := NewToken(tables, syntax.Dot, ".", markerFor(f, 1, 2))
	bTok := NewToken(tables, syntax.NakedIdentifier, "b", markerFor(f, 2, 3))
	ref := NewNode(tables, syntax.TableReference, []*Segment{aTok, dot, bTok}, "ansi", nil)

	assert.True(t, ref.IsType(syntax.ObjectReference))
	assert.Equal(t, []string{"a", "b"}, partStrings(ref.ObjectReferenceParts()))
}

func partStrings(parts []ObjectReferencePart) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Part
	}
	return out
}
