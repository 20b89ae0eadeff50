package grammar

import (
	"testing"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDialect is the minimal DialectView used across this package's tests.
type fakeDialect struct {
	lib      map[string]Matchable
	brackets map[string]BracketPair
	indent   map[string]bool
}

func newFakeDialect() *fakeDialect {
	return &fakeDialect{lib: map[string]Matchable{}, brackets: map[string]BracketPair{}, indent: map[string]bool{}}
}

func (d *fakeDialect) Lookup(name string) (Matchable, bool) {
	m, ok := d.lib[name]
	return m, ok
}

func (d *fakeDialect) BracketPair(name string) (BracketPair, bool) {
	p, ok := d.brackets[name]
	return p, ok
}

func (d *fakeDialect) IndentationConfig() map[string]bool { return d.indent }

func tok(tables *segment.Tables, f *tmplfile.TemplatedFile, kind syntax.Kind, raw string, start int) *segment.Segment {
	pos := &tmplfile.Marker{
		SourceRange:    tmplfile.Range{Start: start, End: start + len(raw)},
		TemplatedRange: tmplfile.Range{Start: start, End: start + len(raw)},
		File:           f,
		WorkingLine:    1,
		WorkingCol:     start + 1,
	}
	return segment.NewToken(tables, kind, raw, pos)
}

// tokensFromRaws builds a token stream by concatenating raws in order,
// tagging raws[i] with the caller-supplied kinds[i] —
// enough fixture fidelity for combinator tests that don't care about real
// lexing.
func tokensFromRaws(tables *segment.Tables, f *tmplfile.TemplatedFile, raws []string, kinds []syntax.Kind) []*segment.Segment {
	var out []*segment.Segment
	pos := 0
	for i, r := range raws {
		out = append(out, tok(tables, f, kinds[i], r, pos))
		pos += len(r)
	}
	return out
}

func TestStringParserMatchesCaseInsensitive(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("SELECT")
	tokens := []*segment.Segment{tok(tables, f, syntax.NakedIdentifier, "SELECT", 0)}
	ctx := NewParseContext(newFakeDialect())

	sp := NewStringParser("select", syntax.Keyword, false)
	res, err := sp.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, 1, res.Len())
	require.NotNil(t, res.Wrap)
	assert.True(t, res.Wrap.IsNewtype)
	assert.Equal(t, syntax.Keyword, res.Wrap.Kind)
}

func TestSequenceMatchesInOrderWithGap(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select 1")
	tokens := tokensFromRaws(tables, f,
		[]string{"select", " ", "1"},
		[]syntax.Kind{syntax.NakedIdentifier, syntax.Whitespace, syntax.NumericLiteral})
	ctx := NewParseContext(newFakeDialect())

	seq := NewSequence(
		NewStringParser("select", syntax.Keyword, false),
		NewTypedParser(syntax.NumericLiteral, syntax.NumericLiteral, false),
	)
	res, err := seq.Match(tokens, 0, ctx)
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, 3, res.Len())

	segs := res.Apply(tables, tokens, "ansi")
	require.Len(t, segs, 3)
	assert.Equal(t, syntax.Keyword, segs[0].Kind())
	assert.Equal(t, syntax.Whitespace, segs[1].Kind())
	assert.Equal(t, syntax.NumericLiteral, segs[2].Kind())
}

func TestSequenceRequiredElementFailsWholeMatch(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select")
	tokens := tokensFromRaws(tables, f, []string{"select"}, []syntax.Kind{syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	seq := NewSequence(
		NewStringParser("select", syntax.Keyword, false),
		NewStringParser("from", syntax.Keyword, false),
	)
	res, err := seq.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestSequenceOptionalElementSkipped(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select")
	tokens := tokensFromRaws(tables, f, []string{"select"}, []syntax.Kind{syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	seq := NewSequence(
		NewStringParser("distinct", syntax.Keyword, true),
		NewStringParser("select", syntax.Keyword, false),
	)
	res, err := seq.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, 1, res.Len())
}

func TestOneOfPicksLongestMatch(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("a b")
	tokens := tokensFromRaws(tables, f,
		[]string{"a", " ", "b"},
		[]syntax.Kind{syntax.NakedIdentifier, syntax.Whitespace, syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	shortAlt := NewStringParser("a", syntax.Keyword, false)
	longAlt := NewSequence(
		NewStringParser("a", syntax.Keyword, false),
		NewStringParser("b", syntax.Keyword, false),
	)
	oneOf := NewOneOf(shortAlt, longAlt)

	res, err := oneOf.Match(tokens, 0, ctx)
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, 3, res.Len())
}

func TestOneOfExcludeRejectsReservedShape(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("all")
	tokens := tokensFromRaws(tables, f, []string{"all"}, []syntax.Kind{syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	oneOf := &OneOf{
		base:     newBase(false),
		Elements: []Matchable{NewStringParser("all", syntax.NakedIdentifier, false)},
		Exclude:  NewStringParser("all", syntax.Keyword, false),
	}
	res, err := oneOf.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestAnyNumberOfRespectsMinAndMax(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("a a a")
	tokens := tokensFromRaws(tables, f,
		[]string{"a", " ", "a", " ", "a"},
		[]syntax.Kind{syntax.NakedIdentifier, syntax.Whitespace, syntax.NakedIdentifier, syntax.Whitespace, syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	any := NewAnyNumberOf(1, NewStringParser("a", syntax.Keyword, false))
	any.MaxTimes = 2
	res, err := any.Match(tokens, 0, ctx)
	require.NoError(t, err)
	require.True(t, res.Matched)
	// Two repetitions of "a" plus the gap between them.
	assert.Equal(t, 3, res.Len())
}

func TestAnyNumberOfFailsBelowMin(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("b")
	tokens := tokensFromRaws(tables, f, []string{"b"}, []syntax.Kind{syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	any := NewAnyNumberOf(1, NewStringParser("a", syntax.Keyword, false))
	res, err := any.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestDelimitedRespectsMinDelimitersAndTrailing(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("a,b,")
	tokens := tokensFromRaws(tables, f,
		[]string{"a", ",", "b", ","},
		[]syntax.Kind{syntax.NakedIdentifier, syntax.Comma, syntax.NakedIdentifier, syntax.Comma})
	ctx := NewParseContext(newFakeDialect())

	elem := NewTypedParser(syntax.NakedIdentifier, syntax.NakedIdentifier, false)
	delim := NewTypedParser(syntax.Comma, syntax.Comma, false)

	noTrailing := NewDelimited(elem, delim)
	noTrailing.MinDelimiters = 1
	res, err := noTrailing.Match(tokens, 0, ctx)
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, 3, res.Len()) // "a,b" — dangling trailing "," not consumed

	withTrailing := NewDelimited(elem, delim)
	withTrailing.AllowTrailing = true
	res2, err := withTrailing.Match(tokens, 0, ctx)
	require.NoError(t, err)
	require.True(t, res2.Matched)
	assert.Equal(t, 4, res2.Len()) // trailing "," included
}

func TestBracketedConsumesNestedPair(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("(a(b))")
	tokens := tokensFromRaws(tables, f,
		[]string{"(", "a", "(", "b", ")", ")"},
		[]syntax.Kind{syntax.StartBracket, syntax.NakedIdentifier, syntax.StartBracket, syntax.NakedIdentifier, syntax.EndBracket, syntax.EndBracket})

	d := newFakeDialect()
	d.brackets["round"] = BracketPair{Name: "round", Open: syntax.StartBracket, Close: syntax.EndBracket}
	ctx := NewParseContext(d)

	inner := NewAnyNumberOf(0, NewTypedParser(syntax.NakedIdentifier, syntax.NakedIdentifier, false))
	br := NewBracketed(inner, "round", false)

	res, err := br.Match(tokens, 0, ctx)
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, 6, res.Len())
}

func TestRefResolvesThroughDialectLibraryAndMemoises(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select")
	tokens := tokensFromRaws(tables, f, []string{"select"}, []syntax.Kind{syntax.NakedIdentifier})

	d := newFakeDialect()
	d.lib["SelectKeywordSegment"] = NewStringParser("select", syntax.Keyword, false)
	ctx := NewParseContext(d)

	ref := NewRef("SelectKeywordSegment", false, true)
	res, err := ref.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.True(t, res.Matched)

	// Second call at the same index hits the memo table.
	res2, err := ref.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.Equal(t, res, res2)
}

func TestRefUnresolvedReturnsError(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("x")
	tokens := tokensFromRaws(tables, f, []string{"x"}, []syntax.Kind{syntax.NakedIdentifier})
	ctx := NewParseContext(newFakeDialect())

	ref := NewRef("DoesNotExist", false, true)
	_, err := ref.Match(tokens, 0, ctx)
	require.Error(t, err)
	assert.IsType(t, &UnresolvedRefError{}, err)
}

func TestConditionalEmitsOnlyWhenFlagsMatch(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("")
	tokens := tokensFromRaws(tables, f, nil, nil)

	d := newFakeDialect()
	d.indent["indent_joins"] = true
	ctx := NewParseContext(d)

	cond := NewConditional(syntax.Indent, map[string]bool{"indent_joins": true})
	res, err := cond.Match(tokens, 0, ctx)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	require.Len(t, res.Inserts, 1)

	d2 := newFakeDialect()
	ctx2 := NewParseContext(d2)
	res2, err := cond.Match(tokens, 0, ctx2)
	require.NoError(t, err)
	assert.True(t, res2.Matched)
	assert.Empty(t, res2.Inserts)
}

func TestApplyWrapsSyntaxKindNode(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select")
	tokens := tokensFromRaws(tables, f, []string{"select"}, []syntax.Kind{syntax.NakedIdentifier})

	res := MatchResult{Start: 0, End: 1, Matched: true, Wrap: SyntaxKindWrap(syntax.SelectClauseElement)}
	segs := res.Apply(tables, tokens, "ansi")
	require.Len(t, segs, 1)
	assert.True(t, segs[0].IsNode())
	assert.Equal(t, syntax.SelectClauseElement, segs[0].Kind())
}
