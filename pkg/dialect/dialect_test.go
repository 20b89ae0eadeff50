package dialect

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlgrammar/pkg/grammar"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendsClonesParentWithoutAliasing(t *testing.T) {
	base := NewDialect("ansi").
		WithLexerTable(lexer.NewTable([]lexer.Matcher{{Name: "word", Kind: syntax.NakedIdentifier}})).
		AddReservedKeywords("SELECT", "FROM", "WHERE").
		SetBracketPair("round", syntax.StartBracket, syntax.EndBracket)
	base.Library().Extend("SelectClauseSegment", grammar.NewStringParser("select", syntax.Keyword, false))

	child := NewDialect("postgres").Extends(base)
	child.AddReservedKeywords("ILIKE")
	child.Library().Extend("SelectClauseSegment", grammar.NewStringParser("select", syntax.Keyword, false))

	assert.True(t, base.IsKeyword("select"))
	assert.False(t, base.IsKeyword("ilike"), "mutating the child must not leak into the parent")

	_, ok := base.Library().get("CastOperatorSegment")
	assert.False(t, ok)
}

func TestLookupResolvesKeywordReferenceLazily(t *testing.T) {
	d := NewDialect("ansi").AddReservedKeywords("SELECT")

	m, ok := d.Lookup("SelectKeywordSegment")
	require.True(t, ok)

	res, err := m.Match(tokensFromRaws(t, "SELECT"), 0, grammar.NewParseContext(d))
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, 1, res.End)
}

// tokensFromRaws lays raws out back to back as NakedIdentifier tokens of one
// untemplated file.
func tokensFromRaws(t *testing.T, raws ...string) []*segment.Segment {
	t.Helper()
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated(strings.Join(raws, ""))
	var out []*segment.Segment
	pos := 0
	for _, r := range raws {
		rng := tmplfile.Range{Start: pos, End: pos + len(r)}
		out = append(out, segment.NewToken(tables, syntax.NakedIdentifier, r, &tmplfile.Marker{SourceRange: rng, TemplatedRange: rng, File: f, WorkingLine: 1, WorkingCol: pos + 1}))
		pos += len(r)
	}
	return out
}

func TestLookupUnknownNameFails(t *testing.T) {
	d := NewDialect("ansi")
	_, ok := d.Lookup("NoSuchSegment")
	assert.False(t, ok)
}

func TestExpandMaterialisesEveryKeyword(t *testing.T) {
	d := NewDialect("ansi").AddReservedKeywords("SELECT", "FROM").AddUnreservedKeywords("LIMIT")
	require.NoError(t, d.Expand())

	for _, name := range []string{"SELECTKeywordSegment", "FROMKeywordSegment", "LIMITKeywordSegment"} {
		_, ok := d.Library().get(name)
		assert.True(t, ok, "%s should be pre-materialised", name)
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	d := NewDialect("ansi").AddReservedKeywords("SELECT")
	require.NoError(t, d.Expand())
	require.NoError(t, d.Expand())
}

func TestLibraryReplaceIsWholeEntry(t *testing.T) {
	lib := newLibrary()
	lib.Extend("LimitClauseSegment", grammar.NewStringParser("limit", syntax.Keyword, false))
	lib.Replace("LimitClauseSegment", grammar.NewStringParser("top", syntax.Keyword, false))

	m, ok := lib.get("LimitClauseSegment")
	require.True(t, ok)
	sp, ok := m.(*grammar.StringParser)
	require.True(t, ok)
	assert.Equal(t, "top", sp.Template)
}

func TestLibraryExpandResolvesGenerators(t *testing.T) {
	d := NewDialect("ansi")
	d.Library().ExtendGenerator("FileSegment", func(d *Dialect) grammar.Matchable {
		return grammar.NewStringParser(d.Name, syntax.Keyword, false)
	})
	require.NoError(t, d.Expand())

	m, ok := d.Library().get("FileSegment")
	require.True(t, ok)
	sp := m.(*grammar.StringParser)
	assert.Equal(t, "ansi", sp.Template)
}

func TestLibraryCopyOverlaysAlternationInOnePass(t *testing.T) {
	lib := newLibrary()
	str := grammar.NewStringParser
	a := str("a", syntax.Keyword, false)
	b := str("b", syntax.Keyword, false)
	c := str("c", syntax.Keyword, false)
	lib.Extend("StatementSegment", grammar.NewOneOf(a, b))

	overlay, err := lib.Copy("StatementSegment")
	require.NoError(t, err)
	overlay.InsertBefore(0, c).Remove(b)
	overlay.Build("StatementSegment")

	m, _ := lib.get("StatementSegment")
	built := m.(*grammar.OneOf)
	require.Len(t, built.Elements, 2)
	assert.Same(t, c, built.Elements[0])
	assert.Same(t, a, built.Elements[1])
}

func TestLibraryCopyRejectsNonAlternation(t *testing.T) {
	lib := newLibrary()
	lib.Extend("WhitespaceSegment", grammar.NewStringParser("x", syntax.Keyword, false))
	_, err := lib.Copy("WhitespaceSegment")
	assert.Error(t, err)
}

func TestLibraryCopyRejectsUnknownName(t *testing.T) {
	lib := newLibrary()
	_, err := lib.Copy("Nope")
	assert.Error(t, err)
}

func TestRegistryGetRegisterListAreCaseInsensitive(t *testing.T) {
	d := NewDialect("TestOnlyDialect_" + t.Name())
	Register(d)

	got, ok := Get(d.Name)
	require.True(t, ok)
	assert.Same(t, d, got)

	names := List()
	found := false
	for _, n := range names {
		if n == stringsToLower(d.Name) {
			found = true
		}
	}
	assert.True(t, found)
}

func stringsToLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
