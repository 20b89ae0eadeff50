package lexer

import (
	"testing"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleTable() *Table {
	return NewTable([]Matcher{
		{Name: "whitespace", Kind: syntax.Whitespace, Pattern: MustRegex(`[ \t]+`), FirstBytes: []byte{' ', '\t'}},
		{Name: "newline", Kind: syntax.Newline, Pattern: MustRegex(`\r?\n`), FirstBytes: []byte{'\n', '\r'}},
		{Name: "word", Kind: syntax.NakedIdentifier, Pattern: MustRegex(`[A-Za-z_][A-Za-z0-9_]*`)},
	})
}

func TestLexSimpleSplit(t *testing.T) {
	// spec §8 scenario 4: Lex "a b" (ANSI) -> raws ["a", " ", "b", ""].
	f := tmplfile.NewUntemplated("a b")
	toks, errs := Lex(segment.NewTables(), f, simpleTable())
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, "a", toks[0].Raw())
	assert.Equal(t, " ", toks[1].Raw())
	assert.Equal(t, "b", toks[2].Raw())
	assert.Equal(t, "", toks[3].Raw())
	assert.Equal(t, syntax.EndOfFile, toks[3].Kind())
}

func TestLexUnlexableByte(t *testing.T) {
	f := tmplfile.NewUntemplated("a#b")
	toks, errs := Lex(segment.NewTables(), f, simpleTable())
	require.Len(t, errs, 1)
	assert.Equal(t, byte('#'), errs[0].Byte)

	var kinds []syntax.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind())
	}
	assert.Contains(t, kinds, syntax.Unlexable)
}

func TestLexLosslessConcat(t *testing.T) {
	input := "select  1\tfrom dual"
	table := NewTable([]Matcher{
		{Name: "whitespace", Kind: syntax.Whitespace, Pattern: MustRegex(`[ \t]+`), FirstBytes: []byte{' ', '\t'}},
		{Name: "word", Kind: syntax.NakedIdentifier, Pattern: MustRegex(`[A-Za-z_][A-Za-z0-9_]*`)},
		{Name: "number", Kind: syntax.NumericLiteral, Pattern: MustRegex(`[0-9]+`), FirstBytes: []byte("0123456789")},
	})
	f := tmplfile.NewUntemplated(input)
	toks, errs := Lex(segment.NewTables(), f, table)
	require.Empty(t, errs)

	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Raw()
	}
	assert.Equal(t, input, rebuilt)
}

func TestTableInsertBeforeMissingAnchor(t *testing.T) {
	table := simpleTable()
	err := table.InsertBefore("does-not-exist", Matcher{Name: "x", Kind: syntax.Keyword, Pattern: Literal("x")})
	require.Error(t, err)
}

func TestTableReplacePreservesPosition(t *testing.T) {
	table := simpleTable()
	err := table.Replace("word", Matcher{Name: "word", Kind: syntax.Keyword, Pattern: MustRegex(`[A-Za-z_][A-Za-z0-9_]*`)})
	require.NoError(t, err)
	found := false
	for i, m := range table.Matchers() {
		if m.Name == "word" {
			found = true
			assert.Equal(t, 2, i)
			assert.Equal(t, syntax.Keyword, m.Kind)
		}
	}
	assert.True(t, found)
}
