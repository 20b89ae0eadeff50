package postgres

import (
	"testing"

	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/parser"
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAndParse(t *testing.T, sql string) *segment.Segment {
	t.Helper()
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated(sql)
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)
	root, perrs := parser.Parse(tables, toks, New())
	require.Empty(t, perrs)
	return root
}

func TestCastOperatorLexesAsSingleToken(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("x::int")
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)

	var kinds []syntax.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind())
	}
	assert.Contains(t, kinds, syntax.CastOperator)
	for _, tok := range toks {
		if tok.Kind() == syntax.CastOperator {
			assert.Equal(t, "::", tok.Raw())
		}
	}
}

func TestColonAloneStillLexesAsColonOperator(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("x:1")
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)
	found := false
	for _, tok := range toks {
		if tok.Kind() == syntax.ColonOperator {
			found = true
		}
		assert.NotEqual(t, syntax.CastOperator, tok.Kind())
	}
	assert.True(t, found)
}

func TestShorthandCastParsesUsingDormantAnsiGrammar(t *testing.T) {
	root := lexAndParse(t, "select a::int from t")
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.ShorthandCastExpression))
	assert.False(t, set.Contains(syntax.Unparsable))
}

func TestDollarQuotedLiteralLexesAsSingleToken(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated(`$$a 'quote' b$$`)
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)
	require.Len(t, toks, 2) // literal + EOF
	assert.Equal(t, syntax.DollarQuotedLiteral, toks[0].Kind())
	assert.Equal(t, `$$a 'quote' b$$`, toks[0].Raw())
}

func TestDollarQuotedLiteralWithTag(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated(`$tag$hello$tag$`)
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, syntax.DollarQuotedLiteral, toks[0].Kind())
	assert.Equal(t, `$tag$hello$tag$`, toks[0].Raw())
}
