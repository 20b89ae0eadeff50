package databricks

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

func TestBackQuotedIdentifierLexesWithDoubledEscape(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("`my``col`")
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, syntax.BackQuotedIdentifier, toks[0].Kind())
	assert.Equal(t, "`my``col`", toks[0].Raw())
}

func TestBackQuotedObjectReferenceParses(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select `col 1` from `my table`")
	toks, lerrs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, lerrs)
	root, perrs := parser.Parse(tables, toks, New())
	require.Empty(t, perrs)
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.ObjectReference))
	assert.False(t, set.Contains(syntax.Unparsable))
}

func TestBackQuotedAliasParses(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select a as `my alias` from t")
	toks, lerrs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, lerrs)
	root, perrs := parser.Parse(tables, toks, New())
	require.Empty(t, perrs)
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.AliasExpression))
	assert.False(t, set.Contains(syntax.Unparsable))
}
