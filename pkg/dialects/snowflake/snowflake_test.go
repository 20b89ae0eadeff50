package snowflake

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

func TestPositionalParameterLexesAsSingleToken(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("$1")
	toks, errs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, errs)
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, syntax.PositionalParameter, toks[0].Kind())
	assert.Equal(t, "$1", toks[0].Raw())
}

func TestPositionalParameterParsesAsParameter(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select $1 from t")
	toks, lerrs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, lerrs)
	root, perrs := parser.Parse(tables, toks, New())
	require.Empty(t, perrs)
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.Parameter))
	assert.False(t, set.Contains(syntax.Unparsable))
}

func TestNamedColonParameterStillParses(t *testing.T) {
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated("select :name from t")
	toks, lerrs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, lerrs)
	root, perrs := parser.Parse(tables, toks, New())
	require.Empty(t, perrs)
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.Parameter))
	assert.False(t, set.Contains(syntax.Unparsable))
}
