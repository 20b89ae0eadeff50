package duckdb

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

func parseSQL(t *testing.T, sql string) *segment.Segment {
	t.Helper()
	tables := segment.NewTables()
	f := tmplfile.NewUntemplated(sql)
	toks, lerrs := lexer.Lex(tables, f, New().LexerTable())
	require.Empty(t, lerrs)
	root, perrs := parser.Parse(tables, toks, New())
	require.Empty(t, perrs)
	return root
}

func TestStarReplaceClauseParses(t *testing.T) {
	// spec §8 scenario 5.
	root := parseSQL(t, "select * replace (c1 as c2) from t")
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.ReplaceClause))
	assert.False(t, set.Contains(syntax.Unparsable))
}

func TestStarExceptClauseParses(t *testing.T) {
	root := parseSQL(t, "select * except (a, b) from t")
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.ExceptClause))
	assert.False(t, set.Contains(syntax.Unparsable))
}

func TestPlainStarStillParsesWithoutQualifiers(t *testing.T) {
	root := parseSQL(t, "select * from t")
	set := root.DescendantTypeSet()
	assert.True(t, set.Contains(syntax.WildcardExpression))
	assert.False(t, set.Contains(syntax.ExceptClause))
	assert.False(t, set.Contains(syntax.ReplaceClause))
}
