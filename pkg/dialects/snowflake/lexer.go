package snowflake

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// patchLexer inserts a matcher for Snowflake's positional bind parameters
// ($1, $2, ...) ahead of the naked-identifier fallback.
func patchLexer(d *dialect.Dialect) {
	if err := d.LexerTable().InsertBefore("naked_identifier", lexer.Matcher{
		Name:       "positional_parameter",
		Kind:       syntax.PositionalParameter,
		Pattern:    lexer.MustRegex(`\$[0-9]+`),
		FirstBytes: []byte{'$'},
	}); err != nil {
		panic(err)
	}
}
