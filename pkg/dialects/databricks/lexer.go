package databricks

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// patchLexer inserts the backtick-quoted identifier matcher ahead of the
// naked-identifier fallback. A doubled backtick inside the quotes escapes
// a literal backtick, mirroring the ANSI double-quote-identifier scanner's
// doubling convention.
func patchLexer(d *dialect.Dialect) {
	if err := d.LexerTable().InsertBefore("naked_identifier", lexer.Matcher{
		Name:       "back_quote_identifier",
		Kind:       syntax.BackQuotedIdentifier,
		Pattern:    lexer.Native(scanBackQuoted),
		FirstBytes: []byte{'`'},
	}); err != nil {
		panic(err)
	}
}

func scanBackQuoted(c lexer.Cursor) (string, bool) {
	rest := c.Rest()
	if len(rest) == 0 || rest[0] != '`' {
		return "", false
	}
	i := 1
	for i < len(rest) {
		if rest[i] == '`' {
			if i+1 < len(rest) && rest[i+1] == '`' {
				i += 2
				continue
			}
			return rest[:i+1], true
		}
		i++
	}
	return rest, true
}
