package postgres

import (
	"strings"

	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// patchLexer inserts PostgreSQL-only matchers into the cloned ANSI lexer
// table (spec §4.D: "Dialects patch the lexer by inserting matchers before
// a named matcher... Patching must... fail loudly if a named anchor does
// not exist").
func patchLexer(d *dialect.Dialect) {
	must(d.LexerTable().InsertBefore("colon", lexer.Matcher{
		Name:       "cast_operator",
		Kind:       syntax.CastOperator,
		Pattern:    lexer.Literal("::"),
		FirstBytes: []byte{':'},
	}))
	must(d.LexerTable().InsertBefore("single_quote_string", lexer.Matcher{
		Name:       "dollar_quoted_literal",
		Kind:       syntax.DollarQuotedLiteral,
		Pattern:    lexer.Native(scanDollarQuoted),
		FirstBytes: []byte{'$'},
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// scanDollarQuoted matches `$tag$...$tag$`, PostgreSQL's alternative string
// delimiter that needs no internal escaping. tag is any run of letters,
// digits and underscores (including the empty tag, `$$...$$`). Grounded on
// original_source/crates/lib-dialects' Postgres lexer dollar-quote handling
// (see DESIGN.md).
func scanDollarQuoted(c lexer.Cursor) (string, bool) {
	rest := c.Rest()
	if len(rest) == 0 || rest[0] != '$' {
		return "", false
	}
	tagEnd := 1
	for tagEnd < len(rest) && isTagByte(rest[tagEnd]) {
		tagEnd++
	}
	if tagEnd >= len(rest) || rest[tagEnd] != '$' {
		return "", false
	}
	opener := rest[:tagEnd+1]
	closeIdx := strings.Index(rest[len(opener):], opener)
	if closeIdx == -1 {
		return rest, true
	}
	return rest[:len(opener)+closeIdx+len(opener)], true
}

func isTagByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
