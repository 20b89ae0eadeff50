// Package ansi assembles the base dialect: the root lexer matcher table,
// reserved/unreserved keyword sets, bracket-pair registrations and the
// grammar library every overlay dialect (postgres, duckdb, snowflake,
// databricks) extends.
//
// Symbol disambiguation order below (multi-char operators tried ahead of
// their single-char prefixes) and the doubled-quote string/identifier
// escaping convention are kept from the teacher's pkg/parser/lexer.go
// NextToken switch almost unchanged — only the output shape differs
// (segment.Segment tokens via a declarative Matcher table, rather than a
// hand-advanced cursor building parser.Token values); see DESIGN.md.
package ansi

import (
	"regexp"

	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// BuildLexerTable returns the ANSI lexer matcher table. Overlay dialects
// clone it (via Dialect.Extends) and patch individual matchers in place
// with Table.InsertBefore/Replace.
func BuildLexerTable() *lexer.Table {
	return lexer.NewTable([]lexer.Matcher{
		{
			Name:       "code_placeholder",
			Kind:       syntax.CodePlaceholder,
			Pattern:    lexer.Native(scanMacro),
			FirstBytes: []byte{'{'},
		},
		{
			Name:       "whitespace",
			Kind:       syntax.Whitespace,
			Pattern:    lexer.MustRegex(`[ \t]+`),
			FirstBytes: []byte{' ', '\t'},
		},
		{
			Name:       "newline",
			Kind:       syntax.Newline,
			Pattern:    lexer.MustRegex(`\r\n|\r|\n`),
			FirstBytes: []byte{'\r', '\n'},
		},
		{
			Name:       "inline_comment",
			Kind:       syntax.InlineComment,
			Pattern:    lexer.MustRegex(`--[^\r\n]*`),
			FirstBytes: []byte{'-'},
		},
		{
			Name:       "block_comment",
			Kind:       syntax.BlockComment,
			Pattern:    lexer.Native(scanBlockComment),
			FirstBytes: []byte{'/'},
		},
		{
			Name:       "single_quote_string",
			Kind:       syntax.QuotedLiteral,
			Pattern:    lexer.Native(scanSingleQuoted('\'')),
			FirstBytes: []byte{'\''},
		},
		{
			Name:       "double_quote_identifier",
			Kind:       syntax.QuotedIdentifier,
			Pattern:    lexer.Native(scanSingleQuoted('"')),
			FirstBytes: []byte{'"'},
		},
		{
			Name:       "numeric_literal",
			Kind:       syntax.NumericLiteral,
			Pattern:    lexer.MustRegex(`[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?|\.[0-9]+`),
			FirstBytes: []byte("0123456789."),
		},
		{
			Name:       "arrow_operator",
			Kind:       syntax.ArrowOperator,
			Pattern:    lexer.Literal("->"),
			FirstBytes: []byte{'-'},
		},
		{Name: "minus", Kind: syntax.Minus, Pattern: lexer.Literal("-"), FirstBytes: []byte{'-'}},
		{
			Name:       "not_equal_ne",
			Kind:       syntax.NotEqualToOperator,
			Pattern:    lexer.Literal("!="),
			FirstBytes: []byte{'!'},
		},
		{
			Name:       "less_than_or_equal",
			Kind:       syntax.LessThanOrEqualToOperator,
			Pattern:    lexer.Literal("<="),
			FirstBytes: []byte{'<'},
		},
		{
			Name:       "not_equal_diamond",
			Kind:       syntax.NotEqualToOperator,
			Pattern:    lexer.Literal("<>"),
			FirstBytes: []byte{'<'},
		},
		{
			Name:       "less_than",
			Kind:       syntax.LessThanOperator,
			Pattern:    lexer.Literal("<"),
			FirstBytes: []byte{'<'},
		},
		{
			Name:       "greater_than_or_equal",
			Kind:       syntax.GreaterThanOrEqualToOperator,
			Pattern:    lexer.Literal(">="),
			FirstBytes: []byte{'>'},
		},
		{
			Name:       "greater_than",
			Kind:       syntax.GreaterThanOperator,
			Pattern:    lexer.Literal(">"),
			FirstBytes: []byte{'>'},
		},
		{
			Name:       "concat",
			Kind:       syntax.Concat,
			Pattern:    lexer.Literal("||"),
			FirstBytes: []byte{'|'},
		},
		{Name: "equals", Kind: syntax.EqualsOperator, Pattern: lexer.Literal("="), FirstBytes: []byte{'='}},
		{Name: "plus", Kind: syntax.Plus, Pattern: lexer.Literal("+"), FirstBytes: []byte{'+'}},
		{Name: "star", Kind: syntax.Star, Pattern: lexer.Literal("*"), FirstBytes: []byte{'*'}},
		{Name: "divide", Kind: syntax.Divide, Pattern: lexer.Literal("/"), FirstBytes: []byte{'/'}},
		{Name: "modulo", Kind: syntax.Modulo, Pattern: lexer.Literal("%"), FirstBytes: []byte{'%'}},
		{Name: "colon", Kind: syntax.ColonOperator, Pattern: lexer.Literal(":"), FirstBytes: []byte{':'}},
		{Name: "comma", Kind: syntax.Comma, Pattern: lexer.Literal(","), FirstBytes: []byte{','}},
		{Name: "dot", Kind: syntax.Dot, Pattern: lexer.Literal("."), FirstBytes: []byte{'.'}},
		{Name: "semicolon", Kind: syntax.Semicolon, Pattern: lexer.Literal(";"), FirstBytes: []byte{';'}},
		{Name: "start_bracket", Kind: syntax.StartBracket, Pattern: lexer.Literal("("), FirstBytes: []byte{'('}},
		{Name: "end_bracket", Kind: syntax.EndBracket, Pattern: lexer.Literal(")"), FirstBytes: []byte{')'}},
		{
			Name:       "start_square_bracket",
			Kind:       syntax.StartSquareBracket,
			Pattern:    lexer.Literal("["),
			FirstBytes: []byte{'['},
		},
		{
			Name:       "end_square_bracket",
			Kind:       syntax.EndSquareBracket,
			Pattern:    lexer.Literal("]"),
			FirstBytes: []byte{']'},
		},
		{
			Name:       "start_curly_bracket",
			Kind:       syntax.StartCurlyBracket,
			Pattern:    lexer.Literal("{"),
			FirstBytes: []byte{'{'},
		},
		{
			Name:       "end_curly_bracket",
			Kind:       syntax.EndCurlyBracket,
			Pattern:    lexer.Literal("}"),
			FirstBytes: []byte{'}'},
		},
		{
			Name:       "naked_identifier",
			Kind:       syntax.NakedIdentifier,
			Pattern:    lexer.MustRegex(`[A-Za-z_][A-Za-z0-9_$]*`),
			FirstBytes: identifierFirstBytes(),
		},
	})
}

var blockCommentEnd = regexp.MustCompile(`\*/`)

func scanBlockComment(c lexer.Cursor) (string, bool) {
	rest := c.Rest()
	if len(rest) < 2 || rest[:2] != "/*" {
		return "", false
	}
	loc := blockCommentEnd.FindStringIndex(rest[2:])
	if loc == nil {
		return rest, true
	}
	return rest[:2+loc[1]], true
}

// scanSingleQuoted matches a quote-delimited literal using the doubled-quote
// escape convention (`''` inside a `'...'` string is a literal quote), kept
// from the teacher's readString/readQuotedIdentifier pair.
func scanSingleQuoted(q byte) func(lexer.Cursor) (string, bool) {
	return func(c lexer.Cursor) (string, bool) {
		rest := c.Rest()
		if len(rest) == 0 || rest[0] != q {
			return "", false
		}
		i := 1
		for i < len(rest) {
			if rest[i] == q {
				if i+1 < len(rest) && rest[i+1] == q {
					i += 2
					continue
				}
				return rest[:i+1], true
			}
			i++
		}
		return rest, true
	}
}

// scanMacro matches a `{{ ... }}` templated placeholder, tracking quote
// state so a literal `}}` inside a quoted macro argument doesn't end the
// span early — kept from the teacher's readMacro/skipQuotedInMacro almost
// unchanged (see DESIGN.md).
func scanMacro(c lexer.Cursor) (string, bool) {
	rest := c.Rest()
	if len(rest) < 2 || rest[:2] != "{{" {
		return "", false
	}
	i := 2
	var inQuote byte
	for i < len(rest) {
		ch := rest[i]
		if inQuote != 0 {
			if ch == inQuote {
				inQuote = 0
			}
			i++
			continue
		}
		switch ch {
		case '\'', '"':
			inQuote = ch
			i++
		case '}':
			if i+1 < len(rest) && rest[i+1] == '}' {
				return rest[:i+2], true
			}
			i++
		default:
			i++
		}
	}
	return rest, true
}

func identifierFirstBytes() []byte {
	var out []byte
	for b := byte('A'); b <= 'Z'; b++ {
		out = append(out, b)
	}
	for b := byte('a'); b <= 'z'; b++ {
		out = append(out, b)
	}
	out = append(out, '_')
	return out
}
