package ansi

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// ANSI is the root dialect every overlay (postgres, duckdb, snowflake,
// databricks) extends. It owns the base lexer table, keyword sets, bracket
// pairs and grammar library.
var ANSI *dialect.Dialect

func init() {
	ANSI = New()
	dialect.Register(ANSI)
}

// New builds a fresh ANSI dialect. Overlay dialects call this (or
// dialect.Get("ansi")) and then Extends(ANSI) rather than mutating the
// shared singleton in place.
func New() *dialect.Dialect {
	d := dialect.NewDialect("ansi").
		WithRootSegment("FileSegment").
		WithLexerTable(BuildLexerTable()).
		AddReservedKeywords(reservedKeywords...).
		AddUnreservedKeywords(unreservedKeywords...)

	d.SetBracketPair("round", syntax.StartBracket, syntax.EndBracket)
	d.SetBracketPair("square", syntax.StartSquareBracket, syntax.EndSquareBracket)
	d.SetBracketPair("curly", syntax.StartCurlyBracket, syntax.EndCurlyBracket)
	// Angle brackets (structural-type generics, e.g. ARRAY<INT>) reuse the
	// comparison-operator token kinds rather than minting dedicated lexer
	// tokens: the lexer never needs to disambiguate "<" as comparison vs.
	// bracket, since Bracketed only ever tries this pair from a grammar
	// context (DatatypeSegment) where a comparison can't appear.
	d.SetBracketPair("angle", syntax.LessThanOperator, syntax.GreaterThanOperator)

	BuildGrammar(d)

	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}
