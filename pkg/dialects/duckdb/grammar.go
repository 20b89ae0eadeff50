package duckdb

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/grammar"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

func kw(word string) *grammar.Ref     { return grammar.NewRef(word+"KeywordSegment", false, true) }
func ref(name string) *grammar.Ref    { return grammar.NewRef(name, false, true) }
func refOpt(name string) *grammar.Ref { return grammar.NewRef(name, true, true) }
func litTok(k syntax.Kind) *grammar.TypedParser {
	return grammar.NewTypedParser(k, k, false)
}

var commaTok = grammar.NewTypedParser(syntax.Comma, syntax.Comma, false)
var dotTok = grammar.NewTypedParser(syntax.Dot, syntax.Dot, false)

// BuildGrammar overlays DuckDB's wildcard qualifiers onto the inherited
// ANSI library (spec §4.K). `SELECT * EXCEPT (a, b)` drops named columns
// from the star expansion; `SELECT * REPLACE (expr AS c)` substitutes a
// computed expression for a named column, both evaluated after the star
// (DuckDB docs, star-and-exclude semantics).
func BuildGrammar(d *dialect.Dialect) {
	lib := d.Library()

	lib.Extend("ExceptClauseSegment", grammar.NewNode(syntax.ExceptClause, grammar.NewSequence(
		kw("EXCEPT"),
		grammar.NewBracketed(grammar.NewDelimited(ref("ColumnReferenceSegment"), commaTok), "round", false),
	)))

	replaceElement := grammar.NewSequence(ref("ExpressionSegment"), kw("AS"), litTok(syntax.NakedIdentifier))
	lib.Extend("ReplaceClauseSegment", grammar.NewNode(syntax.ReplaceClause, grammar.NewSequence(
		kw("REPLACE"),
		grammar.NewBracketed(grammar.NewDelimited(replaceElement, commaTok), "round", false),
	)))

	wildcardIdentifier := grammar.NewNode(syntax.WildcardIdentifier, litTok(syntax.Star))
	qualifiers := grammar.NewSequence(refOpt("ExceptClauseSegment"), refOpt("ReplaceClauseSegment"))
	lib.Replace("WildcardExpressionSegment", grammar.NewNode(syntax.WildcardExpression, grammar.NewSequence(
		grammar.NewOneOf(
			grammar.NewSequence(ref("ObjectReferenceSegment"), dotTok, wildcardIdentifier),
			wildcardIdentifier,
		),
		qualifiers,
	)))
}
