package databricks

// BuildGrammar overlays Databricks-only grammar shapes onto the inherited
// ANSI library. Object references already accept a back-quoted identifier
// (ansi.objectReferencePart), but AliasExpressionSegment is ANSI-specific
// to naked/quoted identifiers, so column and table aliases need their own
// overlay to accept a backtick-quoted alias too.
import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/grammar"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

func kwOpt(word string) *grammar.Ref { return grammar.NewRef(word+"KeywordSegment", true, true) }
func litTok(k syntax.Kind) *grammar.TypedParser {
	return grammar.NewTypedParser(k, k, false)
}

func BuildGrammar(d *dialect.Dialect) {
	lib := d.Library()
	lib.Replace("AliasExpressionSegment", grammar.NewNode(syntax.AliasExpression, grammar.NewSequence(
		kwOpt("AS"),
		grammar.NewOneOf(litTok(syntax.NakedIdentifier), litTok(syntax.QuotedIdentifier), litTok(syntax.BackQuotedIdentifier)),
	)))
}
