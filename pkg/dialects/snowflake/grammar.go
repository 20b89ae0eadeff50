package snowflake

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/grammar"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

func litTok(k syntax.Kind) *grammar.TypedParser {
	return grammar.NewTypedParser(k, k, false)
}

// BuildGrammar overlays Snowflake's positional bind parameter onto the
// inherited `ParameterSegment` (spec §4.K), keeping the ANSI `:name` form
// as an alternative rather than replacing it outright.
func BuildGrammar(d *dialect.Dialect) {
	lib := d.Library()

	ansiParam, ok := d.Lookup("ParameterSegment")
	if !ok {
		panic("snowflake: ANSI ParameterSegment not registered")
	}
	lib.Replace("ParameterSegment", grammar.NewOneOf(
		ansiParam,
		grammar.NewNode(syntax.Parameter, litTok(syntax.PositionalParameter)),
	))
}
