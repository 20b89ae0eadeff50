// Package snowflake overlays the ANSI base dialect with Snowflake's
// positional bind parameters (`$1`, `$2`, ...) alongside the inherited
// named `:param` form (spec §4.K), grounded on
// original_source/crates/lib-dialects/snowflake.rs (see SPEC_FULL.md's
// DOMAIN STACK supplement #6).
package snowflake

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/dialects/ansi"
)

// Snowflake is the registered Snowflake dialect.
var Snowflake *dialect.Dialect

func init() {
	Snowflake = New()
	dialect.Register(Snowflake)
}

// New builds a fresh Snowflake dialect extending ANSI.
func New() *dialect.Dialect {
	d := dialect.NewDialect("snowflake").Extends(ansi.New())
	patchLexer(d)
	BuildGrammar(d)

	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}
