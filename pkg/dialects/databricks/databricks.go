// Package databricks overlays the ANSI base dialect with backtick-quoted
// identifiers (`` `my col` ``), Databricks/Spark SQL's delimited-identifier
// convention (spec §4.K), grounded on
// original_source/crates/lib-dialects/databricks.rs (see SPEC_FULL.md's
// DOMAIN STACK supplement #6). The ANSI grammar already accepts a
// BackQuotedIdentifier wherever an object-reference part is expected; this
// overlay teaches the lexer to produce that token kind and replaces
// AliasExpressionSegment so an alias may be backtick-quoted too.
package databricks

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/dialects/ansi"
)

// Databricks is the registered Databricks (Spark SQL) dialect.
var Databricks *dialect.Dialect

func init() {
	Databricks = New()
	dialect.Register(Databricks)
}

// New builds a fresh Databricks dialect extending ANSI.
func New() *dialect.Dialect {
	d := dialect.NewDialect("databricks").Extends(ansi.New())
	patchLexer(d)
	BuildGrammar(d)

	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}
