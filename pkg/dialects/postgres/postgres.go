// Package postgres overlays the ANSI base dialect with PostgreSQL's `::`
// cast shorthand and `$tag$...$tag$` dollar-quoted string literals (spec
// §4.K: "Derived dialects override... lexer matchers"), grounded on
// original_source/crates/lib-dialects' PostgreSQL lexer/keyword tables (see
// DESIGN.md's DOMAIN STACK supplement #6).
package postgres

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/dialects/ansi"
)

// Postgres is the registered PostgreSQL dialect.
var Postgres *dialect.Dialect

func init() {
	Postgres = New()
	dialect.Register(Postgres)
}

// New builds a fresh PostgreSQL dialect extending ANSI.
func New() *dialect.Dialect {
	d := dialect.NewDialect("postgres").Extends(ansi.New())
	d.AddUnreservedKeywords(unreservedKeywords...)

	patchLexer(d)

	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}
