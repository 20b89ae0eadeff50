// Package duckdb overlays the ANSI base dialect with DuckDB's
// `SELECT * EXCEPT (...)`/`SELECT * REPLACE (...)` wildcard qualifiers
// (spec §4.K), grounded on original_source/crates/lib-dialects/duckdb.rs
// (see DESIGN.md's DOMAIN STACK supplement #6).
package duckdb

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/dialects/ansi"
)

// DuckDB is the registered DuckDB dialect.
var DuckDB *dialect.Dialect

func init() {
	DuckDB = New()
	dialect.Register(DuckDB)
}

// New builds a fresh DuckDB dialect extending ANSI.
func New() *dialect.Dialect {
	d := dialect.NewDialect("duckdb").Extends(ansi.New())
	BuildGrammar(d)

	if err := d.Expand(); err != nil {
		panic(err)
	}
	return d
}
