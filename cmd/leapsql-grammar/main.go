// Command leapsql-grammar is a demonstration CLI over the dialect-
// parameterised SQL grammar engine (lexer, parser, fix engine).
package main

import (
	"os"

	"github.com/leapstack-labs/sqlgrammar/internal/cli"

	_ "github.com/leapstack-labs/sqlgrammar/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqlgrammar/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/sqlgrammar/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqlgrammar/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqlgrammar/pkg/dialects/snowflake"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
