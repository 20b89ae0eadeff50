// Package cli provides the command-line interface for the grammar engine
// demonstration binary, cmd/leapsql-grammar.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlgrammar/internal/cli/commands"
	"github.com/leapstack-labs/sqlgrammar/internal/cliconfig"
	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leapsql-grammar",
		Short: "Dialect-parameterised SQL lexer, parser and fix engine",
		Long: `leapsql-grammar is a demonstration CLI over the dialect-parameterised
grammar engine: lex SQL into a lossless token stream, parse it into a
syntax tree, and apply a small set of illustrative tree-rewrite fixes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := cliconfig.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(cliconfig.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none)")
	rootCmd.PersistentFlags().String("dialect", "", "SQL dialect (ansi|postgres|duckdb|snowflake|databricks)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose diagnostics")

	rootCmd.AddCommand(commands.NewLexCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewFixDemoCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
