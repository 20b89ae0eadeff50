package commands

import (
	"encoding/json"
	"fmt"

	"github.com/leapstack-labs/sqlgrammar/internal/cliconfig"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/spf13/cobra"
)

// NewLexCommand creates the "lex" command: tokenise SQL and print the raw
// token stream.
func NewLexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Tokenise SQL and print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cliconfig.FromContext(cmd.Context())
			logger := newLogger(cfg.Verbose)

			d, err := resolveDialect(cfg.Dialect)
			if err != nil {
				return err
			}
			src, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			logger.Debug("lexing", "dialect", d.Name, "bytes", len(src))
			tables := segment.NewTables()
			f := tmplfile.NewUntemplated(src)
			toks, lerrs := lexer.Lex(tables, f, d.LexerTable())
			for _, e := range lerrs {
				logger.Warn("unlexable byte", "byte", e.Byte, "offset", e.TemplatedOffset)
			}

			if cfg.Output == "json" {
				return printTokensJSON(cmd, toks)
			}
			return printTokensText(cmd, toks)
		},
	}
	return cmd
}

type tokenView struct {
	Kind string `json:"kind"`
	Raw  string `json:"raw"`
}

func printTokensJSON(cmd *cobra.Command, toks []*segment.Segment) error {
	views := make([]tokenView, len(toks))
	for i, t := range toks {
		views[i] = tokenView{Kind: t.Kind().String(), Raw: t.Raw()}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func printTokensText(cmd *cobra.Command, toks []*segment.Segment) error {
	out := cmd.OutOrStdout()
	for _, t := range toks {
		if _, err := fmt.Fprintf(out, "%-24s %q\n", t.Kind().String(), t.Raw()); err != nil {
			return err
		}
	}
	return nil
}
