package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlgrammar/internal/cliconfig"
	"github.com/leapstack-labs/sqlgrammar/pkg/fix"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/parser"
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/spf13/cobra"
)

// NewFixDemoCommand creates the "fix-demo" command: parses SQL and applies
// one illustrative rewrite — upper-casing every keyword — through the
// pkg/fix tree-rewrite engine, to exercise LintFix/Apply end to end.
func NewFixDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-demo [file]",
		Short: "Apply an illustrative keyword-casing fix",
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

			tables := segment.NewTables()
			f := tmplfile.NewUntemplated(src)
			toks, lerrs := lexer.Lex(tables, f, d.LexerTable())
			for _, e := range lerrs {
				logger.Warn("unlexable byte", "byte", e.Byte, "offset", e.TemplatedOffset)
			}
			root, perrs := parser.Parse(tables, toks, d)
			for _, e := range perrs {
				logger.Warn("parse error", "message", e.Message, "line", e.Line, "col", e.Col)
			}
			if root == nil {
				return fmt.Errorf("empty input")
			}

			fixes := upperKeywordFixes(tables, root)
			fixed, changed, conflicts := fix.Apply(tables, root, fixes)
			for _, c := range conflicts {
				logger.Warn("fix conflict", "anchor", c.AnchorID, "reason", c.Reason)
			}

			out := rawOf(fixed)
			if cfg.Output == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"changed": changed,
					"sql":     out,
				})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	return cmd
}

// upperKeywordFixes builds one Replace LintFix per keyword leaf whose raw
// text isn't already upper-case.
func upperKeywordFixes(tables *segment.Tables, root *segment.Segment) []fix.LintFix {
	var fixes []fix.LintFix
	for _, leaf := range root.GetRawSegments() {
		if leaf.Kind() != syntax.Keyword {
			continue
		}
		upper := strings.ToUpper(leaf.Raw())
		if upper == leaf.Raw() {
			continue
		}
		replacement := segment.NewToken(tables, syntax.Keyword, upper, nil)
		fixes = append(fixes, fix.NewReplace(leaf, []*segment.Segment{replacement}))
	}
	return fixes
}

func rawOf(s *segment.Segment) string {
	var b strings.Builder
	for _, leaf := range s.GetRawSegments() {
		b.WriteString(leaf.Raw())
	}
	return b.String()
}
