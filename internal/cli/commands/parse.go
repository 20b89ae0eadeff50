package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlgrammar/internal/cliconfig"
	"github.com/leapstack-labs/sqlgrammar/pkg/lexer"
	"github.com/leapstack-labs/sqlgrammar/pkg/parser"
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the "parse" command: lex and parse SQL, printing
// the resulting tree either as an indented table or as JSON.
func NewParseCommand() *cobra.Command {
	var codeOnly bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse SQL into a syntax tree",
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

			if cfg.Output == "json" {
				return printTreeJSON(cmd, root, codeOnly)
			}
			return printTreeTable(cmd.OutOrStdout(), root, codeOnly)
		},
	}
	cmd.Flags().BoolVar(&codeOnly, "code-only", false, "omit whitespace and comment leaves")
	return cmd
}

func printTreeJSON(cmd *cobra.Command, root *segment.Segment, codeOnly bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(root.ToSerialised(codeOnly, true).JSONValue())
}

// printTreeTable renders the tree as an indented two-column table (kind,
// raw), mirroring the teacher's go-pretty-rendered CLI tables.
func printTreeTable(w io.Writer, root *segment.Segment, codeOnly bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"kind", "raw"})
	appendRows(t, root, 0, codeOnly)
	t.Render()
	return nil
}

func appendRows(t table.Writer, s *segment.Segment, depth int, codeOnly bool) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if s.IsNode() {
		t.AppendRow(table.Row{indent + s.Kind().String(), ""})
		for _, c := range s.Children() {
			if codeOnly && !c.IsCode() {
				continue
			}
			appendRows(t, c, depth+1, codeOnly)
		}
		return
	}
	t.AppendRow(table.Row{indent + s.Kind().String(), s.Raw()})
}
