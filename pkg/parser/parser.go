// Package parser implements the root file-parse driver of spec §4.H: given
// the full token list and a dialect, find the code-bearing span, invoke the
// dialect's root grammar over it, and wrap whatever the grammar leaves
// unconsumed so the tree stays loss-less even on a parse failure.
//
// Structurally this keeps the teacher's pkg/parser.Parse top-level
// orchestration order (find code bounds, invoke the root grammar, handle
// trailing tokens) even though the grammar invocation itself is now a
// dialect-library lookup and a combinator Match rather than a hand-written
// parseStatement loop (see DESIGN.md).
package parser

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
	"github.com/leapstack-labs/sqlgrammar/pkg/grammar"
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// Parse runs the dialect's root grammar over tokens and returns the File
// node it produces, plus any parse-error records accumulated along the
// way. It returns (nil, nil) for an empty token list (spec §6: "Returns
// None if the token list is empty").
func Parse(tables *segment.Tables, tokens []*segment.Segment, d *dialect.Dialect) (*segment.Segment, []*Error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	first, last := codeBounds(tokens)
	if first == -1 {
		return segment.NewNode(tables, syntax.File, append([]*segment.Segment{}, tokens...), d.Name, nil), nil
	}

	root, ok := d.Lookup(d.RootSegment)
	if !ok {
		return wrapUnparsable(tables, tokens, first, last, d.Name),
			[]*Error{{Line: 1, Col: 1, Message: (&RootGrammarError{Dialect: d.Name, Name: d.RootSegment}).Error()}}
	}

	ctx := grammar.NewParseContext(d)
	res, err := root.Match(tokens, first, ctx)
	if err != nil {
		return wrapUnparsable(tables, tokens, first, last, d.Name),
			[]*Error{{Line: 1, Col: 1, Message: err.Error()}}
	}
	if !res.Matched || res.End <= first {
		perr := errorAt(tokens, first, "could not match "+d.RootSegment)
		return wrapUnparsable(tables, tokens, first, last, d.Name), []*Error{perr}
	}

	children := append([]*segment.Segment{}, tokens[:first]...)
	children = append(children, res.Apply(tables, tokens, d.Name)...)

	nextCode := nextCodeIndex(tokens, res.End)
	if nextCode == -1 {
		children = append(children, tokens[res.End:]...)
		return segment.NewNode(tables, syntax.File, children, d.Name, nil), nil
	}

	children = append(children, tokens[res.End:nextCode]...)
	nested, nestedErrs := Parse(tables, tokens[nextCode:], d)
	if nested != nil {
		children = append(children, nested)
	}
	return segment.NewNode(tables, syntax.File, children, d.Name, nil), nestedErrs
}

// codeBounds returns the first and last indices in tokens that are code
// (spec §4.H step 1), or (-1, -1) if tokens has no code at all.
func codeBounds(tokens []*segment.Segment) (first, last int) {
	first, last = -1, -1
	for i, t := range tokens {
		if t.IsCode() {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	return first, last
}

// nextCodeIndex returns the first index at or after from that is code, or
// -1 if none remains.
func nextCodeIndex(tokens []*segment.Segment, from int) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i].IsCode() {
			return i
		}
	}
	return -1
}

// wrapUnparsable builds a File node whose code span [first, last] is a
// single Unparsable child, with the original leading/trailing non-code
// tokens preserved verbatim (spec §4.H step 3).
func wrapUnparsable(tables *segment.Tables, tokens []*segment.Segment, first, last int, dialectTag string) *segment.Segment {
	children := append([]*segment.Segment{}, tokens[:first]...)
	unparsable := segment.NewNode(tables, syntax.Unparsable, append([]*segment.Segment{}, tokens[first:last+1]...), dialectTag, nil)
	children = append(children, unparsable)
	children = append(children, tokens[last+1:]...)
	return segment.NewNode(tables, syntax.File, children, dialectTag, nil)
}

func errorAt(tokens []*segment.Segment, idx int, msg string) *Error {
	e := &Error{Line: 1, Col: 1, Message: msg}
	if idx < len(tokens) {
		e.Segment = tokens[idx]
		if p := tokens[idx].Position(); p != nil {
			e.Line, e.Col = p.WorkingLine, p.WorkingCol
		}
	}
	return e
}
