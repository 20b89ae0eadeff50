package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
)

// Error is a parse-error record (spec §4.H, §7: "a parse-error record
// carrying the offending segment and a human-readable description"). The
// driver never aborts on one; it accumulates them alongside a best-effort
// tree with Unparsable regions covering the offending spans.
type Error struct {
	Segment *segment.Segment
	Line    int
	Col     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Message)
}

// RootGrammarError reports that a dialect's RootSegment name isn't
// registered in its grammar library — a programmer/configuration error
// (spec §7: "DialectBuildError... surfaced as panics during dialect
// construction"), raised here instead since it is only detectable once a
// parse is attempted against the dialect.
type RootGrammarError struct {
	Dialect string
	Name    string
}

func (e *RootGrammarError) Error() string {
	return fmt.Sprintf("parser: dialect %q has no root segment %q registered", e.Dialect, e.Name)
}
