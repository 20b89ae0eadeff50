package lexer

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
)

// Error records one unlexable byte (spec §7: "LexError — unlexable byte,
// recorded with the offending span").
type Error struct {
	TemplatedOffset int
	Byte            byte
}

// Lex tokenises f's text (its templated form if templated, else its source)
// using table, in declaration order, first match wins with longest prefix
// (spec §4.D). Unrecognised bytes are emitted as single-byte Unlexable
// tokens and also recorded as Errors. An EndOfFile zero-width token is
// always appended.
func Lex(tables *segment.Tables, f *tmplfile.TemplatedFile, table *Table) ([]*segment.Segment, []Error) {
	text := f.Str()
	var out []*segment.Segment
	var errs []Error

	line, col := 1, 1
	pos := 0
	for pos < len(text) {
		m, raw, ok := tryMatchers(table, text, pos)
		if !ok {
			errs = append(errs, Error{TemplatedOffset: pos, Byte: text[pos]})
			tok, nl, nc := emitToken(tables, f, syntax.Unlexable, text[pos:pos+1], pos, line, col)
			out = append(out, tok)
			line, col = nl, nc
			pos++
			continue
		}
		pieces := subdivide(m, raw)
		for _, piece := range pieces {
			tok, nl, nc := emitToken(tables, f, piece.kind, piece.raw, pos, line, col)
			out = append(out, tok)
			line, col = nl, nc
			pos += len(piece.raw)
		}
	}

	eof, _, _ := emitToken(tables, f, syntax.EndOfFile, "", pos, line, col)
	out = append(out, eof)
	return out, errs
}

func tryMatchers(table *Table, text string, pos int) (Matcher, string, bool) {
	c := Cursor{Text: text, Pos: pos}
	for _, idx := range table.candidates(text[pos]) {
		m := table.matchers[idx]
		if raw, ok := m.Pattern.TryMatch(c); ok && raw != "" {
			return m, raw, true
		}
	}
	return Matcher{}, "", false
}

type piece struct {
	kind syntax.Kind
	raw  string
}

// subdivide applies a matcher's Subdivider and PostSubdivide passes to its
// matched span (spec §4.D).
func subdivide(m Matcher, raw string) []piece {
	if m.Subdivider == nil {
		return postSubdivide(m, raw)
	}

	var out []piece
	rest := raw
	for {
		c := Cursor{Text: rest, Pos: 0}
		loc, matched := findFirst(m.Subdivider.Pattern, c)
		if !matched {
			out = append(out, postSubdivide(m, rest)...)
			return out
		}
		if loc > 0 {
			out = append(out, postSubdivide(m, rest[:loc])...)
		}
		sep := subdividerMatchAt(m.Subdivider.Pattern, rest, loc)
		out = append(out, piece{kind: m.Subdivider.Kind, raw: sep})
		rest = rest[loc+len(sep):]
		if rest == "" {
			return out
		}
	}
}

// postSubdivide trims trailing content matching m.PostSubdivide.Pattern off
// raw and re-emits it as a separate token, if configured.
func postSubdivide(m Matcher, raw string) []piece {
	if m.PostSubdivide == nil || raw == "" {
		return []piece{{kind: m.Kind, raw: raw}}
	}
	// Find the longest trailing suffix matching the post-subdivide pattern
	// by scanning candidate start offsets from the front, so the first
	// offset whose match runs to the end gives the longest suffix; the
	// pattern is expected to be small (e.g. trailing whitespace), so this
	// is cheap in practice.
	for start := 0; start < len(raw); start++ {
		c := Cursor{Text: raw, Pos: start}
		if tail, ok := m.PostSubdivide.Pattern.TryMatch(c); ok && start+len(tail) == len(raw) {
			var out []piece
			if start > 0 {
				out = append(out, piece{kind: m.Kind, raw: raw[:start]})
			}
			out = append(out, piece{kind: m.PostSubdivide.Kind, raw: tail})
			return out
		}
	}
	return []piece{{kind: m.Kind, raw: raw}}
}

// findFirst scans forward through c.Text from c.Pos looking for the first
// offset at which pattern matches, returning that offset.
func findFirst(pattern Pattern, c Cursor) (int, bool) {
	for i := c.Pos; i < len(c.Text); i++ {
		cur := Cursor{Text: c.Text, Pos: i}
		if _, ok := pattern.TryMatch(cur); ok {
			return i, true
		}
	}
	return 0, false
}

func subdividerMatchAt(pattern Pattern, text string, at int) string {
	cur := Cursor{Text: text, Pos: at}
	raw, _ := pattern.TryMatch(cur)
	return raw
}

// emitToken builds a segment.Segment token at templated offset pos with the
// given working line/col, and returns the advanced working position.
func emitToken(tables *segment.Tables, f *tmplfile.TemplatedFile, kind syntax.Kind, raw string, pos, line, col int) (*segment.Segment, int, int) {
	tRange := tmplfile.Range{Start: pos, End: pos + len(raw)}
	sRange, ok := f.TemplatedToSourceRange(tRange)
	if !ok {
		// Non-literal (templated) span: no stable source counterpart. Fall
		// back to a point at the start of the templated offset so working
		// position still advances monotonically; rule tooling must treat
		// IsTemplated() segments' source columns as advisory only.
		sRange = tmplfile.Range{Start: pos, End: pos}
	}
	marker := &tmplfile.Marker{
		SourceRange:    sRange,
		TemplatedRange: tRange,
		File:           f,
		WorkingLine:    line,
		WorkingCol:     col,
	}
	tok := segment.NewToken(tables, kind, raw, marker)
	nl, nc := tmplfile.InferNextPosition(raw, line, col)
	return tok, nl, nc
}
