package segment

import (
	"strings"

	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"golang.org/x/text/unicode/norm"
)

// ObjectReferencePart is one dot-separated component of an object reference
// (e.g. `schema.table.column` yields three parts), grounded on
// object_reference.rs's ObjectReferencePart.
type ObjectReferencePart struct {
	// Part is the component's text, unquoted and Unicode-normalised (NFC)
	// so that differently-composed or differently-quoted spellings of the
	// same identifier compare equal.
	Part string
	// Segments are the leaf segments (identifier tokens) making up Part.
	Segments []*Segment
}

var identifierKinds = syntax.NewSet(
	syntax.NakedIdentifier,
	syntax.QuotedIdentifier,
	syntax.BackQuotedIdentifier,
	syntax.SingleQuotedIdentifier,
	syntax.WildcardIdentifier,
)

// ObjectReferenceParts splits an ObjectReference-class segment (column,
// table, or wildcard reference) into its dot-separated parts, grounded on
// object_reference.rs's iter_raw_references: walk the leaf segments in
// order, start a new part at each Dot token, and otherwise accumulate
// identifier text into the current part.
func (s *Segment) ObjectReferenceParts() []ObjectReferencePart {
	var parts []ObjectReferencePart
	var cur ObjectReferencePart

	flush := func() {
		if len(cur.Segments) > 0 {
			parts = append(parts, cur)
		}
		cur = ObjectReferencePart{}
	}

	for _, leaf := range s.GetRawSegments() {
		switch {
		case leaf.Kind() == syntax.Dot:
			flush()
		case leaf.IsTypeIn(identifierKinds):
			cur.Part += normalizeIdentifier(unquoteIdentifier(leaf))
			cur.Segments = append(cur.Segments, leaf)
		}
	}
	flush()
	return parts
}

// IsQualified reports whether an object reference has more than one
// dot-separated part (e.g. `t.c` vs. `c`).
func (s *Segment) IsQualified() bool {
	return len(s.ObjectReferenceParts()) > 1
}

// unquoteIdentifier strips the surrounding quote characters from a quoted
// or back-quoted identifier token so only the name itself is compared;
// naked identifiers are returned unchanged.
func unquoteIdentifier(leaf *Segment) string {
	raw := leaf.Raw()
	switch leaf.Kind() {
	case syntax.QuotedIdentifier:
		return strings.ReplaceAll(strings.Trim(raw, `"`), `""`, `"`)
	case syntax.BackQuotedIdentifier:
		return strings.ReplaceAll(strings.Trim(raw, "`"), "``", "`")
	default:
		return raw
	}
}

// normalizeIdentifier returns raw in Unicode Normalization Form C, so that
// a precomposed codepoint and its decomposed combining-character
// equivalent (two valid spellings of the same identifier) compare equal.
func normalizeIdentifier(raw string) string {
	return norm.NFC.String(raw)
}
