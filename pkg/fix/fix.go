// Package fix implements the anchor-keyed edit primitives of spec §4.J: a
// LintFix targets a segment by id, fixes on the same anchor are grouped and
// validated, and Apply rewrites a tree bottom-up, recomputing positions for
// whatever it touched.
//
// No teacher package rewrites a parse tree — pkg/lint classifies violations
// but never fixes them, and fixer orchestration is explicitly out of the
// core's scope per spec §1. This package is grounded directly on
// original_source/crates/lib-core/src/lint_fix.rs, since that is the only
// concrete precedent in the pack for this shape (see DESIGN.md).
package fix

import "github.com/leapstack-labs/sqlgrammar/pkg/segment"

// Kind distinguishes the four fix shapes of spec §3's LintFix sum type.
type Kind int

const (
	// Replace swaps the anchor for the edit segments.
	Replace Kind = iota
	// CreateBefore inserts the edit segments immediately before the anchor.
	CreateBefore
	// CreateAfter inserts the edit segments immediately after the anchor.
	CreateAfter
	// Delete removes the anchor entirely.
	Delete
)

func (k Kind) String() string {
	switch k {
	case Replace:
		return "replace"
	case CreateBefore:
		return "create_before"
	case CreateAfter:
		return "create_after"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// LintFix is one proposed edit, keyed to an anchor segment by id (spec §3).
// Edit segments should have their position markers stripped by the caller
// (they are recomputed during application); Source lists the segments whose
// position markers contributed the replacement text. Apply does not read
// Source: its templated-slice conflict check (spec §4.J.4) looks only at
// the anchor.
type LintFix struct {
	Kind   Kind
	Anchor *segment.Segment
	Edit   []*segment.Segment
	Source []*segment.Segment
}

// NewDelete builds a Delete fix removing anchor.
func NewDelete(anchor *segment.Segment) LintFix {
	return LintFix{Kind: Delete, Anchor: anchor}
}

// NewCreateBefore builds a CreateBefore fix inserting edit ahead of anchor.
func NewCreateBefore(anchor *segment.Segment, edit ...*segment.Segment) LintFix {
	return LintFix{Kind: CreateBefore, Anchor: anchor, Edit: edit}
}

// NewCreateAfter builds a CreateAfter fix inserting edit after anchor.
func NewCreateAfter(anchor *segment.Segment, edit []*segment.Segment, source ...*segment.Segment) LintFix {
	return LintFix{Kind: CreateAfter, Anchor: anchor, Edit: edit, Source: source}
}

// NewReplace builds a Replace fix swapping anchor for edit.
func NewReplace(anchor *segment.Segment, edit []*segment.Segment, source ...*segment.Segment) LintFix {
	return LintFix{Kind: Replace, Anchor: anchor, Edit: edit, Source: source}
}

// AnchorID returns the id of the segment this fix targets, or 0 if Anchor is
// nil (a malformed fix; callers shouldn't construct one this way).
func (f LintFix) AnchorID() uint64 {
	if f.Anchor == nil {
		return 0
	}
	return f.Anchor.ID()
}

// equal reports whether two fixes are identical for deduplication purposes:
// same kind, same anchor, and edit segments with matching raws in order
// (segment identity isn't meaningful across independently-constructed
// fixes targeting the same violation).
func (f LintFix) equal(other LintFix) bool {
	if f.Kind != other.Kind || f.AnchorID() != other.AnchorID() {
		return false
	}
	if len(f.Edit) != len(other.Edit) {
		return false
	}
	for i := range f.Edit {
		if f.Edit[i].Kind() != other.Edit[i].Kind() || f.Edit[i].Raw() != other.Edit[i].Raw() {
			return false
		}
	}
	return true
}

// isPositionPreserving reports whether f only carries source fixes: every
// edit segment's raw matches the anchor's raw, so applying it need not
// invalidate positions (spec §4.J.2: "If only source fixes apply ... the
// edit does not invalidate positions").
func (f LintFix) isPositionPreserving() bool {
	if f.Kind != Replace || f.Anchor == nil || len(f.Edit) != 1 {
		return false
	}
	return f.Edit[0].Raw() == f.Anchor.Raw()
}
