package fix

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
)

// Apply rewrites root according to fixes (spec §4.J): fixes are grouped by
// anchor, invalid groups are reported as conflicts and skipped, and the tree
// is rebuilt bottom-up via recursive descent with position recomputation for
// every edited child list. It returns the new root, whether anything was
// actually changed (the caller's cue to re-run rule checks), and any
// conflicts encountered along the way.
func Apply(tables *segment.Tables, root *segment.Segment, fixes []LintFix) (*segment.Segment, bool, []*ConflictError) {
	if root == nil || len(fixes) == 0 {
		return root, false, nil
	}

	order, _ := groupByAnchor(fixes)
	groups := make(map[uint64]*AnchorEditInfo, len(order))
	var conflicts []*ConflictError
	for _, info := range order {
		if !info.Valid() {
			conflicts = append(conflicts, &ConflictError{AnchorID: info.AnchorID, Reason: "incompatible fix combination on one anchor"})
			continue
		}
		groups[info.AnchorID] = info
	}

	applied := make(map[uint64]bool, len(groups))
	newRoot, changed, applyConflicts := applyNode(tables, root, groups, applied)
	conflicts = append(conflicts, applyConflicts...)
	return newRoot, changed, conflicts
}

// applyNode recurses into node's children, rewriting whichever are fix
// anchors, and rebuilds node only if something underneath it changed (spec
// §9: "Readers never observe partially-built state" — an untouched subtree
// keeps its original segment, not a copy).
func applyNode(tables *segment.Tables, node *segment.Segment, groups map[uint64]*AnchorEditInfo, applied map[uint64]bool) (*segment.Segment, bool, []*ConflictError) {
	if !node.IsNode() {
		return node, false, nil
	}
	newChildren, changed, conflicts := applyChildren(tables, node, node.Children(), groups, applied)
	if !changed {
		return node, false, conflicts
	}
	return node.WithChildren(tables, newChildren), true, conflicts
}

// applyChildren walks one node's child list, substituting fix results for
// anchors and recursing into untouched node children, then recomputes
// positions across whatever list comes out (spec §4.J steps 2-3).
func applyChildren(tables *segment.Tables, parent *segment.Segment, children []*segment.Segment, groups map[uint64]*AnchorEditInfo, applied map[uint64]bool) ([]*segment.Segment, bool, []*ConflictError) {
	var out []*segment.Segment
	var conflicts []*ConflictError
	changed := false

	for _, c := range children {
		info, isAnchor := groups[c.ID()]
		if isAnchor && !applied[c.ID()] {
			applied[c.ID()] = true
			segs, confl := expandAnchor(c, info)
			conflicts = append(conflicts, confl...)
			if len(confl) == 0 {
				changed = true
			}
			out = append(out, segs...)
			continue
		}
		if c.IsNode() {
			nc, childChanged, confl := applyNode(tables, c, groups, applied)
			conflicts = append(conflicts, confl...)
			if childChanged {
				changed = true
			}
			out = append(out, nc)
			continue
		}
		out = append(out, c)
	}

	if changed {
		out = recomputePositions(out, parent.Position())
	}
	return out, changed, conflicts
}

// expandAnchor turns one anchor's validated fix group into the segment list
// that replaces it in its parent's children (spec §4.J.2): Delete drops it,
// Replace swaps it for the edit list (the edit whose raw matches the
// deleted raw inherits its position), CreateBefore/CreateAfter splice the
// edit list around it, and a CreateBefore+CreateAfter pair orders
// before-self-after. A fix that would create content inside a non-literal
// templated slice is rejected and the anchor is returned unchanged (spec
// §4.J.4).
func expandAnchor(anchor *segment.Segment, info *AnchorEditInfo) ([]*segment.Segment, []*ConflictError) {
	for _, f := range info.Fixes {
		if isTemplateConflict(anchor, f) {
			return []*segment.Segment{anchor}, []*ConflictError{{
				AnchorID: info.AnchorID,
				Reason:   "fix would create content inside a non-literal templated slice",
			}}
		}
	}

	if len(info.Fixes) == 1 {
		return expandSingleFix(anchor, info.Fixes[0]), nil
	}

	// The only valid multi-fix combination (AnchorEditInfo.Valid) is exactly
	// one CreateBefore and one CreateAfter, ordered before, self, after.
	var before, after LintFix
	for _, f := range info.Fixes {
		switch f.Kind {
		case CreateBefore:
			before = f
		case CreateAfter:
			after = f
		}
	}
	out := append([]*segment.Segment{}, before.Edit...)
	out = append(out, anchor)
	out = append(out, after.Edit...)
	return out, nil
}

func expandSingleFix(anchor *segment.Segment, f LintFix) []*segment.Segment {
	switch f.Kind {
	case Delete:
		return nil
	case CreateBefore:
		return append(append([]*segment.Segment{}, f.Edit...), anchor)
	case CreateAfter:
		return append([]*segment.Segment{anchor}, f.Edit...)
	case Replace:
		out := make([]*segment.Segment, len(f.Edit))
		copy(out, f.Edit)
		for i, e := range out {
			if e.Raw() == anchor.Raw() {
				out[i] = e.WithPosition(anchor.Position())
			}
		}
		return out
	default:
		return []*segment.Segment{anchor}
	}
}

// isTemplateConflict reports whether applying f to anchor would write new
// content into a templated (non-literal) source slice. Delete never
// conflicts (it removes rather than creates content); a Replace whose sole
// edit carries the same raw as the anchor is position-preserving and also
// never conflicts.
func isTemplateConflict(anchor *segment.Segment, f LintFix) bool {
	if f.Kind == Delete {
		return false
	}
	if !anchor.IsTemplated() {
		return false
	}
	if f.Kind == Replace && len(f.Edit) == 1 && f.Edit[0].Raw() == anchor.Raw() {
		return false
	}
	return true
}

// recomputePositions walks an edited child list and assigns a marker to any
// segment that doesn't already have one: the start point is derived from
// the preceding segment's end (or the parent's start boundary if there is
// no preceding segment), per spec §4.J.3. Segments that already carry a
// position (untouched originals, or nodes whose own position derives from
// their still-positioned children) are left as-is.
func recomputePositions(children []*segment.Segment, parentPos *tmplfile.Marker) []*segment.Segment {
	out := make([]*segment.Segment, len(children))
	var prev *tmplfile.Marker
	if parentPos != nil {
		start := pointAt(*parentPos, parentPos.SourceRange.Start, parentPos.TemplatedRange.Start)
		prev = &start
	}

	for i, c := range children {
		if c.Position() != nil {
			out[i] = c
			p := c.Position()
			prev = p
			continue
		}
		var next *tmplfile.Marker
		if prev != nil {
			n := prev.NextMarker("", tmplfile.Range{Start: prev.SourceRange.End, End: prev.SourceRange.End}, tmplfile.Range{Start: prev.TemplatedRange.End, End: prev.TemplatedRange.End})
			next = &n
		}
		if c.IsNode() {
			// A node's own position is the union of its children's positions,
			// already set at construction time; nothing to recompute here.
			out[i] = c
		} else {
			out[i] = c.WithPosition(next)
		}
		if next != nil {
			prev = next
		}
	}
	return out
}

func pointAt(base tmplfile.Marker, sourceOffset, templatedOffset int) tmplfile.Marker {
	return tmplfile.Marker{
		SourceRange:    tmplfile.Range{Start: sourceOffset, End: sourceOffset},
		TemplatedRange: tmplfile.Range{Start: templatedOffset, End: templatedOffset},
		File:           base.File,
		WorkingLine:    base.WorkingLine,
		WorkingCol:     base.WorkingCol,
	}
}
