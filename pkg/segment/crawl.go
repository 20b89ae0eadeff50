package segment

import "github.com/leapstack-labs/sqlgrammar/pkg/syntax"

// RecursiveCrawl walks the tree rooted at s depth-first, yielding every
// segment whose class-type set intersects kinds. recurseInto controls
// whether a matching node's own children are still visited afterward;
// stopKinds prunes a whole subtree (its children are never visited, even to
// look for further matches) once a segment in stopKinds is reached.
// allowSelf controls whether s itself is eligible to be yielded.
func (s *Segment) RecursiveCrawl(kinds syntax.Set, recurseInto bool, stopKinds syntax.Set, allowSelf bool) []*Segment {
	var out []*Segment
	s.crawl(kinds, recurseInto, stopKinds, allowSelf, &out)
	return out
}

func (s *Segment) crawl(kinds syntax.Set, recurseInto bool, stopKinds syntax.Set, allowSelf bool, out *[]*Segment) {
	matched := allowSelf && s.classTypes.Intersects(kinds)
	if matched {
		*out = append(*out, s)
		if !recurseInto {
			return
		}
	}
	if !stopKinds.IsEmpty() && s.classTypes.Intersects(stopKinds) {
		return
	}
	for _, c := range s.children {
		c.crawl(kinds, recurseInto, stopKinds, true, out)
	}
}

// ChildrenOfKind returns direct children whose class-type set intersects
// kinds.
func (s *Segment) ChildrenOfKind(kinds syntax.Set) []*Segment {
	var out []*Segment
	for _, c := range s.children {
		if c.classTypes.Intersects(kinds) {
			out = append(out, c)
		}
	}
	return out
}

// PathStep is one hop of the route RecursiveCrawl-adjacent callers use to
// get from an ancestor to a specific descendant (spec §4.C: "path_to(other)
// returning the sequence of PathStep{segment, idx, len, code_idxs}").
type PathStep struct {
	Segment  *Segment
	Idx      int
	Len      int
	CodeIdxs []int
}

// PathTo returns the sequence of PathSteps from s down to other, or nil if
// other is not a descendant of s.
func (s *Segment) PathTo(other *Segment) []PathStep {
	if s == other || s.Equal(other) {
		return []PathStep{}
	}
	for i, c := range s.children {
		if c == other || c.Equal(other) {
			return []PathStep{{Segment: s, Idx: i, Len: len(s.children), CodeIdxs: s.CodeIndices()}}
		}
		if sub := c.PathTo(other); sub != nil {
			step := PathStep{Segment: s, Idx: i, Len: len(s.children), CodeIdxs: s.CodeIndices()}
			return append([]PathStep{step}, sub...)
		}
	}
	return nil
}

// RawSegmentsWithAncestors returns every leaf token under s, each paired
// with the path of ancestor nodes from s down to it (spec §3:
// "raw_segments_with_ancestors (flattened leaves annotated with their
// path)").
func (s *Segment) RawSegmentsWithAncestors() []LeafWithPath {
	var out []LeafWithPath
	s.collectLeaves(nil, &out)
	return out
}

// LeafWithPath pairs a leaf token with the chain of ancestor nodes above it.
type LeafWithPath struct {
	Leaf      *Segment
	Ancestors []*Segment
}

func (s *Segment) collectLeaves(ancestors []*Segment, out *[]LeafWithPath) {
	if !s.IsNode() {
		path := make([]*Segment, len(ancestors))
		copy(path, ancestors)
		*out = append(*out, LeafWithPath{Leaf: s, Ancestors: path})
		return
	}
	next := append(ancestors, s) //nolint:gocritic // intentional append-then-reuse across siblings is safe: each recursive call re-slices its own copy before storing
	for _, c := range s.children {
		c.collectLeaves(next, out)
	}
}
