package grammar

import (
	"sort"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
)

// Apply materialises a MatchResult into segments (spec §4.I). tokens is the
// full token slice the match was computed against; m.Start/m.End index into
// it. dialectTag is stamped onto any wrapping node this result produces.
func (m MatchResult) Apply(tables *segment.Tables, tokens []*segment.Segment, dialectTag string) []*segment.Segment {
	segs := m.applyRange(tables, tokens, dialectTag)
	if m.Wrap == nil {
		return segs
	}
	if m.Wrap.IsNewtype {
		if len(segs) == 1 && !segs[0].IsNode() {
			return []*segment.Segment{segment.NewToken(tables, m.Wrap.Kind, segs[0].Raw(), segs[0].Position())}
		}
		return segs
	}
	node := segment.NewNode(tables, m.Wrap.Kind, segs, dialectTag, nil)
	return []*segment.Segment{node}
}

// applyRange walks [m.Start, m.End) copying token spans verbatim and
// splicing in inserts/child matches at their trigger indices, in index
// order (spec §4.I: "Sort the union of insert_segments and child_matches by
// index...").
func (m MatchResult) applyRange(tables *segment.Tables, tokens []*segment.Segment, dialectTag string) []*segment.Segment {
	type trigger struct {
		inserts []Insert
		child   *MatchResult
	}
	triggers := make(map[int]*trigger)
	at := func(idx int) *trigger {
		t, ok := triggers[idx]
		if !ok {
			t = &trigger{}
			triggers[idx] = t
		}
		return t
	}
	for _, ins := range m.Inserts {
		t := at(ins.Index)
		t.inserts = append(t.inserts, ins)
	}
	for i := range m.Children {
		c := m.Children[i]
		at(c.Start).child = &m.Children[i]
	}

	idxs := make([]int, 0, len(triggers))
	for idx := range triggers {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	var out []*segment.Segment
	cursor := m.Start
	for _, idx := range idxs {
		if idx < cursor {
			continue
		}
		out = append(out, tokens[cursor:idx]...)
		cursor = idx

		t := triggers[idx]
		for _, ins := range t.inserts {
			out = append(out, segment.NewToken(tables, ins.Kind, "", insertPoint(tokens, idx)))
		}
		if t.child != nil {
			out = append(out, t.child.Apply(tables, tokens, dialectTag)...)
			cursor = t.child.End
		}
	}
	out = append(out, tokens[cursor:m.End]...)
	return out
}

// insertPoint computes the point marker for a meta segment inserted at
// token index idx: start-of-token for an interior index, end-of-token (via
// the preceding token's NextMarker) when idx runs off the end of tokens
// (spec §4.I).
func insertPoint(tokens []*segment.Segment, idx int) *tmplfile.Marker {
	if idx < len(tokens) {
		p := tokens[idx].Position()
		if p == nil {
			return nil
		}
		return &tmplfile.Marker{
			SourceRange:    tmplfile.Range{Start: p.SourceRange.Start, End: p.SourceRange.Start},
			TemplatedRange: tmplfile.Range{Start: p.TemplatedRange.Start, End: p.TemplatedRange.Start},
			File:           p.File,
			WorkingLine:    p.WorkingLine,
			WorkingCol:     p.WorkingCol,
		}
	}
	if idx == 0 {
		return nil
	}
	prev := tokens[idx-1]
	p := prev.Position()
	if p == nil {
		return nil
	}
	zero := tmplfile.Range{Start: p.SourceRange.End, End: p.SourceRange.End}
	zeroT := tmplfile.Range{Start: p.TemplatedRange.End, End: p.TemplatedRange.End}
	next := p.NextMarker(prev.Raw(), zero, zeroT)
	return &next
}
