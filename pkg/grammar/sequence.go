package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// ParseMode selects how Sequence behaves when a required element fails
// partway through (spec §4.E).
type ParseMode int

const (
	// ParseModeStrict fails the whole sequence if any non-optional element
	// fails to match.
	ParseModeStrict ParseMode = iota
	// ParseModeGreedyOnceStarted: once the first element has matched, a
	// later required-element failure doesn't fail the sequence — instead
	// the remainder up to the nearest terminator is consumed and wrapped as
	// an Unparsable child.
	ParseModeGreedyOnceStarted
)

// Sequence matches Elements in order, consuming non-code gaps between
// code-consuming elements when AllowGaps is set, and splicing in meta
// elements' inserts at the documented placement (spec §4.E).
type Sequence struct {
	base
	Elements    []Matchable
	AllowGaps   bool
	Terminators []Matchable
	Mode        ParseMode
}

// NewSequence builds a Sequence with AllowGaps defaulting to true, matching
// spec §4.E's "if allow_gaps (default true)".
func NewSequence(elements ...Matchable) *Sequence {
	return &Sequence{base: newBase(false), Elements: elements, AllowGaps: true}
}

func (s *Sequence) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	for _, el := range s.Elements {
		if isMeta(el) {
			continue
		}
		return el.Simple(ctx, crumbs)
	}
	return nil, syntax.Empty, false
}

func isMeta(m Matchable) bool {
	switch m.(type) {
	case *Meta, *Conditional:
		return true
	}
	return false
}

func (s *Sequence) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	result, _, err := ctx.DeeperMatch(false, s.Terminators, func(ctx *ParseContext) (MatchResult, error) {
		return s.matchBody(tokens, idx, ctx)
	})
	return result, err
}

func (s *Sequence) matchBody(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	cursor := idx
	var children []MatchResult
	started := false

	for i, el := range s.Elements {
		if meta, ok := el.(*Meta); ok {
			cursor = s.placeMeta(tokens, ctx, &children, cursor, i, meta.Kind, meta)
			continue
		}
		if cond, ok := el.(*Conditional); ok {
			cursor = s.placeMeta(tokens, ctx, &children, cursor, i, 0, nil)
			res, err := cond.Match(tokens, cursor, ctx)
			if err != nil {
				return Failed(idx), err
			}
			if len(res.Inserts) > 0 {
				children = append(children, res)
			}
			continue
		}

		if s.AllowGaps && i > 0 {
			gap, gcursor := s.consumeGap(tokens, ctx, cursor)
			if gap != nil {
				children = append(children, *gap)
			}
			cursor = gcursor
		}

		if matchesTerminator(tokens, cursor, ctx) {
			if el.IsOptional() {
				continue
			}
			if started && s.Mode == ParseModeGreedyOnceStarted {
				ctx.MarkTerminatorHit()
				break
			}
			return Failed(idx), nil
		}

		res, err := el.Match(tokens, cursor, ctx)
		if err != nil {
			return Failed(idx), err
		}
		if !res.Matched {
			if el.IsOptional() {
				continue
			}
			if started && s.Mode == ParseModeGreedyOnceStarted {
				break
			}
			return Failed(idx), nil
		}
		children = append(children, res)
		cursor = res.End
		started = true
	}

	if s.Mode == ParseModeGreedyOnceStarted && started {
		cursor = s.consumeUnparsableTail(tokens, ctx, &children, cursor)
	}

	return MatchResult{Start: idx, End: cursor, Matched: true, Children: children}, nil
}

// placeMeta appends a meta insert to children, honouring the documented
// placement rule: positive-indent metas are emitted immediately (before any
// gap that would otherwise precede the next element); dedents and
// zero-valued metas (Implicit, Conditional no-ops) are emitted only after
// any pending gap has been consumed (spec §4.E, §9 open question).
func (s *Sequence) placeMeta(tokens []*segment.Segment, ctx *ParseContext, children *[]MatchResult, cursor int, elementIdx int, kind syntax.Kind, meta *Meta) int {
	if meta != nil && meta.Kind.IndentVal() > 0 {
		*children = append(*children, MatchResult{Start: cursor, End: cursor, Matched: true, Inserts: []Insert{{Index: cursor, Kind: kind}}})
		return cursor
	}
	if s.AllowGaps && elementIdx > 0 {
		gap, gcursor := s.consumeGap(tokens, ctx, cursor)
		if gap != nil {
			*children = append(*children, *gap)
		}
		cursor = gcursor
	}
	if meta != nil {
		*children = append(*children, MatchResult{Start: cursor, End: cursor, Matched: true, Inserts: []Insert{{Index: cursor, Kind: kind}}})
	}
	return cursor
}

func (s *Sequence) consumeGap(tokens []*segment.Segment, ctx *ParseContext, cursor int) (*MatchResult, int) {
	gap, _ := sharedNonCode.Match(tokens, cursor, ctx)
	if gap.Len() == 0 {
		return nil, cursor
	}
	return &gap, gap.End
}

// consumeUnparsableTail greedily consumes tokens from cursor up to the
// nearest active terminator (or end of input) and appends them as a single
// Unparsable child, per ParseModeGreedyOnceStarted (spec §4.E).
func (s *Sequence) consumeUnparsableTail(tokens []*segment.Segment, ctx *ParseContext, children *[]MatchResult, cursor int) int {
	start := cursor
	for cursor < len(tokens) && !matchesTerminator(tokens, cursor, ctx) {
		cursor++
	}
	if cursor == start {
		return cursor
	}
	*children = append(*children, MatchResult{Start: start, End: cursor, Matched: true, Wrap: SyntaxKindWrap(syntax.Unparsable)})
	return cursor
}

// matchesTerminator reports whether any currently active terminator matches
// at cursor, without consuming it.
func matchesTerminator(tokens []*segment.Segment, cursor int, ctx *ParseContext) bool {
	if cursor >= len(tokens) {
		return false
	}
	for _, term := range ctx.Terminators() {
		if term == nil {
			continue
		}
		res, err := term.Match(tokens, cursor, ctx)
		if err == nil && res.Matched && res.Len() > 0 {
			return true
		}
	}
	return false
}
