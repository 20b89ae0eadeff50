package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// Node wraps another combinator's successful match in a node of Kind,
// unless the inner match already requested its own wrap (e.g. a Bracketed
// whose mismatched interior already wrapped itself as Unparsable) — in
// which case the inner wrap is left alone. This is the "name this shape"
// combinator dialect grammars reach for constantly: spec §4.K's per-dialect
// grammar assembly is mostly Node(Kind, Sequence(...)) / Node(Kind,
// OneOf(...)) declarations (spec §4.I's Matched = SyntaxKind(k) variant,
// given a home as a combinator rather than threaded through every
// Sequence/OneOf literal).
type Node struct {
	base
	Kind  syntax.Kind
	Inner Matchable
}

// NewNode builds a Node wrapping inner's match in a node of kind.
func NewNode(kind syntax.Kind, inner Matchable) *Node {
	return &Node{base: newBase(inner.IsOptional()), Kind: kind, Inner: inner}
}

func (n *Node) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return n.Inner.Simple(ctx, crumbs)
}

func (n *Node) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	res, err := n.Inner.Match(tokens, idx, ctx)
	if err != nil || !res.Matched {
		return res, err
	}
	if res.Wrap == nil {
		res.Wrap = SyntaxKindWrap(n.Kind)
	}
	return res, nil
}
