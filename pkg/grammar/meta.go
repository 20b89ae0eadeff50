package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// Meta is a zero-width layout element (Indent/Dedent/Implicit): it never
// consumes a token, instead contributing a single insert_segment at the
// current position (spec §4.E). Sequence special-cases Meta elements to
// place them relative to non-code gaps using Kind.IndentVal (positive-
// indent metas precede the gap, dedents follow it — spec §9 open question
// resolved in DESIGN.md).
type Meta struct {
	base
	Kind syntax.Kind
}

func NewMeta(kind syntax.Kind) *Meta {
	return &Meta{base: newBase(true), Kind: kind}
}

func (m *Meta) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return nil, syntax.Empty, false
}

func (m *Meta) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	return MatchResult{
		Start:   idx,
		End:     idx,
		Matched: true,
		Inserts: []Insert{{Index: idx, Kind: m.Kind}},
	}, nil
}

// Conditional emits Kind as an insert_segment iff every flag in Flags equals
// the same flag in the active dialect's indentation config; otherwise it
// consumes nothing and inserts nothing, but still counts as matched (spec
// §4.E: "Consumes no tokens").
type Conditional struct {
	base
	Kind  syntax.Kind
	Flags map[string]bool
}

func NewConditional(kind syntax.Kind, flags map[string]bool) *Conditional {
	return &Conditional{base: newBase(true), Kind: kind, Flags: flags}
}

func (c *Conditional) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return nil, syntax.Empty, false
}

func (c *Conditional) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	cfg := ctx.IndentationConfig()
	for flag, expected := range c.Flags {
		if cfg == nil || cfg[flag] != expected {
			return MatchResult{Start: idx, End: idx, Matched: true}, nil
		}
	}
	return MatchResult{
		Start:   idx,
		End:     idx,
		Matched: true,
		Inserts: []Insert{{Index: idx, Kind: c.Kind}},
	}, nil
}
