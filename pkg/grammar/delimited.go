package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// Delimited repeats (element, delimiter) pairs (spec §4.E). A delimiter not
// followed by a matching element ends the match at the last complete
// element, unless AllowTrailing permits keeping the dangling delimiter.
type Delimited struct {
	base
	Element       Matchable
	Delimiter     Matchable
	MinDelimiters int
	AllowTrailing bool
	AllowGaps     bool
	Terminators   []Matchable
}

// NewDelimited builds a Delimited with AllowGaps defaulting to true.
func NewDelimited(element, delimiter Matchable) *Delimited {
	return &Delimited{base: newBase(false), Element: element, Delimiter: delimiter, AllowGaps: true}
}

func (d *Delimited) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return d.Element.Simple(ctx, crumbs)
}

func (d *Delimited) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	result, _, err := ctx.DeeperMatch(false, d.Terminators, func(ctx *ParseContext) (MatchResult, error) {
		return d.matchBody(tokens, idx, ctx)
	})
	return result, err
}

func (d *Delimited) matchBody(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	var children []MatchResult

	elRes, err := d.Element.Match(tokens, idx, ctx)
	if err != nil {
		return Failed(idx), err
	}
	if !elRes.Matched {
		return Failed(idx), nil
	}
	children = append(children, elRes)
	cursor := elRes.End
	delimiters := 0

	for {
		if matchesTerminator(tokens, cursor, ctx) {
			ctx.MarkTerminatorHit()
			break
		}

		gap1, afterGap1 := d.consumeGap(tokens, ctx, cursor)
		delimRes, err := d.Delimiter.Match(tokens, afterGap1, ctx)
		if err != nil {
			return Failed(idx), err
		}
		if !delimRes.Matched {
			break
		}

		gap2, afterGap2 := d.consumeGap(tokens, ctx, delimRes.End)
		elRes2, err := d.Element.Match(tokens, afterGap2, ctx)
		if err != nil {
			return Failed(idx), err
		}
		if !elRes2.Matched {
			if d.AllowTrailing {
				if gap1 != nil {
					children = append(children, *gap1)
				}
				children = append(children, delimRes)
				cursor = delimRes.End
				delimiters++
			}
			break
		}

		if gap1 != nil {
			children = append(children, *gap1)
		}
		children = append(children, delimRes)
		delimiters++
		if gap2 != nil {
			children = append(children, *gap2)
		}
		children = append(children, elRes2)
		cursor = elRes2.End
	}

	if delimiters < d.MinDelimiters {
		return Failed(idx), nil
	}
	return MatchResult{Start: idx, End: cursor, Matched: true, Children: children}, nil
}

func (d *Delimited) consumeGap(tokens []*segment.Segment, ctx *ParseContext, cursor int) (*MatchResult, int) {
	if !d.AllowGaps {
		return nil, cursor
	}
	gap, _ := sharedNonCode.Match(tokens, cursor, ctx)
	if gap.Len() == 0 {
		return nil, cursor
	}
	return &gap, gap.End
}
