package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// AnyNumberOf repeats the best-matching element (same selection as OneOf)
// between MinTimes and MaxTimes times, stopping on failure, an active
// terminator, or reaching MaxTimes (spec §4.E). MaxTimes < 0 means
// unbounded.
type AnyNumberOf struct {
	base
	Elements    []Matchable
	MinTimes    int
	MaxTimes    int
	AllowGaps   bool
	Terminators []Matchable
	Exclude     Matchable
}

// NewAnyNumberOf builds an AnyNumberOf with AllowGaps defaulting to true and
// MaxTimes unbounded.
func NewAnyNumberOf(minTimes int, elements ...Matchable) *AnyNumberOf {
	return &AnyNumberOf{base: newBase(minTimes == 0), Elements: elements, MinTimes: minTimes, MaxTimes: -1, AllowGaps: true}
}

func (a *AnyNumberOf) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	if a.MinTimes == 0 {
		return nil, syntax.Empty, false
	}
	return simpleUnion(a.Elements, ctx, crumbs)
}

func (a *AnyNumberOf) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	result, _, err := ctx.DeeperMatch(false, a.Terminators, func(ctx *ParseContext) (MatchResult, error) {
		return a.matchBody(tokens, idx, ctx)
	})
	return result, err
}

func (a *AnyNumberOf) matchBody(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	cursor := idx
	var children []MatchResult
	count := 0

	for a.MaxTimes < 0 || count < a.MaxTimes {
		if a.Exclude != nil {
			ex, err := a.Exclude.Match(tokens, cursor, ctx)
			if err != nil {
				return Failed(idx), err
			}
			if ex.Matched && ex.Len() > 0 {
				break
			}
		}

		gapCursor := cursor
		var gap *MatchResult
		if a.AllowGaps && count > 0 {
			g, _ := sharedNonCode.Match(tokens, cursor, ctx)
			if g.Len() > 0 {
				gap = &g
				gapCursor = g.End
			}
		}

		if matchesTerminator(tokens, gapCursor, ctx) {
			ctx.MarkTerminatorHit()
			break
		}

		best, _, err := bestMatch(a.Elements, tokens, gapCursor, ctx)
		if err != nil {
			return Failed(idx), err
		}
		if !best.Matched {
			break
		}

		progressed := best.Len() > 0 || len(best.Inserts) > 0 || len(best.Children) > 0
		if gap != nil {
			children = append(children, *gap)
		}
		children = append(children, best)
		cursor = best.End
		count++
		if !progressed {
			// Defensive: an always-succeeding zero-width element (e.g. a bare
			// Conditional with no active flags) would otherwise repeat
			// forever; one repetition is recorded and then we stop.
			break
		}
	}

	if count < a.MinTimes {
		return Failed(idx), nil
	}
	return MatchResult{Start: idx, End: cursor, Matched: true, Children: children}, nil
}
