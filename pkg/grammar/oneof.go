package grammar

import (
	"strings"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// OneOf tries every element and takes the longest match, using Simple to
// prune branches that plainly cannot apply at the current token (spec
// §4.E). Ties are broken by earliest declaration.
type OneOf struct {
	base
	Elements    []Matchable
	Terminators []Matchable
	Exclude     Matchable
}

func NewOneOf(elements ...Matchable) *OneOf {
	return &OneOf{base: newBase(false), Elements: elements}
}

func (o *OneOf) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return simpleUnion(o.Elements, ctx, crumbs)
}

func (o *OneOf) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	result, _, err := ctx.DeeperMatch(false, o.Terminators, func(ctx *ParseContext) (MatchResult, error) {
		if o.Exclude != nil {
			ex, err := o.Exclude.Match(tokens, idx, ctx)
			if err != nil {
				return Failed(idx), err
			}
			if ex.Matched && ex.Len() > 0 {
				return Failed(idx), nil
			}
		}
		best, _, err := bestMatch(o.Elements, tokens, idx, ctx)
		return best, err
	})
	return result, err
}

// simpleUnion merges the Simple precheck of every element in elements; ok is
// false (no precheck available) if any element has no precheck, since a
// OneOf could still match via that element.
func simpleUnion(elements []Matchable, ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	raws := make(map[string]struct{})
	var kinds syntax.Set
	for _, el := range elements {
		r, k, ok := el.Simple(ctx, crumbs)
		if !ok {
			return nil, syntax.Empty, false
		}
		for raw := range r {
			raws[raw] = struct{}{}
		}
		kinds = kinds.Union(k)
	}
	return raws, kinds, true
}

// couldMatch is the O(1) precheck used to skip elements whose Simple result
// plainly rules out the token at tokens[idx]; it returns true whenever no
// precheck is available (the caller must fall back to a real Match).
func couldMatch(el Matchable, tokens []*segment.Segment, idx int, ctx *ParseContext) bool {
	if idx >= len(tokens) {
		return true
	}
	raws, kinds, ok := el.Simple(ctx, nil)
	if !ok {
		return true
	}
	tok := tokens[idx]
	if len(raws) > 0 {
		if _, hit := raws[strings.ToUpper(tok.Raw())]; hit {
			return true
		}
	}
	if !kinds.IsEmpty() && tok.IsTypeIn(kinds) {
		return true
	}
	return len(raws) == 0 && kinds.IsEmpty()
}

// bestMatch tries every element at idx (skipping those Simple rules out)
// and returns the longest successful MatchResult, breaking ties by earliest
// declaration (spec §4.E: "Tie-breaking in OneOf: longer span wins; on a
// tie, earlier declaration wins. Matches that only insert meta segments
// count as empty for length but do count as matches.").
func bestMatch(elements []Matchable, tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, Matchable, error) {
	var bestRes MatchResult
	var bestEl Matchable
	haveMatch := false

	for _, el := range elements {
		if !couldMatch(el, tokens, idx, ctx) {
			continue
		}
		res, err := el.Match(tokens, idx, ctx)
		if err != nil {
			return Failed(idx), nil, err
		}
		if !res.Matched {
			continue
		}
		if !haveMatch || res.Len() > bestRes.Len() {
			bestRes, bestEl, haveMatch = res, el, true
		}
	}
	if !haveMatch {
		return Failed(idx), nil, nil
	}
	return bestRes, bestEl, nil
}
