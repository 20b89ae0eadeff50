package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// BracketConfigError reports that a Bracketed combinator's BracketType isn't
// registered in the active dialect's bracket-pair sets.
type BracketConfigError struct {
	BracketType string
}

func (e *BracketConfigError) Error() string {
	return "grammar: unknown bracket type " + e.BracketType
}

// Bracketed consumes a paired bracket (round/square/curly/angle, as named
// by the dialect's bracket-pair sets) and matches Inner against the tokens
// between the opener and its matching closer (spec §4.E). On a content
// mismatch it reports Unparsable for the interior but still consumes up to
// the matching closer (or to the end of input if none is found).
type Bracketed struct {
	base
	Inner       Matchable
	BracketType string
}

func NewBracketed(inner Matchable, bracketType string, optional bool) *Bracketed {
	return &Bracketed{base: newBase(optional), Inner: inner, BracketType: bracketType}
}

func (b *Bracketed) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	pair, ok := ctx.Dialect.BracketPair(b.BracketType)
	if !ok {
		return nil, syntax.Empty, false
	}
	return nil, syntax.Single(pair.Open), true
}

func (b *Bracketed) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	pair, ok := ctx.Dialect.BracketPair(b.BracketType)
	if !ok {
		return Failed(idx), &BracketConfigError{BracketType: b.BracketType}
	}
	if idx >= len(tokens) || tokens[idx].Kind() != pair.Open {
		return Failed(idx), nil
	}

	closeIdx := -1
	depth := 1
	for j := idx + 1; j < len(tokens); j++ {
		switch tokens[j].Kind() {
		case pair.Open:
			depth++
		case pair.Close:
			depth--
			if depth == 0 {
				closeIdx = j
			}
		}
		if closeIdx != -1 {
			break
		}
	}

	openChild := MatchResult{Start: idx, End: idx + 1, Matched: true}
	if closeIdx == -1 {
		end := len(tokens)
		content := MatchResult{Start: idx + 1, End: end, Matched: true, Wrap: SyntaxKindWrap(syntax.Unparsable)}
		return MatchResult{Start: idx, End: end, Matched: true, Children: []MatchResult{openChild, content}}, nil
	}

	innerRes, _, err := ctx.DeeperMatch(true, nil, func(ctx *ParseContext) (MatchResult, error) {
		return b.Inner.Match(tokens, idx+1, ctx)
	})
	if err != nil {
		return Failed(idx), err
	}

	var innerChild MatchResult
	if !innerRes.Matched || innerRes.End != closeIdx {
		innerChild = MatchResult{Start: idx + 1, End: closeIdx, Matched: true, Wrap: SyntaxKindWrap(syntax.Unparsable)}
	} else {
		innerChild = innerRes
	}
	closeChild := MatchResult{Start: closeIdx, End: closeIdx + 1, Matched: true}
	return MatchResult{
		Start:    idx,
		End:      closeIdx + 1,
		Matched:  true,
		Children: []MatchResult{openChild, innerChild, closeChild},
	}, nil
}
