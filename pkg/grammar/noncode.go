package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// NonCodeMatcher matches the longest run of non-code tokens (whitespace,
// comments, meta) starting at idx, returning an empty span if idx isn't on
// one (spec §4.E). It always succeeds — the empty case is a legitimate
// zero-length match, not a failure.
type NonCodeMatcher struct {
	base
}

func NewNonCodeMatcher() *NonCodeMatcher {
	return &NonCodeMatcher{base: newBase(true)}
}

// sharedNonCode is the single NonCodeMatcher instance every combinator uses
// to consume gaps — a stable cache key, rather than one minted afresh at
// every call site, matching spec §4.E/F's "stable per-combinator
// identifier" intent.
var sharedNonCode = NewNonCodeMatcher()

func (m *NonCodeMatcher) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return nil, syntax.Empty, false
}

func (m *NonCodeMatcher) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	end := idx
	for end < len(tokens) && !tokens[end].IsCode() {
		end++
	}
	return MatchResult{Start: idx, End: end, Matched: true}, nil
}
