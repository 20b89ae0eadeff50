package grammar

import "github.com/leapstack-labs/sqlgrammar/pkg/syntax"

// BracketPair names one dialect-registered bracket shape (round, square,
// curly, angle) by the token kinds that open and close it.
type BracketPair struct {
	Name  string
	Open  syntax.Kind
	Close syntax.Kind
}

// DialectView is the narrow surface of a dialect that the grammar package
// needs. pkg/dialect.Dialect implements it; grammar cannot import pkg/dialect
// directly (pkg/dialect imports grammar.Matchable for its library entries),
// so the dependency points the other way through this interface.
type DialectView interface {
	Lookup(name string) (Matchable, bool)
	BracketPair(name string) (BracketPair, bool)
	IndentationConfig() map[string]bool
}

type memoKey struct {
	cacheKey uint32
	idx      int
}

// ParseContext threads the active dialect, terminator stack, memoisation
// table and loop-detection crumbs through a match (spec §4.F).
type ParseContext struct {
	Dialect DialectView

	terminators     [][]Matchable
	memo            map[memoKey]MatchResult
	memoHit         map[memoKey]bool
	lastHitTerm     bool
}

// NewParseContext builds a context for a single top-level parse.
func NewParseContext(d DialectView) *ParseContext {
	return &ParseContext{
		Dialect: d,
		memo:    make(map[memoKey]MatchResult),
		memoHit: make(map[memoKey]bool),
	}
}

// IndentationConfig returns the active dialect's named indent-behaviour
// flags, or nil if the dialect has none.
func (ctx *ParseContext) IndentationConfig() map[string]bool {
	if ctx.Dialect == nil {
		return nil
	}
	return ctx.Dialect.IndentationConfig()
}

// Terminators returns the currently active terminator matchers: the union
// of every frame on the stack, innermost first, used by Sequence/AnyNumberOf/
// Delimited to decide when to stop greedily consuming.
func (ctx *ParseContext) Terminators() []Matchable {
	var out []Matchable
	for i := len(ctx.terminators) - 1; i >= 0; i-- {
		out = append(out, ctx.terminators[i]...)
	}
	return out
}

// Memo looks up a previously computed MatchResult for (m, idx).
func (ctx *ParseContext) Memo(m Matchable, idx int) (MatchResult, bool) {
	k := memoKey{cacheKey: m.CacheKey(), idx: idx}
	r, ok := ctx.memo[k]
	return r, ok
}

// StoreMemo records the result of matching m at idx.
func (ctx *ParseContext) StoreMemo(m Matchable, idx int, r MatchResult) {
	k := memoKey{cacheKey: m.CacheKey(), idx: idx}
	ctx.memo[k] = r
}

// MarkTerminatorHit records that the body currently executing under
// DeeperMatch stopped because it hit an active terminator, rather than
// running out of matchable elements or failing outright.
func (ctx *ParseContext) MarkTerminatorHit() {
	ctx.lastHitTerm = true
}

// DeeperMatch pushes a transient terminator frame, runs body, pops the
// frame, and reports whether body's execution stopped on a terminator
// (spec §4.F: "pushes a frame, executes the body, pops, and returns
// (result, used_terminator)"). When clearTerminators is set the inherited
// terminator frames are hidden (not removed) for body's duration.
func (ctx *ParseContext) DeeperMatch(clearTerminators bool, extra []Matchable, body func(*ParseContext) (MatchResult, error)) (MatchResult, bool, error) {
	var hidden [][]Matchable
	if clearTerminators {
		hidden, ctx.terminators = ctx.terminators, nil
	}
	ctx.terminators = append(ctx.terminators, extra)

	prevHit := ctx.lastHitTerm
	ctx.lastHitTerm = false
	res, err := body(ctx)
	used := ctx.lastHitTerm
	ctx.lastHitTerm = prevHit

	ctx.terminators = ctx.terminators[:len(ctx.terminators)-1]
	if clearTerminators {
		ctx.terminators = hidden
	}
	return res, used, err
}

// loopGuard reports whether name already appears in crumbs, and returns the
// crumb trail extended with name for recursive Simple calls (spec §4.F:
// "loop-detection mechanism for Ref resolution").
func loopGuard(crumbs []string, name string) (looping bool, next []string) {
	for _, c := range crumbs {
		if c == name {
			return true, crumbs
		}
	}
	next = make([]string, len(crumbs)+1)
	copy(next, crumbs)
	next[len(crumbs)] = name
	return false, next
}
