// Package grammar implements the declarative combinator engine of spec
// §4.E/F/I: a small Matchable trait (simple/match/is_optional/cache_key),
// concrete combinators built on top of it, the MatchResult value they
// produce, and the ParseContext that threads terminators, memoisation and
// loop detection through a match.
//
// No teacher code implements a backtracking combinator engine of this shape
// (the teacher's pkg/parser is hand-rolled recursive descent over a fixed
// grammar) — this package is grounded directly in spec §4.E/F, with the
// teacher's dialect.Dialect "look up local map, fall back to parent" shape
// carried over into Ref's dialect-library lookup and OneOf's terminator
// inheritance (see DESIGN.md).
package grammar

import (
	"sync/atomic"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// Matchable is the common trait every grammar combinator implements (spec
// §4.E).
type Matchable interface {
	// Simple returns a cheap precheck of what could begin a successful
	// match: a set of uppercase literal raws and/or a SyntaxSet of token
	// kinds. ok is false when no precheck is available (the caller must
	// fall back to a real Match attempt).
	Simple(ctx *ParseContext, crumbs []string) (raws map[string]struct{}, kinds syntax.Set, ok bool)

	// Match attempts to match starting at tokens[idx]. A returned
	// MatchResult with Matched false means "did not match" (not an error);
	// err is reserved for genuine grammar-construction/runtime failures
	// (e.g. Ref resolving to an unregistered name).
	Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error)

	IsOptional() bool
	CacheKey() uint32
}

var cacheKeyCounter uint32

// nextCacheKey hands out a stable, never-recycled small integer id at
// combinator-construction time — the same pattern the teacher's
// pkg/token/register.go dynamic token-id allocator uses (see DESIGN.md).
func nextCacheKey() uint32 {
	return atomic.AddUint32(&cacheKeyCounter, 1)
}

// base is embedded by every concrete combinator to supply IsOptional and
// CacheKey without repeating the bookkeeping.
type base struct {
	key      uint32
	optional bool
}

func newBase(optional bool) base {
	return base{key: nextCacheKey(), optional: optional}
}

func (b base) IsOptional() bool  { return b.optional }
func (b base) CacheKey() uint32  { return b.key }

// Wrap describes how MatchResult.Apply should wrap the segments a match
// produced: SyntaxKind(k) wraps them in a new node of kind k, Newtype(k)
// reinterprets the single consumed token as kind k in place (spec §4.I).
type Wrap struct {
	Kind      syntax.Kind
	IsNewtype bool
}

// SyntaxKindWrap builds a Wrap requesting a new wrapping node of kind k.
func SyntaxKindWrap(k syntax.Kind) *Wrap { return &Wrap{Kind: k} }

// NewtypeWrap builds a Wrap requesting the sole consumed token be
// reinterpreted as kind k.
func NewtypeWrap(k syntax.Kind) *Wrap { return &Wrap{Kind: k, IsNewtype: true} }

// Insert is a zero-width meta segment to be materialised at Index (a token
// index in the original tokens slice that Apply is working over).
type Insert struct {
	Index int
	Kind  syntax.Kind
}

// MatchResult is the combinators' shared intermediate value (spec §4.I).
// Matched distinguishes a genuine failure (false) from a successful but
// possibly zero-length match (true, Start == End): empty matches are the
// identity for Sequence/AnyNumberOf concatenation, and a match that only
// inserts meta segments counts as empty for length purposes but does count
// as a match.
type MatchResult struct {
	Start, End int
	Matched    bool
	Wrap       *Wrap
	Inserts    []Insert
	Children   []MatchResult
}

// Failed returns the canonical "did not match" result at idx.
func Failed(idx int) MatchResult {
	return MatchResult{Start: idx, End: idx, Matched: false}
}

// Empty returns a successful, zero-length match at idx — the identity
// element for sequencing.
func Empty(idx int) MatchResult {
	return MatchResult{Start: idx, End: idx, Matched: true}
}

// Len reports how many tokens this result consumes.
func (m MatchResult) Len() int { return m.End - m.Start }

// IsEmpty reports whether this result consumed zero tokens (it may still
// have inserted meta segments).
func (m MatchResult) IsEmpty() bool { return m.End == m.Start }
