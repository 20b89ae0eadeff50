package grammar

import (
	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// UnresolvedRefError reports that a Ref's Name isn't registered in the
// active dialect's grammar library after expansion — a programmer error
// (spec §4.G: "referring to an unknown grammar name after expansion is a
// programmer error").
type UnresolvedRefError struct {
	Name string
}

func (e *UnresolvedRefError) Error() string {
	return "grammar: unresolved Ref(" + e.Name + ")"
}

// Ref is an indirect reference into the dialect's grammar library,
// resolved lazily since grammar graphs are cyclic (spec §4.E). Results are
// memoised in the parse context keyed by (Ref.CacheKey(), idx) — since the
// same Ref instance is reused at every recursive call site, this is exactly
// the memoisation spec §4.F requires to keep ambiguous recursive grammars
// from blowing up.
type Ref struct {
	base
	Name      string
	AllowGaps bool
}

// NewRef builds a Ref to the grammar named name.
func NewRef(name string, optional, allowGaps bool) *Ref {
	return &Ref{base: newBase(optional), Name: name, AllowGaps: allowGaps}
}

func (r *Ref) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	looping, next := loopGuard(crumbs, r.Name)
	if looping {
		return nil, syntax.Empty, false
	}
	target, ok := ctx.Dialect.Lookup(r.Name)
	if !ok {
		return nil, syntax.Empty, false
	}
	return target.Simple(ctx, next)
}

func (r *Ref) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	if cached, ok := ctx.Memo(r, idx); ok {
		return cached, nil
	}
	target, ok := ctx.Dialect.Lookup(r.Name)
	if !ok {
		return Failed(idx), &UnresolvedRefError{Name: r.Name}
	}
	res, err := target.Match(tokens, idx, ctx)
	if err == nil {
		ctx.StoreMemo(r, idx, res)
	}
	return res, err
}
