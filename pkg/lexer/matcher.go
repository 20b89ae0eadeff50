package lexer

import "github.com/leapstack-labs/sqlgrammar/pkg/syntax"

// SubPattern pairs a Pattern with the Kind its matches should be tokenised
// as, for use as a Matcher's subdivider or post-subdivide pass.
type SubPattern struct {
	Kind    syntax.Kind
	Pattern Pattern
}

// Matcher is one named rule in a lexer Table (spec §4.D).
type Matcher struct {
	Name    string
	Kind    syntax.Kind
	Pattern Pattern

	// Subdivider, if set, splits a matched span along every occurrence of
	// its Pattern: non-matching pieces become Matcher.Kind tokens, and each
	// Subdivider match becomes a token of Subdivider.Kind. This is how,
	// e.g., a run of whitespace-separated literal content is split while
	// keeping separators as distinct tokens.
	Subdivider *SubPattern

	// PostSubdivide, if set, is applied to the trailing end of each piece
	// produced by Subdivider (or of the whole match, if no Subdivider):
	// trailing content matching its Pattern is trimmed off and re-emitted
	// as a separate token of PostSubdivide.Kind.
	PostSubdivide *SubPattern

	// FirstBytes, if non-empty, hints which leading bytes this matcher can
	// possibly start on — used by Table to build a fast per-byte candidate
	// list instead of always walking the full ordered matcher list (spec
	// §9 supplement: byte-class dispatch ahead of the ordered scan). A nil
	// or empty FirstBytes means "could start on anything" (e.g. a regex
	// matcher for arbitrary identifiers).
	FirstBytes []byte
}

// Table is an ordered set of Matchers plus the derived per-byte dispatch
// index used to keep matching cheap on long runs (spec §4.D, §9).
type Table struct {
	matchers []Matcher
	byByte   [256][]int // indices into matchers, for bytes with a FirstBytes hint
	anyByte  []int      // indices into matchers with no FirstBytes hint, tried after byByte's bucket is exhausted
}

// NewTable builds a Table from an ordered matcher list. Declaration order is
// preserved and is significant: within a byte's candidate list, and in
// anyByte, matchers keep their relative order from matchers.
func NewTable(matchers []Matcher) *Table {
	t := &Table{matchers: matchers}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	for i := range t.byByte {
		t.byByte[i] = nil
	}
	t.anyByte = nil
	for i, m := range t.matchers {
		if len(m.FirstBytes) == 0 {
			t.anyByte = append(t.anyByte, i)
			continue
		}
		for _, b := range m.FirstBytes {
			t.byByte[b] = append(t.byByte[b], i)
		}
	}
}

// Matchers returns the table's matchers in declaration order.
func (t *Table) Matchers() []Matcher {
	out := make([]Matcher, len(t.matchers))
	copy(out, t.matchers)
	return out
}

// candidates returns the indices of matchers worth trying at a position
// whose first byte is b, in declaration order: byte-hinted matchers first,
// then unhinted ones. Matchers appearing in both lists are not
// double-tried; byByte already carries them in original relative order, and
// anyByte only ever holds unhinted ones, so simple concatenation preserves
// "first match in declaration order wins" as long as we dedupe.
func (t *Table) candidates(b byte) []int {
	hinted := t.byByte[b]
	if len(t.anyByte) == 0 {
		return hinted
	}
	merged := make([]int, 0, len(hinted)+len(t.anyByte))
	merged = append(merged, hinted...)
	merged = append(merged, t.anyByte...)
	return mergeByDeclarationOrder(merged)
}

func mergeByDeclarationOrder(idxs []int) []int {
	// idxs is the concatenation of two already-increasing-by-declaration-
	// order lists; a stable sort restores strict declaration order without
	// disturbing matchers that appear only once.
	out := make([]int, len(idxs))
	copy(out, idxs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// InsertBefore inserts newMatchers immediately before the matcher named
// anchor. Returns an error if anchor does not exist (spec §4.D: "must fail
// loudly if a named anchor does not exist").
func (t *Table) InsertBefore(anchor string, newMatchers ...Matcher) error {
	idx, err := t.indexOf(anchor)
	if err != nil {
		return err
	}
	out := make([]Matcher, 0, len(t.matchers)+len(newMatchers))
	out = append(out, t.matchers[:idx]...)
	out = append(out, newMatchers...)
	out = append(out, t.matchers[idx:]...)
	t.matchers = out
	t.reindex()
	return nil
}

// Replace swaps the matcher named name for replacement, preserving its
// position.
func (t *Table) Replace(name string, replacement Matcher) error {
	idx, err := t.indexOf(name)
	if err != nil {
		return err
	}
	t.matchers[idx] = replacement
	t.reindex()
	return nil
}

// Append adds newMatchers to the end of the table.
func (t *Table) Append(newMatchers ...Matcher) {
	t.matchers = append(t.matchers, newMatchers...)
	t.reindex()
}

func (t *Table) indexOf(name string) (int, error) {
	for i, m := range t.matchers {
		if m.Name == name {
			return i, nil
		}
	}
	return -1, &DialectBuildError{Message: "lexer patch anchor not found: " + name}
}

// DialectBuildError reports a programmer/configuration error discovered
// while assembling a lexer or dialect (spec §7: "DialectBuildError").
type DialectBuildError struct {
	Message string
}

func (e *DialectBuildError) Error() string { return e.Message }
