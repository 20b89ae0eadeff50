package dialect

import "github.com/leapstack-labs/sqlgrammar/pkg/grammar"

// SegmentGenerator lazily builds a grammar the first time it's needed,
// given the dialect it's being expanded for (spec §4.G).
type SegmentGenerator func(d *Dialect) grammar.Matchable

// UnknownGrammarError reports that Library.Copy was asked to overlay a name
// that isn't registered.
type UnknownGrammarError struct{ Name string }

func (e *UnknownGrammarError) Error() string { return "dialect: unknown grammar " + e.Name }

// NotAlternationError reports that Library.Copy was asked to overlay a
// grammar that isn't a *grammar.OneOf (only alternations support the
// insert/remove/replace-terminators overlay, spec §4.G).
type NotAlternationError struct{ Name string }

func (e *NotAlternationError) Error() string {
	return "dialect: grammar " + e.Name + " is not an alternation, cannot Copy"
}

// Library is a dialect's named grammar table: concrete Matchables plus
// lazily-built SegmentGenerators, resolved by name (spec §4.G).
type Library struct {
	entries    map[string]grammar.Matchable
	generators map[string]SegmentGenerator
}

func newLibrary() *Library {
	return &Library{entries: make(map[string]grammar.Matchable), generators: make(map[string]SegmentGenerator)}
}

func (l *Library) clone() *Library {
	out := newLibrary()
	for k, v := range l.entries {
		out.entries[k] = v
	}
	for k, v := range l.generators {
		out.generators[k] = v
	}
	return out
}

func (l *Library) get(name string) (grammar.Matchable, bool) {
	m, ok := l.entries[name]
	return m, ok
}

// Extend registers a new grammar entry (spec §4.G: "add(entries)"); it does
// not require the name to be previously unset, but is named distinctly from
// Replace to document intent at call sites — adding new vocabulary versus
// overriding inherited vocabulary.
func (l *Library) Extend(name string, m grammar.Matchable) {
	l.entries[name] = m
	delete(l.generators, name)
}

// ExtendGenerator registers a lazily-built grammar, resolved on the first
// Dialect.Expand call or Lookup that needs it.
func (l *Library) ExtendGenerator(name string, gen SegmentGenerator) {
	l.generators[name] = gen
}

// Replace swaps an existing (or new) entry wholesale — grammar inheritance
// is whole-entry replacement, spec §4.G: "There is no partial merge except
// for the explicit copy method."
func (l *Library) Replace(name string, m grammar.Matchable) {
	l.entries[name] = m
	delete(l.generators, name)
}

func (l *Library) expand(d *Dialect) error {
	for name, gen := range l.generators {
		l.entries[name] = gen(d)
		delete(l.generators, name)
	}
	return nil
}

// OneOfOverlay is the in-progress result of Library.Copy: a mutable clone
// of an alternation's elements, terminators and exclude, which Build()
// registers under a (possibly new) name (spec §4.G: "the explicit copy
// method on alternations, which accepts insert, remove, and replace lists
// that are applied in a single pass").
type OneOfOverlay struct {
	lib         *Library
	elements    []grammar.Matchable
	terminators []grammar.Matchable
	exclude     grammar.Matchable
}

// Copy clones the alternation registered as name for overlay editing. It
// fails if name isn't registered or isn't a *grammar.OneOf.
func (l *Library) Copy(name string) (*OneOfOverlay, error) {
	m, ok := l.entries[name]
	if !ok {
		return nil, &UnknownGrammarError{Name: name}
	}
	oneOf, ok := m.(*grammar.OneOf)
	if !ok {
		return nil, &NotAlternationError{Name: name}
	}
	elements := make([]grammar.Matchable, len(oneOf.Elements))
	copy(elements, oneOf.Elements)
	terminators := make([]grammar.Matchable, len(oneOf.Terminators))
	copy(terminators, oneOf.Terminators)
	return &OneOfOverlay{lib: l, elements: elements, terminators: terminators, exclude: oneOf.Exclude}, nil
}

// InsertBefore inserts els at pos in the overlay's element list (pos
// clamped to the list length, i.e. out-of-range appends at the end).
func (o *OneOfOverlay) InsertBefore(pos int, els ...grammar.Matchable) *OneOfOverlay {
	if pos < 0 || pos > len(o.elements) {
		pos = len(o.elements)
	}
	out := make([]grammar.Matchable, 0, len(o.elements)+len(els))
	out = append(out, o.elements[:pos]...)
	out = append(out, els...)
	out = append(out, o.elements[pos:]...)
	o.elements = out
	return o
}

// Remove deletes every occurrence of target (compared by identity) from
// the overlay's element list.
func (o *OneOfOverlay) Remove(target grammar.Matchable) *OneOfOverlay {
	out := o.elements[:0:0]
	for _, e := range o.elements {
		if e != target {
			out = append(out, e)
		}
	}
	o.elements = out
	return o
}

// ReplaceTerminators swaps the overlay's terminator list wholesale.
func (o *OneOfOverlay) ReplaceTerminators(ts []grammar.Matchable) *OneOfOverlay {
	o.terminators = ts
	return o
}

// Exclude sets the overlay's exclude matcher.
func (o *OneOfOverlay) Exclude(m grammar.Matchable) *OneOfOverlay {
	o.exclude = m
	return o
}

// Build constructs the overlay's *grammar.OneOf and registers it under
// name, replacing whatever was previously there (often the same name the
// overlay was copied from, for an in-place extension; occasionally a new
// name, for a variant grammar that keeps the original too).
func (o *OneOfOverlay) Build(name string) grammar.Matchable {
	built := grammar.NewOneOf(o.elements...)
	built.Terminators = o.terminators
	built.Exclude = o.exclude
	o.lib.Replace(name, built)
	return built
}
