package segment

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
	"github.com/leapstack-labs/sqlgrammar/pkg/tmplfile"
	"golang.org/x/text/unicode/norm"
)

// SourceFix records that an edit's position markers were recomputed from a
// prior segment without changing its raw text (spec §4.J.2: "If only source
// fixes apply ... the edit does not invalidate positions").
type SourceFix struct {
	Raw            string
	SourceSlice    tmplfile.Range
	TemplatedSlice tmplfile.Range
}

// Segment is one element of the parse tree: either a token (leaf, IsNode
// false, Raw set, Children nil) or a node (IsNode true, Children set, Raw
// computed lazily as the concatenation of descendant raws).
//
// Segments are created once and shared; an "edit" always yields a new
// Segment rather than mutating an existing one (spec §3 Lifecycle).
type Segment struct {
	id         uint64
	kind       syntax.Kind
	classTypes syntax.Set
	pos        *tmplfile.Marker
	isNode     bool

	// token-only
	raw string

	// node-only
	children    []*Segment
	dialectTag  string
	sourceFixes []SourceFix

	// lazy caches, valid only for nodes; computed on first access since a
	// parse is single-threaded (spec §5) so no synchronisation is needed.
	rawCache             *string
	descendantTypesCache *syntax.Set
	codeIndicesCache     []int
	hashCache            *uint64
}

// NewToken creates a leaf segment. pos may be nil for a wholly synthetic
// token awaiting position assignment by the fix engine.
func NewToken(tables *Tables, kind syntax.Kind, raw string, pos *tmplfile.Marker) *Segment {
	return &Segment{
		id:         tables.NextID(),
		kind:       kind,
		classTypes: syntax.ClassTypes(kind),
		pos:        pos,
		raw:        raw,
	}
}

// NewNode creates a node segment wrapping children. If pos is nil, the
// node's position is derived as the union of its children's positions
// (spec §3 invariant (iii)).
func NewNode(tables *Tables, kind syntax.Kind, children []*Segment, dialectTag string, pos *tmplfile.Marker) *Segment {
	n := &Segment{
		id:         tables.NextID(),
		kind:       kind,
		classTypes: syntax.ClassTypes(kind),
		children:   children,
		dialectTag: dialectTag,
		pos:        pos,
	}
	if pos == nil {
		n.pos = unionChildPositions(children)
	}
	return n
}

func unionChildPositions(children []*Segment) *tmplfile.Marker {
	var markers []tmplfile.Marker
	for _, c := range children {
		if c.pos != nil {
			markers = append(markers, *c.pos)
		}
	}
	if len(markers) == 0 {
		return nil
	}
	u := tmplfile.Union(markers...)
	return &u
}

// ID returns the segment's arena-assigned identity, unique within one parse.
func (s *Segment) ID() uint64 { return s.id }

// Kind returns the segment's SyntaxKind.
func (s *Segment) Kind() syntax.Kind { return s.kind }

// ClassTypes returns the segment's own kind plus implied supertypes.
func (s *Segment) ClassTypes() syntax.Set { return s.classTypes }

// IsType reports whether k is in the segment's class-type set.
func (s *Segment) IsType(k syntax.Kind) bool { return s.classTypes.Contains(k) }

// IsTypeIn reports whether any kind in ks is in the segment's class-type set.
func (s *Segment) IsTypeIn(ks syntax.Set) bool { return s.classTypes.Intersects(ks) }

// IsNode reports whether this segment is a node (vs. a token leaf).
func (s *Segment) IsNode() bool { return s.isNode || s.children != nil }

// Position returns the segment's marker, or nil if unassigned.
func (s *Segment) Position() *tmplfile.Marker { return s.pos }

// DialectTag returns the dialect that produced this node ("" for tokens and
// for nodes whose grammar is dialect-agnostic).
func (s *Segment) DialectTag() string { return s.dialectTag }

// SourceFixes returns the accumulated source fixes attached to this node.
func (s *Segment) SourceFixes() []SourceFix { return s.sourceFixes }

// Children returns the segment's direct children (nil for tokens).
func (s *Segment) Children() []*Segment { return s.children }

// Raw returns the segment's literal text: the token's stored raw, or for a
// node, the concatenation of all descendant raws (spec §3 invariant (i)),
// cached after first computation.
func (s *Segment) Raw() string {
	if !s.IsNode() {
		return s.raw
	}
	if s.rawCache != nil {
		return *s.rawCache
	}
	var b strings.Builder
	for _, c := range s.children {
		b.WriteString(c.Raw())
	}
	out := b.String()
	s.rawCache = &out
	return out
}

// IsMeta reports whether this is a zero-width layout token (Indent, Dedent,
// Implicit, or EndOfFile).
func (s *Segment) IsMeta() bool {
	return !s.IsNode() && s.kind.IsMeta()
}

// IsWhitespace reports whether this leaf is whitespace.
func (s *Segment) IsWhitespace() bool {
	return !s.IsNode() && s.kind == syntax.Whitespace
}

// IsComment reports whether this leaf is an inline or block comment.
func (s *Segment) IsComment() bool {
	return !s.IsNode() && (s.kind == syntax.InlineComment || s.kind == syntax.BlockComment)
}

// IsCode reports whether this segment counts as "code" for the purposes of
// allow_gaps / code_indices: not whitespace, not a comment, not meta (spec
// §3 invariant (iv)). Nodes are code iff they have at least one code child
// (an empty or all-trivia node is not code).
func (s *Segment) IsCode() bool {
	if s.IsMeta() || s.IsWhitespace() || s.IsComment() {
		return false
	}
	if !s.IsNode() {
		return true
	}
	for _, c := range s.children {
		if c.IsCode() {
			return true
		}
	}
	return false
}

// IsTemplated reports whether any byte of this segment's source span falls
// in a non-literal region of its templated file.
func (s *Segment) IsTemplated() bool {
	if s.pos == nil || s.pos.File == nil {
		return false
	}
	return !s.pos.File.IsSourceSliceLiteral(s.pos.SourceRange)
}

// CodeIndices returns the indices of direct children that are code (spec
// §4.C: "code_indices (indices of children that are code)"), cached.
func (s *Segment) CodeIndices() []int {
	if !s.IsNode() {
		return nil
	}
	if s.codeIndicesCache != nil {
		return s.codeIndicesCache
	}
	var out []int
	for i, c := range s.children {
		if c.IsCode() {
			out = append(out, i)
		}
	}
	s.codeIndicesCache = out
	return out
}

// DirectDescendantTypeSet returns the union of direct children's class-type
// sets (not recursive).
func (s *Segment) DirectDescendantTypeSet() syntax.Set {
	var out syntax.Set
	for _, c := range s.children {
		out = out.Union(c.classTypes)
	}
	return out
}

// DescendantTypeSet returns the union of every descendant's (including
// self's) class-type set, cached.
func (s *Segment) DescendantTypeSet() syntax.Set {
	if !s.IsNode() {
		return s.classTypes
	}
	if s.descendantTypesCache != nil {
		return *s.descendantTypesCache
	}
	out := s.classTypes
	for _, c := range s.children {
		out = out.Union(c.DescendantTypeSet())
	}
	s.descendantTypesCache = &out
	return out
}

// GetRawSegments returns every leaf token under this segment, in order.
func (s *Segment) GetRawSegments() []*Segment {
	if !s.IsNode() {
		return []*Segment{s}
	}
	var out []*Segment
	for _, c := range s.children {
		out = append(out, c.GetRawSegments()...)
	}
	return out
}

// HashValue returns a structural hash over (kind, raw, source position),
// cached after first computation. Identifier-kind leaves are NFC-normalised
// before hashing, so two differently-composed spellings of the same quoted
// identifier hash identically.
func (s *Segment) HashValue() uint64 {
	if s.hashCache != nil {
		return *s.hashCache
	}
	h := fnv.New64a()
	h.Write([]byte(s.kind.String()))
	h.Write([]byte{0})
	h.Write([]byte(s.hashableRaw()))
	h.Write([]byte{0})
	if s.pos != nil {
		h.Write([]byte(strconv.Itoa(s.pos.SourceRange.Start)))
		h.Write([]byte{','})
		h.Write([]byte(strconv.Itoa(s.pos.SourceRange.End)))
	}
	v := h.Sum64()
	s.hashCache = &v
	return v
}

// hashableRaw returns Raw(), NFC-normalising it first if this is an
// identifier-kind leaf so that a precomposed codepoint and its decomposed
// combining-character equivalent hash the same.
func (s *Segment) hashableRaw() string {
	raw := s.Raw()
	if !s.IsNode() && identifierKinds.Contains(s.kind) {
		return norm.NFC.String(raw)
	}
	return raw
}

// Equal compares two segments by id; if ids differ it falls back to
// (kind, working position, raw) so a tree reconstructed without ids (e.g.
// from a serialised fixture) still compares equal to the original (spec §9:
// "Segment ids and equality").
func (s *Segment) Equal(other *Segment) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.id == other.id {
		return true
	}
	if s.kind != other.kind {
		return false
	}
	if s.Raw() != other.Raw() {
		return false
	}
	sp, op := s.pos, other.pos
	if (sp == nil) != (op == nil) {
		return false
	}
	if sp != nil && !sp.Equal(*op) {
		return false
	}
	return true
}

// FirstNonWhitespaceRawUpper returns the upper-cased raw of the first
// non-whitespace leaf under this segment, or "" if none exists. Used by
// rules that sniff a clause's leading keyword without a full kind match.
func (s *Segment) FirstNonWhitespaceRawUpper() string {
	for _, leaf := range s.GetRawSegments() {
		if leaf.IsWhitespace() || leaf.IsMeta() {
			continue
		}
		return strings.ToUpper(leaf.raw)
	}
	return ""
}

// Edit returns a new token with the same kind and position as s but a
// replaced raw (and, optionally, accumulated source fixes), per spec §4.C:
// "edit(new_id, new_raw?, source_fixes?) returns a new token with the same
// kind and position." Only valid for tokens.
func (s *Segment) Edit(tables *Tables, newRaw *string, sourceFixes []SourceFix) *Segment {
	raw := s.raw
	if newRaw != nil {
		raw = *newRaw
	}
	out := NewToken(tables, s.kind, raw, s.pos)
	out.sourceFixes = sourceFixes
	return out
}

// WithChildren returns a new node of the same kind with replaced children,
// per spec §4.C: "new(new_children) returns a node of the same kind with
// new children." The position is recomputed as the union of the new
// children's positions.
func (s *Segment) WithChildren(tables *Tables, newChildren []*Segment) *Segment {
	return NewNode(tables, s.kind, newChildren, s.dialectTag, nil)
}

// WithPosition returns a shallow copy of s carrying a different marker,
// used by the fix engine's position-recomputation pass.
func (s *Segment) WithPosition(pos *tmplfile.Marker) *Segment {
	cp := *s
	cp.pos = pos
	return &cp
}

// WithSourceFixes returns a shallow copy of s with source fixes attached
// without altering raw or position (spec §4.J.2 position-preserving path).
func (s *Segment) WithSourceFixes(fixes []SourceFix) *Segment {
	cp := *s
	cp.sourceFixes = append(append([]SourceFix{}, s.sourceFixes...), fixes...)
	return &cp
}
