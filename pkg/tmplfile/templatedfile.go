package tmplfile

import (
	"sort"

	"github.com/google/uuid"
)

// SliceKind classifies one RawFileSlice of the mapping between source and
// templated text (spec §4.B).
type SliceKind int

const (
	// Literal means the source and templated text are identical for this
	// slice (spec glossary: "literal slice").
	Literal SliceKind = iota
	// Templated means the slice was produced by template expansion and has
	// no byte-for-byte counterpart in the source.
	Templated
	// BlockStart marks the opening tag of a templated control block
	// (e.g. "{% if %}").
	BlockStart
	// BlockEnd marks the closing tag of a templated control block.
	BlockEnd
	// BlockMid marks a tag between a block's start and end (e.g. "{% else %}").
	BlockMid
)

// RawFileSlice records one contiguous span of source text and how it maps
// into the templated text.
type RawFileSlice struct {
	Raw          string
	Kind         SliceKind
	SourceIdx    int // byte offset into SourceStr where this slice begins
	TemplatedIdx int // byte offset into TemplatedStr where this slice begins
}

// SourceRange returns the source-frame range this slice covers.
func (s RawFileSlice) SourceRange() Range {
	return Range{Start: s.SourceIdx, End: s.SourceIdx + len(s.Raw)}
}

// TemplatedFile is the immutable three-way record linking source text, its
// templated expansion, and the mapping between them (spec §3, §4.B).
type TemplatedFile struct {
	ID uuid.UUID

	SourceStr    string
	TemplatedStr string
	isTemplated  bool

	// RawSlices is ordered by SourceIdx and must cover [0, len(SourceStr))
	// with no gaps, per the invariant that every source byte is classified.
	RawSlices []RawFileSlice

	// templatedSlices mirrors RawSlices ordered by TemplatedIdx, built once
	// for TemplatedToSourceRange's binary search.
	templatedSlices []RawFileSlice
}

// NewUntemplated builds a TemplatedFile for source text with no templating
// step: the templated text equals the source, and the whole file is one
// literal slice.
func NewUntemplated(source string) *TemplatedFile {
	return New(source, source, []RawFileSlice{{Raw: source, Kind: Literal, SourceIdx: 0, TemplatedIdx: 0}})
}

// New builds a TemplatedFile from explicit source text, templated text, and
// a raw-slice mapping between them. Slices must be ordered by SourceIdx.
func New(sourceStr, templatedStr string, slices []RawFileSlice) *TemplatedFile {
	sorted := make([]RawFileSlice, len(slices))
	copy(sorted, slices)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SourceIdx < sorted[j].SourceIdx })

	byTemplated := make([]RawFileSlice, len(sorted))
	copy(byTemplated, sorted)
	sort.SliceStable(byTemplated, func(i, j int) bool { return byTemplated[i].TemplatedIdx < byTemplated[j].TemplatedIdx })

	return &TemplatedFile{
		ID:              uuid.New(),
		SourceStr:       sourceStr,
		TemplatedStr:    templatedStr,
		isTemplated:     sourceStr != templatedStr || len(slices) != 1 || slices[0].Kind != Literal,
		RawSlices:       sorted,
		templatedSlices: byTemplated,
	}
}

// IsTemplated reports whether this file underwent any template expansion.
func (f *TemplatedFile) IsTemplated() bool { return f.isTemplated }

// Str returns the text the lexer should scan: the templated expansion when
// one exists, otherwise the raw source (spec §4.D: "uses its templated_str
// if templated else source_str").
func (f *TemplatedFile) Str() string {
	if f.isTemplated {
		return f.TemplatedStr
	}
	return f.SourceStr
}

// GetLinePosOfCharPos returns the 1-indexed (line, column) for a byte offset
// in either the source frame (useSource=true) or templated frame.
func (f *TemplatedFile) GetLinePosOfCharPos(offset int, useSource bool) (line, col int) {
	text := f.TemplatedStr
	if useSource {
		text = f.SourceStr
	}
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// SlicesOverlapping returns every RawFileSlice whose templated span
// overlaps the given templated range, in source order.
func (f *TemplatedFile) SlicesOverlapping(templatedRange Range) []RawFileSlice {
	var out []RawFileSlice
	for _, s := range f.RawSlices {
		tr := Range{Start: s.TemplatedIdx, End: s.TemplatedIdx + templatedSliceLen(s, f)}
		if tr.Overlaps(templatedRange) {
			out = append(out, s)
		}
	}
	return out
}

// templatedSliceLen returns how many templated bytes a slice occupies: for
// a Literal slice this equals len(Raw); for Templated/Block* slices it is
// derived from the next slice's TemplatedIdx (best-effort, since templated
// expansions need not equal their source length).
func templatedSliceLen(s RawFileSlice, f *TemplatedFile) int {
	if s.Kind == Literal {
		return len(s.Raw)
	}
	next := -1
	for _, o := range f.templatedSlices {
		if o.TemplatedIdx > s.TemplatedIdx && (next == -1 || o.TemplatedIdx < next) {
			next = o.TemplatedIdx
		}
	}
	if next == -1 {
		return len(f.TemplatedStr) - s.TemplatedIdx
	}
	return next - s.TemplatedIdx
}

// IsSourceSliceLiteral reports whether source==templated for the given
// source-frame range: true only if every RawFileSlice overlapping it is
// Literal (spec glossary: "literal slice"; used by the fix engine to reject
// edits inside templated regions).
func (f *TemplatedFile) IsSourceSliceLiteral(sourceRange Range) bool {
	for _, s := range f.RawSlices {
		if s.SourceRange().Overlaps(sourceRange) && s.Kind != Literal {
			return false
		}
	}
	return true
}

// TemplatedToSourceRange translates a templated-frame range back to the
// source frame. ok is false when the range falls inside a non-literal
// (Templated/Block*) slice with no stable source counterpart.
func (f *TemplatedFile) TemplatedToSourceRange(templatedRange Range) (Range, bool) {
	overlapping := f.SlicesOverlapping(templatedRange)
	if len(overlapping) == 0 {
		return Range{}, false
	}
	start, end := -1, -1
	for _, s := range overlapping {
		if s.Kind != Literal {
			return Range{}, false
		}
		sEnd := s.SourceIdx + len(s.Raw)
		if start == -1 || s.SourceIdx < start {
			start = s.SourceIdx
		}
		if sEnd > end {
			end = sEnd
		}
	}
	return Range{Start: start, End: end}, true
}
