package tmplfile

import "golang.org/x/text/width"

// Marker is a PositionMarker (spec §3, §4.B): a span that records both the
// source and templated ranges it covers, plus the synthesised working
// line/column in the *fixed* file currently being built. Markers are cheap
// to clone — the File pointer is shared, never deep-copied.
type Marker struct {
	SourceRange    Range
	TemplatedRange Range
	File           *TemplatedFile
	WorkingLine    int
	WorkingCol     int
}

// IsPoint reports whether the marker spans zero bytes in both frames (a
// zero-width meta token's marker).
func (m Marker) IsPoint() bool {
	return m.SourceRange.IsEmpty() && m.TemplatedRange.IsEmpty()
}

// Union returns the smallest marker covering m and other. Both must share
// the same backing File (spec §3: "a parent marker must be derivable from a
// single templated file"); if they don't, the first marker's File wins and
// the caller is responsible for having validated that invariant upstream.
func Union(markers ...Marker) Marker {
	if len(markers) == 0 {
		return Marker{}
	}
	srcRanges := make([]Range, len(markers))
	tmplRanges := make([]Range, len(markers))
	for i, m := range markers {
		srcRanges[i] = m.SourceRange
		tmplRanges[i] = m.TemplatedRange
	}
	first := markers[0]
	return Marker{
		SourceRange:    union(srcRanges),
		TemplatedRange: union(tmplRanges),
		File:           first.File,
		WorkingLine:    first.WorkingLine,
		WorkingCol:     first.WorkingCol,
	}
}

func union(rs []Range) Range {
	// Skip empty (point) ranges from the span computation unless all are
	// empty, mirroring the intuition that a child's point markers (e.g.
	// inserted meta tokens) shouldn't widen the parent's coverage past its
	// non-empty children.
	var nonEmpty []Range
	for _, r := range rs {
		if !r.IsEmpty() {
			nonEmpty = append(nonEmpty, r)
		}
	}
	if len(nonEmpty) == 0 {
		return UnionRanges(rs...)
	}
	return UnionRanges(nonEmpty...)
}

// Less orders markers by working position: line first, then column. Used
// by spec §3's "markers are ordered and equated by working position."
func (m Marker) Less(other Marker) bool {
	if m.WorkingLine != other.WorkingLine {
		return m.WorkingLine < other.WorkingLine
	}
	return m.WorkingCol < other.WorkingCol
}

// Equal reports whether two markers share the same working position.
func (m Marker) Equal(other Marker) bool {
	return m.WorkingLine == other.WorkingLine && m.WorkingCol == other.WorkingCol
}

// InferNextPosition advances (line, col) past raw, treating '\n' as
// resetting the column to 1 and incrementing the line (spec §4.B: "standard:
// lines 1-indexed, columns 1-indexed, '\n' advances line and resets column
// to 1"). Each rune advances col by its East Asian display width (1 for
// ordinary/narrow runes, 2 for wide/fullwidth runes) rather than by byte
// count, so working columns stay aligned for fixed-width terminal output
// over identifiers containing CJK characters.
func InferNextPosition(raw string, line, col int) (int, int) {
	for _, r := range raw {
		if r == '\n' {
			line++
			col = 1
		} else {
			col += runeWidth(r)
		}
	}
	return line, col
}

// runeWidth returns r's East Asian display width: 2 for wide/fullwidth
// runes, 1 otherwise.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// NextMarker builds the marker for a segment immediately following this one
// in the working file, given the segment's raw text and its source/templated
// span.
func (m Marker) NextMarker(raw string, sourceRange, templatedRange Range) Marker {
	line, col := InferNextPosition(m.priorRaw(), m.WorkingLine, m.WorkingCol)
	_ = raw // raw of the *next* segment does not affect its own start position
	return Marker{
		SourceRange:    sourceRange,
		TemplatedRange: templatedRange,
		File:           m.File,
		WorkingLine:    line,
		WorkingCol:     col,
	}
}

// priorRaw recovers the source text this marker covers, used to advance the
// working position past it. Point markers contribute no text.
func (m Marker) priorRaw() string {
	if m.File == nil || m.SourceRange.IsEmpty() {
		return ""
	}
	if m.SourceRange.Start < 0 || m.SourceRange.End > len(m.File.SourceStr) {
		return ""
	}
	return m.File.SourceStr[m.SourceRange.Start:m.SourceRange.End]
}
