package fix

import "github.com/leapstack-labs/sqlgrammar/pkg/segment"

// AnchorEditInfo groups every LintFix targeting one anchor id (spec §3):
// counts per edit kind, the ordered fix list (deduplicated), a pointer to
// the first Replace (for deduplication against a second Replace on the same
// anchor), and accumulated source fixes from position-preserving edits.
type AnchorEditInfo struct {
	AnchorID uint64

	Fixes []LintFix

	ReplaceCount      int
	CreateBeforeCount int
	CreateAfterCount  int
	DeleteCount       int

	FirstReplace *LintFix

	SourceFixes []segment.SourceFix
}

// Valid reports whether this anchor's fix set is applicable (spec §4.E's
// "AnchorEditInfo... Valid if (a) ≤1 fix total, or (b) exactly one
// CreateBefore + one CreateAfter").
func (a *AnchorEditInfo) Valid() bool {
	if len(a.Fixes) <= 1 {
		return true
	}
	return a.CreateBeforeCount == 1 && a.CreateAfterCount == 1 &&
		a.ReplaceCount == 0 && a.DeleteCount == 0 && len(a.Fixes) == 2
}

// add appends f to this anchor's fix list, updating the per-kind counters
// and FirstReplace/SourceFixes bookkeeping. Identical fixes (per
// LintFix.equal) are silently deduplicated.
func (a *AnchorEditInfo) add(f LintFix) {
	for _, existing := range a.Fixes {
		if existing.equal(f) {
			return
		}
	}
	a.Fixes = append(a.Fixes, f)
	switch f.Kind {
	case Replace:
		a.ReplaceCount++
		if a.FirstReplace == nil {
			ref := f
			a.FirstReplace = &ref
		}
	case CreateBefore:
		a.CreateBeforeCount++
	case CreateAfter:
		a.CreateAfterCount++
	case Delete:
		a.DeleteCount++
	}
	if f.isPositionPreserving() {
		a.SourceFixes = append(a.SourceFixes, f.Anchor.SourceFixes()...)
	}
}

// groupByAnchor bins fixes into one AnchorEditInfo per distinct anchor id,
// preserving first-seen order of anchors (spec §4.J step 1).
func groupByAnchor(fixes []LintFix) ([]*AnchorEditInfo, map[uint64]*AnchorEditInfo) {
	var order []*AnchorEditInfo
	byID := make(map[uint64]*AnchorEditInfo)
	for _, f := range fixes {
		id := f.AnchorID()
		info, ok := byID[id]
		if !ok {
			info = &AnchorEditInfo{AnchorID: id}
			byID[id] = info
			order = append(order, info)
		}
		info.add(f)
	}
	return order, byID
}
