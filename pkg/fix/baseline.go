package fix

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BaselineVersion is the only version this package accepts when decoding a
// baseline file (spec §6: "Version mismatch is a hard error").
const BaselineVersion = "1"

// VersionError reports that a decoded baseline file's version doesn't match
// BaselineVersion.
type VersionError struct {
	Got, Want string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("baseline: version mismatch: got %q, want %q", e.Got, e.Want)
}

// BaselineFile is the persisted suppression-count record of spec §6: per
// normalised file path, a count of violations previously seen for each rule
// code. The surrounding linter owns tracking/comparison logic (a Non-goal
// here); this package only gives the wire format a concrete, round-trippable
// home, grounded on original_source/crates/cli-lib/src/baseline.rs.
type BaselineFile struct {
	Version string
	Files   map[string]map[string]int
}

// NewBaselineFile returns an empty BaselineFile at the current version.
func NewBaselineFile() *BaselineFile {
	return &BaselineFile{Version: BaselineVersion, Files: map[string]map[string]int{}}
}

// Record sets the violation count for ruleCode in path, normalising path
// first (spec §6: "Paths normalise backslashes to forward slashes and strip
// any leading './'").
func (b *BaselineFile) Record(path, ruleCode string, count int) {
	if b.Files == nil {
		b.Files = map[string]map[string]int{}
	}
	norm := NormalizePath(path)
	rules, ok := b.Files[norm]
	if !ok {
		rules = map[string]int{}
		b.Files[norm] = rules
	}
	rules[ruleCode] = count
}

// NormalizePath applies spec §6's path normalisation rule.
func NormalizePath(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	return strings.TrimPrefix(p, "./")
}

// baselineWire is the JSON-level shape; encoding/json sorts map[string]...
// keys on marshal, which is what gives the format its "entries are ordered
// for stable diffs" property (spec §6) without any explicit sort here.
type baselineWire struct {
	Version string                    `json:"version"`
	Files   map[string]map[string]int `json:"files"`
}

// MarshalJSON renders b in the spec §6 wire format.
func (b *BaselineFile) MarshalJSON() ([]byte, error) {
	version := b.Version
	if version == "" {
		version = BaselineVersion
	}
	return json.Marshal(baselineWire{Version: version, Files: b.Files})
}

// UnmarshalJSON parses the spec §6 wire format, normalising every file path
// and rejecting a version other than BaselineVersion.
func (b *BaselineFile) UnmarshalJSON(data []byte) error {
	var wire baselineWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Version != BaselineVersion {
		return &VersionError{Got: wire.Version, Want: BaselineVersion}
	}
	files := make(map[string]map[string]int, len(wire.Files))
	for path, rules := range wire.Files {
		files[NormalizePath(path)] = rules
	}
	b.Version = wire.Version
	b.Files = files
	return nil
}
