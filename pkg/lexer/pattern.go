package lexer

import (
	"regexp"
	"strings"
)

// Pattern is the thing a Matcher tries at the current cursor position. Spec
// §4.D: "Patterns are one of: literal string, anchored regex, or a native
// scanner closure operating on a cursor."
type Pattern interface {
	// TryMatch attempts to consume a prefix of c.Rest(). It returns the
	// matched text and true on success, or ("", false) on failure. It must
	// not mutate c.
	TryMatch(c Cursor) (string, bool)
}

// literalPattern matches a single fixed string, case-sensitively (lexer-
// level literals are symbols like "::" or "->"; case-insensitive keyword
// matching happens later, in the grammar's StringParser).
type literalPattern struct{ s string }

// Literal returns a Pattern matching the exact literal s.
func Literal(s string) Pattern { return literalPattern{s: s} }

func (p literalPattern) TryMatch(c Cursor) (string, bool) {
	if strings.HasPrefix(c.Rest(), p.s) {
		return p.s, true
	}
	return "", false
}

// regexPattern matches the longest prefix accepted by an anchored regex.
type regexPattern struct{ re *regexp.Regexp }

// Regex returns a Pattern backed by re, which must be anchored at the start
// (callers should pass a pattern beginning with `^`).
func Regex(re *regexp.Regexp) Pattern { return regexPattern{re: re} }

// MustRegex compiles pattern (auto-anchoring it at the start if the caller
// omitted the `^`) and returns a Pattern.
func MustRegex(pattern string) Pattern {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^(?:" + pattern + ")"
	}
	return Regex(regexp.MustCompile(pattern))
}

func (p regexPattern) TryMatch(c Cursor) (string, bool) {
	loc := p.re.FindStringIndex(c.Rest())
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return "", false
	}
	return c.Rest()[:loc[1]], true
}

// nativePattern wraps an arbitrary scanner closure, for matchers whose
// logic isn't expressible as a single regex (e.g. nested-brace macro
// scanning, doubled-quote string escaping).
type nativePattern struct {
	fn func(c Cursor) (string, bool)
}

// Native returns a Pattern backed by a scanner closure.
func Native(fn func(c Cursor) (string, bool)) Pattern {
	return nativePattern{fn: fn}
}

func (p nativePattern) TryMatch(c Cursor) (string, bool) {
	return p.fn(c)
}
