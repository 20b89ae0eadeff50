package grammar

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/sqlgrammar/pkg/segment"
	"github.com/leapstack-labs/sqlgrammar/pkg/syntax"
)

// StringParser succeeds on a single code token whose raw equals Template
// case-insensitively, producing Newtype(Kind) (spec §4.E).
type StringParser struct {
	base
	Template string
	Kind     syntax.Kind

	upper string
}

// NewStringParser builds a StringParser. optional marks the combinator as
// skippable inside an enclosing Sequence without failing it.
func NewStringParser(template string, kind syntax.Kind, optional bool) *StringParser {
	return &StringParser{base: newBase(optional), Template: template, Kind: kind, upper: strings.ToUpper(template)}
}

func (p *StringParser) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return map[string]struct{}{p.upper: {}}, syntax.Empty, true
}

func (p *StringParser) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	if idx >= len(tokens) {
		return Failed(idx), nil
	}
	tok := tokens[idx]
	if !tok.IsCode() || strings.ToUpper(tok.Raw()) != p.upper {
		return Failed(idx), nil
	}
	return MatchResult{Start: idx, End: idx + 1, Matched: true, Wrap: NewtypeWrap(p.Kind)}, nil
}

// MultiStringParser is the union of several StringParsers sharing one Kind
// (spec §4.E).
type MultiStringParser struct {
	base
	Templates []string
	Kind      syntax.Kind

	uppers map[string]struct{}
}

func NewMultiStringParser(templates []string, kind syntax.Kind, optional bool) *MultiStringParser {
	uppers := make(map[string]struct{}, len(templates))
	for _, t := range templates {
		uppers[strings.ToUpper(t)] = struct{}{}
	}
	return &MultiStringParser{base: newBase(optional), Templates: templates, Kind: kind, uppers: uppers}
}

func (p *MultiStringParser) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return p.uppers, syntax.Empty, true
}

func (p *MultiStringParser) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	if idx >= len(tokens) {
		return Failed(idx), nil
	}
	tok := tokens[idx]
	if !tok.IsCode() {
		return Failed(idx), nil
	}
	if _, ok := p.uppers[strings.ToUpper(tok.Raw())]; !ok {
		return Failed(idx), nil
	}
	return MatchResult{Start: idx, End: idx + 1, Matched: true, Wrap: NewtypeWrap(p.Kind)}, nil
}

// RegexParser succeeds on a single token whose raw, uppercased, fully
// matches Template and does not match AntiTemplate (spec §4.E).
type RegexParser struct {
	base
	Template     *regexp.Regexp
	AntiTemplate *regexp.Regexp
	Kind         syntax.Kind
}

func NewRegexParser(template, antiTemplate *regexp.Regexp, kind syntax.Kind, optional bool) *RegexParser {
	return &RegexParser{base: newBase(optional), Template: template, AntiTemplate: antiTemplate, Kind: kind}
}

// Simple returns ok=false: a regex precheck has no finite literal-raw or
// kind set to offer OneOf.
func (p *RegexParser) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return nil, syntax.Empty, false
}

func (p *RegexParser) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	if idx >= len(tokens) {
		return Failed(idx), nil
	}
	tok := tokens[idx]
	if !tok.IsCode() {
		return Failed(idx), nil
	}
	upper := strings.ToUpper(tok.Raw())
	loc := p.Template.FindStringIndex(upper)
	if loc == nil || loc[0] != 0 || loc[1] != len(upper) {
		return Failed(idx), nil
	}
	if p.AntiTemplate != nil && p.AntiTemplate.MatchString(upper) {
		return Failed(idx), nil
	}
	return MatchResult{Start: idx, End: idx + 1, Matched: true, Wrap: NewtypeWrap(p.Kind)}, nil
}

// TypedParser succeeds when the token at idx already has kind TemplateKind,
// producing Newtype(NewKind) (spec §4.E).
type TypedParser struct {
	base
	TemplateKind syntax.Kind
	NewKind      syntax.Kind
}

func NewTypedParser(templateKind, newKind syntax.Kind, optional bool) *TypedParser {
	return &TypedParser{base: newBase(optional), TemplateKind: templateKind, NewKind: newKind}
}

func (p *TypedParser) Simple(ctx *ParseContext, crumbs []string) (map[string]struct{}, syntax.Set, bool) {
	return nil, syntax.Single(p.TemplateKind), true
}

func (p *TypedParser) Match(tokens []*segment.Segment, idx int, ctx *ParseContext) (MatchResult, error) {
	if idx >= len(tokens) {
		return Failed(idx), nil
	}
	if tokens[idx].Kind() != p.TemplateKind {
		return Failed(idx), nil
	}
	return MatchResult{Start: idx, End: idx + 1, Matched: true, Wrap: NewtypeWrap(p.NewKind)}, nil
}
