package cssom

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style"
	"github.com/npillmayer/guistyle/dom/w3cdom"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple the tokenizing of CSS text from the construction
// of the typed object model, we introduce an interface for source
// stylesheets. Clients will have to provide a concrete implementation of
// this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	Rules() []Rule           // all the rules of a stylesheet
	Errors() []*ParseError   // problems found while tokenizing
	Location(int) (int, int) // line and column for a byte offset
}

// Rule is the type source stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string           // the prelude / selectors of the rule
	Properties() []string       // property keys in source order, e.g. "margin-top"
	Value(int) string           // value of the i-th property, e.g. "15px"
	IsImportant(int) bool       // is the i-th property marked as important?
	Offset() int                // byte offset of the rule in the source
	PropertyOffset(int) int     // byte offset of the i-th property
	Snippet() string            // source text of the rule
	PropertySnippet(int) string // source text of the i-th declaration
}

// ParseError is a problem found while parsing CSS text. Parsing never
// aborts; the offending rule or declaration is dropped.
type ParseError struct {
	Line, Column int    // position in the source, starting at 1
	Snippet      string // offending source text
	Err          error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %v (in %q)", e.Line, e.Column, e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError at a byte offset of a source stylesheet.
func NewParseError(src StyleSheet, offset int, snippet string, err error) *ParseError {
	line, col := src.Location(offset)
	return &ParseError{Line: line, Column: col, Snippet: snippet, Err: err}
}

// Compile turns a source stylesheet into a typed stylesheet.
// A rule with a bad selector is dropped, as is a bad or unknown
// declaration. Selector lists 'a, b' produce one rule block per selector.
func Compile(src StyleSheet) (*Stylesheet, []*ParseError) {
	sheet := &Stylesheet{}
	errs := append([]*ParseError{}, src.Errors()...)
	for _, rule := range src.Rules() {
		decls, declErrs := compileDeclarations(src, rule)
		errs = append(errs, declErrs...)
		for _, sel := range splitSelectorList(rule.Selector()) {
			path, err := ParseSelector(sel)
			if err != nil {
				tracer().Infof("dropping rule: %v", err)
				errs = append(errs, NewParseError(src, rule.Offset(), rule.Snippet(), err))
				continue
			}
			sheet.Rules = append(sheet.Rules, RuleBlock{Path: path, Declarations: decls})
		}
	}
	tracer().Debugf("compiled stylesheet with %d rule blocks, %d errors", len(sheet.Rules), len(errs))
	return sheet, errs
}

func splitSelectorList(prelude string) []string {
	var sels []string
	for _, s := range strings.Split(prelude, ",") {
		sels = append(sels, strings.TrimSpace(s))
	}
	return sels
}

func compileDeclarations(src StyleSheet, rule Rule) ([]Declaration, []*ParseError) {
	var decls []Declaration
	var errs []*ParseError
	for i, key := range rule.Properties() {
		ds, err := CompileDeclaration(key, rule.Value(i))
		if err != nil {
			tracer().Infof("dropping declaration: %v", err)
			errs = append(errs, NewParseError(src, rule.PropertyOffset(i), rule.PropertySnippet(i), err))
			continue
		}
		if rule.IsImportant(i) {
			tracer().Debugf("!important is not supported and ignored for %s", key)
		}
		decls = append(decls, ds...)
	}
	return decls, errs
}

// CompileDeclaration parses a textual declaration. Shorthands expand to
// one declaration per longhand. Dynamic values are supported for
// longhands only.
func CompileDeclaration(key, value string) ([]Declaration, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if t, ok := css.PropertyTypeFromKey(key); ok {
		d, err := ParseDeclaration(t, value)
		if err != nil {
			return nil, err
		}
		return []Declaration{d}, nil
	}
	if !style.IsShorthand(key) {
		return nil, fmt.Errorf("%w: %q", css.ErrUnknownProperty, key)
	}
	if IsDynamicValue(value) {
		return nil, fmt.Errorf("%w: shorthand %s cannot be dynamic", ErrDynamicSyntax, key)
	}
	props, err := style.ExpandDeclaration(key, value)
	if err != nil {
		return nil, err
	}
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Static(p)
	}
	return decls, nil
}

// IsParseError checks if err is a ParseError caused by target.
func IsParseError(err error, target error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && errors.Is(perr.Err, target)
}

// --- Matching --------------------------------------------------------------

// MatchingRules returns all rule blocks of c selecting node n, ordered
// from weakest to strongest.
func (c *Css) MatchingRules(n w3cdom.Node) []MatchedRule {
	var matched []MatchedRule
	if c == nil {
		return matched
	}
	for si, sheet := range c.Stylesheets {
		if sheet == nil {
			continue
		}
		for ri := range sheet.Rules {
			rule := &sheet.Rules[ri]
			if rule.Path.Matches(n) {
				matched = append(matched, MatchedRule{
					Rule:        rule,
					Specificity: rule.Path.Specificity(),
					Sheet:       si,
					Index:       ri,
				})
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Less(matched[j]) })
	return matched
}
