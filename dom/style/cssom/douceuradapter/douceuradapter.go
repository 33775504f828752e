/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

CSS text is tokenized by github.com/aymerick/douceur. Douceur stops at
the first syntax error and does not report source positions, so the
adapter first cuts the text into top-level rules, remembering their byte
offsets, and hands each rule to douceur separately. A rule douceur
rejects is re-parsed declaration by declaration: bad declarations are
reported with line and column and dropped, the rest of the rule
survives.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func tracer() tracing.Trace {
	return tracing.Select("guistyle.cssom")
}

// Errors reported for CSS text.
var (
	ErrSyntax = errors.New("CSS syntax error")
	ErrAtRule = errors.New("at-rules are not supported")
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	rules      []*Rule
	errs       []*cssom.ParseError
	lineStarts []int
}

var _ cssom.StyleSheet = &CSSStyles{}

// Parse tokenizes CSS text. Parsing never fails as a whole; problems are
// collected and available with Errors().
func Parse(text string) *CSSStyles {
	sheet := &CSSStyles{lineStarts: lineStarts(text)}
	for _, chunk := range splitTopLevel(text) {
		sheet.parseRule(text[chunk.start:chunk.end], chunk.start)
	}
	tracer().Debugf("douceur: %d rules, %d errors", len(sheet.rules), len(sheet.errs))
	return sheet
}

// ParseInline tokenizes the declarations of an inline style, e.g.
// "width: 100px; color: red". The returned rule has an empty selector.
func ParseInline(text string) (*Rule, []*cssom.ParseError) {
	sheet := &CSSStyles{lineStarts: lineStarts(text)}
	r := &Rule{offset: 0, snippet: text}
	sheet.parseDeclarations(r, text, 0)
	return r, sheet.errs
}

// Empty checks if this stylesheet contains any rules.
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r
	}
	return rules
}

// Errors returns problems found while tokenizing.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Errors() []*cssom.ParseError {
	return sheet.errs
}

// Location returns line and column, both starting at 1, for a byte offset.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Location(offset int) (int, int) {
	line := sort.SearchInts(sheet.lineStarts, offset+1) - 1
	if line < 0 {
		return 1, offset + 1
	}
	return line + 1, offset - sheet.lineStarts[line] + 1
}

func (sheet *CSSStyles) errorAt(offset int, snippet string, err error) {
	perr := cssom.NewParseError(sheet, offset, strings.TrimSpace(snippet), err)
	tracer().Infof("%v", perr)
	sheet.errs = append(sheet.errs, perr)
}

func (sheet *CSSStyles) parseRule(chunk string, offset int) {
	open := strings.IndexByte(chunk, '{')
	head := strings.TrimSpace(stripComments(chunk))
	if strings.HasPrefix(head, "@") {
		sheet.errorAt(offset, firstLine(chunk), ErrAtRule)
		return
	}
	if open < 0 {
		sheet.errorAt(offset, chunk, fmt.Errorf("%w: expected a rule block", ErrSyntax))
		return
	}
	trimmed := strings.TrimRightFunc(chunk, isSpace)
	if !strings.HasSuffix(trimmed, "}") {
		sheet.errorAt(offset, chunk, fmt.Errorf("%w: unterminated rule block", ErrSyntax))
		return
	}
	prelude := strings.TrimSpace(stripComments(chunk[:open]))
	if prelude == "" {
		sheet.errorAt(offset, chunk, fmt.Errorf("%w: missing selector", ErrSyntax))
		return
	}
	r := &Rule{prelude: prelude, offset: offset, snippet: chunk}
	body := chunk[open+1 : len(trimmed)-1]
	if sheet.parseWhole(r, chunk, body, offset+open+1) {
		sheet.rules = append(sheet.rules, r)
		return
	}
	tracer().Debugf("douceur rejected rule %q, parsing declarations one by one", prelude)
	sheet.parseDeclarations(r, body, offset+open+1)
	sheet.rules = append(sheet.rules, r)
}

// parseWhole lets douceur parse a complete rule. It reports false if
// douceur fails or the result cannot be aligned with the source text.
func (sheet *CSSStyles) parseWhole(r *Rule, chunk, body string, bodyOffset int) bool {
	parsed, err := parser.Parse(chunk)
	if err != nil || len(parsed.Rules) != 1 || parsed.Rules[0].Kind != css.QualifiedRule {
		return false
	}
	segs := nonBlank(body, splitDeclarations(body))
	decls := parsed.Rules[0].Declarations
	if len(segs) != len(decls) {
		return false
	}
	for i, d := range decls {
		r.decls = append(r.decls, declaration{
			Declaration: *d,
			offset:      bodyOffset + segs[i].start,
			snippet:     body[segs[i].start:segs[i].end],
		})
	}
	return true
}

func (sheet *CSSStyles) parseDeclarations(r *Rule, body string, bodyOffset int) {
	for _, seg := range nonBlank(body, splitDeclarations(body)) {
		text := body[seg.start:seg.end]
		decls, err := parser.ParseDeclarations(text + ";")
		if err == nil && (len(decls) != 1 || decls[0].Value == "") {
			err = errors.New("expected 'key: value'")
		}
		if err != nil {
			sheet.errorAt(bodyOffset+seg.start, text, fmt.Errorf("%w: %v", ErrSyntax, err))
			continue
		}
		r.decls = append(r.decls, declaration{
			Declaration: *decls[0],
			offset:      bodyOffset + seg.start,
			snippet:     text,
		})
	}
}

// --- Rules -------------------------------------------------------------------

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	prelude string
	offset  int
	snippet string
	decls   []declaration
}

type declaration struct {
	css.Declaration
	offset  int
	snippet string
}

var _ cssom.Rule = &Rule{}

// Selector returns the prelude / selectors of the rule.
func (r *Rule) Selector() string {
	return r.prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.decls))
	for _, d := range r.decls {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the value of the i-th property, e.g. "15px"
func (r *Rule) Value(i int) string {
	return r.decls[i].Value
}

// IsImportant returns true if the i-th property is marked as important ("!").
func (r *Rule) IsImportant(i int) bool {
	return r.decls[i].Important
}

// Offset returns the byte offset of the rule in the source text.
func (r *Rule) Offset() int { return r.offset }

// PropertyOffset returns the byte offset of the i-th declaration.
func (r *Rule) PropertyOffset(i int) int { return r.decls[i].offset }

// Snippet returns the source text of the rule.
func (r *Rule) Snippet() string { return r.snippet }

// PropertySnippet returns the source text of the i-th declaration.
func (r *Rule) PropertySnippet(i int) string { return strings.TrimSpace(r.decls[i].snippet) }

// --- Scanning ----------------------------------------------------------------

type span struct {
	start, end int
}

// scanner state shared by the splitting functions: comments and strings
// are skipped, parentheses and braces nest.
type scanState struct {
	quote     byte
	inComment bool
}

// step advances over text[i] and reports whether the byte is structural,
// i.e. outside of comments and strings. It returns the next index.
func (s *scanState) step(text string, i int) (int, bool) {
	c := text[i]
	switch {
	case s.inComment:
		if c == '*' && i+1 < len(text) && text[i+1] == '/' {
			s.inComment = false
			return i + 2, false
		}
		return i + 1, false
	case s.quote != 0:
		if c == '\\' {
			return i + 2, false
		}
		if c == s.quote {
			s.quote = 0
		}
		return i + 1, false
	case c == '/' && i+1 < len(text) && text[i+1] == '*':
		s.inComment = true
		return i + 2, false
	case c == '"' || c == '\'':
		s.quote = c
		return i + 1, false
	}
	return i + 1, true
}

// splitTopLevel cuts CSS text into rules: 'prelude { ... }' or statements
// ending with ';' at the top level.
func splitTopLevel(text string) []span {
	var chunks []span
	var st scanState
	start, depth := -1, 0
	for i := 0; i < len(text); {
		c := text[i]
		next, structural := st.step(text, i)
		if start < 0 && structural && !isSpace(rune(c)) {
			start = i
		}
		if start >= 0 && structural {
			switch c {
			case '{':
				depth++
			case '}':
				depth--
				if depth <= 0 {
					chunks = append(chunks, span{start, next})
					start, depth = -1, 0
				}
			case ';':
				if depth == 0 {
					chunks = append(chunks, span{start, next})
					start = -1
				}
			}
		}
		i = next
	}
	if start >= 0 && strings.TrimSpace(stripComments(text[start:])) != "" {
		chunks = append(chunks, span{start, len(text)})
	}
	return chunks
}

// splitDeclarations splits a rule body at semicolons outside of strings,
// comments and parentheses.
func splitDeclarations(body string) []span {
	var segs []span
	var st scanState
	start, depth := 0, 0
	for i := 0; i < len(body); {
		c := body[i]
		next, structural := st.step(body, i)
		if structural {
			switch c {
			case '(', '[':
				depth++
			case ')', ']':
				depth--
			case ';':
				if depth <= 0 {
					segs = append(segs, span{start, i})
					start, depth = next, 0
				}
			}
		}
		if next > len(body) {
			next = len(body)
		}
		i = next
	}
	return append(segs, span{start, len(body)})
}

func nonBlank(text string, spans []span) []span {
	var r []span
	for _, s := range spans {
		if strings.TrimSpace(stripComments(text[s.start:s.end])) != "" {
			for s.start < s.end && isSpace(rune(text[s.start])) {
				s.start++
			}
			r = append(r, s)
		}
	}
	return r
}

func stripComments(s string) string {
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			return s
		}
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			return s[:i]
		}
		s = s[:i] + " " + s[i+2+j+2:]
	}
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// --- HTML --------------------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head)
	return append(sheets, extractStyles(body)...)
}

func extractStyles(h *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	if h == nil {
		return sheets
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			sheets = append(sheets, Parse(ch.FirstChild.Data))
		}
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
