package cssom

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- A minimal DOM for matching ----------------------------------------------

type testNode struct {
	name     string
	ids      []string
	classes  []string
	parent   *testNode
	children []*testNode
	state    w3cdom.PseudoState
}

func node(name string, children ...*testNode) *testNode {
	n := &testNode{name: name, children: children}
	for _, ch := range children {
		ch.parent = n
	}
	return n
}

func (n *testNode) withClass(c ...string) *testNode { n.classes = c; return n }
func (n *testNode) withID(id string) *testNode      { n.ids = []string{id}; return n }

func (n *testNode) NodeName() string  { return n.name }
func (n *testNode) IDs() []string     { return n.ids }
func (n *testNode) Classes() []string { return n.classes }
func (n *testNode) ParentNode() w3cdom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
func (n *testNode) HasChildNodes() bool         { return len(n.children) > 0 }
func (n *testNode) ChildNodes() w3cdom.NodeList { return nil }
func (n *testNode) ChildIndex() int {
	if n.parent == nil {
		return 0
	}
	for i, ch := range n.parent.children {
		if ch == n {
			return i
		}
	}
	return -1
}
func (n *testNode) SiblingCount() int {
	if n.parent == nil {
		return 1
	}
	return len(n.parent.children)
}
func (n *testNode) PseudoState() w3cdom.PseudoState       { return n.state }
func (n *testNode) ComputedStyles() w3cdom.ComputedStyles { return nil }

var _ w3cdom.Node = &testNode{}

// --- Selectors ---------------------------------------------------------------

func TestParseSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	tests := []struct {
		input string
		out   string
		n     int
	}{
		{"*", "*", 1},
		{"div", "div", 1},
		{"div.a#b", "div.a#b", 3},
		{"div > p", "div > p", 3},
		{"div>p", "div > p", 3},
		{"body   div p", "body div p", 5},
		{".a:hover", ".a:hover", 2},
		{"div:nth-child(2n+1)", "div:nth-child(2n+1)", 2},
		{"div:nth-child( even )", "div:nth-child(even)", 2},
		{"div:first-child", "div:first", 2},
		{"div:last", "div:last", 2},
	}
	for _, test := range tests {
		path, err := ParseSelector(test.input)
		require.NoError(t, err, test.input)
		if path.String() != test.out {
			t.Errorf("expected %q to print as %q, is %q", test.input, test.out, path.String())
		}
		if len(path.Selectors) != test.n {
			t.Errorf("expected %q to have %d selectors, has %d", test.input, test.n, len(path.Selectors))
		}
	}
}

func TestParseSelectorErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	for _, input := range []string{"", "> div", "div >", "span", "div:nope", "div:nth-child",
		"div:nth-child(x)", "div:nth-child(-n+3)", ".", "div:nth-child(2n+1", "div > > p"} {
		_, err := ParseSelector(input)
		if !errors.Is(err, ErrInvalidSelector) {
			t.Errorf("expected %q to be an invalid selector, is %v", input, err)
		}
	}
}

func TestNthChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	zero := NthPatternOf(0, 3)
	for pos := 1; pos <= 10; pos++ {
		if zero.Matches(pos) {
			t.Errorf("expected pattern with repeat 0 to match nothing, matches %d", pos)
		}
	}
	twoN1, err := ParseNthChild("2n+1")
	require.NoError(t, err)
	odd, _ := ParseNthChild("odd")
	for pos := 1; pos <= 10; pos++ {
		assert.Equal(t, odd.Matches(pos), twoN1.Matches(pos), "position %d", pos)
	}
	threeNminus1, err := ParseNthChild("3n-1")
	require.NoError(t, err)
	assert.Equal(t, "3n-1", threeNminus1.String())
	assert.True(t, threeNminus1.Matches(2))
	assert.False(t, threeNminus1.Matches(3))
	assert.True(t, threeNminus1.Matches(5))
	n, _ := ParseNthChild("n")
	assert.True(t, n.Matches(1))
	third, _ := ParseNthChild("3")
	assert.True(t, third.Matches(3))
	assert.False(t, third.Matches(4))
}

func TestSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	ordered := []string{"*", "div", "body div", ".a", "div.a", ".a:hover", "#x", "#x .a"}
	var prev Specificity
	for i, sel := range ordered {
		path, err := ParseSelector(sel)
		require.NoError(t, err)
		spec := path.Specificity()
		if i > 0 && !prev.Less(spec) {
			t.Errorf("expected %s to be more specific than %s, is %s vs %s", sel, ordered[i-1], spec, prev)
		}
		prev = spec
	}
}

func TestPathMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	p1 := node("p")
	p2 := node("p").withClass("note")
	img := node("img").withID("logo")
	inner := node("div", p1, p2).withClass("box")
	root := node("body", inner, img)
	tests := []struct {
		sel   string
		n     *testNode
		match bool
	}{
		{"*", root, true},
		{"body", root, true},
		{"div", root, false},
		{"body > div", inner, true},
		{"body > p", p1, false},
		{"body p", p1, true},
		{".box > .note", p2, true},
		{"div.box p.note", p1, false},
		{"#logo", img, true},
		{"body > #logo:last", img, true},
		{"p:first", p1, true},
		{"p:first", p2, false},
		{"p:nth-child(2)", p2, true},
		{"body:first", root, true},
		{"body:last", root, true},
		{"body div > p:nth-child(odd)", p1, true},
	}
	for _, test := range tests {
		path, err := ParseSelector(test.sel)
		require.NoError(t, err, test.sel)
		if path.Matches(test.n) != test.match {
			t.Errorf("expected %q matching <%s> to be %v", test.sel, test.n.name, test.match)
		}
	}
}

func TestPseudoState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	button := node("div").withClass("button")
	root := node("body", button)
	hover, _ := ParseSelector(".button:hover")
	focus, _ := ParseSelector("body :focus")
	assert.False(t, hover.Matches(button))
	button.state = w3cdom.Hover | w3cdom.Focus
	assert.True(t, hover.Matches(button))
	assert.True(t, focus.Matches(button))
	assert.False(t, focus.Matches(root))
}

// --- Declarations ------------------------------------------------------------

func TestDynamicDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	d, err := ParseDeclaration(css.PropWidth, "[[ my_width | 400px ]]")
	require.NoError(t, err)
	assert.True(t, d.IsDynamic())
	assert.Equal(t, "my_width", d.DynamicID())
	assert.True(t, d.Property().Equal(css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](400))))
	assert.Equal(t, "width: [[ my_width | 400px ]]", d.String())
	//
	invalid := []string{
		"[[ my_width | 400px",
		"my_width | 400px ]]",
		"[[ ]]",
		"[[ | ]]",
		"[[ 400px ]]",
		"[[ | 400px ]]",
		"[[ my_width ]]",
		"[[ my_width | ]]",
		"[[ 5id | 400px ]]",
		"[[ auto | 400px ]]",
	}
	for _, v := range invalid {
		if _, err := ParseDeclaration(css.PropWidth, v); !errors.Is(err, ErrDynamicSyntax) {
			t.Errorf("expected %q to be a dynamic syntax error, is %v", v, err)
		}
	}
	if _, err := ParseDeclaration(css.PropWidth, "[[ w | blue ]]"); !errors.Is(err, css.ErrInvalidValue) {
		t.Errorf("expected invalid default value to be reported, is %v", err)
	}
}

func TestCompileDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	decls, err := CompileDeclaration("margin", "1px 2px")
	require.NoError(t, err)
	assert.Len(t, decls, 4)
	for _, d := range decls {
		assert.False(t, d.IsDynamic())
	}
	_, err = CompileDeclaration("margin", "[[ m | 1px ]]")
	assert.True(t, errors.Is(err, ErrDynamicSyntax))
	_, err = CompileDeclaration("colour", "red")
	assert.True(t, errors.Is(err, css.ErrUnknownProperty))
	decls, err = CompileDeclaration("Height", " [[ h | 10px ]] ")
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, css.PropHeight, decls[0].Type())
}

// --- Stylesheets -------------------------------------------------------------

// textSheet is a tiny source stylesheet of the form 'selector { key: value; ... }',
// one rule per line.
type textSheet struct {
	src   string
	rules []Rule
}

type textRule struct {
	sel    string
	offset int
	keys   []string
	values []string
}

func (r textRule) Selector() string             { return r.sel }
func (r textRule) Properties() []string         { return r.keys }
func (r textRule) Value(i int) string           { return r.values[i] }
func (r textRule) IsImportant(int) bool         { return false }
func (r textRule) Offset() int                  { return r.offset }
func (r textRule) PropertyOffset(int) int       { return r.offset }
func (r textRule) Snippet() string              { return r.sel }
func (r textRule) PropertySnippet(i int) string { return r.keys[i] + ": " + r.values[i] }

func newTextSheet(src string) *textSheet {
	sheet := &textSheet{src: src}
	offset := 0
	for _, line := range strings.Split(src, "\n") {
		sel, body, _ := strings.Cut(line, "{")
		body = strings.TrimSuffix(strings.TrimSpace(body), "}")
		r := textRule{sel: strings.TrimSpace(sel), offset: offset}
		for _, decl := range strings.Split(body, ";") {
			if k, v, ok := strings.Cut(decl, ":"); ok {
				r.keys = append(r.keys, strings.TrimSpace(k))
				r.values = append(r.values, strings.TrimSpace(v))
			}
		}
		sheet.rules = append(sheet.rules, r)
		offset += len(line) + 1
	}
	return sheet
}

func (s *textSheet) Rules() []Rule         { return s.rules }
func (s *textSheet) Errors() []*ParseError { return nil }
func (s *textSheet) Location(offset int) (int, int) {
	return strings.Count(s.src[:offset], "\n") + 1, 1
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	src := newTextSheet(`div, p { width: 10px; colour: red }
span { width: 3px }
.a { height: [[ h | 5px ]]; padding: 1px }`)
	sheet, errs := Compile(src)
	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].Line)
	assert.True(t, IsParseError(errs[0], css.ErrUnknownProperty))
	assert.Equal(t, 2, errs[1].Line)
	assert.True(t, IsParseError(errs[1], ErrInvalidSelector))
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, "div", sheet.Rules[0].Path.String())
	assert.Equal(t, "p", sheet.Rules[1].Path.String())
	assert.Len(t, sheet.Rules[2].Declarations, 5)
	t.Logf("compiled stylesheet:\n%s", sheet)
}

func TestMatchingRulesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	first, _ := Compile(newTextSheet(`#x { width: 1px }
div.a { width: 2px }
div { width: 3px }`))
	second, _ := Compile(newTextSheet(`div { width: 4px }`))
	c := NewCss(first, second)
	assert.Equal(t, 4, c.RuleCount())
	n := node("div").withClass("a").withID("x")
	node("body", n)
	matched := c.MatchingRules(n)
	require.Len(t, matched, 4)
	widths := make([]string, len(matched))
	for i, m := range matched {
		widths[i] = m.Rule.Declarations[0].Property().ValueString()
	}
	assert.Equal(t, []string{"3px", "4px", "2px", "1px"}, widths)
	assert.Empty(t, (*Css)(nil).MatchingRules(n))
	assert.True(t, NewCss().IsEmpty())
}
