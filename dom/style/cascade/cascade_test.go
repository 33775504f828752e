package cascade_test

import (
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style/cascade"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/style/stylesheets"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/guistyle/dom/w3cdom"
	"github.com/npillmayer/guistyle/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styler(t *testing.T, source string) *cascade.Styler {
	c, errs := stylesheets.FromString(source)
	require.Empty(t, errs)
	return cascade.NewStyler(c)
}

func find(t *testing.T, root *tree.Node[*styledtree.StyNode], id dom.NodeID) *styledtree.StyNode {
	sn, ok := styledtree.Find(root, id)
	require.True(t, ok, "no node %v", id)
	return sn
}

func textColor(t *testing.T, sn *styledtree.StyNode) css.ColorU {
	c, ok := css.ExactValueOf[css.StyleTextColor](sn.PropertyValue(css.PropTextColor))
	require.True(t, ok)
	return c.Inner
}

func TestClassBeatsType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `div { color: red } .big { color: blue }`)
	root := s.Style(dom.Div().WithClass("big"), nil)
	require.NotNil(t, root)
	c := textColor(t, styledtree.Node(root))
	assert.Equal(t, css.ColorU{R: 0, G: 0, B: 255, A: 255}, c)
	// order of appearance does not matter
	s = styler(t, `.big { color: blue } div { color: red }`)
	root = s.Style(dom.Div().WithClass("big"), nil)
	assert.Equal(t, css.RGB(0, 0, 255), textColor(t, styledtree.Node(root)))
}

func TestInheritThroughParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `body { font-size: 16px } p { font-size: inherit }`)
	d := dom.Body().WithChild(dom.Div().WithChild(dom.Label("hi")))
	root := s.Style(d, nil)
	p := find(t, root, 2)
	local, ok := p.Styles().Property(css.PropFontSize)
	require.True(t, ok, "expected p to declare font-size")
	fs, ok := css.ExactValueOf[css.StyleFontSize](local)
	require.True(t, ok, "expected inherit to be resolved, is %v", local)
	assert.Equal(t, css.Px(16), fs.Inner)
	// the same value is found by cascading lookup
	prop, err := cascade.GetProperty(find(t, root, 1), css.PropFontSize)
	require.NoError(t, err)
	assert.True(t, prop.Equal(local))
}

func TestInheritAtRootIsDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `body { width: inherit; color: inherit }`)
	root := s.Style(dom.Body(), nil)
	body := styledtree.Node(root)
	w := body.PropertyValue(css.PropWidth)
	assert.True(t, w.Equal(css.DefaultFor(css.PropWidth)), "width is %v", w)
	assert.Equal(t, css.DefaultColor(), textColor(t, body))
}

func TestNonInheritedDoesNotCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `body { width: 100px; color: red }`)
	root := s.Style(dom.Body().WithChild(dom.Div()), nil)
	div := find(t, root, 1)
	w, err := cascade.GetProperty(div, css.PropWidth)
	require.NoError(t, err)
	assert.True(t, w.Equal(css.DefaultFor(css.PropWidth)), "width is %v", w)
	assert.Equal(t, css.RGB(255, 0, 0), textColor(t, div))
	_, ok := cascade.GetLocalProperty(div.Styles(), css.PropTextColor)
	assert.False(t, ok)
}

func TestNthChildPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `div div:nth-child(3n+1) { color: red }`)
	d := dom.Div()
	for i := 0; i < 7; i++ {
		d.AddChild(dom.Div())
	}
	root := s.Style(d, nil)
	var matched []int
	for i, ch := range root.Children() {
		if _, ok := styledtree.Node(ch).Styles().Property(css.PropTextColor); ok {
			matched = append(matched, i+1)
		}
	}
	assert.Equal(t, []int{1, 4, 7}, matched)
}

func TestInlineAndDynamicOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `#a { color: red } .dyn { width: [[ w | 10px ]] }`)
	green, err := css.ParsePropertyByKey("width", "42px")
	require.NoError(t, err)
	d := dom.Body().
		WithChild(dom.Div().WithID("a").WithInlineStyle("color: green")).
		WithChild(dom.Div().WithClass("dyn")).
		WithChild(dom.Div().WithClass("dyn").WithDynamicOverride("w", green))
	root := s.Style(d, nil)
	assert.Equal(t, css.RGB(0, 128, 0), textColor(t, find(t, root, 1)))
	width := func(id dom.NodeID) css.PixelValue {
		px, ok := css.PixelValueOf(find(t, root, id).PropertyValue(css.PropWidth))
		require.True(t, ok)
		return px
	}
	assert.Equal(t, css.Px(10), width(2))
	assert.Equal(t, css.Px(42), width(3))
}

type pseudo map[dom.NodeID]w3cdom.PseudoState

func (p pseudo) PseudoState(id dom.NodeID) w3cdom.PseudoState { return p[id] }

func TestHoverRestyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `.btn { color: black } .btn:hover { color: white }`)
	d := dom.Body().WithChild(dom.Div().WithClass("btn"))
	root := s.Style(d, nil)
	btn := find(t, root, 1)
	assert.Equal(t, css.RGB(0, 0, 0), textColor(t, btn))
	s.Restyle(root, pseudo{1: w3cdom.Hover})
	assert.Equal(t, css.RGB(255, 255, 255), textColor(t, btn))
	s.Restyle(root, nil)
	assert.Equal(t, css.RGB(0, 0, 0), textColor(t, btn))
}

func TestEmptyDom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := cascade.NewStyler(&cssom.Css{})
	assert.Nil(t, s.Style(nil, nil))
	_, err := cascade.GetProperty(nil, css.PropWidth)
	assert.ErrorIs(t, err, cascade.ErrNoStyles)
}

func TestNativeStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := cascade.NewStyler(stylesheets.Native())
	root := s.Style(dom.Body().WithChild(dom.Image(1)), nil)
	assert.Equal(t, cascade.BlockMode|cascade.InnerBlockMode, cascade.Display(styledtree.Node(root)))
	img := find(t, root, 1)
	assert.True(t, cascade.Display(img).Contains(cascade.InlineMode))
}
