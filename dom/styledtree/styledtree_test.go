package styledtree_test

import (
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/guistyle/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hovered dom.NodeID

func (h hovered) PseudoState(id dom.NodeID) w3cdom.PseudoState {
	if id == dom.NodeID(h) {
		return w3cdom.Hover
	}
	return 0
}

func TestBuildMirrorsDom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := dom.Body().
		WithChild(dom.Div().WithID("a").
			WithChild(dom.Label("x")).
			WithChild(dom.Label("y"))).
		WithChild(dom.Image(1).WithClass("pic"))
	root := styledtree.Build(d, nil, hovered(3))
	require.NotNil(t, root)
	assert.Nil(t, styledtree.Node(root).ParentNode())
	assert.Equal(t, "body", styledtree.Node(root).NodeName())
	assert.Equal(t, 1, styledtree.Node(root).SiblingCount())
	assert.Equal(t, uint32(d.NodeCount()), root.Rank)
	//
	y, ok := styledtree.Find(root, 3)
	require.True(t, ok)
	assert.Equal(t, "p", y.NodeName())
	assert.Equal(t, 1, y.ChildIndex())
	assert.Equal(t, 2, y.SiblingCount())
	assert.True(t, y.PseudoState().Has(w3cdom.Hover))
	assert.Equal(t, []string{"a"}, y.ParentNode().IDs())
	//
	img, ok := styledtree.Find(root, 4)
	require.True(t, ok)
	assert.Equal(t, []string{"pic"}, img.Classes())
	assert.Equal(t, dom.KindImage, img.NodeData().Type.Kind())
	children := styledtree.Node(root).ChildNodes()
	assert.Equal(t, 2, children.Length())
	assert.Equal(t, "[div img]", children.String())
	assert.Nil(t, children.Item(2))
	_, ok = styledtree.Find(root, 5)
	assert.False(t, ok)
}

func TestPropertyValueCascades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := dom.Body().WithChild(dom.Div().WithChild(dom.Label("hi")))
	defaults := style.InitializeDefaultPropertyValues(nil)
	root := styledtree.Build(d, defaults, nil)
	body := styledtree.Node(root)
	big := css.Exactly(css.PropFontSize, css.PxOf[css.StyleFontSize](16))
	group := style.NewPropertyGroup(style.PGText)
	group.Parent = defaults.Group(style.PGText)
	group.Set(big)
	pm := style.NewPropertyMap()
	pm.SetGroup(group)
	body.SetStyles(pm)
	//
	p, ok := styledtree.Find(root, 2)
	require.True(t, ok)
	fs := p.PropertyValue(css.PropFontSize)
	if !fs.Equal(big) {
		t.Errorf("expected font-size to be inherited from body, is %v", fs)
	}
	// width is not inherited
	w := p.ComputedStyles().PropertyValue(css.PropWidth)
	assert.True(t, w.Equal(css.DefaultFor(css.PropWidth)), "width is %v", w)
	disp, ok := css.ExactValueOf[css.LayoutDisplay](p.PropertyValue(css.PropDisplay))
	require.True(t, ok)
	assert.Equal(t, css.DisplayBlock, disp)
	t.Logf("\n%s", styledtree.Dump(root))
}
