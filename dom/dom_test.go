package dom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/guistyle/callbacks"
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *dom.Dom {
	return dom.Body().
		WithChild(dom.Div().WithID("toolbar").WithClass("bar").
			WithChild(dom.Label("Open")).
			WithChild(dom.Label("Save"))).
		WithChild(dom.Div().WithClass("content").
			WithChild(dom.Text(7)).
			WithChild(dom.Image(3)))
}

func TestEstimatedChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := dom.Div()
	if d.EstimatedTotalChildren() != 0 {
		t.Errorf("expected empty div to have no children, is %d", d.EstimatedTotalChildren())
	}
	child := dom.Div().WithChild(dom.Label("a")).WithChild(dom.Label("b"))
	d.AddChild(child)
	assert.Equal(t, 3, d.EstimatedTotalChildren())
	d.AddChild(dom.Div())
	assert.Equal(t, 4, d.EstimatedTotalChildren())
	assert.Equal(t, 5, d.NodeCount())
	assert.Equal(t, 7, sample().NodeCount())
	d.AddChild(nil)
	assert.Equal(t, 4, d.EstimatedTotalChildren())
}

func TestHTMLString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := dom.Div().WithID("a").WithClass("b").WithClass("c").
		WithTabIndex(dom.AutoTabIndex()).
		WithChild(dom.Label("x < y")).
		WithChild(dom.Div())
	expected := strings.Join([]string{
		`<div id="a" class="b c" tabindex="0">`,
		`    <p>`,
		`        x &lt; y`,
		`    </p>`,
		`    <div />`,
		`</div>`,
		``,
	}, "\n")
	if diff := cmp.Diff(expected, d.HTMLString()); diff != "" {
		t.Errorf("unexpected HTML (-want +got):\n%s", diff)
	}
}

func TestHTMLAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	red, err := css.ParsePropertyByKey("color", "red")
	require.NoError(t, err)
	noop := func(*callbacks.RefAny, *callbacks.CallbackInfo) callbacks.UpdateScreen {
		return callbacks.DontRedraw
	}
	d := dom.Image(1).
		WithDraggable(true).
		WithCallback(callbacks.Hover(callbacks.HoverMouseOver), noop, nil).
		WithDynamicOverride("fg", red).
		WithInlineStyle("width: 10px")
	html := d.HTMLString()
	for _, attr := range []string{
		`draggable="true"`,
		`callbacks="Hover(MouseOver)"`,
		`css-overrides="fg=#ff0000;"`,
		`style="width: 10px"`,
		`image(1)`,
	} {
		if !strings.Contains(html, attr) {
			t.Errorf("expected %q in HTML, is\n%s", attr, html)
		}
	}
	assert.Less(t, strings.Index(html, "css-overrides"), strings.Index(html, "style="))
}

func TestInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := dom.Div()
	errs := d.AddInlineStyle("width: 10px;\n colour: red; padding: 1px 2px")
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0].Err, css.ErrUnknownProperty))
	assert.Equal(t, 2, errs[0].Line)
	// width plus four padding longhands
	assert.Len(t, d.Root.InlineStyle, 5)
	assert.Equal(t, "width: 10px", d.Root.InlineStyle[0].String())
}

func TestTabIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := dom.Div()
	if d.Root.IsFocusable() {
		t.Error("expected node without tab index not to be focusable")
	}
	assert.False(t, d.Root.TabIndex().IsJust())
	d.SetTabIndex(dom.OverrideInParent(4))
	ti, ok := d.Root.TabIndex().Get()
	require.True(t, ok)
	assert.Equal(t, 4, ti.Index())
	assert.Equal(t, -1, dom.NoKeyboardFocus().Index())
	assert.Equal(t, 0, dom.AutoTabIndex().Index())
}

func TestTabOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	nested := dom.Div().WithTabIndex(dom.NoKeyboardFocus()).
		WithChild(dom.Div().WithTabIndex(dom.AutoTabIndex()))
	d := dom.Div().
		WithChild(dom.Div().WithTabIndex(dom.AutoTabIndex())).
		WithChild(dom.Div().WithTabIndex(dom.OverrideInParent(2))).
		WithChild(nested).
		WithChild(dom.Div().WithTabIndex(dom.OverrideInParent(1)))
	// ids: 1 auto, 2 override 2, 3 no focus, 4 auto inside 3, 5 override 1
	expected := []dom.NodeID{5, 2, 1, 4}
	if diff := cmp.Diff(expected, d.TabOrder()); diff != "" {
		t.Errorf("unexpected tab order (-want +got):\n%s", diff)
	}
}

func TestWalkAndSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := sample()
	var paths []string
	d.Walk(func(id dom.NodeID, depth int, node *dom.Dom) bool {
		paths = append(paths, strings.Repeat(".", depth)+node.Root.Type.Path())
		return true
	})
	expected := []string{"body", ".div", "..p", "..p", ".div", "..p", "..img"}
	if diff := cmp.Diff(expected, paths); diff != "" {
		t.Errorf("unexpected walk (-want +got):\n%s", diff)
	}
	assert.Equal(t, []dom.NodeID{2, 3, 5}, d.Select(dom.NodeIsText))
	assert.Equal(t, []dom.NodeID{1}, d.Select(dom.NodeHasID("toolbar")))
	assert.Equal(t, []dom.NodeID{4}, d.Select(dom.NodeHasClass("content")))
	n, ok := d.Node(6)
	require.True(t, ok)
	assert.Equal(t, dom.KindImage, n.Root.Type.Kind())
	n, ok = d.Node(3)
	require.True(t, ok)
	s, _ := n.Root.Type.Label()
	assert.Equal(t, "Save", s)
	_, ok = d.Node(7)
	assert.False(t, ok)
}

func TestDumpAndClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := sample()
	dump := d.Dump()
	t.Logf("\n%s", dump)
	assert.True(t, strings.HasPrefix(dump, "body\n"))
	assert.Contains(t, dump, "div#toolbar.bar")
	assert.Contains(t, dump, `p "Save"`)
	c := d.Clone()
	c.Children[0].AddClass("changed")
	assert.False(t, d.Children[0].Root.HasClass("changed"))
	assert.Equal(t, d.NodeCount(), c.NodeCount())
	assert.Equal(t, d.HTMLString(), sample().HTMLString())
}

// grownLate builds body > [div.list > [div.item > [Label late]], div.footer],
// adding the label after div.item has been attached.
func grownLate() *dom.Dom {
	item := dom.Div().WithClass("item")
	list := dom.Div().WithClass("list").WithChild(item)
	body := dom.Body().WithChild(list).
		WithChild(dom.Div().WithClass("footer").WithTabIndex(dom.AutoTabIndex()))
	item.AddChild(dom.Label("late"))
	return body
}

func TestIdsAfterChildGrows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	d := grownLate()
	assert.Equal(t, 5, d.Size())
	var names []string
	seen := map[dom.NodeID]bool{}
	d.Walk(func(id dom.NodeID, _ int, node *dom.Dom) bool {
		if seen[id] {
			t.Errorf("id %v visited twice", id)
		}
		seen[id] = true
		names = append(names, node.Root.String())
		return true
	})
	assert.Equal(t, []string{"body", "div.list", "div.item", `p "late"`, "div.footer"}, names)
	footer, ok := d.Node(4)
	require.True(t, ok)
	assert.True(t, footer.Root.HasClass("footer"))
	late, ok := d.Node(3)
	require.True(t, ok)
	assert.Equal(t, dom.KindLabel, late.Root.Type.Kind())
	_, ok = d.Node(5)
	assert.False(t, ok)
	assert.Equal(t, []dom.NodeID{4}, d.TabOrder())
	assert.Equal(t, []dom.NodeID{4}, d.Select(dom.NodeHasClass("footer")))
	// skipped subtrees still count
	var after []dom.NodeID
	d.Walk(func(id dom.NodeID, _ int, node *dom.Dom) bool {
		after = append(after, id)
		return !node.Root.HasClass("list")
	})
	assert.Equal(t, []dom.NodeID{0, 1, 4}, after)
}
