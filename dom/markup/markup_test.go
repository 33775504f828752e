package markup_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/markup"
	"github.com/npillmayer/guistyle/dom/style/cascade"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `
<html>
<head>
  <style>
    .bar { color: blue }
    #open { width: 40px }
  </style>
</head>
<body>
  <div id="toolbar" class="bar main">
    <p id="open" tabindex="2">Open
      file</p>
    <p tabindex="0">Save</p>
  </div>
  <div draggable="true" focusable="true">
    loose text
    <img src="12">
    <p tabindex="-1">Quit</p>
  </div>
</body>
</html>`

func TestParseStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	doc, errs, err := markup.ParseString(page)
	require.NoError(t, err)
	assert.Empty(t, errs)
	expected := strings.Join([]string{
		`<body>`,
		`    <div id="toolbar" class="bar main">`,
		`        <p id="open" tabindex="2">`,
		`            Open file`,
		`        </p>`,
		`        <p tabindex="0">`,
		`            Save`,
		`        </p>`,
		`    </div>`,
		`    <div tabindex="0" draggable="true">`,
		`        <p>`,
		`            loose text`,
		`        </p>`,
		`        <img>`,
		`            image(12)`,
		`        </img>`,
		`        <p tabindex="-1">`,
		`            Quit`,
		`        </p>`,
		`    </div>`,
		`</body>`,
		``,
	}, "\n")
	if diff := cmp.Diff(expected, doc.Dom.HTMLString()); diff != "" {
		t.Errorf("unexpected Dom (-want +got):\n%s", diff)
	}
	assert.Equal(t, 7, doc.Dom.EstimatedTotalChildren())
	assert.Equal(t, []dom.NodeID{2, 3, 4}, doc.Dom.TabOrder())
}

func TestParseStylesheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	doc, _, err := markup.ParseString(page)
	require.NoError(t, err)
	require.Len(t, doc.Css.Stylesheets, 1)
	assert.Equal(t, 2, doc.Css.RuleCount())
	root := cascade.NewStyler(doc.Css).Style(doc.Dom, nil)
	open, ok := styledtree.Find(root, 2)
	require.True(t, ok)
	w, ok := css.ExactValueOf[css.LayoutWidth](open.PropertyValue(css.PropWidth))
	require.True(t, ok)
	assert.Equal(t, css.ConstPx(40), w.Inner)
	c, ok := css.ExactValueOf[css.StyleTextColor](open.PropertyValue(css.PropTextColor))
	require.True(t, ok, "color is inherited from .bar")
	assert.Equal(t, css.RGB(0, 0, 255), c.Inner)
}

func TestInlineStyleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	doc, errs, err := markup.ParseString(`<body><div style="width: 5px; colour: red"></div></body>`)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], css.ErrUnknownProperty))
	div := doc.Dom.Children[0]
	assert.Len(t, div.Root.InlineStyle, 1)
}

func TestUnknownElementsAreDivs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	doc, _, err := markup.ParseString(`<body><ul class="list"><li>one</li></ul><script>x()</script></body>`)
	require.NoError(t, err)
	require.Len(t, doc.Dom.Children, 1, "script is skipped")
	list := doc.Dom.Children[0]
	assert.Equal(t, "div.list", list.Root.String())
	require.Len(t, list.Children, 1)
	assert.Equal(t, dom.KindDiv, list.Children[0].Root.Type.Kind())
	assert.Equal(t, `p "one"`, list.Children[0].Children[0].Root.String())
	t.Logf("\n%s", doc.Dom.Dump())
}
