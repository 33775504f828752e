package style_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFourValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	tests := []struct {
		value string
		out   [4]string // top, right, bottom, left
	}{
		{"3px", [4]string{"3px", "3px", "3px", "3px"}},
		{"10px 20px", [4]string{"10px", "20px", "10px", "20px"}},
		{"1px 2px 3px", [4]string{"1px", "2px", "3px", "2px"}},
		{"1px 2px 3px 4px", [4]string{"1px", "2px", "3px", "4px"}},
	}
	for _, test := range tests {
		kvs, err := style.SplitCompoundProperty("padding", test.value)
		require.NoError(t, err)
		want := []style.KeyValue{
			{"padding-top", test.out[0]}, {"padding-right", test.out[1]},
			{"padding-bottom", test.out[2]}, {"padding-left", test.out[3]},
		}
		if diff := cmp.Diff(want, kvs); diff != "" {
			t.Errorf("padding: %s: mismatch (-want +got):\n%s", test.value, diff)
		}
	}
	if _, err := style.SplitCompoundProperty("margin", "1px 2px 3px 4px 5px"); !errors.Is(err, css.ErrInvalidValue) {
		t.Errorf("expected 5 values for margin to be invalid, is %v", err)
	}
}

func TestSplitBorderRadiusCorners(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("border-radius", "4px 8px")
	require.NoError(t, err)
	want := []style.KeyValue{
		{"border-top-left-radius", "4px"},
		{"border-top-right-radius", "8px"},
		{"border-bottom-right-radius", "4px"},
		{"border-bottom-left-radius", "8px"},
	}
	if diff := cmp.Diff(want, kvs); diff != "" {
		t.Errorf("border-radius mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("border-left", "red 2px dashed")
	require.NoError(t, err)
	want := []style.KeyValue{
		{"border-left-width", "2px"},
		{"border-left-style", "dashed"},
		{"border-left-color", "red"},
	}
	if diff := cmp.Diff(want, kvs); diff != "" {
		t.Errorf("border-left mismatch (-want +got):\n%s", diff)
	}
	kvs, err = style.SplitCompoundProperty("border", "thin solid")
	require.NoError(t, err)
	assert.Len(t, kvs, 12)
	assert.Equal(t, style.KeyValue{"border-top-width", "1px"}, kvs[0])
	assert.Equal(t, style.KeyValue{"border-left-style", "solid"}, kvs[7])
	assert.Equal(t, style.KeyValue{"border-bottom-color", "initial"}, kvs[10])
	_, err = style.SplitCompoundProperty("border", "solid dashed")
	assert.ErrorIs(t, err, css.ErrInvalidValue)
}

func TestSplitOthers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	kvs, err := style.SplitCompoundProperty("overflow", "hidden scroll")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{{"overflow-x", "hidden"}, {"overflow-y", "scroll"}}, kvs)
	kvs, err = style.SplitCompoundProperty("box-shadow", "0px 0px 2px black")
	require.NoError(t, err)
	assert.Len(t, kvs, 4)
	assert.Equal(t, "-azul-box-shadow-top", kvs[0].Key)
	kvs, err = style.SplitCompoundProperty("background-color", "red")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{{"background", "red"}}, kvs)
	_, err = style.SplitCompoundProperty("no-such-thing", "1px")
	assert.ErrorIs(t, err, css.ErrUnknownProperty)
	assert.True(t, style.IsShorthand("border-top"))
	assert.False(t, style.IsShorthand("border-top-width"))
}

func TestExpandDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	props, err := style.ExpandDeclaration("margin", "1px auto")
	require.NoError(t, err)
	require.Len(t, props, 4)
	if props[0].Type() != css.PropMarginTop || props[0].ValueString() != "1px" {
		t.Errorf("expected margin-top: 1px, is %v", props[0])
	}
	if !props[1].IsAuto() {
		t.Errorf("expected margin-right to be auto, is %v", props[1])
	}
	props, err = style.ExpandDeclaration("Width", "10px")
	require.NoError(t, err)
	assert.Equal(t, css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](10)), props[0])
	_, err = style.ExpandDeclaration("border", "1px solid notacolor")
	assert.ErrorIs(t, err, css.ErrInvalidValue)
}

func TestPropertyGroupCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	defaults := style.InitializeDefaultPropertyValues(nil)
	root := defaults.Group(style.PGText)
	require.NotNil(t, root)
	size := css.Exactly(css.PropFontSize, css.PxOf[css.StyleFontSize](16))
	g, forked := root.ForkOnProperty(size, true)
	require.True(t, forked)
	assert.Equal(t, root, g.Parent)
	same, forked := g.ForkOnProperty(size, true)
	if forked || same != g {
		t.Errorf("expected fork with equal value to return the group itself")
	}
	align := g.Cascade(css.PropTextAlign)
	if align != root {
		t.Errorf("expected text-align to cascade to the defaults group")
	}
	if g.Cascade(css.PropWidth) != nil {
		t.Errorf("expected width not to be found in text group chain")
	}
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	var nilmap *style.PropertyMap
	assert.Equal(t, 0, nilmap.Size())
	if _, ok := nilmap.Property(css.PropWidth); ok {
		t.Errorf("expected nil map to be empty")
	}
	pm := style.NewPropertyMap()
	pm.Add(css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](10)))
	pm.Add(css.Exactly(css.PropTextColor, css.StyleTextColor{Inner: css.RGB(255, 0, 0)}))
	assert.Equal(t, 2, pm.Size())
	p, ok := pm.Property(css.PropWidth)
	require.True(t, ok)
	assert.Equal(t, "width: 10px", p.String())
	assert.Len(t, pm.Properties(), 2)
	c, ok := pm.Color(css.PropTextColor).Get()
	require.True(t, ok)
	assert.Equal(t, "red", style.ColorString(c))
	assert.Equal(t, float32(10), pm.Pixels(css.PropWidth, 0).WithDefault(0))
	scaled := pm.ScaleForDPI(2)
	assert.Equal(t, float32(20), scaled.Pixels(css.PropWidth, 0).WithDefault(0))
	defaults := style.InitializeDefaultPropertyValues([]css.Property{
		css.Exactly(css.PropDisplay, css.DisplayFlex),
	})
	assert.Len(t, defaults.Properties(), len(css.PropertyTypes()))
	d, _ := defaults.Property(css.PropDisplay)
	assert.Equal(t, "flex", d.ValueString())
}

func TestGroupNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.dom")
	defer teardown()
	//
	for _, typ := range css.PropertyTypes() {
		found := false
		for _, name := range style.GroupNames() {
			if style.GroupNameFor(typ) == name {
				found = true
			}
		}
		if !found {
			t.Errorf("property %s has no property group", typ.Key())
		}
	}
	assert.Equal(t, style.PGBorder, style.GroupNameFor(css.PropBorderLeftColor))
	assert.Equal(t, style.PGEffects, style.GroupNameFor(css.PropOpacity))
}

func TestColorConversion(t *testing.T) {
	c := css.ColorU{R: 10, G: 20, B: 30, A: 40}
	if got := style.FromColor(style.ToColor(c)); got != c {
		t.Errorf("expected color round trip to be identity, is %v", got)
	}
	assert.Equal(t, css.Transparent, style.FromColor(nil))
	assert.Equal(t, "black", style.ColorString(color.Black))
	assert.Equal(t, css.DisplayInlineBlock, style.DisplayForTag("img"))
}
