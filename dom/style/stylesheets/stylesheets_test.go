package stylesheets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/style/stylesheets"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeParsesCleanly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	sheet, errs := stylesheets.FromString(stylesheets.NativeSource())
	for _, err := range errs {
		t.Errorf("native stylesheet: %v", err)
	}
	native := stylesheets.Native()
	assert.Equal(t, sheet.RuleCount(), native.RuleCount())
	assert.False(t, native.IsEmpty())
}

func declarationStrings(c *cssom.Css) []string {
	var r []string
	for _, sheet := range c.Stylesheets {
		for _, rule := range sheet.Rules {
			for _, d := range rule.Declarations {
				r = append(r, rule.Path.String()+" "+d.String())
			}
		}
	}
	return r
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	inputs := []string{
		`div { color: red } .big { color: blue }`,
		`body > div.box:hover { padding: 10px 20px; border: 2px dashed #336699; }`,
		`p:nth-child(2n+1) { width: [[ w | 50% ]]; background: linear-gradient(to right, red, blue 50%) }`,
		`#x * { -azul-box-shadow-top: 1px 2px 3px black inset; transform: rotate(45deg) }`,
		stylesheets.NativeSource(),
	}
	for _, input := range inputs {
		first, errs := stylesheets.FromString(input)
		require.Empty(t, errs, input)
		text := first.Stylesheets[0].String()
		second, errs := stylesheets.FromString(text)
		require.Empty(t, errs, text)
		if diff := cmp.Diff(declarationStrings(first), declarationStrings(second)); diff != "" {
			t.Errorf("re-parsing is not a fixed point (-first +second):\n%s", diff)
		}
		third, _ := stylesheets.FromString(second.Stylesheets[0].String())
		assert.Equal(t, text, third.Stylesheets[0].String())
	}
}

func TestPaddingShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	c, errs := stylesheets.FromString(`div { padding: 10px 20px }`)
	require.Empty(t, errs)
	want := map[css.PropertyType]float32{
		css.PropPaddingTop: 10, css.PropPaddingRight: 20,
		css.PropPaddingBottom: 10, css.PropPaddingLeft: 20,
	}
	decls := c.Stylesheets[0].Rules[0].Declarations
	require.Len(t, decls, 4)
	for _, d := range decls {
		px, ok := css.PixelValueOf(d.Property())
		require.True(t, ok)
		if px.ToPixels(0) != want[d.Type()] {
			t.Errorf("expected %s = %gpx, is %v", d.Type().Key(), want[d.Type()], px)
		}
	}
}

func TestBorderRadiusShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	c, errs := stylesheets.FromString(`div { border-radius: 4px 8px }`)
	require.Empty(t, errs)
	got := map[string]string{}
	for _, d := range c.Stylesheets[0].Rules[0].Declarations {
		got[d.Property().Key()] = d.Property().ValueString()
	}
	want := map[string]string{
		"border-top-left-radius":     "4px",
		"border-top-right-radius":    "8px",
		"border-bottom-right-radius": "4px",
		"border-bottom-left-radius":  "8px",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("border-radius: mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorsDoNotAbort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	c, errs := stylesheets.FromString(`
div { colr: red; width: 10px }
ul li { color: blue }
p { width: 10 parsecs; height: 3px }
`)
	require.Len(t, errs, 3)
	assert.Equal(t, 2, errs[0].Line)
	assert.True(t, cssom.IsParseError(errs[0], css.ErrUnknownProperty))
	assert.Equal(t, 3, errs[1].Line)
	assert.True(t, cssom.IsParseError(errs[1], cssom.ErrInvalidSelector))
	assert.Equal(t, 4, errs[2].Line)
	assert.Equal(t, "width: 10 parsecs", errs[2].Snippet)
	assert.True(t, cssom.IsParseError(errs[2], css.ErrInvalidValue))
	assert.Equal(t, 2, c.RuleCount())
}

func TestOverrideNative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	native := stylesheets.Native()
	c, errs := stylesheets.OverrideNative(`body { font-size: 20px }`)
	require.Empty(t, errs)
	require.Len(t, c.Stylesheets, 2)
	assert.Equal(t, native.RuleCount()+1, c.RuleCount())
	assert.Equal(t, native.RuleCount(), stylesheets.Native().RuleCount(), "native sheet must not change")
	multi, _ := stylesheets.FromStrings("div { width: 1px }", "p { width: 2px }")
	assert.Len(t, multi.Stylesheets, 2)
}
