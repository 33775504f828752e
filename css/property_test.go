package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.css")
	defer teardown()
	//
	types := css.PropertyTypes()
	require.Len(t, types, 77)
	assert.Equal(t, css.PropTextColor, types[0])
	assert.Equal(t, css.PropHyphens, types[76])
	seen := make(map[string]bool)
	for _, typ := range types {
		key := typ.Key()
		if seen[key] {
			t.Errorf("duplicate key %q", key)
		}
		seen[key] = true
		back, ok := css.PropertyTypeFromKey(key)
		if !ok || back != typ {
			t.Errorf("expected key %q to map back to %v, is %v", key, typ, back)
		}
	}
	assert.Equal(t, "background", css.PropBackgroundContent.Key())
	assert.Equal(t, "-azul-box-shadow-top", css.PropBoxShadowTop.Key())
	if _, ok := css.PropertyTypeFromKey("colour"); ok {
		t.Error("expected unknown key to be rejected")
	}
	c, ok := css.CombinedPropertyTypeFromKey("border-radius")
	require.True(t, ok)
	assert.Equal(t, []css.PropertyType{css.PropBorderTopLeftRadius, css.PropBorderTopRightRadius,
		css.PropBorderBottomRightRadius, css.PropBorderBottomLeftRadius}, c.Longhands())
}

func TestPropertyPredicates(t *testing.T) {
	assert.True(t, css.PropFontSize.IsInheritable())
	assert.False(t, css.PropWidth.IsInheritable())
	assert.True(t, css.PropWidth.CanTriggerRelayout())
	assert.False(t, css.PropTextColor.CanTriggerRelayout())
	assert.False(t, css.PropBorderTopLeftRadius.CanTriggerRelayout())
	assert.True(t, css.PropOpacity.IsGPUOnly())
	assert.True(t, css.PropTransform.IsGPUOnly())
	assert.False(t, css.PropWidth.IsGPUOnly())
}

func TestPropertyTypedAccess(t *testing.T) {
	p := css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](100))
	w, ok := css.ExactValueOf[css.LayoutWidth](p)
	if !ok || w.Inner != css.Px(100) {
		t.Errorf("expected width 100px, is %v", w)
	}
	if _, ok := css.ValueOf[css.LayoutHeight](p); ok {
		t.Error("expected width not to be readable as height")
	}
	assert.Equal(t, "width: 100px", p.String())
	assert.Panics(t, func() { css.Exactly(css.PropWidth, css.PxOf[css.LayoutHeight](1)) })
	none := css.ConstNone(css.PropTransform)
	if !none.IsNone() || none.Type() != css.PropTransform {
		t.Errorf("expected transform: none, is %v", none)
	}
	assert.Equal(t, "transform: none", none.String())
}

// Every property parsed from a sample text, for tests running over all types.
var propertySamples = map[css.PropertyType]string{
	css.PropTextColor:          "#ff0000",
	css.PropFontSize:           "12pt",
	css.PropFontFamily:         `"Noto Sans", serif`,
	css.PropTextAlign:          "center",
	css.PropLetterSpacing:      "0.5em",
	css.PropLineHeight:         "150%",
	css.PropCursor:             "pointer",
	css.PropDisplay:            "flex",
	css.PropWidth:              "50%",
	css.PropMaxHeight:          "200px",
	css.PropFlexGrow:           "1.5",
	css.PropJustifyContent:     "space-between",
	css.PropBackgroundContent:  "linear-gradient(to right, #ff0000, #0000ff 80%), image(\"logo\")",
	css.PropBackgroundPosition: "left top, 10px 20px",
	css.PropBackgroundSize:     "cover, 10px 20px",
	css.PropBackgroundRepeat:   "repeat-x, no-repeat",
	css.PropOverflowX:          "scroll",
	css.PropPaddingTop:         "4px",
	css.PropBorderTopColor:     "#00ff0080",
	css.PropBorderLeftStyle:    "dashed",
	css.PropBoxShadowTop:       "1px 2px 3px 4px #000000 inset",
	css.PropScrollbarStyle:     "12px 1px #f0f0f0 #c0c0c0",
	css.PropOpacity:            "50%",
	css.PropTransform:          "translate(10px, 5px) rotate(45deg) scale(2, 2)",
	css.PropTransformOrigin:    "10px 50%",
	css.PropMixBlendMode:       "multiply",
	css.PropFilter:             "blur(2px, 2px) opacity(50%)",
	css.PropTextShadow:         "1px 1px #808080",
	css.PropHyphens:            "none",
}

func TestParseFormatFixedPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.css")
	defer teardown()
	//
	for typ, text := range propertySamples {
		p, err := css.ParseProperty(typ, text)
		if err != nil {
			t.Errorf("cannot parse %s: %q: %v", typ.Key(), text, err)
			continue
		}
		again, err := css.ParseProperty(typ, p.ValueString())
		if err != nil {
			t.Errorf("cannot re-parse %s: %q: %v", typ.Key(), p.ValueString(), err)
			continue
		}
		if !p.Equal(again) {
			t.Errorf("expected %q to re-parse to the same value, is %q", p.String(), again.String())
		}
	}
}

func TestParseKeywordValues(t *testing.T) {
	for text, pred := range map[string]func(css.Property) bool{
		"auto":    css.Property.IsAuto,
		"None":    css.Property.IsNone,
		"inherit": css.Property.IsInherit,
		"initial": css.Property.IsInitial,
	} {
		p, err := css.ParseProperty(css.PropWidth, text)
		if err != nil || !pred(p) {
			t.Errorf("expected width: %s to parse to a keyword, is %v (%v)", text, p, err)
		}
	}
	_, err := css.ParseProperty(css.PropWidth, "wide")
	assert.ErrorIs(t, err, css.ErrInvalidValue)
	_, err = css.ParsePropertyByKey("colour", "red")
	assert.True(t, errors.Is(err, css.ErrUnknownProperty))
}

func TestScaleForDPIIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.css")
	defer teardown()
	tracing.Select("guistyle.css").SetTraceLevel(tracing.LevelError)
	//
	for _, typ := range css.PropertyTypes() {
		p := css.DefaultFor(typ)
		if !p.ScaleForDPI(1).Equal(p) {
			t.Errorf("expected scaling by 1 to be the identity for default %v", p)
		}
		if text, ok := propertySamples[typ]; ok {
			p, _ = css.ParseProperty(typ, text)
			if !p.ScaleForDPI(1).Equal(p) {
				t.Errorf("expected scaling by 1 to be the identity for %v", p)
			}
		}
	}
	p := css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](10)).ScaleForDPI(2)
	if w, _ := css.ExactValueOf[css.LayoutWidth](p); w.Inner != css.Px(20) {
		t.Errorf("expected 10px scaled by 2 to be 20px, is %v", w.Inner)
	}
	p = css.Exactly(css.PropWidth, css.PercentOf[css.LayoutWidth](10)).ScaleForDPI(2)
	if w, _ := css.ExactValueOf[css.LayoutWidth](p); w.Inner != css.Percent(10) {
		t.Errorf("expected percentage to be unscaled, is %v", w.Inner)
	}
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.css")
	defer teardown()
	//
	parent := css.Exactly(css.PropFontSize, css.PxOf[css.StyleFontSize](16))
	r := css.Resolve(css.PropFontSize, css.Property{}, parent)
	assert.True(t, r.Equal(parent), "omitted inheritable property should inherit")
	r = css.Resolve(css.PropWidth, css.Property{}, css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](5)))
	assert.True(t, r.Equal(css.DefaultFor(css.PropWidth)), "omitted width should be default")
	r = css.Resolve(css.PropFontSize, css.ConstInherit(css.PropFontSize), css.Property{})
	assert.True(t, r.Equal(css.DefaultFor(css.PropFontSize)), "inherit at root should be default")
	r = css.Resolve(css.PropFontSize, css.ConstInitial(css.PropFontSize), parent)
	assert.True(t, r.Equal(css.DefaultFor(css.PropFontSize)), "initial should be default")
	r = css.Resolve(css.PropOverflowX, css.ConstAuto(css.PropOverflowX), css.Property{})
	if v, ok := css.ExactValueOf[css.LayoutOverflow](r); !ok || v != css.OverflowAuto {
		t.Errorf("expected overflow auto to resolve to OverflowAuto, is %v", r)
	}
	r = css.Resolve(css.PropWidth, css.ConstAuto(css.PropWidth), css.Property{})
	assert.True(t, r.IsAuto(), "width: auto should stay auto")
}

func TestPropertyInterpolate(t *testing.T) {
	a := css.Exactly(css.PropOpacity, css.StyleOpacity{Inner: css.NewPercentage(0)})
	b := css.Exactly(css.PropOpacity, css.StyleOpacity{Inner: css.NewPercentage(100)})
	m := a.Interpolate(b, 0.25)
	if o, _ := css.ExactValueOf[css.StyleOpacity](m); o.Inner != css.NewPercentage(25) {
		t.Errorf("expected opacity 25%%, is %v", m)
	}
	w := css.DefaultFor(css.PropWidth)
	if !a.Interpolate(w, 0.5).Equal(a) {
		t.Error("expected interpolation of different types to return the receiver")
	}
}

func TestPropertyClone(t *testing.T) {
	p, err := css.ParseProperty(css.PropFontFamily, "a, b")
	require.NoError(t, err)
	c := p.Clone()
	v, _ := css.ExactValueOf[css.StyleFontFamilyVec](c)
	v[0] = css.SystemFont("changed")
	orig, _ := css.ExactValueOf[css.StyleFontFamilyVec](p)
	assert.Equal(t, "a", orig[0].Name)
}
