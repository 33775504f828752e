package cascade_test

import (
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style/cascade"
	"github.com/npillmayer/guistyle/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionBasic(t *testing.T) {
	a := cascade.Absolute(nil)
	var o []cascade.PositionOffset
	switch m := a.Match(); m {
	case m.Absolute(&o):
		t.Logf("offsets = %v", o)
	default:
		t.Errorf("expected Absolute() to be an absolute position, isn't: %#v", a)
	}
	if !a.IsAbsolute() || a.IsUnset() {
		t.Errorf("expected absolute position to report as absolute, is %v", a)
	}
	static := cascade.Static()
	switch m := static.Match(); m {
	case m.IsKind(cascade.Static()):
		t.Logf("position is static")
	default:
		t.Errorf("expected position to match kind(static), isn't: %#v", static)
	}
}

func TestPositionPattern(t *testing.T) {
	o := []cascade.PositionOffset{
		{Dim: maybe.Just(css.Pt(10)), Dir: cascade.Bottom},
	}
	f := cascade.Fixed(o)
	m := cascade.PositionPattern[int](f)
	out := m.OneOf(cascade.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}
	e := cascade.PositionPattern[[]cascade.PositionOffset](f)
	off := e.OneOf(cascade.PositionPatterns[[]cascade.PositionOffset]{
		Fixed:    e.With(&o).Const(o),
		Relative: cascade.ZeroOffsets(),
		Default:  cascade.ZeroOffsets(),
	})
	t.Logf("offsets = %v", off)
	if len(off) != 4 {
		t.Errorf("expected 4 offsets, aren't: %#v", off)
	}
	assert.False(t, off[cascade.Top].Dim.IsJust())
	assert.Equal(t, css.Pt(10), off[cascade.Bottom].Dim.WithDefault(css.ZeroPx))
}

func TestPositionFromProperty(t *testing.T) {
	p, err := css.ParsePropertyByKey("position", "absolute")
	require.NoError(t, err)
	m := cascade.PositionPattern[string](cascade.Position(p))
	x := m.OneOf(cascade.PositionPatterns[string]{
		Unset:    "NONE",
		Absolute: "ABSOLUTE",
		Default:  "NONE",
	})
	if x != "ABSOLUTE" {
		t.Errorf("expected ABSOLUTE, have %v", x)
	}
	assert.True(t, cascade.Position(css.Property{}).IsUnset())
}

func TestPositionOfStyledNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cascade")
	defer teardown()
	//
	s := styler(t, `.pop { position: relative; top: 5px; left: 2em }`)
	root := s.Style(dom.Body().WithChild(dom.Div().WithClass("pop")), nil)
	assert.True(t, cascade.PositionOf(find(t, root, 0)).IsStatic())
	pos := cascade.PositionOf(find(t, root, 1))
	require.True(t, pos.IsRelative(), "position is %v", pos)
	offsets := pos.Offsets()
	require.Len(t, offsets, 4)
	assert.Equal(t, css.Px(5), offsets[cascade.Top].Dim.WithDefault(css.ZeroPx))
	assert.Equal(t, css.Em(2), offsets[cascade.Left].Dim.WithDefault(css.ZeroPx))
	assert.False(t, offsets[cascade.Right].Dim.IsJust())
}

func TestDisplayModes(t *testing.T) {
	tests := []struct {
		input string
		mode  cascade.DisplayMode
	}{
		{"", cascade.NoMode},
		{"none", cascade.DisplayNone},
		{"block", cascade.BlockMode | cascade.InnerBlockMode},
		{"inline-block", cascade.InlineMode | cascade.InnerBlockMode},
		{"flex", cascade.BlockMode | cascade.FlexMode},
		{"table-cell", cascade.BlockMode | cascade.TableMode},
		{"list-item", cascade.ListItemMode | cascade.BlockMode},
	}
	for _, test := range tests {
		mode, err := cascade.ParseDisplay(test.input)
		require.NoError(t, err, test.input)
		if mode != test.mode {
			t.Errorf("expected display %q to be %s, is %s", test.input, test.mode, mode)
		}
	}
	_, err := cascade.ParseDisplay("sideways")
	assert.Error(t, err)
	assert.True(t, cascade.DisplayModeOf(css.DisplayFlex).IsBlockLevel())
	assert.Equal(t, "InlineMode InnerBlockMode", (cascade.InlineMode | cascade.InnerBlockMode).String())
	assert.Equal(t, "►", cascade.DisplayModeOf(css.DisplayInline).Symbol())
}
