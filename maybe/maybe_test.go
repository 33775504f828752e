package maybe_test

import (
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/maybe"
	"github.com/stretchr/testify/assert"
)

// offset is an optional position offset, as found for top/left/bottom/right.
type offset = maybe.Maybe[css.PixelValue]

func TestMatchOffsets(t *testing.T) {
	top := maybe.Just(css.ConstPx(7))
	left := maybe.Nothing[css.PixelValue]()
	//
	var px css.PixelValue
	switch m := top.Match(); m {
	case m.Just(&px):
		t.Logf("top = %v", px)
	case m.Nothing():
		t.Error("expected top offset to be set")
	}
	assert.Equal(t, css.ConstPx(7), px)
	//
	var missing css.PixelValue
	switch m := left.Match(); m {
	case m.Just(&missing):
		t.Errorf("expected left offset to be unset, is %v", missing)
	case m.Nothing():
	}
	assert.Equal(t, css.PixelValue{}, missing)
}

func TestDefaultOffset(t *testing.T) {
	var unset offset = maybe.Nothing[css.PixelValue]()
	assert.Equal(t, css.ZeroPx, unset.WithDefault(css.ZeroPx))
	assert.Equal(t, css.ConstPx(3), maybe.Just(css.ConstPx(3)).WithDefault(css.ZeroPx))
}

func TestScaleOffset(t *testing.T) {
	double := func(p css.PixelValue) css.PixelValue { return p.ScaleForDPI(2) }
	scaled := maybe.Just(css.ConstPx(7)).Map(double)
	assert.Equal(t, css.ConstPx(14), scaled.WithDefault(css.ZeroPx))
	//
	toPixels := func(p css.PixelValue) float32 { return p.ToPixels(0) }
	assert.Equal(t, float32(10), maybe.Map(toPixels, maybe.Just(css.ConstPx(10))).WithDefault(-1))
	//
	var w float32
	switch m := maybe.Map(toPixels, maybe.Nothing[css.PixelValue]()).Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	assert.Equal(t, float32(99), w, "Nothing stays Nothing when mapped")
}

func TestAndThen(t *testing.T) {
	positive := func(p css.PixelValue) maybe.Maybe[css.PixelValue] {
		if p.ToPixels(0) > 0 {
			return maybe.Just(p)
		}
		return maybe.Nothing[css.PixelValue]()
	}
	assert.True(t, maybe.AndThen(positive, maybe.Just(css.ConstPx(7))).IsJust())
	assert.False(t, maybe.AndThen(positive, maybe.Just(css.ZeroPx)).IsJust())
	assert.False(t, maybe.AndThen(positive, maybe.Nothing[css.PixelValue]()).IsJust())
}

func TestGetAndOf(t *testing.T) {
	if v, ok := maybe.Just("auto").Get(); !ok || v != "auto" {
		t.Errorf("expected Just(auto).Get() to be (auto, true), is (%q, %v)", v, ok)
	}
	if _, ok := maybe.Nothing[string]().Get(); ok {
		t.Error("expected Nothing.Get() to be not ok, is ok")
	}
	p, ok := css.PropertyTypeFromKey("width")
	assert.True(t, maybe.Of(p, ok).IsJust())
	p, ok = css.PropertyTypeFromKey("colour")
	assert.False(t, maybe.Of(p, ok).IsJust())
}

func TestOneOfFallsThrough(t *testing.T) {
	local := maybe.Nothing[css.PixelValue]()
	inherited := maybe.Just(css.ConstPx(2))
	initial := maybe.Just(css.ConstPx(3))
	assert.Equal(t, css.ConstPx(2), maybe.OneOf(local, inherited, initial).WithDefault(css.ZeroPx))
	assert.False(t, maybe.OneOf[css.PixelValue]().IsJust())
}
