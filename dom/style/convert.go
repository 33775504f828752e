package style

import (
	"image/color"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/maybe"
	"github.com/npillmayer/tyse/core/dimen"
)

// ToColor converts a CSS color to a Go color.
func ToColor(c css.ColorU) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a Go color to a CSS color. nil converts to transparent.
func FromColor(c color.Color) css.ColorU {
	if c == nil {
		return css.Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return css.ColorU{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ColorString returns a coarse color name for c; used for debugging.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r >= 0x9000 && r >= g && r >= b {
		return "red"
	} else if g >= 0x9000 && g >= b {
		return "green"
	} else if b >= 0x9000 {
		return "blue"
	}
	return "gray"
}

// Color returns the Go color of a color property set in the map.
func (pmap *PropertyMap) Color(t css.PropertyType) maybe.Maybe[color.Color] {
	p, ok := pmap.Property(t)
	if !ok {
		return maybe.Nothing[color.Color]()
	}
	if c, ok := css.ExactValueOf[css.StyleTextColor](p); ok {
		return maybe.Just(ToColor(c.Inner))
	}
	if c, ok := css.ExactValueOf[css.StyleBorderColor](p); ok {
		return maybe.Just(ToColor(c.Inner))
	}
	return maybe.Nothing[color.Color]()
}

// Pixels returns the pixel value of a length property set in the map.
// Percentages are resolved against parent.
func (pmap *PropertyMap) Pixels(t css.PropertyType, parent float32) maybe.Maybe[float32] {
	p, ok := pmap.Property(t)
	if !ok {
		return maybe.Nothing[float32]()
	}
	px, ok := css.PixelValueOf(p)
	if !ok {
		return maybe.Nothing[float32]()
	}
	return maybe.Just(px.ToPixels(parent))
}

// Dimen returns the length of a property set in the map in typesetting
// units. Percentages and em units have no fixed size and yield Nothing.
func (pmap *PropertyMap) Dimen(t css.PropertyType) maybe.Maybe[dimen.DU] {
	p, ok := pmap.Property(t)
	if !ok {
		return maybe.Nothing[dimen.DU]()
	}
	px, ok := css.PixelValueOf(p)
	if !ok {
		return maybe.Nothing[dimen.DU]()
	}
	return px.ToDimen()
}
