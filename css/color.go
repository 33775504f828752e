package css

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// ColorU is an RGBA color with 8 bits per channel. The zero value is
// transparent black, the default color is opaque black.
type ColorU struct {
	R, G, B, A uint8
}

// Some well-known colors
var (
	Black       = ColorU{0, 0, 0, 255}
	White       = ColorU{255, 255, 255, 255}
	Red         = ColorU{255, 0, 0, 255}
	Green       = ColorU{0, 255, 0, 255}
	Blue        = ColorU{0, 0, 255, 255}
	Transparent = ColorU{0, 0, 0, 0}
)

// DefaultColor is the color used where no color is specified.
func DefaultColor() ColorU {
	return Black
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) ColorU {
	return ColorU{r, g, b, 255}
}

// Interpolate linearly on each channel, rounding to the nearest integer.
func (c ColorU) Interpolate(other ColorU, t float32) ColorU {
	if c == other {
		return c
	}
	return ColorU{
		R: interpolateChannel(c.R, other.R, t),
		G: interpolateChannel(c.G, other.G, t),
		B: interpolateChannel(c.B, other.B, t),
		A: interpolateChannel(c.A, other.A, t),
	}
}

func interpolateChannel(a, b uint8, t float32) uint8 {
	x := float32(a) + (float32(b)-float32(a))*t
	return clampChannel(x)
}

func clampChannel(x float32) uint8 {
	x = math32.Floor(x + 0.5)
	if x != x || x < 0 { // NaN or negative
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// HasAlpha is true for colors which are not fully opaque.
func (c ColorU) HasAlpha() bool {
	return c.A != 255
}

// Hex returns the color in format #rrggbbaa.
func (c ColorU) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// CSS returns the color as CSS text: #rrggbb for opaque colors,
// #rrggbbaa otherwise.
func (c ColorU) CSS() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return c.Hex()
}

// String returns the color in format rgba(r, g, b, a), with alpha in [0…1].
func (c ColorU) String() string {
	alpha := strconv.FormatFloat(float64(c.A)/255, 'f', -1, 32)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}
