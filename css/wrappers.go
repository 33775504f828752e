package css

// Most properties are thin wrappers around a PixelValue, a PercentageValue
// or a ColorU. The wrappers are distinct types so that a width can never be
// mistaken for a padding, but they share their behaviour through the
// generic helpers below.

type pixelWrapper interface {
	~struct{ Inner PixelValue }
}

type percentWrapper interface {
	~struct{ Inner PercentageValue }
}

type floatWrapper interface {
	~struct{ Inner FloatValue }
}

type colorWrapper interface {
	~struct{ Inner ColorU }
}

func pixelOf[T pixelWrapper](x T) PixelValue {
	return struct{ Inner PixelValue }(x).Inner
}

func wrapPixel[T pixelWrapper](p PixelValue) T {
	return T(struct{ Inner PixelValue }{p})
}

func percentOf[T percentWrapper](x T) PercentageValue {
	return struct{ Inner PercentageValue }(x).Inner
}

func wrapPercent[T percentWrapper](p PercentageValue) T {
	return T(struct{ Inner PercentageValue }{p})
}

func floatOf[T floatWrapper](x T) FloatValue {
	return struct{ Inner FloatValue }(x).Inner
}

func wrapFloat[T floatWrapper](f FloatValue) T {
	return T(struct{ Inner FloatValue }{f})
}

func colorOf[T colorWrapper](x T) ColorU {
	return struct{ Inner ColorU }(x).Inner
}

func wrapColor[T colorWrapper](c ColorU) T {
	return T(struct{ Inner ColorU }{c})
}

// PxOf creates a pixel-wrapped property value of n px, e.g.
//
//    w := css.PxOf[css.LayoutWidth](100)
func PxOf[T pixelWrapper](n float32) T { return wrapPixel[T](Px(n)) }

// EmOf creates a pixel-wrapped property value of n em.
func EmOf[T pixelWrapper](n float32) T { return wrapPixel[T](Em(n)) }

// PtOf creates a pixel-wrapped property value of n pt.
func PtOf[T pixelWrapper](n float32) T { return wrapPixel[T](Pt(n)) }

// PercentOf creates a pixel-wrapped property value of n percent.
func PercentOf[T pixelWrapper](n float32) T { return wrapPixel[T](Percent(n)) }

// InOf creates a pixel-wrapped property value of n inches.
func InOf[T pixelWrapper](n float32) T { return wrapPixel[T](In(n)) }

// CmOf creates a pixel-wrapped property value of n cm.
func CmOf[T pixelWrapper](n float32) T { return wrapPixel[T](Cm(n)) }

// MmOf creates a pixel-wrapped property value of n mm.
func MmOf[T pixelWrapper](n float32) T { return wrapPixel[T](Mm(n)) }

// ConstPxOf creates a pixel-wrapped property value of n px without loss.
func ConstPxOf[T pixelWrapper](n int) T { return wrapPixel[T](ConstPx(n)) }

// ConstPercentOf creates a pixel-wrapped property value of n percent without loss.
func ConstPercentOf[T pixelWrapper](n int) T { return wrapPixel[T](ConstPercent(n)) }

// --- Pixel wrappers --------------------------------------------------------

// Layout sizes and offsets
type (
	LayoutWidth     struct{ Inner PixelValue }
	LayoutHeight    struct{ Inner PixelValue }
	LayoutMinWidth  struct{ Inner PixelValue }
	LayoutMinHeight struct{ Inner PixelValue }
	LayoutMaxWidth  struct{ Inner PixelValue }
	LayoutMaxHeight struct{ Inner PixelValue }
	LayoutTop       struct{ Inner PixelValue }
	LayoutRight     struct{ Inner PixelValue }
	LayoutLeft      struct{ Inner PixelValue }
	LayoutBottom    struct{ Inner PixelValue }
)

// Box model edges. One type serves all four sides.
type (
	LayoutPadding     struct{ Inner PixelValue }
	LayoutMargin      struct{ Inner PixelValue }
	LayoutBorderWidth struct{ Inner PixelValue }
	StyleBorderRadius struct{ Inner PixelValue }
)

// Text metrics
type (
	StyleFontSize      struct{ Inner PixelValue }
	StyleLetterSpacing struct{ Inner PixelValue }
	StyleWordSpacing   struct{ Inner PixelValue }
)

// --- Percentage wrappers ---------------------------------------------------

type (
	StyleLineHeight struct{ Inner PercentageValue }
	StyleTabWidth   struct{ Inner PercentageValue }
	StyleOpacity    struct{ Inner PercentageValue }
)

// Flex factors are plain numbers.
type (
	LayoutFlexGrow   struct{ Inner FloatValue }
	LayoutFlexShrink struct{ Inner FloatValue }
)

// --- Color wrappers --------------------------------------------------------

type (
	StyleTextColor   struct{ Inner ColorU }
	StyleBorderColor struct{ Inner ColorU }
)

// --- Defaults --------------------------------------------------------------

// Default font size is 1em, i.e. 16px.
func defaultFontSize() StyleFontSize { return wrapPixel[StyleFontSize](ConstEm(1)) }

// Line height and tab width default to 100%.
func defaultLineHeight() StyleLineHeight {
	return wrapPercent[StyleLineHeight](ConstPercentage(100))
}

func defaultTabWidth() StyleTabWidth {
	return wrapPercent[StyleTabWidth](ConstPercentage(100))
}

// defaultOpacity is 0, i.e. fully transparent. CSS defines 1 as the initial
// value; resolved styles keep 0 for compatibility with existing embedders.
func defaultOpacity() StyleOpacity { return StyleOpacity{} }
