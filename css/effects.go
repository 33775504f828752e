package css

import (
	"strings"
)

// --- Shadows ---------------------------------------------------------------

// StyleBoxShadow is the type for the box-shadow properties and for
// "text-shadow". Offsets and radii are never percentages.
type StyleBoxShadow struct {
	Offset       [2]PixelValue
	Color        ColorU
	BlurRadius   PixelValue
	SpreadRadius PixelValue
	ClipMode     BoxShadowClipMode
}

// DefaultBoxShadow is a black, unblurred outset shadow without offset.
func DefaultBoxShadow() StyleBoxShadow {
	return StyleBoxShadow{Color: Black}
}

// ScaleForDPI scales offsets and radii.
func (s StyleBoxShadow) ScaleForDPI(factor float32) StyleBoxShadow {
	s.Offset[0] = s.Offset[0].ScaleForDPI(factor)
	s.Offset[1] = s.Offset[1].ScaleForDPI(factor)
	s.BlurRadius = s.BlurRadius.ScaleForDPI(factor)
	s.SpreadRadius = s.SpreadRadius.ScaleForDPI(factor)
	return s
}

// Interpolate linearly between two shadows. The clip mode snaps at t = 0.5.
func (s StyleBoxShadow) Interpolate(other StyleBoxShadow, t float32) StyleBoxShadow {
	r := StyleBoxShadow{
		Offset: [2]PixelValue{
			s.Offset[0].Interpolate(other.Offset[0], t),
			s.Offset[1].Interpolate(other.Offset[1], t),
		},
		Color:        s.Color.Interpolate(other.Color, t),
		BlurRadius:   s.BlurRadius.Interpolate(other.BlurRadius, t),
		SpreadRadius: s.SpreadRadius.Interpolate(other.SpreadRadius, t),
		ClipMode:     s.ClipMode,
	}
	if t >= 0.5 {
		r.ClipMode = other.ClipMode
	}
	return r
}

// String formats a shadow as 'x y blur spread color [inset]'.
func (s StyleBoxShadow) String() string {
	var sb strings.Builder
	sb.WriteString(s.Offset[0].String())
	sb.WriteString(" ")
	sb.WriteString(s.Offset[1].String())
	sb.WriteString(" ")
	sb.WriteString(s.BlurRadius.String())
	sb.WriteString(" ")
	sb.WriteString(s.SpreadRadius.String())
	sb.WriteString(" ")
	sb.WriteString(s.Color.CSS())
	if s.ClipMode == ClipInset {
		sb.WriteString(" inset")
	}
	return sb.String()
}

// --- Filters ---------------------------------------------------------------

// FilterKind discriminates StyleFilter.
type FilterKind uint8

// Filter operations
const (
	FilterBlend FilterKind = iota
	FilterFlood
	FilterBlur
	FilterOpacity
	FilterColorMatrix
	FilterDropShadow
	FilterComponentTransfer
	FilterOffset
	FilterComposite
)

var filterKindNames = []string{"blend", "flood", "blur", "opacity", "color-matrix",
	"drop-shadow", "component-transfer", "offset", "composite"}

func (k FilterKind) String() string { return enumName(filterKindNames, uint8(k)) }

// CompositeOperator is the operator of a composite filter.
type CompositeOperator uint8

// Composite operators
const (
	CompositeOver CompositeOperator = iota
	CompositeIn
	CompositeAtop
	CompositeOut
	CompositeXor
	CompositeLighter
	CompositeArithmetic
)

var compositeOperatorNames = []string{"over", "in", "atop", "out", "xor", "lighter",
	"arithmetic"}

func (o CompositeOperator) String() string { return enumName(compositeOperatorNames, uint8(o)) }

// StyleCompositeFilter is a composite operation. K holds the coefficients of
// an arithmetic composite and is unused otherwise.
type StyleCompositeFilter struct {
	Operator CompositeOperator
	K        [4]FloatValue
}

func (c StyleCompositeFilter) String() string {
	if c.Operator != CompositeArithmetic {
		return c.Operator.String()
	}
	return "arithmetic(" + joinFloats(c.K[:]) + ")"
}

// StyleFilter is one filter operation of "filter" or "backdrop-filter".
// The payload fields valid for a filter depend on Kind:
//
//    Blend                → Blend
//    Flood                → Color
//    Blur                 → X, Y
//    Opacity              → Opacity
//    ColorMatrix          → Matrix
//    DropShadow           → Shadow
//    ComponentTransfer    → –
//    Offset               → X, Y
//    Composite            → Composite
type StyleFilter struct {
	Kind      FilterKind
	Blend     StyleMixBlendMode
	Color     ColorU
	X, Y      PixelValue
	Opacity   PercentageValue
	Matrix    [20]FloatValue
	Shadow    StyleBoxShadow
	Composite StyleCompositeFilter
}

// StyleFilterVec is a list of filter operations, applied in order.
type StyleFilterVec []StyleFilter

// Constructors for filters
func BlendFilter(m StyleMixBlendMode) StyleFilter { return StyleFilter{Kind: FilterBlend, Blend: m} }
func FloodFilter(c ColorU) StyleFilter           { return StyleFilter{Kind: FilterFlood, Color: c} }
func BlurFilter(w, h PixelValue) StyleFilter     { return StyleFilter{Kind: FilterBlur, X: w, Y: h} }
func OffsetFilter(x, y PixelValue) StyleFilter   { return StyleFilter{Kind: FilterOffset, X: x, Y: y} }
func OpacityFilter(p PercentageValue) StyleFilter {
	return StyleFilter{Kind: FilterOpacity, Opacity: p}
}
func ColorMatrixFilter(m [20]FloatValue) StyleFilter {
	return StyleFilter{Kind: FilterColorMatrix, Matrix: m}
}
func DropShadowFilter(s StyleBoxShadow) StyleFilter {
	return StyleFilter{Kind: FilterDropShadow, Shadow: s}
}
func ComponentTransferFilter() StyleFilter { return StyleFilter{Kind: FilterComponentTransfer} }
func CompositeFilter(c StyleCompositeFilter) StyleFilter {
	return StyleFilter{Kind: FilterComposite, Composite: c}
}

// ScaleForDPI scales blur radii, offsets and drop shadows.
func (f StyleFilter) ScaleForDPI(factor float32) StyleFilter {
	switch f.Kind {
	case FilterBlur, FilterOffset:
		f.X = f.X.ScaleForDPI(factor)
		f.Y = f.Y.ScaleForDPI(factor)
	case FilterDropShadow:
		f.Shadow = f.Shadow.ScaleForDPI(factor)
	}
	return f
}

func (f StyleFilter) String() string {
	var args string
	switch f.Kind {
	case FilterBlend:
		args = f.Blend.String()
	case FilterFlood:
		args = f.Color.CSS()
	case FilterBlur, FilterOffset:
		args = f.X.String() + ", " + f.Y.String()
	case FilterOpacity:
		args = f.Opacity.String()
	case FilterColorMatrix:
		args = joinFloats(f.Matrix[:])
	case FilterDropShadow:
		args = f.Shadow.String()
	case FilterComposite:
		args = f.Composite.String()
	}
	return f.Kind.String() + "(" + args + ")"
}

func (v StyleFilterVec) scaleForDPI(factor float32) StyleFilterVec {
	r := make(StyleFilterVec, len(v))
	for i, f := range v {
		r[i] = f.ScaleForDPI(factor)
	}
	return r
}

func (v StyleFilterVec) String() string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = f.String()
	}
	return strings.Join(s, ", ")
}

func joinFloats(fs []FloatValue) string {
	s := make([]string, len(fs))
	for i, f := range fs {
		s[i] = f.String()
	}
	return strings.Join(s, ", ")
}
