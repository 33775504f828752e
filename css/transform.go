package css

import (
	"strings"
)

// TransformKind discriminates StyleTransform.
type TransformKind uint8

// Transform functions
const (
	TransformMatrix TransformKind = iota
	TransformMatrix3D
	TransformTranslate
	TransformTranslate3D
	TransformTranslateX
	TransformTranslateY
	TransformTranslateZ
	TransformRotate
	TransformRotate3D
	TransformRotateX
	TransformRotateY
	TransformRotateZ
	TransformScale
	TransformScale3D
	TransformScaleX
	TransformScaleY
	TransformScaleZ
	TransformSkew
	TransformSkewX
	TransformSkewY
	TransformPerspective
)

var transformKindNames = []string{"matrix", "matrix3d", "translate", "translate3d",
	"translatex", "translatey", "translatez", "rotate", "rotate3d", "rotatex", "rotatey",
	"rotatez", "scale", "scale3d", "scalex", "scaley", "scalez", "skew", "skewx", "skewy",
	"perspective"}

// CSS spelling of the transform functions, with camel case.
var transformKindSpelling = []string{"matrix", "matrix3d", "translate", "translate3d",
	"translateX", "translateY", "translateZ", "rotate", "rotate3d", "rotateX", "rotateY",
	"rotateZ", "scale", "scale3d", "scaleX", "scaleY", "scaleZ", "skew", "skewX", "skewY",
	"perspective"}

func (k TransformKind) String() string { return enumName(transformKindSpelling, uint8(k)) }

// StyleTransform is one transform function. The fields valid for a
// transform depend on Kind:
//
//    Matrix, Matrix3D           → Matrix[0:6], Matrix[0:16]
//    Translate*, Perspective    → Lengths
//    Rotate, RotateX/Y/Z        → Angles[0]
//    Rotate3D                   → Factors[0:3] (axis), Angles[0]
//    Scale*                     → Factors
//    Skew*                      → Angles
type StyleTransform struct {
	Kind    TransformKind
	Matrix  [16]FloatValue
	Lengths [3]PixelValue
	Angles  [2]AngleValue
	Factors [3]FloatValue
}

// StyleTransformVec is a list of transforms, applied in order.
type StyleTransformVec []StyleTransform

// Constructors for transforms
func Matrix(a, b, c, d, tx, ty float32) StyleTransform {
	return StyleTransform{Kind: TransformMatrix, Matrix: [16]FloatValue{
		NewFloat(a), NewFloat(b), NewFloat(c), NewFloat(d), NewFloat(tx), NewFloat(ty)}}
}
func Matrix3D(m [16]float32) StyleTransform {
	t := StyleTransform{Kind: TransformMatrix3D}
	for i, x := range m {
		t.Matrix[i] = NewFloat(x)
	}
	return t
}
func Translate(x, y PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslate, Lengths: [3]PixelValue{x, y}}
}
func Translate3D(x, y, z PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslate3D, Lengths: [3]PixelValue{x, y, z}}
}
func TranslateX(x PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslateX, Lengths: [3]PixelValue{x}}
}
func TranslateY(y PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslateY, Lengths: [3]PixelValue{y}}
}
func TranslateZ(z PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslateZ, Lengths: [3]PixelValue{z}}
}
func Rotate(a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotate, Angles: [2]AngleValue{a}}
}
func Rotate3D(x, y, z float32, a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotate3D, Angles: [2]AngleValue{a},
		Factors: [3]FloatValue{NewFloat(x), NewFloat(y), NewFloat(z)}}
}
func RotateX(a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotateX, Angles: [2]AngleValue{a}}
}
func RotateY(a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotateY, Angles: [2]AngleValue{a}}
}
func RotateZ(a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotateZ, Angles: [2]AngleValue{a}}
}
func Scale(x, y float32) StyleTransform {
	return StyleTransform{Kind: TransformScale, Factors: [3]FloatValue{NewFloat(x), NewFloat(y)}}
}
func Scale3D(x, y, z float32) StyleTransform {
	return StyleTransform{Kind: TransformScale3D,
		Factors: [3]FloatValue{NewFloat(x), NewFloat(y), NewFloat(z)}}
}
func ScaleX(x float32) StyleTransform {
	return StyleTransform{Kind: TransformScaleX, Factors: [3]FloatValue{NewFloat(x)}}
}
func ScaleY(y float32) StyleTransform {
	return StyleTransform{Kind: TransformScaleY, Factors: [3]FloatValue{NewFloat(y)}}
}
func ScaleZ(z float32) StyleTransform {
	return StyleTransform{Kind: TransformScaleZ, Factors: [3]FloatValue{NewFloat(z)}}
}
func Skew(x, y AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformSkew, Angles: [2]AngleValue{x, y}}
}
func SkewX(x AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformSkewX, Angles: [2]AngleValue{x}}
}
func SkewY(y AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformSkewY, Angles: [2]AngleValue{y}}
}
func Perspective(d PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformPerspective, Lengths: [3]PixelValue{d}}
}

// arity returns the number of arguments of a transform function, split into
// matrix entries, lengths, factors and angles.
func (k TransformKind) arity() (matrix, lengths, factors, angles int) {
	switch k {
	case TransformMatrix:
		return 6, 0, 0, 0
	case TransformMatrix3D:
		return 16, 0, 0, 0
	case TransformTranslate:
		return 0, 2, 0, 0
	case TransformTranslate3D:
		return 0, 3, 0, 0
	case TransformTranslateX, TransformTranslateY, TransformTranslateZ, TransformPerspective:
		return 0, 1, 0, 0
	case TransformRotate, TransformRotateX, TransformRotateY, TransformRotateZ,
		TransformSkewX, TransformSkewY:
		return 0, 0, 0, 1
	case TransformRotate3D:
		return 0, 0, 3, 1
	case TransformScale:
		return 0, 0, 2, 0
	case TransformScale3D:
		return 0, 0, 3, 0
	case TransformScaleX, TransformScaleY, TransformScaleZ:
		return 0, 0, 1, 0
	case TransformSkew:
		return 0, 0, 0, 2
	}
	return 0, 0, 0, 0
}

// ScaleForDPI scales translations and perspective distances.
func (t StyleTransform) ScaleForDPI(factor float32) StyleTransform {
	for i := range t.Lengths {
		t.Lengths[i] = t.Lengths[i].ScaleForDPI(factor)
	}
	return t
}

// Interpolate linearly between two transforms of the same kind. Transforms of
// different kinds snap at t = 0.5.
func (t StyleTransform) Interpolate(other StyleTransform, f float32) StyleTransform {
	if t.Kind != other.Kind {
		if f < 0.5 {
			return t
		}
		return other
	}
	r := StyleTransform{Kind: t.Kind}
	for i := range t.Matrix {
		r.Matrix[i] = t.Matrix[i].Interpolate(other.Matrix[i], f)
	}
	for i := range t.Lengths {
		r.Lengths[i] = t.Lengths[i].Interpolate(other.Lengths[i], f)
	}
	for i := range t.Angles {
		r.Angles[i] = t.Angles[i].Interpolate(other.Angles[i], f)
	}
	for i := range t.Factors {
		r.Factors[i] = t.Factors[i].Interpolate(other.Factors[i], f)
	}
	return r
}

func (t StyleTransform) String() string {
	m, l, f, a := t.Kind.arity()
	args := make([]string, 0, 16)
	for i := 0; i < m; i++ {
		args = append(args, t.Matrix[i].String())
	}
	for i := 0; i < l; i++ {
		args = append(args, t.Lengths[i].String())
	}
	for i := 0; i < f; i++ {
		args = append(args, t.Factors[i].String())
	}
	for i := 0; i < a; i++ {
		args = append(args, t.Angles[i].String())
	}
	return t.Kind.String() + "(" + strings.Join(args, ", ") + ")"
}

func (v StyleTransformVec) scaleForDPI(factor float32) StyleTransformVec {
	r := make(StyleTransformVec, len(v))
	for i, t := range v {
		r[i] = t.ScaleForDPI(factor)
	}
	return r
}

// interpolate transform lists pairwise if they have equal length and
// matching kinds; otherwise the lists snap at t = 0.5.
func (v StyleTransformVec) interpolate(other StyleTransformVec, t float32) StyleTransformVec {
	if v.sameShape(other) {
		r := make(StyleTransformVec, len(v))
		for i := range v {
			r[i] = v[i].Interpolate(other[i], t)
		}
		return r
	}
	if t < 0.5 {
		return v
	}
	return other
}

func (v StyleTransformVec) sameShape(other StyleTransformVec) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i].Kind != other[i].Kind {
			return false
		}
	}
	return true
}

func (v StyleTransformVec) String() string {
	s := make([]string, len(v))
	for i, t := range v {
		s[i] = t.String()
	}
	return strings.Join(s, " ")
}

// StyleTransformOrigin is the type for CSS property "transform-origin".
type StyleTransformOrigin struct {
	X, Y PixelValue
}

// StylePerspectiveOrigin is the type for CSS property "perspective-origin".
type StylePerspectiveOrigin struct {
	X, Y PixelValue
}

// DefaultTransformOrigin is '50% 50%'.
func DefaultTransformOrigin() StyleTransformOrigin {
	return StyleTransformOrigin{ConstPercent(50), ConstPercent(50)}
}

// DefaultPerspectiveOrigin is '0 0'.
func DefaultPerspectiveOrigin() StylePerspectiveOrigin {
	return StylePerspectiveOrigin{ZeroPx, ZeroPx}
}

// Interpolate linearly.
func (o StyleTransformOrigin) Interpolate(other StyleTransformOrigin, t float32) StyleTransformOrigin {
	return StyleTransformOrigin{o.X.Interpolate(other.X, t), o.Y.Interpolate(other.Y, t)}
}

// Interpolate linearly.
func (o StylePerspectiveOrigin) Interpolate(other StylePerspectiveOrigin, t float32) StylePerspectiveOrigin {
	return StylePerspectiveOrigin{o.X.Interpolate(other.X, t), o.Y.Interpolate(other.Y, t)}
}

// ScaleForDPI scales the origin's coordinates.
func (o StyleTransformOrigin) ScaleForDPI(factor float32) StyleTransformOrigin {
	return StyleTransformOrigin{o.X.ScaleForDPI(factor), o.Y.ScaleForDPI(factor)}
}

// ScaleForDPI scales the origin's coordinates.
func (o StylePerspectiveOrigin) ScaleForDPI(factor float32) StylePerspectiveOrigin {
	return StylePerspectiveOrigin{o.X.ScaleForDPI(factor), o.Y.ScaleForDPI(factor)}
}

func (o StyleTransformOrigin) String() string   { return o.X.String() + " " + o.Y.String() }
func (o StylePerspectiveOrigin) String() string { return o.X.String() + " " + o.Y.String() }
