package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/npillmayer/guistyle/maybe"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// --- Fixed point numbers ---------------------------------------------------

// floatScale is the implicit scale of FloatValue: three decimal digits.
const floatScale = 1000

// FloatValue is a fixed-point number with three decimal digits.
// Holding numbers as integers keeps property values comparable and
// usable as map keys. Conversion from float32 is lossy on the third decimal.
type FloatValue struct {
	Number int64 // value × 1000
}

// NewFloat creates a fixed-point number from f, rounding at the third decimal.
// NaN yields 0. Numbers out of range are clamped to the largest magnitude.
func NewFloat(f float32) FloatValue {
	x := math.Round(float64(f) * floatScale)
	switch {
	case math.IsNaN(x):
		return FloatValue{}
	case x >= math.MaxInt64:
		return FloatValue{Number: math.MaxInt64}
	case x <= math.MinInt64:
		return FloatValue{Number: math.MinInt64}
	}
	return FloatValue{Number: int64(x)}
}

// ConstFloat creates a fixed-point number from an integer without loss.
func ConstFloat(n int) FloatValue {
	return FloatValue{Number: int64(n) * floatScale}
}

// Get returns the number as float32.
func (f FloatValue) Get() float32 {
	return float32(float64(f.Number) / floatScale)
}

// Add adds two fixed-point numbers. Both share the implicit scale, so this
// operates on the inner integers.
func (f FloatValue) Add(g FloatValue) FloatValue {
	return FloatValue{Number: f.Number + g.Number}
}

// Sub subtracts g from f.
func (f FloatValue) Sub(g FloatValue) FloatValue {
	return FloatValue{Number: f.Number - g.Number}
}

// Mul multiplies by a float factor.
func (f FloatValue) Mul(x float32) FloatValue {
	return FloatValue{Number: int64(math.Round(float64(f.Number) * float64(x)))}
}

// Interpolate linearly between f and g. t may be outside of [0…1].
func (f FloatValue) Interpolate(g FloatValue, t float32) FloatValue {
	return NewFloat(f.Get() + (g.Get()-f.Get())*t)
}

// IsZero is true for 0.
func (f FloatValue) IsZero() bool {
	return f.Number == 0
}

func (f FloatValue) String() string {
	return strconv.FormatFloat(float64(f.Number)/floatScale, 'f', -1, 64)
}

// --- Lengths ---------------------------------------------------------------

// SizeMetric is the unit of a PixelValue. The order of the constants is
// part of the binary interface and must not change.
type SizeMetric uint8

// Units for lengths
const (
	MetricPx SizeMetric = iota
	MetricPt
	MetricEm
	MetricIn
	MetricCm
	MetricMm
	MetricPercent
)

var sizeMetricSuffix = [...]string{"px", "pt", "em", "in", "cm", "mm", "%"}

func (m SizeMetric) String() string {
	if int(m) < len(sizeMetricSuffix) {
		return sizeMetricSuffix[m]
	}
	return "?"
}

// Conversion factors to pixels, assuming 96 DPI and an em of 16px.
const (
	PtToPx float32 = 96.0 / 72.0
	EmToPx float32 = 16.0
	InToPx float32 = 96.0
	CmToPx float32 = 96.0 / 2.54
	MmToPx float32 = 96.0 / 25.4
)

// PixelValue is a length together with its unit. Lengths are held in logical
// (CSS) pixels. A percentage has no absolute meaning until it is resolved
// against the extent of a parent.
type PixelValue struct {
	Metric SizeMetric
	Number FloatValue
}

// PixelValue constructors
func Px(f float32) PixelValue      { return PixelValue{MetricPx, NewFloat(f)} }
func Pt(f float32) PixelValue      { return PixelValue{MetricPt, NewFloat(f)} }
func Em(f float32) PixelValue      { return PixelValue{MetricEm, NewFloat(f)} }
func In(f float32) PixelValue      { return PixelValue{MetricIn, NewFloat(f)} }
func Cm(f float32) PixelValue      { return PixelValue{MetricCm, NewFloat(f)} }
func Mm(f float32) PixelValue      { return PixelValue{MetricMm, NewFloat(f)} }
func Percent(f float32) PixelValue { return PixelValue{MetricPercent, NewFloat(f)} }

// PixelValue constructors for integers, without conversion loss
func ConstPx(n int) PixelValue      { return PixelValue{MetricPx, ConstFloat(n)} }
func ConstPt(n int) PixelValue      { return PixelValue{MetricPt, ConstFloat(n)} }
func ConstEm(n int) PixelValue      { return PixelValue{MetricEm, ConstFloat(n)} }
func ConstIn(n int) PixelValue      { return PixelValue{MetricIn, ConstFloat(n)} }
func ConstCm(n int) PixelValue      { return PixelValue{MetricCm, ConstFloat(n)} }
func ConstMm(n int) PixelValue      { return PixelValue{MetricMm, ConstFloat(n)} }
func ConstPercent(n int) PixelValue { return PixelValue{MetricPercent, ConstFloat(n)} }

// ZeroPx is 0px.
var ZeroPx = PixelValue{MetricPx, FloatValue{}}

func metricFactor(m SizeMetric) float32 {
	switch m {
	case MetricPt:
		return PtToPx
	case MetricEm:
		return EmToPx
	case MetricIn:
		return InToPx
	case MetricCm:
		return CmToPx
	case MetricMm:
		return MmToPx
	}
	return 1
}

// ToPixels resolves a length to pixels. parent is the extent percentages
// refer to.
func (p PixelValue) ToPixels(parent float32) float32 {
	if p.Metric == MetricPercent {
		return p.Number.Get() * parent / 100
	}
	return p.Number.Get() * metricFactor(p.Metric)
}

// ToPixelsNoPercent resolves a length to pixels if it does not depend on a
// parent extent. Percentages yield Nothing.
func (p PixelValue) ToPixelsNoPercent() maybe.Maybe[float32] {
	if p.Metric == MetricPercent {
		return maybe.Nothing[float32]()
	}
	return maybe.Just(p.ToPixels(0))
}

// FromMetric creates a length of n units of m.
func FromMetric(m SizeMetric, n float32) PixelValue {
	return PixelValue{m, NewFloat(n)}
}

// IsPercent is true for parent-relative lengths.
func (p PixelValue) IsPercent() bool {
	return p.Metric == MetricPercent
}

// Interpolate linearly between two lengths. Lengths of different units are
// interpolated in pixels, resolving percentages against a parent of 0. This
// is a known limitation for animations between percentages and absolute
// lengths if the parent changes size.
func (p PixelValue) Interpolate(other PixelValue, t float32) PixelValue {
	if p.Metric == other.Metric {
		return PixelValue{p.Metric, p.Number.Interpolate(other.Number, t)}
	}
	a, b := p.ToPixels(0), other.ToPixels(0)
	return Px(a + (b-a)*t)
}

// ScaleForDPI converts a logical length to physical pixels.
// Percentages are left untouched.
func (p PixelValue) ScaleForDPI(factor float32) PixelValue {
	if p.Metric == MetricPercent {
		return p
	}
	return PixelValue{p.Metric, p.Number.Mul(factor)}
}

// ToDimen converts a length into typesetting units of package tyse/dimen,
// where 1px = 0.75pt. Percentages yield Nothing.
func (p PixelValue) ToDimen() maybe.Maybe[dimen.DU] {
	if p.Metric == MetricPercent {
		return maybe.Nothing[dimen.DU]()
	}
	pt := float64(p.ToPixels(0)) * 0.75
	return maybe.Just(dimen.DU(math.Round(pt * float64(dimen.PT))))
}

func (p PixelValue) String() string {
	return p.Number.String() + p.Metric.String()
}

// --- Percentages -----------------------------------------------------------

// PercentageValue is a pure percentage, e.g. for opacity or line-height.
// The number is read as number/100.
type PercentageValue struct {
	Number FloatValue
}

// NewPercentage creates a percentage from f, where 100 means 100%.
func NewPercentage(f float32) PercentageValue {
	return PercentageValue{NewFloat(f)}
}

// ConstPercentage creates a percentage from an integer without loss.
func ConstPercentage(n int) PercentageValue {
	return PercentageValue{ConstFloat(n)}
}

// Get returns the percentage number, e.g. 50 for 50%.
func (p PercentageValue) Get() float32 {
	return p.Number.Get()
}

// Normalized returns the percentage as a factor, e.g. 0.5 for 50%.
func (p PercentageValue) Normalized() float32 {
	return p.Number.Get() / 100
}

// Interpolate linearly between two percentages.
func (p PercentageValue) Interpolate(other PercentageValue, t float32) PercentageValue {
	return PercentageValue{p.Number.Interpolate(other.Number, t)}
}

// ToPercent converts to the percentage type of package tyse/percent,
// rounding to whole percents.
func (p PercentageValue) ToPercent() percent.Percent {
	return percent.FromInt(int(math.Round(float64(p.Get()))))
}

func (p PercentageValue) String() string {
	return p.Number.String() + "%"
}

// --- Angles ----------------------------------------------------------------

// AngleMetric is the unit of an AngleValue.
type AngleMetric uint8

// Units for angles
const (
	AngleDeg AngleMetric = iota
	AngleRad
	AngleGrad
	AngleTurn
	AnglePercent
)

var angleMetricSuffix = [...]string{"deg", "rad", "grad", "turn", "%"}

func (m AngleMetric) String() string {
	if int(m) < len(angleMetricSuffix) {
		return angleMetricSuffix[m]
	}
	return "?"
}

// AngleValue is an angle together with its unit.
type AngleValue struct {
	Metric AngleMetric
	Number FloatValue
}

// AngleValue constructors
func Deg(f float32) AngleValue          { return AngleValue{AngleDeg, NewFloat(f)} }
func Rad(f float32) AngleValue          { return AngleValue{AngleRad, NewFloat(f)} }
func Grad(f float32) AngleValue         { return AngleValue{AngleGrad, NewFloat(f)} }
func Turn(f float32) AngleValue         { return AngleValue{AngleTurn, NewFloat(f)} }
func PercentAngle(f float32) AngleValue { return AngleValue{AnglePercent, NewFloat(f)} }

// ToDegrees returns the angle in degrees, normalized into [0, 360).
//
// Radians and gradians are converted with each other's formula, i.e.
// Rad(n) is n/400×360 and Grad(n) is n/2π×360. This mirrors established
// behaviour and is kept until the intent is confirmed.
func (a AngleValue) ToDegrees() float32 {
	n := a.Number.Get()
	var v float32
	switch a.Metric {
	case AngleDeg:
		v = n
	case AngleRad:
		v = n / 400 * 360
	case AngleGrad:
		v = n / (2 * math32.Pi) * 360
	case AngleTurn:
		v = n * 360
	case AnglePercent:
		v = n / 100 * 360
	}
	v = math32.Mod(math32.Mod(v, 360)+360, 360)
	if v >= 360 || v < 0 { // float rounding at the upper boundary
		v = 0
	}
	return v
}

// Interpolate linearly between two angles. Angles of different units are
// interpolated in degrees.
func (a AngleValue) Interpolate(other AngleValue, t float32) AngleValue {
	if a.Metric == other.Metric {
		return AngleValue{a.Metric, a.Number.Interpolate(other.Number, t)}
	}
	x, y := a.ToDegrees(), other.ToDegrees()
	return Deg(x + (y-x)*t)
}

func (a AngleValue) String() string {
	return a.Number.String() + a.Metric.String()
}
