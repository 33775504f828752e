package cascade

import (
	"fmt"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/guistyle/maybe"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

var positionNames = []string{"unset", "static", "relative", "absolute", "fixed"}

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is an offset from one side of the containing block.
// Nothing stands for 'auto'.
type PositionOffset struct {
	Dim maybe.Maybe[css.PixelValue]
	Dir PosDir
}

func (o PositionOffset) String() string {
	dim := "auto"
	if o.Dim != nil {
		if px, ok := o.Dim.Get(); ok {
			dim = px.String()
		}
	}
	return fmt.Sprintf("%s=%s", o.Dir, dim)
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

// Directions of offsets
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

func (d PosDir) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "?"
}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PosDir. Invalid PosDir-s are silently dropped.
// Missing offsets are auto.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i] = PositionOffset{Dim: maybe.Nothing[css.PixelValue](), Dir: i}
	}
	for _, o := range offsets {
		if o.Dir <= Left {
			if o.Dim == nil {
				o.Dim = maybe.Nothing[css.PixelValue]()
			}
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) = (0, 0, 0, 0)
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i] = PositionOffset{Dim: maybe.Just(css.ZeroPx), Dir: i}
	}
	return zeros
}

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provied partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provied partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provied partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

// Position returns an optional position type from a "position" property.
// It will never return an error, even with illegal input, but instead will
// then return an unset position. Offsets are left at auto.
func Position(p css.Property) PositionT {
	if p.Type() != css.PropPosition {
		return PositionT{}
	}
	pos, ok := css.ExactValueOf[css.LayoutPosition](p)
	if !ok {
		return PositionT{}
	}
	switch pos {
	case css.PositionStatic:
		return Static()
	case css.PositionRelative:
		return Relative(nil)
	case css.PositionAbsolute:
		return Absolute(nil)
	case css.PositionFixed:
		return Fixed(nil)
	}
	return PositionT{}
}

var offsetProperties = [4]css.PropertyType{css.PropTop, css.PropRight, css.PropBottom, css.PropLeft}

// PositionOf returns the resolved position of a styled node, including the
// offsets set for it. Static positions carry no offsets.
func PositionOf(sn *styledtree.StyNode) PositionT {
	pos := Position(sn.PropertyValue(css.PropPosition))
	if pos.kind == positionUnset || pos.kind == positionStatic {
		return pos
	}
	var offsets []PositionOffset
	for dir, t := range offsetProperties {
		if _, set := sn.Styles().Property(t); !set {
			continue
		}
		if px, ok := css.PixelValueOf(sn.PropertyValue(t)); ok {
			offsets = append(offsets, PositionOffset{Dim: maybe.Just(px), Dir: PosDir(dir)})
		}
	}
	pos.offsets = NormalizeOffsets(offsets)
	return pos
}

func (p PositionT) String() string {
	if len(p.offsets) == 0 {
		return positionNames[p.kind]
	}
	return fmt.Sprintf("%s%v", positionNames[p.kind], p.offsets)
}

// Offsets returns the offsets of p, ordered by PosDir, or nil for unset and
// static positions.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

// ---------------------------------------------------------------------------

// Match starts a type switch on the kind of p.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher matches kinds of positions in switch statements.
type PMatcher struct {
	pos PositionT
}

// IsKind matches positions of the same kind as p.
func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

// Absolute matches absolute positions and extracts their offsets.
func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionAbsolute, o)
}

// Relative matches relative positions and extracts their offsets.
func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionRelative, o)
}

// Fixed matches fixed positions and extracts their offsets.
func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionFixed, o)
}

func (m *PMatcher) withOffsets(kind position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != kind {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds a result for every kind of position.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

// PositionPattern starts a match expression on p.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

// OneOf selects the pattern for the kind of position.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

// With extracts the offsets of the position.
func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// Const returns x.
func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsStatic returns true if p is a static position.
func (p PositionT) IsStatic() bool {
	return p.kind == positionStatic
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
