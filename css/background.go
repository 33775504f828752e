package css

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/npillmayer/guistyle/maybe"
)

// Size is the extent of a box in pixels.
type Size struct {
	Width, Height float32
}

// Point is a position relative to the top left corner of a box.
type Point struct {
	X, Y float32
}

// --- Directions ------------------------------------------------------------

// DirectionCorner is a side or a corner of a box, as used in
// 'linear-gradient(to top right, …)'.
type DirectionCorner uint8

// Sides and corners
const (
	CornerRight DirectionCorner = iota
	CornerLeft
	CornerTop
	CornerBottom
	CornerTopRight
	CornerTopLeft
	CornerBottomRight
	CornerBottomLeft
)

var directionCornerNames = []string{"right", "left", "top", "bottom", "top right", "top left",
	"bottom right", "bottom left"}

func (c DirectionCorner) String() string { return enumName(directionCornerNames, uint8(c)) }

// Opposite returns the side or corner across the box.
func (c DirectionCorner) Opposite() DirectionCorner {
	switch c {
	case CornerRight:
		return CornerLeft
	case CornerLeft:
		return CornerRight
	case CornerTop:
		return CornerBottom
	case CornerBottom:
		return CornerTop
	case CornerTopRight:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopRight
	case CornerTopLeft:
		return CornerBottomRight
	}
	return CornerTopLeft // CornerBottomRight
}

// Combine joins a horizontal and a vertical side into a corner. Other
// combinations yield Nothing.
func (c DirectionCorner) Combine(other DirectionCorner) maybe.Maybe[DirectionCorner] {
	pair := func(a, b DirectionCorner) bool {
		return (c == a && other == b) || (c == b && other == a)
	}
	switch {
	case pair(CornerRight, CornerTop):
		return maybe.Just(CornerTopRight)
	case pair(CornerLeft, CornerTop):
		return maybe.Just(CornerTopLeft)
	case pair(CornerRight, CornerBottom):
		return maybe.Just(CornerBottomRight)
	case pair(CornerLeft, CornerBottom):
		return maybe.Just(CornerBottomLeft)
	}
	return maybe.Nothing[DirectionCorner]()
}

// ToPoint returns the midpoint of a side or the position of a corner.
func (c DirectionCorner) ToPoint(box Size) Point {
	w, h := box.Width, box.Height
	switch c {
	case CornerRight:
		return Point{w, h / 2}
	case CornerLeft:
		return Point{0, h / 2}
	case CornerTop:
		return Point{w / 2, 0}
	case CornerBottom:
		return Point{w / 2, h}
	case CornerTopRight:
		return Point{w, 0}
	case CornerTopLeft:
		return Point{0, 0}
	case CornerBottomRight:
		return Point{w, h}
	}
	return Point{0, h} // CornerBottomLeft
}

// Direction is the direction of a linear gradient: either an angle or a
// pair of sides/corners.
type Direction struct {
	isAngle  bool
	Angle    AngleValue
	From, To DirectionCorner
}

// AngleDirection creates a direction from an angle, where 0deg points up
// and angles run clockwise.
func AngleDirection(a AngleValue) Direction {
	return Direction{isAngle: true, Angle: a}
}

// FromTo creates a direction between two sides or corners.
func FromTo(from, to DirectionCorner) Direction {
	return Direction{From: from, To: to}
}

// DefaultDirection runs from top to bottom.
func DefaultDirection() Direction {
	return FromTo(CornerTop, CornerBottom)
}

// IsAngle is true for directions given as an angle.
func (d Direction) IsAngle() bool {
	return d.isAngle
}

// ToPoints computes start and end point of the gradient line within a box.
//
// For angles the gradient line passes through the center of the box and is
// long enough for the corners to receive the first and last color, i.e.
// its length is |w·sin a| + |h·cos a|.
func (d Direction) ToPoints(box Size) (Point, Point) {
	if !d.isAngle {
		return d.From.ToPoint(box), d.To.ToPoint(box)
	}
	rad := d.Angle.ToDegrees() * math32.Pi / 180
	sin, cos := math32.Sin(rad), math32.Cos(rad)
	half := (math32.Abs(box.Width*sin) + math32.Abs(box.Height*cos)) / 2
	cx, cy := box.Width/2, box.Height/2
	dx, dy := sin*half, -cos*half // y grows downwards
	return Point{cx - dx, cy - dy}, Point{cx + dx, cy + dy}
}

// ScaleForDPI is a no-op, directions carry no lengths.
func (d Direction) ScaleForDPI(factor float32) Direction { return d }

func (d Direction) String() string {
	if d.isAngle {
		return d.Angle.String()
	}
	if d.From == d.To.Opposite() {
		return "to " + d.To.String()
	}
	return "from " + d.From.String() + " to " + d.To.String()
}

// --- Background position and size ------------------------------------------

// PositionKeyword is a keyword component of a background position.
type PositionKeyword uint8

// Position keywords; PositionExact marks a length.
const (
	PositionStart  PositionKeyword = iota // left or top
	PositionCenter                        // center
	PositionEnd                           // right or bottom
	PositionExact                         // a length or percentage
)

// BackgroundPositionComponent is one axis of a background position.
type BackgroundPositionComponent struct {
	Keyword PositionKeyword
	Exact   PixelValue
}

// StyleBackgroundPosition is the type for CSS property "background-position"
// and for gradient centers.
type StyleBackgroundPosition struct {
	Horizontal BackgroundPositionComponent
	Vertical   BackgroundPositionComponent
}

// CenterPosition is 'center center'.
func CenterPosition() StyleBackgroundPosition {
	return StyleBackgroundPosition{
		Horizontal: BackgroundPositionComponent{Keyword: PositionCenter},
		Vertical:   BackgroundPositionComponent{Keyword: PositionCenter},
	}
}

func (c BackgroundPositionComponent) scaleForDPI(factor float32) BackgroundPositionComponent {
	if c.Keyword == PositionExact {
		c.Exact = c.Exact.ScaleForDPI(factor)
	}
	return c
}

// ScaleForDPI scales exact positions.
func (p StyleBackgroundPosition) ScaleForDPI(factor float32) StyleBackgroundPosition {
	return StyleBackgroundPosition{p.Horizontal.scaleForDPI(factor), p.Vertical.scaleForDPI(factor)}
}

func (c BackgroundPositionComponent) format(start, end string) string {
	switch c.Keyword {
	case PositionStart:
		return start
	case PositionEnd:
		return end
	case PositionCenter:
		return "center"
	}
	return c.Exact.String()
}

func (p StyleBackgroundPosition) String() string {
	return p.Horizontal.format("left", "right") + " " + p.Vertical.format("top", "bottom")
}

// BackgroundSizeKind tells how a background image is sized.
type BackgroundSizeKind uint8

// Sizing modes
const (
	BackgroundSizeExact BackgroundSizeKind = iota
	BackgroundSizeContain
	BackgroundSizeCover
)

// StyleBackgroundSize is the type for CSS property "background-size".
type StyleBackgroundSize struct {
	Kind  BackgroundSizeKind
	Exact [2]PixelValue
}

// ScaleForDPI scales exact sizes.
func (s StyleBackgroundSize) ScaleForDPI(factor float32) StyleBackgroundSize {
	if s.Kind == BackgroundSizeExact {
		s.Exact[0] = s.Exact[0].ScaleForDPI(factor)
		s.Exact[1] = s.Exact[1].ScaleForDPI(factor)
	}
	return s
}

func (s StyleBackgroundSize) String() string {
	switch s.Kind {
	case BackgroundSizeContain:
		return "contain"
	case BackgroundSizeCover:
		return "cover"
	}
	return s.Exact[0].String() + " " + s.Exact[1].String()
}

// Background properties are lists, one entry per background layer.
type (
	StyleBackgroundPositionVec []StyleBackgroundPosition
	StyleBackgroundSizeVec     []StyleBackgroundSize
	StyleBackgroundRepeatVec   []StyleBackgroundRepeat
)

// --- Gradients -------------------------------------------------------------

// LinearGradient is a 'linear-gradient(…)' or 'repeating-linear-gradient(…)'.
type LinearGradient struct {
	Direction  Direction
	ExtendMode ExtendMode
	Stops      []LinearColorStop
}

// Normalized returns the gradient's stops with all offsets filled in.
func (g LinearGradient) Normalized() []NormalizedLinearColorStop {
	return NormalizeLinearStops(g.Stops)
}

// RadialGradient is a 'radial-gradient(…)' or 'repeating-radial-gradient(…)'.
type RadialGradient struct {
	Shape      Shape
	Size       RadialGradientSize
	Position   StyleBackgroundPosition
	ExtendMode ExtendMode
	Stops      []LinearColorStop
}

// Normalized returns the gradient's stops with all offsets filled in.
func (g RadialGradient) Normalized() []NormalizedLinearColorStop {
	return NormalizeLinearStops(g.Stops)
}

// ConicGradient is a 'conic-gradient(…)' or 'repeating-conic-gradient(…)'.
type ConicGradient struct {
	ExtendMode ExtendMode
	Center     StyleBackgroundPosition
	Angle      AngleValue
	Stops      []RadialColorStop
}

// Normalized returns the gradient's stops with all offsets filled in.
func (g ConicGradient) Normalized() []NormalizedRadialColorStop {
	return NormalizeRadialStops(g.Stops)
}

// BackgroundContentKind discriminates StyleBackgroundContent.
type BackgroundContentKind uint8

// Kinds of background content
const (
	BackgroundLinearGradient BackgroundContentKind = iota
	BackgroundRadialGradient
	BackgroundConicGradient
	BackgroundImage
	BackgroundColor
)

// StyleBackgroundContent is one layer of CSS property "background".
// Exactly one of the payload fields is valid, depending on Kind.
type StyleBackgroundContent struct {
	Kind   BackgroundContentKind
	Linear LinearGradient
	Radial RadialGradient
	Conic  ConicGradient
	Image  string
	Color  ColorU
}

// StyleBackgroundContentVec holds the layers of a background.
type StyleBackgroundContentVec []StyleBackgroundContent

// BackgroundOfColor creates a plain colored background.
func BackgroundOfColor(c ColorU) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundColor, Color: c}
}

// BackgroundOfImage creates an image background, referencing an image by id.
func BackgroundOfImage(id string) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundImage, Image: id}
}

// BackgroundOfLinear creates a linear gradient background.
func BackgroundOfLinear(g LinearGradient) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundLinearGradient, Linear: g}
}

// BackgroundOfRadial creates a radial gradient background.
func BackgroundOfRadial(g RadialGradient) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundRadialGradient, Radial: g}
}

// BackgroundOfConic creates a conic gradient background.
func BackgroundOfConic(g ConicGradient) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundConicGradient, Conic: g}
}

// ScaleForDPI scales the pixel values of gradient positions.
func (b StyleBackgroundContent) ScaleForDPI(factor float32) StyleBackgroundContent {
	switch b.Kind {
	case BackgroundRadialGradient:
		b.Radial.Position = b.Radial.Position.ScaleForDPI(factor)
	case BackgroundConicGradient:
		b.Conic.Center = b.Conic.Center.ScaleForDPI(factor)
	}
	return b
}

// Interpolate blends two colored backgrounds. Other kinds snap at t = 0.5.
func (b StyleBackgroundContent) Interpolate(other StyleBackgroundContent, t float32) StyleBackgroundContent {
	if b.Kind == BackgroundColor && other.Kind == BackgroundColor {
		return BackgroundOfColor(b.Color.Interpolate(other.Color, t))
	}
	if t < 0.5 {
		return b
	}
	return other
}

func (b StyleBackgroundContent) String() string {
	switch b.Kind {
	case BackgroundColor:
		return b.Color.CSS()
	case BackgroundImage:
		return "image(" + quote(b.Image) + ")"
	case BackgroundLinearGradient:
		var sb strings.Builder
		sb.WriteString(repeatingPrefix(b.Linear.ExtendMode))
		sb.WriteString("linear-gradient(")
		sb.WriteString(b.Linear.Direction.String())
		writeLinearStops(&sb, b.Linear.Stops)
		sb.WriteString(")")
		return sb.String()
	case BackgroundRadialGradient:
		var sb strings.Builder
		sb.WriteString(repeatingPrefix(b.Radial.ExtendMode))
		sb.WriteString("radial-gradient(")
		sb.WriteString(b.Radial.Shape.String())
		sb.WriteString(" ")
		sb.WriteString(b.Radial.Size.String())
		sb.WriteString(" at ")
		sb.WriteString(b.Radial.Position.String())
		writeLinearStops(&sb, b.Radial.Stops)
		sb.WriteString(")")
		return sb.String()
	case BackgroundConicGradient:
		var sb strings.Builder
		sb.WriteString(repeatingPrefix(b.Conic.ExtendMode))
		sb.WriteString("conic-gradient(from ")
		sb.WriteString(b.Conic.Angle.String())
		sb.WriteString(" at ")
		sb.WriteString(b.Conic.Center.String())
		for _, s := range b.Conic.Stops {
			sb.WriteString(", ")
			sb.WriteString(s.String())
		}
		sb.WriteString(")")
		return sb.String()
	}
	return "none"
}

func repeatingPrefix(e ExtendMode) string {
	if e == ExtendRepeat {
		return "repeating-"
	}
	return ""
}

func writeLinearStops(sb *strings.Builder, stops []LinearColorStop) {
	for _, s := range stops {
		sb.WriteString(", ")
		sb.WriteString(s.String())
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// --- Lists of background layers ---------------------------------------------

func (v StyleBackgroundContentVec) String() string {
	s := make([]string, len(v))
	for i, b := range v {
		s[i] = b.String()
	}
	return strings.Join(s, ", ")
}

func (v StyleBackgroundContentVec) scaleForDPI(factor float32) StyleBackgroundContentVec {
	r := make(StyleBackgroundContentVec, len(v))
	for i, b := range v {
		r[i] = b.ScaleForDPI(factor)
	}
	return r
}

// interpolate layer by layer if both lists have the same number of layers.
func (v StyleBackgroundContentVec) interpolate(other StyleBackgroundContentVec, t float32) StyleBackgroundContentVec {
	if len(v) != len(other) {
		if t < 0.5 {
			return v
		}
		return other
	}
	r := make(StyleBackgroundContentVec, len(v))
	for i := range v {
		r[i] = v[i].Interpolate(other[i], t)
	}
	return r
}

func (v StyleBackgroundContentVec) clone() StyleBackgroundContentVec {
	if v == nil {
		return nil
	}
	r := make(StyleBackgroundContentVec, len(v))
	for i, b := range v {
		b.Linear.Stops = cloneSlice(b.Linear.Stops)
		b.Radial.Stops = cloneSlice(b.Radial.Stops)
		b.Conic.Stops = cloneSlice(b.Conic.Stops)
		r[i] = b
	}
	return r
}

func (v StyleBackgroundPositionVec) String() string {
	s := make([]string, len(v))
	for i, p := range v {
		s[i] = p.String()
	}
	return strings.Join(s, ", ")
}

func (v StyleBackgroundPositionVec) scaleForDPI(factor float32) StyleBackgroundPositionVec {
	r := make(StyleBackgroundPositionVec, len(v))
	for i, p := range v {
		r[i] = p.ScaleForDPI(factor)
	}
	return r
}

func (v StyleBackgroundSizeVec) String() string {
	s := make([]string, len(v))
	for i, z := range v {
		s[i] = z.String()
	}
	return strings.Join(s, ", ")
}

func (v StyleBackgroundSizeVec) scaleForDPI(factor float32) StyleBackgroundSizeVec {
	r := make(StyleBackgroundSizeVec, len(v))
	for i, z := range v {
		r[i] = z.ScaleForDPI(factor)
	}
	return r
}

func (v StyleBackgroundRepeatVec) String() string {
	s := make([]string, len(v))
	for i, r := range v {
		s[i] = r.String()
	}
	return strings.Join(s, ", ")
}
