package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/npillmayer/guistyle/maybe"
	"golang.org/x/image/colornames"
)

// Errors returned by the value parsers. Concrete errors wrap one of these.
var (
	ErrInvalidValue    = errors.New("invalid CSS value")
	ErrUnknownProperty = errors.New("unknown CSS property")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidValue}, args...)...)
}

// ParseProperty parses the value text of a longhand property. The keywords
// auto, none, initial and inherit are recognized for every property and
// yield the corresponding lattice value.
func ParseProperty(t PropertyType, text string) (Property, error) {
	d := descriptorFor(t)
	if d == nil {
		return Property{}, fmt.Errorf("%w: type %d", ErrUnknownProperty, t)
	}
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "auto":
		return d.withKind(kindAuto), nil
	case "none":
		return d.withKind(kindNone), nil
	case "initial":
		return d.withKind(kindInitial), nil
	case "inherit":
		return d.withKind(kindInherit), nil
	case "":
		return Property{}, invalid("empty value for %s", d.key())
	}
	p, err := d.parse(text)
	if err != nil {
		tracer().Infof("cannot parse %s: %q", d.key(), text)
		return Property{}, fmt.Errorf("%s: %w", d.key(), err)
	}
	return p, nil
}

// ParsePropertyByKey looks up a longhand key and parses its value.
func ParsePropertyByKey(key, text string) (Property, error) {
	t, ok := PropertyTypeFromKey(strings.ToLower(strings.TrimSpace(key)))
	if !ok {
		return Property{}, fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}
	return ParseProperty(t, text)
}

// --- Numbers and units -----------------------------------------------------

// maxNumber is the largest magnitude a FloatValue can hold.
const maxNumber = math.MaxInt64 / floatScale

// parseNumber parses a finite number which, multiplied by scale, fits
// into a FloatValue. NaN and infinities are rejected.
func parseNumber(s string, scale float64) (float32, bool) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f*scale) > maxNumber {
		return 0, false
	}
	return float32(f), true
}

// ParseFloatValue parses a plain number.
func ParseFloatValue(s string) (FloatValue, error) {
	f, ok := parseNumber(strings.TrimSpace(s), 1)
	if !ok {
		return FloatValue{}, invalid("number %q", s)
	}
	return NewFloat(f), nil
}

var pixelSuffixes = []struct {
	suffix string
	metric SizeMetric
}{
	{"px", MetricPx}, {"pt", MetricPt}, {"em", MetricEm}, {"in", MetricIn},
	{"cm", MetricCm}, {"mm", MetricMm}, {"%", MetricPercent},
}

// ParsePixelValue parses a length such as '10px', '1.5em' or '50%'.
// A number without unit is read as px.
func ParsePixelValue(s string) (PixelValue, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	metric := MetricPx
	number := s
	for _, u := range pixelSuffixes {
		if strings.HasSuffix(s, u.suffix) {
			metric, number = u.metric, strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}
	f, ok := parseNumber(number, 1)
	if !ok {
		return PixelValue{}, invalid("length %q", s)
	}
	return PixelValue{Metric: metric, Number: NewFloat(f)}, nil
}

// ParsePercentageValue parses '50%', or a fraction such as '0.5' which is
// read as 50%.
func ParsePercentageValue(s string) (PercentageValue, error) {
	s = strings.TrimSpace(s)
	if n := strings.TrimSuffix(s, "%"); n != s {
		f, ok := parseNumber(strings.TrimSpace(n), 1)
		if !ok {
			return PercentageValue{}, invalid("percentage %q", s)
		}
		return NewPercentage(f), nil
	}
	f, ok := parseNumber(s, 100)
	if !ok {
		return PercentageValue{}, invalid("percentage %q", s)
	}
	return NewPercentage(f * 100), nil
}

var angleSuffixes = []struct {
	suffix string
	metric AngleMetric
}{
	{"deg", AngleDeg}, {"grad", AngleGrad}, {"rad", AngleRad}, {"turn", AngleTurn},
	{"%", AnglePercent},
}

// ParseAngleValue parses an angle such as '45deg' or '0.25turn'. A number
// without unit is read as degrees.
func ParseAngleValue(s string) (AngleValue, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	metric := AngleDeg
	number := s
	for _, u := range angleSuffixes { // "grad" before "rad"
		if strings.HasSuffix(s, u.suffix) {
			metric, number = u.metric, strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}
	f, ok := parseNumber(number, 1)
	if !ok {
		return AngleValue{}, invalid("angle %q", s)
	}
	return AngleValue{Metric: metric, Number: NewFloat(f)}, nil
}

// --- Colors ----------------------------------------------------------------

// ParseColor parses a CSS color: '#rgb', '#rgba', '#rrggbb', '#rrggbbaa',
// 'rgb(…)', 'rgba(…)', 'hsl(…)', 'hsla(…)', 'transparent' or a color name.
// Color names may be hyphenated, e.g. 'alice-blue'.
func ParseColor(s string) (ColorU, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if name, args, ok := functionCall(s); ok {
		switch name {
		case "rgb", "rgba":
			return parseRGBColor(args, name == "rgba")
		case "hsl", "hsla":
			return parseHSLColor(args, name == "hsla")
		}
		return ColorU{}, invalid("color function %q", name)
	}
	if s == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[strings.ReplaceAll(s, "-", "")]; ok {
		return ColorU{c.R, c.G, c.B, c.A}, nil
	}
	return ColorU{}, invalid("color %q", s)
}

func parseHexColor(h string) (ColorU, error) {
	nibble := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(h[i:i+1], 16, 8)
		return uint8(v) * 17, err
	}
	byt := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(h[i:i+2], 16, 8)
		return uint8(v), err
	}
	var c [4]uint8
	c[3] = 255
	var err error
	switch len(h) {
	case 3, 4:
		for i := 0; i < len(h) && err == nil; i++ {
			c[i], err = nibble(i)
		}
	case 6, 8:
		for i := 0; i < len(h)/2 && err == nil; i++ {
			c[i], err = byt(2 * i)
		}
	default:
		return ColorU{}, invalid("hex color #%s", h)
	}
	if err != nil {
		return ColorU{}, invalid("hex color #%s", h)
	}
	return ColorU{c[0], c[1], c[2], c[3]}, nil
}

func colorArgs(args string, withAlpha bool) ([]string, error) {
	parts := splitRespectingParens(args, ',')
	if len(parts) == 1 { // space separated syntax
		parts = strings.Fields(strings.ReplaceAll(args, "/", " "))
	}
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want && !(len(parts) == 4 && !withAlpha) {
		return nil, invalid("expected %d color components, have %d", want, len(parts))
	}
	return parts, nil
}

func parseAlpha(s string) (uint8, error) {
	p, err := ParsePercentageValue(s)
	if err != nil {
		return 0, err
	}
	return clampChannel(p.Normalized() * 255), nil
}

func parseRGBColor(args string, withAlpha bool) (ColorU, error) {
	parts, err := colorArgs(args, withAlpha)
	if err != nil {
		return ColorU{}, err
	}
	var c [4]uint8
	c[3] = 255
	for i, p := range parts[:3] {
		if strings.HasSuffix(p, "%") {
			pc, err := ParsePercentageValue(p)
			if err != nil {
				return ColorU{}, err
			}
			c[i] = clampChannel(pc.Normalized() * 255)
			continue
		}
		f, ok := parseNumber(strings.TrimSpace(p), 1)
		if !ok {
			return ColorU{}, invalid("color component %q", p)
		}
		c[i] = clampChannel(f)
	}
	if len(parts) == 4 {
		if c[3], err = parseAlpha(parts[3]); err != nil {
			return ColorU{}, err
		}
	}
	return ColorU{c[0], c[1], c[2], c[3]}, nil
}

func parseHSLColor(args string, withAlpha bool) (ColorU, error) {
	parts, err := colorArgs(args, withAlpha)
	if err != nil {
		return ColorU{}, err
	}
	h, err := ParseAngleValue(parts[0])
	if err != nil {
		return ColorU{}, err
	}
	s, err := ParsePercentageValue(parts[1])
	if err != nil {
		return ColorU{}, err
	}
	l, err := ParsePercentageValue(parts[2])
	if err != nil {
		return ColorU{}, err
	}
	r, g, b := hslToRGB(h.ToDegrees(), s.Normalized(), l.Normalized())
	c := ColorU{clampChannel(r * 255), clampChannel(g * 255), clampChannel(b * 255), 255}
	if len(parts) == 4 {
		if c.A, err = parseAlpha(parts[3]); err != nil {
			return ColorU{}, err
		}
	}
	return c, nil
}

// hslToRGB converts hue (degrees), saturation and lightness (in [0…1]) to
// RGB components in [0…1].
func hslToRGB(h, s, l float32) (float32, float32, float32) {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math32.Abs(2*l-1)) * s
	hh := h / 60
	x := c * (1 - math32.Abs(math32.Mod(hh, 2)-1))
	var r, g, b float32
	switch {
	case hh < 1:
		r, g, b = c, x, 0
	case hh < 2:
		r, g, b = x, c, 0
	case hh < 3:
		r, g, b = 0, c, x
	case hh < 4:
		r, g, b = 0, x, c
	case hh < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return r + m, g + m, b + m
}

// --- Backgrounds -----------------------------------------------------------

// ParseBackgroundContents parses a comma separated list of background layers.
func ParseBackgroundContents(s string) (StyleBackgroundContentVec, error) {
	parts := splitRespectingParens(s, ',')
	if len(parts) == 0 {
		return nil, invalid("empty background")
	}
	v := make(StyleBackgroundContentVec, len(parts))
	for i, p := range parts {
		b, err := ParseBackgroundContent(p)
		if err != nil {
			return nil, err
		}
		v[i] = b
	}
	return v, nil
}

// ParseBackgroundContent parses one background layer: a color, an image
// reference 'image("id")' or 'url(…)', or a gradient.
func ParseBackgroundContent(s string) (StyleBackgroundContent, error) {
	s = strings.TrimSpace(s)
	name, args, ok := functionCall(s)
	if !ok {
		c, err := ParseColor(s)
		return BackgroundOfColor(c), err
	}
	extend := ExtendClamp
	if strings.HasPrefix(name, "repeating-") {
		extend, name = ExtendRepeat, strings.TrimPrefix(name, "repeating-")
	}
	switch name {
	case "image", "url":
		return BackgroundOfImage(unquote(args)), nil
	case "linear-gradient":
		g, err := parseLinearGradient(args)
		g.ExtendMode = extend
		return BackgroundOfLinear(g), err
	case "radial-gradient":
		g, err := parseRadialGradient(args)
		g.ExtendMode = extend
		return BackgroundOfRadial(g), err
	case "conic-gradient":
		g, err := parseConicGradient(args)
		g.ExtendMode = extend
		return BackgroundOfConic(g), err
	}
	c, err := ParseColor(s)
	return BackgroundOfColor(c), err
}

// ParseDirection parses the direction of a linear gradient: an angle,
// 'to <side> [<side>]' or 'from <side> [<side>] to <side> [<side>]'.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "from ") {
		i := strings.Index(s, " to ")
		if i < 0 {
			return Direction{}, invalid("direction %q", s)
		}
		from, err := parseCorner(s[5:i])
		if err != nil {
			return Direction{}, err
		}
		to, err := parseCorner(s[i+4:])
		return FromTo(from, to), err
	}
	if strings.HasPrefix(s, "to ") {
		to, err := parseCorner(s[3:])
		return FromTo(to.Opposite(), to), err
	}
	a, err := ParseAngleValue(s)
	if err != nil {
		return Direction{}, invalid("direction %q", s)
	}
	return AngleDirection(a), nil
}

func parseCorner(s string) (DirectionCorner, error) {
	fields := strings.Fields(s)
	sides := make([]DirectionCorner, len(fields))
	for i, f := range fields {
		c, err := parseEnum[DirectionCorner](directionCornerNames[:4], f)
		if err != nil {
			return 0, err
		}
		sides[i] = c
	}
	switch len(sides) {
	case 1:
		return sides[0], nil
	case 2:
		var c DirectionCorner
		switch m := sides[0].Combine(sides[1]).Match(); m {
		case m.Just(&c):
			return c, nil
		}
	}
	return 0, invalid("side or corner %q", s)
}

func parseLinearGradient(args string) (LinearGradient, error) {
	g := LinearGradient{Direction: DefaultDirection()}
	items := splitRespectingParens(args, ',')
	if len(items) > 0 {
		if d, err := ParseDirection(items[0]); err == nil {
			g.Direction = d
			items = items[1:]
		}
	}
	stops, err := parseLinearStops(items)
	g.Stops = stops
	return g, err
}

func parseLinearStops(items []string) ([]LinearColorStop, error) {
	stops := make([]LinearColorStop, 0, len(items))
	for _, item := range items {
		parts := splitRespectingParens(item, ' ')
		if len(parts) == 0 || len(parts) > 2 {
			return nil, invalid("color stop %q", item)
		}
		c, err := ParseColor(parts[0])
		if err != nil {
			return nil, err
		}
		stop := LinearStopAuto(c)
		if len(parts) == 2 {
			p, err := ParsePercentageValue(parts[1])
			if err != nil || !strings.HasSuffix(parts[1], "%") {
				return nil, invalid("color stop offset %q", parts[1])
			}
			stop.Offset = maybe.Just(p)
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

func parseRadialStops(items []string) ([]RadialColorStop, error) {
	stops := make([]RadialColorStop, 0, len(items))
	for _, item := range items {
		parts := splitRespectingParens(item, ' ')
		if len(parts) == 0 || len(parts) > 2 {
			return nil, invalid("color stop %q", item)
		}
		c, err := ParseColor(parts[0])
		if err != nil {
			return nil, err
		}
		stop := RadialStopAuto(c)
		if len(parts) == 2 {
			a, err := ParseAngleValue(parts[1])
			if err != nil {
				return nil, err
			}
			stop.Offset = maybe.Just(a)
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// parseRadialGradient parses '[shape] [size] [at position], stops…'.
func parseRadialGradient(args string) (RadialGradient, error) {
	g := RadialGradient{Size: FarthestCorner, Position: CenterPosition()}
	items := splitRespectingParens(args, ',')
	if len(items) > 0 {
		if ok, err := parseRadialShape(items[0], &g); ok {
			if err != nil {
				return g, err
			}
			items = items[1:]
		}
	}
	stops, err := parseLinearStops(items)
	g.Stops = stops
	return g, err
}

func parseRadialShape(s string, g *RadialGradient) (bool, error) {
	s = strings.ToLower(s)
	pos := ""
	if i := strings.Index(" "+s, " at "); i >= 0 {
		s, pos = strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+3:])
	}
	isShape := pos != ""
	for _, f := range strings.Fields(s) {
		if shape, err := parseEnum[Shape](shapeNames, f); err == nil {
			g.Shape, isShape = shape, true
		} else if size, err := parseEnum[RadialGradientSize](radialGradientSizeNames, f); err == nil {
			g.Size, isShape = size, true
		} else if isShape {
			return true, invalid("radial gradient shape %q", s)
		} else {
			return false, nil
		}
	}
	if pos != "" {
		p, err := ParseBackgroundPosition(pos)
		if err != nil {
			return true, err
		}
		g.Position = p
	}
	return isShape, nil
}

// parseConicGradient parses '[from angle] [at position], stops…'.
func parseConicGradient(args string) (ConicGradient, error) {
	g := ConicGradient{Center: CenterPosition(), Angle: Deg(0)}
	items := splitRespectingParens(args, ',')
	if len(items) > 0 {
		head := strings.ToLower(items[0])
		if strings.HasPrefix(head, "from ") || strings.HasPrefix(head, "at ") {
			pos := ""
			if i := strings.Index(" "+head, " at "); i >= 0 {
				head, pos = strings.TrimSpace(head[:i]), strings.TrimSpace(head[i+3:])
			}
			if head != "" {
				a, err := ParseAngleValue(strings.TrimPrefix(head, "from "))
				if err != nil {
					return g, err
				}
				g.Angle = a
			}
			if pos != "" {
				p, err := ParseBackgroundPosition(pos)
				if err != nil {
					return g, err
				}
				g.Center = p
			}
			items = items[1:]
		}
	}
	stops, err := parseRadialStops(items)
	g.Stops = stops
	return g, err
}

// ParseBackgroundPositions parses a comma separated list of positions.
func ParseBackgroundPositions(s string) (StyleBackgroundPositionVec, error) {
	parts := splitRespectingParens(s, ',')
	v := make(StyleBackgroundPositionVec, len(parts))
	for i, p := range parts {
		pos, err := ParseBackgroundPosition(p)
		if err != nil {
			return nil, err
		}
		v[i] = pos
	}
	return v, nil
}

// ParseBackgroundPosition parses one or two position components. A single
// component leaves the other axis centered.
func ParseBackgroundPosition(s string) (StyleBackgroundPosition, error) {
	fields := strings.Fields(strings.ToLower(s))
	pos := CenterPosition()
	if len(fields) == 0 || len(fields) > 2 {
		return pos, invalid("background position %q", s)
	}
	if fields[0] == "top" || fields[0] == "bottom" ||
		(len(fields) == 2 && (fields[1] == "left" || fields[1] == "right")) {
		if len(fields) == 2 {
			fields[0], fields[1] = fields[1], fields[0]
		} else {
			fields = []string{"center", fields[0]}
		}
	}
	var err error
	if pos.Horizontal, err = parsePositionComponent(fields[0], "left", "right"); err != nil {
		return pos, err
	}
	if len(fields) == 2 {
		if pos.Vertical, err = parsePositionComponent(fields[1], "top", "bottom"); err != nil {
			return pos, err
		}
	}
	return pos, nil
}

func parsePositionComponent(s, start, end string) (BackgroundPositionComponent, error) {
	switch s {
	case start:
		return BackgroundPositionComponent{Keyword: PositionStart}, nil
	case "center":
		return BackgroundPositionComponent{Keyword: PositionCenter}, nil
	case end:
		return BackgroundPositionComponent{Keyword: PositionEnd}, nil
	}
	p, err := ParsePixelValue(s)
	if err != nil {
		return BackgroundPositionComponent{}, err
	}
	return BackgroundPositionComponent{Keyword: PositionExact, Exact: p}, nil
}

// ParseBackgroundSizes parses a comma separated list of background sizes.
func ParseBackgroundSizes(s string) (StyleBackgroundSizeVec, error) {
	parts := splitRespectingParens(s, ',')
	v := make(StyleBackgroundSizeVec, len(parts))
	for i, p := range parts {
		switch strings.ToLower(p) {
		case "contain":
			v[i] = StyleBackgroundSize{Kind: BackgroundSizeContain}
		case "cover":
			v[i] = StyleBackgroundSize{Kind: BackgroundSizeCover}
		default:
			fields := strings.Fields(p)
			if len(fields) == 0 || len(fields) > 2 {
				return nil, invalid("background size %q", p)
			}
			w, err := ParsePixelValue(fields[0])
			if err != nil {
				return nil, err
			}
			h := w
			if len(fields) == 2 {
				if h, err = ParsePixelValue(fields[1]); err != nil {
					return nil, err
				}
			}
			v[i] = StyleBackgroundSize{Kind: BackgroundSizeExact, Exact: [2]PixelValue{w, h}}
		}
	}
	return v, nil
}

// ParseBackgroundRepeats parses a comma separated list of repeat modes.
func ParseBackgroundRepeats(s string) (StyleBackgroundRepeatVec, error) {
	parts := splitRespectingParens(s, ',')
	v := make(StyleBackgroundRepeatVec, len(parts))
	for i, p := range parts {
		r, err := parseEnum[StyleBackgroundRepeat](styleBackgroundRepeatNames, p)
		if err != nil {
			return nil, err
		}
		v[i] = r
	}
	return v, nil
}

// --- Shadows, filters, transforms ------------------------------------------

// ParseBoxShadow parses 'x y [blur [spread]] [color] [inset|outset]'.
func ParseBoxShadow(s string) (StyleBoxShadow, error) {
	shadow := DefaultBoxShadow()
	fields := splitRespectingParens(s, ' ')
	if n := len(fields); n > 0 {
		switch strings.ToLower(fields[n-1]) {
		case "inset":
			shadow.ClipMode, fields = ClipInset, fields[:n-1]
		case "outset":
			fields = fields[:n-1]
		}
	}
	var lengths []PixelValue
	hasColor := false
	for _, f := range fields {
		p, err := ParsePixelValue(f)
		if err != nil {
			c, cerr := ParseColor(f)
			if cerr != nil || hasColor {
				return shadow, invalid("box shadow %q", s)
			}
			shadow.Color, hasColor = c, true
			continue
		}
		if p.IsPercent() {
			return shadow, invalid("percentage in box shadow %q", s)
		}
		lengths = append(lengths, p)
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return shadow, invalid("box shadow %q needs 2 to 4 lengths", s)
	}
	shadow.Offset = [2]PixelValue{lengths[0], lengths[1]}
	if len(lengths) > 2 {
		shadow.BlurRadius = lengths[2]
	}
	if len(lengths) > 3 {
		shadow.SpreadRadius = lengths[3]
	}
	return shadow, nil
}

// ParseFilters parses a list of filter functions, separated by commas or
// white space.
func ParseFilters(s string) (StyleFilterVec, error) {
	items := splitFunctions(s)
	if len(items) == 0 {
		return nil, invalid("empty filter")
	}
	v := make(StyleFilterVec, 0, len(items))
	for _, item := range items {
		f, err := parseFilter(item)
		if err != nil {
			return nil, err
		}
		v = append(v, f)
	}
	return v, nil
}

func parseFilter(s string) (StyleFilter, error) {
	name, args, ok := functionCall(s)
	if !ok {
		return StyleFilter{}, invalid("filter %q", s)
	}
	kind, err := parseEnum[FilterKind](filterKindNames, name)
	if err != nil {
		return StyleFilter{}, err
	}
	switch kind {
	case FilterBlend:
		m, err := parseEnum[StyleMixBlendMode](styleMixBlendModeNames, args)
		return BlendFilter(m), err
	case FilterFlood:
		c, err := ParseColor(args)
		return FloodFilter(c), err
	case FilterBlur, FilterOffset:
		ls, err := parseLengths(args, 2)
		if err != nil {
			return StyleFilter{}, err
		}
		if kind == FilterBlur {
			return BlurFilter(ls[0], ls[1]), nil
		}
		return OffsetFilter(ls[0], ls[1]), nil
	case FilterOpacity:
		p, err := ParsePercentageValue(args)
		return OpacityFilter(p), err
	case FilterColorMatrix:
		fs, err := parseFloats(args, 20)
		var m [20]FloatValue
		copy(m[:], fs)
		return ColorMatrixFilter(m), err
	case FilterDropShadow:
		sh, err := ParseBoxShadow(args)
		return DropShadowFilter(sh), err
	case FilterComponentTransfer:
		return ComponentTransferFilter(), nil
	}
	c, err := parseCompositeFilter(args)
	return CompositeFilter(c), err
}

func parseCompositeFilter(s string) (StyleCompositeFilter, error) {
	if name, args, ok := functionCall(s); ok {
		if name != "arithmetic" {
			return StyleCompositeFilter{}, invalid("composite %q", s)
		}
		fs, err := parseFloats(args, 4)
		c := StyleCompositeFilter{Operator: CompositeArithmetic}
		copy(c.K[:], fs)
		return c, err
	}
	op, err := parseEnum[CompositeOperator](compositeOperatorNames[:CompositeArithmetic], s)
	return StyleCompositeFilter{Operator: op}, err
}

// ParseTransforms parses a list of transform functions, separated by
// white space or commas.
func ParseTransforms(s string) (StyleTransformVec, error) {
	items := splitFunctions(s)
	if len(items) == 0 {
		return nil, invalid("empty transform")
	}
	v := make(StyleTransformVec, 0, len(items))
	for _, item := range items {
		t, err := parseTransform(item)
		if err != nil {
			return nil, err
		}
		v = append(v, t)
	}
	return v, nil
}

func parseTransform(s string) (StyleTransform, error) {
	name, args, ok := functionCall(s)
	if !ok {
		return StyleTransform{}, invalid("transform %q", s)
	}
	kind, err := parseEnum[TransformKind](transformKindNames, name)
	if err != nil {
		return StyleTransform{}, err
	}
	m, l, f, a := kind.arity()
	parts := splitArgs(args)
	if len(parts) != m+l+f+a {
		return StyleTransform{}, invalid("%s expects %d arguments, has %d", kind, m+l+f+a, len(parts))
	}
	t := StyleTransform{Kind: kind}
	for i := 0; i < m; i++ {
		if t.Matrix[i], err = ParseFloatValue(parts[i]); err != nil {
			return t, err
		}
	}
	parts = parts[m:]
	for i := 0; i < l; i++ {
		if t.Lengths[i], err = ParsePixelValue(parts[i]); err != nil {
			return t, err
		}
	}
	parts = parts[l:]
	for i := 0; i < f; i++ {
		if t.Factors[i], err = ParseFloatValue(parts[i]); err != nil {
			return t, err
		}
	}
	parts = parts[f:]
	for i := 0; i < a; i++ {
		if t.Angles[i], err = ParseAngleValue(parts[i]); err != nil {
			return t, err
		}
	}
	return t, nil
}

// parseOrigin parses 'x y' for transform and perspective origins. Keywords
// left/center/right and top/bottom are converted to percentages.
func parseOrigin(s string) (PixelValue, PixelValue, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 2 {
		return PixelValue{}, PixelValue{}, invalid("origin %q needs two components", s)
	}
	comp := func(f string) (PixelValue, error) {
		switch f {
		case "left", "top":
			return ConstPercent(0), nil
		case "center":
			return ConstPercent(50), nil
		case "right", "bottom":
			return ConstPercent(100), nil
		}
		return ParsePixelValue(f)
	}
	x, err := comp(fields[0])
	if err != nil {
		return x, x, err
	}
	y, err := comp(fields[1])
	return x, y, err
}

func parseLengths(args string, n int) ([]PixelValue, error) {
	parts := splitArgs(args)
	if len(parts) != n {
		return nil, invalid("expected %d lengths in %q", n, args)
	}
	ls := make([]PixelValue, n)
	for i, p := range parts {
		l, err := ParsePixelValue(p)
		if err != nil {
			return nil, err
		}
		ls[i] = l
	}
	return ls, nil
}

func parseFloats(args string, n int) ([]FloatValue, error) {
	parts := splitArgs(args)
	if len(parts) != n {
		return nil, invalid("expected %d numbers in %q", n, args)
	}
	fs := make([]FloatValue, n)
	for i, p := range parts {
		f, err := ParseFloatValue(p)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

// --- Tokenizing helpers ----------------------------------------------------

// splitRespectingParens splits s at sep, ignoring separators within
// parentheses or quotes. Parts are trimmed; empty parts are dropped.
func splitRespectingParens(s string, sep rune) []string {
	var parts []string
	depth := 0
	var quote rune
	start := 0
	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			parts = append(parts, p)
		}
	}
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (r == sep || (sep == ' ' && (r == '\t' || r == '\n'))):
			flush(i)
			start = i + 1
		}
	}
	flush(len(s))
	return parts
}

// splitArgs splits function arguments at commas, or at white space if
// there are no commas.
func splitArgs(args string) []string {
	if parts := splitRespectingParens(args, ','); len(parts) > 1 {
		return parts
	}
	return splitRespectingParens(args, ' ')
}

// splitFunctions splits a list of function calls, separated by white space
// or commas.
func splitFunctions(s string) []string {
	var items []string
	for _, p := range splitRespectingParens(s, ',') {
		items = append(items, splitRespectingParens(p, ' ')...)
	}
	return items
}

// functionCall splits 'name(args)' into lower-case name and args.
func functionCall(s string) (string, string, bool) {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, '(')
	if i <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(s[:i])), strings.TrimSpace(s[i+1 : len(s)-1]), true
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}

// SplitComponents splits a property value at white space outside of
// parentheses and quotes, e.g. "1px solid rgb(0, 0, 0)".
func SplitComponents(s string) []string {
	return splitRespectingParens(s, ' ')
}

// SplitList splits a comma separated value list outside of parentheses
// and quotes.
func SplitList(s string) []string {
	return splitRespectingParens(s, ',')
}
