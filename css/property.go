package css

import (
	"fmt"
	"math"
	"reflect"
	"sync"
)

// PropertyType is the tag of a CSS property. The order of the constants is
// part of the binary interface and must not change.
type PropertyType uint8

// Property types
const (
	PropTextColor PropertyType = iota
	PropFontSize
	PropFontFamily
	PropTextAlign
	PropLetterSpacing
	PropLineHeight
	PropWordSpacing
	PropTabWidth
	PropCursor
	PropDisplay
	PropFloat
	PropBoxSizing
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropPosition
	PropTop
	PropRight
	PropLeft
	PropBottom
	PropFlexWrap
	PropFlexDirection
	PropFlexGrow
	PropFlexShrink
	PropJustifyContent
	PropAlignItems
	PropAlignContent
	PropBackgroundContent
	PropBackgroundPosition
	PropBackgroundSize
	PropBackgroundRepeat
	PropOverflowX
	PropOverflowY
	PropPaddingTop
	PropPaddingLeft
	PropPaddingRight
	PropPaddingBottom
	PropMarginTop
	PropMarginLeft
	PropMarginRight
	PropMarginBottom
	PropBorderTopLeftRadius
	PropBorderTopRightRadius
	PropBorderBottomLeftRadius
	PropBorderBottomRightRadius
	PropBorderTopColor
	PropBorderRightColor
	PropBorderLeftColor
	PropBorderBottomColor
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderLeftStyle
	PropBorderBottomStyle
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderLeftWidth
	PropBorderBottomWidth
	PropBoxShadowLeft
	PropBoxShadowRight
	PropBoxShadowTop
	PropBoxShadowBottom
	PropScrollbarStyle
	PropOpacity
	PropTransform
	PropTransformOrigin
	PropPerspectiveOrigin
	PropBackfaceVisibility
	PropMixBlendMode
	PropFilter
	PropBackdropFilter
	PropTextShadow
	PropWhiteSpace
	PropDirection
	PropHyphens

	propertyTypeCount
)

// PropertyTypes returns all property types in order.
func PropertyTypes() []PropertyType {
	t := make([]PropertyType, propertyTypeCount)
	for i := range t {
		t[i] = PropertyType(i)
	}
	return t
}

// Key returns the CSS key of a property type, e.g. "padding-top".
func (t PropertyType) Key() string {
	if d := descriptorFor(t); d != nil {
		return d.key()
	}
	return fmt.Sprintf("<invalid property type %d>", t)
}

func (t PropertyType) String() string {
	return t.Key()
}

// IsInheritable is true for properties which a node inherits from its
// parent if it does not declare them.
func (t PropertyType) IsInheritable() bool {
	switch t {
	case PropTextColor, PropFontFamily, PropFontSize, PropLineHeight, PropTextAlign:
		return true
	}
	return false
}

// CanTriggerRelayout is false for properties which affect painting only.
func (t PropertyType) CanTriggerRelayout() bool {
	switch t {
	case PropTextColor, PropCursor,
		PropBackgroundContent, PropBackgroundPosition, PropBackgroundSize, PropBackgroundRepeat,
		PropBorderTopLeftRadius, PropBorderTopRightRadius,
		PropBorderBottomLeftRadius, PropBorderBottomRightRadius,
		PropBorderTopColor, PropBorderRightColor, PropBorderLeftColor, PropBorderBottomColor,
		PropBorderTopStyle, PropBorderRightStyle, PropBorderLeftStyle, PropBorderBottomStyle,
		PropBoxShadowLeft, PropBoxShadowRight, PropBoxShadowTop, PropBoxShadowBottom,
		PropScrollbarStyle, PropOpacity, PropTransform, PropTransformOrigin,
		PropPerspectiveOrigin, PropBackfaceVisibility, PropMixBlendMode,
		PropFilter, PropBackdropFilter, PropTextShadow:
		return false
	}
	return true
}

// IsGPUOnly is true for properties which may be animated without
// invalidating layout or display list.
func (t PropertyType) IsGPUOnly() bool {
	return t == PropOpacity || t == PropTransform
}

// --- Shorthands ------------------------------------------------------------

// CombinedPropertyType is a shorthand property, expanding into one or more
// longhand properties.
type CombinedPropertyType uint8

// Shorthand properties
const (
	CombinedBorderRadius CombinedPropertyType = iota
	CombinedOverflow
	CombinedPadding
	CombinedMargin
	CombinedBorder
	CombinedBorderLeft
	CombinedBorderRight
	CombinedBorderTop
	CombinedBorderBottom
	CombinedBoxShadow
	CombinedBackgroundColor
	CombinedBackgroundImage

	combinedPropertyTypeCount
)

var combinedKeys = []string{"border-radius", "overflow", "padding", "margin", "border",
	"border-left", "border-right", "border-top", "border-bottom", "box-shadow",
	"background-color", "background-image"}

// Key returns the CSS key of a shorthand.
func (c CombinedPropertyType) Key() string { return enumName(combinedKeys, uint8(c)) }

func (c CombinedPropertyType) String() string { return c.Key() }

// Longhands returns the longhand properties a shorthand expands to.
// The order of sides is top, right, bottom, left; the order of corners is
// top-left, top-right, bottom-right, bottom-left.
func (c CombinedPropertyType) Longhands() []PropertyType {
	switch c {
	case CombinedBorderRadius:
		return []PropertyType{PropBorderTopLeftRadius, PropBorderTopRightRadius,
			PropBorderBottomRightRadius, PropBorderBottomLeftRadius}
	case CombinedOverflow:
		return []PropertyType{PropOverflowX, PropOverflowY}
	case CombinedPadding:
		return []PropertyType{PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft}
	case CombinedMargin:
		return []PropertyType{PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft}
	case CombinedBorder:
		return []PropertyType{
			PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth,
			PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle,
			PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor}
	case CombinedBorderLeft:
		return []PropertyType{PropBorderLeftWidth, PropBorderLeftStyle, PropBorderLeftColor}
	case CombinedBorderRight:
		return []PropertyType{PropBorderRightWidth, PropBorderRightStyle, PropBorderRightColor}
	case CombinedBorderTop:
		return []PropertyType{PropBorderTopWidth, PropBorderTopStyle, PropBorderTopColor}
	case CombinedBorderBottom:
		return []PropertyType{PropBorderBottomWidth, PropBorderBottomStyle, PropBorderBottomColor}
	case CombinedBoxShadow:
		return []PropertyType{PropBoxShadowTop, PropBoxShadowRight, PropBoxShadowBottom,
			PropBoxShadowLeft}
	case CombinedBackgroundColor, CombinedBackgroundImage:
		return []PropertyType{PropBackgroundContent}
	}
	return nil
}

// --- Key registry ----------------------------------------------------------

var registry struct {
	once        sync.Once
	descriptors [propertyTypeCount]descriptor
	keys        map[string]PropertyType
	combined    map[string]CombinedPropertyType
}

func initRegistry() {
	registry.once.Do(func() {
		registry.descriptors = buildDescriptors()
		registry.keys = make(map[string]PropertyType, propertyTypeCount)
		for i, d := range registry.descriptors {
			registry.keys[d.key()] = PropertyType(i)
		}
		registry.combined = make(map[string]CombinedPropertyType, combinedPropertyTypeCount)
		for i, k := range combinedKeys {
			registry.combined[k] = CombinedPropertyType(i)
		}
		tracer().Debugf("css property registry initialized with %d keys", len(registry.keys))
	})
}

func descriptorFor(t PropertyType) descriptor {
	if t >= propertyTypeCount {
		return nil
	}
	initRegistry()
	return registry.descriptors[t]
}

// PropertyTypeFromKey looks up a longhand property by its CSS key.
func PropertyTypeFromKey(key string) (PropertyType, bool) {
	initRegistry()
	t, ok := registry.keys[key]
	return t, ok
}

// CombinedPropertyTypeFromKey looks up a shorthand property by its CSS key.
func CombinedPropertyTypeFromKey(key string) (CombinedPropertyType, bool) {
	initRegistry()
	c, ok := registry.combined[key]
	return c, ok
}

// --- Property --------------------------------------------------------------

// Property is a CSS property: a property type together with its lattice
// value. The dynamic type of the value is Value[T] for the Go type T
// registered for the property type.
type Property struct {
	typ   PropertyType
	value any
}

// Type returns the tag of p.
func (p Property) Type() PropertyType { return p.typ }

// Key returns the CSS key of p.
func (p Property) Key() string { return p.typ.Key() }

// IsValid is false for the zero Property.
func (p Property) IsValid() bool { return p.value != nil }

// Make creates a property from a lattice value. It panics if T is not the
// Go type registered for t, which is a programming error.
func Make[T any](t PropertyType, v Value[T]) Property {
	d, ok := descriptorFor(t).(*typedDescriptor[T])
	if !ok {
		var zero T
		panic(fmt.Sprintf("css: property %s does not take values of type %T", t.Key(), zero))
	}
	return Property{typ: d.typ, value: v}
}

// Exactly creates a property with an exact value, e.g.
//
//    css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](100))
func Exactly[T any](t PropertyType, x T) Property {
	return Make(t, Exact(x))
}

// ValueOf extracts the lattice value of p. It returns false if T is not
// the Go type of p's value.
func ValueOf[T any](p Property) (Value[T], bool) {
	v, ok := p.value.(Value[T])
	return v, ok
}

// ExactValueOf extracts the exact value of p, if any.
func ExactValueOf[T any](p Property) (T, bool) {
	v, ok := ValueOf[T](p)
	if !ok {
		var zero T
		return zero, false
	}
	return v.Get()
}

// ConstNone creates a property of type t with lattice value None.
func ConstNone(t PropertyType) Property { return descriptorFor(t).withKind(kindNone) }

// ConstAuto creates a property of type t with lattice value Auto.
func ConstAuto(t PropertyType) Property { return descriptorFor(t).withKind(kindAuto) }

// ConstInitial creates a property of type t with lattice value Initial.
func ConstInitial(t PropertyType) Property { return descriptorFor(t).withKind(kindInitial) }

// ConstInherit creates a property of type t with lattice value Inherit.
func ConstInherit(t PropertyType) Property { return descriptorFor(t).withKind(kindInherit) }

// DefaultFor returns the default value of a property type as an exact value.
func DefaultFor(t PropertyType) Property { return descriptorFor(t).defaultProperty() }

func (p Property) kind() valueKind {
	if p.value == nil {
		return kindAuto
	}
	return descriptorFor(p.typ).kindOf(p)
}

// IsAuto is true if p holds lattice value Auto.
func (p Property) IsAuto() bool { return p.kind() == kindAuto }

// IsNone is true if p holds lattice value None.
func (p Property) IsNone() bool { return p.kind() == kindNone }

// IsInherit is true if p holds lattice value Inherit.
func (p Property) IsInherit() bool { return p.kind() == kindInherit }

// IsInitial is true if p holds lattice value Initial.
func (p Property) IsInitial() bool { return p.kind() == kindInitial }

// IsExact is true if p holds an exact value.
func (p Property) IsExact() bool { return p.kind() == kindExact }

// ValueString returns the CSS text of p's value.
func (p Property) ValueString() string {
	if p.value == nil {
		return ""
	}
	return descriptorFor(p.typ).format(p)
}

// String returns 'key: value'.
func (p Property) String() string {
	return p.Key() + ": " + p.ValueString()
}

// ScaleForDPI converts the lengths of p from logical to physical pixels.
func (p Property) ScaleForDPI(factor float32) Property {
	if p.value == nil {
		return p
	}
	return descriptorFor(p.typ).scale(p, factor)
}

// Interpolate between two properties of the same type. Properties of
// different type yield the receiver.
func (p Property) Interpolate(other Property, t float32) Property {
	if p.typ != other.typ || p.value == nil || other.value == nil {
		return p
	}
	return descriptorFor(p.typ).interpolate(p, other, t)
}

// Clone returns a deep copy of p.
func (p Property) Clone() Property {
	if p.value == nil {
		return p
	}
	return descriptorFor(p.typ).clone(p)
}

// Equal compares two properties structurally.
func (p Property) Equal(other Property) bool {
	return p.typ == other.typ && reflect.DeepEqual(p.value, other.value)
}

// PixelValueOf returns the length of a pixel-wrapped property, e.g.
// width or padding-top. It reports false for other properties and for
// properties which are not Exact.
func PixelValueOf(p Property) (PixelValue, bool) {
	d := descriptorFor(p.typ)
	if d == nil || !p.IsValid() {
		return PixelValue{}, false
	}
	return d.pixel(p)
}

// Resolve computes the resolved value of a property for a node.
// declared is the property as declared for the node (zero if omitted),
// parent the resolved property of the parent node (zero at the root).
// Resolved properties are Exact, or Auto/None for properties where the
// keyword has no value of the property's type (e.g. 'width: auto').
func Resolve(t PropertyType, declared, parent Property) Property {
	d := descriptorFor(t)
	if !declared.IsValid() {
		if t.IsInheritable() && parent.IsValid() {
			return parent
		}
		return d.defaultProperty()
	}
	switch declared.kind() {
	case kindExact:
		return declared
	case kindInitial:
		return d.defaultProperty()
	case kindInherit:
		if parent.IsValid() {
			return parent
		}
		return d.defaultProperty()
	}
	return d.keyword(declared)
}

// --- Descriptors -----------------------------------------------------------

type descriptor interface {
	key() string
	kindOf(Property) valueKind
	withKind(valueKind) Property
	defaultProperty() Property
	parse(string) (Property, error)
	format(Property) string
	scale(Property, float32) Property
	interpolate(Property, Property, float32) Property
	clone(Property) Property
	keyword(Property) Property
	pixel(Property) (PixelValue, bool)
}

// typedDescriptor binds a property type to the Go type of its values.
type typedDescriptor[T any] struct {
	typ      PropertyType
	cssKey   string
	def      func() T
	parseFn  func(string) (T, error)
	formatFn func(T) string
	scaleFn  func(T, float32) T    // nil: no lengths
	interpFn func(T, T, float32) T // nil: snap at 0.5
	cloneFn  func(T) T             // nil: plain copy
	pixelFn  func(T) PixelValue    // nil: not a length
	autoAs   *T                    // value for keyword auto, if any
	noneAs   *T                    // value for keyword none, if any
}

func (d *typedDescriptor[T]) key() string { return d.cssKey }

func (d *typedDescriptor[T]) get(p Property) Value[T] {
	v, ok := p.value.(Value[T])
	if !ok {
		tracer().Errorf("property %s holds value of unexpected type %T", d.cssKey, p.value)
	}
	return v
}

func (d *typedDescriptor[T]) kindOf(p Property) valueKind { return d.get(p).kind }

func (d *typedDescriptor[T]) withKind(k valueKind) Property {
	return Property{typ: d.typ, value: Value[T]{kind: k}}
}

func (d *typedDescriptor[T]) defaultProperty() Property {
	return Property{typ: d.typ, value: Exact(d.def())}
}

func (d *typedDescriptor[T]) parse(s string) (Property, error) {
	x, err := d.parseFn(s)
	if err != nil {
		return Property{}, err
	}
	return Property{typ: d.typ, value: Exact(x)}, nil
}

func (d *typedDescriptor[T]) format(p Property) string {
	v := d.get(p)
	if x, ok := v.Get(); ok {
		return d.formatFn(x)
	}
	return v.keyword()
}

func (d *typedDescriptor[T]) scale(p Property, factor float32) Property {
	if d.scaleFn == nil {
		return p
	}
	return Property{typ: d.typ, value: d.get(p).Map(func(x T) T { return d.scaleFn(x, factor) })}
}

func (d *typedDescriptor[T]) interpolate(a, b Property, t float32) Property {
	v := InterpolateValues(d.get(a), d.get(b), t, d.interpFn)
	return Property{typ: d.typ, value: v}
}

func (d *typedDescriptor[T]) clone(p Property) Property {
	if d.cloneFn == nil {
		return p
	}
	return Property{typ: d.typ, value: d.get(p).Map(d.cloneFn)}
}

func (d *typedDescriptor[T]) keyword(p Property) Property {
	v := d.get(p)
	if v.kind == kindAuto && d.autoAs != nil {
		return Property{typ: d.typ, value: Exact(*d.autoAs)}
	}
	if v.kind == kindNone && d.noneAs != nil {
		return Property{typ: d.typ, value: Exact(*d.noneAs)}
	}
	return p
}

func (d *typedDescriptor[T]) pixel(p Property) (PixelValue, bool) {
	if d.pixelFn == nil {
		return PixelValue{}, false
	}
	x, ok := d.get(p).Get()
	if !ok {
		return PixelValue{}, false
	}
	return d.pixelFn(x), true
}

// --- Descriptor construction -----------------------------------------------

func pixelDescriptor[T pixelWrapper](t PropertyType, key string, def T) descriptor {
	return &typedDescriptor[T]{
		typ: t, cssKey: key,
		def: func() T { return def },
		parseFn: func(s string) (T, error) {
			p, err := ParsePixelValue(s)
			return wrapPixel[T](p), err
		},
		formatFn: func(x T) string { return pixelOf(x).String() },
		pixelFn:  pixelOf[T],
		scaleFn:  func(x T, f float32) T { return wrapPixel[T](pixelOf(x).ScaleForDPI(f)) },
		interpFn: func(a, b T, t float32) T {
			return wrapPixel[T](pixelOf(a).Interpolate(pixelOf(b), t))
		},
	}
}

func percentDescriptor[T percentWrapper](t PropertyType, key string, def T) descriptor {
	return &typedDescriptor[T]{
		typ: t, cssKey: key,
		def: func() T { return def },
		parseFn: func(s string) (T, error) {
			p, err := ParsePercentageValue(s)
			return wrapPercent[T](p), err
		},
		formatFn: func(x T) string { return percentOf(x).String() },
		interpFn: func(a, b T, t float32) T {
			return wrapPercent[T](percentOf(a).Interpolate(percentOf(b), t))
		},
	}
}

func floatDescriptor[T floatWrapper](t PropertyType, key string, def T) descriptor {
	return &typedDescriptor[T]{
		typ: t, cssKey: key,
		def: func() T { return def },
		parseFn: func(s string) (T, error) {
			f, err := ParseFloatValue(s)
			return wrapFloat[T](f), err
		},
		formatFn: func(x T) string { return floatOf(x).String() },
		interpFn: func(a, b T, t float32) T {
			return wrapFloat[T](floatOf(a).Interpolate(floatOf(b), t))
		},
	}
}

func colorDescriptor[T colorWrapper](t PropertyType, key string) descriptor {
	return &typedDescriptor[T]{
		typ: t, cssKey: key,
		def: func() T { return wrapColor[T](DefaultColor()) },
		parseFn: func(s string) (T, error) {
			c, err := ParseColor(s)
			return wrapColor[T](c), err
		},
		formatFn: func(x T) string { return colorOf(x).CSS() },
		interpFn: func(a, b T, t float32) T {
			return wrapColor[T](colorOf(a).Interpolate(colorOf(b), t))
		},
	}
}

// enumDescriptor creates a descriptor for an enumerated property. Keywords
// auto and none are mapped to enum values where the enum has them.
func enumDescriptor[T ~uint8](t PropertyType, key string, names []string, def T) descriptor {
	d := &typedDescriptor[T]{
		typ: t, cssKey: key,
		def:      func() T { return def },
		parseFn:  func(s string) (T, error) { return parseEnum[T](names, s) },
		formatFn: func(x T) string { return enumName(names, uint8(x)) },
	}
	if x, err := parseEnum[T](names, "auto"); err == nil {
		d.autoAs = &x
	}
	if x, err := parseEnum[T](names, "none"); err == nil {
		d.noneAs = &x
	}
	return d
}

func shadowDescriptor(t PropertyType, key string) descriptor {
	return &typedDescriptor[StyleBoxShadow]{
		typ: t, cssKey: key,
		def:      DefaultBoxShadow,
		parseFn:  ParseBoxShadow,
		formatFn: StyleBoxShadow.String,
		scaleFn:  StyleBoxShadow.ScaleForDPI,
		interpFn: StyleBoxShadow.Interpolate,
	}
}

func filterDescriptor(t PropertyType, key string) descriptor {
	return &typedDescriptor[StyleFilterVec]{
		typ: t, cssKey: key,
		def:      func() StyleFilterVec { return StyleFilterVec{} },
		parseFn:  ParseFilters,
		formatFn: StyleFilterVec.String,
		scaleFn:  StyleFilterVec.scaleForDPI,
		cloneFn:  cloneSlice[StyleFilterVec],
	}
}

func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return append(S{}, s...)
}

// MaxLength is the default of max-width and max-height.
var MaxLength = ConstPx(math.MaxInt32)

func buildDescriptors() [propertyTypeCount]descriptor {
	var d [propertyTypeCount]descriptor
	d[PropTextColor] = colorDescriptor[StyleTextColor](PropTextColor, "color")
	d[PropFontSize] = pixelDescriptor(PropFontSize, "font-size", defaultFontSize())
	d[PropFontFamily] = &typedDescriptor[StyleFontFamilyVec]{
		typ: PropFontFamily, cssKey: "font-family",
		def:      DefaultFontFamilies,
		parseFn:  ParseFontFamilies,
		formatFn: StyleFontFamilyVec.String,
		cloneFn:  cloneSlice[StyleFontFamilyVec],
	}
	d[PropTextAlign] = enumDescriptor(PropTextAlign, "text-align", styleTextAlignNames, TextAlignLeft)
	d[PropLetterSpacing] = pixelDescriptor(PropLetterSpacing, "letter-spacing", StyleLetterSpacing{ZeroPx})
	d[PropLineHeight] = percentDescriptor(PropLineHeight, "line-height", defaultLineHeight())
	d[PropWordSpacing] = pixelDescriptor(PropWordSpacing, "word-spacing", StyleWordSpacing{ZeroPx})
	d[PropTabWidth] = percentDescriptor(PropTabWidth, "tab-width", defaultTabWidth())
	d[PropCursor] = enumDescriptor(PropCursor, "cursor", styleCursorNames, CursorDefault)
	d[PropDisplay] = enumDescriptor(PropDisplay, "display", layoutDisplayNames, DisplayBlock)
	d[PropFloat] = enumDescriptor(PropFloat, "float", layoutFloatNames, FloatLeft)
	d[PropBoxSizing] = enumDescriptor(PropBoxSizing, "box-sizing", layoutBoxSizingNames, BoxSizingContentBox)
	d[PropWidth] = pixelDescriptor(PropWidth, "width", LayoutWidth{ZeroPx})
	d[PropHeight] = pixelDescriptor(PropHeight, "height", LayoutHeight{ZeroPx})
	d[PropMinWidth] = pixelDescriptor(PropMinWidth, "min-width", LayoutMinWidth{ZeroPx})
	d[PropMinHeight] = pixelDescriptor(PropMinHeight, "min-height", LayoutMinHeight{ZeroPx})
	d[PropMaxWidth] = pixelDescriptor(PropMaxWidth, "max-width", LayoutMaxWidth{MaxLength})
	d[PropMaxHeight] = pixelDescriptor(PropMaxHeight, "max-height", LayoutMaxHeight{MaxLength})
	d[PropPosition] = enumDescriptor(PropPosition, "position", layoutPositionNames, PositionStatic)
	d[PropTop] = pixelDescriptor(PropTop, "top", LayoutTop{ZeroPx})
	d[PropRight] = pixelDescriptor(PropRight, "right", LayoutRight{ZeroPx})
	d[PropLeft] = pixelDescriptor(PropLeft, "left", LayoutLeft{ZeroPx})
	d[PropBottom] = pixelDescriptor(PropBottom, "bottom", LayoutBottom{ZeroPx})
	d[PropFlexWrap] = enumDescriptor(PropFlexWrap, "flex-wrap", layoutFlexWrapNames, FlexWrapWrap)
	d[PropFlexDirection] = enumDescriptor(PropFlexDirection, "flex-direction", layoutFlexDirectionNames, FlexDirectionColumn)
	d[PropFlexGrow] = floatDescriptor(PropFlexGrow, "flex-grow", LayoutFlexGrow{})
	d[PropFlexShrink] = floatDescriptor(PropFlexShrink, "flex-shrink", LayoutFlexShrink{})
	d[PropJustifyContent] = enumDescriptor(PropJustifyContent, "justify-content", layoutJustifyContentNames, JustifyStart)
	d[PropAlignItems] = enumDescriptor(PropAlignItems, "align-items", layoutAlignItemsNames, AlignItemsFlexStart)
	d[PropAlignContent] = enumDescriptor(PropAlignContent, "align-content", layoutAlignContentNames, AlignContentStretch)
	d[PropBackgroundContent] = &typedDescriptor[StyleBackgroundContentVec]{
		typ: PropBackgroundContent, cssKey: "background",
		def:      func() StyleBackgroundContentVec { return StyleBackgroundContentVec{} },
		parseFn:  ParseBackgroundContents,
		formatFn: StyleBackgroundContentVec.String,
		scaleFn:  StyleBackgroundContentVec.scaleForDPI,
		interpFn: StyleBackgroundContentVec.interpolate,
		cloneFn:  StyleBackgroundContentVec.clone,
	}
	d[PropBackgroundPosition] = &typedDescriptor[StyleBackgroundPositionVec]{
		typ: PropBackgroundPosition, cssKey: "background-position",
		def:      func() StyleBackgroundPositionVec { return StyleBackgroundPositionVec{} },
		parseFn:  ParseBackgroundPositions,
		formatFn: StyleBackgroundPositionVec.String,
		scaleFn:  StyleBackgroundPositionVec.scaleForDPI,
		cloneFn:  cloneSlice[StyleBackgroundPositionVec],
	}
	d[PropBackgroundSize] = &typedDescriptor[StyleBackgroundSizeVec]{
		typ: PropBackgroundSize, cssKey: "background-size",
		def:      func() StyleBackgroundSizeVec { return StyleBackgroundSizeVec{} },
		parseFn:  ParseBackgroundSizes,
		formatFn: StyleBackgroundSizeVec.String,
		scaleFn:  StyleBackgroundSizeVec.scaleForDPI,
		cloneFn:  cloneSlice[StyleBackgroundSizeVec],
	}
	d[PropBackgroundRepeat] = &typedDescriptor[StyleBackgroundRepeatVec]{
		typ: PropBackgroundRepeat, cssKey: "background-repeat",
		def:      func() StyleBackgroundRepeatVec { return StyleBackgroundRepeatVec{} },
		parseFn:  ParseBackgroundRepeats,
		formatFn: StyleBackgroundRepeatVec.String,
		cloneFn:  cloneSlice[StyleBackgroundRepeatVec],
	}
	d[PropOverflowX] = enumDescriptor(PropOverflowX, "overflow-x", layoutOverflowNames, OverflowAuto)
	d[PropOverflowY] = enumDescriptor(PropOverflowY, "overflow-y", layoutOverflowNames, OverflowAuto)
	d[PropPaddingTop] = pixelDescriptor(PropPaddingTop, "padding-top", LayoutPadding{ZeroPx})
	d[PropPaddingLeft] = pixelDescriptor(PropPaddingLeft, "padding-left", LayoutPadding{ZeroPx})
	d[PropPaddingRight] = pixelDescriptor(PropPaddingRight, "padding-right", LayoutPadding{ZeroPx})
	d[PropPaddingBottom] = pixelDescriptor(PropPaddingBottom, "padding-bottom", LayoutPadding{ZeroPx})
	d[PropMarginTop] = pixelDescriptor(PropMarginTop, "margin-top", LayoutMargin{ZeroPx})
	d[PropMarginLeft] = pixelDescriptor(PropMarginLeft, "margin-left", LayoutMargin{ZeroPx})
	d[PropMarginRight] = pixelDescriptor(PropMarginRight, "margin-right", LayoutMargin{ZeroPx})
	d[PropMarginBottom] = pixelDescriptor(PropMarginBottom, "margin-bottom", LayoutMargin{ZeroPx})
	d[PropBorderTopLeftRadius] = pixelDescriptor(PropBorderTopLeftRadius, "border-top-left-radius", StyleBorderRadius{ZeroPx})
	d[PropBorderTopRightRadius] = pixelDescriptor(PropBorderTopRightRadius, "border-top-right-radius", StyleBorderRadius{ZeroPx})
	d[PropBorderBottomLeftRadius] = pixelDescriptor(PropBorderBottomLeftRadius, "border-bottom-left-radius", StyleBorderRadius{ZeroPx})
	d[PropBorderBottomRightRadius] = pixelDescriptor(PropBorderBottomRightRadius, "border-bottom-right-radius", StyleBorderRadius{ZeroPx})
	d[PropBorderTopColor] = colorDescriptor[StyleBorderColor](PropBorderTopColor, "border-top-color")
	d[PropBorderRightColor] = colorDescriptor[StyleBorderColor](PropBorderRightColor, "border-right-color")
	d[PropBorderLeftColor] = colorDescriptor[StyleBorderColor](PropBorderLeftColor, "border-left-color")
	d[PropBorderBottomColor] = colorDescriptor[StyleBorderColor](PropBorderBottomColor, "border-bottom-color")
	d[PropBorderTopStyle] = enumDescriptor(PropBorderTopStyle, "border-top-style", borderStyleNames, BorderStyleSolid)
	d[PropBorderRightStyle] = enumDescriptor(PropBorderRightStyle, "border-right-style", borderStyleNames, BorderStyleSolid)
	d[PropBorderLeftStyle] = enumDescriptor(PropBorderLeftStyle, "border-left-style", borderStyleNames, BorderStyleSolid)
	d[PropBorderBottomStyle] = enumDescriptor(PropBorderBottomStyle, "border-bottom-style", borderStyleNames, BorderStyleSolid)
	d[PropBorderTopWidth] = pixelDescriptor(PropBorderTopWidth, "border-top-width", LayoutBorderWidth{ZeroPx})
	d[PropBorderRightWidth] = pixelDescriptor(PropBorderRightWidth, "border-right-width", LayoutBorderWidth{ZeroPx})
	d[PropBorderLeftWidth] = pixelDescriptor(PropBorderLeftWidth, "border-left-width", LayoutBorderWidth{ZeroPx})
	d[PropBorderBottomWidth] = pixelDescriptor(PropBorderBottomWidth, "border-bottom-width", LayoutBorderWidth{ZeroPx})
	d[PropBoxShadowLeft] = shadowDescriptor(PropBoxShadowLeft, "-azul-box-shadow-left")
	d[PropBoxShadowRight] = shadowDescriptor(PropBoxShadowRight, "-azul-box-shadow-right")
	d[PropBoxShadowTop] = shadowDescriptor(PropBoxShadowTop, "-azul-box-shadow-top")
	d[PropBoxShadowBottom] = shadowDescriptor(PropBoxShadowBottom, "-azul-box-shadow-bottom")
	d[PropScrollbarStyle] = &typedDescriptor[ScrollbarStyle]{
		typ: PropScrollbarStyle, cssKey: "-azul-scrollbar-style",
		def:      DefaultScrollbarStyle,
		parseFn:  ParseScrollbarStyle,
		formatFn: ScrollbarStyle.String,
		scaleFn:  ScrollbarStyle.ScaleForDPI,
	}
	d[PropOpacity] = percentDescriptor(PropOpacity, "opacity", defaultOpacity())
	d[PropTransform] = &typedDescriptor[StyleTransformVec]{
		typ: PropTransform, cssKey: "transform",
		def:      func() StyleTransformVec { return StyleTransformVec{} },
		parseFn:  ParseTransforms,
		formatFn: StyleTransformVec.String,
		scaleFn:  StyleTransformVec.scaleForDPI,
		interpFn: StyleTransformVec.interpolate,
		cloneFn:  cloneSlice[StyleTransformVec],
	}
	d[PropTransformOrigin] = &typedDescriptor[StyleTransformOrigin]{
		typ: PropTransformOrigin, cssKey: "transform-origin",
		def: DefaultTransformOrigin,
		parseFn: func(s string) (StyleTransformOrigin, error) {
			x, y, err := parseOrigin(s)
			return StyleTransformOrigin{x, y}, err
		},
		formatFn: StyleTransformOrigin.String,
		scaleFn:  StyleTransformOrigin.ScaleForDPI,
		interpFn: StyleTransformOrigin.Interpolate,
	}
	d[PropPerspectiveOrigin] = &typedDescriptor[StylePerspectiveOrigin]{
		typ: PropPerspectiveOrigin, cssKey: "perspective-origin",
		def: DefaultPerspectiveOrigin,
		parseFn: func(s string) (StylePerspectiveOrigin, error) {
			x, y, err := parseOrigin(s)
			return StylePerspectiveOrigin{x, y}, err
		},
		formatFn: StylePerspectiveOrigin.String,
		scaleFn:  StylePerspectiveOrigin.ScaleForDPI,
		interpFn: StylePerspectiveOrigin.Interpolate,
	}
	d[PropBackfaceVisibility] = enumDescriptor(PropBackfaceVisibility, "backface-visibility", styleBackfaceVisibilityNames, BackfaceVisible)
	d[PropMixBlendMode] = enumDescriptor(PropMixBlendMode, "mix-blend-mode", styleMixBlendModeNames, BlendNormal)
	d[PropFilter] = filterDescriptor(PropFilter, "filter")
	d[PropBackdropFilter] = filterDescriptor(PropBackdropFilter, "backdrop-filter")
	d[PropTextShadow] = shadowDescriptor(PropTextShadow, "text-shadow")
	d[PropWhiteSpace] = enumDescriptor(PropWhiteSpace, "white-space", styleWhiteSpaceNames, WhiteSpaceNormal)
	d[PropDirection] = enumDescriptor(PropDirection, "direction", styleDirectionNames, DirectionLtr)
	d[PropHyphens] = enumDescriptor(PropHyphens, "hyphens", styleHyphensNames, HyphensAuto)
	return d
}
