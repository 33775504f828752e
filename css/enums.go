package css

import (
	"fmt"
	"strings"
)

// Enumerated properties are plain uint8 enums. Their CSS spelling is held in
// a name table indexed by the enum value.

func enumName(names []string, i uint8) string {
	if int(i) < len(names) {
		return names[i]
	}
	return fmt.Sprintf("<invalid %d>", i)
}

func parseEnum[T ~uint8](names []string, s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return T(0), fmt.Errorf("%w: %q, expected one of %s", ErrInvalidValue, s, strings.Join(names, ", "))
}

// --- Layout ----------------------------------------------------------------

// LayoutDisplay is the type for CSS property "display".
type LayoutDisplay uint8

// Values for LayoutDisplay
const (
	DisplayNone LayoutDisplay = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayInlineFlex
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayListItem
	DisplayRunIn
	DisplayMarker
	DisplayGrid
	DisplayInlineGrid
	DisplayInitial
	DisplayInherit
)

var layoutDisplayNames = []string{"none", "block", "inline", "inline-block", "flex",
	"inline-flex", "table", "inline-table", "table-row-group", "table-header-group",
	"table-footer-group", "table-row", "table-column-group", "table-column", "table-cell",
	"table-caption", "list-item", "run-in", "marker", "grid", "inline-grid", "initial",
	"inherit"}

func (d LayoutDisplay) String() string { return enumName(layoutDisplayNames, uint8(d)) }

// IsBlockLevel is true for display modes creating a block-level box.
func (d LayoutDisplay) IsBlockLevel() bool {
	switch d {
	case DisplayBlock, DisplayFlex, DisplayTable, DisplayListItem, DisplayGrid:
		return true
	}
	return false
}

// LayoutFloat is the type for CSS property "float". There is no variant for
// "float: none"; a declaration of none is held as lattice value None.
type LayoutFloat uint8

// Values for LayoutFloat
const (
	FloatLeft LayoutFloat = iota
	FloatRight
)

var layoutFloatNames = []string{"left", "right"}

func (f LayoutFloat) String() string { return enumName(layoutFloatNames, uint8(f)) }

// LayoutBoxSizing is the type for CSS property "box-sizing".
type LayoutBoxSizing uint8

// Values for LayoutBoxSizing
const (
	BoxSizingContentBox LayoutBoxSizing = iota
	BoxSizingBorderBox
)

var layoutBoxSizingNames = []string{"content-box", "border-box"}

func (b LayoutBoxSizing) String() string { return enumName(layoutBoxSizingNames, uint8(b)) }

// LayoutPosition is the type for CSS property "position".
type LayoutPosition uint8

// Values for LayoutPosition
const (
	PositionStatic LayoutPosition = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

var layoutPositionNames = []string{"static", "relative", "absolute", "fixed"}

func (p LayoutPosition) String() string { return enumName(layoutPositionNames, uint8(p)) }

// LayoutFlexDirection is the type for CSS property "flex-direction".
type LayoutFlexDirection uint8

// Values for LayoutFlexDirection
const (
	FlexDirectionRow LayoutFlexDirection = iota
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse
)

var layoutFlexDirectionNames = []string{"row", "row-reverse", "column", "column-reverse"}

func (d LayoutFlexDirection) String() string { return enumName(layoutFlexDirectionNames, uint8(d)) }

// IsReverse is true for reversed flex directions.
func (d LayoutFlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// LayoutFlexWrap is the type for CSS property "flex-wrap".
type LayoutFlexWrap uint8

// Values for LayoutFlexWrap
const (
	FlexWrapWrap LayoutFlexWrap = iota
	FlexWrapNoWrap
)

var layoutFlexWrapNames = []string{"wrap", "nowrap"}

func (w LayoutFlexWrap) String() string { return enumName(layoutFlexWrapNames, uint8(w)) }

// LayoutJustifyContent is the type for CSS property "justify-content".
type LayoutJustifyContent uint8

// Values for LayoutJustifyContent
const (
	JustifyStart LayoutJustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var layoutJustifyContentNames = []string{"flex-start", "flex-end", "center",
	"space-between", "space-around", "space-evenly"}

func (j LayoutJustifyContent) String() string {
	return enumName(layoutJustifyContentNames, uint8(j))
}

// LayoutAlignItems is the type for CSS property "align-items".
type LayoutAlignItems uint8

// Values for LayoutAlignItems
const (
	AlignItemsStretch LayoutAlignItems = iota
	AlignItemsCenter
	AlignItemsFlexStart
	AlignItemsFlexEnd
)

var layoutAlignItemsNames = []string{"stretch", "center", "flex-start", "flex-end"}

func (a LayoutAlignItems) String() string { return enumName(layoutAlignItemsNames, uint8(a)) }

// LayoutAlignContent is the type for CSS property "align-content".
type LayoutAlignContent uint8

// Values for LayoutAlignContent
const (
	AlignContentStretch LayoutAlignContent = iota
	AlignContentCenter
	AlignContentStart
	AlignContentEnd
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

var layoutAlignContentNames = []string{"stretch", "center", "flex-start", "flex-end",
	"space-between", "space-around"}

func (a LayoutAlignContent) String() string { return enumName(layoutAlignContentNames, uint8(a)) }

// LayoutOverflow is the type for CSS properties "overflow-x" and "overflow-y".
type LayoutOverflow uint8

// Values for LayoutOverflow
const (
	OverflowScroll LayoutOverflow = iota
	OverflowAuto
	OverflowHidden
	OverflowVisible
)

var layoutOverflowNames = []string{"scroll", "auto", "hidden", "visible"}

func (o LayoutOverflow) String() string { return enumName(layoutOverflowNames, uint8(o)) }

// NeedsScrollbar tells if a scrollbar is to be shown, given whether the
// content overflows its box.
func (o LayoutOverflow) NeedsScrollbar(overflows bool) bool {
	switch o {
	case OverflowScroll:
		return true
	case OverflowAuto:
		return overflows
	}
	return false
}

// --- Text and decoration ---------------------------------------------------

// StyleTextAlign is the type for CSS property "text-align".
type StyleTextAlign uint8

// Values for StyleTextAlign
const (
	TextAlignLeft StyleTextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var styleTextAlignNames = []string{"left", "center", "right", "justify"}

func (a StyleTextAlign) String() string { return enumName(styleTextAlignNames, uint8(a)) }

// StyleDirection is the type for CSS property "direction".
type StyleDirection uint8

// Values for StyleDirection
const (
	DirectionLtr StyleDirection = iota
	DirectionRtl
)

var styleDirectionNames = []string{"ltr", "rtl"}

func (d StyleDirection) String() string { return enumName(styleDirectionNames, uint8(d)) }

// StyleHyphens is the type for CSS property "hyphens".
type StyleHyphens uint8

// Values for StyleHyphens
const (
	HyphensAuto StyleHyphens = iota
	HyphensNone
)

var styleHyphensNames = []string{"auto", "none"}

func (h StyleHyphens) String() string { return enumName(styleHyphensNames, uint8(h)) }

// StyleWhiteSpace is the type for CSS property "white-space".
type StyleWhiteSpace uint8

// Values for StyleWhiteSpace
const (
	WhiteSpaceNormal StyleWhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNowrap
)

var styleWhiteSpaceNames = []string{"normal", "pre", "nowrap"}

func (w StyleWhiteSpace) String() string { return enumName(styleWhiteSpaceNames, uint8(w)) }

// StyleBackfaceVisibility is the type for CSS property "backface-visibility".
type StyleBackfaceVisibility uint8

// Values for StyleBackfaceVisibility
const (
	BackfaceHidden StyleBackfaceVisibility = iota
	BackfaceVisible
)

var styleBackfaceVisibilityNames = []string{"hidden", "visible"}

func (b StyleBackfaceVisibility) String() string {
	return enumName(styleBackfaceVisibilityNames, uint8(b))
}

// BorderStyle is the type for CSS properties "border-*-style".
type BorderStyle uint8

// Values for BorderStyle
const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleNames = []string{"none", "solid", "double", "dotted", "dashed", "hidden",
	"groove", "ridge", "inset", "outset"}

func (b BorderStyle) String() string { return enumName(borderStyleNames, uint8(b)) }

// ParseBorderStyle parses a border style keyword, e.g. "dashed".
func ParseBorderStyle(s string) (BorderStyle, error) {
	return parseEnum[BorderStyle](borderStyleNames, s)
}

// StyleCursor is the type for CSS property "cursor".
type StyleCursor uint8

// Values for StyleCursor
const (
	CursorAlias StyleCursor = iota
	CursorAllScroll
	CursorCell
	CursorColResize
	CursorContextMenu
	CursorCopy
	CursorCrosshair
	CursorDefault
	CursorEResize
	CursorEwResize
	CursorGrab
	CursorGrabbing
	CursorHelp
	CursorMove
	CursorNResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorPointer
	CursorProgress
	CursorRowResize
	CursorSResize
	CursorSeResize
	CursorText
	CursorUnset
	CursorVerticalText
	CursorWResize
	CursorWait
	CursorZoomIn
	CursorZoomOut
)

var styleCursorNames = []string{"alias", "all-scroll", "cell", "col-resize", "context-menu",
	"copy", "crosshair", "default", "e-resize", "ew-resize", "grab", "grabbing", "help", "move",
	"n-resize", "ns-resize", "nesw-resize", "nwse-resize", "pointer", "progress", "row-resize",
	"s-resize", "se-resize", "text", "unset", "vertical-text", "w-resize", "wait", "zoom-in",
	"zoom-out"}

func (c StyleCursor) String() string { return enumName(styleCursorNames, uint8(c)) }

// StyleMixBlendMode is the type for CSS property "mix-blend-mode".
type StyleMixBlendMode uint8

// Values for StyleMixBlendMode
const (
	BlendNormal StyleMixBlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var styleMixBlendModeNames = []string{"normal", "multiply", "screen", "overlay", "darken",
	"lighten", "color-dodge", "color-burn", "hard-light", "soft-light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity"}

func (m StyleMixBlendMode) String() string { return enumName(styleMixBlendModeNames, uint8(m)) }

// StyleBackgroundRepeat is the type for CSS property "background-repeat".
type StyleBackgroundRepeat uint8

// Values for StyleBackgroundRepeat
const (
	BackgroundNoRepeat StyleBackgroundRepeat = iota
	BackgroundRepeat
	BackgroundRepeatX
	BackgroundRepeatY
)

var styleBackgroundRepeatNames = []string{"no-repeat", "repeat", "repeat-x", "repeat-y"}

func (r StyleBackgroundRepeat) String() string {
	return enumName(styleBackgroundRepeatNames, uint8(r))
}

// --- Gradients and shadows -------------------------------------------------

// ExtendMode tells if a gradient repeats.
type ExtendMode uint8

// Values for ExtendMode
const (
	ExtendClamp ExtendMode = iota
	ExtendRepeat
)

func (e ExtendMode) String() string { return enumName([]string{"clamp", "repeat"}, uint8(e)) }

// Shape is the shape of a radial gradient.
type Shape uint8

// Values for Shape
const (
	ShapeEllipse Shape = iota
	ShapeCircle
)

var shapeNames = []string{"ellipse", "circle"}

func (s Shape) String() string { return enumName(shapeNames, uint8(s)) }

// RadialGradientSize is the size keyword of a radial gradient.
type RadialGradientSize uint8

// Values for RadialGradientSize
const (
	ClosestSide RadialGradientSize = iota
	ClosestCorner
	FarthestSide
	FarthestCorner
)

var radialGradientSizeNames = []string{"closest-side", "closest-corner", "farthest-side",
	"farthest-corner"}

func (s RadialGradientSize) String() string { return enumName(radialGradientSizeNames, uint8(s)) }

// BoxShadowClipMode tells if a shadow is drawn outside or inside a box.
type BoxShadowClipMode uint8

// Values for BoxShadowClipMode
const (
	ClipOutset BoxShadowClipMode = iota
	ClipInset
)

func (c BoxShadowClipMode) String() string {
	return enumName([]string{"outset", "inset"}, uint8(c))
}
