package cascade

import (
	"strings"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/styledtree"
)

// DisplayMode is a set of flags for the outer and inner display of a box,
// as needed by a layout solver.
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, FlowRootMode, ListItemMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlowRootMode:    "FlowRootMode",
	ListItemMode:    "ListItemMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// Block-level elements are those elements of the source document that are
// formatted visually as blocks (e.g., paragraphs).
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	return disp&d != 0
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var modes []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			modes = append(modes, displayModeNames[m])
		}
	}
	return strings.Join(modes, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "▩"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "►"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Contains(GridMode):
		return "◰"
	case disp.Contains(ListItemMode):
		return "▣"
	case disp.Contains(TableMode):
		return "▥"
	case disp == NoMode:
		return "–"
	}
	return "?"
}

// DisplayModeOf returns the mode flags for a value of property "display".
// Table parts are block-level table boxes.
func DisplayModeOf(d css.LayoutDisplay) DisplayMode {
	switch d {
	case css.DisplayNone:
		return DisplayNone
	case css.DisplayBlock:
		return BlockMode | InnerBlockMode
	case css.DisplayInline, css.DisplayRunIn, css.DisplayMarker:
		return InlineMode | InnerInlineMode
	case css.DisplayInlineBlock:
		return InlineMode | InnerBlockMode
	case css.DisplayFlex:
		return BlockMode | FlexMode
	case css.DisplayInlineFlex:
		return InlineMode | FlexMode
	case css.DisplayGrid:
		return BlockMode | GridMode
	case css.DisplayInlineGrid:
		return InlineMode | GridMode
	case css.DisplayListItem:
		return ListItemMode | BlockMode
	case css.DisplayInlineTable:
		return InlineMode | TableMode
	case css.DisplayTable, css.DisplayTableRowGroup, css.DisplayTableHeaderGroup,
		css.DisplayTableFooterGroup, css.DisplayTableRow, css.DisplayTableColumnGroup,
		css.DisplayTableColumn, css.DisplayTableCell, css.DisplayTableCaption:
		return BlockMode | TableMode
	}
	return NoMode
}

// ParseDisplay returns mode flags from a display property string.
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	p, err := css.ParseProperty(css.PropDisplay, display)
	if err != nil {
		return BlockMode, err
	}
	d, ok := css.ExactValueOf[css.LayoutDisplay](p)
	if !ok {
		if p.IsNone() {
			return DisplayNone, nil
		}
		return NoMode, nil
	}
	return DisplayModeOf(d), nil
}

// Display returns the display mode of a styled node.
func Display(sn *styledtree.StyNode) DisplayMode {
	p := sn.PropertyValue(css.PropDisplay)
	if p.IsNone() {
		return DisplayNone
	}
	d, ok := css.ExactValueOf[css.LayoutDisplay](p)
	if !ok {
		return NoMode
	}
	return DisplayModeOf(d)
}
