package callbacks

import (
	"fmt"
	"strings"
)

// LogicalPosition is a position in logical (CSS) pixels.
type LogicalPosition struct {
	X, Y float32
}

// LogicalSize is a size in logical (CSS) pixels.
type LogicalSize struct {
	Width, Height float32
}

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width, Height uint32
}

// ToPhysical converts s to device pixels.
func (s LogicalSize) ToPhysical(hidpi float32) PhysicalSize {
	return PhysicalSize{
		Width:  uint32(s.Width*hidpi + 0.5),
		Height: uint32(s.Height*hidpi + 0.5),
	}
}

// WindowSize holds the dimensions of a window.
type WindowSize struct {
	Dimensions    LogicalSize
	HidpiFactor   float32
	MinDimensions *LogicalSize // nil for no minimum
	MaxDimensions *LogicalSize // nil for no maximum
}

// DefaultWindowSize is 640 x 480 at a hidpi factor of 1.
func DefaultWindowSize() WindowSize {
	return WindowSize{Dimensions: LogicalSize{640, 480}, HidpiFactor: 1}
}

// WindowFlags are boolean properties of a window.
type WindowFlags struct {
	IsMaximized    bool
	IsFullscreen   bool
	HasDecorations bool
	IsVisible      bool
	IsAlwaysOnTop  bool
	IsResizable    bool
}

// DefaultWindowFlags returns a visible and resizable window with decorations.
func DefaultWindowFlags() WindowFlags {
	return WindowFlags{HasDecorations: true, IsVisible: true, IsResizable: true}
}

// CursorPosition is the position of the mouse cursor. Outside of the window
// or before the first mouse event, InWindow is false.
type CursorPosition struct {
	InWindow bool
	Position LogicalPosition
}

// MouseCursorType is the shape of the mouse cursor.
type MouseCursorType uint8

// Values for MouseCursorType. The order is fixed.
const (
	CursorDefault MouseCursorType = iota
	CursorCrosshair
	CursorHand
	CursorArrow
	CursorMove
	CursorText
	CursorWait
	CursorHelp
	CursorProgress
	CursorNotAllowed
	CursorContextMenu
	CursorCell
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorNoDrop
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
)

var cursorNames = []string{"default", "crosshair", "pointer", "arrow", "move", "text",
	"wait", "help", "progress", "not-allowed", "context-menu", "cell", "vertical-text",
	"alias", "copy", "no-drop", "grab", "grabbing", "all-scroll", "zoom-in", "zoom-out",
	"e-resize", "n-resize", "ne-resize", "nw-resize", "s-resize", "se-resize", "sw-resize",
	"w-resize", "ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "col-resize", "row-resize"}

func (c MouseCursorType) String() string { return enumName(cursorNames, uint8(c)) }

// MouseState is the state of the mouse, read-only for callbacks.
type MouseState struct {
	CursorType     MouseCursorType
	CursorPosition CursorPosition
	IsCursorLocked bool
	LeftDown       bool
	RightDown      bool
	MiddleDown     bool
	ScrollX        float32
	ScrollY        float32
}

// MouseDown is true if any mouse button is pressed.
func (m MouseState) MouseDown() bool {
	return m.LeftDown || m.RightDown || m.MiddleDown
}

// VirtualKeyCode identifies a key independent of the character it produces.
type VirtualKeyCode uint16

// A selection of virtual key codes. Embedders may use additional values.
const (
	KeyNone VirtualKeyCode = iota
	KeyEscape
	KeyTab
	KeyBack
	KeyReturn
	KeySpace
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyLShift
	KeyRShift
	KeyLControl
	KeyRControl
	KeyLAlt
	KeyRAlt
)

// KeyboardState is the state of the keyboard, read-only for callbacks.
type KeyboardState struct {
	ShiftDown              bool
	CtrlDown               bool
	AltDown                bool
	SuperDown              bool
	CurrentChar            rune           // 0 if no character has been typed
	CurrentVirtualKeycode  VirtualKeyCode // KeyNone if no key is pressed
	PressedVirtualKeycodes []VirtualKeyCode
	PressedScancodes       []uint32
}

// IsPressed checks if key is currently pressed.
func (k KeyboardState) IsPressed(key VirtualKeyCode) bool {
	for _, p := range k.PressedVirtualKeycodes {
		if p == key {
			return true
		}
	}
	return false
}

// WindowState is the state of a window which callbacks may modify.
type WindowState struct {
	Title    string
	Size     WindowSize
	Position *LogicalPosition // nil if the window manager decides
	Flags    WindowFlags
	Keyboard KeyboardState
	Mouse    MouseState
}

// NewWindowState creates a window state with default size and flags.
func NewWindowState(title string) *WindowState {
	return &WindowState{
		Title: title,
		Size:  DefaultWindowSize(),
		Flags: DefaultWindowFlags(),
	}
}

// Clone returns a deep copy of w.
func (w *WindowState) Clone() *WindowState {
	c := *w
	if w.Position != nil {
		pos := *w.Position
		c.Position = &pos
	}
	c.Keyboard.PressedVirtualKeycodes = append([]VirtualKeyCode(nil), w.Keyboard.PressedVirtualKeycodes...)
	c.Keyboard.PressedScancodes = append([]uint32(nil), w.Keyboard.PressedScancodes...)
	return &c
}

func (w *WindowState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "window %q %gx%g@%g", w.Title, w.Size.Dimensions.Width,
		w.Size.Dimensions.Height, w.Size.HidpiFactor)
	if w.Mouse.CursorPosition.InWindow {
		fmt.Fprintf(&b, " cursor=(%g,%g)", w.Mouse.CursorPosition.Position.X,
			w.Mouse.CursorPosition.Position.Y)
	}
	return b.String()
}
