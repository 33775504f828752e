package callbacks

import (
	"fmt"

	"github.com/npillmayer/guistyle/maybe"
)

// NodeID is the position of a node in document order, starting with 0 for
// the root. NoNode is used where no node applies.
type NodeID int

// NoNode is the id for "no node".
const NoNode NodeID = -1

func (id NodeID) String() string {
	if id < 0 {
		return "#none"
	}
	return fmt.Sprintf("#%d", int(id))
}

// Callback is an event callback. It gets the state cell it has been
// registered with.
type Callback func(data *RefAny, info *CallbackInfo) UpdateScreen

// GlCallback renders a texture for a GlTexture node.
type GlCallback func(data *RefAny, info GlCallbackInfo) maybe.Maybe[Texture]

// TimerCallback is called by a Timer.
type TimerCallback func(data *RefAny, info *TimerCallbackInfo) TimerCallbackReturn

// FocusTarget names the node which should receive the keyboard focus.
// It is either a node id, a CSS selector path or no node at all.
type FocusTarget struct {
	Node NodeID
	Path string // a selector; used if Node is NoNode
}

// FocusOnNode targets a node by id.
func FocusOnNode(id NodeID) FocusTarget { return FocusTarget{Node: id} }

// FocusOnPath targets the first node matched by a selector.
func FocusOnPath(sel string) FocusTarget { return FocusTarget{Node: NoNode, Path: sel} }

// NoFocus clears the keyboard focus.
func NoFocus() FocusTarget { return FocusTarget{Node: NoNode} }

// IsNoFocus is true if f clears the focus.
func (f FocusTarget) IsNoFocus() bool { return f.Node < 0 && f.Path == "" }

// CallbackInfo is handed to event callbacks. It gives read access to the
// keyboard and mouse state and write access to the window state. The
// window state is a copy; the router hands it to the embedder after all
// callbacks have run.
type CallbackInfo struct {
	current         *WindowState
	modifiable      *WindowState
	hit             NodeID
	cursorRelative  maybe.Maybe[LogicalPosition]
	focus           maybe.Maybe[FocusTarget]
	timers          []*Timer
	stopPropagation bool
	preventDefault  bool
}

// NewCallbackInfo creates the info for callbacks on node hit. The
// modifiable window state may be shared by the infos of a single event.
func NewCallbackInfo(current, modifiable *WindowState, hit NodeID) *CallbackInfo {
	return &CallbackInfo{
		current:        current,
		modifiable:     modifiable,
		hit:            hit,
		cursorRelative: maybe.Nothing[LogicalPosition](),
		focus:          maybe.Nothing[FocusTarget](),
	}
}

// WithCursorRelativeToItem sets the cursor position relative to the top
// left corner of the hit node.
func (info *CallbackInfo) WithCursorRelativeToItem(pos LogicalPosition) *CallbackInfo {
	info.cursorRelative = maybe.Just(pos)
	return info
}

// Keyboard returns the state of the keyboard.
func (info *CallbackInfo) Keyboard() KeyboardState { return info.current.Keyboard }

// Mouse returns the state of the mouse.
func (info *CallbackInfo) Mouse() MouseState { return info.current.Mouse }

// HitNode returns the node the callback has been registered on.
func (info *CallbackInfo) HitNode() NodeID { return info.hit }

// CursorInViewport returns the cursor position relative to the window.
func (info *CallbackInfo) CursorInViewport() maybe.Maybe[LogicalPosition] {
	cp := info.current.Mouse.CursorPosition
	return maybe.Of(cp.Position, cp.InWindow)
}

// CursorRelativeToItem returns the cursor position relative to the hit node.
func (info *CallbackInfo) CursorRelativeToItem() maybe.Maybe[LogicalPosition] {
	return info.cursorRelative
}

// Window returns the modifiable window state.
func (info *CallbackInfo) Window() *WindowState { return info.modifiable }

// SetWindowTitle sets the title of the window.
func (info *CallbackInfo) SetWindowTitle(title string) { info.modifiable.Title = title }

// SetCursorType sets the shape of the mouse cursor.
func (info *CallbackInfo) SetCursorType(c MouseCursorType) { info.modifiable.Mouse.CursorType = c }

// SetFocus requests a focus change for the next frame. Callbacks of the
// current event are not affected.
func (info *CallbackInfo) SetFocus(target FocusTarget) {
	info.focus = maybe.Just(target)
}

// FocusTarget returns the focus change requested by the callback.
func (info *CallbackInfo) FocusTarget() maybe.Maybe[FocusTarget] { return info.focus }

// AddTimer asks the runtime to start a timer.
func (info *CallbackInfo) AddTimer(t *Timer) {
	if t != nil {
		info.timers = append(info.timers, t)
	}
}

// Timers returns the timers added by the callback.
func (info *CallbackInfo) Timers() []*Timer { return info.timers }

// StopPropagation keeps the event from reaching callbacks which have not run
// yet.
func (info *CallbackInfo) StopPropagation() { info.stopPropagation = true }

// IsPropagationStopped is true after StopPropagation has been called.
func (info *CallbackInfo) IsPropagationStopped() bool { return info.stopPropagation }

// PreventDefault keeps the default action of the event from running, e.g.
// moving the focus on a click or on Tab.
func (info *CallbackInfo) PreventDefault() { info.preventDefault = true }

// IsDefaultPrevented is true after PreventDefault has been called.
func (info *CallbackInfo) IsDefaultPrevented() bool { return info.preventDefault }

// --- Layout infos ----------------------------------------------------------

// LayoutInfo is handed to layout callbacks. Querying the window size with
// the Window…Than methods records the queried value as a resize stop: the
// embedder calls the layout callback again only if a resize crosses a stop.
type LayoutInfo struct {
	WindowSize WindowSize
	stops      *ResizeStops
}

// ResizeStops are the widths and heights at which a layout changes.
type ResizeStops struct {
	Widths, Heights []float32
}

// NewLayoutInfo creates a layout info for a window size. Resize stops are
// recorded in stops, which may be nil.
func NewLayoutInfo(size WindowSize, stops *ResizeStops) LayoutInfo {
	if stops == nil {
		stops = &ResizeStops{}
	}
	return LayoutInfo{WindowSize: size, stops: stops}
}

// Stops returns the resize stops recorded so far.
func (li LayoutInfo) Stops() *ResizeStops { return li.stops }

func (li LayoutInfo) addWidth(w float32) {
	if li.stops != nil {
		li.stops.Widths = append(li.stops.Widths, w)
	}
}

func (li LayoutInfo) addHeight(h float32) {
	if li.stops != nil {
		li.stops.Heights = append(li.stops.Heights, h)
	}
}

// WindowWidthLargerThan checks the logical width of the window.
func (li LayoutInfo) WindowWidthLargerThan(w float32) bool {
	li.addWidth(w)
	return li.WindowSize.Dimensions.Width > w
}

// WindowWidthSmallerThan checks the logical width of the window.
func (li LayoutInfo) WindowWidthSmallerThan(w float32) bool {
	li.addWidth(w)
	return li.WindowSize.Dimensions.Width < w
}

// WindowHeightLargerThan checks the logical height of the window.
func (li LayoutInfo) WindowHeightLargerThan(h float32) bool {
	li.addHeight(h)
	return li.WindowSize.Dimensions.Height > h
}

// WindowHeightSmallerThan checks the logical height of the window.
func (li LayoutInfo) WindowHeightSmallerThan(h float32) bool {
	li.addHeight(h)
	return li.WindowSize.Dimensions.Height < h
}

// HidpiAdjustedBounds are the bounds of a laid-out node.
type HidpiAdjustedBounds struct {
	LogicalSize LogicalSize
	HidpiFactor float32
}

// PhysicalSize returns the bounds in device pixels.
func (b HidpiAdjustedBounds) PhysicalSize() PhysicalSize {
	return b.LogicalSize.ToPhysical(b.HidpiFactor)
}

// IFrameCallbackInfo is handed to iframe callbacks.
type IFrameCallbackInfo struct {
	Layout LayoutInfo
	Bounds HidpiAdjustedBounds
}

// GlCallbackInfo is handed to GL texture callbacks.
type GlCallbackInfo struct {
	Layout LayoutInfo
	Bounds HidpiAdjustedBounds
}

// Texture is a GPU texture rendered by a GlCallback. The texture itself is
// owned by the embedder's GL context.
type Texture struct {
	ID     uint32
	Size   PhysicalSize
	Format TextureFormat
}

// TextureFormat is the pixel format of a Texture.
type TextureFormat uint8

// Texture formats
const (
	TextureRGBA8 TextureFormat = iota
	TextureBGRA8
	TextureR8
)
