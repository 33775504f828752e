package callbacks

import "fmt"

// EventFilter determines under which condition a callback fires. It is one
// of
//
//	Hover(e)       node is hovered and event e happens
//	Focus(e)       node has the keyboard focus and event e happens
//	Window(e)      event e happens anywhere in the window
//	Not(f)         inverse of a hover or focus filter
//	Component(e)   lifecycle event of the node
//	Application(e) application wide event
//
// The zero value is not a valid filter.
type EventFilter struct {
	kind  FilterKind
	event uint8
	not   NotKind
}

// FilterKind is the discriminant of an EventFilter.
type FilterKind uint8

// Kinds of event filters. The order is fixed.
const (
	HoverFilter FilterKind = iota
	NotFilter
	FocusFilter
	WindowFilter
	ComponentFilter
	ApplicationFilter
	invalidFilter
)

var filterKindNames = []string{"Hover", "Not", "Focus", "Window", "Component", "Application"}

func (k FilterKind) String() string { return enumName(filterKindNames, uint8(k)) }

// NotKind selects the filter a Not-filter inverts.
type NotKind uint8

// Kinds of Not-filters
const (
	NotHover NotKind = iota
	NotFocus
)

// Hover creates a filter for events on hovered nodes.
func Hover(e HoverEventFilter) EventFilter {
	return EventFilter{kind: HoverFilter, event: uint8(e)}
}

// Focus creates a filter for events on the focused node.
func Focus(e FocusEventFilter) EventFilter {
	return EventFilter{kind: FocusFilter, event: uint8(e)}
}

// Window creates a filter for window-global events.
func Window(e WindowEventFilter) EventFilter {
	return EventFilter{kind: WindowFilter, event: uint8(e)}
}

// Component creates a filter for lifecycle events of a node.
func Component(e ComponentEventFilter) EventFilter {
	return EventFilter{kind: ComponentFilter, event: uint8(e)}
}

// Application creates a filter for application-wide events.
func Application(e ApplicationEventFilter) EventFilter {
	return EventFilter{kind: ApplicationFilter, event: uint8(e)}
}

// Not inverts a hover or a focus filter. Other filters cannot be inverted
// and are returned unchanged.
func Not(f EventFilter) EventFilter {
	switch f.kind {
	case HoverFilter:
		return EventFilter{kind: NotFilter, not: NotHover, event: f.event}
	case FocusFilter:
		return EventFilter{kind: NotFilter, not: NotFocus, event: f.event}
	}
	tracer().Errorf("cannot invert event filter %v", f)
	return f
}

// Kind returns the discriminant of f.
func (f EventFilter) Kind() FilterKind { return f.kind }

// AsHover returns the hover event of a Hover filter.
func (f EventFilter) AsHover() (HoverEventFilter, bool) {
	return HoverEventFilter(f.event), f.kind == HoverFilter
}

// AsFocus returns the focus event of a Focus filter.
func (f EventFilter) AsFocus() (FocusEventFilter, bool) {
	return FocusEventFilter(f.event), f.kind == FocusFilter
}

// AsWindow returns the window event of a Window filter.
func (f EventFilter) AsWindow() (WindowEventFilter, bool) {
	return WindowEventFilter(f.event), f.kind == WindowFilter
}

// AsComponent returns the event of a Component filter.
func (f EventFilter) AsComponent() (ComponentEventFilter, bool) {
	return ComponentEventFilter(f.event), f.kind == ComponentFilter
}

// AsApplication returns the event of an Application filter.
func (f EventFilter) AsApplication() (ApplicationEventFilter, bool) {
	return ApplicationEventFilter(f.event), f.kind == ApplicationFilter
}

// AsNot returns the inverted filter of a Not filter.
func (f EventFilter) AsNot() (EventFilter, bool) {
	if f.kind != NotFilter {
		return EventFilter{}, false
	}
	if f.not == NotFocus {
		return EventFilter{kind: FocusFilter, event: f.event}, true
	}
	return EventFilter{kind: HoverFilter, event: f.event}, true
}

func (f EventFilter) String() string {
	switch f.kind {
	case HoverFilter:
		return fmt.Sprintf("Hover(%s)", HoverEventFilter(f.event))
	case FocusFilter:
		return fmt.Sprintf("Focus(%s)", FocusEventFilter(f.event))
	case WindowFilter:
		return fmt.Sprintf("Window(%s)", WindowEventFilter(f.event))
	case ComponentFilter:
		return fmt.Sprintf("Component(%s)", ComponentEventFilter(f.event))
	case ApplicationFilter:
		return fmt.Sprintf("Application(%s)", ApplicationEventFilter(f.event))
	case NotFilter:
		inner, _ := f.AsNot()
		return fmt.Sprintf("Not(%s)", inner)
	}
	return "<invalid filter>"
}

// --- Event enums -----------------------------------------------------------

// HoverEventFilter is an event on a hovered node.
type HoverEventFilter uint8

// Hover events. The order is fixed.
const (
	HoverMouseOver HoverEventFilter = iota
	HoverMouseDown
	HoverLeftMouseDown
	HoverRightMouseDown
	HoverMiddleMouseDown
	HoverMouseUp
	HoverLeftMouseUp
	HoverRightMouseUp
	HoverMiddleMouseUp
	HoverMouseEnter
	HoverMouseLeave
	HoverScroll
	HoverScrollStart
	HoverScrollEnd
	HoverTextInput
	HoverVirtualKeyDown
	HoverVirtualKeyUp
	HoverHoveredFile
	HoverDroppedFile
	HoverHoveredFileCancelled
)

// eventNames is shared by the hover, focus and window events, which agree
// on their first 17 values.
var eventNames = []string{"MouseOver", "MouseDown", "LeftMouseDown", "RightMouseDown",
	"MiddleMouseDown", "MouseUp", "LeftMouseUp", "RightMouseUp", "MiddleMouseUp",
	"MouseEnter", "MouseLeave", "Scroll", "ScrollStart", "ScrollEnd", "TextInput",
	"VirtualKeyDown", "VirtualKeyUp", "HoveredFile", "DroppedFile", "HoveredFileCancelled"}

func (e HoverEventFilter) String() string { return enumName(eventNames, uint8(e)) }

// ToFocus converts a hover event to the equivalent focus event. File
// events have no focus equivalent.
func (e HoverEventFilter) ToFocus() (FocusEventFilter, bool) {
	if e > HoverVirtualKeyUp {
		return 0, false
	}
	return FocusEventFilter(e), true
}

// FocusEventFilter is an event on the focused node.
type FocusEventFilter uint8

// Focus events. The order is fixed.
const (
	FocusMouseOver FocusEventFilter = iota
	FocusMouseDown
	FocusLeftMouseDown
	FocusRightMouseDown
	FocusMiddleMouseDown
	FocusMouseUp
	FocusLeftMouseUp
	FocusRightMouseUp
	FocusMiddleMouseUp
	FocusMouseEnter
	FocusMouseLeave
	FocusScroll
	FocusScrollStart
	FocusScrollEnd
	FocusTextInput
	FocusVirtualKeyDown
	FocusVirtualKeyUp
	FocusReceived
	FocusLost
)

var focusEventNames = append(append([]string{}, eventNames[:17]...), "FocusReceived", "FocusLost")

func (e FocusEventFilter) String() string { return enumName(focusEventNames, uint8(e)) }

// WindowEventFilter is a window-global event. Routers use it as the kind of
// an incoming event.
type WindowEventFilter uint8

// Window events. The order is fixed.
const (
	WindowMouseOver WindowEventFilter = iota
	WindowMouseDown
	WindowLeftMouseDown
	WindowRightMouseDown
	WindowMiddleMouseDown
	WindowMouseUp
	WindowLeftMouseUp
	WindowRightMouseUp
	WindowMiddleMouseUp
	WindowMouseEnter
	WindowMouseLeave
	WindowScroll
	WindowScrollStart
	WindowScrollEnd
	WindowTextInput
	WindowVirtualKeyDown
	WindowVirtualKeyUp
	WindowHoveredFile
	WindowDroppedFile
	WindowHoveredFileCancelled
)

func (e WindowEventFilter) String() string { return enumName(eventNames, uint8(e)) }

// ToHover converts a window event to the equivalent hover event. Entering
// or leaving the window does not enter or leave a node, so MouseEnter and
// MouseLeave have no hover equivalent.
func (e WindowEventFilter) ToHover() (HoverEventFilter, bool) {
	if e == WindowMouseEnter || e == WindowMouseLeave {
		return 0, false
	}
	return HoverEventFilter(e), true
}

// ToFocus converts a window event to the equivalent focus event.
func (e WindowEventFilter) ToFocus() (FocusEventFilter, bool) {
	if e > WindowVirtualKeyUp {
		return 0, false
	}
	return FocusEventFilter(e), true
}

// ComponentEventFilter is a lifecycle event of a node.
type ComponentEventFilter uint8

// Component events
const (
	AfterMount ComponentEventFilter = iota
	BeforeUnmount
	NodeResized
	DefaultAction
	Selected
)

var componentEventNames = []string{"AfterMount", "BeforeUnmount", "NodeResized", "DefaultAction", "Selected"}

func (e ComponentEventFilter) String() string { return enumName(componentEventNames, uint8(e)) }

// ApplicationEventFilter is an application-wide event.
type ApplicationEventFilter uint8

// Application events
const (
	DeviceConnected ApplicationEventFilter = iota
	DeviceDisconnected
)

var applicationEventNames = []string{"DeviceConnected", "DeviceDisconnected"}

func (e ApplicationEventFilter) String() string { return enumName(applicationEventNames, uint8(e)) }

// --- On --------------------------------------------------------------------

// On is a shorthand for the commonly used event filters.
type On uint8

// Values for On. The order is fixed.
const (
	OnMouseOver On = iota
	OnMouseDown
	OnLeftMouseDown
	OnMiddleMouseDown
	OnRightMouseDown
	OnMouseUp
	OnLeftMouseUp
	OnMiddleMouseUp
	OnRightMouseUp
	OnMouseEnter
	OnMouseLeave
	OnScroll
	OnTextInput
	OnVirtualKeyDown
	OnVirtualKeyUp
	OnHoveredFile
	OnDroppedFile
	OnHoveredFileCancelled
	OnFocusReceived
	OnFocusLost
)

var onNames = []string{"MouseOver", "MouseDown", "LeftMouseDown", "MiddleMouseDown",
	"RightMouseDown", "MouseUp", "LeftMouseUp", "MiddleMouseUp", "RightMouseUp",
	"MouseEnter", "MouseLeave", "Scroll", "TextInput", "VirtualKeyDown", "VirtualKeyUp",
	"HoveredFile", "DroppedFile", "HoveredFileCancelled", "FocusReceived", "FocusLost"}

func (on On) String() string { return enumName(onNames, uint8(on)) }

// EventFilter converts on to an event filter. Mouse and file events become
// hover filters, text input and focus changes become focus filters and
// virtual keys become window filters.
func (on On) EventFilter() EventFilter {
	switch on {
	case OnMouseOver:
		return Hover(HoverMouseOver)
	case OnMouseDown:
		return Hover(HoverMouseDown)
	case OnLeftMouseDown:
		return Hover(HoverLeftMouseDown)
	case OnMiddleMouseDown:
		return Hover(HoverMiddleMouseDown)
	case OnRightMouseDown:
		return Hover(HoverRightMouseDown)
	case OnMouseUp:
		return Hover(HoverMouseUp)
	case OnLeftMouseUp:
		return Hover(HoverLeftMouseUp)
	case OnMiddleMouseUp:
		return Hover(HoverMiddleMouseUp)
	case OnRightMouseUp:
		return Hover(HoverRightMouseUp)
	case OnMouseEnter:
		return Hover(HoverMouseEnter)
	case OnMouseLeave:
		return Hover(HoverMouseLeave)
	case OnScroll:
		return Hover(HoverScroll)
	case OnTextInput:
		return Focus(FocusTextInput)
	case OnVirtualKeyDown:
		return Window(WindowVirtualKeyDown)
	case OnVirtualKeyUp:
		return Window(WindowVirtualKeyUp)
	case OnHoveredFile:
		return Hover(HoverHoveredFile)
	case OnDroppedFile:
		return Hover(HoverDroppedFile)
	case OnHoveredFileCancelled:
		return Hover(HoverHoveredFileCancelled)
	case OnFocusReceived:
		return Focus(FocusReceived)
	case OnFocusLost:
		return Focus(FocusLost)
	}
	tracer().Errorf("invalid On value %d", on)
	return EventFilter{kind: invalidFilter}
}

func enumName(names []string, i uint8) string {
	if int(i) < len(names) {
		return names[i]
	}
	return fmt.Sprintf("<invalid %d>", i)
}
