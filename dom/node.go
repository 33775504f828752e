package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/guistyle/callbacks"
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/maybe"
)

// NodeID identifies a node of a Dom by its position in document order.
type NodeID = callbacks.NodeID

// NoNode is the id for "no node".
const NoNode = callbacks.NoNode

// TextID references a text held by the embedder's text cache.
type TextID uint32

// ImageID references an image held by the embedder's resources.
type ImageID uint32

// LayoutCallback creates the Dom of a window.
type LayoutCallback func(data *callbacks.RefAny, info callbacks.LayoutInfo) *Dom

// IFrameCallbackReturn is the reply of an IFrameCallback, Nothing if the
// iframe stays empty.
type IFrameCallbackReturn = maybe.Maybe[*Dom]

// IFrameCallback creates the Dom of an iframe, given its bounds.
type IFrameCallback func(data *callbacks.RefAny, info callbacks.IFrameCallbackInfo) IFrameCallbackReturn

// NodeKind is the discriminant of a NodeType.
type NodeKind uint8

// Kinds of nodes. The order is fixed.
const (
	KindDiv NodeKind = iota
	KindBody
	KindLabel
	KindText
	KindImage
	KindGlTexture
	KindIFrame
)

var nodeKindNames = []string{"Div", "Body", "Label", "Text", "Image", "GlTexture", "IFrame"}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("<invalid kind %d>", k)
}

// NodeType is the type of a node together with its content.
type NodeType struct {
	kind   NodeKind
	label  string
	id     uint32 // TextID or ImageID
	gl     callbacks.GlCallback
	iframe IFrameCallback
	data   *callbacks.RefAny // state of a GL texture or iframe callback
}

// Kind returns the discriminant of t.
func (t NodeType) Kind() NodeKind { return t.kind }

// Label returns the text of a label node.
func (t NodeType) Label() (string, bool) { return t.label, t.kind == KindLabel }

// TextID returns the text reference of a text node.
func (t NodeType) TextID() (TextID, bool) { return TextID(t.id), t.kind == KindText }

// ImageID returns the image reference of an image node.
func (t NodeType) ImageID() (ImageID, bool) { return ImageID(t.id), t.kind == KindImage }

// Data returns the state cell of a GL texture or iframe node.
func (t NodeType) Data() *callbacks.RefAny { return t.data }

// Tag returns the node type as used by type selectors. Labels and texts
// are paragraphs.
func (t NodeType) Tag() cssom.NodeTypeTag {
	switch t.kind {
	case KindBody:
		return cssom.TagBody
	case KindLabel, KindText:
		return cssom.TagP
	case KindImage:
		return cssom.TagImg
	case KindGlTexture:
		return cssom.TagTexture
	case KindIFrame:
		return cssom.TagIFrame
	}
	return cssom.TagDiv
}

// Path returns the tag name of t, e.g. "div".
func (t NodeType) Path() string { return t.Tag().String() }

// Content returns the text content of t as shown by HTMLString.
func (t NodeType) Content() (string, bool) {
	switch t.kind {
	case KindLabel:
		return t.label, true
	case KindText:
		return fmt.Sprintf("textid(%d)", t.id), true
	case KindImage:
		return fmt.Sprintf("image(%d)", t.id), true
	case KindGlTexture:
		return fmt.Sprintf("gltexture(%s)", t.data.TypeName()), true
	case KindIFrame:
		return fmt.Sprintf("iframe(%s)", t.data.TypeName()), true
	}
	return "", false
}

func (t NodeType) String() string {
	switch t.kind {
	case KindLabel:
		return fmt.Sprintf("Label(%q)", t.label)
	case KindText, KindImage:
		return fmt.Sprintf("%s(%d)", t.kind, t.id)
	case KindGlTexture, KindIFrame:
		return fmt.Sprintf("%s(%s)", t.kind, t.data.TypeName())
	}
	return t.kind.String()
}

// RenderTexture calls the callback of a GL texture node.
func (t NodeType) RenderTexture(info callbacks.GlCallbackInfo) maybe.Maybe[callbacks.Texture] {
	if t.kind != KindGlTexture || t.gl == nil {
		return maybe.Nothing[callbacks.Texture]()
	}
	return t.gl(t.data, info)
}

// RenderIFrame calls the callback of an iframe node.
func (t NodeType) RenderIFrame(info callbacks.IFrameCallbackInfo) IFrameCallbackReturn {
	if t.kind != KindIFrame || t.iframe == nil {
		return maybe.Nothing[*Dom]()
	}
	return t.iframe(t.data, info)
}

// --- Tab index -------------------------------------------------------------

// TabIndexKind is the discriminant of a TabIndex.
type TabIndexKind uint8

// Kinds of tab indices
const (
	TabAuto TabIndexKind = iota
	TabOverrideInParent
	TabNoKeyboardFocus
)

// TabIndex determines if and in which order a node receives the keyboard
// focus when the user presses Tab.
type TabIndex struct {
	Kind TabIndexKind
	N    uint32 // position for TabOverrideInParent
}

// AutoTabIndex makes a node focusable in document order.
func AutoTabIndex() TabIndex { return TabIndex{Kind: TabAuto} }

// OverrideInParent makes a node focusable at position n among its siblings.
func OverrideInParent(n uint32) TabIndex { return TabIndex{Kind: TabOverrideInParent, N: n} }

// NoKeyboardFocus makes a node focusable by clicking only.
func NoKeyboardFocus() TabIndex { return TabIndex{Kind: TabNoKeyboardFocus} }

// Index returns the HTML tabindex: 0 for auto, n for an override and -1
// for no keyboard focus.
func (ti TabIndex) Index() int {
	switch ti.Kind {
	case TabOverrideInParent:
		return int(ti.N)
	case TabNoKeyboardFocus:
		return -1
	}
	return 0
}

// --- Node data -------------------------------------------------------------

// CallbackData is a callback registered on a node, together with its filter
// and its state cell.
type CallbackData struct {
	Filter   callbacks.EventFilter
	Callback callbacks.Callback
	Data     *callbacks.RefAny
}

// DynamicOverride sets the value of a dynamic CSS declaration for a node.
type DynamicOverride struct {
	ID       string
	Property css.Property
}

// NodeData is a node of a Dom, without its children.
type NodeData struct {
	Type             NodeType
	IDs              []string
	Classes          []string
	Callbacks        []CallbackData
	DynamicOverrides []DynamicOverride
	InlineStyle      []cssom.Declaration // wins over stylesheet rules
	IsDraggable      bool
	Dataset          *callbacks.RefAny // arbitrary data attached to the node
	tabIndex         *TabIndex
}

// TabIndex returns the tab index of the node, if set.
func (nd *NodeData) TabIndex() maybe.Maybe[TabIndex] {
	if nd.tabIndex == nil {
		return maybe.Nothing[TabIndex]()
	}
	return maybe.Just(*nd.tabIndex)
}

// SetTabIndex sets the tab index of the node.
func (nd *NodeData) SetTabIndex(ti TabIndex) {
	nd.tabIndex = &ti
}

// IsFocusable is true if the node has a tab index.
func (nd *NodeData) IsFocusable() bool {
	return nd.tabIndex != nil
}

// HasID checks for an id of the node.
func (nd *NodeData) HasID(id string) bool { return contains(nd.IDs, id) }

// HasClass checks for a class of the node.
func (nd *NodeData) HasClass(class string) bool { return contains(nd.Classes, class) }

// DynamicOverride returns the override for a dynamic CSS declaration. If
// there are several overrides for id, the last one wins.
func (nd *NodeData) DynamicOverride(id string) (css.Property, bool) {
	for i := len(nd.DynamicOverrides) - 1; i >= 0; i-- {
		if nd.DynamicOverrides[i].ID == id {
			return nd.DynamicOverrides[i].Property, true
		}
	}
	return css.Property{}, false
}

// String returns a selector-like description, e.g. "div#main.big".
func (nd *NodeData) String() string {
	var b strings.Builder
	b.WriteString(nd.Type.Path())
	for _, id := range nd.IDs {
		b.WriteString("#" + id)
	}
	for _, c := range nd.Classes {
		b.WriteString("." + c)
	}
	if s, ok := nd.Type.Label(); ok {
		fmt.Fprintf(&b, " %q", s)
	}
	return b.String()
}

// clone copies the slices of nd. State cells are shared.
func (nd NodeData) clone() NodeData {
	c := nd
	c.IDs = append([]string(nil), nd.IDs...)
	c.Classes = append([]string(nil), nd.Classes...)
	c.Callbacks = append([]CallbackData(nil), nd.Callbacks...)
	c.DynamicOverrides = append([]DynamicOverride(nil), nd.DynamicOverrides...)
	c.InlineStyle = append([]cssom.Declaration(nil), nd.InlineStyle...)
	if nd.tabIndex != nil {
		ti := *nd.tabIndex
		c.tabIndex = &ti
	}
	return c
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
