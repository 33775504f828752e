package styledtree

import (
	"strings"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style"
	"github.com/npillmayer/guistyle/dom/w3cdom"
	"github.com/npillmayer/guistyle/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             *dom.Dom
	id                  dom.NodeID
	pseudo              w3cdom.PseudoState
	computedStyles      *style.PropertyMap
	defaults            *style.PropertyMap
}

// NewNodeForDom creates a new styled node linked to a Dom node.
func NewNodeForDom(d *dom.Dom, id dom.NodeID) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.domNode = d
	sn.id = id
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Dom gets the Dom node corresponding to this styled node.
func (sn *StyNode) Dom() *dom.Dom {
	return sn.domNode
}

// NodeData gets the data of the Dom node corresponding to this styled node.
func (sn *StyNode) NodeData() *dom.NodeData {
	if sn.domNode == nil {
		return nil
	}
	return &sn.domNode.Root
}

// ID returns the position of the node in document order.
func (sn *StyNode) ID() dom.NodeID {
	return sn.id
}

// ParentStyNode returns the styled parent node or nil.
func (sn *StyNode) ParentStyNode() *StyNode {
	return Node(sn.Parent())
}

// Styles returns the properties set for the node itself.
//
// Interface w3cdom.ComputedStyles
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// Defaults returns the property map holding the default values.
func (sn *StyNode) Defaults() *style.PropertyMap {
	return sn.defaults
}

// SetPseudoState sets the runtime pseudo-classes of the node.
func (sn *StyNode) SetPseudoState(s w3cdom.PseudoState) {
	sn.pseudo = s
}

// --- Interface w3cdom.Node ---------------------------------------------------

var _ w3cdom.Node = &StyNode{}

// NodeName returns the tag name of the node, e.g. "div".
func (sn *StyNode) NodeName() string {
	if sn.domNode == nil {
		return ""
	}
	return sn.domNode.Root.Type.Path()
}

// IDs returns the ids of the node.
func (sn *StyNode) IDs() []string {
	if sn.domNode == nil {
		return nil
	}
	return sn.domNode.Root.IDs
}

// Classes returns the classes of the node.
func (sn *StyNode) Classes() []string {
	if sn.domNode == nil {
		return nil
	}
	return sn.domNode.Root.Classes
}

// ParentNode returns the parent node or nil for the root.
func (sn *StyNode) ParentNode() w3cdom.Node {
	if p := sn.ParentStyNode(); p != nil {
		return p
	}
	return nil
}

// HasChildNodes checks for children.
func (sn *StyNode) HasChildNodes() bool {
	return sn.ChildCount() > 0
}

// ChildNodes returns the children of the node.
func (sn *StyNode) ChildNodes() w3cdom.NodeList {
	children := sn.Children()
	list := make(nodeList, len(children))
	for i, ch := range children {
		list[i] = Node(ch)
	}
	return list
}

// ChildIndex returns the position among the parent's children, starting at 0.
func (sn *StyNode) ChildIndex() int {
	return sn.Position()
}

// SiblingCount returns the number of children of the parent, 1 for the root.
func (sn *StyNode) SiblingCount() int {
	if p := sn.Parent(); p != nil {
		return p.ChildCount()
	}
	return 1
}

// PseudoState returns the runtime pseudo-classes of the node.
func (sn *StyNode) PseudoState() w3cdom.PseudoState {
	return sn.pseudo
}

// ComputedStyles returns the style of the node.
func (sn *StyNode) ComputedStyles() w3cdom.ComputedStyles {
	return sn
}

func (sn *StyNode) String() string {
	if sn.domNode == nil {
		return "<styled node>"
	}
	return sn.id.String() + " " + sn.domNode.Root.String()
}

// --- Property lookup ---------------------------------------------------------

// PropertyValue returns the resolved value of a property for the node.
// Properties set locally win. Inherited properties cascade to the nearest
// ancestor group setting them. Otherwise the default is returned.
//
// Interface w3cdom.ComputedStyles
func (sn *StyNode) PropertyValue(t css.PropertyType) css.Property {
	if p, ok := sn.computedStyles.Property(t); ok && p.IsValid() {
		return p
	}
	if t.IsInheritable() {
		groupname := style.GroupNameFor(t)
		tracer().P("key", t.Key()).Debugf("styling: cascading with property group %s", groupname)
		for n := sn.ParentStyNode(); n != nil; n = n.ParentStyNode() {
			if group := n.computedStyles.Group(groupname); group != nil {
				if g := group.Cascade(t); g != nil {
					p, _ := g.Get(t)
					return p
				}
				break
			}
		}
	}
	return sn.defaultValue(t)
}

// defaultValue returns the default of a property. The default display mode
// depends on the node type.
func (sn *StyNode) defaultValue(t css.PropertyType) css.Property {
	if t == css.PropDisplay {
		return css.Exactly(css.PropDisplay, style.DisplayForTag(sn.NodeName()))
	}
	if p, ok := sn.defaults.Property(t); ok && p.IsValid() {
		return p
	}
	return css.DefaultFor(t)
}

// --- Node list ---------------------------------------------------------------

type nodeList []*StyNode

func (l nodeList) Length() int { return len(l) }

func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (l nodeList) String() string {
	names := make([]string, len(l))
	for i, n := range l {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}
