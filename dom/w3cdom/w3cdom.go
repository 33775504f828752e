/*
Package w3cdom defines an interface type for W3C Document Object Models.

Selector matching and the cascade see DOM nodes only through these
interfaces. Styled trees implement them on top of their nodes.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"strings"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style"
)

// Node represents W3C-type Node, reduced to the element nodes of a GUI.
//
// ParentNode must return an untyped nil for the root node.
type Node interface {
	NodeName() string               // tag name of the node, e.g. "div"
	IDs() []string                  // ids of the node, without '#'
	Classes() []string              // classes of the node, without '.'
	ParentNode() Node               // get the parent node, if any
	HasChildNodes() bool            // check for existende of sub-nodes
	ChildNodes() NodeList           // get a list of all children-nodes
	ChildIndex() int                // position among the parent's children, starting at 0
	SiblingCount() int              // number of children of the parent; 1 for the root
	PseudoState() PseudoState       // runtime pseudo-classes of the node
	ComputedStyles() ComputedStyles // get computed CSS styles
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// ComputedStyles represents the CSS style of a node.
type ComputedStyles interface {
	// PropertyValue returns the resolved value of a property, cascading
	// to ancestors for inherited properties.
	PropertyValue(css.PropertyType) css.Property
	// Styles returns the properties set for the node itself.
	Styles() *style.PropertyMap
}

// PseudoState is a set of runtime pseudo-classes: hover, active and focus.
type PseudoState uint8

// Pseudo-class flags
const (
	Hover PseudoState = 1 << iota
	Active
	Focus
)

// Has checks if all flags of f are set in s.
func (s PseudoState) Has(f PseudoState) bool {
	return f != 0 && s&f == f
}

func (s PseudoState) String() string {
	var flags []string
	if s.Has(Hover) {
		flags = append(flags, "hover")
	}
	if s.Has(Active) {
		flags = append(flags, "active")
	}
	if s.Has(Focus) {
		flags = append(flags, "focus")
	}
	return "{" + strings.Join(flags, ",") + "}"
}
