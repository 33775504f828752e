package styledtree

import (
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style"
	"github.com/npillmayer/guistyle/dom/w3cdom"
	"github.com/npillmayer/guistyle/tree"
	"github.com/xlab/treeprint"
)

// PseudoStates is a source of runtime pseudo-classes of Dom nodes.
type PseudoStates interface {
	PseudoState(id dom.NodeID) w3cdom.PseudoState
}

// Build creates a styled tree mirroring d. Property maps are left empty.
// defaults holds the default values of all properties; if nil, the
// built-in defaults are used. pseudo may be nil.
func Build(d *dom.Dom, defaults *style.PropertyMap, pseudo PseudoStates) *tree.Node[*StyNode] {
	if d == nil {
		return nil
	}
	if defaults == nil {
		defaults = style.InitializeDefaultPropertyValues(nil)
	}
	root, _ := build(d, 0, defaults, pseudo)
	if _, err := tree.NewWalker(root).BottomUp(tree.CalcRank[*StyNode]).Nodes(); err != nil {
		tracer().Errorf("styled tree: %v", err)
	}
	return root
}

func build(d *dom.Dom, id dom.NodeID, defaults *style.PropertyMap, pseudo PseudoStates) (*tree.Node[*StyNode], dom.NodeID) {
	n := NewNodeForDom(d, id)
	sn := Node(n)
	sn.defaults = defaults
	if pseudo != nil {
		sn.pseudo = pseudo.PseudoState(id)
	}
	next := id + 1
	for _, c := range d.Children {
		var child *tree.Node[*StyNode]
		child, next = build(c, next, defaults, pseudo)
		n.AddChild(child)
	}
	return n, next
}

// Find returns the styled node with the given id. Find relies on the ranks
// set by Build and descends into a single subtree on every level.
func Find(root *tree.Node[*StyNode], id dom.NodeID) (*StyNode, bool) {
	n := root
	for n != nil {
		sn := Node(n)
		if sn.id == id {
			return sn, true
		}
		var next *tree.Node[*StyNode]
		for _, ch := range n.Children() {
			first := Node(ch).id
			if id >= first && id < first+dom.NodeID(ch.Rank) {
				next = ch
				break
			}
		}
		n = next
	}
	return nil, false
}

// Dump renders the styled tree with the properties set for each node.
func Dump(root *tree.Node[*StyNode]) string {
	if root == nil {
		return ""
	}
	t := treeprint.NewWithRoot(Node(root).String())
	dump(root, t)
	return t.String()
}

func dump(n *tree.Node[*StyNode], branch treeprint.Tree) {
	for _, p := range Node(n).Styles().Properties() {
		branch.AddMetaNode("css", p.String())
	}
	for _, ch := range n.Children() {
		dump(ch, branch.AddBranch(Node(ch).String()))
	}
}

// ResolvedProperties returns the resolved values of the given property
// types for a node, in the order of types.
func (sn *StyNode) ResolvedProperties(types []css.PropertyType) []css.Property {
	props := make([]css.Property, len(types))
	for i, t := range types {
		props[i] = sn.PropertyValue(t)
	}
	return props
}
