package dom

import "sort"

// Predicate is a condition on a node of a Dom.
type Predicate func(nd *NodeData) bool

// NodeIsText matches label and text nodes.
var NodeIsText Predicate = func(nd *NodeData) bool {
	k := nd.Type.Kind()
	return k == KindLabel || k == KindText
}

// NodeHasID returns a predicate matching nodes with the given id.
func NodeHasID(id string) Predicate {
	return func(nd *NodeData) bool { return nd.HasID(id) }
}

// NodeHasClass returns a predicate matching nodes with the given class.
func NodeHasClass(class string) Predicate {
	return func(nd *NodeData) bool { return nd.HasClass(class) }
}

// NodeIsFocusable matches nodes with a tab index.
var NodeIsFocusable Predicate = func(nd *NodeData) bool { return nd.IsFocusable() }

// Walk visits the nodes of d in document order, calling f with the id and
// depth of each node. If f returns false, the children of the node are
// skipped. Ids of skipped nodes are still counted.
func (d *Dom) Walk(f func(id NodeID, depth int, node *Dom) bool) {
	d.walk(0, 0, f)
}

// walk returns the id following the subtree of d.
func (d *Dom) walk(id NodeID, depth int, f func(NodeID, int, *Dom) bool) NodeID {
	if !f(id, depth, d) {
		return id + NodeID(d.Size())
	}
	next := id + 1
	for _, c := range d.Children {
		next = c.walk(next, depth+1, f)
	}
	return next
}

// Size returns the number of nodes of d, including d. Unlike NodeCount,
// which is kept up to date by AddChild of the direct parent only, Size
// visits the nodes and stays exact when a child grows after being added.
func (d *Dom) Size() int {
	n := 1
	for _, c := range d.Children {
		n += c.Size()
	}
	return n
}

// Select returns the ids of all nodes matching pred, in document order.
func (d *Dom) Select(pred Predicate) []NodeID {
	var ids []NodeID
	d.Walk(func(id NodeID, _ int, node *Dom) bool {
		if pred(&node.Root) {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Node returns the sub-tree with the given id.
func (d *Dom) Node(id NodeID) (*Dom, bool) {
	if id < 0 {
		return nil, false
	}
	var found *Dom
	d.Walk(func(nid NodeID, _ int, node *Dom) bool {
		if found != nil || nid > id {
			return false
		}
		if nid == id {
			found = node
			return false
		}
		return true
	})
	return found, found != nil
}

// TabOrder returns the ids of nodes reachable by the Tab key, in the order
// the focus moves. Within a parent, nodes with an overriding tab index come
// first, ordered by their index, followed by auto nodes in document order.
// Nodes with NoKeyboardFocus are left out.
func (d *Dom) TabOrder() []NodeID {
	var order []NodeID
	if ti, ok := d.Root.TabIndex().Get(); ok && ti.Kind != TabNoKeyboardFocus {
		order = append(order, 0)
	}
	d.tabOrder(0, &order)
	return order
}

type tabStop struct {
	id    NodeID
	index TabIndex
	node  *Dom
}

func (d *Dom) tabOrder(id NodeID, order *[]NodeID) {
	var overrides, autos []tabStop
	next := id + 1
	for _, c := range d.Children {
		stop := tabStop{id: next, node: c}
		if ti, ok := c.Root.TabIndex().Get(); ok {
			stop.index = ti
			if ti.Kind == TabOverrideInParent {
				overrides = append(overrides, stop)
			} else {
				autos = append(autos, stop)
			}
		} else {
			stop.index = NoKeyboardFocus()
			autos = append(autos, stop)
		}
		next += NodeID(c.Size())
	}
	sort.SliceStable(overrides, func(i, j int) bool {
		return overrides[i].index.N < overrides[j].index.N
	})
	for _, stop := range append(overrides, autos...) {
		if stop.index.Kind != TabNoKeyboardFocus {
			*order = append(*order, stop.id)
		}
		stop.node.tabOrder(stop.id, order)
	}
}
