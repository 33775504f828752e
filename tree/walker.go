package tree

import (
	"errors"
)

// ErrEmptyTree is returned if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this ("FindNodesAndDoSomething()" is
// a placeholder for a sequence of function calls, see below):
//
//	w := NewWalker(node)
//	nodes, err := w.FindNodesAndDoSomething(...).Nodes()
//
// Each step works on the selection of the previous step. Once a step
// reports an error, subsequent steps are skipped and Nodes() returns the
// error.
type Walker[T any] struct {
	selection []*Node[T]
	err       error
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, the walker will result in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T any](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return &Walker[T]{err: ErrEmptyTree}
	}
	return &Walker[T]{selection: []*Node[T]{initial}}
}

// Nodes returns the current selection and the first error that occurred.
func (w *Walker[T]) Nodes() ([]*Node[T], error) {
	return w.selection, w.err
}

func (w *Walker[T]) step(f func(*Node[T], func(*Node[T])) error) *Walker[T] {
	if w.err != nil {
		return w
	}
	next := &Walker[T]{}
	seen := make(map[*Node[T]]bool)
	push := func(n *Node[T]) {
		if !seen[n] {
			seen[n] = true
			next.selection = append(next.selection, n)
		}
	}
	for _, n := range w.selection {
		if err := f(n, push); err != nil {
			tracer().Debugf("tree walker step failed at %v: %v", n, err)
			next.err = err
			break
		}
	}
	return next
}

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various Walker functions to
// collect a selection of nodes.
type Predicate[T any] func(n *Node[T], parent *Node[T]) (bool, error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T any]() Predicate[T] {
	return func(*Node[T], *Node[T]) (bool, error) {
		return true, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T any]() Predicate[T] {
	return func(n *Node[T], _ *Node[T]) (bool, error) {
		return n.ChildCount() == 0, nil
	}
}

// Parent selects the parent of every node of the selection.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.step(func(n *Node[T], push func(*Node[T])) error {
		if p := n.Parent(); p != nil {
			push(p)
		}
		return nil
	})
}

// AncestorWith finds the closest ancestor matching the given predicate.
// The search does not include the start node.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	return w.step(func(n *Node[T], push func(*Node[T])) error {
		for a := n.Parent(); a != nil; a = a.Parent() {
			ok, err := predicate(a, a.Parent())
			if err != nil {
				return err
			}
			if ok {
				push(a)
				break
			}
		}
		return nil
	})
}

// DescendentsWith finds descendents matching a predicate, in document order.
// The search does not include the start node.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	return w.step(func(n *Node[T], push func(*Node[T])) error {
		var err error
		n.Walk(func(d *Node[T], depth int) bool {
			if err != nil {
				return false
			}
			if depth > 0 {
				var ok bool
				if ok, err = predicate(d, d.Parent()); ok && err == nil {
					push(d)
				}
			}
			return true
		})
		return err
	})
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter keeps the nodes of the selection matching a predicate.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	return w.step(func(n *Node[T], push func(*Node[T])) error {
		ok, err := f(n, n.Parent())
		if ok && err == nil {
			push(n)
		}
		return err
	})
}

// Action is a function type to operate on tree nodes.
// position is the index of n among its siblings.
type Action[T any] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses the subtrees of the selection, starting at (and
// including) the selected nodes. Parents are always processed before
// their children. The resulting selection is unchanged.
//
// If the action function returns an error for a node, the traversal stops.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	return w.step(func(n *Node[T], push func(*Node[T])) error {
		var err error
		n.Walk(func(d *Node[T], _ int) bool {
			if err == nil {
				err = action(d, d.Parent(), d.Position())
			}
			return err == nil
		})
		push(n)
		return err
	})
}

// BottomUp traverses the subtrees of the selection, processing children
// before their parents. The resulting selection is unchanged.
//
// If the action function returns an error for a node, the traversal stops.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	return w.step(func(n *Node[T], push func(*Node[T])) error {
		push(n)
		return bottomUp(n, action)
	})
}

func bottomUp[T any](n *Node[T], action Action[T]) error {
	for _, ch := range n.children {
		if err := bottomUp(ch, action); err != nil {
			return err
		}
	}
	return action(n, n.Parent(), n.Position())
}

// CalcRank is an action for bottom-up processing. It calculates the 'rank'-member
// for each node, meaning: the number of nodes in the subtree of the node.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T any](n *Node[T], parent *Node[T], position int) error {
	r := uint32(1)
	for _, ch := range n.children {
		r += ch.Rank
	}
	n.Rank = r
	return nil
}
