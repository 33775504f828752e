package tree

import (
	"fmt"
)

// Node is the base type our tree is built of.
type Node[T any] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children
	Payload  T          // nodes may carry a payload of arbitrary type
	Rank     uint32     // number of nodes in the subtree, see CalcRank
}

// NewNode creates a new tree node with a given payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node and connects it to node as its parent.
// If ch already has a parent, it is isolated first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. If i is beyond the end, the child is appended.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		return node.AddChild(ch)
	}
	node.children = append(node.children, nil)
	copy(node.children[i+1:], node.children[i:])
	node.children[i] = ch
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || len(node.children) <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Position returns the index of node among its siblings. The root has
// position 0.
func (node *Node[T]) Position() int {
	if node.parent == nil {
		return 0
	}
	return node.parent.IndexOfChild(node)
}

// IsLast is true if node is the last child of its parent, or the root.
func (node *Node[T]) IsLast() bool {
	return node.parent == nil || node.Position() == node.parent.ChildCount()-1
}

// Walk visits the subtree of node in document order (pre-order), including
// node itself. If f returns false, the children of the current node are
// skipped.
func (node *Node[T]) Walk(f func(n *Node[T], depth int) bool) {
	node.walk(f, 0)
}

func (node *Node[T]) walk(f func(*Node[T], int) bool, depth int) {
	if !f(node, depth) {
		return
	}
	for _, ch := range node.children {
		ch.walk(f, depth+1)
	}
}
