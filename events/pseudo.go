package events

import (
	"sort"
	"strings"

	"github.com/npillmayer/guistyle/callbacks"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/w3cdom"
)

// PseudoTable holds the runtime pseudo-classes of nodes. Nodes not in the
// table have none.
type PseudoTable map[dom.NodeID]w3cdom.PseudoState

// PseudoState returns the pseudo-classes of a node.
func (t PseudoTable) PseudoState(id dom.NodeID) w3cdom.PseudoState {
	return t[id]
}

// Equal compares two tables.
func (t PseudoTable) Equal(other PseudoTable) bool {
	if len(t) != len(other) {
		return false
	}
	for id, s := range t {
		if other[id] != s {
			return false
		}
	}
	return true
}

func (t PseudoTable) String() string {
	ids := make([]dom.NodeID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	entries := make([]string, len(ids))
	for i, id := range ids {
		entries[i] = id.String() + t[id].String()
	}
	return strings.Join(entries, " ")
}

// pseudoTable computes hover and active states from the hit set and the
// mouse buttons, and the focus state from the focused node.
func pseudoTable(hit map[dom.NodeID]bool, mouse callbacks.MouseState, focus dom.NodeID) PseudoTable {
	t := make(PseudoTable, len(hit)+1)
	for id := range hit {
		s := w3cdom.Hover
		if mouse.MouseDown() {
			s |= w3cdom.Active
		}
		t[id] = s
	}
	if focus != dom.NoNode {
		t[focus] |= w3cdom.Focus
	}
	return t
}
