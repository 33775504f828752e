/*
Package dom provides the document object model of a GUI: a tree of nodes,
built by a layout callback on every re-layout.

Overview

A Dom is a rose tree of NodeData. Each node has a node type (div, body,
label, text, image, GL texture or iframe), ids and classes for selector
matching, event callbacks, overrides for dynamic CSS declarations, inline
style, a tab index and a draggable flag.

Doms are built with a builder style API:

	d := dom.Body().
	    WithChild(dom.Div().WithClass("toolbar").
	        WithChild(dom.Label("Hello").WithID("greeting"))).
	    WithChild(dom.Image(imgID))

With* methods modify the receiver and return it, Add* methods modify the
receiver in place. Every Dom keeps a running count of its descendants, which
embedders use to pre-size the arenas of the layout solver.

Styling is not part of a Dom. Package styledtree builds a tree of style
nodes on top of a Dom, and package cascade resolves style properties for
it. Nodes of a Dom are identified by their NodeID, which is the position in
document order, with the root at 0.

Debugging

HTMLString renders a Dom as pretty-printed pseudo-HTML, which is handy for
snapshot tests. Dump renders the tree structure with ASCII art.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.dom")
}
