/*
Package cascade resolves CSS properties for the nodes of a Dom.

Overview

A Styler holds a set of stylesheets. Styling a Dom builds a styled tree
(see package styledtree) and computes, for every node, the properties the
node declares:

	1. rules of all stylesheets matching the node, from the weakest to the
	   strongest (specificity first, then order of appearance)
	2. the inline style of the node

Later declarations overwrite earlier ones. A dynamic declaration takes the
value the node overrides it with, or its default if there is none.

Declared values are then resolved against the parent node: 'inherit' takes
the parent's value, 'initial' the default, and inherited properties a node
does not declare cascade down from the nearest ancestor setting them. At
the root, 'inherit' resolves to the default. Styling never fails; problems
are traced.

Status

Pseudo-classes are read when a tree is styled. Embedders re-style after an
event changed the hover or focus state of a node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.cascade")
}
