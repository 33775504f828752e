/*
Package styledtree is a straightforward default implementation of a styled
document tree.

Overview

A styled tree mirrors a dom.Dom node by node. Each StyNode links to its
Dom node and carries the property map computed for it by package cascade.
StyNode implements w3cdom.Node, so selectors match against styled nodes,
and w3cdom.ComputedStyles, so clients may query resolved property values.

Property maps of styled nodes hold only the property groups set for a
node. Every group links to the group of the same name of the nearest
ancestor, and finally to the group of the default values. Looking up an
inherited property walks this chain.

Runtime pseudo-classes (hover, active, focus) are not part of a Dom. They
are read from a PseudoStates source when the styled tree is built.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.dom")
}
