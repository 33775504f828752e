/*
Package tree implements an ordered tree of nodes carrying a payload.

Styled trees and DOM-like structures are built on top of it. Trees are owned
by a single goroutine; nodes are not protected against concurrent access.

A Walker selects nodes with a small chainable vocabulary:

	leaves, err := tree.NewWalker(root).DescendentsWith(tree.NodeIsLeaf[T]()).Nodes()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.tree")
}
