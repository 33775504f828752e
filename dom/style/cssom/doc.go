/*
Package cssom provides the CSS object model: selectors, rule blocks and
stylesheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Its
stylesheets are a list of rule blocks, each consisting of a selector path
and a list of typed declarations. A collection of stylesheets forms a Css,
and later stylesheets win over earlier ones for rules of equal specificity.

Selector paths match against nodes of a DOM right to left, see
Path.Matches. Nodes are seen through interface w3cdom.Node.

CSS handling is de-coupled from tokenizing CSS text by introducing
interfaces StyleSheet and Rule. A concrete implementation may be found in
sub-package douceuradapter; Compile turns such a source stylesheet into
the typed model, reporting every dropped rule or declaration as a
ParseError.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.cssom")
}
