/*
Package markup builds a Dom and its stylesheets from HTML-like markup.

Markup is parsed with the HTML5 parser of golang.org/x/net/html. The
<body> element becomes the root of the Dom. Elements map to nodes as
follows:

	<body>, <div>          container nodes
	<p>                    a label with the text content of the element
	<img src="n">          an image with image id n
	anything else          a div, with a trace message

Text outside of <p> elements becomes a label. Attributes id, class,
draggable, focusable, tabindex and style are read; style holds inline
declarations. <style> elements of <head> and <body> are collected into
stylesheets, in order of appearance.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.dom")
}
