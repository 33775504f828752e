/*
Package css implements the typed property model for styling GUI nodes.

Every CSS property a node may carry is represented by a Go type, wrapped
into a lattice value

    Auto | None | Inherit | Initial | Exact(T)

which is the unit the cascade operates on. Values are built from a small
value algebra: fixed-point numbers (FloatValue), lengths with a unit
(PixelValue), percentages, angles and RGBA colors. Fixed-point numbers keep
all property values comparable, which allows memoising cascade results.

Properties are collected into a tagged union (Property), discriminated by a
PropertyType. A registry maps CSS keys to property types and shorthands to
their longhand expansions. The registry is built once, on first use.

Status

Stable for the property set listed with PropertyType. Layout solving,
rendering and text shaping live elsewhere.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.css")
}
