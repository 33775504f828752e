/*
Package style holds the resolved CSS properties of styled nodes.

Properties are organized in property groups (margins, padding, border, …),
and property maps link a styled node to the groups it sets. Groups of
descendents link to the ancestor group of the same name, which makes
inheritance a walk along the group chain. The root of every chain is the
set of default values, see InitializeDefaultPropertyValues.

Shorthand declarations like "padding: 2px 4px" are expanded into their
longhand properties by SplitCompoundProperty before values are parsed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'guistyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("guistyle.dom")
}
