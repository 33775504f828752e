/*
Package callbacks defines the callback surface of a GUI document: the shared
state cell handed to every callback, event filters, the reply of a callback
and the information a callback may read and write.

Callbacks receive their state explicitly as a *RefAny, a type-erased cell
with reader/writer counts. Embedders use the counts to coordinate access
between the UI thread and worker threads:

	data := callbacks.NewRefAny(Counter{})
	cb := func(data *callbacks.RefAny, info *callbacks.CallbackInfo) callbacks.UpdateScreen {
	    c, ok := callbacks.DowncastMut[Counter](data).Get()
	    if !ok {
	        return callbacks.DontRedraw
	    }
	    c.N++
	    return callbacks.Redraw
	}

Callbacks run to completion on the caller's goroutine. Nothing in this
package starts a goroutine, except for Spawn, which an embedder calls
explicitly to delegate long work to a Thread.

Status

Event filters and infos are complete for mouse, keyboard, focus and window
events. Platform event translation lives with the embedder.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package callbacks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.events'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.events")
}
