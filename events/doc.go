/*
Package events routes window events to the callbacks of a Dom.

Overview

The embedder reports every window event to a Router, together with the
nodes under the cursor (the hit set). The router visits the callbacks of
the Dom in document order and fires those whose filter matches:

	Hover(e)       the node is hit and e happens
	Focus(e)       the node has the keyboard focus and e happens
	Window(e)      e happens, wherever the node is; the hit node is the root
	Not(Hover(e))  e happens and the node is not hit
	Not(Focus(e))  e happens and the node has no focus

Hover(MouseEnter) and Hover(MouseLeave) fire when a node enters or leaves
the hit set. Focus(FocusReceived) and Focus(FocusLost) fire when the focus
moves. Component and application filters are never fired by the router.

Every callback returns an UpdateScreen. The router reports the strongest
of them in its Outcome, together with the modified window state, focus
changes, new timers and whether the pseudo-classes of nodes changed.
Outcome.NeedsRestyle tells the embedder to run the cascade again, with the
router as the source of pseudo-classes.

Dispatch runs on the caller's goroutine and starts no goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package events

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'guistyle.events'.
func tracer() tracing.Trace {
	return tracing.Select("guistyle.events")
}
