package events

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/guistyle/callbacks"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/guistyle/dom/w3cdom"
	"github.com/npillmayer/guistyle/tree"
)

// Event is a window event as reported by the embedder.
type Event struct {
	Kind           callbacks.WindowEventFilter
	Root           *dom.Dom                                 // Dom of the window
	Hit            []dom.NodeID                             // nodes under the cursor
	Focused        dom.NodeID                               // node with the keyboard focus or NoNode
	Window         *callbacks.WindowState                   // current keyboard and mouse state; optional
	CursorRelative map[dom.NodeID]callbacks.LogicalPosition // cursor relative to hit nodes; optional
}

func (ev Event) String() string {
	return fmt.Sprintf("event %s hit=%v focus=%s", ev.Kind, ev.Hit, ev.Focused)
}

// Fired records a callback which has been called.
type Fired struct {
	Node   dom.NodeID
	Filter callbacks.EventFilter
	Reply  callbacks.UpdateScreen
}

func (f Fired) String() string {
	return fmt.Sprintf("%s %s -> %s", f.Node, f.Filter, f.Reply)
}

// Outcome is the result of routing an event.
type Outcome struct {
	Update        callbacks.UpdateScreen // strongest reply of all callbacks
	Fired         []Fired                // callbacks called, in order
	Window        *callbacks.WindowState // window state after the callbacks
	WindowChanged bool
	Focus         dom.NodeID // focused node after the event
	FocusChanged  bool
	Timers        []*callbacks.Timer // timers to be started by the runtime
	PseudoChanged bool               // hover, active or focus state of a node changed
}

// NeedsRestyle is true if the embedder has to run the cascade again.
func (o Outcome) NeedsRestyle() bool {
	return o.PseudoChanged || o.Update.NeedsRestyle()
}

// GPUOnly is true if only GPU-side properties have to be pushed again.
func (o Outcome) GPUOnly() bool {
	return !o.PseudoChanged && o.Update.IsGPUOnly()
}

func (o Outcome) String() string {
	fired := make([]string, len(o.Fired))
	for i, f := range o.Fired {
		fired[i] = f.String()
	}
	return fmt.Sprintf("outcome %s focus=%s restyle=%v [%s]", o.Update, o.Focus,
		o.NeedsRestyle(), strings.Join(fired, ", "))
}

// Router dispatches window events to callbacks. It keeps track of the hit
// set and the focus between events and maintains the pseudo-classes of
// nodes. A Router is not safe for concurrent use.
type Router struct {
	window *callbacks.WindowState
	hit    map[dom.NodeID]bool
	focus  dom.NodeID
	pseudo PseudoTable
}

// NewRouter creates a router for a window. If window is nil, a default
// window state is used.
func NewRouter(window *callbacks.WindowState) *Router {
	if window == nil {
		window = callbacks.NewWindowState("")
	}
	return &Router{
		window: window,
		hit:    make(map[dom.NodeID]bool),
		focus:  dom.NoNode,
		pseudo: make(PseudoTable),
	}
}

// Window returns the current window state.
func (r *Router) Window() *callbacks.WindowState { return r.window }

// Focus returns the focused node or NoNode.
func (r *Router) Focus() dom.NodeID { return r.focus }

// PseudoState returns the pseudo-classes of a node. A Router may be used as
// the source of pseudo-classes for the cascade.
func (r *Router) PseudoState(id dom.NodeID) w3cdom.PseudoState {
	return r.pseudo.PseudoState(id)
}

// Pseudo returns a copy of the pseudo-class table.
func (r *Router) Pseudo() PseudoTable {
	t := make(PseudoTable, len(r.pseudo))
	for id, s := range r.pseudo {
		t[id] = s
	}
	return t
}

// Reset forgets hit set, focus and pseudo-classes, e.g. after a Dom with a
// different structure has been laid out.
func (r *Router) Reset() {
	r.hit = make(map[dom.NodeID]bool)
	r.focus = dom.NoNode
	r.pseudo = make(PseudoTable)
}

// NewEvent creates an event with the focus known to the router.
func (r *Router) NewEvent(kind callbacks.WindowEventFilter, root *dom.Dom, hit ...dom.NodeID) Event {
	return Event{Kind: kind, Root: root, Hit: hit, Focused: r.focus}
}

// dispatch holds the state of routing a single event.
type dispatch struct {
	ev         Event
	current    *callbacks.WindowState
	modifiable *callbacks.WindowState
	out        *Outcome
	focusReq   *callbacks.FocusTarget
	stopped    bool
	prevented  bool
}

func (d *dispatch) fire(id dom.NodeID, cb dom.CallbackData) {
	if d.stopped || cb.Callback == nil {
		return
	}
	info := callbacks.NewCallbackInfo(d.current, d.modifiable, id)
	if pos, ok := d.ev.CursorRelative[id]; ok {
		info.WithCursorRelativeToItem(pos)
	}
	reply := cb.Callback(cb.Data, info)
	tracer().Debugf("%s: fired %s on %s, reply %s", d.ev.Kind, cb.Filter, id, reply)
	d.out.Update = d.out.Update.Stronger(reply)
	d.out.Fired = append(d.out.Fired, Fired{Node: id, Filter: cb.Filter, Reply: reply})
	d.out.Timers = append(d.out.Timers, info.Timers()...)
	if target, ok := info.FocusTarget().Get(); ok {
		d.focusReq = &target
	}
	d.stopped = d.stopped || info.IsPropagationStopped()
	d.prevented = d.prevented || info.IsDefaultPrevented()
}

// Dispatch routes an event to the callbacks of ev.Root. Callbacks fire in
// document order. Focus changes, by a default action or requested by a
// callback, fire FocusReceived and FocusLost callbacks afterwards.
func (r *Router) Dispatch(ev Event) Outcome {
	if ev.Window != nil {
		r.window = ev.Window
	}
	out := Outcome{Update: callbacks.DontRedraw, Focus: ev.Focused, Window: r.window}
	if ev.Root == nil {
		tracer().Errorf("cannot dispatch %v without a Dom", ev)
		return out
	}
	hit := make(map[dom.NodeID]bool, len(ev.Hit))
	for _, id := range ev.Hit {
		hit[id] = true
	}
	d := &dispatch{ev: ev, current: r.window, modifiable: r.window.Clone(), out: &out}
	ev.Root.Walk(func(id dom.NodeID, _ int, node *dom.Dom) bool {
		for _, cb := range node.Root.Callbacks {
			if !r.matches(cb.Filter, ev, id, hit) {
				continue
			}
			if cb.Filter.Kind() == callbacks.WindowFilter {
				d.fire(0, cb) // window callbacks target the root
			} else {
				d.fire(id, cb)
			}
		}
		return !d.stopped
	})
	focus := ev.Focused
	if !d.prevented {
		focus = r.defaultFocus(ev, hit, focus)
	}
	if d.focusReq != nil {
		focus = r.resolveFocus(ev.Root, *d.focusReq, focus)
	}
	if focus != ev.Focused {
		r.fireFocusChange(d, ev.Root, ev.Focused, focus)
	}
	out.Focus = focus
	out.FocusChanged = focus != ev.Focused
	out.Window = d.modifiable
	out.WindowChanged = !reflect.DeepEqual(d.modifiable, r.window)
	r.window = d.modifiable
	r.hit = hit
	r.focus = focus
	pseudo := pseudoTable(hit, r.window.Mouse, focus)
	out.PseudoChanged = !pseudo.Equal(r.pseudo)
	r.pseudo = pseudo
	tracer().Debugf("%v", out)
	return out
}

// matches checks a filter of a callback on node id against an event.
func (r *Router) matches(f callbacks.EventFilter, ev Event, id dom.NodeID, hit map[dom.NodeID]bool) bool {
	switch f.Kind() {
	case callbacks.HoverFilter:
		e, _ := f.AsHover()
		switch e {
		case callbacks.HoverMouseEnter:
			return hit[id] && !r.hit[id]
		case callbacks.HoverMouseLeave:
			return !hit[id] && r.hit[id]
		}
		h, ok := ev.Kind.ToHover()
		return ok && h == e && hit[id]
	case callbacks.FocusFilter:
		e, _ := f.AsFocus()
		fe, ok := ev.Kind.ToFocus()
		return ok && fe == e && id == ev.Focused
	case callbacks.WindowFilter:
		e, _ := f.AsWindow()
		return e == ev.Kind
	case callbacks.NotFilter:
		inner, _ := f.AsNot()
		if e, isHover := inner.AsHover(); isHover {
			h, ok := ev.Kind.ToHover()
			return ok && h == e && !hit[id]
		}
		e, _ := inner.AsFocus()
		fe, ok := ev.Kind.ToFocus()
		return ok && fe == e && id != ev.Focused
	}
	return false
}

// defaultFocus performs the default actions of an event: a click focuses
// the innermost focusable node hit, Tab moves the focus along the tab order.
func (r *Router) defaultFocus(ev Event, hit map[dom.NodeID]bool, focus dom.NodeID) dom.NodeID {
	switch ev.Kind {
	case callbacks.WindowMouseDown, callbacks.WindowLeftMouseDown:
		clicked := dom.NoNode
		ev.Root.Walk(func(id dom.NodeID, _ int, node *dom.Dom) bool {
			if hit[id] && node.Root.IsFocusable() {
				clicked = id
			}
			return true
		})
		return clicked
	case callbacks.WindowVirtualKeyDown:
		kb := r.window.Keyboard
		if kb.CurrentVirtualKeycode != callbacks.KeyTab {
			return focus
		}
		return nextInTabOrder(ev.Root.TabOrder(), focus, kb.ShiftDown)
	}
	return focus
}

func nextInTabOrder(order []dom.NodeID, focus dom.NodeID, backwards bool) dom.NodeID {
	if len(order) == 0 {
		return focus
	}
	pos := -1
	for i, id := range order {
		if id == focus {
			pos = i
			break
		}
	}
	switch {
	case pos < 0 && backwards:
		return order[len(order)-1]
	case pos < 0:
		return order[0]
	case backwards:
		return order[(pos+len(order)-1)%len(order)]
	}
	return order[(pos+1)%len(order)]
}

// resolveFocus finds the node of a focus target. Targets which cannot be
// found leave the focus unchanged.
func (r *Router) resolveFocus(root *dom.Dom, target callbacks.FocusTarget, focus dom.NodeID) dom.NodeID {
	if target.IsNoFocus() {
		return dom.NoNode
	}
	if target.Node != dom.NoNode {
		if _, ok := root.Node(target.Node); ok {
			return target.Node
		}
		tracer().Errorf("focus target %s not found", target.Node)
		return focus
	}
	path, err := cssom.ParseSelector(target.Path)
	if err != nil {
		tracer().Errorf("focus target: %v", err)
		return focus
	}
	found := dom.NoNode
	styled := styledtree.Build(root, nil, r)
	styled.Walk(func(n *tree.Node[*styledtree.StyNode], _ int) bool {
		if found == dom.NoNode && path.Matches(styledtree.Node(n)) {
			found = styledtree.Node(n).ID()
		}
		return found == dom.NoNode
	})
	if found == dom.NoNode {
		tracer().Errorf("no node matches focus target %q", target.Path)
		return focus
	}
	return found
}

// fireFocusChange fires FocusLost on the node losing the focus and
// FocusReceived on the node receiving it.
func (r *Router) fireFocusChange(d *dispatch, root *dom.Dom, from, to dom.NodeID) {
	tracer().Infof("focus moves from %s to %s", from, to)
	d.stopped = false
	fireOn := func(id dom.NodeID, e callbacks.FocusEventFilter) {
		node, ok := root.Node(id)
		if !ok {
			return
		}
		for _, cb := range node.Root.Callbacks {
			if fe, ok := cb.Filter.AsFocus(); ok && fe == e {
				d.fire(id, cb)
			}
		}
	}
	if from != dom.NoNode {
		fireOn(from, callbacks.FocusLost)
	}
	if to != dom.NoNode {
		fireOn(to, callbacks.FocusReceived)
	}
}
