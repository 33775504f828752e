package css

import (
	"github.com/npillmayer/guistyle/maybe"
)

type valueKind uint8

const (
	kindAuto valueKind = iota
	kindNone
	kindInherit
	kindInitial
	kindExact
)

// Value is the lattice value every property is wrapped in:
//
//    type Value T
//        = Auto
//        | None
//        | Inherit
//        | Initial
//        | Exact T
//
// The zero value of Value is Auto.
type Value[T any] struct {
	exact T
	kind  valueKind
}

// Auto creates a lattice value of kind 'auto'.
func Auto[T any]() Value[T] {
	return Value[T]{kind: kindAuto}
}

// None creates a lattice value of kind 'none'.
func None[T any]() Value[T] {
	return Value[T]{kind: kindNone}
}

// Inherit creates a lattice value of kind 'inherit'.
func Inherit[T any]() Value[T] {
	return Value[T]{kind: kindInherit}
}

// Initial creates a lattice value of kind 'initial'.
func Initial[T any]() Value[T] {
	return Value[T]{kind: kindInitial}
}

// Exact creates a lattice value holding x.
func Exact[T any](x T) Value[T] {
	return Value[T]{exact: x, kind: kindExact}
}

// IsAuto is true for Auto.
func (v Value[T]) IsAuto() bool { return v.kind == kindAuto }

// IsNone is true for None.
func (v Value[T]) IsNone() bool { return v.kind == kindNone }

// IsInherit is true for Inherit.
func (v Value[T]) IsInherit() bool { return v.kind == kindInherit }

// IsInitial answers Initial only.
func (v Value[T]) IsInitial() bool { return v.kind == kindInitial }

// IsExact is true if v holds a value.
func (v Value[T]) IsExact() bool { return v.kind == kindExact }

// Get returns the exact value, if any.
func (v Value[T]) Get() (T, bool) {
	return v.exact, v.kind == kindExact
}

// GetOrDefault returns the exact value or def.
func (v Value[T]) GetOrDefault(def T) T {
	if v.kind == kindExact {
		return v.exact
	}
	return def
}

// Maybe converts an exact value into Just, anything else into Nothing.
func (v Value[T]) Maybe() maybe.Maybe[T] {
	if v.kind == kindExact {
		return maybe.Just(v.exact)
	}
	return maybe.Nothing[T]()
}

// Map applies f to an exact value. Other kinds are returned unchanged.
func (v Value[T]) Map(f func(T) T) Value[T] {
	if v.kind == kindExact {
		return Exact(f(v.exact))
	}
	return v
}

// keyword returns the CSS keyword for non-exact values.
func (v Value[T]) keyword() string {
	switch v.kind {
	case kindAuto:
		return "auto"
	case kindNone:
		return "none"
	case kindInherit:
		return "inherit"
	case kindInitial:
		return "initial"
	}
	return ""
}

// Cascade resolves a declared lattice value against the value of the parent
// node:
//
//    Exact(t)          →  t
//    Auto, None        →  def (property specific default)
//    Initial           →  def
//    Inherit           →  parent, or def at the root
//
// Omitted values (see CascadeOmitted) inherit only for inheritable properties.
func (v Value[T]) Cascade(parent maybe.Maybe[T], def T) T {
	switch v.kind {
	case kindExact:
		return v.exact
	case kindInherit:
		return parent.WithDefault(def)
	}
	return def
}

// CascadeOmitted resolves a property which has not been declared for a node.
func CascadeOmitted[T any](parent maybe.Maybe[T], inheritable bool, def T) T {
	if inheritable {
		return parent.WithDefault(def)
	}
	return def
}

// InterpolateValues interpolates between two lattice values. Only pairs of
// exact values are interpolated, using f; other pairs snap at t = 0.5.
func InterpolateValues[T any](a, b Value[T], t float32, f func(T, T, float32) T) Value[T] {
	if a.kind == kindExact && b.kind == kindExact && f != nil {
		return Exact(f(a.exact, b.exact, t))
	}
	if t < 0.5 {
		return a
	}
	return b
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for switch-style pattern matching:
//
//    var w LayoutWidth
//    switch m := v.Match(); m {
//    case m.Exact(&w):
//        …
//    case m.Auto():
//        …
//    }
func (v Value[T]) Match() *Matcher[T] {
	return &Matcher[T]{value: v}
}

// Matcher is a helper type for matching lattice values, see Value.Match.
type Matcher[T any] struct {
	value Value[T]
}

func (m *Matcher[T]) kind(k valueKind) *Matcher[T] {
	if m.value.kind == k {
		return m
	}
	return nil
}

// Auto matches 'auto'.
func (m *Matcher[T]) Auto() *Matcher[T] { return m.kind(kindAuto) }

// None matches 'none'.
func (m *Matcher[T]) None() *Matcher[T] { return m.kind(kindNone) }

// Inherit matches 'inherit'.
func (m *Matcher[T]) Inherit() *Matcher[T] { return m.kind(kindInherit) }

// Initial matches 'initial'.
func (m *Matcher[T]) Initial() *Matcher[T] { return m.kind(kindInitial) }

// Exact matches an exact value and stores it in x, if x is non-nil.
func (m *Matcher[T]) Exact(x *T) *Matcher[T] {
	if m.value.kind == kindExact {
		if x != nil {
			*x = m.value.exact
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// Patterns holds one result per lattice kind. Default is used for kinds
// without a result. Results are optional, so a zero result is a result.
type Patterns[R any] struct {
	Auto    maybe.Maybe[R]
	None    maybe.Maybe[R]
	Inherit maybe.Maybe[R]
	Initial maybe.Maybe[R]
	Exact   maybe.Maybe[R]
	Default R
}

// Pattern starts an expression match on a lattice value:
//
//    m := css.Pattern[float32](width)
//    px := m.OneOf(css.Patterns[float32]{
//        Exact:   m.With(&w).Const(w.Inner.ToPixels(parent)),
//        Default: 0,
//    })
func Pattern[R any, T any](v Value[T]) *MatchExpr[R, T] {
	return &MatchExpr[R, T]{value: v}
}

// MatchExpr is an expression matcher, see Pattern.
type MatchExpr[R any, T any] struct {
	value Value[T]
}

// OneOf selects the result for the kind of the value.
func (m *MatchExpr[R, T]) OneOf(patterns Patterns[R]) R {
	var r maybe.Maybe[R]
	switch m.value.kind {
	case kindAuto:
		r = patterns.Auto
	case kindNone:
		r = patterns.None
	case kindInherit:
		r = patterns.Inherit
	case kindInitial:
		r = patterns.Initial
	case kindExact:
		r = patterns.Exact
	}
	if r == nil {
		return patterns.Default
	}
	return r.WithDefault(patterns.Default)
}

// With stores the exact value, if any, in x.
func (m *MatchExpr[R, T]) With(x *T) *MatchExpr[R, T] {
	if m.value.kind == kindExact {
		*x = m.value.exact
	}
	return m
}

// Const returns x as a pattern result.
func (m *MatchExpr[R, T]) Const(x R) maybe.Maybe[R] {
	return maybe.Just(x)
}
