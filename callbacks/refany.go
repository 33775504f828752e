package callbacks

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/npillmayer/guistyle/maybe"
)

// RefAny is a type-erased, shared state cell. Clones of a RefAny share the
// same cell. The cell keeps a shared count and a mut count, which embedders
// maintain around reads and writes:
//
//	CanBeShared()    ⇔ mut count == 0
//	CanBeSharedMut() ⇔ shared count == 0 ∧ mut count == 0
//
// When the last clone has been dropped and both counts are zero, the
// destructor runs exactly once and the cell becomes invalid.
//
// Violating the counting contract (e.g., decreasing a count below zero or
// writing to the value while it is shared) is a contract breach. The
// outcome is undefined, but RefAny will neither panic nor block.
type RefAny struct {
	cell    *refCell
	dropped atomic.Bool // this clone has been dropped
}

type refCell struct {
	value      any // always a pointer *T
	typ        reflect.Type
	destructor func()
	strong     atomic.Int64 // number of live clones
	shared     atomic.Int64
	mut        atomic.Int64
	destroyed  atomic.Bool
}

// NewRefAny creates a state cell holding a copy of value.
func NewRefAny[T any](value T) *RefAny {
	return NewRefAnyWithDestructor(value, nil)
}

// NewRefAnyWithDestructor creates a state cell holding a copy of value.
// destructor is called once the cell is released, and may be nil.
func NewRefAnyWithDestructor[T any](value T, destructor func(*T)) *RefAny {
	p := new(T)
	*p = value
	cell := &refCell{
		value: p,
		typ:   reflect.TypeOf(p).Elem(),
	}
	if destructor != nil {
		cell.destructor = func() { destructor(p) }
	}
	cell.strong.Store(1)
	return &RefAny{cell: cell}
}

// Clone returns a new handle to the same cell.
func (r *RefAny) Clone() *RefAny {
	if !r.IsValid() {
		tracer().Errorf("clone of an invalid RefAny")
		return &RefAny{cell: r.cellOrNil()}
	}
	r.cell.strong.Add(1)
	return &RefAny{cell: r.cell}
}

// Drop releases this handle. Dropping a handle twice is a no-op.
func (r *RefAny) Drop() {
	if r == nil || r.cell == nil || !r.dropped.CompareAndSwap(false, true) {
		return
	}
	if r.cell.strong.Add(-1) < 0 {
		tracer().Errorf("RefAny<%s>: contract breach, dropped too often", r.TypeName())
	}
	r.cell.release()
}

// release runs the destructor once no clone and no borrow is left.
func (c *refCell) release() {
	if c.strong.Load() > 0 || c.shared.Load() > 0 || c.mut.Load() > 0 {
		return
	}
	if !c.destroyed.CompareAndSwap(false, true) {
		return
	}
	if c.destructor != nil {
		c.destructor()
	}
}

func (r *RefAny) cellOrNil() *refCell {
	if r == nil {
		return nil
	}
	return r.cell
}

// IsValid is false for a nil handle, a dropped handle or a destroyed cell.
func (r *RefAny) IsValid() bool {
	return r != nil && r.cell != nil && !r.dropped.Load() && !r.cell.destroyed.Load()
}

// TypeName returns the name of the type held by the cell.
func (r *RefAny) TypeName() string {
	if r == nil || r.cell == nil {
		return "<nil>"
	}
	return r.cell.typ.String()
}

// IsType checks if the cell holds a value of type T.
func IsType[T any](r *RefAny) bool {
	if r == nil || r.cell == nil {
		return false
	}
	return r.cell.typ == reflect.TypeOf((*T)(nil)).Elem()
}

// IncreaseRef increases the shared count.
func (r *RefAny) IncreaseRef() {
	if r.IsValid() {
		r.cell.shared.Add(1)
	}
}

// DecreaseRef decreases the shared count.
func (r *RefAny) DecreaseRef() {
	if r == nil || r.cell == nil {
		return
	}
	if r.cell.shared.Add(-1) < 0 {
		tracer().Errorf("RefAny<%s>: contract breach, shared count below zero", r.TypeName())
		r.cell.shared.Store(0)
	}
	r.cell.release()
}

// IncreaseRefMut increases the mut count.
func (r *RefAny) IncreaseRefMut() {
	if r.IsValid() {
		r.cell.mut.Add(1)
	}
}

// DecreaseRefMut decreases the mut count.
func (r *RefAny) DecreaseRefMut() {
	if r == nil || r.cell == nil {
		return
	}
	if r.cell.mut.Add(-1) < 0 {
		tracer().Errorf("RefAny<%s>: contract breach, mut count below zero", r.TypeName())
		r.cell.mut.Store(0)
	}
	r.cell.release()
}

// CanBeShared is true if nobody holds a mutable borrow.
func (r *RefAny) CanBeShared() bool {
	return r.IsValid() && r.cell.mut.Load() == 0
}

// CanBeSharedMut is true if nobody holds any borrow.
func (r *RefAny) CanBeSharedMut() bool {
	return r.IsValid() && r.cell.mut.Load() == 0 && r.cell.shared.Load() == 0
}

// Counts returns the shared count and the mut count.
func (r *RefAny) Counts() (shared, mut int64) {
	if r == nil || r.cell == nil {
		return 0, 0
	}
	return r.cell.shared.Load(), r.cell.mut.Load()
}

func (r *RefAny) String() string {
	shared, mut := r.Counts()
	return fmt.Sprintf("RefAny<%s>{shared: %d, mut: %d}", r.TypeName(), shared, mut)
}

// Downcast returns the value of the cell for reading. It returns Nothing if
// the cell does not hold a T or is mutably borrowed.
func Downcast[T any](r *RefAny) maybe.Maybe[*T] {
	if !r.CanBeShared() {
		return maybe.Nothing[*T]()
	}
	p, ok := r.cell.value.(*T)
	return maybe.Of(p, ok)
}

// DowncastMut returns the value of the cell for writing. It returns Nothing
// if the cell does not hold a T or is borrowed.
func DowncastMut[T any](r *RefAny) maybe.Maybe[*T] {
	if !r.CanBeSharedMut() {
		return maybe.Nothing[*T]()
	}
	p, ok := r.cell.value.(*T)
	return maybe.Of(p, ok)
}

// Borrow calls f with the value of the cell while holding a shared borrow.
// It returns false if f has not been called.
func Borrow[T any](r *RefAny, f func(*T)) bool {
	p, ok := Downcast[T](r).Get()
	if !ok {
		return false
	}
	r.IncreaseRef()
	defer r.DecreaseRef()
	f(p)
	return true
}

// BorrowMut calls f with the value of the cell while holding a mutable
// borrow. It returns false if f has not been called.
func BorrowMut[T any](r *RefAny, f func(*T)) bool {
	p, ok := DowncastMut[T](r).Get()
	if !ok {
		return false
	}
	r.IncreaseRefMut()
	defer r.DecreaseRefMut()
	f(p)
	return true
}
