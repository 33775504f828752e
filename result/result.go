package result

import (
	"fmt"

	"github.com/npillmayer/guistyle/maybe"
)

// Result is the result of a computation that may fail: either Ok(x) or
// Err(e). Values are inspected by matching:
//
//	var v T
//	var e error
//	switch m := r.Match(); m {
//	case m.Ok(&v):
//	    …
//	case m.Err(&e):
//	    …
//	}
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. A nil error is replaced by a generic one, as Err must
// never be mistaken for Ok.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("unspecified error")
	}
	return result[T]{err: err}
}

// Of converts a (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies f to an Ok value.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// MapError transforms the error of an Err value.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	if _, err := r.Get(); err != nil {
		return Err[T](f(err))
	}
	return r
}

// ToMaybe drops the error.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	v, err := r.Get()
	return maybe.Of(v, err == nil)
}

// FromMaybe converts Nothing to Err(err).
func FromMaybe[T any](err error, m maybe.Maybe[T]) Result[T] {
	if v, ok := m.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Result.Match. Each method returns nil if it does not
// match.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
