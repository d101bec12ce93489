// Package option implements a generic two-variant Option type encoding
// presence or absence of a value.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/cons/result"
)

// Option holds either a value of type T (Some) or nothing (None). The zero
// value is None, so Options embed safely in other structs. The value is
// stored inline, which keeps Some of a nil-capable type distinguishable from
// None: use IsSome rather than comparing the payload.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value in a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None constructs the absent Option for type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk lifts Go's (value, ok) convention into an Option, e.g. map lookups.
//
// Example:
//
//	opt := option.FromOk(cache["key"])
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr converts a pointer into an Option, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the stored value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the stored value or panics on None. Reserve it for call
// sites where presence is an invariant.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("option: MustGet on None")
	}
	return o.value
}

// GetOrElse returns the value when present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc behaves like GetOrElse but computes the fallback lazily.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns the Option itself when present, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// Filter keeps the value only when predicate holds, otherwise None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil for None. Copying
// keeps the Option itself immutable.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// Map transforms the value with fn when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap chains an Option-producing step.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}

// Fold collapses the Option into a single value, applying onSome to the
// payload or producing onNone for the empty case.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// ToResult converts the Option into a Result, manufacturing the error with
// errFactory for the None case. A nil factory (or a factory returning nil)
// falls back to a generic error rather than producing a silent success.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("option: missing value")
	}
	return result.Err[T](err)
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
