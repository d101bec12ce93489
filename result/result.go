// Package result provides a success/error sum type mirroring Go's (T, error)
// convention with combinators that chain without intermediate if err checks.
//
// Example:
//
//	res := result.Ok("done")
//	value, err := res.Unwrap()
package result

import (
	"errors"
	"fmt"
)

// Result is the outcome of a computation: either a value of type T or an
// error, never both. The zero value is Ok with T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. A nil error is replaced with a descriptive
// placeholder so a failure can never masquerade as success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair into a Result.
//
// Example:
//
//	res := result.FromTuple(strconv.Atoi("42"))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error, mirroring standard Go semantics.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// MustUnwrap returns the value or panics with the stored error. Reserve it
// for call sites where failure is a programming error.
func (r Result[T]) MustUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the value on success, otherwise fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback from the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// Map transforms the value on success and propagates the error otherwise.
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// MapErr transforms the stored error when present, leaving successes alone.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// FlatMap chains a Result-producing step, propagating the first error.
//
// Example:
//
//	res := result.FlatMap(loadUser(id), fetchProfile)
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// Fold collapses the Result into a single value of type U.
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Sequence converts a slice of Results into a Result of a slice, failing
// fast on the first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// String implements fmt.Stringer for debugging.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
