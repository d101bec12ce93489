// Package list implements an immutable, persistent singly-linked list.
//
// Every operation returns a new List value and never mutates an existing
// one, so distinct lists may safely share tail structure and any number of
// goroutines may traverse the same list without coordination. The structure
// is optimized for prepending: Cons is O(1), Len is O(1) thanks to a length
// cached at construction, while Append rebuilds the left operand's spine and
// costs O(len(left)). There is no random-access indexing.
//
// Each combinator exists in two forms: a method on List for direct calls,
// and a curried package-level function returning a func(List[T]) List[T]
// for left-to-right composition with Pipe:
//
//	result := xs.Pipe(
//		list.Take[int](3),
//		list.Filter(func(n int) bool { return n%2 == 0 }),
//	)
//
// Operations that change the element type (Map, Choose, Collect) exist only
// in curried form, since Go methods cannot introduce type parameters.
package list

import (
	"fmt"
	"iter"

	"github.com/charmingruby/cons/fp"
	"github.com/charmingruby/cons/option"
	"github.com/charmingruby/cons/seq"
)

// List is an immutable singly-linked list of values of type T. The zero
// value is the empty list and is ready to use; it allocates nothing and all
// empty lists of a given type are interchangeable.
type List[T any] struct {
	root *node[T]
}

// node is a single cell: one element plus the rest of the list. The length
// of the whole list from this cell is fixed at construction, never touched
// again, and shared by every list that reuses this cell as a tail.
type node[T any] struct {
	head   T
	tail   List[T]
	length int
}

// Empty returns the empty list of type T. Emptiness is a nil check on the
// internal node, so comparing against Empty never traverses anything.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons prepends head to tail in O(1), sharing tail's structure unmodified.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{root: &node[T]{head: head, tail: tail, length: tail.Len() + 1}}
}

// Cons prepends element to the list in O(1).
func (l List[T]) Cons(element T) List[T] {
	return Cons(element, l)
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.root == nil
}

// Len returns the number of elements. It is O(1): the count is cached in
// every cell at construction time.
func (l List[T]) Len() int {
	if l.root == nil {
		return 0
	}
	return l.root.length
}

// Head returns the first element. It panics with an error wrapping
// ErrEmptyList when the list is empty; use TryHead when absence is expected.
func (l List[T]) Head() T {
	if l.root == nil {
		panic(errEmpty("Head"))
	}
	return l.root.head
}

// Tail returns the list without its first element, sharing the tail's
// structure. It panics with an error wrapping ErrEmptyList when the list is
// empty.
func (l List[T]) Tail() List[T] {
	if l.root == nil {
		panic(errEmpty("Tail"))
	}
	return l.root.tail
}

// TryHead returns Some of the first element, or None for the empty list. It
// never panics.
func (l List[T]) TryHead() option.Option[T] {
	if l.root == nil {
		return option.None[T]()
	}
	return option.Some(l.root.head)
}

// Append returns a list holding l's elements followed by other's. The left
// operand's spine is rebuilt (O(len(l)) new cells); other is shared as the
// result's tail without copying a single cell.
func (l List[T]) Append(other List[T]) List[T] {
	if l.root == nil {
		return other
	}
	if other.root == nil {
		return l
	}
	return fromSlice(l.ToSlice(), other)
}

// Filter returns the elements satisfying predicate, preserving their
// relative order. O(n).
func (l List[T]) Filter(predicate func(T) bool) List[T] {
	var kept []T
	for n := l.root; n != nil; n = n.tail.root {
		if predicate(n.head) {
			kept = append(kept, n.head)
		}
	}
	return fromSlice(kept, List[T]{})
}

// Skip returns the list with its first count elements dropped, sharing the
// remaining structure. It panics with an error wrapping ErrInvalidOperation
// when count is negative or exceeds the list's length.
func (l List[T]) Skip(count int) List[T] {
	if count < 0 {
		panic(errNegative("Skip", count))
	}
	cur := l
	for i := range count {
		if cur.root == nil {
			panic(errShort("Skip", count, i))
		}
		cur = cur.root.tail
	}
	return cur
}

// Take returns a list holding the first count elements. It panics with an
// error wrapping ErrInvalidOperation when count is negative or exceeds the
// list's length.
func (l List[T]) Take(count int) List[T] {
	if count < 0 {
		panic(errNegative("Take", count))
	}
	if count == 0 {
		return List[T]{}
	}
	// Cap the preallocation by the cached length: an oversized count must
	// surface as ErrInvalidOperation below, not as a makeslice failure.
	taken := make([]T, 0, min(count, l.Len()))
	cur := l
	for len(taken) < count {
		if cur.root == nil {
			panic(errShort("Take", count, len(taken)))
		}
		taken = append(taken, cur.root.head)
		cur = cur.root.tail
	}
	return fromSlice(taken, List[T]{})
}

// TakeLast returns the last count elements, sharing the retained suffix with
// the receiver. A count of at least Len() yields the whole list. It panics
// with an error wrapping ErrInvalidOperation when count is negative, or when
// count is positive and the list is empty.
func (l List[T]) TakeLast(count int) List[T] {
	if count < 0 {
		panic(errNegative("TakeLast", count))
	}
	if count == 0 {
		return List[T]{}
	}
	if l.root == nil {
		panic(errShort("TakeLast", count, 0))
	}
	if count >= l.Len() {
		return l
	}
	return l.Skip(l.Len() - count)
}

// SkipLast returns the list with its last count elements dropped. A count of
// at least Len() yields the empty list. It panics with an error wrapping
// ErrInvalidOperation when count is negative, or when count is positive and
// the list is empty.
func (l List[T]) SkipLast(count int) List[T] {
	if count < 0 {
		panic(errNegative("SkipLast", count))
	}
	if count == 0 {
		return l
	}
	if l.root == nil {
		panic(errShort("SkipLast", count, 0))
	}
	if count >= l.Len() {
		return List[T]{}
	}
	return l.Take(l.Len() - count)
}

// Rev returns the list with its elements in reverse order. O(n).
func (l List[T]) Rev() List[T] {
	out := List[T]{}
	for n := l.root; n != nil; n = n.tail.root {
		out = out.Cons(n.head)
	}
	return out
}

// Pipe threads the list through fns left to right, enabling composition of
// the curried package-level combinators.
func (l List[T]) Pipe(fns ...func(List[T]) List[T]) List[T] {
	return fp.Pipe(l, fns...)
}

// ToSlice copies the elements into a fresh slice in head-to-tail order. The
// empty list yields a non-nil empty slice.
func (l List[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())
	for n := l.root; n != nil; n = n.tail.root {
		out = append(out, n.head)
	}
	return out
}

// Seq returns a lazy head-to-tail view of the list for the seq combinators.
// The view walks shared structure and allocates no cells.
func (l List[T]) Seq() seq.Seq[T] {
	cur := l
	return seq.New(func() (T, bool) {
		if cur.root == nil {
			var zero T
			return zero, false
		}
		head := cur.root.head
		cur = cur.root.tail
		return head, true
	})
}

// All returns a head-to-tail iterator for use with range.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root; n != nil; n = n.tail.root {
			if !yield(n.head) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for debugging.
func (l List[T]) String() string {
	return fmt.Sprintf("%v", l.ToSlice())
}

// Equal reports whether a and b are structurally equal: same length and
// pairwise-equal elements in order. The cached lengths short-circuit the
// comparison, so comparing a non-empty list against the empty one is O(1),
// and a shared suffix is recognized without traversing it.
func Equal[T comparable](a, b List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	an, bn := a.root, b.root
	for an != nil {
		if an == bn {
			return true
		}
		if an.head != bn.head {
			return false
		}
		an, bn = an.tail.root, bn.tail.root
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison, allowing
// lists of different element types to be compared.
func EqualFunc[T any, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	an, bn := a.root, b.root
	for an != nil {
		if !eq(an.head, bn.head) {
			return false
		}
		an, bn = an.tail.root, bn.tail.root
	}
	return true
}

// Fold reduces the list from the front: folder sees the accumulated state
// and each element in head-to-tail order.
func Fold[T any, S any](folder func(S, T) S, initial S, source List[T]) S {
	state := initial
	for n := source.root; n != nil; n = n.tail.root {
		state = folder(state, n.head)
	}
	return state
}

// FoldBack reduces the list from the tail toward the head, returning a
// function of the initial state, mirroring seq.FoldBack.
func FoldBack[T any, S any](folder func(T, S) S, source List[T]) func(S) S {
	return func(state S) S {
		elements := source.ToSlice()
		for i := len(elements) - 1; i >= 0; i-- {
			state = folder(elements[i], state)
		}
		return state
	}
}

// fromSlice builds cells right to left so values keep their order, with tail
// as the innermost suffix. Iterative on purpose: construction must not
// consume stack proportional to the input.
func fromSlice[T any](values []T, tail List[T]) List[T] {
	out := tail
	for i := len(values) - 1; i >= 0; i-- {
		out = out.Cons(values[i])
	}
	return out
}
