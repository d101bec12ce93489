// Package seq implements a lazy, pull-based sequence used as the iteration
// and right-fold collaborator of the list package.
//
// A Seq is consumed by calling Next until ok is false. Sequences are
// single-use: combinators wrap the underlying producer, they never rewind it.
package seq

// Seq is a lazy sequence of values of type T. The zero value is exhausted.
type Seq[T any] struct {
	next func() (T, bool)
}

// New builds a Seq from a producer function. The producer reports ok=false
// once the sequence is exhausted and must keep reporting false afterwards.
func New[T any](next func() (T, bool)) Seq[T] {
	return Seq[T]{next: next}
}

// Next yields the next value. When ok is false, iteration is complete.
func (s Seq[T]) Next() (T, bool) {
	if s.next == nil {
		var zero T
		return zero, false
	}
	return s.next()
}

// FromSlice creates a sequence over values without copying them.
func FromSlice[T any](values []T) Seq[T] {
	idx := 0
	return New(func() (T, bool) {
		if idx >= len(values) {
			var zero T
			return zero, false
		}
		v := values[idx]
		idx++
		return v, true
	})
}

// Of creates a sequence over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// InitInfinite generates the unbounded sequence init(0), init(1), init(2), ...
// Callers must bound it with Take, Zip against a finite sequence, or an
// early-terminating fold.
func InitInfinite[T any](init func(int) T) Seq[T] {
	idx := 0
	return New(func() (T, bool) {
		v := init(idx)
		idx++
		return v, true
	})
}

// Map lazily transforms each value with fn.
func Map[A any, B any](s Seq[A], fn func(A) B) Seq[B] {
	return New(func() (B, bool) {
		v, ok := s.Next()
		if !ok {
			var zero B
			return zero, false
		}
		return fn(v), true
	})
}

// Filter lazily keeps the values satisfying predicate.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return New(func() (T, bool) {
		for {
			v, ok := s.Next()
			if !ok {
				var zero T
				return zero, false
			}
			if predicate(v) {
				return v, true
			}
		}
	})
}

// Take yields at most n values from s.
func Take[T any](s Seq[T], n int) Seq[T] {
	taken := 0
	return New(func() (T, bool) {
		if taken >= n {
			var zero T
			return zero, false
		}
		v, ok := s.Next()
		if !ok {
			var zero T
			return zero, false
		}
		taken++
		return v, true
	})
}

// Drop discards the first n values of s before yielding the rest.
func Drop[T any](s Seq[T], n int) Seq[T] {
	dropped := false
	return New(func() (T, bool) {
		if !dropped {
			dropped = true
			for range n {
				if _, ok := s.Next(); !ok {
					var zero T
					return zero, false
				}
			}
		}
		return s.Next()
	})
}

// Pair holds two related values produced by Zip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Zip pairs the values of a and b positionally, ending with the shorter
// sequence. Zipping against InitInfinite attaches a 0-based index to every
// element of a finite sequence.
func Zip[A any, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return New(func() (Pair[A, B], bool) {
		av, ok := a.Next()
		if !ok {
			return Pair[A, B]{}, false
		}
		bv, ok := b.Next()
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: av, Second: bv}, true
	})
}

// Fold reduces s from the front: the folder sees the accumulated state and
// each value in iteration order.
func Fold[T any, S any](folder func(S, T) S, initial S, s Seq[T]) S {
	state := initial
	for {
		v, ok := s.Next()
		if !ok {
			return state
		}
		state = folder(state, v)
	}
}

// FoldBack reduces s from the end toward the front, returning a function of
// the initial state. The rightmost value is folded first, which is what lets
// list construction preserve input order while building tail-inward.
//
// The sequence must be finite; it is realized in full when the returned
// function is applied, and consumed by the first application.
//
// Example:
//
//	total := seq.FoldBack(func(v int, acc int) int { return acc + v }, seq.Of(1, 2, 3))(0)
func FoldBack[T any, S any](folder func(T, S) S, s Seq[T]) func(S) S {
	return func(state S) S {
		values := ToSlice(s)
		for i := len(values) - 1; i >= 0; i-- {
			state = folder(values[i], state)
		}
		return state
	}
}

// ToSlice exhausts the sequence and collects its values. The result is never
// nil so callers can compare against empty slices directly.
func ToSlice[T any](s Seq[T]) []T {
	result := []T{}
	for {
		v, ok := s.Next()
		if !ok {
			return result
		}
		result = append(result, v)
	}
}
