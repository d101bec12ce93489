package list

import (
	"math"

	"github.com/charmingruby/cons/fp"
	"github.com/charmingruby/cons/option"
	"github.com/charmingruby/cons/seq"
)

// End is the Slice stop sentinel meaning "through the end of the list".
const End = math.MaxInt

// Singleton returns a one-element list.
func Singleton[T any](value T) List[T] {
	return Cons(value, List[T]{})
}

// OfSlice builds a list containing the slice's elements in order. The slice
// is read but not retained, so later mutation of it cannot reach the list.
func OfSlice[T any](values []T) List[T] {
	return fromSlice(values, List[T]{})
}

// OfSeq builds a list containing the sequence's elements in their original
// order. The sequence is consumed via a right fold, so the last element
// becomes the innermost tail first. O(n); the sequence must be finite.
func OfSeq[T any](source seq.Seq[T]) List[T] {
	folder := func(value T, acc List[T]) List[T] {
		return Cons(value, acc)
	}
	return seq.FoldBack(folder, source)(List[T]{})
}

// OfOption builds a singleton list from Some, or the empty list from None.
func OfOption[T any](opt option.Option[T]) List[T] {
	if value, ok := opt.Get(); ok {
		return Singleton(value)
	}
	return List[T]{}
}

// Concat folds Append over sources right to left, terminated by the empty
// list, producing one list with all elements in order. O(total elements).
func Concat[T any](sources []List[T]) List[T] {
	folder := func(xs List[T], acc List[T]) List[T] {
		return xs.Append(acc)
	}
	return seq.FoldBack(folder, seq.FromSlice(sources))(List[T]{})
}

// Head returns the first element of source. See List.Head for the failure
// contract.
func Head[T any](source List[T]) T {
	return source.Head()
}

// Tail returns source without its first element. See List.Tail.
func Tail[T any](source List[T]) List[T] {
	return source.Tail()
}

// TryHead returns Some of source's first element, or None when empty.
func TryHead[T any](source List[T]) option.Option[T] {
	return source.TryHead()
}

// IsEmpty reports whether source has no elements.
func IsEmpty[T any](source List[T]) bool {
	return source.IsEmpty()
}

// Length returns the number of elements in source. O(1).
func Length[T any](source List[T]) int {
	return source.Len()
}

// Map returns a pipeline stage transforming every element with mapper while
// preserving order and length.
//
// Example:
//
//	doubled := list.Map(func(n int) int { return n * 2 })(xs)
func Map[T any, U any](mapper func(T) U) func(List[T]) List[U] {
	return func(source List[T]) List[U] {
		mapped := make([]U, 0, source.Len())
		for n := source.root; n != nil; n = n.tail.root {
			mapped = append(mapped, mapper(n.head))
		}
		return fromSlice(mapped, List[U]{})
	}
}

// Filter returns a pipeline stage keeping the elements satisfying predicate.
func Filter[T any](predicate func(T) bool) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.Filter(predicate)
	}
}

// Choose returns a pipeline stage applying chooser to every element and
// collecting the Some payloads, in order, skipping every None.
func Choose[T any, U any](chooser func(T) option.Option[U]) func(List[T]) List[U] {
	return func(source List[T]) List[U] {
		var chosen []U
		for n := source.root; n != nil; n = n.tail.root {
			if value, ok := chooser(n.head).Get(); ok {
				chosen = append(chosen, value)
			}
		}
		return fromSlice(chosen, List[U]{})
	}
}

// Collect returns a pipeline stage mapping every element to a list and
// flattening the results in order (flat-map). O(total output length).
func Collect[T any, U any](mapping func(T) List[U]) func(List[T]) List[U] {
	return func(source List[T]) List[U] {
		var flattened []U
		for n := source.root; n != nil; n = n.tail.root {
			for m := mapping(n.head).root; m != nil; m = m.tail.root {
				flattened = append(flattened, m.head)
			}
		}
		return fromSlice(flattened, List[U]{})
	}
}

// Append returns a pipeline stage prefixing source to its argument, so
// other.Pipe(Append(source)) yields source's elements followed by other's.
func Append[T any](source List[T]) func(List[T]) List[T] {
	return func(other List[T]) List[T] {
		return source.Append(other)
	}
}

// Take returns a pipeline stage keeping the first count elements. See
// List.Take for the failure contract.
func Take[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.Take(count)
	}
}

// Skip returns a pipeline stage dropping the first count elements. See
// List.Skip for the failure contract.
func Skip[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.Skip(count)
	}
}

// TakeLast returns a pipeline stage keeping the last count elements.
func TakeLast[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.TakeLast(count)
	}
}

// SkipLast returns a pipeline stage dropping the last count elements.
func SkipLast[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.SkipLast(count)
	}
}

// Slice returns a sub-list selected by start, stop and step, with negative
// start/stop counted from the end of the list:
//
//	r---e---a---c---t---i---v---e---!
//	0   1   2   3   4   5   6   7   8
//	-8  -7  -6  -5  -4  -3  -2  -1  0
//
// Pass 0 for start, End for stop and 1 for step to leave the corresponding
// bound open. Slice is a wrapper composing Take, Skip, TakeLast, SkipLast
// and, for step > 1, an index-based decimation stage; the stages clamp their
// counts, so out-of-range bounds never fail. The stages apply in a fixed
// order: a non-negative stop first (Take), then the start (Skip when
// positive, TakeLast when negative), then a negative stop (SkipLast), then
// the step. It panics with an error wrapping ErrInvalidOperation when step
// is negative: reversal is not supported.
//
// Example:
//
//	list.OfSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}).Slice(1, -2, 1) // [2 3 4 5 6]
func (l List[T]) Slice(start, stop, step int) List[T] {
	if step < 0 {
		panic(errNegativeStep(step))
	}

	var pipeline []func(List[T]) List[T]
	if stop >= 0 {
		pipeline = append(pipeline, takeAtMost[T](stop))
	}
	if start > 0 {
		pipeline = append(pipeline, skipAtMost[T](start))
	} else if start < 0 {
		pipeline = append(pipeline, takeLastAtMost[T](-start))
	}
	if stop < 0 {
		pipeline = append(pipeline, skipLastAtMost[T](-stop))
	}
	if step > 1 {
		pipeline = append(pipeline, decimate[T](step))
	}
	return l.Pipe(pipeline...)
}

// Slice returns a pipeline stage slicing its argument; see List.Slice.
func Slice[T any](start, stop, step int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.Slice(start, stop, step)
	}
}

// The clamped stages bound their counts by whatever length reaches them, so
// a slice bound past either end selects everything available instead of
// failing the way the strict operations do.

func takeAtMost[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.Take(min(count, source.Len()))
	}
}

func skipAtMost[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		return source.Skip(min(count, source.Len()))
	}
}

func takeLastAtMost[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		if source.root == nil {
			return source
		}
		return source.TakeLast(count)
	}
}

func skipLastAtMost[T any](count int) func(List[T]) List[T] {
	return func(source List[T]) List[T] {
		if source.root == nil {
			return source
		}
		return source.SkipLast(count)
	}
}

// decimate keeps the elements whose 0-based position is a multiple of step,
// by zipping the list against an infinite index sequence and filtering on
// the index, then rebuilding a list from the survivors.
func decimate[T any](step int) func(List[T]) List[T] {
	withIndex := func(source List[T]) seq.Seq[seq.Pair[int, T]] {
		return seq.Zip(seq.InitInfinite(fp.Identity[int]), source.Seq())
	}
	rebuild := func(pairs seq.Seq[seq.Pair[int, T]]) List[T] {
		kept := seq.Filter(pairs, func(p seq.Pair[int, T]) bool {
			return p.First%step == 0
		})
		return OfSeq(seq.Map(kept, func(p seq.Pair[int, T]) T {
			return p.Second
		}))
	}
	return fp.Compose2(withIndex, rebuild)
}
