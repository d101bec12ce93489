package list_test

import (
	"testing"

	"github.com/charmingruby/cons/list"
)

func digits(n int) list.List[int] {
	values := make([]int, n)
	for i := range n {
		values[i] = i
	}
	return list.OfSlice(values)
}

func TestSliceDefaultsAreIdentity(t *testing.T) {
	xs := list.OfSlice([]int{1, 2, 3})
	if !list.Equal(xs.Slice(0, list.End, 1), xs) {
		t.Fatalf("open slice should return the whole list")
	}
}

func TestSliceDropFrontAndBack(t *testing.T) {
	xs := list.OfSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	assertElements(t, xs.Slice(1, -2, 1), []int{2, 3, 4, 5, 6})
}

func TestSliceWithStep(t *testing.T) {
	assertElements(t, digits(9).Slice(1, 8, 2), []int{1, 3, 5, 7})
}

func TestSlicePositiveStop(t *testing.T) {
	xs := list.OfSlice([]int{1, 2, 3, 4, 5})
	assertElements(t, xs.Slice(0, 3, 1), []int{1, 2, 3})
	// A stop past the length clamps instead of failing.
	assertElements(t, xs.Slice(0, 99, 1), []int{1, 2, 3, 4, 5})
}

func TestSliceNegativeStartTakesFromEnd(t *testing.T) {
	xs := list.OfSlice([]int{1, 2, 3, 4, 5})
	assertElements(t, xs.Slice(-2, list.End, 1), []int{4, 5})
	assertElements(t, xs.Slice(-99, list.End, 1), []int{1, 2, 3, 4, 5})
}

func TestSliceStartPastEndClamps(t *testing.T) {
	xs := list.OfSlice([]int{1, 2, 3})
	assertElements(t, xs.Slice(9, list.End, 1), []int{})
}

func TestSliceStopAppliesBeforeStart(t *testing.T) {
	// take(stop) runs before skip(start), so the bounds are absolute
	// positions in the source, not relative to each other.
	xs := list.OfSlice([]int{10, 20, 30, 40, 50})
	assertElements(t, xs.Slice(1, 4, 1), []int{20, 30, 40})
}

func TestSliceStepAppliesAfterBounds(t *testing.T) {
	// Decimation indexes the already-bounded list: positions restart at 0
	// after take/skip.
	assertElements(t, digits(10).Slice(2, list.End, 3), []int{2, 5, 8})
}

func TestSliceOnEmptyList(t *testing.T) {
	empty := list.Empty[int]()
	assertElements(t, empty.Slice(0, list.End, 1), []int{})
	assertElements(t, empty.Slice(1, -2, 2), []int{})
}

func TestSliceNegativeStepPanics(t *testing.T) {
	mustPanicWith(t, list.ErrInvalidOperation, func() {
		list.OfSlice([]int{1, 2, 3}).Slice(0, list.End, -1)
	})
}

func TestSliceCurriedForm(t *testing.T) {
	xs := list.OfSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	got := xs.Pipe(list.Slice[int](1, -2, 1))
	assertElements(t, got, []int{2, 3, 4, 5, 6})
}
