package list_test

import (
	"fmt"

	"github.com/charmingruby/cons/list"
	"github.com/charmingruby/cons/option"
)

func ExampleList_Slice() {
	xs := list.OfSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	fmt.Println(xs.Slice(1, -2, 1))
	// Output:
	// [2 3 4 5 6]
}

func ExampleList_Pipe() {
	xs := list.OfSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	got := xs.Pipe(
		list.Take[int](6),
		list.Filter(func(n int) bool { return n%2 == 0 }),
	)
	fmt.Println(got)
	// Output:
	// [2 4 6]
}

func ExampleChoose() {
	parseable := func(s string) option.Option[int] {
		if s == "one" {
			return option.Some(1)
		}
		if s == "two" {
			return option.Some(2)
		}
		return option.None[int]()
	}
	xs := list.OfSlice([]string{"one", "nope", "two"})
	fmt.Println(list.Choose(parseable)(xs))
	// Output:
	// [1 2]
}
