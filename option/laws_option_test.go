package option_test

import (
	"testing"
	"testing/quick"

	"github.com/charmingruby/cons/option"
)

func equalOption[T comparable](a, b option.Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	return aok == bok && av == bv
}

func arbitrary(value int, present bool) option.Option[int] {
	if present {
		return option.Some(value)
	}
	return option.None[int]()
}

func TestOptionFunctorLaws(t *testing.T) {
	f := func(x int) int { return x + 1 }
	g := func(x int) int { return x * 2 }

	check := func(value int, present bool) bool {
		opt := arbitrary(value, present)
		mappedID := option.Map(opt, func(x int) int { return x })
		composedOutside := option.Map(option.Map(opt, f), g)
		composedInside := option.Map(opt, func(x int) int { return g(f(x)) })
		return equalOption(opt, mappedID) && equalOption(composedOutside, composedInside)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func TestOptionMonadLaws(t *testing.T) {
	f := func(x int) option.Option[int] {
		if x%2 == 0 {
			return option.Some(x / 2)
		}
		return option.None[int]()
	}
	g := func(x int) option.Option[int] { return option.Some(x + 1) }

	leftIdentity := func(value int) bool {
		return equalOption(option.FlatMap(option.Some(value), f), f(value))
	}
	rightIdentity := func(value int, present bool) bool {
		opt := arbitrary(value, present)
		return equalOption(option.FlatMap(opt, option.Some[int]), opt)
	}
	associativity := func(value int, present bool) bool {
		opt := arbitrary(value, present)
		lhs := option.FlatMap(option.FlatMap(opt, f), g)
		rhs := option.FlatMap(opt, func(x int) option.Option[int] {
			return option.FlatMap(f(x), g)
		})
		return equalOption(lhs, rhs)
	}

	for name, law := range map[string]any{
		"left identity":  leftIdentity,
		"right identity": rightIdentity,
		"associativity":  associativity,
	} {
		if err := quick.Check(law, nil); err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
	}
}
