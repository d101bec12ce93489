// Package fp provides the function-composition helpers the rest of the
// module builds its pipelines on.
//
// Example:
//
//	shout := fp.Pipe("go",
//		strings.ToUpper,
//		func(s string) string { return s + "!" },
//	)
package fp

// Identity returns v unchanged. It is the unit of Compose and a handy
// argument for combinators that expect a projection.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that ignores its invocation and always yields v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe threads value through fns from left to right. Every function must
// accept and return the same type, which keeps pipelines composable with the
// curried combinators exposed by the list package.
//
// Example:
//
//	n := fp.Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Compose combines fns right to left into a single function, so
// Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return value
	}
}

// Compose2 chains two functions of different types left to right, so
// Compose2(f, g)(x) == g(f(x)). It covers the heterogeneous case Compose
// cannot express with a single type parameter.
func Compose2[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curry converts a binary function into its curried form, turning
// fn(a, b) into Curry(fn)(a)(b).
//
// Example:
//
//	add := fp.Curry(func(a, b int) int { return a + b })
//	addFive := add(5)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}
