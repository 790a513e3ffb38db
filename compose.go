package fnkit

// Compose is right-to-left mathematical composition:
// Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 composes three functions right to left:
// Compose3(f, g, h)(x) == f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Comp is left-to-right (application-order) composition:
// Comp(f, g)(x) == g(f(x)).
//
// It is the function-to-function form of the left-to-right pipe; the
// value-to-function form is Pipe2 and friends.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Comp3 composes three functions in application order:
// Comp3(f, g, h)(x) == h(g(f(x))).
func Comp3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Apply applies f to v. It is the right-to-left pipe between a function
// and a value, and reads best when the function is the result of a
// composition chain:
//
//	fnkit.Apply(fnkit.Compose(double, inc), 3)
func Apply[A, B any](f func(A) B, v A) B {
	return f(v)
}

// Pipe threads v through fns left to right. All functions must accept
// and return the same type; use Pipe2..Pipe4 when the type changes
// between steps.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Pipe2 pipes a value through two functions left to right:
// Pipe2(v, f, g) == g(f(v)).
func Pipe2[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

// Pipe3 pipes a value through three functions left to right.
func Pipe3[A, B, C, D any](v A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(v)))
}

// Pipe4 pipes a value through four functions left to right.
func Pipe4[A, B, C, D, E any](v A, f func(A) B, g func(B) C, h func(C) D, i func(D) E) E {
	return i(h(g(f(v))))
}
