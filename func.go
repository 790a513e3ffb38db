package fnkit

type (

	// Pred is a predicate over values of type A, used by the filtering
	// and conditional combinators.
	Pred[A any] func(A) bool

	// SideEffect is a function executed purely for its effect on the
	// outside world; its return value, if any, is discarded.
	SideEffect[A any] func(A)
)

// Iden returns its argument unchanged.
//
// It is the left and right identity of Comp and Compose, and is mostly
// useful as a building block for other combinators in this package.
func Iden[A any](a A) A {
	return a
}

// Const returns a one-argument function that ignores its input and
// always yields v.
func Const[B, A any](v A) func(B) A {
	return func(B) A {
		return v
	}
}

// Swap reverses the argument order of a two-argument function:
// Swap(f)(a, b) == f(b, a).
func Swap[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Negate returns the boolean complement of p.
func Negate[A any](p Pred[A]) Pred[A] {
	return func(a A) bool {
		return !p(a)
	}
}

// PredAnd is a lifted version of && over two predicates sharing an
// argument type.
func PredAnd[A any](p0, p1 Pred[A]) Pred[A] {
	return func(a A) bool {
		return p0(a) && p1(a)
	}
}

// PredOr is a lifted version of || over two predicates sharing an
// argument type.
func PredOr[A any](p0, p1 Pred[A]) Pred[A] {
	return func(a A) bool {
		return p0(a) || p1(a)
	}
}

// Eq is a curried equality check: Eq(x)(y) reports whether x == y.
func Eq[A comparable](x A) Pred[A] {
	return func(y A) bool {
		return x == y
	}
}

// Neq is a curried inequality check: Neq(x)(y) reports whether x != y.
func Neq[A comparable](x A) Pred[A] {
	return func(y A) bool {
		return x != y
	}
}

// Tap wraps f so that observe sees every input before f runs, without
// altering the value flowing through.
//
// Tap panics if observe is nil.
func Tap[A, B any](f func(A) B, observe SideEffect[A]) func(A) B {
	if observe == nil {
		panic("fnkit.Tap: observe function must not be nil")
	}
	return func(a A) B {
		observe(a)
		return f(a)
	}
}
