package fnkit

// T2 is a 2-tuple, used to convert between multi-argument functions and
// single-argument functions over one aggregate value.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 constructs a T2. The fields themselves are unexported.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

// First returns the first element of the tuple.
func (t T2[A, B]) First() A { return t.first }

// Second returns the second element of the tuple.
func (t T2[A, B]) Second() B { return t.second }

// Unpack ejects the tuple's elements into the multiple return values
// customary in Go.
func (t T2[A, B]) Unpack() (A, B) { return t.first, t.second }

// T3 is a 3-tuple.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

// NewT3 constructs a T3.
func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{first: a, second: b, third: c}
}

// First returns the first element of the tuple.
func (t T3[A, B, C]) First() A { return t.first }

// Second returns the second element of the tuple.
func (t T3[A, B, C]) Second() B { return t.second }

// Third returns the third element of the tuple.
func (t T3[A, B, C]) Third() C { return t.third }

// Unpack ejects the tuple's elements into multiple return values.
func (t T3[A, B, C]) Unpack() (A, B, C) { return t.first, t.second, t.third }

// T4 is a 4-tuple.
type T4[A, B, C, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

// NewT4 constructs a T4.
func NewT4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{first: a, second: b, third: c, fourth: d}
}

// First returns the first element of the tuple.
func (t T4[A, B, C, D]) First() A { return t.first }

// Second returns the second element of the tuple.
func (t T4[A, B, C, D]) Second() B { return t.second }

// Third returns the third element of the tuple.
func (t T4[A, B, C, D]) Third() C { return t.third }

// Fourth returns the fourth element of the tuple.
func (t T4[A, B, C, D]) Fourth() D { return t.fourth }

// Unpack ejects the tuple's elements into multiple return values.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.first, t.second, t.third, t.fourth
}

// Tupled2 converts a two-argument function into a one-argument function
// over a T2, unpacking the tuple positionally. A wrongly-shaped
// aggregate is a compile-time type error rather than a runtime one.
func Tupled2[A, B, R any](f func(A, B) R) func(T2[A, B]) R {
	return func(t T2[A, B]) R {
		return f(t.first, t.second)
	}
}

// Tupled3 is Tupled2 for three-argument functions.
func Tupled3[A, B, C, R any](f func(A, B, C) R) func(T3[A, B, C]) R {
	return func(t T3[A, B, C]) R {
		return f(t.first, t.second, t.third)
	}
}

// Tupled4 is Tupled2 for four-argument functions.
func Tupled4[A, B, C, D, R any](f func(A, B, C, D) R) func(T4[A, B, C, D]) R {
	return func(t T4[A, B, C, D]) R {
		return f(t.first, t.second, t.third, t.fourth)
	}
}

// Untupled2 is the inverse of Tupled2: given a function over a T2, it
// returns a two-argument function that packs its arguments into the
// tuple. The arity is encoded in the overload.
func Untupled2[A, B, R any](f func(T2[A, B]) R) func(A, B) R {
	return func(a A, b B) R {
		return f(NewT2(a, b))
	}
}

// Untupled3 is Untupled2 for three arguments.
func Untupled3[A, B, C, R any](f func(T3[A, B, C]) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(NewT3(a, b, c))
	}
}

// Untupled4 is Untupled2 for four arguments.
func Untupled4[A, B, C, D, R any](f func(T4[A, B, C, D]) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return f(NewT4(a, b, c, d))
	}
}
