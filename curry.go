package fnkit

// Curry2 transforms a two-argument function into a chain of
// one-argument functions: Curry2(f)(a)(b) == f(a, b).
//
// Arguments accumulate in parameter order, left to right.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 is Curry2 for three-argument functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Curry4 is Curry2 for four-argument functions.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// Curry5 is Curry2 for five-argument functions.
func Curry5[A, B, C, D, E, R any](f func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return func(b B) func(C) func(D) func(E) R {
			return func(c C) func(D) func(E) R {
				return func(d D) func(E) R {
					return func(e E) R {
						return f(a, b, c, d, e)
					}
				}
			}
		}
	}
}

// Uncurry2 collapses a curried chain back into a two-argument function,
// applying the arguments one at a time in parameter order.
//
// The arity is encoded in the overload since it cannot be recovered
// from a fully-curried chain.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Uncurry3 is Uncurry2 for three arguments.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// Uncurry4 is Uncurry2 for four arguments.
func Uncurry4[A, B, C, D, R any](f func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return f(a)(b)(c)(d)
	}
}

// Uncurry5 is Uncurry2 for five arguments.
func Uncurry5[A, B, C, D, E, R any](f func(A) func(B) func(C) func(D) func(E) R) func(A, B, C, D, E) R {
	return func(a A, b B, c C, d D, e E) R {
		return f(a)(b)(c)(d)(e)
	}
}

// Partial fixes the first argument of a two-argument function and
// returns a function of the remaining one.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 fixes the first argument of a three-argument function.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Partial3 fixes the first argument of a four-argument function.
func Partial3[A, B, C, D, R any](f func(A, B, C, D) R, a A) func(B, C, D) R {
	return func(b B, c C, d D) R {
		return f(a, b, c, d)
	}
}

// Partial4 fixes the first argument of a five-argument function.
func Partial4[A, B, C, D, E, R any](f func(A, B, C, D, E) R, a A) func(B, C, D, E) R {
	return func(b B, c C, d D, e E) R {
		return f(a, b, c, d, e)
	}
}
