package fnkit

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// ErrRejected is the payload-free failure marker returned by functions
// built with MapWhen when the predicate does not hold.
var ErrRejected = errors.New("fnkit: value rejected by predicate")

// Result is a two-variant tagged outcome: a success carrying a value,
// or a failure carrying a reason. It replaces panic-style control flow
// at call boundaries; see Recovered and Try for the lifting entry
// points.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps v in a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Err wraps reason in a failed Result.
func Err[T any](reason error) Result[T] {
	return Result[T]{err: reason}
}

// IsOk reports whether the Result is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result is a failure.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap ejects the Result into Go's customary (value, error) pair.
func (r Result[T]) Unwrap() (T, error) { return r.val, r.err }

// UnwrapOr returns the success value, or def if the Result is a
// failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.val
}

// MapOk lifts f to operate under a Result: applied to a success it
// unwraps the payload, applies f, and re-wraps the outcome as a single
// success; applied to a failure it passes the failure through
// untouched. Values are never doubly wrapped, so MapOk-lifted functions
// chain without manual unwrap/rewrap at each step.
func MapOk[A, B any](f func(A) B) func(Result[A]) Result[B] {
	return func(r Result[A]) Result[B] {
		if r.err != nil {
			return Err[B](r.err)
		}
		return Ok(f(r.val))
	}
}

// MapWhen returns a function that applies f and wraps the outcome in a
// success when p holds for the input, and yields Err(ErrRejected)
// otherwise.
func MapWhen[A, B any](f func(A) B, p Pred[A]) func(A) Result[B] {
	return func(a A) Result[B] {
		if !p(a) {
			return Err[B](ErrRejected)
		}
		return Ok(f(a))
	}
}

// ApplyIf returns a function that applies f when p holds for the input
// and otherwise returns the input unchanged. Unlike MapWhen the
// fallback is the identity, not a tagged failure.
func ApplyIf[A any](f func(A) A, p Pred[A]) func(A) A {
	return func(a A) A {
		if !p(a) {
			return a
		}
		return f(a)
	}
}

// Collect gathers the success values of rs in order. Failure reasons
// are combined into a single error; the error is nil only when every
// Result is a success.
func Collect[T any](rs []Result[T]) ([]T, error) {
	vals := make([]T, 0, len(rs))
	var merr *multierror.Error
	for _, r := range rs {
		if r.err != nil {
			merr = multierror.Append(merr, r.err)
			continue
		}
		vals = append(vals, r.val)
	}
	return vals, merr.ErrorOrNil()
}
