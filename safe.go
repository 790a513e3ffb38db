package fnkit

import "fmt"

// PanicError carries the value recovered from a panic inside a function
// wrapped with Recovered.
type PanicError struct {
	value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.value)
}

// Unwrap exposes the recovered value when it is itself an error, so
// errors.Is and errors.As see through the wrapper.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// Value returns the recovered value as passed to panic.
func (e *PanicError) Value() any { return e.value }

// Recovered wraps f so that a panic raised during evaluation is
// captured and returned as a failed Result carrying a *PanicError,
// instead of unwinding past the caller. Normal completion yields a
// successful Result.
//
// This is the package's only panic-containment mechanism; every other
// combinator propagates panics from wrapped functions unmodified.
func Recovered[A, B any](f func(A) B) func(A) Result[B] {
	return func(a A) (res Result[B]) {
		defer func() {
			if v := recover(); v != nil {
				res = Err[B](&PanicError{value: v})
			}
		}()
		return Ok(f(a))
	}
}

// Try lifts a function in Go's native (value, error) shape into one
// returning a Result: a non-nil error becomes a failure, otherwise the
// value is wrapped in a success.
func Try[A, B any](f func(A) (B, error)) func(A) Result[B] {
	return func(a A) Result[B] {
		v, err := f(a)
		if err != nil {
			return Err[B](err)
		}
		return Ok(v)
	}
}
