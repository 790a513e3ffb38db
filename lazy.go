package fnkit

import "sync"

// Lazy defers f until the returned producer is first called and
// memoizes the result; later calls return the same value without
// re-evaluating f. Safe for concurrent use.
func Lazy[T any](f func() T) func() T {
	var once sync.Once
	var rv T
	return func() T {
		once.Do(func() {
			rv = f()
		})
		return rv
	}
}

// LazyErr is Lazy for producers that may fail. Both the value and the
// error of the first evaluation are memoized.
func LazyErr[T any](f func() (T, error)) func() (T, error) {
	var once sync.Once
	var rv T
	var err error
	return func() (T, error) {
		once.Do(func() {
			rv, err = f()
		})
		if err != nil {
			var zero T
			return zero, err
		}
		return rv, nil
	}
}
