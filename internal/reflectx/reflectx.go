package reflectx

import (
	"fmt"
	"reflect"
)

// Arity returns the number of positional parameters of fn.
//
// fn must be a non-variadic function value; variadic functions have no
// fixed parameter count to report.
func Arity(fn any) (int, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return 0, fmt.Errorf("not a function: %T", fn)
	}
	if t.IsVariadic() {
		return 0, fmt.Errorf("variadic function %T has no fixed arity", fn)
	}
	return t.NumIn(), nil
}

// Apply invokes fn with exactly the given positional arguments.
//
// The argument count must match fn's arity and every argument must be
// assignable to the corresponding parameter type. A nil argument is
// passed as the zero value of the parameter type.
//
// Functions with a single return value yield that value; functions with
// multiple return values yield a []any of them; functions with no return
// value yield nil.
func Apply(fn any, args []any) (any, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("not a function: %T", fn)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("variadic function %T cannot be applied positionally", fn)
	}
	if t.NumIn() != len(args) {
		return nil, fmt.Errorf("%T expects %d arguments, got %d", fn, t.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(t.In(i))
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(t.In(i)) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, v.Type(), t.In(i))
		}
		in[i] = v
	}

	out := reflect.ValueOf(fn).Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, nil
	}
}
