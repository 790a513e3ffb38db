package fnkit

import (
	"fmt"

	"github.com/KasperOmsK/fnkit/internal/reflectx"
)

// CurryAny is the dynamic-arity counterpart of Curry2..Curry5 for call
// sites where the function shape is only known at runtime.
//
// fn must be a non-variadic function value. given holds arguments that
// have already been supplied, in parameter order. If given is complete
// (its length equals fn's arity), CurryAny invokes fn and returns the
// result. Otherwise it returns a func(any) any that accepts the next
// argument and recurses, accumulating left to right:
//
//	add := func(a, b, c int) int { return a + b + c }
//	f := fnkit.CurryAny(add).(func(any) any)
//	sum := f(1).(func(any) any)(2).(func(any) any)(3) // 6
//
// CurryAny panics if fn is not a function, if fn is variadic, or if
// given holds more arguments than fn accepts. Over-supplying arguments
// is a contract violation, never silent truncation.
func CurryAny(fn any, given ...any) any {
	arity, err := reflectx.Arity(fn)
	if err != nil {
		panic("fnkit.CurryAny: " + err.Error())
	}
	if len(given) > arity {
		panic(fmt.Sprintf("fnkit.CurryAny: %d arguments given for a function of arity %d", len(given), arity))
	}
	if len(given) == arity {
		out, err := reflectx.Apply(fn, given)
		if err != nil {
			panic("fnkit.CurryAny: " + err.Error())
		}
		return out
	}
	return func(next any) any {
		// Copy before appending so sibling partial applications never
		// share a backing array.
		args := make([]any, 0, len(given)+1)
		args = append(args, given...)
		args = append(args, next)
		return CurryAny(fn, args...)
	}
}

// PartialAny accumulates arguments like CurryAny but the returned
// function consumes a list of additional arguments per call rather than
// exactly one, recursing until fn's arity is reached:
//
//	f := fnkit.PartialAny(add).(func(...any) any)
//	sum := f(1, 2).(func(...any) any)(3) // 6
//
// The same contract as CurryAny applies: collecting more arguments than
// fn accepts panics.
func PartialAny(fn any, given ...any) any {
	arity, err := reflectx.Arity(fn)
	if err != nil {
		panic("fnkit.PartialAny: " + err.Error())
	}
	if len(given) > arity {
		panic(fmt.Sprintf("fnkit.PartialAny: %d arguments given for a function of arity %d", len(given), arity))
	}
	if len(given) == arity {
		out, err := reflectx.Apply(fn, given)
		if err != nil {
			panic("fnkit.PartialAny: " + err.Error())
		}
		return out
	}
	return func(more ...any) any {
		args := make([]any, 0, len(given)+len(more))
		args = append(args, given...)
		args = append(args, more...)
		return PartialAny(fn, args...)
	}
}

// UncurryAny turns a curried chain back into a positional function of
// the given arity, applying one argument at a time in parameter order
// until a final value emerges.
//
// Links produced by CurryAny (func(any) any) are applied directly; any
// other link is applied through reflection, so chains built with
// Curry2..Curry5 work as well.
//
// The arity must be supplied by the caller since it cannot be derived
// from the chain. UncurryAny panics if arity is not positive; the
// returned function panics if called with a different number of
// arguments or if a link in the chain is not a one-argument function.
func UncurryAny(curried any, arity int) func(...any) any {
	if arity < 1 {
		panic("fnkit.UncurryAny: arity must be positive")
	}
	return func(args ...any) any {
		if len(args) != arity {
			panic(fmt.Sprintf("fnkit.UncurryAny: expected %d arguments, got %d", arity, len(args)))
		}
		cur := curried
		for _, a := range args {
			if f, ok := cur.(func(any) any); ok {
				cur = f(a)
				continue
			}
			out, err := reflectx.Apply(cur, []any{a})
			if err != nil {
				panic("fnkit.UncurryAny: " + err.Error())
			}
			cur = out
		}
		return cur
	}
}
