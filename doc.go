/*
Package fnkit provides generic higher-order function combinators:
currying and partial application, tuple conversion, composition and
value piping, panic-safe lifting into a tagged Result, and placeholder
expression templates for partial application of arbitrary call shapes.

All combinators are package-level functions. Each one wraps its input
function in a freshly allocated closure; the input is never mutated and
no state is shared between combinators, so everything here is safe for
concurrent use.

Composition reads in either direction. Comp composes in application
order while Compose keeps the conventional mathematical order, and
Pipe2..Pipe4 thread a value through a chain of functions:

	double := func(n int) int { return n * 2 }
	render := strconv.Itoa

	toLabel := fnkit.Comp(double, render)       // render(double(n))
	same := fnkit.Compose(render, double)       // also render(double(n))
	label := fnkit.Pipe2(21, double, render)    // "42"

Functions that panic or return errors are lifted into an explicit
Result value at the call boundary instead of unwinding through it:

	parse := fnkit.Try(strconv.Atoi)

	n := parse("42")        // Ok(42)
	bad := parse("oops")    // Err(...)

	// MapOk-lifted functions chain over Results without manual
	// unwrapping; failures pass through untouched.
	doubled := fnkit.MapOk(double)(n)

Placeholder templates generalize partial application to whole
expressions. Slots are filled left to right, one value per Bind, and
the template evaluates once every slot is bound:

	// join(parts, sep) with the separator supplied later
	tmpl := fnkit.NewTemplate(fnkit.CallOf(
		strings.Join,
		fnkit.Lit([]string{"a", "b"}),
		fnkit.Slot(),
	))
	joined, err := tmpl.Bind("-").Eval() // "a-b"

Contract violations, such as over-supplying arguments to CurryAny or
binding a fully-filled template, panic immediately; they are never
silently coerced. Only Recovered contains panics raised by a wrapped
function, and only Try converts returned errors. Every other combinator
propagates failures unmodified.
*/
package fnkit
