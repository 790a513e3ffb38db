package fnkit

import (
	"fmt"

	"github.com/KasperOmsK/fnkit/internal/reflectx"
)

// Expr is a node in a placeholder expression template: a literal, a
// placeholder slot, a function call, a list, or a tuple. Expressions
// are built once with Lit, Slot, CallOf, ListOf and TupleOf, then
// evaluated through a Template.
type Expr interface {
	// holes reports the number of placeholder slots under this node.
	holes() int

	// eval evaluates the node, consuming bound values from binds in
	// depth-first, left-to-right slot order via the next cursor.
	eval(binds []any, next *int) (any, error)
}

type litExpr struct {
	v any
}

func (e litExpr) holes() int { return 0 }

func (e litExpr) eval([]any, *int) (any, error) { return e.v, nil }

// Lit is a literal expression that evaluates to v.
func Lit(v any) Expr {
	return litExpr{v: v}
}

type slotExpr struct{}

func (slotExpr) holes() int { return 1 }

func (slotExpr) eval(binds []any, next *int) (any, error) {
	v := binds[*next]
	*next++
	return v, nil
}

// Slot is a placeholder expression. Each Slot in a template consumes
// one bound value; slots are filled left to right in order of
// appearance.
func Slot() Expr {
	return slotExpr{}
}

type callExpr struct {
	fn   any
	args []Expr
}

func (e callExpr) holes() int { return sumHoles(e.args) }

func (e callExpr) eval(binds []any, next *int) (any, error) {
	vals, err := evalAll(e.args, binds, next)
	if err != nil {
		return nil, err
	}
	out, err := reflectx.Apply(e.fn, vals)
	if err != nil {
		return nil, fmt.Errorf("fnkit: template call: %w", err)
	}
	return out, nil
}

// CallOf is a function application expression: when evaluated, it
// evaluates every argument expression and applies fn to the results.
//
// CallOf panics immediately if fn is not a non-variadic function or if
// the number of argument expressions does not match fn's arity.
func CallOf(fn any, args ...Expr) Expr {
	arity, err := reflectx.Arity(fn)
	if err != nil {
		panic("fnkit.CallOf: " + err.Error())
	}
	if arity != len(args) {
		panic(fmt.Sprintf("fnkit.CallOf: %d argument expressions for a function of arity %d", len(args), arity))
	}
	return callExpr{fn: fn, args: args}
}

type listExpr struct {
	elems []Expr
}

func (e listExpr) holes() int { return sumHoles(e.elems) }

func (e listExpr) eval(binds []any, next *int) (any, error) {
	return evalAll(e.elems, binds, next)
}

// ListOf is a list literal expression; it evaluates to a []any holding
// the evaluated elements in order.
func ListOf(elems ...Expr) Expr {
	return listExpr{elems: elems}
}

type tupleExpr struct {
	elems []Expr
}

func (e tupleExpr) holes() int { return sumHoles(e.elems) }

func (e tupleExpr) eval(binds []any, next *int) (any, error) {
	vals, err := evalAll(e.elems, binds, next)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 2:
		return NewT2(vals[0], vals[1]), nil
	case 3:
		return NewT3(vals[0], vals[1], vals[2]), nil
	default:
		return NewT4(vals[0], vals[1], vals[2], vals[3]), nil
	}
}

// TupleOf is a tuple literal expression; it evaluates to a T2, T3 or T4
// of any, matching the number of elements.
//
// TupleOf panics if given fewer than two or more than four elements.
func TupleOf(elems ...Expr) Expr {
	if len(elems) < 2 || len(elems) > 4 {
		panic(fmt.Sprintf("fnkit.TupleOf: tuple size must be between 2 and 4, got %d", len(elems)))
	}
	return tupleExpr{elems: elems}
}

func sumHoles(exprs []Expr) int {
	n := 0
	for _, e := range exprs {
		n += e.holes()
	}
	return n
}

func evalAll(exprs []Expr, binds []any, next *int) ([]any, error) {
	vals := make([]any, len(exprs))
	for i, e := range exprs {
		v, err := e.eval(binds, next)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// Template pairs an expression tree with the values bound to its
// placeholder slots so far. Templates are immutable: Bind returns a new
// Template, so a partially-bound template can be reused as a shared
// prefix, exactly like a curried function applied to its first
// arguments.
type Template struct {
	root  Expr
	binds []any
	total int
}

// NewTemplate wraps an expression tree for placeholder filling.
//
// NewTemplate panics if root is nil.
func NewTemplate(root Expr) *Template {
	if root == nil {
		panic("fnkit.NewTemplate: expression must not be nil")
	}
	return &Template{root: root, total: root.holes()}
}

// Holes reports how many placeholder slots remain unfilled.
func (t *Template) Holes() int {
	return t.total - len(t.binds)
}

// Bind fills the leftmost unfilled placeholder with v and returns the
// resulting Template; the receiver is unchanged. One value is consumed
// per call, mirroring one step of a curried application.
//
// Bind panics if no unfilled placeholders remain.
func (t *Template) Bind(v any) *Template {
	if t.Holes() == 0 {
		panic("fnkit.Template.Bind: no unfilled placeholders remain")
	}
	binds := make([]any, 0, len(t.binds)+1)
	binds = append(binds, t.binds...)
	binds = append(binds, v)
	return &Template{root: t.root, binds: binds, total: t.total}
}

// Eval evaluates the expression tree with all bound values substituted,
// depth-first and left to right. It returns an error if any placeholder
// remains unfilled or if a call inside the tree cannot be applied.
func (t *Template) Eval() (any, error) {
	if n := t.Holes(); n > 0 {
		return nil, fmt.Errorf("fnkit: template has %d unfilled placeholder(s)", n)
	}
	next := 0
	return t.root.eval(t.binds, &next)
}
