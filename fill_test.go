package fnkit_test

import (
	"strings"
	"testing"

	"github.com/KasperOmsK/fnkit"

	"github.com/stretchr/testify/require"
)

func TestTemplate_BindsSlotsLeftToRight(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	tmpl := fnkit.NewTemplate(fnkit.CallOf(sub, fnkit.Slot(), fnkit.Slot()))
	require.Equal(t, 2, tmpl.Holes())

	// First Bind fills the first parameter, second Bind the second.
	got, err := tmpl.Bind(10).Bind(4).Eval()
	require.NoError(t, err)
	require.Equal(t, 6, got)
}

func TestTemplate_MixedLiteralsAndSlots(t *testing.T) {
	tmpl := fnkit.NewTemplate(fnkit.CallOf(
		strings.Join,
		fnkit.Lit([]string{"a", "b"}),
		fnkit.Slot(),
	))

	got, err := tmpl.Bind("-").Eval()
	require.NoError(t, err)
	require.Equal(t, "a-b", got)
}

func TestTemplate_NestedCallsFillDepthFirst(t *testing.T) {
	add := func(a, b int) int { return a + b }

	// add(double(_), add(_, 5)): slots fill in order of appearance.
	tmpl := fnkit.NewTemplate(fnkit.CallOf(
		add,
		fnkit.CallOf(double, fnkit.Slot()),
		fnkit.CallOf(add, fnkit.Slot(), fnkit.Lit(5)),
	))
	require.Equal(t, 2, tmpl.Holes())

	got, err := tmpl.Bind(3).Bind(10).Eval()
	require.NoError(t, err)
	require.Equal(t, 21, got)
}

func TestTemplate_ListLiteral(t *testing.T) {
	tmpl := fnkit.NewTemplate(fnkit.ListOf(
		fnkit.Lit("head"),
		fnkit.Slot(),
		fnkit.Slot(),
	))

	got, err := tmpl.Bind("mid").Bind("tail").Eval()
	require.NoError(t, err)
	require.Equal(t, []any{"head", "mid", "tail"}, got)
}

func TestTemplate_TupleLiteral(t *testing.T) {
	tmpl := fnkit.NewTemplate(fnkit.TupleOf(fnkit.Slot(), fnkit.Lit(2)))

	got, err := tmpl.Bind(1).Eval()
	require.NoError(t, err)

	pair, ok := got.(fnkit.T2[any, any])
	require.True(t, ok)
	require.Equal(t, 1, pair.First())
	require.Equal(t, 2, pair.Second())
}

func TestTemplate_PartialBindsAreIndependent(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	prefix := fnkit.NewTemplate(fnkit.CallOf(sub, fnkit.Slot(), fnkit.Slot())).Bind(10)

	// Binding the shared prefix twice must not interfere.
	first, err := prefix.Bind(4).Eval()
	require.NoError(t, err)
	second, err := prefix.Bind(7).Eval()
	require.NoError(t, err)

	require.Equal(t, 6, first)
	require.Equal(t, 3, second)
	require.Equal(t, 1, prefix.Holes())
}

func TestTemplate_EvalWithUnfilledSlotsFails(t *testing.T) {
	tmpl := fnkit.NewTemplate(fnkit.CallOf(double, fnkit.Slot()))

	_, err := tmpl.Eval()
	require.Error(t, err)
}

func TestTemplate_BindPastLastSlotPanics(t *testing.T) {
	tmpl := fnkit.NewTemplate(fnkit.Lit(1))

	require.Panics(t, func() {
		tmpl.Bind(2)
	})
}

func TestCallOf_PanicsOnArityMismatch(t *testing.T) {
	require.Panics(t, func() {
		fnkit.CallOf(double, fnkit.Slot(), fnkit.Slot())
	})
}

func TestCallOf_PanicsOnNonFunction(t *testing.T) {
	require.Panics(t, func() {
		fnkit.CallOf("not a function")
	})
}

func TestTupleOf_PanicsOnUnsupportedSize(t *testing.T) {
	require.Panics(t, func() {
		fnkit.TupleOf(fnkit.Slot())
	})
}

func TestTemplate_EvalReportsBadArgumentType(t *testing.T) {
	tmpl := fnkit.NewTemplate(fnkit.CallOf(double, fnkit.Lit("not an int")))

	_, err := tmpl.Eval()
	require.Error(t, err)
}

func TestNewTemplate_PanicsOnNilExpression(t *testing.T) {
	require.Panics(t, func() {
		fnkit.NewTemplate(nil)
	})
}
