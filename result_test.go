package fnkit_test

import (
	"errors"
	"testing"

	"github.com/KasperOmsK/fnkit"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestResult_OkUnwraps(t *testing.T) {
	r := fnkit.Ok(42)

	require.True(t, r.IsOk())
	require.False(t, r.IsErr())

	v, err := r.Unwrap()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestResult_ErrUnwraps(t *testing.T) {
	reason := errors.New("boom")
	r := fnkit.Err[int](reason)

	require.False(t, r.IsOk())
	require.True(t, r.IsErr())

	_, err := r.Unwrap()
	require.ErrorIs(t, err, reason)
}

func TestResult_UnwrapOr(t *testing.T) {
	require.Equal(t, 42, fnkit.Ok(42).UnwrapOr(-1))
	require.Equal(t, -1, fnkit.Err[int](errors.New("boom")).UnwrapOr(-1))
}

func TestMapOk_AppliesUnderSuccess(t *testing.T) {
	lift := fnkit.MapOk(inc)

	v, err := lift(fnkit.Ok(1)).Unwrap()
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestMapOk_NeverDoubleWraps(t *testing.T) {
	lift := fnkit.MapOk(inc)

	// Applying the lifted function twice stays singly wrapped.
	v, err := lift(lift(fnkit.Ok(1))).Unwrap()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestMapOk_PassesFailureThrough(t *testing.T) {
	reason := errors.New("boom")
	lift := fnkit.MapOk(inc)

	_, err := lift(fnkit.Err[int](reason)).Unwrap()
	require.ErrorIs(t, err, reason)
}

func TestMapWhen_WrapsWhenPredicateHolds(t *testing.T) {
	dec := func(n int) int { return n - 1 }
	positive := func(n int) bool { return n > 0 }

	f := fnkit.MapWhen(dec, positive)

	v, err := f(1).Unwrap()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestMapWhen_RejectsWhenPredicateFails(t *testing.T) {
	dec := func(n int) int { return n - 1 }
	positive := func(n int) bool { return n > 0 }

	f := fnkit.MapWhen(dec, positive)

	_, err := f(0).Unwrap()
	require.ErrorIs(t, err, fnkit.ErrRejected)
}

func TestApplyIf_IdentityFallback(t *testing.T) {
	incPtr := func(p *int) *int {
		v := *p + 1
		return &v
	}
	notNil := func(p *int) bool { return p != nil }

	f := fnkit.ApplyIf(incPtr, notNil)

	// A missing value stays missing instead of panicking.
	require.Nil(t, f(nil))

	one := 1
	got := f(&one)
	require.NotNil(t, got)
	require.Equal(t, 2, *got)
}

func TestCollect_AllSuccesses(t *testing.T) {
	vals, err := fnkit.Collect([]fnkit.Result[int]{
		fnkit.Ok(1),
		fnkit.Ok(2),
		fnkit.Ok(3),
	})

	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, vals)
}

func TestCollect_CombinesFailures(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	vals, err := fnkit.Collect([]fnkit.Result[int]{
		fnkit.Ok(1),
		fnkit.Err[int](first),
		fnkit.Ok(3),
		fnkit.Err[int](second),
	})

	require.Equal(t, []int{1, 3}, vals)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	require.ErrorIs(t, merr.Errors[0], first)
	require.ErrorIs(t, merr.Errors[1], second)
}

func TestCollect_EmptyInput(t *testing.T) {
	vals, err := fnkit.Collect([]fnkit.Result[string]{})

	require.NoError(t, err)
	require.Empty(t, vals)
}
