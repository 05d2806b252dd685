package z3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimizerMaximize(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	y := ctx.NamedIntConst("y")
	defer y.Close()
	zero := ctx.FromInt64(0)
	defer zero.Close()
	ten := ctx.FromInt64(10)
	defer ten.Close()

	o := ctx.NewOptimizer()
	defer o.Close()
	o.Assert(x.Le(ten).closeWith(t))
	o.Assert(y.Ge(zero).closeWith(t))
	o.Assert(y.Le(x).closeWith(t))

	requireFatal(t, func() { o.Model() })

	hx := o.Maximize(x)
	hy := o.Minimize(y)
	require.Equal(t, Sat, o.Check())

	best := hx.Value()
	defer best.Close()
	v, ok := best.AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 10, v)

	least := hy.Value()
	defer least.Close()
	v, ok = least.AsInt64()
	require.True(t, ok)
	require.Zero(t, v)

	m := o.Model()
	defer m.Close()
	xv, ok := m.Eval(x, true)
	require.True(t, ok)
	defer xv.Close()
	v, ok = xv.AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 10, v)

	require.NotEmpty(t, o.String())
	assertions := o.Assertions()
	defer CloseAll(assertions)
	require.Len(t, assertions, 3)
}

func TestOptimizerSoftConstraints(t *testing.T) {
	ctx := newTestContext(t)
	a := ctx.NamedBoolConst("a")
	defer a.Close()
	b := ctx.NamedBoolConst("b")
	defer b.Close()

	o := ctx.NewOptimizer()
	defer o.Close()
	o.Assert(a.Xor(b).closeWith(t))
	o.AssertSoft(a, "1", "prefs")
	o.AssertSoft(b, "3", "prefs")
	require.Equal(t, Sat, o.Check())

	m := o.Model()
	defer m.Close()
	bv, ok := m.Eval(b, true)
	require.True(t, ok)
	defer bv.Close()
	val, ok := bv.AsBool()
	require.True(t, ok)
	require.True(t, val)
}

func TestOptimizerStack(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	zero := ctx.FromInt64(0)
	defer zero.Close()

	o := ctx.NewOptimizer()
	defer o.Close()
	requireFatal(t, func() { o.Pop() })

	o.Assert(x.Gt(zero).closeWith(t))
	o.Push()
	o.Assert(x.Lt(zero).closeWith(t))
	require.Equal(t, Unsat, o.Check())
	requireFatal(t, func() { o.Model() })
	o.Pop()
	require.Equal(t, Sat, o.Check())

	o.Push()
	open := ctx.OpenHandles()
	o.Reset()
	require.Zero(t, o.NumScopes())
	require.Equal(t, open, ctx.OpenHandles())
	require.Equal(t, Sat, o.Check())

	params := ctx.NewParams()
	defer params.Close()
	params.SetSymbol("priority", "pareto")
	descrs := o.ParamDescrs()
	defer descrs.Close()
	require.NoError(t, params.Validate(descrs))
	o.SetParams(params)
	require.NotEmpty(t, o.Help())

	stats := o.Statistics()
	defer stats.Close()
	require.NotNil(t, stats.Entries())
}

func TestOptimizerResetAfterClose(t *testing.T) {
	ctx := newTestContext(t)
	o := ctx.NewOptimizer()
	o.Close()

	open := ctx.OpenHandles()
	requireFatal(t, func() { o.Reset() })
	require.Equal(t, open, ctx.OpenHandles())
	requireFatal(t, func() { o.Check() })
}
