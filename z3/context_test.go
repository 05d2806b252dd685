package z3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextCloseWithoutChildren(t *testing.T) {
	ctx := NewContext(nil)
	require.False(t, ctx.Closed())
	require.NoError(t, ctx.Close())
	require.True(t, ctx.Closed())
	require.NoError(t, ctx.Close())
	requireFatal(t, func() { ctx.Interrupt() })
}

func TestContextOutlivedByChildren(t *testing.T) {
	ctx := NewContext(nil)
	x := ctx.NamedIntConst("x")
	require.Equal(t, 1, ctx.OpenHandles())

	require.NoError(t, ctx.Close())
	require.True(t, ctx.Closed())

	// The engine context stays alive for x.
	require.Equal(t, "x", x.String())
	requireFatal(t, func() { ctx.IntSort() })

	require.NoError(t, x.Close())
	require.Zero(t, ctx.OpenHandles())
	requireFatal(t, func() { ctx.Interrupt() })
}

func TestCloseIsIdempotent(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	require.NoError(t, x.Close())
	require.NoError(t, x.Close())
	requireFatal(t, func() { x.Not() })
	requireFatal(t, func() { x.Clone() })
}

func TestCloneIsIndependent(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	y := x.Clone()
	require.Equal(t, 2, ctx.OpenHandles())

	x.Close()
	require.Equal(t, "x", y.String())

	z := y.Clone()
	require.True(t, y.Equal(z))
	z.Close()
	y.Close()
}

func TestMixedContextsAreFatal(t *testing.T) {
	ctx1 := newTestContext(t)
	ctx2 := newTestContext(t)

	x := ctx1.NamedIntConst("x")
	defer x.Close()
	y := ctx2.NamedIntConst("y")
	defer y.Close()

	requireFatal(t, func() { x.Add(y) })
	requireFatal(t, func() { x.Eq(y) })
	requireFatal(t, func() { x.Ite(x, y) })

	s := ctx1.NewSolver()
	defer s.Close()
	requireFatal(t, func() { s.Assert(y) })
}

func TestUpdateParamValue(t *testing.T) {
	ctx := newTestContext(t)
	ctx.UpdateParamValue("timeout", "1000")
	s := ctx.NewSolver()
	defer s.Close()
	require.Equal(t, Sat, s.Check())
}

func TestSymbols(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.StringSymbol("name")
	require.False(t, s.IsInt())
	require.Equal(t, "name", s.String())

	i := ctx.IntSymbol(42)
	require.True(t, i.IsInt())
	require.Equal(t, "42", i.String())
}
