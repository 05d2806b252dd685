package z3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntList(t *testing.T, ctx *Context) *Datatype {
	t.Helper()
	intSort := ctx.IntSort()
	defer intSort.Close()

	dt := ctx.NewDatatypeBuilder().
		Variant("nil").
		Variant("cons", Field{Name: "head", Sort: intSort}, Field{Name: "tail"}).
		Finish("IntList")
	t.Cleanup(func() { dt.Close() })
	return dt
}

func TestDatatypeShape(t *testing.T) {
	ctx := newTestContext(t)
	dt := newIntList(t, ctx)

	require.Len(t, dt.Variants, 2)
	require.Equal(t, "IntList", dt.Sort.Name().String())
	require.True(t, dt.Sort.Kind().Eq(DatatypeSort))

	nilV, cons := dt.Variants[0], dt.Variants[1]
	require.Equal(t, "nil", nilV.Constructor.Name().String())
	require.Empty(t, nilV.Accessors)

	require.Equal(t, "cons", cons.Constructor.Name().String())
	require.Len(t, cons.Accessors, 2)
	require.Equal(t, "head", cons.Accessors[0].Name().String())
	require.Equal(t, "tail", cons.Accessors[1].Name().String())

	tailSort := cons.Accessors[1].Range()
	defer tailSort.Close()
	require.True(t, tailSort.Equal(dt.Sort))
}

func TestDatatypeRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	dt := newIntList(t, ctx)
	nilV, cons := dt.Variants[0], dt.Variants[1]

	seven := ctx.FromInt64(7)
	defer seven.Close()
	empty := nilV.Constructor.Apply()
	defer empty.Close()
	list := cons.Constructor.Apply(seven, empty)
	defer list.Close()

	y := ctx.NamedIntConst("y")
	defer y.Close()
	head := cons.Accessors[0].Apply(list)
	defer head.Close()

	s := ctx.NewSolver()
	defer s.Close()
	s.Assert(y.Eq(head).closeWith(t))
	require.Equal(t, Sat, s.Check())

	m := s.Model()
	defer m.Close()
	v, ok := m.Eval(y, true)
	require.True(t, ok)
	defer v.Close()
	got, ok := v.AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 7, got)

	isCons, ok := m.Eval(cons.Tester.Apply(list).closeWith(t), true)
	require.True(t, ok)
	defer isCons.Close()
	b, ok := isCons.AsBool()
	require.True(t, ok)
	require.True(t, b)
}

func TestDatatypeBuilderMisuse(t *testing.T) {
	ctx := newTestContext(t)

	empty := ctx.NewDatatypeBuilder()
	requireFatal(t, func() { empty.Finish("Empty") })
	require.Equal(t, 1, ctx.OpenHandles())
	require.NoError(t, empty.Close())

	b := ctx.NewDatatypeBuilder().Variant("only")
	dt := b.Finish("One")
	requireFatal(t, func() { b.Variant("late") })
	requireFatal(t, func() { b.Finish("Again") })
	require.NoError(t, b.Close())
	dt.Close()

	abandoned := ctx.NewDatatypeBuilder().Variant("a").Variant("b")
	require.NoError(t, abandoned.Close())
	require.NoError(t, abandoned.Close())
}
