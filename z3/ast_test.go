package z3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASTAdd(t *testing.T) {
	ctx := newTestContext(t)

	v1 := ctx.FromInt64(1)
	defer v1.Close()
	v2 := ctx.FromInt64(2)
	defer v2.Close()
	v3 := ctx.FromInt64(3)
	defer v3.Close()

	raw := v1.Add(v2, v3)
	defer raw.Close()
	require.Equal(t, "(+ 1 2 3)", raw.String())

	mul := v1.Mul(v2, v3)
	defer mul.Close()
	require.Equal(t, "(* 1 2 3)", mul.String())

	// A variadic call with no extra operands is still well formed.
	single := v1.Add()
	defer single.Close()
	require.Equal(t, Sat, checkAlone(t, ctx, single.Eq(v1)))
}

func TestASTLogic(t *testing.T) {
	ctx := newTestContext(t)
	a := ctx.NamedBoolConst("a")
	defer a.Close()
	b := ctx.NamedBoolConst("b")
	defer b.Close()

	not := a.Not()
	defer not.Close()
	require.Equal(t, "(not a)", not.String())

	and := a.And(b)
	defer and.Close()
	require.Equal(t, "(and a b)", and.String())

	require.Equal(t, Unsat, checkAlone(t, ctx, a.And(a.Not().closeWith(t))))
	require.Equal(t, Sat, checkAlone(t, ctx, a.Xor(b)))
	require.Equal(t, Unsat, checkAlone(t, ctx, a.Iff(b).closeWith(t).And(a.Xor(b).closeWith(t))))
}

func TestEqualityMatchesText(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	y := ctx.NamedIntConst("y")
	defer y.Close()

	a := x.Add(y)
	defer a.Close()
	b := x.Add(y)
	defer b.Close()
	c := y.Add(x)
	defer c.Close()

	require.True(t, a.Equal(b))
	require.Equal(t, a.String(), b.String())
	require.Equal(t, a.Hash(), b.Hash())
	require.Zero(t, a.Compare(b))

	require.False(t, a.Equal(c))
	require.NotEqual(t, a.String(), c.String())
	require.NotZero(t, a.Compare(c))
	require.Equal(t, -a.Compare(c), c.Compare(a))
}

func TestTranslate(t *testing.T) {
	src := newTestContext(t)
	dest := newTestContext(t)

	x := src.NamedIntConst("x")
	defer x.Close()
	one := src.FromInt64(1)
	defer one.Close()
	term := x.Add(one).closeWith(t).Gt(x)
	defer term.Close()

	moved := term.Translate(dest)
	defer moved.Close()
	require.Same(t, dest, moved.Context())
	require.Equal(t, term.String(), moved.String())
	require.Equal(t, 4, src.OpenHandles())
	require.Equal(t, 1, dest.OpenHandles())
}

func TestASTInspection(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	two := ctx.FromInt64(2)
	defer two.Close()
	sum := x.Add(two)
	defer sum.Close()

	require.True(t, sum.Kind().Eq(AppAST))
	require.True(t, two.Kind().Eq(NumeralAST))
	require.Equal(t, 2, sum.NumArgs())

	arg := sum.Arg(0)
	defer arg.Close()
	require.True(t, arg.Equal(x))
	requireFatal(t, func() { sum.Arg(2) })

	decl, ok := sum.Decl()
	require.True(t, ok)
	defer decl.Close()
	require.Equal(t, "+", decl.Name().String())

	sort := sum.Sort()
	defer sort.Close()
	require.True(t, sort.Kind().Eq(IntSort))

	simple := ctx.FromInt64(1).closeWith(t).Add(two).closeWith(t).Simplify()
	defer simple.Close()
	v, ok := simple.AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 3, v)
}

func TestArrays(t *testing.T) {
	ctx := newTestContext(t)
	intSort := ctx.IntSort()
	defer intSort.Close()
	arrSort := ctx.ArraySort(intSort, intSort)
	defer arrSort.Close()

	arr := ctx.NamedConst("arr", arrSort)
	defer arr.Close()
	one := ctx.FromInt64(1)
	defer one.Close()
	five := ctx.FromInt64(5)
	defer five.Close()

	read := arr.Store(one, five).closeWith(t).Select(one).closeWith(t).Simplify()
	defer read.Close()
	v, ok := read.AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 5, v)

	seven := ctx.FromInt64(7)
	defer seven.Close()
	constant := ctx.ConstArray(intSort, seven)
	defer constant.Close()
	require.Equal(t, Unsat, checkAlone(t, ctx, constant.Select(five).closeWith(t).Eq(seven).closeWith(t).Not()))
}

func TestSets(t *testing.T) {
	ctx := newTestContext(t)
	intSort := ctx.IntSort()
	defer intSort.Close()
	setSort := ctx.SetSort(intSort)
	defer setSort.Close()

	empty := ctx.ConstArray(intSort, ctx.False().closeWith(t))
	defer empty.Close()
	three := ctx.FromInt64(3)
	defer three.Close()
	four := ctx.FromInt64(4)
	defer four.Close()

	s := empty.SetAdd(three)
	defer s.Close()
	require.Equal(t, Unsat, checkAlone(t, ctx, three.SetMember(s).closeWith(t).Not()))
	require.Equal(t, Unsat, checkAlone(t, ctx, four.SetMember(s)))
	require.Equal(t, Unsat, checkAlone(t, ctx, three.SetMember(s.SetDel(three).closeWith(t))))
	require.Equal(t, Unsat, checkAlone(t, ctx, four.SetMember(s.SetComplement().closeWith(t)).closeWith(t).Not()))

	x := ctx.NamedConst("x", setSort)
	defer x.Close()
	require.Equal(t, Unsat, checkAlone(t, ctx, x.SetSubset(x.SetUnion(s).closeWith(t)).closeWith(t).Not()))
	require.Equal(t, Unsat, checkAlone(t, ctx, three.SetMember(x.SetDifference(s).closeWith(t))))
	require.Equal(t, Unsat, checkAlone(t, ctx, four.SetMember(x.SetIntersect(s).closeWith(t))))
}

func TestPseudoBoolean(t *testing.T) {
	ctx := newTestContext(t)
	a := ctx.NamedBoolConst("a")
	defer a.Close()
	b := ctx.NamedBoolConst("b")
	defer b.Close()
	c := ctx.NamedBoolConst("c")
	defer c.Close()

	others := []*AST{b, c}
	coeffs := []int32{1, 2, 3}

	require.Equal(t, Sat, checkAlone(t, ctx, a.PbEq(others, coeffs, 6)))
	require.Equal(t, Unsat, checkAlone(t, ctx, a.PbGe(others, coeffs, 7)))
	require.Equal(t, Unsat, checkAlone(t, ctx, a.PbLe(others, coeffs, 0).closeWith(t).And(c)))
	require.Equal(t, []int32{1, 2, 3}, coeffs)

	requireFatal(t, func() { a.PbEq(others, []int32{1}, 1) })
}

// checkAlone closes f after deciding it in a fresh solver.
func checkAlone(t *testing.T, ctx *Context, f *AST) CheckResult {
	t.Helper()
	defer f.Close()
	s := ctx.NewSolver()
	defer s.Close()
	s.Assert(f)
	return s.Check()
}

// closeWith closes a when the test ends.
func (a *AST) closeWith(t *testing.T) *AST {
	t.Cleanup(func() { a.Close() })
	return a
}
