package z3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolverStackDiscipline(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	zero := ctx.FromInt64(0)
	defer zero.Close()

	s := ctx.NewSolver()
	defer s.Close()

	s.Assert(x.Gt(zero).closeWith(t))
	s.Push()
	require.EqualValues(t, 1, s.NumScopes())
	s.Assert(x.Lt(zero).closeWith(t))
	require.Equal(t, Unsat, s.Check())
	s.Pop()
	require.Zero(t, s.NumScopes())
	require.Equal(t, Sat, s.Check())

	requireFatal(t, func() { s.Pop() })

	s.Push()
	s.Push()
	requireFatal(t, func() { s.PopN(3) })
	s.PopN(2)

	s.Push()
	s.Reset()
	require.Zero(t, s.NumScopes())
	require.Empty(t, s.Assertions())
	requireFatal(t, func() { s.Pop() })
}

func TestSolverModel(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	y := ctx.NamedIntConst("y")
	defer y.Close()
	ten := ctx.FromInt64(10)
	defer ten.Close()

	s := ctx.NewSolver()
	defer s.Close()
	requireFatal(t, func() { s.Model() })

	s.Assert(x.Eq(ten).closeWith(t))
	s.Assert(y.Eq(x.Add(ten).closeWith(t)).closeWith(t))
	require.Equal(t, Sat, s.Check())

	m := s.Model()
	defer m.Close()
	require.Equal(t, 2, m.NumConsts())
	require.NotEmpty(t, m.String())

	v, ok := m.Eval(y, true)
	require.True(t, ok)
	defer v.Close()
	got, ok := v.AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 20, got)

	assignments := m.Assignments()
	require.Len(t, assignments, 2)
	xv, ok := assignments["x"].AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 10, xv)
	for _, a := range assignments {
		a.Close()
	}

	clone := m.Clone()
	require.Equal(t, m.String(), clone.String())
	clone.Close()

	// The model stays readable, but the solver no longer vouches for it.
	s.Assert(x.Gt(ten).closeWith(t))
	requireFatal(t, func() { s.Model() })
	require.Equal(t, Unsat, s.Check())
	requireFatal(t, func() { s.Model() })
}

func TestModelCompletion(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	z := ctx.NamedIntConst("z")
	defer z.Close()
	one := ctx.FromInt64(1)
	defer one.Close()

	s := ctx.NewSolver()
	defer s.Close()
	s.Assert(x.Eq(one).closeWith(t))
	require.Equal(t, Sat, s.Check())
	m := s.Model()
	defer m.Close()

	open, ok := m.Eval(z, false)
	require.True(t, ok)
	defer open.Close()
	require.False(t, open.IsNumeral())

	zDecl, ok := z.Decl()
	require.True(t, ok)
	defer zDecl.Close()
	_, ok = m.ConstInterp(zDecl)
	require.False(t, ok)

	done, ok := m.Eval(z, true)
	require.True(t, ok)
	defer done.Close()
	require.True(t, done.IsNumeral())

	// completion records the default in the model
	interp, ok := m.ConstInterp(zDecl)
	require.True(t, ok)
	defer interp.Close()
	require.True(t, interp.Equal(done))
	requireFatal(t, func() { m.ConstDecl(5) })
}

func TestUnsatCoreAndAssumptions(t *testing.T) {
	ctx := newTestContext(t)
	x := ctx.NamedIntConst("x")
	defer x.Close()
	zero := ctx.FromInt64(0)
	defer zero.Close()
	p1 := ctx.NamedBoolConst("p1")
	defer p1.Close()
	p2 := ctx.NamedBoolConst("p2")
	defer p2.Close()

	s := ctx.NewSolver()
	defer s.Close()
	s.AssertAndTrack(x.Gt(zero).closeWith(t), p1)
	s.AssertAndTrack(x.Lt(zero).closeWith(t), p2)
	require.Equal(t, Unsat, s.Check())

	core := s.UnsatCore()
	defer CloseAll(core)
	require.Len(t, core, 2)

	a := ctx.NamedBoolConst("a")
	defer a.Close()
	u := ctx.NewSolver()
	defer u.Close()
	u.Assert(a.Implies(x.Lt(zero).closeWith(t)).closeWith(t))
	u.Assert(x.Gt(zero).closeWith(t))
	require.Equal(t, Unsat, u.CheckAssumptions(a))
	require.Equal(t, Sat, u.Check())

	assertions := u.Assertions()
	defer CloseAll(assertions)
	require.Len(t, assertions, 2)
}

func TestSolverParams(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()

	descrs := s.ParamDescrs()
	defer descrs.Close()
	require.Positive(t, descrs.Size())
	require.Equal(t, ParamUint, descrs.Kind("timeout"))
	require.Equal(t, ParamInvalid, descrs.Kind("no_such_parameter"))
	require.NotEmpty(t, descrs.Documentation("timeout"))
	require.NotEmpty(t, descrs.Name(0))
	requireFatal(t, func() { descrs.Name(descrs.Size()) })

	good := ctx.NewParams()
	defer good.Close()
	good.SetUint("timeout", 5000)
	good.SetBool("unsat_core", true)
	require.NoError(t, good.Validate(descrs))
	require.Contains(t, good.String(), "timeout")
	s.SetParams(good)

	bad := ctx.NewParams()
	defer bad.Close()
	bad.SetBool("no_such_parameter", true)
	require.ErrorIs(t, bad.Validate(descrs), ErrInvalidParam)
}

func TestSolverStatistics(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.NewSolver()
	defer s.Close()
	a := ctx.NamedBoolConst("a")
	defer a.Close()
	s.Assert(a)
	require.Equal(t, Sat, s.Check())

	stats := s.Statistics()
	defer stats.Close()
	entries := stats.Entries()
	require.Len(t, entries, stats.Size())
	require.NotEmpty(t, entries)
	for i, e := range entries {
		require.NotEmpty(t, e.Key)
		require.Equal(t, stats.Key(i), e.Key)
		require.Equal(t, stats.IsUint(i), e.IsUint)
		require.NotEmpty(t, e.Value())
	}
}

func TestSolverVariants(t *testing.T) {
	ctx := newTestContext(t)
	other := newTestContext(t)
	bv8 := ctx.BitvectorSort(8)
	defer bv8.Close()
	x := ctx.NamedConst("x", bv8)
	defer x.Close()
	one := bv8.FromInt64(1)
	defer one.Close()

	bvSolver := ctx.NewSolverForLogic("QF_BV")
	bvSolver.Assert(x.BVAdd(one).closeWith(t).Eq(x).closeWith(t))
	require.Contains(t, bvSolver.String(), "bvadd")
	bvSolver.Close()

	for _, s := range []*Solver{ctx.NewSolverForLogic("QF_BV"), ctx.NewSimpleSolver()} {
		s.Assert(x.BVAdd(one).closeWith(t).Eq(x).closeWith(t))
		require.Equal(t, Unsat, s.Check())
		require.NotEmpty(t, s.Help())
		// the simple solver may rewrite the assertion when it is added
		assertions := s.Assertions()
		require.Len(t, assertions, 1)
		CloseAll(assertions)

		moved := s.Translate(other)
		require.Equal(t, Unsat, moved.Check())
		moved.Close()
		s.Close()
	}
}

func TestParseSMTLIB2(t *testing.T) {
	ctx := newTestContext(t)
	terms, err := ctx.ParseSMTLIB2String("(declare-const x Int) (assert (> x 2)) (assert (< x 5))")
	require.NoError(t, err)
	defer CloseAll(terms)
	require.Len(t, terms, 2)

	s := ctx.NewSolver()
	defer s.Close()
	for _, term := range terms {
		s.Assert(term)
	}
	require.Equal(t, Sat, s.Check())

	_, err = ctx.ParseSMTLIB2String("(assert (> y")
	require.ErrorIs(t, err, ErrParse)
	_, err = ctx.ParseSMTLIB2String("(assert (> undeclared 1))")
	require.ErrorIs(t, err, ErrParse)
}

func TestCheckResultString(t *testing.T) {
	require.Equal(t, "sat", Sat.String())
	require.Equal(t, "unsat", Unsat.String())
	require.Equal(t, "unknown", Unknown.String())
}
