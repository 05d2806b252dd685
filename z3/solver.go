package z3

// #include "go-z3.h"
import "C"

import (
	"github.com/netrixframework/safez3/log"
)

// CheckResult is the outcome of a satisfiability check.
type CheckResult int

const (
	Unknown CheckResult = iota
	Sat
	Unsat
)

func (r CheckResult) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "unknown"
}

func checkResult(b C.Z3_lbool) CheckResult {
	switch b {
	case C.Z3_L_TRUE:
		return Sat
	case C.Z3_L_FALSE:
		return Unsat
	}
	return Unknown
}

// Solver accumulates assertions and decides their satisfiability.
//
// It is created via the NewSolver methods on Context. When a solver is
// no longer needed, the Close method must be called.
//
// Push and Pop must balance: popping more scopes than were pushed is a
// programming error. Model may only be called right after a Check that
// returned Sat, before the assertion stack is changed again.
type Solver struct {
	ctx       *Context
	rawSolver C.Z3_solver

	depth      uint
	modelReady bool
}

func newSolver(ctx *Context, raw C.Z3_solver) *Solver {
	if raw == nil {
		fatalf("engine returned a null solver: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_solver_inc_ref(ctx.raw, raw)
	return &Solver{ctx: ctx, rawSolver: raw}
}

// NewSolver creates a general purpose solver.
//
// Maps: Z3_mk_solver
func (c *Context) NewSolver() *Solver {
	return newSolver(c, C.Z3_mk_solver(c.live()))
}

// NewSolverForLogic creates a solver tuned for an SMT-LIB2 logic such as
// "QF_BV".
//
// Maps: Z3_mk_solver_for_logic
func (c *Context) NewSolverForLogic(logic string) *Solver {
	return newSolver(c, C.Z3_mk_solver_for_logic(c.live(), c.StringSymbol(logic).rawSymbol))
}

// NewSimpleSolver creates an incremental solver without the default
// preprocessing tactics.
//
// Maps: Z3_mk_simple_solver
func (c *Context) NewSimpleSolver() *Solver {
	return newSolver(c, C.Z3_mk_simple_solver(c.live()))
}

func (s *Solver) live() C.Z3_solver {
	if s.rawSolver == nil {
		fatalf("solver used after Close")
	}
	return s.rawSolver
}

// Close frees the solver. Calling Close again has no effect.
func (s *Solver) Close() error {
	if s.rawSolver == nil {
		return nil
	}
	C.Z3_solver_dec_ref(s.ctx.raw, s.rawSolver)
	s.rawSolver = nil
	s.ctx.release()
	return nil
}

// Context returns the context the solver was created in.
func (s *Solver) Context() *Context {
	return s.ctx
}

// Assert asserts a constraint onto the Solver.
//
// Maps: Z3_solver_assert
func (s *Solver) Assert(a *AST) {
	s.ctx.sameContext("assert", a.ctx)
	s.modelReady = false
	C.Z3_solver_assert(s.ctx.live(), s.live(), a.live())
	s.ctx.checkError("assert")
}

// AssertAndTrack asserts a and tracks it by the boolean constant p, which
// then shows up in UnsatCore when a contributes to unsatisfiability.
//
// Maps: Z3_solver_assert_and_track
func (s *Solver) AssertAndTrack(a, p *AST) {
	s.ctx.sameContext("assert and track", a.ctx)
	s.ctx.sameContext("assert and track", p.ctx)
	s.modelReady = false
	C.Z3_solver_assert_and_track(s.ctx.live(), s.live(), a.live(), p.live())
	s.ctx.checkError("assert and track")
}

// Check checks if the currently set formula is consistent.
//
// Maps: Z3_solver_check
func (s *Solver) Check() CheckResult {
	result := checkResult(C.Z3_solver_check(s.ctx.live(), s.live()))
	return s.checked(result)
}

// CheckAssumptions checks the assertions together with the given boolean
// literals, which are not added to the solver.
//
// Maps: Z3_solver_check_assumptions
func (s *Solver) CheckAssumptions(assumptions ...*AST) CheckResult {
	raws := rawTerms("check assumptions", s.ctx, assumptions)
	result := checkResult(C.Z3_solver_check_assumptions(
		s.ctx.live(), s.live(), operandCount(len(raws)), firstTerm(raws)))
	return s.checked(result)
}

func (s *Solver) checked(result CheckResult) CheckResult {
	s.modelReady = result == Sat
	s.ctx.logger.With(log.LogParams{
		"result": result.String(),
		"scopes": s.depth,
	}).Debug("Solver check")
	return result
}

// Model returns the model found by the last Check. The caller owns it.
//
// Maps: Z3_solver_get_model
func (s *Solver) Model() *Model {
	if !s.modelReady {
		fatalf("solver model requested without a satisfiable check")
	}
	return newModel(s.ctx, C.Z3_solver_get_model(s.ctx.live(), s.live()))
}

// Push saves the current assertions as a checkpoint.
//
// Maps: Z3_solver_push
func (s *Solver) Push() {
	C.Z3_solver_push(s.ctx.live(), s.live())
	s.depth++
	s.modelReady = false
}

// Pop restores the checkpoint saved by the matching Push.
func (s *Solver) Pop() {
	s.PopN(1)
}

// PopN removes n checkpoints. n must not exceed NumScopes.
//
// Maps: Z3_solver_pop
func (s *Solver) PopN(n uint) {
	if n > s.depth {
		fatalf("pop of %d scopes with only %d pushed", n, s.depth)
	}
	C.Z3_solver_pop(s.ctx.live(), s.live(), C.uint(n))
	s.depth -= n
	s.modelReady = false
}

// NumScopes returns the number of checkpoints that can be popped.
func (s *Solver) NumScopes() uint {
	return s.depth
}

// Reset removes every assertion and checkpoint.
//
// Maps: Z3_solver_reset
func (s *Solver) Reset() {
	C.Z3_solver_reset(s.ctx.live(), s.live())
	s.depth = 0
	s.modelReady = false
}

// UnsatCore returns the tracked literals that made the last check
// unsatisfiable. The caller owns the returned terms.
//
// Maps: Z3_solver_get_unsat_core
func (s *Solver) UnsatCore() []*AST {
	return takeVector(s.ctx, C.Z3_solver_get_unsat_core(s.ctx.live(), s.live()))
}

// Assertions returns the asserted formulas. The caller owns the returned
// terms.
//
// Maps: Z3_solver_get_assertions
func (s *Solver) Assertions() []*AST {
	return takeVector(s.ctx, C.Z3_solver_get_assertions(s.ctx.live(), s.live()))
}

// ReasonUnknown explains the last Unknown result.
func (s *Solver) ReasonUnknown() string {
	return C.GoString(C.Z3_solver_get_reason_unknown(s.ctx.live(), s.live()))
}

// SetParams applies p to the solver.
//
// Maps: Z3_solver_set_params
func (s *Solver) SetParams(p *Params) {
	s.ctx.sameContext("solver params", p.ctx)
	C.Z3_solver_set_params(s.ctx.live(), s.live(), p.live())
	s.ctx.checkError("set solver params")
}

// ParamDescrs describes the parameters the solver accepts. The caller owns
// the result.
func (s *Solver) ParamDescrs() *ParamDescrs {
	return newParamDescrs(s.ctx, C.Z3_solver_get_param_descrs(s.ctx.live(), s.live()))
}

// Statistics returns the statistics of the last check. The caller owns the
// result.
func (s *Solver) Statistics() *Stats {
	return newStats(s.ctx, C.Z3_solver_get_statistics(s.ctx.live(), s.live()))
}

func (s *Solver) Help() string {
	return C.GoString(C.Z3_solver_get_help(s.ctx.live(), s.live()))
}

// Translate copies the solver and its assertions into dest.
//
// Maps: Z3_solver_translate
func (s *Solver) Translate(dest *Context) *Solver {
	t := newSolver(dest, C.Z3_solver_translate(s.ctx.live(), s.live(), dest.live()))
	t.depth = uint(C.Z3_solver_get_num_scopes(dest.raw, t.rawSolver))
	return t
}

// Text renders the assertions in SMT-LIB2 syntax.
func (s *Solver) Text() (string, error) {
	return textOf(s.ctx, "solver", C.Z3_solver_to_string(s.ctx.live(), s.live()))
}

func (s *Solver) String() string {
	return stringOf(s.Text())
}
