package z3

// #include "go-z3.h"
import "C"

import (
	"github.com/netrixframework/safez3/log"
)

// Optimizer is a solver that also accepts objectives and soft constraints.
// It follows the same Push/Pop and Model rules as Solver.
type Optimizer struct {
	ctx    *Context
	rawOpt C.Z3_optimize

	depth      uint
	modelReady bool
}

// NewOptimizer creates an optimizer with no assertions or objectives.
//
// Maps: Z3_mk_optimize
func (c *Context) NewOptimizer() *Optimizer {
	o := &Optimizer{ctx: c}
	o.rawOpt = c.mkOptimize()
	return o
}

func (c *Context) mkOptimize() C.Z3_optimize {
	raw := C.Z3_mk_optimize(c.live())
	if raw == nil {
		fatalf("engine returned a null optimizer: %s", c.errorMessage())
	}
	c.retain()
	C.Z3_optimize_inc_ref(c.raw, raw)
	return raw
}

func (o *Optimizer) live() C.Z3_optimize {
	if o.rawOpt == nil {
		fatalf("optimizer used after Close")
	}
	return o.rawOpt
}

func (o *Optimizer) Close() error {
	if o.rawOpt == nil {
		return nil
	}
	C.Z3_optimize_dec_ref(o.ctx.raw, o.rawOpt)
	o.rawOpt = nil
	o.ctx.release()
	return nil
}

func (o *Optimizer) Assert(a *AST) {
	o.ctx.sameContext("optimizer assert", a.ctx)
	o.modelReady = false
	C.Z3_optimize_assert(o.ctx.live(), o.live(), a.live())
	o.ctx.checkError("optimizer assert")
}

// AssertSoft adds a constraint that may be violated at the cost of weight,
// a positive rational in decimal notation. Soft constraints sharing a group
// name form one objective. It returns the objective's index.
//
// Maps: Z3_optimize_assert_soft
func (o *Optimizer) AssertSoft(a *AST, weight, group string) uint {
	o.ctx.sameContext("optimizer assert soft", a.ctx)
	w := cString(weight)
	defer freeString(w)
	o.modelReady = false
	idx := C.Z3_optimize_assert_soft(o.ctx.live(), o.live(), a.live(), w, o.ctx.StringSymbol(group).rawSymbol)
	o.ctx.checkError("optimizer assert soft")
	return uint(idx)
}

// Objective is a term the optimizer maximizes or minimizes. Its bounds are
// meaningful after a check.
type Objective struct {
	opt   *Optimizer
	index uint
	max   bool
}

// Lower returns the lower bound found for the objective. The caller owns
// the result.
//
// Maps: Z3_optimize_get_lower
func (v *Objective) Lower() *AST {
	o := v.opt
	return newAST(o.ctx, C.Z3_optimize_get_lower(o.ctx.live(), o.live(), C.uint(v.index)))
}

// Upper returns the upper bound found for the objective.
//
// Maps: Z3_optimize_get_upper
func (v *Objective) Upper() *AST {
	o := v.opt
	return newAST(o.ctx, C.Z3_optimize_get_upper(o.ctx.live(), o.live(), C.uint(v.index)))
}

// Value returns the optimum: the upper bound of a maximized objective and
// the lower bound of a minimized one.
func (v *Objective) Value() *AST {
	if v.max {
		return v.Upper()
	}
	return v.Lower()
}

func (o *Optimizer) Maximize(a *AST) *Objective {
	o.ctx.sameContext("maximize", a.ctx)
	o.modelReady = false
	return &Objective{
		opt:   o,
		index: uint(C.Z3_optimize_maximize(o.ctx.live(), o.live(), a.live())),
		max:   true,
	}
}

func (o *Optimizer) Minimize(a *AST) *Objective {
	o.ctx.sameContext("minimize", a.ctx)
	o.modelReady = false
	return &Objective{
		opt:   o,
		index: uint(C.Z3_optimize_minimize(o.ctx.live(), o.live(), a.live())),
		max:   false,
	}
}

// Check optimizes the objectives subject to the assertions and the given
// assumptions.
//
// Maps: Z3_optimize_check
func (o *Optimizer) Check(assumptions ...*AST) CheckResult {
	raws := rawTerms("optimizer check", o.ctx, assumptions)
	result := checkResult(C.Z3_optimize_check(o.ctx.live(), o.live(), operandCount(len(raws)), firstTerm(raws)))
	o.modelReady = result == Sat
	o.ctx.logger.With(log.LogParams{
		"result": result.String(),
		"scopes": o.depth,
	}).Debug("Optimizer check")
	return result
}

// Model returns the optimal model found by the last Check.
//
// Maps: Z3_optimize_get_model
func (o *Optimizer) Model() *Model {
	if !o.modelReady {
		fatalf("optimizer model requested without a satisfiable check")
	}
	return newModel(o.ctx, C.Z3_optimize_get_model(o.ctx.live(), o.live()))
}

func (o *Optimizer) Push() {
	C.Z3_optimize_push(o.ctx.live(), o.live())
	o.depth++
	o.modelReady = false
}

// Pop restores the checkpoint saved by the matching Push.
func (o *Optimizer) Pop() {
	if o.depth == 0 {
		fatalf("optimizer pop with no scope pushed")
	}
	C.Z3_optimize_pop(o.ctx.live(), o.live())
	o.depth--
	o.modelReady = false
}

func (o *Optimizer) NumScopes() uint {
	return o.depth
}

// Reset replaces the optimizer with an empty one. Parameters set earlier
// are dropped too.
func (o *Optimizer) Reset() {
	o.live()
	fresh := o.ctx.mkOptimize()
	o.Close()
	o.rawOpt = fresh
	o.depth = 0
	o.modelReady = false
}

// UnsatCore returns the assumptions that made the last check
// unsatisfiable.
func (o *Optimizer) UnsatCore() []*AST {
	return takeVector(o.ctx, C.Z3_optimize_get_unsat_core(o.ctx.live(), o.live()))
}

func (o *Optimizer) Assertions() []*AST {
	return takeVector(o.ctx, C.Z3_optimize_get_assertions(o.ctx.live(), o.live()))
}

func (o *Optimizer) ReasonUnknown() string {
	return C.GoString(C.Z3_optimize_get_reason_unknown(o.ctx.live(), o.live()))
}

func (o *Optimizer) SetParams(p *Params) {
	o.ctx.sameContext("optimizer params", p.ctx)
	C.Z3_optimize_set_params(o.ctx.live(), o.live(), p.live())
	o.ctx.checkError("set optimizer params")
}

func (o *Optimizer) ParamDescrs() *ParamDescrs {
	return newParamDescrs(o.ctx, C.Z3_optimize_get_param_descrs(o.ctx.live(), o.live()))
}

func (o *Optimizer) Statistics() *Stats {
	return newStats(o.ctx, C.Z3_optimize_get_statistics(o.ctx.live(), o.live()))
}

func (o *Optimizer) Help() string {
	return C.GoString(C.Z3_optimize_get_help(o.ctx.live(), o.live()))
}

func (o *Optimizer) Text() (string, error) {
	return textOf(o.ctx, "optimizer", C.Z3_optimize_to_string(o.ctx.live(), o.live()))
}

func (o *Optimizer) String() string {
	return stringOf(o.Text())
}
