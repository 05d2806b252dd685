package z3

// #include "go-z3.h"
import "C"

// ForallConst binds the constants in bound inside body. With no bound
// constants the result is body itself, as a new owner.
//
// Maps: Z3_mk_forall_const
func (c *Context) ForallConst(bound []*AST, body *AST) *AST {
	return c.quantifier(true, 0, bound, nil, body)
}

// ExistsConst is ForallConst for existential quantification.
//
// Maps: Z3_mk_exists_const
func (c *Context) ExistsConst(bound []*AST, body *AST) *AST {
	return c.quantifier(false, 0, bound, nil, body)
}

// ForallConstWeightPatterns is ForallConst with an instantiation weight
// and trigger patterns.
func (c *Context) ForallConstWeightPatterns(weight uint32, bound []*AST, patterns []*Pattern, body *AST) *AST {
	return c.quantifier(true, weight, bound, patterns, body)
}

func (c *Context) ExistsConstWeightPatterns(weight uint32, bound []*AST, patterns []*Pattern, body *AST) *AST {
	return c.quantifier(false, weight, bound, patterns, body)
}

func (c *Context) quantifier(forall bool, weight uint32, bound []*AST, patterns []*Pattern, body *AST) *AST {
	c.sameContext("quantifier", body.ctx)
	if len(bound) == 0 {
		return body.Clone()
	}

	apps := make([]C.Z3_app, len(bound))
	for i, b := range bound {
		c.sameContext("quantifier", b.ctx)
		if !b.IsApp() || b.NumArgs() != 0 {
			fatalf("quantifier: bound term %d is not a constant", i)
		}
		apps[i] = C.Z3_to_app(c.raw, b.rawAST)
	}
	pats := make([]C.Z3_pattern, len(patterns))
	for i, p := range patterns {
		c.sameContext("quantifier", p.ctx)
		pats[i] = p.live()
	}
	var firstPattern *C.Z3_pattern
	if len(pats) > 0 {
		firstPattern = &pats[0]
	}

	var raw C.Z3_ast
	if forall {
		raw = C.Z3_mk_forall_const(c.live(), C.uint(weight), operandCount(len(apps)), &apps[0],
			operandCount(len(pats)), firstPattern, body.live())
	} else {
		raw = C.Z3_mk_exists_const(c.live(), C.uint(weight), operandCount(len(apps)), &apps[0],
			operandCount(len(pats)), firstPattern, body.live())
	}
	return newAST(c, raw)
}
