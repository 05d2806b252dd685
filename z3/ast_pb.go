package z3

// #include "go-z3.h"
import "C"

type pbFn func(C.Z3_context, C.uint, *C.Z3_ast, *C.int, C.int) C.Z3_ast

// pseudoBoolean builds sum(coeffs[i] * terms[i]) <op> k over the receiver
// followed by others. The engine may write to the coefficient array, so it
// gets a private copy on every call.
func (a *AST) pseudoBoolean(op string, others []*AST, coeffs []int32, k int32, f pbFn) *AST {
	raws := a.withOperands(op, others)
	if len(coeffs) != len(raws) {
		fatalf("%s: %d coefficients for %d terms", op, len(coeffs), len(raws))
	}
	scratch := make([]C.int, len(coeffs))
	for i, c := range coeffs {
		scratch[i] = C.int(c)
	}
	return newAST(a.ctx, f(a.ctx.live(), operandCount(len(raws)), &raws[0], &scratch[0], C.int(k)))
}

// PbLe creates the pseudo-boolean constraint
// coeffs[0]*a + coeffs[1]*others[0] + ... <= k.
//
// Maps: Z3_mk_pble
func (a *AST) PbLe(others []*AST, coeffs []int32, k int32) *AST {
	return a.pseudoBoolean("pble", others, coeffs, k, func(c C.Z3_context, n C.uint, xs *C.Z3_ast, cs *C.int, k C.int) C.Z3_ast {
		return C.Z3_mk_pble(c, n, xs, cs, k)
	})
}

// PbGe is PbLe with ">=".
//
// Maps: Z3_mk_pbge
func (a *AST) PbGe(others []*AST, coeffs []int32, k int32) *AST {
	return a.pseudoBoolean("pbge", others, coeffs, k, func(c C.Z3_context, n C.uint, xs *C.Z3_ast, cs *C.int, k C.int) C.Z3_ast {
		return C.Z3_mk_pbge(c, n, xs, cs, k)
	})
}

// PbEq is PbLe with "=".
//
// Maps: Z3_mk_pbeq
func (a *AST) PbEq(others []*AST, coeffs []int32, k int32) *AST {
	return a.pseudoBoolean("pbeq", others, coeffs, k, func(c C.Z3_context, n C.uint, xs *C.Z3_ast, cs *C.int, k C.int) C.Z3_ast {
		return C.Z3_mk_pbeq(c, n, xs, cs, k)
	})
}
