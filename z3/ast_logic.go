package z3

// #include "go-z3.h"
import "C"

// Eq creates a "equal" comparison.
//
// Maps: Z3_mk_eq
func (a *AST) Eq(other *AST) *AST {
	return a.binary("eq", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_eq(c, x, y) })
}

// Distinct asserts that the receiver and args are pairwise different.
//
// All AST values must be part of the same context.
func (a *AST) Distinct(args ...*AST) *AST {
	return a.variadic("distinct", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_distinct(c, n, xs)
	})
}

// Not creates the negation of a boolean term.
func (a *AST) Not() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_not(c, x) })
}

// Ite creates "if a then t else e". The receiver must be boolean and t and
// e must share a sort.
//
// Maps: Z3_mk_ite
func (a *AST) Ite(t, e *AST) *AST {
	return a.ternary("ite", t, e, func(c C.Z3_context, x, y, z C.Z3_ast) C.Z3_ast { return C.Z3_mk_ite(c, x, y, z) })
}

func (a *AST) Iff(other *AST) *AST {
	return a.binary("iff", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_iff(c, x, y) })
}

func (a *AST) Implies(other *AST) *AST {
	return a.binary("implies", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_implies(c, x, y) })
}

func (a *AST) Xor(other *AST) *AST {
	return a.binary("xor", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_xor(c, x, y) })
}

// And creates a conjunction of the receiver and args.
//
// All AST values must be part of the same context.
func (a *AST) And(args ...*AST) *AST {
	return a.variadic("and", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_and(c, n, xs)
	})
}

// Or creates a disjunction of the receiver and args.
//
// All AST values must be part of the same context.
func (a *AST) Or(args ...*AST) *AST {
	return a.variadic("or", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_or(c, n, xs)
	})
}
