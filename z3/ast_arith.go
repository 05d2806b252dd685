package z3

// #include "go-z3.h"
import "C"

// Add creates an AST node representing adding.
//
// All AST values must be part of the same context.
func (a *AST) Add(args ...*AST) *AST {
	return a.variadic("add", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_add(c, n, xs)
	})
}

// Sub creates an AST node representing subtraction.
//
// All AST values must be part of the same context.
func (a *AST) Sub(args ...*AST) *AST {
	return a.variadic("sub", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_sub(c, n, xs)
	})
}

// Mul creates an AST node representing multiplication.
//
// All AST values must be part of the same context.
func (a *AST) Mul(args ...*AST) *AST {
	return a.variadic("mul", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_mul(c, n, xs)
	})
}

func (a *AST) Div(other *AST) *AST {
	return a.binary("div", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_div(c, x, y) })
}

func (a *AST) Rem(other *AST) *AST {
	return a.binary("rem", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_rem(c, x, y) })
}

func (a *AST) Mod(other *AST) *AST {
	return a.binary("mod", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_mod(c, x, y) })
}

func (a *AST) Power(other *AST) *AST {
	return a.binary("power", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_power(c, x, y) })
}

// Neg creates the arithmetic negation of the term.
//
// Maps: Z3_mk_unary_minus
func (a *AST) Neg() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_unary_minus(c, x) })
}

// Lt creates a "less than" comparison.
//
// Maps: Z3_mk_lt
func (a *AST) Lt(other *AST) *AST {
	return a.binary("lt", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_lt(c, x, y) })
}

// Le creates a "less than or equal to" comparison.
//
// Maps: Z3_mk_le
func (a *AST) Le(other *AST) *AST {
	return a.binary("le", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_le(c, x, y) })
}

// Gt creates a "greater than" comparison.
//
// Maps: Z3_mk_gt
func (a *AST) Gt(other *AST) *AST {
	return a.binary("gt", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_gt(c, x, y) })
}

// Ge creates a "greater than or equal to" comparison.
//
// Maps: Z3_mk_ge
func (a *AST) Ge(other *AST) *AST {
	return a.binary("ge", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_ge(c, x, y) })
}

func (a *AST) Int2Real() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_int2real(c, x) })
}

func (a *AST) Real2Int() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_real2int(c, x) })
}

// IsInt creates the predicate "the real term has an integer value".
func (a *AST) IsInt() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_is_int(c, x) })
}

// Int2BV converts an integer term to a bit-vector of width n.
//
// Maps: Z3_mk_int2bv
func (a *AST) Int2BV(n uint) *AST {
	return newAST(a.ctx, C.Z3_mk_int2bv(a.ctx.live(), C.uint(n), a.live()))
}

// BV2Int converts a bit-vector term to an integer, reading it as two's
// complement when signed is set.
//
// Maps: Z3_mk_bv2int
func (a *AST) BV2Int(signed bool) *AST {
	return newAST(a.ctx, C.Z3_mk_bv2int(a.ctx.live(), a.live(), C.bool(signed)))
}
