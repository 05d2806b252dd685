package z3

// #include "go-z3.h"
import "C"

func (a *AST) BVNot() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnot(c, x) })
}

func (a *AST) BVNeg() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvneg(c, x) })
}

func (a *AST) BVRedAnd() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvredand(c, x) })
}

func (a *AST) BVRedOr() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvredor(c, x) })
}

func (a *AST) BVAnd(other *AST) *AST {
	return a.binary("bvand", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvand(c, x, y) })
}

func (a *AST) BVOr(other *AST) *AST {
	return a.binary("bvor", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvor(c, x, y) })
}

func (a *AST) BVXor(other *AST) *AST {
	return a.binary("bvxor", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvxor(c, x, y) })
}

func (a *AST) BVNand(other *AST) *AST {
	return a.binary("bvnand", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnand(c, x, y) })
}

func (a *AST) BVNor(other *AST) *AST {
	return a.binary("bvnor", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnor(c, x, y) })
}

func (a *AST) BVXnor(other *AST) *AST {
	return a.binary("bvxnor", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvxnor(c, x, y) })
}

func (a *AST) BVAdd(other *AST) *AST {
	return a.binary("bvadd", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvadd(c, x, y) })
}

func (a *AST) BVSub(other *AST) *AST {
	return a.binary("bvsub", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsub(c, x, y) })
}

func (a *AST) BVMul(other *AST) *AST {
	return a.binary("bvmul", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvmul(c, x, y) })
}

func (a *AST) BVUDiv(other *AST) *AST {
	return a.binary("bvudiv", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvudiv(c, x, y) })
}

// BVSDiv is signed division; the result is rounded towards zero.
func (a *AST) BVSDiv(other *AST) *AST {
	return a.binary("bvsdiv", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsdiv(c, x, y) })
}

func (a *AST) BVURem(other *AST) *AST {
	return a.binary("bvurem", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvurem(c, x, y) })
}

// BVSRem is the signed remainder whose sign follows the dividend.
func (a *AST) BVSRem(other *AST) *AST {
	return a.binary("bvsrem", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsrem(c, x, y) })
}

// BVSMod is the signed remainder whose sign follows the divisor.
func (a *AST) BVSMod(other *AST) *AST {
	return a.binary("bvsmod", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsmod(c, x, y) })
}

// BVULT creates an unsigned "less than" comparison.
func (a *AST) BVULT(other *AST) *AST {
	return a.binary("bvult", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvult(c, x, y) })
}

// BVSLT creates a signed "less than" comparison.
func (a *AST) BVSLT(other *AST) *AST {
	return a.binary("bvslt", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvslt(c, x, y) })
}

func (a *AST) BVULE(other *AST) *AST {
	return a.binary("bvule", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvule(c, x, y) })
}

func (a *AST) BVSLE(other *AST) *AST {
	return a.binary("bvsle", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsle(c, x, y) })
}

func (a *AST) BVUGE(other *AST) *AST {
	return a.binary("bvuge", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvuge(c, x, y) })
}

func (a *AST) BVSGE(other *AST) *AST {
	return a.binary("bvsge", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsge(c, x, y) })
}

func (a *AST) BVUGT(other *AST) *AST {
	return a.binary("bvugt", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvugt(c, x, y) })
}

func (a *AST) BVSGT(other *AST) *AST {
	return a.binary("bvsgt", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsgt(c, x, y) })
}

// Concat appends other below the receiver; the result is as wide as both
// operands together.
//
// Maps: Z3_mk_concat
func (a *AST) Concat(other *AST) *AST {
	return a.binary("concat", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_concat(c, x, y) })
}

func (a *AST) BVShl(other *AST) *AST {
	return a.binary("bvshl", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvshl(c, x, y) })
}

func (a *AST) BVLShr(other *AST) *AST {
	return a.binary("bvlshr", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvlshr(c, x, y) })
}

// BVAShr is the arithmetic shift right, filling with the sign bit.
func (a *AST) BVAShr(other *AST) *AST {
	return a.binary("bvashr", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvashr(c, x, y) })
}

// BVRotl rotates the receiver left by the amount held in other.
//
// Maps: Z3_mk_ext_rotate_left
func (a *AST) BVRotl(other *AST) *AST {
	return a.binary("bvrotl", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_ext_rotate_left(c, x, y) })
}

// BVRotr rotates the receiver right by the amount held in other.
//
// Maps: Z3_mk_ext_rotate_right
func (a *AST) BVRotr(other *AST) *AST {
	return a.binary("bvrotr", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_ext_rotate_right(c, x, y) })
}

// Extract returns bits high down to low (inclusive) of the receiver. The
// indices are not checked against the receiver's width here; the engine
// rejects them.
//
// Maps: Z3_mk_extract
func (a *AST) Extract(high, low uint) *AST {
	return newAST(a.ctx, C.Z3_mk_extract(a.ctx.live(), C.uint(high), C.uint(low), a.live()))
}

// Repeat concatenates n copies of the receiver.
//
// Maps: Z3_mk_repeat
func (a *AST) Repeat(n uint) *AST {
	return newAST(a.ctx, C.Z3_mk_repeat(a.ctx.live(), C.uint(n), a.live()))
}

// SignExtend widens the receiver by n bits, copying the sign bit.
//
// Maps: Z3_mk_sign_ext
func (a *AST) SignExtend(n uint) *AST {
	return newAST(a.ctx, C.Z3_mk_sign_ext(a.ctx.live(), C.uint(n), a.live()))
}

// ZeroExtend widens the receiver by n zero bits.
//
// Maps: Z3_mk_zero_ext
func (a *AST) ZeroExtend(n uint) *AST {
	return newAST(a.ctx, C.Z3_mk_zero_ext(a.ctx.live(), C.uint(n), a.live()))
}

//-------------------------------------------------------------------
// Overflow predicates
//-------------------------------------------------------------------

// BVAddNoOverflow holds when adding other does not overflow. signed picks
// two's complement or unsigned reading.
func (a *AST) BVAddNoOverflow(other *AST, signed bool) *AST {
	return a.binaryFlag("bvadd_no_overflow", other, signed, func(c C.Z3_context, x, y C.Z3_ast, s C.bool) C.Z3_ast {
		return C.Z3_mk_bvadd_no_overflow(c, x, y, s)
	})
}

// BVAddNoUnderflow holds when the signed sum does not underflow.
func (a *AST) BVAddNoUnderflow(other *AST) *AST {
	return a.binary("bvadd_no_underflow", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_bvadd_no_underflow(c, x, y)
	})
}

// BVSubNoOverflow holds when the signed difference does not overflow.
func (a *AST) BVSubNoOverflow(other *AST) *AST {
	return a.binary("bvsub_no_overflow", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_bvsub_no_overflow(c, x, y)
	})
}

func (a *AST) BVSubNoUnderflow(other *AST, signed bool) *AST {
	return a.binaryFlag("bvsub_no_underflow", other, signed, func(c C.Z3_context, x, y C.Z3_ast, s C.bool) C.Z3_ast {
		return C.Z3_mk_bvsub_no_underflow(c, x, y, s)
	})
}

func (a *AST) BVSDivNoOverflow(other *AST) *AST {
	return a.binary("bvsdiv_no_overflow", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_bvsdiv_no_overflow(c, x, y)
	})
}

func (a *AST) BVNegNoOverflow() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvneg_no_overflow(c, x) })
}

func (a *AST) BVMulNoOverflow(other *AST, signed bool) *AST {
	return a.binaryFlag("bvmul_no_overflow", other, signed, func(c C.Z3_context, x, y C.Z3_ast, s C.bool) C.Z3_ast {
		return C.Z3_mk_bvmul_no_overflow(c, x, y, s)
	})
}

func (a *AST) BVMulNoUnderflow(other *AST) *AST {
	return a.binary("bvmul_no_underflow", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_bvmul_no_underflow(c, x, y)
	})
}
