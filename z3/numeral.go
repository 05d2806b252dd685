package z3

// #include "go-z3.h"
import "C"

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

//-------------------------------------------------------------------
// Host values to numerals
//-------------------------------------------------------------------

// FromInt64 creates an integer numeral.
//
// Maps: Z3_mk_int64
func (c *Context) FromInt64(i int64) *AST {
	return c.withSort(c.IntSort(), func(s *Sort) *AST { return s.FromInt64(i) })
}

// FromUint64 creates a non-negative integer numeral.
//
// Maps: Z3_mk_unsigned_int64
func (c *Context) FromUint64(u uint64) *AST {
	return c.withSort(c.IntSort(), func(s *Sort) *AST { return s.FromUint64(u) })
}

func (c *Context) FromInt32(i int32) *AST {
	return c.withSort(c.IntSort(), func(s *Sort) *AST {
		return newAST(c, C.Z3_mk_int(c.live(), C.int(i), s.live()))
	})
}

func (c *Context) FromUint32(u uint32) *AST {
	return c.withSort(c.IntSort(), func(s *Sort) *AST {
		return newAST(c, C.Z3_mk_unsigned_int(c.live(), C.uint(u), s.live()))
	})
}

// FromReal creates the real numeral num/den. den must not be zero.
//
// Maps: Z3_mk_real
func (c *Context) FromReal(num, den int32) *AST {
	if den == 0 {
		fatalf("real numeral %d/0 has a zero denominator", num)
	}
	return newAST(c, C.Z3_mk_real(c.live(), C.int(num), C.int(den)))
}

// FromBigInt creates an integer numeral of arbitrary size.
//
// Maps: Z3_mk_numeral
func (c *Context) FromBigInt(i *big.Int) *AST {
	text := cString(i.String())
	defer freeString(text)
	return c.withSort(c.IntSort(), func(s *Sort) *AST {
		return newAST(c, C.Z3_mk_numeral(c.live(), text, s.live()))
	})
}

// FromInt creates an integer numeral from any signed Go integer.
func FromInt[T constraints.Signed](c *Context, i T) *AST {
	return c.FromInt64(int64(i))
}

// FromUint creates an integer numeral from any unsigned Go integer.
func FromUint[T constraints.Unsigned](c *Context, u T) *AST {
	return c.FromUint64(uint64(u))
}

//-------------------------------------------------------------------
// Numerals to host values
//-------------------------------------------------------------------

// IsNumeral reports whether the term is a ground numeral.
func (a *AST) IsNumeral() bool {
	return bool(C.Z3_is_numeral_ast(a.ctx.live(), a.live()))
}

// AsBool returns the value of a decided boolean term. ok is false when the
// term is neither true nor false.
//
// Maps: Z3_get_bool_value
func (a *AST) AsBool() (value bool, ok bool) {
	switch C.Z3_get_bool_value(a.ctx.live(), a.live()) {
	case C.Z3_L_TRUE:
		return true, true
	case C.Z3_L_FALSE:
		return false, true
	}
	return false, false
}

// AsInt32 returns the value of a numeral that fits an int32.
//
// Maps: Z3_get_numeral_int
func (a *AST) AsInt32() (int32, bool) {
	if !a.IsNumeral() {
		return 0, false
	}
	var v C.int
	if !C.Z3_get_numeral_int(a.ctx.raw, a.rawAST, &v) {
		return 0, false
	}
	return int32(v), true
}

// AsUint32 returns the value of a numeral that fits a uint32.
//
// Maps: Z3_get_numeral_uint
func (a *AST) AsUint32() (uint32, bool) {
	if !a.IsNumeral() {
		return 0, false
	}
	var v C.uint
	if !C.Z3_get_numeral_uint(a.ctx.raw, a.rawAST, &v) {
		return 0, false
	}
	return uint32(v), true
}

// AsInt64 returns the value of a numeral that fits an int64.
//
// Maps: Z3_get_numeral_int64
func (a *AST) AsInt64() (int64, bool) {
	if !a.IsNumeral() {
		return 0, false
	}
	var v C.int64_t
	if !C.Z3_get_numeral_int64(a.ctx.raw, a.rawAST, &v) {
		return 0, false
	}
	return int64(v), true
}

// AsUint64 returns the value of a numeral that fits a uint64.
//
// Maps: Z3_get_numeral_uint64
func (a *AST) AsUint64() (uint64, bool) {
	if !a.IsNumeral() {
		return 0, false
	}
	var v C.uint64_t
	if !C.Z3_get_numeral_uint64(a.ctx.raw, a.rawAST, &v) {
		return 0, false
	}
	return uint64(v), true
}

// AsReal returns numerator and denominator of a rational numeral whose
// components both fit an int64.
//
// Maps: Z3_get_numeral_rational_int64
func (a *AST) AsReal() (num int64, den int64, ok bool) {
	if !a.IsNumeral() {
		return 0, 0, false
	}
	var n, d C.int64_t
	if !C.Z3_get_numeral_rational_int64(a.ctx.raw, a.rawAST, &n, &d) {
		return 0, 0, false
	}
	return int64(n), int64(d), true
}

// AsBigInt returns the value of an integer numeral of any size.
func (a *AST) AsBigInt() (*big.Int, bool) {
	if !a.IsNumeral() {
		return nil, false
	}
	s := C.Z3_get_numeral_string(a.ctx.raw, a.rawAST)
	if s == nil {
		return nil, false
	}
	return new(big.Int).SetString(C.GoString(s), 10)
}
