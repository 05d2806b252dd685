package z3

// #include "go-z3.h"
import "C"

import "strconv"

// Symbol names constants, sorts and function declarations.
//
// Symbols are interned by the engine and are not reference counted; they
// stay valid for as long as their Context does and need no Close.
type Symbol struct {
	ctx       *Context
	rawSymbol C.Z3_symbol
	name      string
}

// StringSymbol creates a symbol named by a string within the context.
//
// Maps: Z3_mk_string_symbol
func (c *Context) StringSymbol(name string) *Symbol {
	ns := cString(name)
	defer freeString(ns)

	return &Symbol{
		ctx:       c,
		rawSymbol: C.Z3_mk_string_symbol(c.live(), ns),
		name:      name,
	}
}

// IntSymbol creates a symbol named by an int within the context.
//
// Maps: Z3_mk_int_symbol
func (c *Context) IntSymbol(i int) *Symbol {
	return &Symbol{
		ctx:       c,
		rawSymbol: C.Z3_mk_int_symbol(c.live(), C.int(i)),
		name:      strconv.Itoa(i),
	}
}

func symbolFromRaw(ctx *Context, raw C.Z3_symbol) *Symbol {
	s := &Symbol{ctx: ctx, rawSymbol: raw}
	switch C.Z3_get_symbol_kind(ctx.raw, raw) {
	case C.Z3_INT_SYMBOL:
		s.name = strconv.Itoa(int(C.Z3_get_symbol_int(ctx.raw, raw)))
	default:
		// The engine reuses the buffer behind this pointer; GoString copies it.
		s.name = C.GoString(C.Z3_get_symbol_string(ctx.raw, raw))
	}
	return s
}

// IsInt reports whether the symbol was created from an integer.
func (s *Symbol) IsInt() bool {
	return C.Z3_get_symbol_kind(s.ctx.live(), s.rawSymbol) == C.Z3_INT_SYMBOL
}

// String returns the symbol's name. Integer symbols render in decimal.
func (s *Symbol) String() string {
	return s.name
}
