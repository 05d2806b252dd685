package z3

// #include "go-z3.h"
import "C"

// Select reads the array receiver at index i.
//
// Maps: Z3_mk_select
func (a *AST) Select(i *AST) *AST {
	return a.binary("select", i, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_select(c, x, y) })
}

// Store returns the array receiver with index i mapped to v.
//
// Maps: Z3_mk_store
func (a *AST) Store(i, v *AST) *AST {
	return a.ternary("store", i, v, func(c C.Z3_context, x, y, z C.Z3_ast) C.Z3_ast { return C.Z3_mk_store(c, x, y, z) })
}

// ConstArray returns the array over domain that maps every index to v.
//
// Maps: Z3_mk_const_array
func (c *Context) ConstArray(domain *Sort, v *AST) *AST {
	c.sameContext("const array", domain.ctx)
	c.sameContext("const array", v.ctx)
	return newAST(c, C.Z3_mk_const_array(c.live(), domain.live(), v.live()))
}

//-------------------------------------------------------------------
// Sets
//-------------------------------------------------------------------

// SetAdd returns the set receiver with elem added.
func (a *AST) SetAdd(elem *AST) *AST {
	return a.binary("set add", elem, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_add(c, x, y) })
}

// SetDel returns the set receiver with elem removed.
func (a *AST) SetDel(elem *AST) *AST {
	return a.binary("set del", elem, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_del(c, x, y) })
}

func (a *AST) SetUnion(args ...*AST) *AST {
	return a.variadic("set union", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_set_union(c, n, xs)
	})
}

func (a *AST) SetIntersect(args ...*AST) *AST {
	return a.variadic("set intersect", args, func(c C.Z3_context, n C.uint, xs *C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_set_intersect(c, n, xs)
	})
}

// SetMember holds when the receiver is an element of set.
//
// Maps: Z3_mk_set_member
func (a *AST) SetMember(set *AST) *AST {
	return a.binary("set member", set, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_member(c, x, y) })
}

// SetSubset holds when the receiver is a subset of other.
func (a *AST) SetSubset(other *AST) *AST {
	return a.binary("set subset", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_subset(c, x, y) })
}

func (a *AST) SetDifference(other *AST) *AST {
	return a.binary("set difference", other, func(c C.Z3_context, x, y C.Z3_ast) C.Z3_ast {
		return C.Z3_mk_set_difference(c, x, y)
	})
}

func (a *AST) SetComplement() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_mk_set_complement(c, x) })
}
