package z3

// #include "go-z3.h"
import "C"

// The term constructors in this package come in four shapes. Each shape has
// one helper that checks the operands, calls the engine and wraps the
// result with its own reference.

type (
	unaryFn      func(C.Z3_context, C.Z3_ast) C.Z3_ast
	binaryFn     func(C.Z3_context, C.Z3_ast, C.Z3_ast) C.Z3_ast
	binaryFlagFn func(C.Z3_context, C.Z3_ast, C.Z3_ast, C.bool) C.Z3_ast
	ternaryFn    func(C.Z3_context, C.Z3_ast, C.Z3_ast, C.Z3_ast) C.Z3_ast
	variadicFn   func(C.Z3_context, C.uint, *C.Z3_ast) C.Z3_ast
)

func (a *AST) unary(f unaryFn) *AST {
	return newAST(a.ctx, f(a.ctx.live(), a.live()))
}

func (a *AST) binary(op string, other *AST, f binaryFn) *AST {
	a.ctx.sameContext(op, other.ctx)
	return newAST(a.ctx, f(a.ctx.live(), a.live(), other.live()))
}

func (a *AST) binaryFlag(op string, other *AST, flag bool, f binaryFlagFn) *AST {
	a.ctx.sameContext(op, other.ctx)
	return newAST(a.ctx, f(a.ctx.live(), a.live(), other.live(), C.bool(flag)))
}

func (a *AST) ternary(op string, x, y *AST, f ternaryFn) *AST {
	a.ctx.sameContext(op, x.ctx)
	a.ctx.sameContext(op, y.ctx)
	return newAST(a.ctx, f(a.ctx.live(), a.live(), x.live(), y.live()))
}

// variadic applies f to the receiver followed by others.
func (a *AST) variadic(op string, others []*AST, f variadicFn) *AST {
	raws := a.withOperands(op, others)
	return newAST(a.ctx, f(a.ctx.live(), operandCount(len(raws)), &raws[0]))
}

// withOperands flattens the receiver and others into one argument list.
func (a *AST) withOperands(op string, others []*AST) []C.Z3_ast {
	raws := make([]C.Z3_ast, 0, len(others)+1)
	raws = append(raws, a.live())
	for _, o := range others {
		a.ctx.sameContext(op, o.ctx)
		raws = append(raws, o.live())
	}
	return raws
}

// rawTerms collects the handles of terms that must all belong to ctx.
func rawTerms(op string, ctx *Context, terms []*AST) []C.Z3_ast {
	raws := make([]C.Z3_ast, len(terms))
	for i, t := range terms {
		ctx.sameContext(op, t.ctx)
		raws[i] = t.live()
	}
	return raws
}

// firstTerm returns the address of the first handle, or nil for an empty
// list.
func firstTerm(raws []C.Z3_ast) *C.Z3_ast {
	if len(raws) == 0 {
		return nil
	}
	return &raws[0]
}
