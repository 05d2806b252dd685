package z3

// #include "go-z3.h"
import "C"

// takeVector copies the terms of an engine vector into owned ASTs and
// releases the vector.
func takeVector(ctx *Context, raw C.Z3_ast_vector) []*AST {
	if raw == nil {
		fatalf("engine returned a null vector: %s", ctx.errorMessage())
	}
	C.Z3_ast_vector_inc_ref(ctx.raw, raw)
	defer C.Z3_ast_vector_dec_ref(ctx.raw, raw)

	n := int(C.Z3_ast_vector_size(ctx.raw, raw))
	terms := make([]*AST, n)
	for i := 0; i < n; i++ {
		terms[i] = newAST(ctx, C.Z3_ast_vector_get(ctx.raw, raw, C.uint(i)))
	}
	return terms
}

// CloseAll closes every term in terms.
func CloseAll(terms []*AST) {
	for _, t := range terms {
		t.Close()
	}
}
