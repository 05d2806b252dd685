package z3

// #include "go-z3.h"
import "C"

// FuncDecl is a declared function symbol. Applying it to arguments builds a
// term.
type FuncDecl struct {
	ctx         *Context
	rawFuncDecl C.Z3_func_decl
}

func newFuncDecl(ctx *Context, raw C.Z3_func_decl) *FuncDecl {
	if raw == nil {
		fatalf("engine returned a null declaration: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_inc_ref(ctx.raw, C.Z3_func_decl_to_ast(ctx.raw, raw))
	return &FuncDecl{ctx: ctx, rawFuncDecl: raw}
}

func (f *FuncDecl) live() C.Z3_func_decl {
	if f.rawFuncDecl == nil {
		fatalf("declaration used after Close")
	}
	return f.rawFuncDecl
}

// Close drops this declaration's reference. Calling Close again has no
// effect.
func (f *FuncDecl) Close() error {
	if f.rawFuncDecl == nil {
		return nil
	}
	C.Z3_dec_ref(f.ctx.raw, C.Z3_func_decl_to_ast(f.ctx.raw, f.rawFuncDecl))
	f.rawFuncDecl = nil
	f.ctx.release()
	return nil
}

func (f *FuncDecl) Clone() *FuncDecl {
	return newFuncDecl(f.ctx, f.live())
}

// FuncDecl declares an uninterpreted function from domain to rng.
//
// Maps: Z3_mk_func_decl
func (c *Context) FuncDecl(name *Symbol, domain []*Sort, rng *Sort) *FuncDecl {
	c.sameContext("func decl", name.ctx)
	c.sameContext("func decl", rng.ctx)
	raws := make([]C.Z3_sort, len(domain))
	for i, s := range domain {
		c.sameContext("func decl", s.ctx)
		raws[i] = s.live()
	}
	var first *C.Z3_sort
	if len(raws) > 0 {
		first = &raws[0]
	}
	return newFuncDecl(c, C.Z3_mk_func_decl(c.live(), name.rawSymbol, operandCount(len(raws)), first, rng.live()))
}

// Apply builds the application of f to args. The number and sorts of args
// must match the declaration.
//
// Maps: Z3_mk_app
func (f *FuncDecl) Apply(args ...*AST) *AST {
	raws := rawTerms("apply", f.ctx, args)
	return newAST(f.ctx, C.Z3_mk_app(f.ctx.live(), f.live(), operandCount(len(raws)), firstTerm(raws)))
}

func (f *FuncDecl) Arity() int {
	return int(C.Z3_get_arity(f.ctx.live(), f.live()))
}

func (f *FuncDecl) Name() *Symbol {
	return symbolFromRaw(f.ctx, C.Z3_get_decl_name(f.ctx.live(), f.live()))
}

// Range returns the result sort. The caller owns the returned sort.
func (f *FuncDecl) Range() *Sort {
	return newSort(f.ctx, C.Z3_get_range(f.ctx.live(), f.live()))
}

// Domain returns the sort of parameter i.
func (f *FuncDecl) Domain(i int) *Sort {
	if i < 0 || i >= f.Arity() {
		fatalf("domain index %d out of range", i)
	}
	return newSort(f.ctx, C.Z3_get_domain(f.ctx.raw, f.rawFuncDecl, C.uint(i)))
}

// Equal reports whether both values name the same declaration.
func (f *FuncDecl) Equal(other *FuncDecl) bool {
	f.ctx.sameContext("declaration equality", other.ctx)
	return bool(C.Z3_is_eq_func_decl(f.ctx.live(), f.live(), other.live()))
}

func (f *FuncDecl) Text() (string, error) {
	return textOf(f.ctx, "declaration", C.Z3_func_decl_to_string(f.ctx.live(), f.live()))
}

func (f *FuncDecl) String() string {
	return stringOf(f.Text())
}
