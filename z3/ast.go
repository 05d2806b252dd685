package z3

// #include "go-z3.h"
import "C"

type ASTKind struct {
	rawASTKind C.Z3_ast_kind
}

func (a *ASTKind) Eq(other *ASTKind) bool {
	return a.rawASTKind == other.rawASTKind
}

var (
	AppAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_APP_AST,
	}
	NumeralAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_NUMERAL_AST,
	}
	VarAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_VAR_AST,
	}
	QuantifierAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_QUANTIFIER_AST,
	}
	SortAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_SORT_AST,
	}
	FuncDeclAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_FUNC_DECL_AST,
	}
	UnknownAST *ASTKind = &ASTKind{
		rawASTKind: C.Z3_UNKNOWN_AST,
	}
)

// AST represents a term or formula.
//
// An AST owns one reference on its engine handle. Close drops it; Clone
// takes another one and returns an independent owner.
type AST struct {
	ctx    *Context
	rawAST C.Z3_ast
}

// newAST wraps a handle returned by the engine and takes a reference on it.
// A null handle means the engine rejected the call.
func newAST(ctx *Context, raw C.Z3_ast) *AST {
	if raw == nil {
		fatalf("engine returned a null term: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_inc_ref(ctx.raw, raw)
	return &AST{ctx: ctx, rawAST: raw}
}

func (a *AST) live() C.Z3_ast {
	if a.rawAST == nil {
		fatalf("term used after Close")
	}
	return a.rawAST
}

// Close drops this term's reference. Calling Close again has no effect.
func (a *AST) Close() error {
	if a.rawAST == nil {
		return nil
	}
	C.Z3_dec_ref(a.ctx.raw, a.rawAST)
	a.rawAST = nil
	a.ctx.release()
	return nil
}

// Clone returns a second, independently closable owner of the same term.
func (a *AST) Clone() *AST {
	return newAST(a.ctx, a.live())
}

// Context returns the context the term was created in.
func (a *AST) Context() *Context {
	return a.ctx
}

// Translate copies the term into dest. The copy is owned independently of
// a and must be closed separately.
//
// Maps: Z3_translate
func (a *AST) Translate(dest *Context) *AST {
	return newAST(dest, C.Z3_translate(a.ctx.live(), a.live(), dest.live()))
}

func (a *AST) Kind() *ASTKind {
	return &ASTKind{
		rawASTKind: C.Z3_get_ast_kind(a.ctx.live(), a.live()),
	}
}

// Sort returns the sort of the term. The caller owns the returned sort.
func (a *AST) Sort() *Sort {
	return newSort(a.ctx, C.Z3_get_sort(a.ctx.live(), a.live()))
}

// Equal reports whether both terms are structurally the same.
//
// Maps: Z3_is_eq_ast
func (a *AST) Equal(other *AST) bool {
	a.ctx.sameContext("term equality", other.ctx)
	return bool(C.Z3_is_eq_ast(a.ctx.live(), a.live(), other.live()))
}

// Hash returns the engine's structural hash. Equal terms hash alike.
//
// Maps: Z3_get_ast_hash
func (a *AST) Hash() uint32 {
	return uint32(C.Z3_get_ast_hash(a.ctx.live(), a.live()))
}

// ID returns the engine's identifier of the term, unique within its
// context.
//
// Maps: Z3_get_ast_id
func (a *AST) ID() uint32 {
	return uint32(C.Z3_get_ast_id(a.ctx.live(), a.live()))
}

// Compare orders terms of the same context by their engine identifiers.
// It returns 0 exactly when the terms are Equal.
func (a *AST) Compare(other *AST) int {
	a.ctx.sameContext("term ordering", other.ctx)
	x, y := a.ID(), other.ID()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Text renders the term in SMT-LIB2 syntax.
func (a *AST) Text() (string, error) {
	return textOf(a.ctx, "term", C.Z3_ast_to_string(a.ctx.live(), a.live()))
}

// String returns a human-friendly string version of the AST.
func (a *AST) String() string {
	return stringOf(a.Text())
}

// Simplify returns an equivalent, simplified term.
//
// Maps: Z3_simplify
func (a *AST) Simplify() *AST {
	return a.unary(func(c C.Z3_context, x C.Z3_ast) C.Z3_ast { return C.Z3_simplify(c, x) })
}

// IsApp reports whether the term is a function application (constants
// included).
func (a *AST) IsApp() bool {
	return bool(C.Z3_is_app(a.ctx.live(), a.live()))
}

// Decl returns the declaration of an application term and false for any
// other kind of term.
func (a *AST) Decl() (*FuncDecl, bool) {
	if !a.IsApp() {
		return nil, false
	}
	app := C.Z3_to_app(a.ctx.raw, a.rawAST)
	return newFuncDecl(a.ctx, C.Z3_get_app_decl(a.ctx.raw, app)), true
}

// NumArgs returns the number of arguments of an application term, or 0.
func (a *AST) NumArgs() int {
	if !a.IsApp() {
		return 0
	}
	return int(C.Z3_get_app_num_args(a.ctx.raw, C.Z3_to_app(a.ctx.raw, a.rawAST)))
}

// Arg returns argument i of an application term. i must be less than
// NumArgs.
func (a *AST) Arg(i int) *AST {
	if i < 0 || i >= a.NumArgs() {
		fatalf("argument %d out of range", i)
	}
	app := C.Z3_to_app(a.ctx.raw, a.rawAST)
	return newAST(a.ctx, C.Z3_get_app_arg(a.ctx.raw, app, C.uint(i)))
}

//-------------------------------------------------------------------
// Var, Literal Creation
//-------------------------------------------------------------------

// Const declares a variable. It is called "Const" since internally
// this is equivalent to create a function that always returns a constant
// value.
//
// Maps: Z3_mk_const
func (c *Context) Const(s *Symbol, typ *Sort) *AST {
	c.sameContext("const", s.ctx)
	c.sameContext("const", typ.ctx)
	return newAST(c, C.Z3_mk_const(c.live(), s.rawSymbol, typ.live()))
}

// FromBool creates the value "true" or "false".
//
// Maps: Z3_mk_true, Z3_mk_false
func (c *Context) FromBool(b bool) *AST {
	if b {
		return newAST(c, C.Z3_mk_true(c.live()))
	}
	return newAST(c, C.Z3_mk_false(c.live()))
}

func (c *Context) True() *AST {
	return c.FromBool(true)
}

func (c *Context) False() *AST {
	return c.FromBool(false)
}
