package z3

// #include "go-z3.h"
import "C"

// Model represents a model from a solver.
//
// A Model owns one reference on its engine handle. Terms and declarations
// obtained from it are owned by the caller and outlive the model.
type Model struct {
	ctx      *Context
	rawModel C.Z3_model
}

func newModel(ctx *Context, raw C.Z3_model) *Model {
	if raw == nil {
		fatalf("engine returned a null model: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_model_inc_ref(ctx.raw, raw)
	return &Model{ctx: ctx, rawModel: raw}
}

func (m *Model) live() C.Z3_model {
	if m.rawModel == nil {
		fatalf("model used after Close")
	}
	return m.rawModel
}

func (m *Model) Close() error {
	if m.rawModel == nil {
		return nil
	}
	C.Z3_model_dec_ref(m.ctx.raw, m.rawModel)
	m.rawModel = nil
	m.ctx.release()
	return nil
}

func (m *Model) Clone() *Model {
	return newModel(m.ctx, m.live())
}

// Text renders the model as a list of definitions.
func (m *Model) Text() (string, error) {
	return textOf(m.ctx, "model", C.Z3_model_to_string(m.ctx.live(), m.live()))
}

// String returns a human-friendly string version of the model.
func (m *Model) String() string {
	return stringOf(m.Text())
}

//-------------------------------------------------------------------
// Assignments
//-------------------------------------------------------------------

// Eval evaluates the given AST within the model. With completion set,
// constants the model leaves open are given a default value, and that
// value is recorded in the model, so ConstInterp finds it afterwards. ok
// is false if evaluation failed.
//
// For example:
//
//	x := ctx.NamedIntConst("x")
//	// ... further solving
//	v, _ := m.Eval(x, true) // x's value
//
// Maps: Z3_model_eval
func (m *Model) Eval(t *AST, completion bool) (*AST, bool) {
	m.ctx.sameContext("model eval", t.ctx)
	flag := C.int(0)
	if completion {
		flag = 1
	}
	var result C.Z3_ast
	if C.safez3_model_eval(m.ctx.live(), m.live(), t.live(), flag, &result) == 0 || result == nil {
		return nil, false
	}
	return newAST(m.ctx, result), true
}

// NumConsts returns the number of constants the model interprets.
func (m *Model) NumConsts() int {
	return int(C.Z3_model_get_num_consts(m.ctx.live(), m.live()))
}

// ConstDecl returns the declaration of constant i, 0 <= i < NumConsts.
func (m *Model) ConstDecl(i int) *FuncDecl {
	if i < 0 || i >= m.NumConsts() {
		fatalf("model constant %d out of range", i)
	}
	return newFuncDecl(m.ctx, C.Z3_model_get_const_decl(m.ctx.raw, m.rawModel, C.uint(i)))
}

// ConstInterp returns the value the model assigns to the constant d. ok is
// false if the model leaves d open.
//
// Maps: Z3_model_get_const_interp
func (m *Model) ConstInterp(d *FuncDecl) (*AST, bool) {
	m.ctx.sameContext("model interpretation", d.ctx)
	raw := C.Z3_model_get_const_interp(m.ctx.live(), m.live(), d.live())
	if raw == nil {
		return nil, false
	}
	return newAST(m.ctx, raw), true
}

// Assignments returns a map of all the assignments for all the constants
// within the model. The key of the map will be the String value of the
// symbol. The caller owns, and must close, every value.
//
// This doesn't map to any specific Z3 API.
func (m *Model) Assignments() map[string]*AST {
	result := make(map[string]*AST)
	for i := 0; i < m.NumConsts(); i++ {
		decl := m.ConstDecl(i)
		if v, ok := m.ConstInterp(decl); ok {
			result[decl.Name().String()] = v
		}
		decl.Close()
	}
	return result
}
