package z3

// #include "go-z3.h"
import "C"

// ParamKind is the value type of a parameter.
type ParamKind string

const (
	ParamUint    ParamKind = "uint"
	ParamBool    ParamKind = "bool"
	ParamDouble  ParamKind = "double"
	ParamSymbol  ParamKind = "symbol"
	ParamString  ParamKind = "string"
	ParamOther   ParamKind = "other"
	ParamInvalid ParamKind = "invalid"
)

// ParamDescrs describes the parameters a solver or optimizer accepts.
type ParamDescrs struct {
	ctx            *Context
	rawParamDescrs C.Z3_param_descrs
}

func newParamDescrs(ctx *Context, raw C.Z3_param_descrs) *ParamDescrs {
	if raw == nil {
		fatalf("engine returned null parameter descriptions: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_param_descrs_inc_ref(ctx.raw, raw)
	return &ParamDescrs{ctx: ctx, rawParamDescrs: raw}
}

func (d *ParamDescrs) live() C.Z3_param_descrs {
	if d.rawParamDescrs == nil {
		fatalf("parameter descriptions used after Close")
	}
	return d.rawParamDescrs
}

func (d *ParamDescrs) Close() error {
	if d.rawParamDescrs == nil {
		return nil
	}
	C.Z3_param_descrs_dec_ref(d.ctx.raw, d.rawParamDescrs)
	d.rawParamDescrs = nil
	d.ctx.release()
	return nil
}

func (d *ParamDescrs) Size() int {
	return int(C.Z3_param_descrs_size(d.ctx.live(), d.live()))
}

// Name returns the name of parameter i, 0 <= i < Size.
func (d *ParamDescrs) Name(i int) string {
	d.index(i)
	return symbolFromRaw(d.ctx, C.Z3_param_descrs_get_name(d.ctx.raw, d.rawParamDescrs, C.uint(i))).String()
}

// Kind returns the value type of the named parameter, or ParamInvalid if
// there is no such parameter.
func (d *ParamDescrs) Kind(name string) ParamKind {
	s := d.ctx.StringSymbol(name)
	switch C.Z3_param_descrs_get_kind(d.ctx.live(), d.live(), s.rawSymbol) {
	case C.Z3_PK_UINT:
		return ParamUint
	case C.Z3_PK_BOOL:
		return ParamBool
	case C.Z3_PK_DOUBLE:
		return ParamDouble
	case C.Z3_PK_SYMBOL:
		return ParamSymbol
	case C.Z3_PK_STRING:
		return ParamString
	case C.Z3_PK_OTHER:
		return ParamOther
	}
	return ParamInvalid
}

func (d *ParamDescrs) Documentation(name string) string {
	s := d.ctx.StringSymbol(name)
	p := C.Z3_param_descrs_get_documentation(d.ctx.live(), d.live(), s.rawSymbol)
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

func (d *ParamDescrs) index(i int) {
	if i < 0 || i >= d.Size() {
		fatalf("parameter index %d out of range", i)
	}
}

func (d *ParamDescrs) Text() (string, error) {
	return textOf(d.ctx, "parameter descriptions", C.Z3_param_descrs_to_string(d.ctx.live(), d.live()))
}

func (d *ParamDescrs) String() string {
	return stringOf(d.Text())
}
