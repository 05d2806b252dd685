package z3

// #include "go-z3.h"
import "C"

import "github.com/pkg/errors"

// ErrInvalidParam is the cause of Params.Validate failures.
var ErrInvalidParam = errors.New("z3: invalid parameter")

// Params is a set of solver or optimizer options.
type Params struct {
	ctx       *Context
	rawParams C.Z3_params
}

// NewParams creates an empty parameter set.
//
// Maps: Z3_mk_params
func (c *Context) NewParams() *Params {
	raw := C.Z3_mk_params(c.live())
	if raw == nil {
		fatalf("engine returned null params: %s", c.errorMessage())
	}
	c.retain()
	C.Z3_params_inc_ref(c.raw, raw)
	return &Params{ctx: c, rawParams: raw}
}

func (p *Params) live() C.Z3_params {
	if p.rawParams == nil {
		fatalf("params used after Close")
	}
	return p.rawParams
}

func (p *Params) Close() error {
	if p.rawParams == nil {
		return nil
	}
	C.Z3_params_dec_ref(p.ctx.raw, p.rawParams)
	p.rawParams = nil
	p.ctx.release()
	return nil
}

func (p *Params) SetBool(key string, v bool) {
	k := p.ctx.StringSymbol(key)
	C.Z3_params_set_bool(p.ctx.live(), p.live(), k.rawSymbol, C.bool(v))
}

func (p *Params) SetUint(key string, v uint32) {
	k := p.ctx.StringSymbol(key)
	C.Z3_params_set_uint(p.ctx.live(), p.live(), k.rawSymbol, C.uint(v))
}

func (p *Params) SetFloat64(key string, v float64) {
	k := p.ctx.StringSymbol(key)
	C.Z3_params_set_double(p.ctx.live(), p.live(), k.rawSymbol, C.double(v))
}

// SetSymbol sets a parameter whose value is a name, such as a logic or a
// strategy.
func (p *Params) SetSymbol(key, v string) {
	k := p.ctx.StringSymbol(key)
	val := p.ctx.StringSymbol(v)
	C.Z3_params_set_symbol(p.ctx.live(), p.live(), k.rawSymbol, val.rawSymbol)
}

// Validate checks every parameter against the descriptions d.
//
// Maps: Z3_params_validate
func (p *Params) Validate(d *ParamDescrs) error {
	p.ctx.sameContext("params validate", d.ctx)
	C.Z3_params_validate(p.ctx.live(), p.live(), d.live())
	if code := C.Z3_get_error_code(p.ctx.raw); code != C.Z3_OK {
		return errors.Wrap(ErrInvalidParam, C.GoString(C.Z3_get_error_msg(p.ctx.raw, code)))
	}
	return nil
}

func (p *Params) Text() (string, error) {
	return textOf(p.ctx, "params", C.Z3_params_to_string(p.ctx.live(), p.live()))
}

func (p *Params) String() string {
	return stringOf(p.Text())
}
