package z3

// #include "go-z3.h"
import "C"

// Pattern is an instantiation trigger for a quantifier.
type Pattern struct {
	ctx        *Context
	rawPattern C.Z3_pattern
}

// Pattern builds a multi-pattern from one or more terms.
//
// Maps: Z3_mk_pattern
func (c *Context) Pattern(terms ...*AST) *Pattern {
	if len(terms) == 0 {
		fatalf("pattern needs at least one term")
	}
	raws := rawTerms("pattern", c, terms)
	raw := C.Z3_mk_pattern(c.live(), operandCount(len(raws)), &raws[0])
	if raw == nil {
		fatalf("engine returned a null pattern: %s", c.errorMessage())
	}
	c.retain()
	C.Z3_inc_ref(c.raw, C.Z3_pattern_to_ast(c.raw, raw))
	return &Pattern{ctx: c, rawPattern: raw}
}

func (p *Pattern) live() C.Z3_pattern {
	if p.rawPattern == nil {
		fatalf("pattern used after Close")
	}
	return p.rawPattern
}

func (p *Pattern) Close() error {
	if p.rawPattern == nil {
		return nil
	}
	C.Z3_dec_ref(p.ctx.raw, C.Z3_pattern_to_ast(p.ctx.raw, p.rawPattern))
	p.rawPattern = nil
	p.ctx.release()
	return nil
}

func (p *Pattern) Text() (string, error) {
	return textOf(p.ctx, "pattern", C.Z3_pattern_to_string(p.ctx.live(), p.live()))
}

func (p *Pattern) String() string {
	return stringOf(p.Text())
}
