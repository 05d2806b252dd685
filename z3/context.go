package z3

// #include "go-z3.h"
import "C"

import (
	"fmt"

	"github.com/netrixframework/safez3/log"
)

// Context owns the engine context that every other object is created in.
//
// Objects created from a Context hold a reference on it. Close marks the
// Context as closing; the engine context itself is deleted once the last
// of those objects has been closed. No new object may be created from a
// closing Context.
type Context struct {
	raw C.Z3_context

	refs    int
	closing bool

	logger *log.Logger
}

// NewContext creates a context from the options in c. A nil config uses
// the engine defaults.
func NewContext(c *Config) *Context {
	var raw C.Z3_context
	if c == nil {
		cfg := C.Z3_mk_config()
		raw = C.Z3_mk_context_rc(cfg)
		C.Z3_del_config(cfg)
	} else {
		if c.raw == nil {
			fatalf("config used after Close")
		}
		raw = C.Z3_mk_context_rc(c.raw)
	}
	if raw == nil {
		fatalf("engine failed to create a context")
	}
	C.safez3_install_error_handler(raw)

	ctx := &Context{
		raw:    raw,
		logger: log.Nop(),
	}
	ctx.logger.With(log.LogParams{"context": ctx.id()}).Debug("Created context")
	return ctx
}

// SetLogger replaces the logger used for lifecycle and check events.
func (c *Context) SetLogger(l *log.Logger) {
	c.logger = l.With(log.LogParams{"context": c.id()})
}

// Close releases the context. If objects created from it are still open
// the engine context is kept until the last of them is closed. Calling
// Close more than once has no effect.
func (c *Context) Close() error {
	if c.closing {
		return nil
	}
	c.closing = true
	if c.refs == 0 {
		c.destroy()
	} else {
		c.logger.With(log.LogParams{"open_handles": c.refs}).Debug("Context close deferred")
	}
	return nil
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool {
	return c.closing
}

// OpenHandles returns the number of objects created from this context that
// have not been closed yet.
func (c *Context) OpenHandles() int {
	return c.refs
}

func (c *Context) destroy() {
	C.Z3_del_context(c.raw)
	c.raw = nil
	c.logger.Debug("Deleted context")
}

// retain registers a new object owned by this context.
func (c *Context) retain() {
	if c.closing {
		fatalf("context used after Close")
	}
	c.refs++
}

// release drops the reference taken by retain.
func (c *Context) release() {
	if c.refs == 0 {
		fatalf("context reference count underflow")
	}
	c.refs--
	if c.closing && c.refs == 0 {
		c.destroy()
	}
}

// live returns the engine context, failing if it has already been deleted.
func (c *Context) live() C.Z3_context {
	if c.raw == nil {
		fatalf("context used after Close")
	}
	return c.raw
}

func (c *Context) id() string {
	return fmt.Sprintf("%p", c)
}

// errorMessage describes the engine's last error, if any.
func (c *Context) errorMessage() string {
	code := C.Z3_get_error_code(c.raw)
	if code == C.Z3_OK {
		return "no engine error reported"
	}
	return C.GoString(C.Z3_get_error_msg(c.raw, code))
}

// checkError turns a pending engine error into a fatal error.
func (c *Context) checkError(op string) {
	if code := C.Z3_get_error_code(c.raw); code != C.Z3_OK {
		fatalf("%s: %s", op, C.GoString(C.Z3_get_error_msg(c.raw, code)))
	}
}

// sameContext asserts that an operand was created in c.
func (c *Context) sameContext(op string, other *Context) {
	if c != other {
		fatalf("%s: operands belong to different contexts", op)
	}
}

// UpdateParamValue changes an engine option on a live context.
//
// Maps: Z3_update_param_value
func (c *Context) UpdateParamValue(key, value string) {
	k := cString(key)
	defer freeString(k)
	v := cString(value)
	defer freeString(v)

	C.Z3_update_param_value(c.live(), k, v)
	c.checkError("update param " + key)
}

// Interrupt asks a running check in this context to stop as soon as
// possible. It is the only method that may be called while another
// goroutine is blocked in Check.
//
// Maps: Z3_interrupt
func (c *Context) Interrupt() {
	C.Z3_interrupt(c.live())
}

//-------------------------------------------------------------------
// Convenience constructors
//-------------------------------------------------------------------

func (c *Context) BoolSort() *Sort {
	return newSort(c, C.Z3_mk_bool_sort(c.live()))
}

func (c *Context) IntSort() *Sort {
	return newSort(c, C.Z3_mk_int_sort(c.live()))
}

func (c *Context) RealSort() *Sort {
	return newSort(c, C.Z3_mk_real_sort(c.live()))
}

// BitvectorSort returns the sort of bit-vectors of the given width.
func (c *Context) BitvectorSort(size uint) *Sort {
	return newSort(c, C.Z3_mk_bv_sort(c.live(), C.uint(size)))
}

// NamedConst declares a constant named s of the given sort.
func (c *Context) NamedConst(s string, sort *Sort) *AST {
	return c.Const(c.StringSymbol(s), sort)
}

// NumberedConst declares a constant named by the integer i.
func (c *Context) NumberedConst(i int, sort *Sort) *AST {
	return c.Const(c.IntSymbol(i), sort)
}

// FreshConst declares a constant whose name starts with prefix and is
// guaranteed not to clash with any other declaration.
//
// Maps: Z3_mk_fresh_const
func (c *Context) FreshConst(prefix string, sort *Sort) *AST {
	c.sameContext("fresh const", sort.ctx)
	p := cString(prefix)
	defer freeString(p)
	return newAST(c, C.Z3_mk_fresh_const(c.live(), p, sort.live()))
}

// withSort runs f with a temporary sort and releases it afterwards.
func (c *Context) withSort(s *Sort, f func(*Sort) *AST) *AST {
	defer s.Close()
	return f(s)
}

func (c *Context) NamedBoolConst(s string) *AST {
	return c.withSort(c.BoolSort(), func(sort *Sort) *AST { return c.NamedConst(s, sort) })
}

func (c *Context) NumberedBoolConst(i int) *AST {
	return c.withSort(c.BoolSort(), func(sort *Sort) *AST { return c.NumberedConst(i, sort) })
}

func (c *Context) FreshBoolConst(prefix string) *AST {
	return c.withSort(c.BoolSort(), func(sort *Sort) *AST { return c.FreshConst(prefix, sort) })
}

func (c *Context) NamedIntConst(s string) *AST {
	return c.withSort(c.IntSort(), func(sort *Sort) *AST { return c.NamedConst(s, sort) })
}

func (c *Context) NumberedIntConst(i int) *AST {
	return c.withSort(c.IntSort(), func(sort *Sort) *AST { return c.NumberedConst(i, sort) })
}

func (c *Context) FreshIntConst(prefix string) *AST {
	return c.withSort(c.IntSort(), func(sort *Sort) *AST { return c.FreshConst(prefix, sort) })
}

func (c *Context) NamedRealConst(s string) *AST {
	return c.withSort(c.RealSort(), func(sort *Sort) *AST { return c.NamedConst(s, sort) })
}

func (c *Context) NumberedRealConst(i int) *AST {
	return c.withSort(c.RealSort(), func(sort *Sort) *AST { return c.NumberedConst(i, sort) })
}

func (c *Context) FreshRealConst(prefix string) *AST {
	return c.withSort(c.RealSort(), func(sort *Sort) *AST { return c.FreshConst(prefix, sort) })
}

func (c *Context) NamedBitvectorConst(s string, size uint) *AST {
	return c.withSort(c.BitvectorSort(size), func(sort *Sort) *AST { return c.NamedConst(s, sort) })
}

func (c *Context) NumberedBitvectorConst(i int, size uint) *AST {
	return c.withSort(c.BitvectorSort(size), func(sort *Sort) *AST { return c.NumberedConst(i, sort) })
}

func (c *Context) FreshBitvectorConst(prefix string, size uint) *AST {
	return c.withSort(c.BitvectorSort(size), func(sort *Sort) *AST { return c.FreshConst(prefix, sort) })
}
