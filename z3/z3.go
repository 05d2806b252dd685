// Package z3 wraps the Z3 C API with explicit, balanced reference counting.
//
// Every wrapper owns exactly one reference on its engine handle. The
// reference is taken when the wrapper is created (or cloned) and dropped by
// Close. Wrappers keep their Context alive: Context.Close only deletes the
// engine context once every wrapper created from it has been closed.
//
// Programming errors (mixing contexts, popping an empty scope stack, asking
// for a model without a satisfiable check, using a closed wrapper, the
// engine returning a null handle) panic with a *FatalError. Outcomes that
// callers are expected to branch on, such as a term that is not a numeral,
// are reported through (value, ok) results instead.
//
// Nothing in this package is safe for concurrent use. Distinct contexts
// are independent of each other.
package z3

/*
#cgo LDFLAGS: -lz3
#cgo darwin CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo darwin LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib
#include "go-z3.h"
*/
import "C"

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrFormat is the cause of every error returned when the engine fails to
// render a handle as text.
var ErrFormat = errors.New("z3: engine returned no text")

// FatalError is the panic value used for precondition violations and
// unrecoverable engine states. It carries the stack of the violating call.
type FatalError struct {
	err error
}

func (f *FatalError) Error() string {
	return f.err.Error()
}

// Unwrap returns the underlying error, which carries a stack trace.
func (f *FatalError) Unwrap() error {
	return f.err
}

func fatalf(format string, args ...interface{}) {
	panic(&FatalError{err: errors.Errorf("z3: "+format, args...)})
}

// Version returns the full version string of the linked engine.
func Version() string {
	return C.GoString(C.Z3_get_full_version())
}

// cString converts a name for the engine. Names containing NUL cannot be
// represented and are rejected.
func cString(s string) *C.char {
	if strings.IndexByte(s, 0) >= 0 {
		fatalf("name %q contains a NUL byte", s)
	}
	return C.CString(s)
}

func freeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// operandCount checks that n operands fit the engine's 32-bit counters.
func operandCount(n int) C.uint {
	if uint64(n) > math.MaxUint32 {
		fatalf("%d operands exceed the engine limit of %d", n, uint64(math.MaxUint32))
	}
	return C.uint(n)
}

// textOf copies engine-owned text, failing when the engine returned NULL or
// flagged an error.
func textOf(ctx *Context, what string, p *C.char) (string, error) {
	if p == nil {
		return "", errors.Wrapf(ErrFormat, "%s: %s", what, ctx.errorMessage())
	}
	if code := C.Z3_get_error_code(ctx.raw); code != C.Z3_OK {
		return "", errors.Wrapf(ErrFormat, "%s: %s", what, ctx.errorMessage())
	}
	return C.GoString(p), nil
}

// stringOf is the fmt.Stringer rendering of a failed Text call, in the
// style fmt uses for its own formatting failures.
func stringOf(s string, err error) string {
	if err != nil {
		return fmt.Sprintf("%%!v(%s)", err)
	}
	return s
}
