package z3

// #include "go-z3.h"
import "C"

import "github.com/pkg/errors"

// ErrParse is the cause of every SMT-LIB2 parse failure.
var ErrParse = errors.New("z3: invalid SMT-LIB2 input")

// ParseSMTLIB2String parses the assertions of an SMT-LIB2 script. Sorts and
// functions must be declared in the script itself. The caller owns the
// returned terms.
//
// Maps: Z3_parse_smtlib2_string
func (c *Context) ParseSMTLIB2String(script string) ([]*AST, error) {
	s := cString(script)
	defer freeString(s)

	raw := C.Z3_parse_smtlib2_string(c.live(), s, 0, nil, nil, 0, nil, nil)
	if code := C.Z3_get_error_code(c.raw); code != C.Z3_OK || raw == nil {
		err := errors.Wrap(ErrParse, c.errorMessage())
		if raw != nil {
			C.Z3_ast_vector_inc_ref(c.raw, raw)
			C.Z3_ast_vector_dec_ref(c.raw, raw)
		}
		return nil, err
	}
	return takeVector(c, raw), nil
}
