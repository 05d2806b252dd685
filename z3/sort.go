package z3

// #include "go-z3.h"
import "C"

type SortKind struct {
	rawSortKind C.Z3_sort_kind
}

func (s *SortKind) Eq(other *SortKind) bool {
	return s.rawSortKind == other.rawSortKind
}

var (
	UninterpretedSort *SortKind = &SortKind{rawSortKind: C.Z3_UNINTERPRETED_SORT}
	BoolSort          *SortKind = &SortKind{rawSortKind: C.Z3_BOOL_SORT}
	IntSort           *SortKind = &SortKind{rawSortKind: C.Z3_INT_SORT}
	RealSort          *SortKind = &SortKind{rawSortKind: C.Z3_REAL_SORT}
	BvSort            *SortKind = &SortKind{rawSortKind: C.Z3_BV_SORT}
	ArraySort         *SortKind = &SortKind{rawSortKind: C.Z3_ARRAY_SORT}
	DatatypeSort      *SortKind = &SortKind{rawSortKind: C.Z3_DATATYPE_SORT}
	RelationSort      *SortKind = &SortKind{rawSortKind: C.Z3_RELATION_SORT}
	FiniteDomainSort  *SortKind = &SortKind{rawSortKind: C.Z3_FINITE_DOMAIN_SORT}
	FloatingPointSort *SortKind = &SortKind{rawSortKind: C.Z3_FLOATING_POINT_SORT}
	RoundingModeSort  *SortKind = &SortKind{rawSortKind: C.Z3_ROUNDING_MODE_SORT}
	SeqSort           *SortKind = &SortKind{rawSortKind: C.Z3_SEQ_SORT}
	ReSort            *SortKind = &SortKind{rawSortKind: C.Z3_RE_SORT}
	UnknownSort       *SortKind = &SortKind{rawSortKind: C.Z3_UNKNOWN_SORT}
)

// Sort represents a sort in Z3.
//
// A Sort owns one reference on its engine handle; Close drops it.
type Sort struct {
	ctx     *Context
	rawSort C.Z3_sort
}

// newSort wraps a handle returned by the engine and takes a reference on it.
func newSort(ctx *Context, raw C.Z3_sort) *Sort {
	if raw == nil {
		fatalf("engine returned a null sort: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_inc_ref(ctx.raw, C.Z3_sort_to_ast(ctx.raw, raw))
	return &Sort{ctx: ctx, rawSort: raw}
}

func (s *Sort) live() C.Z3_sort {
	if s.rawSort == nil {
		fatalf("sort used after Close")
	}
	return s.rawSort
}

// Close drops this sort's reference. Calling Close again has no effect.
func (s *Sort) Close() error {
	if s.rawSort == nil {
		return nil
	}
	C.Z3_dec_ref(s.ctx.raw, C.Z3_sort_to_ast(s.ctx.raw, s.rawSort))
	s.rawSort = nil
	s.ctx.release()
	return nil
}

// Clone returns a second, independently closable owner of the same sort.
func (s *Sort) Clone() *Sort {
	return newSort(s.ctx, s.live())
}

// Context returns the context the sort was created in.
func (s *Sort) Context() *Context {
	return s.ctx
}

func (s *Sort) Kind() *SortKind {
	return &SortKind{
		rawSortKind: C.Z3_get_sort_kind(s.ctx.live(), s.live()),
	}
}

// Name returns the sort's name, e.g. "Int" or the name of a datatype.
func (s *Sort) Name() *Symbol {
	return symbolFromRaw(s.ctx, C.Z3_get_sort_name(s.ctx.live(), s.live()))
}

// BVSize returns the width of a bit-vector sort and false for any other
// sort.
func (s *Sort) BVSize() (uint, bool) {
	if !s.Kind().Eq(BvSort) {
		return 0, false
	}
	return uint(C.Z3_get_bv_sort_size(s.ctx.raw, s.rawSort)), true
}

// Equal reports whether both sorts are structurally the same. Sorts from
// different contexts are a fatal error.
//
// Maps: Z3_is_eq_sort
func (s *Sort) Equal(other *Sort) bool {
	s.ctx.sameContext("sort equality", other.ctx)
	return bool(C.Z3_is_eq_sort(s.ctx.live(), s.live(), other.live()))
}

// Text renders the sort.
func (s *Sort) Text() (string, error) {
	return textOf(s.ctx, "sort", C.Z3_sort_to_string(s.ctx.live(), s.live()))
}

func (s *Sort) String() string {
	return stringOf(s.Text())
}

// FromInt64 creates a numeral of this sort, which must be an integer,
// bit-vector or finite-domain sort.
//
// Maps: Z3_mk_int64
func (s *Sort) FromInt64(i int64) *AST {
	return newAST(s.ctx, C.Z3_mk_int64(s.ctx.live(), C.int64_t(i), s.live()))
}

// FromUint64 creates an unsigned numeral of this sort.
//
// Maps: Z3_mk_unsigned_int64
func (s *Sort) FromUint64(u uint64) *AST {
	return newAST(s.ctx, C.Z3_mk_unsigned_int64(s.ctx.live(), C.uint64_t(u), s.live()))
}

//-------------------------------------------------------------------
// Compound sorts
//-------------------------------------------------------------------

// ArraySort returns the sort of arrays from domain to rng.
//
// Maps: Z3_mk_array_sort
func (c *Context) ArraySort(domain, rng *Sort) *Sort {
	c.sameContext("array sort", domain.ctx)
	c.sameContext("array sort", rng.ctx)
	return newSort(c, C.Z3_mk_array_sort(c.live(), domain.live(), rng.live()))
}

// SetSort returns the sort of sets of elt.
//
// Maps: Z3_mk_set_sort
func (c *Context) SetSort(elt *Sort) *Sort {
	c.sameContext("set sort", elt.ctx)
	return newSort(c, C.Z3_mk_set_sort(c.live(), elt.live()))
}

// UninterpretedSort returns a fresh sort with no interpretation.
//
// Maps: Z3_mk_uninterpreted_sort
func (c *Context) UninterpretedSort(name *Symbol) *Sort {
	c.sameContext("uninterpreted sort", name.ctx)
	return newSort(c, C.Z3_mk_uninterpreted_sort(c.live(), name.rawSymbol))
}

// EnumerationSort creates a sort with one nullary constructor per name.
// It returns the sort, the constant declaration of each variant and the
// tester declaration of each variant, index-aligned with names. Every
// returned object must be closed.
//
// Maps: Z3_mk_enumeration_sort
func (c *Context) EnumerationSort(name *Symbol, names ...*Symbol) (*Sort, []*FuncDecl, []*FuncDecl) {
	c.sameContext("enumeration sort", name.ctx)
	for _, n := range names {
		c.sameContext("enumeration sort", n.ctx)
	}

	count := len(names)
	rawNames := make([]C.Z3_symbol, count+1)
	for i, n := range names {
		rawNames[i] = n.rawSymbol
	}
	consts := make([]C.Z3_func_decl, count+1)
	testers := make([]C.Z3_func_decl, count+1)

	sort := newSort(c, C.Z3_mk_enumeration_sort(
		c.live(), name.rawSymbol, operandCount(count), &rawNames[0], &consts[0], &testers[0]))

	enumConsts := make([]*FuncDecl, count)
	enumTesters := make([]*FuncDecl, count)
	for i := 0; i < count; i++ {
		enumConsts[i] = newFuncDecl(c, consts[i])
		enumTesters[i] = newFuncDecl(c, testers[i])
	}
	c.logger.Debug("Created enumeration sort " + name.String())
	return sort, enumConsts, enumTesters
}
