package z3

// #include "go-z3.h"
import "C"

// Field is one named argument of a datatype variant. A nil Sort refers to
// the datatype being built, which allows recursive types such as lists.
type Field struct {
	Name string
	Sort *Sort
}

// DatatypeBuilder stages the variants of an algebraic datatype. Variants
// are added with Variant and turned into a sort by Finish. A builder that
// is abandoned before Finish must be closed to release staged variants.
type DatatypeBuilder struct {
	ctx      *Context
	name     string
	staged   []stagedVariant
	finished bool
}

type stagedVariant struct {
	name      string
	numFields int
	raw       C.Z3_constructor
}

// NewDatatypeBuilder starts a datatype with no variants.
func (c *Context) NewDatatypeBuilder() *DatatypeBuilder {
	c.retain()
	return &DatatypeBuilder{ctx: c}
}

func (b *DatatypeBuilder) building(op string) {
	if b.finished {
		fatalf("datatype builder: %s after Finish", op)
	}
}

// Variant stages a constructor called name with the given fields. Its
// recognizer is named "is-" followed by name.
//
// Maps: Z3_mk_constructor
func (b *DatatypeBuilder) Variant(name string, fields ...Field) *DatatypeBuilder {
	b.building("variant " + name)
	c := b.ctx

	names := make([]C.Z3_symbol, len(fields))
	sorts := make([]C.Z3_sort, len(fields))
	refs := make([]C.uint, len(fields))
	for i, f := range fields {
		names[i] = c.StringSymbol(f.Name).rawSymbol
		if f.Sort != nil {
			c.sameContext("datatype field "+f.Name, f.Sort.ctx)
			sorts[i] = f.Sort.live()
		}
	}
	var (
		firstName *C.Z3_symbol
		firstSort *C.Z3_sort
		firstRef  *C.uint
	)
	if len(fields) > 0 {
		firstName, firstSort, firstRef = &names[0], &sorts[0], &refs[0]
	}

	raw := C.Z3_mk_constructor(c.live(), c.StringSymbol(name).rawSymbol, c.StringSymbol("is-"+name).rawSymbol,
		operandCount(len(fields)), firstName, firstSort, firstRef)
	if raw == nil {
		fatalf("engine returned a null constructor for %s: %s", name, c.errorMessage())
	}
	b.staged = append(b.staged, stagedVariant{name: name, numFields: len(fields), raw: raw})
	return b
}

// Finish creates the datatype named name from the staged variants. The
// builder cannot be used afterwards.
//
// Maps: Z3_mk_datatype, Z3_query_constructor
func (b *DatatypeBuilder) Finish(name string) *Datatype {
	b.building("finish")
	if len(b.staged) == 0 {
		fatalf("datatype %s has no variants", name)
	}
	c := b.ctx
	defer b.Close()

	raws := make([]C.Z3_constructor, len(b.staged))
	for i, v := range b.staged {
		raws[i] = v.raw
	}
	dt := &Datatype{
		Sort: newSort(c, C.Z3_mk_datatype(c.live(), c.StringSymbol(name).rawSymbol, operandCount(len(raws)), &raws[0])),
	}

	for _, v := range b.staged {
		var cons, tester C.Z3_func_decl
		accessors := make([]C.Z3_func_decl, v.numFields+1)
		C.Z3_query_constructor(c.raw, v.raw, C.uint(v.numFields), &cons, &tester, &accessors[0])
		c.checkError("query constructor " + v.name)

		variant := DatatypeVariant{
			Constructor: newFuncDecl(c, cons),
			Tester:      newFuncDecl(c, tester),
			Accessors:   make([]*FuncDecl, v.numFields),
		}
		for i := 0; i < v.numFields; i++ {
			variant.Accessors[i] = newFuncDecl(c, accessors[i])
		}
		dt.Variants = append(dt.Variants, variant)
	}
	c.logger.Debug("Created datatype " + name)
	return dt
}

// Close releases the staged variants. Finish closes the builder itself;
// calling Close again has no effect.
func (b *DatatypeBuilder) Close() error {
	if b.finished {
		return nil
	}
	b.finished = true
	for _, v := range b.staged {
		C.Z3_del_constructor(b.ctx.raw, v.raw)
	}
	b.staged = nil
	b.ctx.release()
	return nil
}

// Datatype is a finished algebraic datatype. Variants are in the order
// they were staged.
type Datatype struct {
	Sort     *Sort
	Variants []DatatypeVariant
}

// DatatypeVariant holds the declarations of one variant. Accessors are in
// field order.
type DatatypeVariant struct {
	Constructor *FuncDecl
	Tester      *FuncDecl
	Accessors   []*FuncDecl
}

// Close releases the sort and every declaration of the datatype.
func (d *Datatype) Close() error {
	for _, v := range d.Variants {
		v.Close()
	}
	return d.Sort.Close()
}

func (v DatatypeVariant) Close() error {
	v.Constructor.Close()
	v.Tester.Close()
	for _, a := range v.Accessors {
		a.Close()
	}
	return nil
}
