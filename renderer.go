package main

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/sirkon/go-format"
)

// Collector line by line collector
type Collector struct {
	buf bytes.Buffer
}

// Line puts format expression
func (r *Collector) Line(line string, p ...interface{}) {
	r.buf.WriteString(format.Formatp(line, p...))
	r.buf.WriteByte('\n')
}

// Rawl puts raw string
func (r *Collector) Rawl(line string) {
	r.buf.WriteString(line)
	r.buf.WriteByte('\n')
}

// Newl puts new line
func (r *Collector) Newl() {
	r.buf.WriteByte('\n')
}

// Bytes returns collected data in []byte
func (r *Collector) Bytes() []byte {
	return r.buf.Bytes()
}

// String returns collected data in string
func (r *Collector) String() string {
	return r.buf.String()
}

// unionDef union found in the source file
type unionDef struct {
	name     string
	branches []*branch
}

// branch one arm of the union
type branch struct {
	name     string
	typ      string
	isStruct bool
	params   []param
}

// param constructor parameter of a branch. field is empty for non-struct branches
type param struct {
	field string
	name  string
	typ   string
}

// renderer renders union code using pkg as a qualifier of the union runtime package
type renderer struct {
	pointer bool
	pkg     string
}

func (r *renderer) render(oo *Collector, u *unionDef) {
	r.renderInterface(oo, u)
	for _, b := range u.branches {
		r.renderBranch(oo, u, b)
	}
	r.renderConstructor(oo, u)
	for _, b := range u.branches {
		r.renderMethod(oo, u, b)
	}
	r.renderAs(oo, u)
}

func (r *renderer) renderInterface(oo *Collector, u *unionDef) {
	oo.Line(`// $0 an interface to limit available implementations to emulate discriminated union type`, u.name)
	oo.Line(`type $0 interface {`, u.name)
	oo.Line(`    is$0()`, u.name)
	oo.Line(`}`)
	oo.Newl()
}

func (r *renderer) renderBranch(oo *Collector, u *unionDef, b *branch) {
	var possiblePtr string
	if b.isStruct && r.pointer {
		possiblePtr = "*"
	}
	oo.Line(`// $0 branch of $1`, b.name, u.name)
	oo.Line(`type $0 $1`, b.name, b.typ)
	oo.Line(`func ($0$1) is$2() {}`, possiblePtr, b.name, u.name)
	oo.Newl()
}

func (r *renderer) renderConstructor(oo *Collector, u *unionDef) {
	unionName := strconv.Quote(u.name)
	typeName := u.name + "Constructor"

	oo.Line(`// $0 constructs $1 values, one method per branch`, typeName, u.name)
	oo.Line(`type $0 struct {`, typeName)
	oo.Line(`    *$0`, r.qual("Constructor"))
	oo.Line(`}`)
	oo.Newl()

	oo.Line(`// $0 constructor of $1 union`, u.name+"Union", u.name)
	oo.Line(`var $0 = $1{`, u.name+"Union", typeName)
	oo.Line(`    Constructor: $0($1).`, r.qual("Create"), unionName)
	for _, b := range u.branches {
		armName := strconv.Quote(b.name)
		oo.Line(`        Of($0, func(args ...interface{}) (interface{}, error) {`, armName)
		oo.Line(`            a := $0($1, $2, args)`, r.qual("ArgsOf"), unionName, armName)
		oo.Line(`            if err := a.Expect($0); err != nil {`, len(b.params))
		oo.Line(`                return nil, err`)
		oo.Line(`            }`)
		for i, p := range b.params {
			oo.Line(`            $0, err := $1[$2](a, $3)`, "p"+strconv.Itoa(i), r.qual("Arg"), p.typ, i)
			oo.Line(`            if err != nil {`)
			oo.Line(`                return nil, err`)
			oo.Line(`            }`)
		}
		oo.Line(`            return $0, nil`, r.payload(b))
		oo.Line(`        }).`)
	}
	oo.Line(`        Render(),`)
	oo.Line(`}`)
	oo.Newl()
}

// payload expression building branch value out of p0, p1, … locals
func (r *renderer) payload(b *branch) string {
	if !b.isStruct {
		return b.name + "(p0)"
	}

	var buf strings.Builder
	if r.pointer {
		buf.WriteByte('&')
	}
	buf.WriteString(b.name)
	buf.WriteByte('{')
	for i, p := range b.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.field)
		buf.WriteString(": p")
		buf.WriteString(strconv.Itoa(i))
	}
	buf.WriteByte('}')
	return buf.String()
}

func (r *renderer) renderMethod(oo *Collector, u *unionDef, b *branch) {
	params := make([]string, len(b.params))
	args := []string{strconv.Quote(b.name)}
	for i, p := range b.params {
		params[i] = p.name + " " + p.typ
		args = append(args, p.name)
	}

	oo.Line(`// $0 constructs $0 branch of $1`, b.name, u.name)
	oo.Line(`func (c $0) $1($2) $3 {`, u.name+"Constructor", b.name, strings.Join(params, ", "), r.qual("Value"))
	oo.Line(`    return $0(c.Constructor.Invoke($1))`, r.qual("Must"), strings.Join(args, ", "))
	oo.Line(`}`)
	oo.Newl()
}

func (r *renderer) renderAs(oo *Collector, u *unionDef) {
	oo.Line(`// $0 extracts $1 branch out of a value constructed by $2`, "As"+u.name, u.name, u.name+"Union")
	oo.Line(`func $0(v $1) ($2, bool) {`, "As"+u.name, r.qual("Value"), u.name)
	oo.Line(`    if v.Union() != $0 {`, strconv.Quote(u.name))
	oo.Line(`        return nil, false`)
	oo.Line(`    }`)
	oo.Line(`    b, ok := v.Payload().($0)`, u.name)
	oo.Line(`    return b, ok`)
	oo.Line(`}`)
}

// qual qualifies name with the union runtime package
func (r *renderer) qual(name string) string {
	return r.pkg + "." + name
}
