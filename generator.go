package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirkon/gosrcfmt"
	"github.com/sirkon/gotify"
	"go.uber.org/multierr"
	"golang.org/x/tools/go/ast/astutil"
)

const (
	unionPrefix     = "union"
	unionImportPath = "github.com/sirkon/go-union/union"
	unionPkgName    = "union"
)

// sourceError error bound to a position in the processed file
type sourceError struct {
	pos token.Position
	msg string
}

func (e *sourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.pos, e.msg)
}

// Generator renders union code out of union definitions
type Generator struct {
	pointer bool
}

// NewGenerator constructor. With pointer set struct branches implement union interface over pointers
func NewGenerator(pointer bool) *Generator {
	return &Generator{
		pointer: pointer,
	}
}

// Generate processes source of the file and returns new source with union code. The result holds
// package clause, imports, the union definition and generated code; everything else is dropped.
func (g *Generator) Generate(fileName string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, fileName, src, parser.AllErrors|parser.ParseComments)
	if err != nil {
		lst, ok := err.(scanner.ErrorList)
		if !ok {
			return nil, err
		}
		var errs error
		for _, l := range lst {
			errs = multierr.Append(errs, l)
		}
		return nil, errs
	}

	spec, err := lookupDefinition(fset, file)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, fmt.Errorf("%s:1 no union candidates found", fileName)
	}

	// the definition is kept in its original form so the file could be regenerated
	var origUnion bytes.Buffer
	origUnion.WriteString("type ")
	if err := printer.Fprint(&origUnion, fset, spec); err != nil {
		return nil, fmt.Errorf("render original %s structure: %w", spec.Name.Name, err)
	}

	pkg, imported := unionQualifier(file)
	u, err := g.extract(fset, spec, pkg)
	if err != nil {
		return nil, err
	}

	// render new file. Borrow package name and import statements from the source file
	var dest Collector
	dest.Line(`package $0`, file.Name.Name)
	dest.Newl()
	_, base := filepath.Split(fileName)
	if g.pointer {
		dest.Line(`//go:generate go-union --pointer $0`, base)
	} else {
		dest.Line(`//go:generate go-union $0`, base)
	}
	dest.Newl()

	r := &renderer{
		pointer: g.pointer,
		pkg:     pkg,
	}
	dest.Rawl(`import (`)
	for _, imp := range file.Imports {
		if imp.Name != nil {
			dest.Line(`$0 $1`, imp.Name.Name, imp.Path.Value)
		} else {
			dest.Line(`$0`, imp.Path.Value)
		}
	}
	if !imported {
		dest.Line(`$0`, strconv.Quote(unionImportPath))
	}
	dest.Rawl(`)`)
	dest.Newl()

	dest.Rawl(origUnion.String())
	dest.Newl()

	var oo Collector
	r.render(&oo, u)
	dest.Rawl(oo.String())

	res, err := gosrcfmt.Source(dest.Bytes(), "<output>")
	if err != nil {
		var buf bytes.Buffer
		buf.WriteString(err.Error())
		buf.WriteByte('\n')
		lines := strings.Split(dest.String(), "\n")
		errFmt := fmt.Sprintf("%%0%dd", len(strconv.Itoa(len(lines)+1)))
		for i, l := range lines {
			_, _ = fmt.Fprintf(&buf, errFmt, i+1)
			buf.WriteByte(' ')
			buf.WriteString(l)
			buf.WriteByte('\n')
		}
		return nil, fmt.Errorf("format generated code: %s", buf.String())
	}

	return res, nil
}

// unionQualifier returns the name the union runtime package is referred by in the file and
// whether the file imports it already
func unionQualifier(file *ast.File) (string, bool) {
	for _, imp := range file.Imports {
		if path, _ := strconv.Unquote(imp.Path.Value); path != unionImportPath {
			continue
		}
		switch {
		case imp.Name == nil:
			return unionPkgName, true
		case imp.Name.Name != "_" && imp.Name.Name != ".":
			return imp.Name.Name, true
		}
	}
	return unionPkgName, false
}

// lookupDefinition looks for `unionXXX` structure. It must be only one in the file at the top level
func lookupDefinition(fset *token.FileSet, file *ast.File) (*ast.TypeSpec, error) {
	var def *ast.TypeSpec
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, s := range gen.Specs {
			v := s.(*ast.TypeSpec)
			if _, ok := v.Type.(*ast.StructType); !ok {
				continue
			}
			if !strings.HasPrefix(v.Name.Name, unionPrefix) || len(v.Name.Name) == len(unionPrefix) {
				continue
			}
			if def != nil {
				return nil, &sourceError{
					pos: fset.Position(v.Pos()),
					msg: fmt.Sprintf("duplicate union in this file, the previous one was %s", def.Name.Name),
				}
			}
			def = v
		}
	}

	return def, nil
}

// extract validates union definition and turns it into union model
func (g *Generator) extract(fset *token.FileSet, spec *ast.TypeSpec, pkg string) (*unionDef, error) {
	gotifier := gotify.New(nil)

	defName := spec.Name.Name
	name := defName[len(unionPrefix):]
	if name != gotifier.Public(name) {
		return nil, &sourceError{
			pos: fset.Position(spec.Name.NamePos),
			msg: fmt.Sprintf("name must be %s%s, got %s", unionPrefix, gotifier.Public(name), defName),
		}
	}

	reserved := map[string]struct{}{
		name:                 {},
		name + "Constructor": {},
		name + "Union":       {},
		"As" + name:          {},
		"Constructor":        {},
	}

	u := &unionDef{
		name: name,
	}
	var errs error
	for _, f := range spec.Type.(*ast.StructType).Fields.List {
		if len(f.Names) == 0 {
			errs = multierr.Append(errs, &sourceError{
				pos: fset.Position(f.Pos()),
				msg: "embedding is not allowed for unions",
			})
			continue
		}

		typ := rewriteSelfRefs(f.Type, defName, name)
		for _, n := range f.Names {
			if n.Name != gotifier.Public(n.Name) {
				errs = multierr.Append(errs, &sourceError{
					pos: fset.Position(n.NamePos),
					msg: fmt.Sprintf("invalid branch name %s for union branch, must be %s", n.Name, gotifier.Public(n.Name)),
				})
				continue
			}
			if _, ok := reserved[n.Name]; ok {
				errs = multierr.Append(errs, &sourceError{
					pos: fset.Position(n.NamePos),
					msg: fmt.Sprintf("branch name %s clashes with generated code", n.Name),
				})
				continue
			}

			b, err := newBranch(fset, n.Name, typ, pkg)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			u.branches = append(u.branches, b)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return u, nil
}

// newBranch builds branch model. pkg is the qualifier of the union runtime package, constructor
// parameters must not shadow it
func newBranch(fset *token.FileSet, name string, typ ast.Expr, pkg string) (*branch, error) {
	b := &branch{
		name: name,
	}

	var err error
	b.typ, err = renderExpr(fset, typ)
	if err != nil {
		return nil, fmt.Errorf("rendering branch for field %s: %w", name, err)
	}

	st, ok := typ.(*ast.StructType)
	if !ok {
		b.params = []param{
			{
				name: paramName("Value", pkg, takenNames(pkg)),
				typ:  b.typ,
			},
		}
		return b, nil
	}

	b.isStruct = true
	taken := takenNames(pkg)
	var errs error
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			errs = multierr.Append(errs, &sourceError{
				pos: fset.Position(f.Pos()),
				msg: fmt.Sprintf("embedding is not allowed in branch %s", name),
			})
			continue
		}
		ftyp, err := renderExpr(fset, f.Type)
		if err != nil {
			return nil, fmt.Errorf("rendering field type of branch %s: %w", name, err)
		}
		for _, n := range f.Names {
			if n.Name == "_" {
				continue
			}
			b.params = append(b.params, param{
				field: n.Name,
				name:  paramName(n.Name, pkg, taken),
				typ:   ftyp,
			})
		}
	}
	if errs != nil {
		return nil, errs
	}

	return b, nil
}

// rewriteSelfRefs replaces *unionXXX and unionXXX references with XXX
func rewriteSelfRefs(typ ast.Expr, defName, name string) ast.Expr {
	res := astutil.Apply(typ, func(c *astutil.Cursor) bool {
		switch v := c.Node().(type) {
		case *ast.StarExpr:
			if id, ok := v.X.(*ast.Ident); ok && id.Name == defName {
				c.Replace(ast.NewIdent(name))
				return false
			}
		case *ast.Field:
			// field names are not type references
			if v.Type != nil {
				v.Type = rewriteSelfRefs(v.Type, defName, name)
			}
			return false
		case *ast.Ident:
			if v.Name == defName {
				c.Replace(ast.NewIdent(name))
			}
		}
		return true
	}, nil)

	return res.(ast.Expr)
}

func renderExpr(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// takenNames names constructor parameters cannot use: the method receiver and the union package qualifier
func takenNames(pkg string) map[string]struct{} {
	return map[string]struct{}{
		"c": {},
		pkg: {},
	}
}

// paramName derives a constructor parameter name out of a field name which is neither a keyword,
// the receiver, the union package qualifier nor one of taken names. The result is added to taken.
func paramName(field, pkg string, taken map[string]struct{}) string {
	base := privateName(field)
	if base == "c" || base == pkg || token.IsKeyword(base) {
		base += "Value"
	}

	name := base
	for i := 2; ; i++ {
		if _, ok := taken[name]; !ok {
			break
		}
		name = base + strconv.Itoa(i)
	}

	taken[name] = struct{}{}
	return name
}

// privateName lowers leading capitals of the name: ID → id, HTTPServer → httpServer, Error → error
func privateName(name string) string {
	runes := []rune(name)
	var upper int
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	if upper > 1 && upper < len(runes) {
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
