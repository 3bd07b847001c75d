package analyze

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"enum-generator/internal/schema"
)

// DirectivePrefix marks an enumeration directive comment.
const DirectivePrefix = "//enum:"

// typeSpec is a type declaration in source order together with its directives.
type typeSpec struct {
	name  *ast.Ident
	attrs []schema.Attr
}

// constSpec is one named constant in source order with its directives.
type constSpec struct {
	name  *ast.Ident
	attrs []schema.Attr
}

// extractor walks the syntax of one type-checked package.
type extractor struct {
	fset   *token.FileSet
	pkg    *types.Package
	info   *types.Info
	types  []typeSpec
	consts []constSpec
}

// ExtractPackage returns the annotated enumerations of a type-checked
// package, ordered by declaration. Generated files are skipped.
func ExtractPackage(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info) []EnumDecl {
	x := &extractor{
		fset: fset,
		pkg:  pkg,
		info: info,
	}

	for _, f := range files {
		if ast.IsGenerated(f) {
			continue
		}

		x.collect(f)
	}

	var decls []EnumDecl
	for _, ts := range x.types {
		if len(ts.attrs) == 0 {
			continue
		}

		decls = append(decls, x.enum(ts))
	}

	// Directives on a union variant belong to the union. A variant type is
	// reported on its own only when it is a valid enumeration and its
	// directives form a valid enumeration schema.
	variants := make(map[string]bool)
	for _, d := range decls {
		if d.Kind != KindUnion || d.Err != nil {
			continue
		}

		for _, v := range d.Variants {
			variants[v.Name] = true
		}
	}

	out := decls[:0]
	for _, d := range decls {
		if variants[d.Name] && (d.Err != nil || !enumSchema(d.Attrs)) {
			continue
		}

		out = append(out, d)
	}

	return out
}

func (x *extractor) collect(f *ast.File) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		// A lone spec inherits the declaration's doc comment.
		var outer *ast.CommentGroup
		if !gd.Lparen.IsValid() {
			outer = gd.Doc
		}

		for _, spec := range gd.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				x.types = append(x.types, typeSpec{name: s.Name, attrs: x.directives(outer, s.Doc, s.Comment)})

			case *ast.ValueSpec:
				if gd.Tok != token.CONST {
					continue
				}

				attrs := x.directives(outer, s.Doc, s.Comment)
				for _, name := range s.Names {
					if name.Name == "_" {
						continue
					}

					x.consts = append(x.consts, constSpec{name: name, attrs: attrs})
				}
			}
		}
	}
}

// directives returns the //enum: comments of the given groups in order.
func (x *extractor) directives(groups ...*ast.CommentGroup) []schema.Attr {
	var attrs []schema.Attr
	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			if !strings.HasPrefix(c.Text, DirectivePrefix) {
				continue
			}

			pos := x.fset.Position(c.Slash)
			pos.Offset += len(DirectivePrefix)
			pos.Column += len(DirectivePrefix)

			attrs = append(attrs, schema.Attr{Text: c.Text[len(DirectivePrefix):], Pos: pos})
		}
	}

	return attrs
}

func (x *extractor) enum(ts typeSpec) EnumDecl {
	pos := x.fset.Position(ts.name.Pos())
	d := EnumDecl{
		Name:     ts.name.Name,
		Exported: ts.name.IsExported(),
		Package:  x.pkg.Path(),
		PkgName:  x.pkg.Name(),
		File:     pos.Filename,
		Dir:      filepath.Dir(pos.Filename),
		Pos:      pos,
		Attrs:    ts.attrs,
	}

	unsupported := func(reason string) EnumDecl {
		d.Err = &UnsupportedError{Enum: d.Name, Reason: reason, Pos: pos}
		return d
	}

	tn, ok := x.info.Defs[ts.name].(*types.TypeName)
	if !ok {
		return unsupported("no type information")
	}

	if tn.IsAlias() {
		return unsupported("type aliases are not supported")
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return unsupported("not a named type")
	}

	if named.TypeParams().Len() > 0 {
		return unsupported("generic types are not supported")
	}

	switch u := named.Underlying().(type) {
	case *types.Basic:
		if u.Info()&(types.IsInteger|types.IsString) == 0 {
			return unsupported("underlying type must be an integer or string, got " + u.String())
		}

		d.Kind = KindConst
		d.Variants, d.Warnings = x.constVariants(named)

	case *types.Interface:
		if u.NumMethods() == 0 {
			return unsupported("union interface must declare at least one method")
		}

		d.Kind = KindUnion
		d.Variants = x.unionVariants(named, u)

	default:
		return unsupported("underlying type must be a basic type or an interface")
	}

	return d
}

// constVariants returns the constants of type named in source order.
// A constant whose value repeats an earlier variant is an alias and is
// skipped; directives on it produce a warning.
func (x *extractor) constVariants(named *types.Named) ([]VariantDecl, []Warning) {
	var (
		out      []VariantDecl
		values   []constant.Value
		warnings []Warning
	)

	for _, cs := range x.consts {
		c, ok := x.info.Defs[cs.name].(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}

		i := slices.IndexFunc(values, func(v constant.Value) bool {
			return constant.Compare(v, token.EQL, c.Val())
		})
		if i >= 0 {
			if len(cs.attrs) > 0 {
				warnings = append(warnings, Warning{
					Code: CodeAliasDirective,
					Message: fmt.Sprintf("constant %s repeats the value of %s and is not a variant; its directives are ignored",
						cs.name.Name, out[i].Name),
					Pos: cs.attrs[0].Pos,
				})
			}

			continue
		}

		values = append(values, c.Val())
		out = append(out, VariantDecl{
			Name:  cs.name.Name,
			Pos:   x.fset.Position(cs.name.Pos()),
			Attrs: cs.attrs,
		})
	}

	return out, warnings
}

// unionVariants returns the package's named types implementing iface, in
// source order.
func (x *extractor) unionVariants(named *types.Named, iface *types.Interface) []VariantDecl {
	var out []VariantDecl

	for _, ts := range x.types {
		tn, ok := x.info.Defs[ts.name].(*types.TypeName)
		if !ok || tn.IsAlias() || tn.Type() == named {
			continue
		}

		t, ok := tn.Type().(*types.Named)
		if !ok || t.TypeParams().Len() > 0 || types.IsInterface(t) {
			continue
		}

		valueImpl := types.Implements(t, iface)
		pointerImpl := types.Implements(types.NewPointer(t), iface)
		if !valueImpl && !pointerImpl {
			continue
		}

		out = append(out, VariantDecl{
			Name:        ts.name.Name,
			Payload:     !isEmptyStruct(t),
			ValueImpl:   valueImpl,
			PointerImpl: pointerImpl,
			Pos:         x.fset.Position(ts.name.Pos()),
			Attrs:       ts.attrs,
		})
	}

	return out
}

func isEmptyStruct(t types.Type) bool {
	st, ok := t.Underlying().(*types.Struct)
	return ok && st.NumFields() == 0
}

// enumSchema reports whether attrs parse as enumeration-level directives.
func enumSchema(attrs []schema.Attr) bool {
	_, err := schema.Parse(schema.Source{Attrs: attrs})
	return err == nil
}
