package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"enum-generator/internal/analyze"
	"enum-generator/internal/format"
	"enum-generator/internal/schema"
)

// PredicateName returns the generated tag-test name of a variant.
func PredicateName(variant string) string {
	return "Is" + format.PascalCase(variant)
}

// predicates emits one tag test per variant.
func (e *emitter) predicates(f *jen.File) error {
	seen := make(map[string]string, len(e.decl.Variants))
	for _, v := range e.decl.Variants {
		name := PredicateName(v.Name)
		if prev, ok := seen[name]; ok {
			return &schema.SchemaError{
				Kind:    schema.KindAccessorCollision,
				Enum:    e.decl.Name,
				Variant: v.Name,
				Message: fmt.Sprintf("variants %s and %s both generate %s", prev, v.Name, name),
				Pos:     v.Pos,
			}
		}

		seen[name] = v.Name
	}

	for _, v := range e.decl.Variants {
		e.predicate(f, v)
	}

	return nil
}

func (e *emitter) predicate(f *jen.File, v analyze.VariantDecl) {
	name := PredicateName(v.Name)

	e.comment(f, "%s reports whether %s is %s.", e.funcName(name), e.subject(), v.Name)

	if !e.union {
		f.Add(e.signature(name).Bool().Block(
			jen.Return(jen.Id(e.recv).Op("==").Id(v.Name)),
		))
		f.Line()

		return
	}

	f.Add(e.signature(name).Bool().Block(
		jen.Switch(jen.Id(e.loc.v).Assert(jen.Type())).Block(
			jen.Case(e.caseOf(v)...).Block(jen.Return(jen.True())),
		),
		jen.Line(),
		jen.Return(jen.False()),
	))
	f.Line()
}
