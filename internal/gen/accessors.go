package gen

import (
	"github.com/dave/jennifer/jen"

	"enum-generator/internal/analyze"
	"enum-generator/internal/schema"
)

// accessors emits one accessor per declared key and one dispatcher per
// pluralizer pairing.
func (e *emitter) accessors(f *jen.File) {
	for _, key := range e.p.Table.Keys() {
		e.accessor(f, key)
	}

	for _, pl := range e.p.Table.Pluralizers() {
		e.pluralizer(f, pl)
	}
}

// accessor emits an exhaustive switch returning the resolved value of key.
func (e *emitter) accessor(f *jen.File, key string) {
	name := schema.AccessorName(key)
	rule, _ := e.p.Schema.Rule(key)
	values := e.p.Table.Column(key)

	if key == schema.BaseKey {
		e.comment(f, "%s returns the display name of %s (%s).", e.funcName(name), e.subject(), rule.Literal())
	} else {
		e.comment(f, "%s returns the %q name of %s (%s).", e.funcName(name), key, e.subject(), rule.Literal())
	}

	f.Add(e.signature(name).String().BlockFunc(func(g *jen.Group) {
		if len(values) > 0 {
			g.Add(e.switchOn(e.subject(), func(g *jen.Group, i int, _ analyze.VariantDecl) {
				g.Return(jen.Lit(values[i]))
			}))
		}

		g.Return(jen.Lit(""))
	}))
	f.Line()
}

// pluralizer emits the count dispatcher for one pairing: the singular
// accessor when n is 1, the plural accessor for every other count.
func (e *emitter) pluralizer(f *jen.File, pl schema.Pluralizer) {
	name := schema.PluralizerName(pl.Singular)
	singular := schema.AccessorName(pl.Singular)
	plural := schema.AccessorName(pl.Plural)

	e.comment(f, "%s returns %s when n is 1 and %s otherwise.", e.funcName(name), e.funcName(singular), e.funcName(plural))

	f.Add(e.signature(name, jen.Id(e.loc.n).Int()).String().Block(
		jen.If(jen.Id(e.loc.n).Op("==").Lit(1)).Block(
			jen.Return(e.call(singular)),
		),
		jen.Line(),
		jen.Return(e.call(plural)),
	))
	f.Line()
}
