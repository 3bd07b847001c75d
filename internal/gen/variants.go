package gen

import (
	"github.com/dave/jennifer/jen"

	"enum-generator/internal/analyze"
	"enum-generator/internal/schema"
)

// variants emits the count constant, the ordered list and the sequence
// producer in the plan's realization.
func (e *emitter) variants(f *jen.File) {
	typ := e.decl.Name
	count := e.typePrefixed("VariantCount")
	list := e.typePrefixed("Variants")
	iterType := e.typePrefixed("Iter")
	newIter := e.ident("New" + upperFirst(typ) + "Iter")
	all := e.ident("All" + upperFirst(typ))

	e.comment(f, "%s is the number of %s variants.", count, typ)
	f.Const().Id(count).Op("=").Lit(len(e.decl.Variants))
	f.Line()

	values := make([]jen.Code, len(e.decl.Variants))
	for i, v := range e.decl.Variants {
		values[i] = e.value(v)
	}

	if e.p.Realization == schema.RealizationChain {
		e.chain(f, count, list, iterType, newIter, values)
	} else {
		e.array(f, count, list, iterType, newIter, values)
	}

	e.comment(f, "%s returns a sequence over every %s variant in declaration order.", all, typ)
	e.comment(f, "Each range over it starts from the first variant.")
	f.Func().Id(all).Params().Qual("iter", "Seq").Types(jen.Id(typ)).Block(
		jen.Return(jen.Func().Params(jen.Id(e.loc.yield).Func().Params(jen.Id(typ)).Bool()).Block(
			jen.Id(e.loc.it).Op(":=").Id(newIter).Call(),
			jen.For(
				jen.List(jen.Id(e.loc.v), jen.Id(e.loc.ok)).Op(":=").Id(e.loc.it).Dot("Next").Call(),
				jen.Id(e.loc.ok),
				jen.List(jen.Id(e.loc.v), jen.Id(e.loc.ok)).Op("=").Id(e.loc.it).Dot("Next").Call(),
			).Block(
				jen.If(jen.Op("!").Id(e.loc.yield).Call(jen.Id(e.loc.v))).Block(
					jen.Return(),
				),
			),
		)),
	)
}

// array materializes the variants in a package-level array; the producer
// is an index into it.
func (e *emitter) array(f *jen.File, count, list, iterType, newIter string, values []jen.Code) {
	typ := e.decl.Name
	table := e.hidden("Variants")

	f.Var().Id(table).Op("=").Index(jen.Id(count)).Id(typ).Values(values...)
	f.Line()

	e.comment(f, "%s returns every %s variant in declaration order.", list, typ)
	f.Func().Id(list).Params().Index(jen.Id(count)).Id(typ).Block(
		jen.Return(jen.Id(table)),
	)
	f.Line()

	e.comment(f, "%s yields %s variants in declaration order.", iterType, typ)
	f.Type().Id(iterType).Struct(
		jen.Id("pos").Int(),
	)
	f.Line()

	e.comment(f, "%s returns a producer positioned at the first variant.", newIter)
	f.Func().Id(newIter).Params().Op("*").Id(iterType).Block(
		jen.Return(jen.Op("&").Id(iterType).Values()),
	)
	f.Line()

	e.comment(f, "Next returns the next variant, or false once every variant has been yielded.")
	f.Func().Params(jen.Id(e.loc.it).Op("*").Id(iterType)).Id("Next").Params().Params(jen.Id(typ), jen.Bool()).BlockFunc(func(g *jen.Group) {
		g.If(jen.Id(e.loc.it).Dot("pos").Op(">=").Id(count)).BlockFunc(e.zeroReturn)
		g.Line()
		g.Id(e.loc.v).Op(":=").Id(table).Index(jen.Id(e.loc.it).Dot("pos"))
		g.Id(e.loc.it).Dot("pos").Op("++")
		g.Line()
		g.Return(jen.Id(e.loc.v), jen.True())
	})
	f.Line()

	e.comment(f, "Len returns the number of variants not yet yielded.")
	f.Func().Params(jen.Id(e.loc.it).Op("*").Id(iterType)).Id("Len").Params().Int().Block(
		jen.Return(jen.Id(count).Op("-").Id(e.loc.it).Dot("pos")),
	)
	f.Line()
}

// chain walks a generated successor function. The producer holds the
// current variant until the successor reports the end, after which it
// stays exhausted.
func (e *emitter) chain(f *jen.File, count, list, iterType, newIter string, values []jen.Code) {
	typ := e.decl.Name
	next := e.hidden("Next")
	ordinal := e.hidden("Ordinal")
	variants := e.decl.Variants

	e.comment(f, "%s returns every %s variant in declaration order.", list, typ)
	f.Func().Id(list).Params().Index(jen.Id(count)).Id(typ).Block(
		jen.Return(jen.Index(jen.Id(count)).Id(typ).Values(values...)),
	)
	f.Line()

	f.Func().Id(next).Params(jen.Id(e.loc.v).Id(typ)).Params(jen.Id(typ), jen.Bool()).BlockFunc(func(g *jen.Group) {
		g.Add(e.switchOn(e.loc.v, func(g *jen.Group, i int, _ analyze.VariantDecl) {
			if i+1 < len(variants) {
				g.Return(e.value(variants[i+1]), jen.True())
			}
		}))
		g.Line()
		e.zeroReturn(g)
	})
	f.Line()

	f.Func().Id(ordinal).Params(jen.Id(e.loc.v).Id(typ)).Int().BlockFunc(func(g *jen.Group) {
		g.Add(e.switchOn(e.loc.v, func(g *jen.Group, i int, _ analyze.VariantDecl) {
			g.Return(jen.Lit(i))
		}))
		g.Line()
		g.Return(jen.Id(count))
	})
	f.Line()

	e.comment(f, "%s yields %s variants in declaration order.", iterType, typ)
	f.Type().Id(iterType).Struct(
		jen.Id("cur").Id(typ),
		jen.Id("live").Bool(),
	)
	f.Line()

	e.comment(f, "%s returns a producer positioned at the first variant.", newIter)
	f.Func().Id(newIter).Params().Op("*").Id(iterType).Block(
		jen.Return(jen.Op("&").Id(iterType).Values(jen.Dict{
			jen.Id("cur"):  values[0],
			jen.Id("live"): jen.True(),
		})),
	)
	f.Line()

	e.comment(f, "Next returns the next variant, or false once every variant has been yielded.")
	f.Func().Params(jen.Id(e.loc.it).Op("*").Id(iterType)).Id("Next").Params().Params(jen.Id(typ), jen.Bool()).BlockFunc(func(g *jen.Group) {
		g.If(jen.Op("!").Id(e.loc.it).Dot("live")).BlockFunc(e.zeroReturn)
		g.Line()
		g.Id(e.loc.v).Op(":=").Id(e.loc.it).Dot("cur")
		g.List(jen.Id(e.loc.it).Dot("cur"), jen.Id(e.loc.it).Dot("live")).Op("=").Id(next).Call(jen.Id(e.loc.v))
		g.Line()
		g.Return(jen.Id(e.loc.v), jen.True())
	})
	f.Line()

	e.comment(f, "Len returns the number of variants not yet yielded.")
	f.Func().Params(jen.Id(e.loc.it).Op("*").Id(iterType)).Id("Len").Params().Int().Block(
		jen.If(jen.Op("!").Id(e.loc.it).Dot("live")).Block(
			jen.Return(jen.Lit(0)),
		),
		jen.Line(),
		jen.Return(jen.Id(count).Op("-").Id(ordinal).Call(jen.Id(e.loc.it).Dot("cur"))),
	)
	f.Line()
}
