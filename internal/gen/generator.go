package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"enum-generator/internal/analyze"
	"enum-generator/internal/format"
	"enum-generator/internal/plan"
	"enum-generator/internal/schema"
)

// Header is the comment placed at the top of every generated file.
const Header = "Code generated by enum-generator. DO NOT EDIT."

// DefaultSuffix is appended to the snake-cased type name to form the
// output file name.
const DefaultSuffix = "_enum.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is the output file name suffix.
	Suffix string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           DefaultSuffix,
		GenerateComments: true,
	}
}

// Generator generates Go code from resolved enumeration plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the declaring package.
	Dir string
	// Filename is the name of the file (e.g., "words_enum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the output file name for an enumeration type.
func (g *Generator) Filename(typeName string) string {
	return format.SnakeCase(typeName) + g.config.Suffix
}

// Generate renders the accessors, predicates and enumerator requested by
// the plan into one file.
func (g *Generator) Generate(p *plan.EnumPlan) (*GeneratedFile, error) {
	e := newEmitter(p, g.config.GenerateComments)

	if p.Schema.Variants {
		if err := checkShape(p.Decl); err != nil {
			return nil, err
		}
	}

	f := jen.NewFilePathName(p.Decl.Package, p.Decl.PkgName)
	f.HeaderComment(Header)

	if p.Schema.Accessors {
		e.accessors(f)
	}

	if p.Schema.Predicates {
		if err := e.predicates(f); err != nil {
			return nil, err
		}
	}

	if p.Schema.Variants {
		e.variants(f)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", p.Decl.Name, err)
	}

	return &GeneratedFile{
		Dir:      p.Decl.Dir,
		Filename: g.Filename(p.Decl.Name),
		Content:  buf.Bytes(),
	}, nil
}

// checkShape verifies that every variant can be listed.
func checkShape(d *analyze.EnumDecl) error {
	if len(d.Variants) == 0 {
		return &schema.ShapeError{Kind: schema.KindEmptyEnumeration, Enum: d.Name, Pos: d.Pos}
	}

	for _, v := range d.Variants {
		if v.Payload {
			return &schema.ShapeError{Kind: schema.KindNonUnitVariant, Enum: d.Name, Variant: v.Name, Pos: v.Pos}
		}
	}

	return nil
}

// emitter holds the per-enumeration naming state shared by the emitters.
type emitter struct {
	p        *plan.EnumPlan
	decl     *analyze.EnumDecl
	union    bool
	recv     string
	loc      locals
	comments bool
}

// locals are the parameter and variable names used inside generated
// functions. None of them equals the type name or a variant name, so a
// variant referenced in a case or comparison is never shadowed.
type locals struct {
	v     string // union parameter, successor argument, yielded value
	n     string // pluralizer count
	it    string // producer receiver and loop variable
	ok    string
	zero  string
	yield string
}

func newEmitter(p *plan.EnumPlan, comments bool) *emitter {
	taken := map[string]bool{p.Decl.Name: true}
	for _, v := range p.Decl.Variants {
		taken[v.Name] = true
	}

	free := func(base string) string {
		name := base
		for i := 1; taken[name]; i++ {
			name = base + strconv.Itoa(i)
		}
		taken[name] = true

		return name
	}

	return &emitter{
		p:     p,
		decl:  p.Decl,
		union: p.Decl.Kind == analyze.KindUnion,
		recv:  free(receiverName(p.Decl.Name)),
		loc: locals{
			v:     free("v"),
			n:     free("n"),
			it:    free("it"),
			ok:    free("ok"),
			zero:  free("zero"),
			yield: free("yield"),
		},
		comments: comments,
	}
}

// receiverName returns the lowercased first letter of the type name.
// "n" is taken by the pluralizer count parameter.
func receiverName(typ string) string {
	r, _ := utf8.DecodeRuneInString(typ)
	r = unicode.ToLower(r)

	switch {
	case r == 'n':
		return "x"
	case r == '_' || !unicode.IsLetter(r):
		return "v"
	default:
		return string(r)
	}
}

// ident applies the enumeration's exportedness to a package-level name.
func (e *emitter) ident(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if e.decl.Exported {
		return string(unicode.ToUpper(r)) + name[size:]
	}

	return string(unicode.ToLower(r)) + name[size:]
}

// typePrefixed returns a package-level name built from the type name,
// e.g. "ShapeName" or "shapeName".
func (e *emitter) typePrefixed(suffix string) string {
	return e.ident(upperFirst(e.decl.Name) + suffix)
}

// hidden returns a package-level helper name that never collides with
// the public surface, e.g. "_WordsVariants".
func (e *emitter) hidden(suffix string) string {
	return "_" + e.decl.Name + suffix
}

// comment emits a doc comment when comments are enabled.
func (e *emitter) comment(f *jen.File, msg string, args ...any) {
	if e.comments {
		f.Commentf(msg, args...)
	}
}

// subject is the variable that holds the enumeration value inside
// generated functions.
func (e *emitter) subject() string {
	if e.union {
		return e.loc.v
	}

	return e.recv
}

// signature starts a function over the enumeration: a value-receiver
// method for constant enumerations, a type-prefixed function for unions.
func (e *emitter) signature(name string, params ...jen.Code) *jen.Statement {
	if !e.union {
		return jen.Func().Params(jen.Id(e.recv).Id(e.decl.Name)).Id(name).Params(params...)
	}

	return jen.Func().Id(e.typePrefixed(name)).Params(append([]jen.Code{jen.Id(e.loc.v).Id(e.decl.Name)}, params...)...)
}

// funcName is the declared name of a function produced by signature.
func (e *emitter) funcName(name string) string {
	if !e.union {
		return name
	}

	return e.typePrefixed(name)
}

// call invokes a function produced by signature on the current subject.
func (e *emitter) call(name string, args ...jen.Code) *jen.Statement {
	if !e.union {
		return jen.Id(e.recv).Dot(name).Call(args...)
	}

	return jen.Id(e.typePrefixed(name)).Call(append([]jen.Code{jen.Id(e.loc.v)}, args...)...)
}

// switchOn emits a switch over the variant tag of the named variable with
// one case per variant.
func (e *emitter) switchOn(subject string, body func(g *jen.Group, i int, v analyze.VariantDecl)) *jen.Statement {
	tag := jen.Id(subject)
	if e.union {
		tag = tag.Assert(jen.Type())
	}

	return jen.Switch(tag).BlockFunc(func(g *jen.Group) {
		for i, v := range e.decl.Variants {
			g.Case(e.caseOf(v)...).BlockFunc(func(g *jen.Group) {
				body(g, i, v)
			})
		}
	})
}

// caseOf returns the case expressions matching variant v.
func (e *emitter) caseOf(v analyze.VariantDecl) []jen.Code {
	if !e.union {
		return []jen.Code{jen.Id(v.Name)}
	}

	var c []jen.Code
	if v.ValueImpl {
		c = append(c, jen.Id(v.Name))
	}

	if v.PointerImpl {
		c = append(c, jen.Op("*").Id(v.Name))
	}

	return c
}

// value constructs variant v as a value of the enumeration type.
func (e *emitter) value(v analyze.VariantDecl) *jen.Statement {
	switch {
	case !e.union:
		return jen.Id(v.Name)
	case v.ValueImpl:
		return jen.Id(v.Name).Values()
	default:
		return jen.Op("&").Id(v.Name).Values()
	}
}

// zeroReturn returns the zero enumeration value and false.
func (e *emitter) zeroReturn(g *jen.Group) {
	g.Var().Id(e.loc.zero).Id(e.decl.Name)
	g.Return(jen.Id(e.loc.zero), jen.False())
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
