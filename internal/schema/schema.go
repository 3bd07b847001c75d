package schema

import (
	"fmt"
	"go/token"
	"slices"

	"github.com/go-openapi/inflect"

	"enum-generator/internal/format"
	"enum-generator/internal/match"
)

// BaseKey is the format key every accessor schema declares.
const BaseKey = "base"

// Directive heads understood on an enumeration type.
const (
	DirectiveName       = "name"
	DirectivePredicates = "predicates"
	DirectiveVariants   = "variants"
)

// Source is the raw input for one enumeration: its directives and those of
// its variants, in declaration order.
type Source struct {
	Enum     string
	Pos      token.Position
	Attrs    []Attr
	Variants []VariantSource
}

// VariantSource carries the directives attached to one variant.
type VariantSource struct {
	Name  string
	Pos   token.Position
	Attrs []Attr
}

// Pluralizer pairs a singular key with a plural key.
type Pluralizer struct {
	Singular string
	Plural   string
	Pos      token.Position
}

// Schema is the validated naming schema of one enumeration. It is built once
// by Parse and never modified afterwards.
type Schema struct {
	// Enum is the enumeration type name.
	Enum string
	// Pos is the position of the enumeration declaration.
	Pos token.Position
	// Accessors is set when the enumeration carries a name directive.
	Accessors bool
	// Predicates is set by the predicates directive.
	Predicates bool
	// Variants is set by the variants directive.
	Variants bool
	// Realization is the enumerator layout requested by the variants directive.
	Realization Realization

	base        format.Rule
	extraKeys   []string
	rules       map[string]format.Rule
	pluralizers []Pluralizer
	overrides   map[string]map[string]string
}

// Parse parses and validates the directives of one enumeration.
// Validation is eager: the first violation is returned and no schema is
// produced.
func Parse(src Source) (*Schema, error) {
	s := &Schema{
		Enum:      src.Enum,
		Pos:       src.Pos,
		rules:     make(map[string]format.Rule),
		overrides: make(map[string]map[string]string),
	}

	for _, a := range src.Attrs {
		if err := s.applyEnumAttr(a); err != nil {
			return nil, s.tag(err, "")
		}
	}

	if err := s.validate(); err != nil {
		return nil, s.tag(err, "")
	}

	for _, v := range src.Variants {
		for _, a := range v.Attrs {
			if err := s.applyVariantAttr(v.Name, a); err != nil {
				return nil, s.tag(err, v.Name)
			}
		}
	}

	return s, nil
}

// tag fills in the enumeration and variant names of err.
func (s *Schema) tag(err *SchemaError, variant string) error {
	err.Enum = s.Enum
	if err.Variant == "" {
		err.Variant = variant
	}

	return err
}

func (s *Schema) applyEnumAttr(a Attr) *SchemaError {
	t, serr := parseTerm(a)
	if serr != nil {
		return serr
	}

	switch t.ident {
	case DirectiveName:
		return s.applyName(t)
	case DirectivePredicates:
		if !t.bare() {
			return syntaxf(t.pos, "%s takes no arguments", DirectivePredicates)
		}

		s.Predicates = true

		return nil
	case DirectiveVariants:
		return s.applyVariants(t)
	default:
		return syntaxf(t.pos, "unknown directive %q (want %s, %s or %s)",
			t.ident, DirectiveName, DirectivePredicates, DirectiveVariants)
	}
}

func (s *Schema) applyName(t term) *SchemaError {
	if t.value != nil {
		return syntaxf(t.pos, `%s = "..." is only valid on a variant`, DirectiveName)
	}

	s.Accessors = true

	for _, arg := range t.args {
		switch {
		case arg.ident == BaseKey && arg.value != nil:
			r, err := parseRule(arg.value)
			if err != nil {
				return err
			}

			s.base = r

		case arg.ident == "extra" && arg.call:
			if err := s.applyExtra(arg); err != nil {
				return err
			}

		case arg.ident == "pluralizer" && arg.call:
			if err := s.applyPluralizer(arg); err != nil {
				return err
			}

		default:
			return syntaxf(arg.pos, `unexpected %q in %s(...) (want base = "...", extra(...) or pluralizer(..., ...))`,
				arg.ident, DirectiveName)
		}
	}

	return nil
}

func (s *Schema) applyExtra(t term) *SchemaError {
	for _, kv := range t.args {
		if kv.value == nil {
			return syntaxf(kv.pos, `extra(...) expects key = "format", found %q`, kv.ident)
		}

		if kv.ident == BaseKey {
			return &SchemaError{
				Kind:    KindReservedKeyName,
				Key:     kv.ident,
				Message: fmt.Sprintf("extra key %q is reserved; set the base rule with %s = \"...\"", BaseKey, BaseKey),
				Pos:     kv.pos,
			}
		}

		r, err := parseRule(kv.value)
		if err != nil {
			return err
		}

		if _, ok := s.rules[kv.ident]; !ok {
			s.extraKeys = append(s.extraKeys, kv.ident)
		}

		s.rules[kv.ident] = r
	}

	return nil
}

func (s *Schema) applyPluralizer(t term) *SchemaError {
	if len(t.args) != 2 || !t.args[0].bare() || !t.args[1].bare() {
		return syntaxf(t.pos, "pluralizer(...) expects exactly two keys")
	}

	p := Pluralizer{Singular: t.args[0].ident, Plural: t.args[1].ident, Pos: t.pos}

	i := slices.IndexFunc(s.pluralizers, func(q Pluralizer) bool { return q.Singular == p.Singular })
	if i >= 0 {
		s.pluralizers[i] = p
		return nil
	}

	s.pluralizers = append(s.pluralizers, p)

	return nil
}

func (s *Schema) applyVariants(t term) *SchemaError {
	if t.value != nil || len(t.args) > 1 {
		return syntaxf(t.pos, "%s takes at most one layout argument", DirectiveVariants)
	}

	s.Variants = true
	if len(t.args) == 0 {
		return nil
	}

	arg := t.args[0]
	if !arg.bare() {
		return syntaxf(arg.pos, "%s(...) expects array or chain", DirectiveVariants)
	}

	r, err := ParseRealization(arg.ident)
	if err != nil {
		return syntaxf(arg.pos, "%v", err)
	}

	s.Realization = r

	return nil
}

// validate runs the checks that need the merged enumeration-level schema.
func (s *Schema) validate() *SchemaError {
	if !s.Accessors {
		return nil
	}

	if !s.base.Valid() {
		return &SchemaError{
			Kind:    KindMissingBase,
			Key:     BaseKey,
			Message: fmt.Sprintf("no base rule declared; add %s(%s = %q)", DirectiveName, BaseKey, format.RuleTitleCase.Literal()),
			Pos:     s.Pos,
		}
	}

	for _, p := range s.pluralizers {
		for _, key := range []string{p.Singular, p.Plural} {
			if !s.declared(key) {
				return &SchemaError{
					Kind:    KindUnknownKey,
					Key:     key,
					Site:    SitePluralizer,
					Message: fmt.Sprintf("pluralizer(%s, %s) references undeclared key %q%s", p.Singular, p.Plural, key, match.Hint(key, s.Keys())),
					Pos:     p.Pos,
				}
			}
		}
	}

	seen := make(map[string]string)
	claim := func(name, owner string) *SchemaError {
		if prev, ok := seen[name]; ok {
			return &SchemaError{
				Kind:    KindAccessorCollision,
				Message: fmt.Sprintf("%s and %s both generate %s", prev, owner, name),
				Pos:     s.Pos,
			}
		}

		seen[name] = owner

		return nil
	}

	for _, key := range s.Keys() {
		if err := claim(AccessorName(key), fmt.Sprintf("key %q", key)); err != nil {
			err.Key = key
			return err
		}
	}

	for _, p := range s.pluralizers {
		if err := claim(PluralizerName(p.Singular), fmt.Sprintf("pluralizer(%s, %s)", p.Singular, p.Plural)); err != nil {
			err.Key = p.Singular
			return err
		}
	}

	return nil
}

func (s *Schema) applyVariantAttr(variant string, a Attr) *SchemaError {
	t, serr := parseTerm(a)
	if serr != nil {
		return serr
	}

	if t.ident != DirectiveName {
		return syntaxf(t.pos, "unknown variant directive %q (want %s)", t.ident, DirectiveName)
	}

	switch {
	case t.value != nil:
		return s.override(variant, BaseKey, t.value.value, t.pos)

	case t.call && len(t.args) > 0:
		for _, kv := range t.args {
			if kv.value == nil {
				return syntaxf(kv.pos, `%s(...) on a variant expects key = "value", found %q`, DirectiveName, kv.ident)
			}

			if err := s.override(variant, kv.ident, kv.value.value, kv.pos); err != nil {
				return err
			}
		}

		return nil

	default:
		return syntaxf(t.pos, `%s on a variant needs a value: %s = "..." or %s(key = "...")`,
			DirectiveName, DirectiveName, DirectiveName)
	}
}

func (s *Schema) override(variant, key, value string, pos token.Position) *SchemaError {
	if !s.declared(key) {
		return &SchemaError{
			Kind:    KindUnknownKey,
			Key:     key,
			Site:    SiteOverride,
			Message: fmt.Sprintf("override references undeclared key %q%s", key, match.Hint(key, s.Keys())),
			Pos:     pos,
		}
	}

	byKey := s.overrides[variant]
	if byKey == nil {
		byKey = make(map[string]string)
		s.overrides[variant] = byKey
	}

	if _, dup := byKey[key]; dup {
		return &SchemaError{
			Kind:    KindDuplicateOverride,
			Key:     key,
			Message: fmt.Sprintf("key %q is overridden more than once", key),
			Pos:     pos,
		}
	}

	byKey[key] = value

	return nil
}

func (s *Schema) declared(key string) bool {
	if key == BaseKey {
		return s.Accessors
	}

	_, ok := s.rules[key]

	return ok
}

// Keys returns the declared format keys: base first, then extra keys in the
// order they were first declared. It is empty when no accessors are requested.
func (s *Schema) Keys() []string {
	if !s.Accessors {
		return nil
	}

	return append([]string{BaseKey}, s.extraKeys...)
}

// Rule returns the format rule of key.
func (s *Schema) Rule(key string) (format.Rule, bool) {
	if key == BaseKey {
		return s.base, s.Accessors
	}

	r, ok := s.rules[key]

	return r, ok
}

// Pluralizers returns the declared pairings in declaration order.
func (s *Schema) Pluralizers() []Pluralizer {
	return slices.Clone(s.pluralizers)
}

// Override returns the explicit value of key for variant, if any.
func (s *Schema) Override(variant, key string) (string, bool) {
	v, ok := s.overrides[variant][key]
	return v, ok
}

// AccessorName returns the generated accessor name for key:
// "Name" for the base key, "Name" + the camelized key otherwise.
func AccessorName(key string) string {
	if key == BaseKey {
		return "Name"
	}

	return "Name" + inflect.Camelize(key)
}

// PluralizerName returns the generated count-dispatch accessor name for a
// pairing whose singular key is singular.
func PluralizerName(singular string) string {
	if singular == BaseKey {
		return "NamePluralized"
	}

	return AccessorName(singular) + "Pluralized"
}

func parseRule(lit *literal) (format.Rule, *SchemaError) {
	r, err := format.ParseRule(lit.value)
	if err != nil {
		return 0, &SchemaError{Kind: KindInvalidFormat, Message: err.Error(), Pos: lit.pos}
	}

	return r, nil
}

func syntaxf(pos token.Position, msg string, args ...any) *SchemaError {
	return &SchemaError{Kind: KindSyntax, Message: fmt.Sprintf(msg, args...), Pos: pos}
}
