package plan

import (
	"log/slog"

	"enum-generator/internal/analyze"
	"enum-generator/internal/format"
	"enum-generator/internal/schema"
)

// Config holds configuration for the resolution process.
type Config struct {
	// Realization is the enumerator layout used when an enumeration does not
	// pick one. RealizationDefault means array.
	Realization schema.Realization
	// Logger receives debug output; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{Realization: schema.RealizationArray}
}

// Resolver computes resolved value tables from a schema.
type Resolver struct {
	schema *schema.Schema
}

// NewResolver creates a new Resolver.
func NewResolver(s *schema.Schema) *Resolver {
	return &Resolver{schema: s}
}

// Resolve computes the table for the given variants. Keys come from the
// schema; with no accessors requested the table has variants but no keys.
func (r *Resolver) Resolve(variants []string) *Table {
	keys := r.schema.Keys()

	t := &Table{
		enum:     r.schema.Enum,
		keys:     keys,
		variants: append([]string(nil), variants...),
		cells:    make([][]Cell, len(variants)),
		keyIdx:   make(map[string]int, len(keys)),
		varIdx:   make(map[string]int, len(variants)),
		plurals:  r.schema.Pluralizers(),
	}

	for i, k := range keys {
		t.keyIdx[k] = i
	}

	for vi, v := range variants {
		t.varIdx[v] = vi

		row := make([]Cell, len(keys))
		for ki, k := range keys {
			row[ki] = r.resolve(v, k)
		}

		t.cells[vi] = row
	}

	return t
}

// resolve applies the precedence chain to one (variant, key) pair.
func (r *Resolver) resolve(variant, key string) Cell {
	if v, ok := r.schema.Override(variant, key); ok {
		return Cell{Value: v, Source: SourceOverride}
	}

	rule, _ := r.schema.Rule(key)

	if key != schema.BaseKey {
		if base, ok := r.schema.Override(variant, schema.BaseKey); ok {
			return Cell{Value: format.Transform(rule, base), Source: SourceBaseOverride}
		}
	}

	return Cell{Value: format.Transform(rule, variant), Source: SourceIdentifier}
}

// Build runs the pipeline for one declaration: parse its directives and
// resolve the table.
func Build(decl *analyze.EnumDecl, cfg Config) (*EnumPlan, error) {
	if decl.Err != nil {
		return nil, decl.Err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s, err := schema.Parse(decl.Source())
	if err != nil {
		return nil, err
	}

	table := NewResolver(s).Resolve(decl.VariantNames())

	p := &EnumPlan{
		Decl:        decl,
		Schema:      s,
		Table:       table,
		Realization: s.Realization.Or(cfg.Realization.Or(schema.RealizationArray)),
	}

	logger.Debug("resolved enumeration",
		"enum", decl.ID().String(),
		"variants", len(table.variants),
		"keys", len(table.keys),
		"realization", p.Realization.String())

	return p, nil
}
