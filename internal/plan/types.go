package plan

import (
	"slices"

	"enum-generator/internal/analyze"
	"enum-generator/internal/schema"
)

// EnumPlan is the final output of the resolution pipeline for one
// enumeration. It contains everything needed for code generation.
type EnumPlan struct {
	// Decl is the analyzed declaration.
	Decl *analyze.EnumDecl
	// Schema is the validated naming schema.
	Schema *schema.Schema
	// Table holds the resolved accessor values.
	Table *Table
	// Realization is the effective enumerator layout.
	Realization schema.Realization
}

// ValueSource records which resolution step produced a value.
type ValueSource int

const (
	// SourceOverride is an explicit override for the (variant, key) pair.
	SourceOverride ValueSource = iota
	// SourceBaseOverride is the key's rule applied to the variant's base override.
	SourceBaseOverride
	// SourceIdentifier is the key's rule applied to the variant identifier.
	SourceIdentifier
)

// String returns a human-readable representation of the ValueSource.
func (s ValueSource) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceBaseOverride:
		return "base_override"
	case SourceIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Cell is one resolved value.
type Cell struct {
	Value  string
	Source ValueSource
}

// Table is the resolved value table of one enumeration: exactly one value
// per declared key per variant. It is computed once and never modified.
type Table struct {
	enum     string
	keys     []string
	variants []string
	cells    [][]Cell // [variant][key]
	keyIdx   map[string]int
	varIdx   map[string]int
	plurals  []schema.Pluralizer
}

// Enum returns the enumeration name.
func (t *Table) Enum() string {
	return t.enum
}

// Keys returns the declared keys, base first.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Variants returns the variant identifiers in declaration order.
func (t *Table) Variants() []string {
	return slices.Clone(t.variants)
}

// Pluralizers returns the pairings the table was resolved with.
func (t *Table) Pluralizers() []schema.Pluralizer {
	return slices.Clone(t.plurals)
}

// Cell returns the resolved cell for (variant, key).
func (t *Table) Cell(variant, key string) (Cell, bool) {
	vi, ok := t.varIdx[variant]
	if !ok {
		return Cell{}, false
	}

	ki, ok := t.keyIdx[key]
	if !ok {
		return Cell{}, false
	}

	return t.cells[vi][ki], true
}

// Value returns the resolved string for (variant, key).
func (t *Table) Value(variant, key string) (string, bool) {
	c, ok := t.Cell(variant, key)
	return c.Value, ok
}

// Row returns the values of variant in key order.
func (t *Table) Row(variant string) []string {
	vi, ok := t.varIdx[variant]
	if !ok {
		return nil
	}

	row := make([]string, len(t.keys))
	for i, c := range t.cells[vi] {
		row[i] = c.Value
	}

	return row
}

// Column returns the values of key in variant order.
func (t *Table) Column(key string) []string {
	ki, ok := t.keyIdx[key]
	if !ok {
		return nil
	}

	col := make([]string, len(t.variants))
	for i := range t.variants {
		col[i] = t.cells[i][ki].Value
	}

	return col
}
