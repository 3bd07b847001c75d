package plan

import (
	"gopkg.in/yaml.v3"

	"enum-generator/internal/schema"
)

// TableExport is the YAML form of a resolved enumeration.
type TableExport struct {
	Enum        string             `yaml:"enum"`
	Package     string             `yaml:"package"`
	Kind        string             `yaml:"kind"`
	Realization string             `yaml:"realization,omitempty"`
	Keys        []KeyExport        `yaml:"keys,omitempty"`
	Pluralizers []PluralizerExport `yaml:"pluralizers,omitempty"`
	Variants    []VariantExport    `yaml:"variants"`
}

// KeyExport describes one declared format key.
type KeyExport struct {
	Key      string `yaml:"key"`
	Rule     string `yaml:"rule"`
	Accessor string `yaml:"accessor"`
}

// PluralizerExport describes one pairing.
type PluralizerExport struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
	Accessor string `yaml:"accessor"`
}

// VariantExport holds the resolved values of one variant. Values is a
// mapping node so keys keep declaration order.
type VariantExport struct {
	Name    string    `yaml:"name"`
	Payload bool      `yaml:"payload,omitempty"`
	Values  yaml.Node `yaml:"values,omitempty"`
}

// Export converts a plan into its YAML form.
func Export(p *EnumPlan) *TableExport {
	out := &TableExport{
		Enum:    p.Decl.Name,
		Package: p.Decl.Package,
		Kind:    p.Decl.Kind.String(),
	}

	if p.Schema.Variants {
		out.Realization = p.Realization.String()
	}

	for _, k := range p.Table.keys {
		rule, _ := p.Schema.Rule(k)
		out.Keys = append(out.Keys, KeyExport{Key: k, Rule: rule.Literal(), Accessor: schema.AccessorName(k)})
	}

	for _, pl := range p.Table.plurals {
		out.Pluralizers = append(out.Pluralizers, PluralizerExport{
			Singular: pl.Singular,
			Plural:   pl.Plural,
			Accessor: schema.PluralizerName(pl.Singular),
		})
	}

	for vi, v := range p.Decl.Variants {
		ve := VariantExport{Name: v.Name, Payload: v.Payload}

		if len(p.Table.keys) > 0 {
			ve.Values = yaml.Node{Kind: yaml.MappingNode}
			for ki, k := range p.Table.keys {
				c := p.Table.cells[vi][ki]
				ve.Values.Content = append(ve.Values.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: k},
					&yaml.Node{Kind: yaml.ScalarNode, Value: c.Value, Style: yaml.DoubleQuotedStyle, LineComment: c.Source.String()},
				)
			}
		}

		out.Variants = append(out.Variants, ve)
	}

	return out
}

// ExportYAML renders the plans as a YAML stream, one document per enumeration.
func ExportYAML(plans ...*EnumPlan) ([]byte, error) {
	var docs []byte

	for i, p := range plans {
		b, err := yaml.Marshal(Export(p))
		if err != nil {
			return nil, err
		}

		if i > 0 {
			docs = append(docs, "---\n"...)
		}

		docs = append(docs, b...)
	}

	return docs, nil
}
