package generator

import (
	"sort"

	"github.com/schemagen/schemagen/pkg/schema"
)

// object generates a map containing every required property and each
// remaining declared property independently with Options.OptionalProbability.
// Properties not declared in the schema never appear, even when listed in
// required.
//
// Properties are visited in sorted name order so that a seeded generator
// produces identical output across runs; the output itself is an unordered
// mapping.
func (g *Generator) object(s *schema.Schema) (any, error) {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	out := make(map[string]any, len(names))
	for _, name := range names {
		if !required[name] && g.rng.Float64() >= g.opts.OptionalProbability {
			continue
		}
		v, err := g.Generate(s.Properties[name])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}
