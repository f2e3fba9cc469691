package generator

import (
	"fmt"
	"reflect"

	"github.com/schemagen/schemagen/pkg/schema"
)

// array generates a slice whose length is uniform in [minItems, maxItems].
// maxItems defaults to minItems+10. The exactly-empty interval {0} short-
// circuits before any random draw, so the item generator is never invoked.
//
// With uniqueItems set, each candidate is checked for deep equality against
// every accepted item and regenerated on collision. Options.MaxUniqueAttempts
// bounds that loop; when exceeded the result is a ConstraintError rather
// than an indefinite hang.
func (g *Generator) array(s *schema.Schema) (any, error) {
	minItems := 0
	if s.MinItems != nil {
		minItems = *s.MinItems
	}
	maxItems := minItems + DefaultArraySpread
	if s.MaxItems != nil {
		maxItems = *s.MaxItems
	}
	if minItems == 0 && maxItems == 0 {
		return []any{}, nil
	}
	if minItems < 0 || maxItems < minItems {
		return nil, &ConstraintError{
			Message: fmt.Sprintf("invalid item count bounds [%d, %d]", minItems, maxItems),
		}
	}

	length := minItems + g.rng.Intn(maxItems-minItems+1)
	items := make([]any, 0, length)
	attempts := 0
	for len(items) < length {
		v, err := g.Generate(s.Items)
		if err != nil {
			return nil, err
		}
		if s.UniqueItems && containsValue(items, v) {
			attempts++
			if g.opts.MaxUniqueAttempts > 0 && attempts >= g.opts.MaxUniqueAttempts {
				return nil, &ConstraintError{
					Message: fmt.Sprintf(
						"could not generate %d unique items after %d attempts (%d generated); the item domain is likely too small",
						length, attempts, len(items)),
				}
			}
			continue
		}
		attempts = 0
		items = append(items, v)
	}
	return items, nil
}

// containsValue reports whether v is deep-equal to any accepted item.
// Structural equality, not identity.
func containsValue(items []any, v any) bool {
	for _, item := range items {
		if reflect.DeepEqual(item, v) {
			return true
		}
	}
	return false
}
