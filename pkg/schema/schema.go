package schema

import "strconv"

// Type constants for schema nodes.
const (
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Schema describes the permissible shape, type, and value constraints for a
// single value. A node with an unrecognized (or missing) type and no enum
// generates null rather than failing.
type Schema struct {
	// Type specifies the JSON type: integer, number, string, boolean, array, object
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Number validations (applies to number and integer types).
	// Bounds are inclusive; number generation treats Maximum as exclusive.
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// String validations
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Array validations
	MinItems    *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	Items       *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Object shape
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`

	// Enum values - generation picks one of these, overriding Type
	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Validate checks structural well-formedness of the schema tree: bound pairs
// must not be inverted, lengths and counts must be non-negative, enums must
// not be empty, and required names must be declared in properties. It does
// not validate data; it validates the schema itself.
//
// The returned error is a *ValidationResult aggregating every problem found,
// or nil if the schema is well-formed.
func (s *Schema) Validate() error {
	result := &ValidationResult{}
	s.validate("", result)
	if result.IsValid() {
		return nil
	}
	return result
}

func (s *Schema) validate(path string, result *ValidationResult) {
	if s == nil {
		return
	}

	if s.Enum != nil && len(s.Enum) == 0 {
		result.AddError(joinPath(path, "enum"), "must not be empty")
	}

	if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
		result.AddError(joinPath(path, "minimum"), "greater than maximum")
	}

	if s.MinLength != nil && *s.MinLength < 0 {
		result.AddError(joinPath(path, "minLength"), "must not be negative")
	}
	if s.MaxLength != nil && *s.MaxLength < 0 {
		result.AddError(joinPath(path, "maxLength"), "must not be negative")
	}
	if s.MinLength != nil && s.MaxLength != nil && *s.MinLength > *s.MaxLength {
		result.AddError(joinPath(path, "minLength"), "greater than maxLength")
	}

	if s.MinItems != nil && *s.MinItems < 0 {
		result.AddError(joinPath(path, "minItems"), "must not be negative")
	}
	if s.MaxItems != nil && *s.MaxItems < 0 {
		result.AddError(joinPath(path, "maxItems"), "must not be negative")
	}
	if s.MinItems != nil && s.MaxItems != nil && *s.MinItems > *s.MaxItems {
		result.AddError(joinPath(path, "minItems"), "greater than maxItems")
	}

	for _, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			result.AddError(joinPath(path, "required"), "property "+strconv.Quote(name)+" is not declared in properties")
		}
	}

	if s.Items != nil {
		s.Items.validate(joinPath(path, "items"), result)
	}
	for name, prop := range s.Properties {
		prop.validate(joinPath(path, "properties."+name), result)
	}
}

// NodeCount returns the number of schema nodes in the tree, counting this
// node, the items node, and every declared property recursively.
func (s *Schema) NodeCount() int {
	if s == nil {
		return 0
	}
	n := 1
	n += s.Items.NodeCount()
	for _, prop := range s.Properties {
		n += prop.NodeCount()
	}
	return n
}

func joinPath(base, elem string) string {
	if base == "" {
		return elem
	}
	return base + "." + elem
}
