package schema

import (
	"fmt"
	"strings"
)

// SchemaError represents a single structural problem in a schema document.
type SchemaError struct {
	// Path locates the problem, e.g. "properties.user.items.minLength".
	Path string

	// Message is a human-readable description.
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult aggregates all structural errors found in a schema.
// It implements error so loaders can return it directly.
type ValidationResult struct {
	Errors []*SchemaError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// AddError adds a validation error.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, &SchemaError{Path: path, Message: message})
}

// Error returns all problems joined one per line.
func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}
