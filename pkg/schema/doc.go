// Package schema defines the typed schema node model used by the generator.
// It supports field-level constraints for the six JSON kinds (integer,
// number, string, boolean, array, object), enum values, and nested nodes,
// plus loading schema documents from JSON or YAML files.

package schema
