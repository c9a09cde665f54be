package jsonschema

// Draft is the dialect URI emitted on exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Schema      string  `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Ref         string  `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string  `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string  `json:"format,omitempty" yaml:"format,omitempty"`
	Enum        []any   `json:"enum,omitempty" yaml:"enum,omitempty"`
	Not         *Schema `json:"not,omitempty" yaml:"not,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`

	// Definitions referenced through "#/$defs/<name>".
	Defs map[string]*Schema `json:"$defs,omitempty" yaml:"$defs,omitempty"`
}

// DefRef returns the local reference to a definition.
func DefRef(name string) string { return "#/$defs/" + name }
