package openapi

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/erraggy/oastype/coerce"
)

// ParseSpec decodes a generic document tree into an OpenAPI document using
// DefaultCodecs. On failure the document is nil and the error carries every
// deviation as *oaserrors.ParseError values; use oaserrors.Flatten to list
// them.
func ParseSpec(raw any) (*OpenAPI, error) {
	return DefaultCodecs().Parse(raw)
}

// SerializeSpec encodes doc into a generic document tree using
// DefaultCodecs. It is the inverse of ParseSpec.
func SerializeSpec(doc *OpenAPI) (map[string]any, error) {
	return DefaultCodecs().Serialize(doc)
}

// Parse decodes a generic document tree into an OpenAPI document.
func (c *Codecs) Parse(raw any) (*OpenAPI, error) {
	doc, err := coerce.Decode[OpenAPI](c.Document, raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	return &doc, nil
}

// Serialize encodes doc into a generic document tree.
func (c *Codecs) Serialize(doc *OpenAPI) (map[string]any, error) {
	if doc == nil {
		return nil, fmt.Errorf("openapi: nil document")
	}
	w, err := c.Document.Encode(*doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	m, ok := w.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("openapi: document encoded to %T", w)
	}
	return m, nil
}

var equalOpts = cmp.Options{cmpopts.EquateEmpty()}

// Equal reports whether a and b are structurally equal. Nil and empty
// collections compare equal.
func Equal(a, b *OpenAPI) bool {
	return cmp.Equal(a, b, equalOpts)
}

// Diff returns a human-readable report of the differences between a and b,
// or "" when they are equal.
func Diff(a, b *OpenAPI) string {
	return cmp.Diff(a, b, equalOpts)
}

// RequiredViolation is a name listed in a schema's "required" set that is
// not one of its properties.
type RequiredViolation struct {
	Path string // Location of the schema
	Name string // The undeclared property name
}

func (v RequiredViolation) String() string {
	return fmt.Sprintf("%s: required property %q is not declared", v.Path, v.Name)
}

// UndeclaredRequired reports every required name that does not appear in
// the properties of its object schema, in WalkSchemas order. Parsing never
// enforces this.
func UndeclaredRequired(doc *OpenAPI) []RequiredViolation {
	var out []RequiredViolation
	check := func(path string, props map[string]SchemaValue, required []string) {
		for _, name := range required {
			if _, ok := props[name]; !ok {
				out = append(out, RequiredViolation{Path: path, Name: name})
			}
		}
	}
	WalkSchemas(doc, func(s SchemaValue, path string) Action {
		switch v := s.(type) {
		case ObjectValue:
			check(path, v.Properties, v.Required)
		case InlinedObjectValue:
			check(path, v.Properties, v.Required)
		}
		return Continue
	})
	return out
}
