package parser

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oastype/openapi"
)

// MarshalJSON serializes doc with openapi.DefaultCodecs and renders it as
// indented JSON. Object keys are sorted, so the output is stable.
func MarshalJSON(doc *openapi.OpenAPI) ([]byte, error) {
	return MarshalJSONWithCodecs(nil, doc)
}

// MarshalYAML serializes doc with openapi.DefaultCodecs and renders it as
// YAML. Mapping keys are sorted, so the output is stable.
func MarshalYAML(doc *openapi.OpenAPI) ([]byte, error) {
	return MarshalYAMLWithCodecs(nil, doc)
}

// MarshalJSONWithCodecs is MarshalJSON for a document decoded with custom
// codecs, typically ParseResult.Codecs. A nil c means openapi.DefaultCodecs.
func MarshalJSONWithCodecs(c *openapi.Codecs, doc *openapi.OpenAPI) ([]byte, error) {
	tree, err := serialize(c, doc)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// MarshalYAMLWithCodecs is MarshalYAML for a document decoded with custom
// codecs, typically ParseResult.Codecs. A nil c means openapi.DefaultCodecs.
func MarshalYAMLWithCodecs(c *openapi.Codecs, doc *openapi.OpenAPI) ([]byte, error) {
	tree, err := serialize(c, doc)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
	}
	return data, nil
}

func serialize(c *openapi.Codecs, doc *openapi.OpenAPI) (map[string]any, error) {
	if c == nil {
		c = openapi.DefaultCodecs()
	}
	tree, err := c.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return tree, nil
}
