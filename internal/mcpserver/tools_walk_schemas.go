package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/openapi"
)

type walkSchemasInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OpenAPI 3.0.x document to walk"`
	Variant    string    `json:"variant,omitempty"     jsonschema:"Filter by discriminated variant (e.g. ObjectValue\\, RefValue\\, UnionSchemaTypeOne); case-insensitive"`
	Name       string    `json:"name,omitempty"        jsonschema:"Filter by owning component schema name (exact match\\, or glob with * and ?)"`
	Component  bool      `json:"component,omitempty"   jsonschema:"Only show the components.schemas entries themselves\\, not nested schemas"`
	PathPrefix string    `json:"path_prefix,omitempty" jsonschema:"Only show schemas whose path starts with this prefix (e.g. paths[\"/pets\"])"`
	GroupBy    string    `json:"group_by,omitempty"    jsonschema:"Group results and return counts instead of individual items. Values: variant\\, location"`
	Limit      int       `json:"limit,omitempty"       jsonschema:"Maximum results (default 100)"`
	Offset     int       `json:"offset,omitempty"      jsonschema:"Skip the first N results (for pagination)"`
}

type schemaSummary struct {
	Path          string   `json:"path"`
	Variant       string   `json:"variant"`
	Type          string   `json:"type,omitempty"`
	Ref           string   `json:"ref,omitempty"`
	Owner         string   `json:"owner,omitempty"`
	IsComponent   bool     `json:"is_component"`
	PropertyCount int      `json:"property_count,omitempty"`
	Required      []string `json:"required,omitempty"`
}

type walkSchemasOutput struct {
	Total     int             `json:"total"`
	Matched   int             `json:"matched"`
	Returned  int             `json:"returned"`
	Summaries []schemaSummary `json:"summaries,omitempty"`
	Groups    []groupCount    `json:"groups,omitempty"`
}

func handleWalkSchemas(_ context.Context, _ *mcp.CallToolRequest, input walkSchemasInput) (*mcp.CallToolResult, walkSchemasOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"variant", "location"}); err != nil {
		return errResult(err), walkSchemasOutput{}, nil
	}
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), walkSchemasOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), walkSchemasOutput{}, nil
	}

	all := collectSchemas(result.Document)
	filtered := make([]schemaSummary, 0, len(all))
	for _, s := range all {
		if matchSchema(s, input) {
			filtered = append(filtered, s)
		}
	}

	output := walkSchemasOutput{Total: len(all), Matched: len(filtered)}
	if input.GroupBy != "" {
		groups := groupAndSort(filtered, func(s schemaSummary) string {
			if strings.EqualFold(input.GroupBy, "variant") {
				return s.Variant
			}
			return schemaLocation(s.Path)
		})
		output.Groups = paginate(groups, input.Offset, input.Limit)
		output.Returned = len(output.Groups)
		return nil, output, nil
	}

	output.Summaries = paginate(filtered, input.Offset, input.Limit)
	output.Returned = len(output.Summaries)
	return nil, output, nil
}

func matchSchema(s schemaSummary, input walkSchemasInput) bool {
	if input.Variant != "" && !strings.EqualFold(input.Variant, s.Variant) {
		return false
	}
	if input.Component && !s.IsComponent {
		return false
	}
	if input.Name != "" && (s.Owner == "" || !matchGlob(input.Name, s.Owner)) {
		return false
	}
	if input.PathPrefix != "" && !strings.HasPrefix(s.Path, input.PathPrefix) {
		return false
	}
	return true
}

// collectSchemas summarizes every schema of doc in walk order. Schemas
// nested inside a component schema carry that component's name as Owner.
func collectSchemas(doc *openapi.OpenAPI) []schemaSummary {
	roots := make(map[string]string, len(doc.Components.Schemas))
	pb := pathutil.Get()
	defer pathutil.Put(pb)
	for name := range doc.Components.Schemas {
		pb.Reset()
		pb.Push("components")
		pb.Push("schemas")
		pb.PushKey(name)
		roots[pb.String()] = name
	}

	var out []schemaSummary
	var ownerPath, owner string
	openapi.WalkSchemas(doc, func(schema openapi.SchemaValue, path string) openapi.Action {
		s := summarizeSchema(schema, path)
		if name, ok := roots[path]; ok {
			ownerPath, owner = path, name
			s.IsComponent = true
		} else if owner != "" && !within(path, ownerPath) {
			ownerPath, owner = "", ""
		}
		s.Owner = owner
		out = append(out, s)
		return openapi.Continue
	})
	return out
}

// within reports whether path is root or lies beneath it.
func within(path, root string) bool {
	if !strings.HasPrefix(path, root) {
		return false
	}
	rest := path[len(root):]
	return rest == "" || rest[0] == '.' || rest[0] == '['
}

func summarizeSchema(schema openapi.SchemaValue, path string) schemaSummary {
	s := schemaSummary{Path: path, Variant: openapi.VariantName(schema)}
	if k, ok := schema.(interface{ Kind() string }); ok {
		s.Type = k.Kind()
	}
	switch v := schema.(type) {
	case openapi.RefValue:
		s.Ref = v.Ref.String()
	case openapi.ObjectValue:
		s.PropertyCount = len(v.Properties)
		s.Required = v.Required
	case openapi.InlinedObjectValue:
		s.PropertyCount = len(v.Properties)
		s.Required = v.Required
	}
	return s
}

// schemaLocation returns the section of the document a schema path lies
// in: "paths" or "components.<collection>".
func schemaLocation(path string) string {
	if rest, ok := strings.CutPrefix(path, "components."); ok {
		if i := strings.IndexAny(rest, ".["); i >= 0 {
			rest = rest[:i]
		}
		return fmt.Sprintf("components.%s", rest)
	}
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}
