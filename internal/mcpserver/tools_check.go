package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastype/oaserrors"
	"github.com/erraggy/oastype/openapi"
)

type checkInput struct {
	Spec      specInput `json:"spec"                jsonschema:"The OpenAPI 3.0.x document to check"`
	Roundtrip bool      `json:"roundtrip,omitempty" jsonschema:"Also serialize and re-parse the document and report any difference"`
	Offset    int       `json:"offset,omitempty"    jsonschema:"Skip the first N errors (for pagination)"`
	Limit     int       `json:"limit,omitempty"     jsonschema:"Maximum errors to return (default 100)"`
}

type checkError struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type checkOutput struct {
	Valid              bool         `json:"valid"`
	Format             string       `json:"format,omitempty"`
	OpenAPI            string       `json:"openapi,omitempty"`
	Title              string       `json:"title,omitempty"`
	Version            string       `json:"version,omitempty"`
	PathCount          int          `json:"path_count"`
	OperationCount     int          `json:"operation_count"`
	SchemaCount        int          `json:"schema_count"`
	SchemaNodes        int          `json:"schema_nodes"`
	ErrorCount         int          `json:"error_count"`
	Returned           int          `json:"returned"`
	Errors             []checkError `json:"errors,omitempty"`
	Findings           []string     `json:"findings,omitempty"`
	Roundtrip          string       `json:"roundtrip,omitempty"`
	RoundtripDiff      string       `json:"roundtrip_diff,omitempty"`
}

// handleCheck parses a document and reports either its summary or every
// decode failure. A document that fails to decode is a result, not a tool
// error; unreadable or malformed input is a tool error.
func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		if !errors.Is(err, oaserrors.ErrParse) {
			return errResult(err), checkOutput{}, nil
		}
		all := oaserrors.Flatten(err)
		page := paginate(all, input.Offset, input.Limit)
		output := checkOutput{
			ErrorCount: len(all),
			Returned:   len(page),
			Errors:     make([]checkError, 0, len(page)),
		}
		for _, pe := range page {
			output.Errors = append(output.Errors, checkError{
				Path:    pe.Path,
				Kind:    pe.Kind.String(),
				Message: pe.Message,
				Detail:  pe.Detail(),
			})
		}
		return nil, output, nil
	}

	doc := result.Document
	output := checkOutput{
		Valid:          true,
		Format:         string(result.SourceFormat),
		OpenAPI:        string(doc.OpenAPI),
		Title:          doc.Info.Title,
		Version:        doc.Info.Version,
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
		SchemaNodes:    result.Stats.SchemaNodes,
	}
	for _, f := range openapi.Lint(doc) {
		output.Findings = append(output.Findings, f.String())
	}

	if input.Roundtrip {
		diff, err := roundtrip(doc)
		if err != nil {
			return errResult(err), checkOutput{}, nil
		}
		output.Roundtrip = "identical"
		if diff != "" {
			output.Roundtrip = "differs"
			output.RoundtripDiff = diff
		}
	}
	return nil, output, nil
}

// roundtrip serializes doc, parses the result again and returns the
// difference between the two documents, or "" when they are equal.
func roundtrip(doc *openapi.OpenAPI) (string, error) {
	tree, err := openapi.SerializeSpec(doc)
	if err != nil {
		return "", err
	}
	back, err := openapi.ParseSpec(tree)
	if err != nil {
		return "", err
	}
	if openapi.Equal(doc, back) {
		return "", nil
	}
	return openapi.Diff(doc, back), nil
}
