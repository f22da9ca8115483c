package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastype/parser"
)

type normalizeInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI 3.0.x document to normalize"`
	Format string    `json:"format,omitempty" jsonschema:"Output format: json (default) or yaml"`
}

type normalizeOutput struct {
	Format   string `json:"format"`
	Size     int    `json:"size"`
	Document string `json:"document"`
}

func handleNormalize(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	format := strings.ToLower(input.Format)
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return errResult(fmt.Errorf("invalid format %q; valid formats: json, yaml", input.Format)), normalizeOutput{}, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	var data []byte
	if format == "json" {
		data, err = parser.MarshalJSONWithCodecs(result.Codecs, result.Document)
	} else {
		data, err = parser.MarshalYAMLWithCodecs(result.Codecs, result.Document)
	}
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}
	return nil, normalizeOutput{Format: format, Size: len(data), Document: string(data)}, nil
}
