// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oastype capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oastype"
)

const serverInstructions = `oastype MCP server: strictly checks, normalizes and explores OpenAPI 3.0.x documents (openapi 3.0.0, 3.0.1 or 3.0.2).

Every tool takes a spec with exactly one of file (path on disk) or content (inline JSON or YAML). Documents are decoded against a typed model; any deviation is reported with the path of the offending node and, for schemas, the reason each candidate shape was rejected. Unknown keys are ignored.

Configuration: all defaults are configurable via OASTYPE_* environment variables set in your MCP client config.

Key settings:
- OASTYPE_CACHE_ENABLED (default: true): disable document caching entirely
- OASTYPE_CACHE_FILE_TTL (default: 15m): cache TTL for file inputs
- OASTYPE_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline content
- OASTYPE_WALK_LIMIT (default: 100): default result limit for walk_schemas
- OASTYPE_MAX_INLINE_SIZE (default: 10MiB): largest accepted inline content
- OASTYPE_MAX_DOCUMENT_SIZE (default: 10MiB): largest accepted document
- OASTYPE_LOG_LEVEL (default: warn): stderr log level`

// logger writes server diagnostics to stderr; stdout carries the protocol.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.slogLevel()}))

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oastype", Version: oastype.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	logger.Info("mcp server starting", "version", oastype.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Strictly parse an OpenAPI 3.0.x document into its typed model. Returns valid=true with a structural summary (title, version, path/operation/schema counts), or valid=false with every deviation: its path (e.g. paths[\"/pets\"].get.responses.200), kind (structural mismatch, scalar decode failure, no variant matched) and an indented detail explaining why each candidate shape was rejected. Use roundtrip=true to also verify that serializing and re-parsing yields the same document. Also lists lint findings (severity, path, message) for documents that decode: undeclared required properties, non-standard response codes, malformed media types and duplicate operationIds. Findings never make a document invalid.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Parse an OpenAPI 3.0.x document and return its canonical serialization as JSON or YAML (format, default json). Normalization drops unknown keys, omits optional fields that hold their default value, and emits keys in sorted order, so two documents that mean the same thing normalize to the same text.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_schemas",
		Description: "Walk every schema in an OpenAPI 3.0.x document, nested ones included, and report its path and discriminated variant (RefValue, StringValue, IntegerValue, FloatValue, BooleanValue, ObjectValue, ObjectWithAdditionalProperties, ArrayValue, ProductSchemaType, UnionSchemaTypeAny, UnionSchemaTypeOne, InlinedObjectValue). Filter by variant, by component=true (only components.schemas entries) or by path glob. Use group_by (variant or location) to get distribution counts instead of individual items. Use offset/limit to paginate; default limit is configurable via OASTYPE_WALK_LIMIT.",
	}, handleWalkSchemas)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.WalkLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.WalkLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is one of the allowed values.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlob never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob reports whether name matches pattern. Patterns without glob
// characters must match exactly.
func matchGlob(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
