package parser

import "github.com/erraggy/oastype/openapi"

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of component schemas
	SchemaNodes    int // Number of schemas reachable in the document, nested ones included
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *openapi.OpenAPI) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = len(doc.Paths)
	for _, item := range doc.Paths {
		stats.OperationCount += len(item.Operations())
	}
	stats.SchemaCount = len(doc.Components.Schemas)
	openapi.WalkSchemas(doc, func(openapi.SchemaValue, string) openapi.Action {
		stats.SchemaNodes++
		return openapi.Continue
	})
	return stats
}
