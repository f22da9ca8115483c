// Package parser reads OpenAPI 3.0.x documents from JSON or YAML into the
// typed model of package openapi.
//
// Reading happens in two steps. The raw bytes are decoded into a generic
// tree (encoding/json for JSON, go.yaml.in/yaml/v4 for YAML, with YAML-only
// shapes such as integer mapping keys normalized to their JSON form), and
// the tree is decoded by openapi.ParseSpec. A document that deviates from
// the model in any way is rejected as a whole.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		for _, e := range oaserrors.Flatten(err) {
//			fmt.Println(e.Detail())
//		}
//		log.Fatal(err)
//	}
//	fmt.Println(result.Document.Info.Title, result.Stats.OperationCount)
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxSize = 1 << 20
//	result, err := p.ParseBytes(data)
//
// # Limits
//
// Documents larger than [DefaultMaxSize] (or the size set with
// [WithMaxSize]) fail with *oaserrors.ResourceLimitError before they are
// decoded. Nesting depth is not limited.
//
// # Writing documents
//
// [MarshalJSON] and [MarshalYAML] serialize a typed document with
// openapi.SerializeSpec and render it with sorted keys. A document decoded
// with [WithCodecs] is written back with [MarshalJSONWithCodecs] or
// [MarshalYAMLWithCodecs], passing ParseResult.Codecs.
package parser
