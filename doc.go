// Package oastype maps OpenAPI 3.0.x documents between generic JSON/YAML
// trees and a strict, typed Go model.
//
// # Overview
//
// The library consists of these packages:
//
//   - openapi: the typed model, its codecs, ParseSpec and SerializeSpec
//   - coerce: the generic codec engine the model is declared with
//   - parser: reads JSON or YAML files, readers and byte slices into the model
//   - oaserrors: structured error types shared by all packages
//
// Only OAS 3.0.0, 3.0.1 and 3.0.2 documents are accepted:
// https://spec.openapis.org/oas/v3.0.3.html
//
// # Parsing
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		for _, e := range oaserrors.Flatten(err) {
//			fmt.Println(e.Detail())
//		}
//		return err
//	}
//	fmt.Println(result.Document.Info.Title)
//
// Parsing is strict: every required field must be present with the right
// shape, and every schema must match one of the model's schema variants.
// Unknown keys, such as x- extensions, are ignored.
//
// # Round trips
//
// openapi.SerializeSpec is the inverse of openapi.ParseSpec, so parsing a
// serialized document yields a document that openapi.Equal reports as equal
// to the original.
//
// # Command-line tool
//
// The oastype command checks and normalizes documents:
//
//	oastype check -s openapi.yaml
//	oastype normalize -s openapi.yaml -format json
//
// It can also run as an MCP server (oastype mcp) exposing the same
// operations as tools.
package oastype
