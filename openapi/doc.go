// Package openapi is the typed model of an OpenAPI 3.0.x document and the
// strict codecs that convert it to and from a generic document tree.
//
// A generic tree is what JSON and YAML decoders produce: map[string]any,
// []any, strings, numbers, booleans and nil. [ParseSpec] turns such a tree
// into an [OpenAPI] value, rejecting every deviation from the model, and
// [SerializeSpec] is its exact inverse:
//
//	doc, err := openapi.ParseSpec(tree)
//	if err != nil {
//		var pe *oaserrors.ParseError
//		if errors.As(err, &pe) {
//			fmt.Println(pe.Detail())
//		}
//		return err
//	}
//	back, _ := openapi.SerializeSpec(doc)
//
// # Schema values
//
// [SchemaValue] is a closed sum of twelve variants. Decoding tries them in
// a fixed priority order and accepts the first that matches, so an object
// schema with "type": "object" and "properties" is always an [ObjectValue]
// and never the more permissive [ObjectWithAdditionalProperties] or
// [InlinedObjectValue]:
//
//  1. [RefValue]
//  2. [StringValue]
//  3. [IntegerValue]
//  4. [FloatValue]
//  5. [BooleanValue]
//  6. [ObjectValue]
//  7. [ObjectWithAdditionalProperties]
//  8. [ArrayValue]
//  9. [ProductSchemaType]
//  10. [UnionSchemaTypeAny]
//  11. [UnionSchemaTypeOne]
//  12. [InlinedObjectValue]
//
// Every "X or reference" field tries [RefValue] before X.
//
// # Scalars
//
// Three values are strings (or an empty object) on the wire but structured
// in memory: [ContentTypeTag] ("text/plain;charset=utf-8"), [Reference]
// ("#/components/schemas/Pet") and [EmptyValue] ({}).
//
// # Field names
//
// In-memory fields are snake_case in the field tables and camelCase on the
// wire. [DefaultNamePolicy] adds the overrides "ref" -> "$ref" and
// "in_" -> "in". Pass a different policy to [NewCodecs] to change them.
//
// # Serialization
//
// Optional fields holding their zero value are omitted; required fields are
// always emitted. Parsed values must be treated as read-only; compare them
// with [Equal].
package openapi
