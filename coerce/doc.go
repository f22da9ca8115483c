// Package coerce implements a bidirectional mapping between generic document
// trees (map[string]any, []any, and scalars as produced by JSON and YAML
// decoders) and strongly typed Go values.
//
// Shapes are declared explicitly: every target type gets a [Codec] assembled
// from the building blocks in this package instead of being derived through
// reflection over struct tags.
//
//   - Scalars: [String], [Bool], [Int64], [Float64], [Any], [Literal],
//     [Enum], and [Scalar] for custom string encodings
//   - Records: [NewRecord] with a field table built from [Required],
//     [Optional], [Tag], and [Absent]
//   - Sums: [NewSum] with variants built by [Case]; the first variant that
//     decodes wins, in declaration order
//   - Collections: [List], [Set], [StringMap], and [KeyedMap]
//   - Adapters: [Ptr] and [Convert]
//
// Wire names of record fields come from a [NamePolicy]: a transformation of
// the in-memory snake_case name (camelCase by default) plus per-field
// overrides keyed by "Entity.field".
//
// # Decoding
//
// Decoding never stops at the first problem inside a record or collection:
// every deviation is collected into an [oaserrors.ErrorList], each entry
// carrying the path from the root, the expected shape, and the raw value.
// When no variant of a sum matches, the error is a
// [oaserrors.KindVariantExhausted] ParseError holding each variant's failure.
// Unknown keys in a record are ignored.
//
// # Encoding
//
// Encoding is the structural inverse of decoding. Optional fields holding
// their Go zero value are omitted; required fields are always emitted.
//
// Codecs are immutable once assembled and are safe for concurrent use.
package coerce
