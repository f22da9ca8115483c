// Package oaserrors provides structured error types for oastype.
//
// Import path: github.com/erraggy/oastype/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [ParseError]: one deviation between a document tree and its expected shape
//   - [ErrorList]: every deviation collected while decoding one value
//   - [ResourceLimitError]: an input exceeded a configured limit
//   - [ConfigError]: invalid configuration or input options
//
// A [ParseError] carries its [ErrorKind]:
//
//   - [KindStructuralMismatch]: missing field, wrong primitive kind, or a
//     value outside a literal/enumerated set
//   - [KindScalarDecodeFailure]: a content-type tag, reference string, or
//     empty-object marker was rejected
//   - [KindVariantExhausted]: no variant of a sum type matched; the error
//     holds one [VariantError] per attempted variant
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrStructuralMismatch]: Matches [ParseError] with KindStructuralMismatch
//   - [ErrScalarDecode]: Matches [ParseError] with KindScalarDecodeFailure
//   - [ErrVariantExhausted]: Matches [ParseError] with KindVariantExhausted
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Sentinels also match through an [ErrorList], which unwraps to its elements.
//
// # Usage Examples
//
//	doc, err := openapi.ParseSpec(tree)
//	if errors.Is(err, oaserrors.ErrStructuralMismatch) {
//	    for _, pe := range oaserrors.Flatten(err) {
//	        fmt.Printf("%s: %s\n", pe.Path, pe.Message)
//	    }
//	}
//
// Render the full diagnostic tree, including per-variant failures:
//
//	var pe *oaserrors.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Detail())
//	}
package oaserrors
