package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document failed to decode into the typed model.
	ErrParse = errors.New("parse error")

	// ErrStructuralMismatch indicates a missing field, a wrong primitive kind,
	// or a value outside an enumerated/literal set.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrScalarDecode indicates a custom scalar codec rejected its input.
	ErrScalarDecode = errors.New("scalar decode failure")

	// ErrVariantExhausted indicates no variant of a sum type matched.
	ErrVariantExhausted = errors.New("no variant matched")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// KindStructuralMismatch: a field is missing, has the wrong primitive
	// kind, or a literal/enumerated value is not allowed.
	KindStructuralMismatch ErrorKind = iota
	// KindScalarDecodeFailure: a content-type tag, reference, or empty-value
	// marker rejected its input.
	KindScalarDecodeFailure
	// KindVariantExhausted: none of a sum type's variants matched.
	KindVariantExhausted
)

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindStructuralMismatch:
		return "structural mismatch"
	case KindScalarDecodeFailure:
		return "scalar decode failure"
	case KindVariantExhausted:
		return "no variant matched"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError represents a single deviation between a document tree and the
// shape it was decoded against.
type ParseError struct {
	// Kind classifies the failure
	Kind ErrorKind
	// Path is the dotted/bracketed path from the document root to the
	// offending node (e.g. `paths["/pets"].get.responses.200`)
	Path string
	// Entity is the record type being decoded, if any (e.g. "Info")
	Entity string
	// Field is the in-memory field name, set for missing-field errors
	Field string
	// Expected describes the shape that was expected at Path
	Expected string
	// Value is the offending raw value (nil for missing fields)
	Value any
	// Message describes the failure
	Message string
	// Variants holds one failure per attempted variant when Kind is
	// KindVariantExhausted, in declaration order
	Variants []VariantError
	// Cause is the underlying error, if any
	Cause error
}

// VariantError records why one variant of a sum type was rejected.
type VariantError struct {
	// Variant is the variant's name (e.g. "ObjectValue")
	Variant string
	// Err is the variant's failure; often an ErrorList or another ParseError
	Err error
}

// Error returns a human-readable, single-line error message.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Expected != "" {
		b.WriteString(" (expected ")
		b.WriteString(e.Expected)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrParse, and the sentinel of the error's kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrParse:
		return true
	case ErrStructuralMismatch:
		return e.Kind == KindStructuralMismatch
	case ErrScalarDecode:
		return e.Kind == KindScalarDecodeFailure
	case ErrVariantExhausted:
		return e.Kind == KindVariantExhausted
	}
	return false
}

// Detail renders the error as an indented tree, including the failure of
// every attempted variant, so callers can see why discrimination failed.
func (e *ParseError) Detail() string {
	var b strings.Builder
	writeDetail(&b, e, 0)
	return strings.TrimRight(b.String(), "\n")
}

// ErrorList aggregates every deviation found while decoding a single value.
type ErrorList []*ParseError

// Error joins the messages of all contained errors.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(l), strings.Join(msgs, "; "))
}

// Unwrap exposes the contained errors to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Detail renders every contained error as an indented tree.
func (l ErrorList) Detail() string {
	var b strings.Builder
	for _, e := range l {
		writeDetail(&b, e, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Flatten extracts the ParseErrors carried by err: an ErrorList yields its
// elements, a ParseError yields itself, anything else yields nil.
func Flatten(err error) []*ParseError {
	var list ErrorList
	if errors.As(err, &list) {
		return list
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return []*ParseError{pe}
	}
	return nil
}

func writeDetail(b *strings.Builder, e *ParseError, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(e.Error())
	if e.Value != nil && e.Kind != KindVariantExhausted {
		b.WriteString(fmt.Sprintf(" [got %s]", describeValue(e.Value)))
	}
	b.WriteString("\n")
	for _, v := range e.Variants {
		b.WriteString(indent)
		b.WriteString("  - as ")
		b.WriteString(v.Variant)
		b.WriteString(":\n")
		for _, sub := range Flatten(v.Err) {
			writeDetail(b, sub, depth+2)
		}
	}
}

// describeValue renders a raw value compactly for diagnostics.
func describeValue(v any) string {
	switch val := v.(type) {
	case string:
		if len(val) > 64 {
			val = val[:61] + "..."
		}
		return fmt.Sprintf("%q", val)
	case map[string]any:
		return fmt.Sprintf("object with %d keys", len(val))
	case []any:
		return fmt.Sprintf("array of %d", len(val))
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when an input exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "document_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
