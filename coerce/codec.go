package coerce

import (
	"fmt"

	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/oaserrors"
)

// Codec converts between a generic document tree value and T.
type Codec[T any] interface {
	// Decode converts raw into T. path locates raw in the document and must
	// be left as it was found.
	Decode(path *pathutil.PathBuilder, raw any) (T, error)
	// Encode converts value back into a generic tree value.
	Encode(value T) (any, error)
	// Describe names the expected wire shape for diagnostics.
	Describe() string
}

// Decode runs c against a whole document tree.
func Decode[T any](c Codec[T], raw any) (T, error) {
	path := pathutil.Get()
	defer pathutil.Put(path)
	return c.Decode(path, raw)
}

// Encode runs c over a whole typed value.
func Encode[T any](c Codec[T], value T) (any, error) {
	return c.Encode(value)
}

// mismatch builds a KindStructuralMismatch error located at path.
func mismatch(path *pathutil.PathBuilder, expected string, raw any, format string, args ...any) *oaserrors.ParseError {
	return &oaserrors.ParseError{
		Kind:     oaserrors.KindStructuralMismatch,
		Path:     path.String(),
		Expected: expected,
		Value:    raw,
		Message:  fmt.Sprintf(format, args...),
	}
}

// wrongKind reports a value whose primitive kind differs from the expected one.
func wrongKind(path *pathutil.PathBuilder, expected string, raw any) *oaserrors.ParseError {
	return mismatch(path, expected, raw, "expected %s, got %s", expected, kindOf(raw))
}

// collect appends the ParseErrors carried by err to errs. Errors that are not
// ParseErrors are wrapped so no failure is lost.
func collect(errs oaserrors.ErrorList, path *pathutil.PathBuilder, err error) oaserrors.ErrorList {
	if flat := oaserrors.Flatten(err); flat != nil {
		return append(errs, flat...)
	}
	return append(errs, &oaserrors.ParseError{
		Kind:    oaserrors.KindStructuralMismatch,
		Path:    path.String(),
		Message: err.Error(),
		Cause:   err,
	})
}

// kindOf names the JSON kind of a generic tree value.
func kindOf(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
