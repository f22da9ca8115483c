package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/oaserrors"
)

// Primitive codecs.
var (
	// String accepts only strings.
	String Codec[string] = stringCodec{}
	// Bool accepts only booleans.
	Bool Codec[bool] = boolCodec{}
	// Int64 accepts any integer kind and integral floating-point numbers,
	// which is how JSON decoders deliver integers.
	Int64 Codec[int64] = int64Codec{}
	// Float64 accepts any numeric kind.
	Float64 Codec[float64] = float64Codec{}
	// Any accepts every value, including null, and passes it through
	// unchanged in both directions.
	Any Codec[any] = anyCodec{}
)

type stringCodec struct{}

func (stringCodec) Decode(path *pathutil.PathBuilder, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", wrongKind(path, "string", raw)
	}
	return s, nil
}

func (stringCodec) Encode(value string) (any, error) { return value, nil }
func (stringCodec) Describe() string                 { return "string" }

type boolCodec struct{}

func (boolCodec) Decode(path *pathutil.PathBuilder, raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, wrongKind(path, "boolean", raw)
	}
	return b, nil
}

func (boolCodec) Encode(value bool) (any, error) { return value, nil }
func (boolCodec) Describe() string               { return "boolean" }

type int64Codec struct{}

func (int64Codec) Decode(path *pathutil.PathBuilder, raw any) (int64, error) {
	switch n := raw.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, mismatch(path, "integer", raw, "integer %d overflows int64", n)
		}
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, mismatch(path, "integer", raw, "integer %d overflows int64", n)
		}
		return int64(n), nil
	case float32:
		return integral(path, raw, float64(n))
	case float64:
		return integral(path, raw, n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(path, "integer", raw, "integer %s overflows int64", n)
		}
		return integral(path, raw, f)
	default:
		return 0, wrongKind(path, "integer", raw)
	}
}

func integral(path *pathutil.PathBuilder, raw any, f float64) (int64, error) {
	if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, mismatch(path, "integer", raw, "number %v is not an integer", f)
	}
	return int64(f), nil
}

func (int64Codec) Encode(value int64) (any, error) { return value, nil }
func (int64Codec) Describe() string                { return "integer" }

type float64Codec struct{}

func (float64Codec) Decode(path *pathutil.PathBuilder, raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(path, "number", raw, "number %s is out of range", n)
		}
		return f, nil
	default:
		return 0, wrongKind(path, "number", raw)
	}
}

func (float64Codec) Encode(value float64) (any, error) { return value, nil }
func (float64Codec) Describe() string                  { return "number" }

type anyCodec struct{}

func (anyCodec) Decode(_ *pathutil.PathBuilder, raw any) (any, error) { return raw, nil }
func (anyCodec) Encode(value any) (any, error)                        { return value, nil }
func (anyCodec) Describe() string                                     { return "any value" }

// Literal returns a codec accepting exactly the string value. It is used for
// type discriminant tags such as "object" or "array".
func Literal(value string) Codec[string] {
	return literalCodec{value: value}
}

type literalCodec struct {
	value string
}

func (c literalCodec) Decode(path *pathutil.PathBuilder, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", wrongKind(path, c.Describe(), raw)
	}
	if s != c.value {
		return "", mismatch(path, c.Describe(), raw, "literal %q does not match %q", s, c.value)
	}
	return s, nil
}

func (c literalCodec) Encode(string) (any, error) { return c.value, nil }
func (c literalCodec) Describe() string           { return fmt.Sprintf("literal %q", c.value) }

// Enum returns a codec accepting exactly the listed string values of E.
func Enum[E ~string](name string, allowed ...E) Codec[E] {
	set := make(map[E]struct{}, len(allowed))
	quoted := make([]string, len(allowed))
	for i, v := range allowed {
		set[v] = struct{}{}
		quoted[i] = fmt.Sprintf("%q", string(v))
	}
	return &enumCodec[E]{
		name:     name,
		allowed:  set,
		describe: fmt.Sprintf("%s (%s)", name, strings.Join(quoted, " | ")),
	}
}

type enumCodec[E ~string] struct {
	name     string
	allowed  map[E]struct{}
	describe string
}

func (c *enumCodec[E]) Decode(path *pathutil.PathBuilder, raw any) (E, error) {
	s, ok := raw.(string)
	if !ok {
		return "", wrongKind(path, c.describe, raw)
	}
	if _, ok := c.allowed[E(s)]; !ok {
		return "", mismatch(path, c.describe, raw, "%q is not a valid %s", s, c.name)
	}
	return E(s), nil
}

func (c *enumCodec[E]) Encode(value E) (any, error) {
	if _, ok := c.allowed[value]; !ok {
		return nil, fmt.Errorf("coerce: %q is not a valid %s", string(value), c.name)
	}
	return string(value), nil
}

func (c *enumCodec[E]) Describe() string { return c.describe }

// Scalar builds a codec for a value that is a string (or other primitive) on
// the wire but structured in memory. decode errors are reported as
// KindScalarDecodeFailure at the current path, carrying the raw value.
func Scalar[T any](name string, decode func(raw any) (T, error), encode func(T) any) Codec[T] {
	return &scalarCodec[T]{name: name, decode: decode, encode: encode}
}

type scalarCodec[T any] struct {
	name   string
	decode func(raw any) (T, error)
	encode func(T) any
}

func (c *scalarCodec[T]) Decode(path *pathutil.PathBuilder, raw any) (T, error) {
	v, err := c.decode(raw)
	if err != nil {
		var zero T
		return zero, &oaserrors.ParseError{
			Kind:     oaserrors.KindScalarDecodeFailure,
			Path:     path.String(),
			Expected: c.name,
			Value:    raw,
			Message:  err.Error(),
			Cause:    err,
		}
	}
	return v, nil
}

func (c *scalarCodec[T]) Encode(value T) (any, error) { return c.encode(value), nil }
func (c *scalarCodec[T]) Describe() string            { return c.name }

// Ptr makes c optional: null decodes to nil, and nil encodes to null.
func Ptr[T any](c Codec[T]) Codec[*T] {
	return ptrCodec[T]{inner: c}
}

type ptrCodec[T any] struct {
	inner Codec[T]
}

func (c ptrCodec[T]) Decode(path *pathutil.PathBuilder, raw any) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := c.inner.Decode(path, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c ptrCodec[T]) Encode(value *T) (any, error) {
	if value == nil {
		return nil, nil
	}
	return c.inner.Encode(*value)
}

func (c ptrCodec[T]) Describe() string { return c.inner.Describe() }

// Convert adapts a Codec[A] into a Codec[B] through a pair of total,
// mutually inverse functions.
func Convert[A, B any](c Codec[A], to func(A) B, from func(B) A) Codec[B] {
	return convertCodec[A, B]{inner: c, to: to, from: from}
}

type convertCodec[A, B any] struct {
	inner Codec[A]
	to    func(A) B
	from  func(B) A
}

func (c convertCodec[A, B]) Decode(path *pathutil.PathBuilder, raw any) (B, error) {
	v, err := c.inner.Decode(path, raw)
	if err != nil {
		var zero B
		return zero, err
	}
	return c.to(v), nil
}

func (c convertCodec[A, B]) Encode(value B) (any, error) { return c.inner.Encode(c.from(value)) }
func (c convertCodec[A, B]) Describe() string            { return c.inner.Describe() }
