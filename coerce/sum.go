package coerce

import (
	"fmt"

	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/oaserrors"
)

// Variant is one alternative of a [Sum]. Build variants with [Case].
type Variant[T any] struct {
	name   string
	decode func(path *pathutil.PathBuilder, raw any) (T, error)
	encode func(value T) (wire any, matched bool, err error)
}

// Name returns the variant's name.
func (v Variant[T]) Name() string { return v.name }

// Case declares that values of the concrete type V, decoded by c, form a
// variant of the sum type T. V must be assignable to T.
func Case[T, V any](name string, c Codec[V]) Variant[T] {
	return Variant[T]{
		name: name,
		decode: func(path *pathutil.PathBuilder, raw any) (T, error) {
			v, err := c.Decode(path, raw)
			if err != nil {
				var zero T
				return zero, err
			}
			t, ok := any(v).(T)
			if !ok {
				panic(fmt.Sprintf("coerce: variant %s of type %T is not assignable to its sum type", name, v))
			}
			return t, nil
		},
		encode: func(value T) (any, bool, error) {
			v, ok := any(value).(V)
			if !ok {
				return nil, false, nil
			}
			w, err := c.Encode(v)
			return w, true, err
		},
	}
}

// Sum is the codec of a tagged union. Decoding tries each variant in
// declaration order and accepts the first that succeeds, so more specific
// variants must be declared before permissive ones.
type Sum[T any] struct {
	name     string
	variants []Variant[T]
}

// NewSum creates an empty sum codec. Variants are attached later with
// [Sum.Variants], which lets recursive shapes refer to the sum before its
// variants exist.
func NewSum[T any](name string) *Sum[T] {
	return &Sum[T]{name: name}
}

// Variants sets the variants in priority order and returns s.
func (s *Sum[T]) Variants(variants ...Variant[T]) *Sum[T] {
	s.variants = variants
	return s
}

// VariantNames returns the variant names in priority order.
func (s *Sum[T]) VariantNames() []string {
	names := make([]string, len(s.variants))
	for i, v := range s.variants {
		names[i] = v.name
	}
	return names
}

// Describe implements Codec.
func (s *Sum[T]) Describe() string { return s.name }

// Decode implements Codec. When no variant matches, the error holds every
// variant's failure in declaration order.
func (s *Sum[T]) Decode(path *pathutil.PathBuilder, raw any) (T, error) {
	failures := make([]oaserrors.VariantError, 0, len(s.variants))
	for _, v := range s.variants {
		value, err := v.decode(path, raw)
		if err == nil {
			return value, nil
		}
		failures = append(failures, oaserrors.VariantError{Variant: v.name, Err: err})
	}
	var zero T
	return zero, &oaserrors.ParseError{
		Kind:     oaserrors.KindVariantExhausted,
		Path:     path.String(),
		Expected: s.name,
		Value:    raw,
		Message:  fmt.Sprintf("value matches none of the %d %s variants", len(s.variants), s.name),
		Variants: failures,
	}
}

// Encode implements Codec. The runtime type of value selects the variant.
func (s *Sum[T]) Encode(value T) (any, error) {
	if isZero(value) {
		return nil, fmt.Errorf("coerce: %s has no value", s.name)
	}
	for _, v := range s.variants {
		w, matched, err := v.encode(value)
		if matched {
			return w, err
		}
	}
	return nil, fmt.Errorf("coerce: %T is not a variant of %s", value, s.name)
}
