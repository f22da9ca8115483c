package coerce

import (
	"fmt"
	"slices"

	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/oaserrors"
)

// List returns a codec for ordered sequences whose elements are decoded
// by elem.
func List[T any](elem Codec[T]) Codec[[]T] {
	return &listCodec[T]{elem: elem}
}

type listCodec[T any] struct {
	elem Codec[T]
	// key, when set, makes the list a set: two elements with the same key
	// are rejected.
	key func(T) string
}

func (c *listCodec[T]) Describe() string {
	if c.key != nil {
		return "set of " + c.elem.Describe()
	}
	return "array of " + c.elem.Describe()
}

func (c *listCodec[T]) Decode(path *pathutil.PathBuilder, raw any) ([]T, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, wrongKind(path, c.Describe(), raw)
	}

	out := make([]T, 0, len(items))
	var errs oaserrors.ErrorList
	var seen map[string]struct{}
	if c.key != nil {
		seen = make(map[string]struct{}, len(items))
	}
	for i, item := range items {
		path.PushIndex(i)
		v, err := c.elem.Decode(path, item)
		if err != nil {
			errs = collect(errs, path, err)
		}
		path.Pop()
		if err != nil {
			continue
		}
		if seen != nil {
			k := c.key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
		}
		out = append(out, v)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (c *listCodec[T]) Encode(value []T) (any, error) {
	out := make([]any, len(value))
	for i, v := range value {
		w, err := c.elem.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// Set returns a codec for sequences of unique values. Uniqueness is decided
// by key: the first occurrence of a key is kept in its position and later
// duplicates are dropped.
func Set[T any](elem Codec[T], key func(T) string) Codec[[]T] {
	return &listCodec[T]{elem: elem, key: key}
}

// StringSet is a Set of strings keyed by their value.
func StringSet() Codec[[]string] {
	return Set(String, func(s string) string { return s })
}

// StringMap returns a codec for mappings whose keys are taken verbatim.
func StringMap[V any](value Codec[V]) Codec[map[string]V] {
	return KeyedMap(String, value)
}

// KeyedMap returns a codec for mappings whose keys are themselves decoded,
// for example media-type keys parsed into a structured tag. Two wire keys
// that decode to the same key are rejected.
func KeyedMap[K comparable, V any](key Codec[K], value Codec[V]) Codec[map[K]V] {
	return &mapCodec[K, V]{key: key, value: value}
}

type mapCodec[K comparable, V any] struct {
	key   Codec[K]
	value Codec[V]
}

func (c *mapCodec[K, V]) Describe() string {
	return fmt.Sprintf("mapping of %s to %s", c.key.Describe(), c.value.Describe())
}

func (c *mapCodec[K, V]) Decode(path *pathutil.PathBuilder, raw any) (map[K]V, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, wrongKind(path, c.Describe(), raw)
	}

	// Sorted keys keep diagnostics deterministic.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(map[K]V, len(m))
	origin := make(map[K]string, len(m))
	var errs oaserrors.ErrorList
	for _, wireKey := range keys {
		path.PushKey(wireKey)
		k, err := c.key.Decode(path, wireKey)
		if err != nil {
			errs = collect(errs, path, err)
			path.Pop()
			continue
		}
		if prev, dup := origin[k]; dup {
			errs = append(errs, mismatch(path, c.Describe(), wireKey, "key %q duplicates key %q", wireKey, prev))
			path.Pop()
			continue
		}
		origin[k] = wireKey
		v, err := c.value.Decode(path, m[wireKey])
		if err != nil {
			errs = collect(errs, path, err)
		} else {
			out[k] = v
		}
		path.Pop()
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (c *mapCodec[K, V]) Encode(value map[K]V) (any, error) {
	out := make(map[string]any, len(value))
	for k, v := range value {
		wk, err := c.key.Encode(k)
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}
		ks, ok := wk.(string)
		if !ok {
			return nil, fmt.Errorf("coerce: key %v encodes to %T, not a string", k, wk)
		}
		w, err := c.value.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", ks, err)
		}
		out[ks] = w
	}
	return out, nil
}
