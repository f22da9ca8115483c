package coerce

import (
	"fmt"
	"reflect"

	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/oaserrors"
)

type fieldKind int

const (
	fieldRequired fieldKind = iota
	fieldOptional
	fieldTag
	fieldAbsent
)

// Field is one row of a record's field table. Build fields with [Required],
// [Optional], [Tag], and [Absent].
type Field[T any] struct {
	name    string
	wire    string
	kind    fieldKind
	literal string
	expect  string
	decode  func(dst *T, path *pathutil.PathBuilder, raw any) error
	encode  func(src *T) (any, error)
	isZero  func(src *T) bool
}

// Name returns the field's in-memory name.
func (f Field[T]) Name() string { return f.name }

// Required declares a field that must be present on the wire. get returns a
// pointer to the field inside a record value.
func Required[T, F any](name string, c Codec[F], get func(*T) *F) Field[T] {
	f := bind(name, c, get)
	f.kind = fieldRequired
	return f
}

// Optional declares a field whose default is the Go zero value of F. A
// missing or null wire value decodes to the default, and a field holding
// its default is omitted when encoding.
func Optional[T, F any](name string, c Codec[F], get func(*T) *F) Field[T] {
	f := bind(name, c, get)
	f.kind = fieldOptional
	return f
}

// Tag declares a literal discriminant that must be present with exactly the
// given value. The tag is not stored in the record; it is implied by the
// record's type and always emitted.
func Tag[T any](name, literal string) Field[T] {
	return Field[T]{name: name, kind: fieldTag, literal: literal, expect: fmt.Sprintf("literal %q", literal)}
}

// Absent declares a key that must not be present. It separates records
// whose shapes would otherwise overlap.
func Absent[T any](name string) Field[T] {
	return Field[T]{name: name, kind: fieldAbsent}
}

func bind[T, F any](name string, c Codec[F], get func(*T) *F) Field[T] {
	return Field[T]{
		name:   name,
		expect: c.Describe(),
		decode: func(dst *T, path *pathutil.PathBuilder, raw any) error {
			v, err := c.Decode(path, raw)
			if err != nil {
				return err
			}
			*get(dst) = v
			return nil
		},
		encode: func(src *T) (any, error) {
			return c.Encode(*get(src))
		},
		isZero: func(src *T) bool {
			return isZero(*get(src))
		},
	}
}

// isZero reports whether v is its type's zero value. Optional fields use it
// to implement omit-if-default.
func isZero[F any](v F) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}

// Record is the codec of a record-like entity, driven by an explicit field
// table.
type Record[T any] struct {
	name   string
	fields []Field[T]
}

// NewRecord builds the codec of the record entity called name. Wire names
// are resolved once, here, through policy.
func NewRecord[T any](name string, policy NamePolicy, fields ...Field[T]) *Record[T] {
	r := &Record[T]{name: name, fields: make([]Field[T], len(fields))}
	for i, f := range fields {
		f.wire = policy.WireName(name, f.name)
		r.fields[i] = f
	}
	return r
}

// Name returns the entity name.
func (r *Record[T]) Name() string { return r.name }

// WireNames returns the wire name of every field in declaration order.
func (r *Record[T]) WireNames() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.wire
	}
	return names
}

// Describe implements Codec.
func (r *Record[T]) Describe() string { return "object " + r.name }

// Decode implements Codec. Tag and Absent guards are checked first and
// reject the record immediately; after that every field is decoded and all
// deviations are returned together.
func (r *Record[T]) Decode(path *pathutil.PathBuilder, raw any) (T, error) {
	var out T
	m, ok := raw.(map[string]any)
	if !ok {
		return out, wrongKind(path, r.Describe(), raw)
	}

	for _, f := range r.fields {
		switch f.kind {
		case fieldTag:
			v, present := m[f.wire]
			if !present {
				return out, r.missing(path, f)
			}
			if s, ok := v.(string); !ok || s != f.literal {
				path.Push(f.wire)
				err := mismatch(path, f.expect, v, "%s tag %v does not match %q", r.name, v, f.literal)
				path.Pop()
				return out, err
			}
		case fieldAbsent:
			if _, present := m[f.wire]; present {
				err := mismatch(path, r.Describe(), raw, "key %q is not allowed on %s", f.wire, r.name)
				err.Entity = r.name
				err.Field = f.name
				return out, err
			}
		}
	}

	var errs oaserrors.ErrorList
	for _, f := range r.fields {
		if f.kind != fieldRequired && f.kind != fieldOptional {
			continue
		}
		v, present := m[f.wire]
		if !present || (v == nil && f.kind == fieldOptional) {
			if f.kind == fieldRequired {
				errs = append(errs, r.missing(path, f))
			}
			continue
		}
		path.Push(f.wire)
		if err := f.decode(&out, path, v); err != nil {
			errs = collect(errs, path, err)
		}
		path.Pop()
	}
	if len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return out, nil
}

func (r *Record[T]) missing(path *pathutil.PathBuilder, f Field[T]) *oaserrors.ParseError {
	return &oaserrors.ParseError{
		Kind:     oaserrors.KindStructuralMismatch,
		Path:     path.String(),
		Entity:   r.name,
		Field:    f.name,
		Expected: f.expect,
		Message:  fmt.Sprintf("missing required field %q of %s", f.wire, r.name),
	}
}

// Encode implements Codec.
func (r *Record[T]) Encode(value T) (any, error) {
	out := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		switch f.kind {
		case fieldTag:
			out[f.wire] = f.literal
		case fieldAbsent:
		default:
			if f.kind == fieldOptional && f.isZero(&value) {
				continue
			}
			w, err := f.encode(&value)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", r.name, f.name, err)
			}
			out[f.wire] = w
		}
	}
	return out, nil
}
